//go:build linux && arm64

package kvm

import (
	"runtime"
	"unsafe"
)

func getOneReg(vcpuFd int, id uint64, addr unsafe.Pointer) error {
	reg := kvmOneReg{
		id:   id,
		addr: uint64(uintptr(addr)),
	}

	_, err := ioctlWithRetry(uintptr(vcpuFd), uint64(kvmGetOneReg), uintptr(unsafe.Pointer(&reg)))
	return err
}

// getRegList issues KVM_GET_REG_LIST with room for len(ids) identifiers.
// The kernel always writes the real count back, including when it fails
// with E2BIG.
func getRegList(vcpuFd int, ids []uint64) (int, error) {
	// struct kvm_reg_list { __u64 n; __u64 reg[]; }
	buf := make([]uint64, 1+len(ids))
	buf[0] = uint64(len(ids))

	_, err := ioctlWithRetry(uintptr(vcpuFd), uint64(kvmGetRegList), uintptr(unsafe.Pointer(&buf[0])))
	runtime.KeepAlive(buf)

	n := int(buf[0])
	if err != nil {
		return n, err
	}

	copy(ids, buf[1:])
	return n, nil
}

func armPreferredTarget(fd int) (kvmVcpuInit, error) {
	var init kvmVcpuInit

	if _, err := ioctlWithRetry(uintptr(fd), uint64(kvmArmPreferredTarget), uintptr(unsafe.Pointer(&init))); err != nil {
		return kvmVcpuInit{}, err
	}

	return init, nil
}

func armVcpuInit(vcpuFd int, init *kvmVcpuInit) error {
	_, err := ioctlWithRetry(uintptr(vcpuFd), uint64(kvmArmVcpuInitIoctl), uintptr(unsafe.Pointer(init)))
	return err
}

func armVcpuFinalize(vcpuFd int, feature int32) error {
	_, err := ioctlWithRetry(uintptr(vcpuFd), uint64(kvmArmVcpuFinalize), uintptr(unsafe.Pointer(&feature)))
	return err
}
