//go:build linux

package kvm

import (
	"log/slog"

	"golang.org/x/sys/unix"
)

func ioctl(fd uintptr, request uint64, arg uintptr) (uintptr, error) {
	v1, _, err := unix.Syscall(unix.SYS_IOCTL, fd, uintptr(request), arg)
	if err != 0 {
		return 0, err
	}
	return v1, nil
}

func ioctlWithRetry(fd uintptr, request uint64, arg uintptr) (uintptr, error) {
	for {
		v1, err := ioctl(fd, request, arg)
		if err == unix.EINTR {
			continue
		}
		return v1, err
	}
}

func ioctlInt(ioctl int) func(fd int) (int, error) {
	return func(fd int) (int, error) {
		v, err := ioctlWithRetry(uintptr(fd), uint64(ioctl), 0)
		if err != nil {
			return 0, err
		}
		return int(v), nil
	}
}

var getApiVersion = ioctlInt(kvmGetApiVersion)

func createVm(fd int, machineType uint32) (int, error) {
	v1, err := ioctlWithRetry(uintptr(fd), uint64(kvmCreateVm), uintptr(machineType))
	if err != nil {
		return 0, err
	}

	return int(v1), nil
}

func createVCPU(fd int, id int) (int, error) {
	v1, err := ioctlWithRetry(uintptr(fd), uint64(kvmCreateVcpu), uintptr(id))
	if err != nil {
		return 0, err
	}

	return int(v1), nil
}

// checkExtension returns the KVM_CHECK_EXTENSION result for cap. Zero means
// unsupported; some capabilities report a value (e.g. the maximum IPA size).
func checkExtension(fd int, cap int) (int, error) {
	ret, err := ioctlWithRetry(uintptr(fd), uint64(kvmCheckExtension), uintptr(cap))
	if err != nil {
		return 0, err
	}

	slog.Debug("kvm: check extension", "fd", fd, "cap", cap, "ret", ret)

	return int(ret), nil
}
