//go:build linux && arm64

package kvm

import (
	"errors"
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/tinyrange/sysregs/internal/hv"
	"github.com/tinyrange/sysregs/internal/sysreg"
	"golang.org/x/sys/unix"
)

type virtualCPU struct {
	id   int
	vmFd int
	fd   int
	sve  bool
}

var (
	_ hv.VirtualCPU = &virtualCPU{}
)

// implements hv.VirtualCPU.
func (v *virtualCPU) ID() int { return v.id }

func (v *virtualCPU) RegisterList(ids []uint64) (int, error) {
	n, err := getRegList(v.fd, ids)
	if errors.Is(err, unix.E2BIG) {
		return n, fmt.Errorf("kvm: get reg list: %w (have %d, need %d): %w",
			hv.ErrRegisterListTooSmall, len(ids), n, err)
	} else if err != nil {
		return 0, fmt.Errorf("kvm: get reg list for vCPU %d: %w", v.id, err)
	}

	return n, nil
}

func (v *virtualCPU) ReadRegister(id uint64, buf []byte) error {
	size := sysreg.ID(id).SizeBytes()
	if size <= 0 || size > len(buf) {
		return fmt.Errorf("kvm: register %#x needs %d bytes, buffer has %d", id, size, len(buf))
	}

	if err := getOneReg(v.fd, id, unsafe.Pointer(&buf[0])); err != nil {
		return fmt.Errorf("kvm: get register %#x: %w", id, err)
	}

	return nil
}

func (v *virtualCPU) Close() error {
	var errs []error

	if v.fd >= 0 {
		if err := unix.Close(v.fd); err != nil {
			slog.Error("kvm: close vcpu fd", "error", err)
			errs = append(errs, fmt.Errorf("close vcpu fd: %w", err))
		}
		v.fd = -1
	}

	if v.vmFd >= 0 {
		if err := unix.Close(v.vmFd); err != nil {
			slog.Error("kvm: close vm fd", "error", err)
			errs = append(errs, fmt.Errorf("close vm fd: %w", err))
		}
		v.vmFd = -1
	}

	return errors.Join(errs...)
}

// NewVirtualCPU implements hv.Hypervisor.
func (h *hypervisor) NewVirtualCPU(index int) (hv.VirtualCPU, error) {
	// On M1 this fails unless an argument is passed to set the IPA size.
	ipaSize, err := checkExtension(h.fd, kvmCapArmVmIpaSize)
	if err != nil {
		return nil, fmt.Errorf("kvm: get cap: %w", err)
	}

	vmFd, err := createVm(h.fd, uint32(ipaSize))
	if err != nil {
		return nil, fmt.Errorf("kvm: create VM: %w", err)
	}

	v := &virtualCPU{id: index, vmFd: vmFd, fd: -1}

	v.fd, err = createVCPU(vmFd, index)
	if err != nil {
		v.fd = -1
		v.Close()
		return nil, fmt.Errorf("kvm: create vCPU %d: %w", index, err)
	}

	if err := h.archVCPUInit(v); err != nil {
		v.Close()
		return nil, fmt.Errorf("initialize vCPU %d: %w", index, err)
	}

	slog.Debug("kvm: vCPU ready", "id", index, "sve", v.sve)

	return v, nil
}

func (*hypervisor) archVCPUInit(v *virtualCPU) error {
	init, err := armPreferredTarget(v.vmFd)
	if err != nil {
		return fmt.Errorf("getting preferred target: %w", err)
	}

	enableArmVcpuFeature(&init, kvmArmVcpuFeaturePsci02)

	// SVE registers only show up in KVM_GET_REG_LIST when the feature is
	// requested at init time and finalized afterwards.
	sve, err := checkExtension(v.vmFd, kvmCapArmSve)
	if err != nil {
		return fmt.Errorf("checking SVE support: %w", err)
	}
	v.sve = sve != 0
	if v.sve {
		enableArmVcpuFeature(&init, kvmArmVcpuFeatureSve)
	}

	if err := armVcpuInit(v.fd, &init); err != nil {
		return fmt.Errorf("initializing vCPU: %w", err)
	}

	if v.sve {
		if err := armVcpuFinalize(v.fd, kvmArmVcpuFeatureSve); err != nil {
			return fmt.Errorf("finalizing SVE: %w", err)
		}
	}

	return nil
}

func enableArmVcpuFeature(init *kvmVcpuInit, feature uint32) {
	word := feature / 32
	bit := feature % 32

	if word >= kvmArmVcpuInitFeatureWords {
		return
	}

	init.Features[word] |= 1 << bit
}

func (*hypervisor) Architecture() hv.CpuArchitecture {
	return hv.ArchitectureARM64
}
