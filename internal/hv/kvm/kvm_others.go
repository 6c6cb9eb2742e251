//go:build linux && !arm64

package kvm

import (
	"fmt"

	"github.com/tinyrange/sysregs/internal/hv"
)

func (h *hypervisor) NewVirtualCPU(index int) (hv.VirtualCPU, error) {
	return nil, fmt.Errorf("kvm: register enumeration not supported on this architecture")
}

func (*hypervisor) Architecture() hv.CpuArchitecture {
	return hv.ArchitectureInvalid
}
