package hv

import (
	"errors"
	"io"
)

var (
	ErrHypervisorUnsupported = errors.New("hypervisor unsupported on this platform")

	// ErrRegisterListTooSmall is returned by RegisterLister.RegisterList when
	// the buffer cannot hold every identifier. The returned count is then
	// the number of identifiers the vCPU exposes.
	ErrRegisterListTooSmall = errors.New("register list buffer too small")
)

type CpuArchitecture string

const (
	ArchitectureInvalid CpuArchitecture = "invalid"
	ArchitectureX86_64  CpuArchitecture = "x86_64"
	ArchitectureARM64   CpuArchitecture = "arm64"
)

// MaxRegisterSize is the size in bytes of the buffer used for a single
// register read. It covers the largest KVM register, KVM_REG_SIZE_U2048
// (2048 bits), with room to spare.
const MaxRegisterSize = 2048

// RegisterLister is the register discovery surface of a vCPU.
type RegisterLister interface {
	// RegisterList fills ids with the identifiers exposed by the vCPU and
	// returns how many there are. If len(ids) is smaller than that count it
	// returns the count together with ErrRegisterListTooSmall.
	RegisterList(ids []uint64) (int, error)

	// ReadRegister copies the raw little-endian contents of register id
	// into buf, which must hold at least the register's size.
	ReadRegister(id uint64, buf []byte) error
}

// VirtualCPU is a fully initialized vCPU that can be queried for registers.
type VirtualCPU interface {
	io.Closer
	RegisterLister

	ID() int
}

type Hypervisor interface {
	io.Closer

	Architecture() CpuArchitecture

	// NewVirtualCPU creates a virtual machine holding a single initialized
	// vCPU with the given index. Closing the vCPU releases the machine.
	NewVirtualCPU(index int) (VirtualCPU, error)
}
