// Package sysreg encodes ARM64 system register coordinates as KVM register
// identifiers and maps those identifiers to named catalog entries.
package sysreg

import (
	"fmt"
	"math"
)

// KVM register identifier layout. These values are copied from
// arch/arm64/include/uapi/asm/kvm.h and include/uapi/linux/kvm.h and must
// change only when that ABI does.
const (
	kvmRegArchMask uint64 = 0xff00000000000000
	kvmRegArm64    uint64 = 0x6000000000000000

	kvmRegSizeShift        = 52
	kvmRegSizeMask  uint64 = 0x0ff0000000000000
	kvmRegSizeU64   uint64 = 0x0030000000000000

	kvmRegArmCoproShift        = 16
	kvmRegArmCoproMask  uint64 = 0x000000000fff0000
	kvmRegArmCore       uint64 = 0x0010 << kvmRegArmCoproShift
	kvmRegArmDemux      uint64 = 0x0011 << kvmRegArmCoproShift
	kvmRegArm64SysReg   uint64 = 0x0013 << kvmRegArmCoproShift
	kvmRegArmFwReg      uint64 = 0x0014 << kvmRegArmCoproShift
	kvmRegArm64Sve      uint64 = 0x0015 << kvmRegArmCoproShift

	kvmRegArm64SysRegOp0Mask  uint64 = 0x000000000000c000
	kvmRegArm64SysRegOp0Shift        = 14
	kvmRegArm64SysRegOp1Mask  uint64 = 0x0000000000003800
	kvmRegArm64SysRegOp1Shift        = 11
	kvmRegArm64SysRegCrnMask  uint64 = 0x0000000000000780
	kvmRegArm64SysRegCrnShift        = 7
	kvmRegArm64SysRegCrmMask  uint64 = 0x0000000000000078
	kvmRegArm64SysRegCrmShift        = 3
	kvmRegArm64SysRegOp2Mask  uint64 = 0x0000000000000007
	kvmRegArm64SysRegOp2Shift        = 0
)

// Coordinates address a system register the way MRS/MSR encode it.
// Only the low 2/3/4/4/3 bits of Op0/Op1/CRn/CRm/Op2 are meaningful.
type Coordinates struct {
	Op0 uint8
	Op1 uint8
	CRn uint8
	CRm uint8
	Op2 uint8
}

func (c Coordinates) String() string {
	return fmt.Sprintf("op0=%d op1=%d CRn=%d CRm=%d op2=%d", c.Op0, c.Op1, c.CRn, c.CRm, c.Op2)
}

// ID is a KVM register identifier as used by KVM_GET_REG_LIST and
// KVM_GET_ONE_REG.
type ID uint64

// Encode returns the 64-bit system register identifier for c. Fields wider
// than their architectural width are masked.
func Encode(c Coordinates) ID {
	return ID(kvmRegArm64 | kvmRegSizeU64 | kvmRegArm64SysReg |
		((uint64(c.Op0) << kvmRegArm64SysRegOp0Shift) & kvmRegArm64SysRegOp0Mask) |
		((uint64(c.Op1) << kvmRegArm64SysRegOp1Shift) & kvmRegArm64SysRegOp1Mask) |
		((uint64(c.CRn) << kvmRegArm64SysRegCrnShift) & kvmRegArm64SysRegCrnMask) |
		((uint64(c.CRm) << kvmRegArm64SysRegCrmShift) & kvmRegArm64SysRegCrmMask) |
		((uint64(c.Op2) << kvmRegArm64SysRegOp2Shift) & kvmRegArm64SysRegOp2Mask))
}

// DecodeCoordinates extracts the coordinate fields from id. The result is
// only meaningful when id.IsSysReg() is true.
func DecodeCoordinates(id ID) Coordinates {
	v := uint64(id)
	return Coordinates{
		Op0: uint8((v & kvmRegArm64SysRegOp0Mask) >> kvmRegArm64SysRegOp0Shift),
		Op1: uint8((v & kvmRegArm64SysRegOp1Mask) >> kvmRegArm64SysRegOp1Shift),
		CRn: uint8((v & kvmRegArm64SysRegCrnMask) >> kvmRegArm64SysRegCrnShift),
		CRm: uint8((v & kvmRegArm64SysRegCrmMask) >> kvmRegArm64SysRegCrmShift),
		Op2: uint8((v & kvmRegArm64SysRegOp2Mask) >> kvmRegArm64SysRegOp2Shift),
	}
}

// SizeBits returns the storage width encoded in the size field of id.
// Widths that do not fit in an int saturate at math.MaxInt.
func (id ID) SizeBits() int {
	field := (uint64(id) & kvmRegSizeMask) >> kvmRegSizeShift
	if field > 60 {
		return math.MaxInt
	}
	bits := uint64(8) << field
	if bits > math.MaxInt {
		return math.MaxInt
	}
	return int(bits)
}

// SizeBytes is SizeBits in bytes.
func (id ID) SizeBytes() int {
	return id.SizeBits() / 8
}

// Class identifies the KVM register group an identifier belongs to.
type Class int

const (
	ClassUnknown Class = iota
	ClassCore
	ClassDemux
	ClassSysReg
	ClassFirmware
	ClassSVE
)

func (c Class) String() string {
	switch c {
	case ClassCore:
		return "core"
	case ClassDemux:
		return "demux"
	case ClassSysReg:
		return "sysreg"
	case ClassFirmware:
		return "fw"
	case ClassSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// Class reports which arm64 register group id belongs to.
func (id ID) Class() Class {
	v := uint64(id)
	if v&kvmRegArchMask != kvmRegArm64 {
		return ClassUnknown
	}
	switch v & kvmRegArmCoproMask {
	case kvmRegArmCore:
		return ClassCore
	case kvmRegArmDemux:
		return ClassDemux
	case kvmRegArm64SysReg:
		return ClassSysReg
	case kvmRegArmFwReg:
		return ClassFirmware
	case kvmRegArm64Sve:
		return ClassSVE
	default:
		return ClassUnknown
	}
}

// IsSysReg reports whether id addresses an arm64 system register.
func (id ID) IsSysReg() bool { return id.Class() == ClassSysReg }

func (id ID) String() string {
	return fmt.Sprintf("%#x", uint64(id))
}
