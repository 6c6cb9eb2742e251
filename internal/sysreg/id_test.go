package sysreg

import (
	"math"
	"testing"
)

func TestEncodeKnownIdentifiers(t *testing.T) {
	for _, tt := range []struct {
		name string
		c    Coordinates
		want ID
	}{
		{"MIDR_EL1", Coordinates{3, 0, 0, 0, 0}, 0x603000000013c000},
		{"op2=1", Coordinates{3, 0, 0, 0, 1}, 0x603000000013c001},
		{"SCTLR_EL1", Coordinates{3, 0, 1, 0, 0}, 0x603000000013c080},
		// KVM_REG_ARM_TIMER_CTL in arch/arm64/include/uapi/asm/kvm.h
		{"CNTV_CTL_EL0", Coordinates{3, 3, 14, 3, 1}, 0x603000000013df19},
		// KVM_REG_ARM_TIMER_CNT, at the architectural CNTV_CVAL_EL0 coordinates
		{"CNTVCT_EL0", Coordinates{3, 3, 14, 3, 2}, 0x603000000013df1a},
		{"MDSCR_EL1", Coordinates{2, 0, 0, 2, 2}, 0x6030000000138012},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.c); got != tt.want {
				t.Fatalf("Encode(%v) = %s, want %s", tt.c, got, tt.want)
			}
		})
	}
}

func TestEncodeMasksOverWidthFields(t *testing.T) {
	got := Encode(Coordinates{Op0: 0xff, Op1: 0xff, CRn: 0xff, CRm: 0xff, Op2: 0xff})
	want := Encode(Coordinates{Op0: 3, Op1: 7, CRn: 15, CRm: 15, Op2: 7})
	if got != want {
		t.Fatalf("Encode over-width = %s, want %s", got, want)
	}
	if got.SizeBits() != 64 {
		t.Fatalf("SizeBits = %d, want 64", got.SizeBits())
	}
	if !got.IsSysReg() {
		t.Fatalf("%s not classified as sysreg", got)
	}
}

func TestEncodeRoundTripAndInjective(t *testing.T) {
	seen := make(map[ID]Coordinates, 1<<16)

	for op0 := uint8(0); op0 < 4; op0++ {
		for op1 := uint8(0); op1 < 8; op1++ {
			for crn := uint8(0); crn < 16; crn++ {
				for crm := uint8(0); crm < 16; crm++ {
					for op2 := uint8(0); op2 < 8; op2++ {
						c := Coordinates{op0, op1, crn, crm, op2}
						id := Encode(c)

						if got := DecodeCoordinates(id); got != c {
							t.Fatalf("DecodeCoordinates(Encode(%v)) = %v", c, got)
						}
						if prev, ok := seen[id]; ok {
							t.Fatalf("%v and %v both encode to %s", prev, c, id)
						}
						seen[id] = c

						if id.SizeBits() != 64 {
							t.Fatalf("SizeBits(%s) = %d, want 64", id, id.SizeBits())
						}
					}
				}
			}
		}
	}

	if len(seen) != 1<<16 {
		t.Fatalf("got %d distinct identifiers, want %d", len(seen), 1<<16)
	}
}

func TestSizeBits(t *testing.T) {
	for _, tt := range []struct {
		id   ID
		want int
	}{
		{0x6020000000100000, 32},   // U32 core register
		{0x6030000000100000, 64},   // X0
		{0x6040000000100054, 128},  // V0
		{0x6080000000150000, 2048}, // SVE Z0
		{0x6010000000000000, 16},
		{0x6000000000000000, 8},
		{0x63c0000000000000, math.MaxInt},
		{0x6ff0000000000000, math.MaxInt},
	} {
		if got := tt.id.SizeBits(); got != tt.want {
			t.Errorf("SizeBits(%s) = %d, want %d", tt.id, got, tt.want)
		}
		if got := tt.id.SizeBytes(); got != tt.want/8 {
			t.Errorf("SizeBytes(%s) = %d, want %d", tt.id, got, tt.want/8)
		}
	}
}

func TestClass(t *testing.T) {
	for _, tt := range []struct {
		id   ID
		want Class
	}{
		{0x6030000000100000, ClassCore},
		{0x603000000013c000, ClassSysReg},
		{0x6030000000140000, ClassFirmware},
		{0x6080000000150000, ClassSVE},
		{0x6020000000110000, ClassDemux},
		{0x4030000000130000, ClassUnknown},
		{0x6030000000170000, ClassUnknown},
	} {
		if got := tt.id.Class(); got != tt.want {
			t.Errorf("Class(%s) = %s, want %s", tt.id, got, tt.want)
		}
	}
}
