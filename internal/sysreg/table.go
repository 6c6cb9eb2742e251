package sysreg

// arm64SystemRegisters is the checked-in register table. Coordinates follow
// the Arm Architecture Reference Manual system register encodings except
// where noted.
var arm64SystemRegisters = []Entry{
	// Debug
	{Name: "OSDTRRX_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 0, Op2: 2}, Access: ReadWrite},
	{Name: "MDCCINT_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 2, Op2: 0}, Access: ReadWrite},
	{Name: "MDSCR_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 2, Op2: 2}, Access: ReadWrite},
	{Name: "OSDTRTX_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 3, Op2: 2}, Access: ReadWrite},
	{Name: "OSECCR_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 6, Op2: 2}, Access: ReadWrite},
	{Name: "DBGBVR0_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 0, Op2: 4}, Access: ReadWrite},
	{Name: "DBGBCR0_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 0, Op2: 5}, Access: ReadWrite},
	{Name: "DBGWVR0_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 0, Op2: 6}, Access: ReadWrite},
	{Name: "DBGWCR0_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 0, Op2: 7}, Access: ReadWrite},
	{Name: "DBGBVR1_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 1, Op2: 4}, Access: ReadWrite},
	{Name: "DBGBCR1_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 1, Op2: 5}, Access: ReadWrite},
	{Name: "DBGWVR1_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 1, Op2: 6}, Access: ReadWrite},
	{Name: "DBGWCR1_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 1, Op2: 7}, Access: ReadWrite},
	{Name: "DBGBVR2_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 2, Op2: 4}, Access: ReadWrite},
	{Name: "DBGBCR2_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 2, Op2: 5}, Access: ReadWrite},
	{Name: "DBGWVR2_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 2, Op2: 6}, Access: ReadWrite},
	{Name: "DBGWCR2_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 2, Op2: 7}, Access: ReadWrite},
	{Name: "DBGBVR3_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 3, Op2: 4}, Access: ReadWrite},
	{Name: "DBGBCR3_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 3, Op2: 5}, Access: ReadWrite},
	{Name: "DBGWVR3_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 3, Op2: 6}, Access: ReadWrite},
	{Name: "DBGWCR3_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 3, Op2: 7}, Access: ReadWrite},
	{Name: "DBGBVR4_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 4, Op2: 4}, Access: ReadWrite},
	{Name: "DBGBCR4_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 4, Op2: 5}, Access: ReadWrite},
	{Name: "DBGWVR4_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 4, Op2: 6}, Access: ReadWrite},
	{Name: "DBGWCR4_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 4, Op2: 7}, Access: ReadWrite},
	{Name: "DBGBVR5_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 5, Op2: 4}, Access: ReadWrite},
	{Name: "DBGBCR5_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 5, Op2: 5}, Access: ReadWrite},
	{Name: "DBGWVR5_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 5, Op2: 6}, Access: ReadWrite},
	{Name: "DBGWCR5_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 5, Op2: 7}, Access: ReadWrite},
	{Name: "DBGBVR6_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 6, Op2: 4}, Access: ReadWrite},
	{Name: "DBGBCR6_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 6, Op2: 5}, Access: ReadWrite},
	{Name: "DBGWVR6_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 6, Op2: 6}, Access: ReadWrite},
	{Name: "DBGWCR6_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 6, Op2: 7}, Access: ReadWrite},
	{Name: "DBGBVR7_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 7, Op2: 4}, Access: ReadWrite},
	{Name: "DBGBCR7_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 7, Op2: 5}, Access: ReadWrite},
	{Name: "DBGWVR7_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 7, Op2: 6}, Access: ReadWrite},
	{Name: "DBGWCR7_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 7, Op2: 7}, Access: ReadWrite},
	{Name: "DBGBVR8_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 8, Op2: 4}, Access: ReadWrite},
	{Name: "DBGBCR8_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 8, Op2: 5}, Access: ReadWrite},
	{Name: "DBGWVR8_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 8, Op2: 6}, Access: ReadWrite},
	{Name: "DBGWCR8_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 8, Op2: 7}, Access: ReadWrite},
	{Name: "DBGBVR9_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 9, Op2: 4}, Access: ReadWrite},
	{Name: "DBGBCR9_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 9, Op2: 5}, Access: ReadWrite},
	{Name: "DBGWVR9_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 9, Op2: 6}, Access: ReadWrite},
	{Name: "DBGWCR9_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 9, Op2: 7}, Access: ReadWrite},
	{Name: "DBGBVR10_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 10, Op2: 4}, Access: ReadWrite},
	{Name: "DBGBCR10_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 10, Op2: 5}, Access: ReadWrite},
	{Name: "DBGWVR10_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 10, Op2: 6}, Access: ReadWrite},
	{Name: "DBGWCR10_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 10, Op2: 7}, Access: ReadWrite},
	{Name: "DBGBVR11_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 11, Op2: 4}, Access: ReadWrite},
	{Name: "DBGBCR11_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 11, Op2: 5}, Access: ReadWrite},
	{Name: "DBGWVR11_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 11, Op2: 6}, Access: ReadWrite},
	{Name: "DBGWCR11_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 11, Op2: 7}, Access: ReadWrite},
	{Name: "DBGBVR12_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 12, Op2: 4}, Access: ReadWrite},
	{Name: "DBGBCR12_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 12, Op2: 5}, Access: ReadWrite},
	{Name: "DBGWVR12_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 12, Op2: 6}, Access: ReadWrite},
	{Name: "DBGWCR12_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 12, Op2: 7}, Access: ReadWrite},
	{Name: "DBGBVR13_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 13, Op2: 4}, Access: ReadWrite},
	{Name: "DBGBCR13_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 13, Op2: 5}, Access: ReadWrite},
	{Name: "DBGWVR13_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 13, Op2: 6}, Access: ReadWrite},
	{Name: "DBGWCR13_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 13, Op2: 7}, Access: ReadWrite},
	{Name: "DBGBVR14_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 14, Op2: 4}, Access: ReadWrite},
	{Name: "DBGBCR14_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 14, Op2: 5}, Access: ReadWrite},
	{Name: "DBGWVR14_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 14, Op2: 6}, Access: ReadWrite},
	{Name: "DBGWCR14_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 14, Op2: 7}, Access: ReadWrite},
	{Name: "DBGBVR15_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 15, Op2: 4}, Access: ReadWrite},
	{Name: "DBGBCR15_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 15, Op2: 5}, Access: ReadWrite},
	{Name: "DBGWVR15_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 15, Op2: 6}, Access: ReadWrite},
	{Name: "DBGWCR15_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 0, CRm: 15, Op2: 7}, Access: ReadWrite},
	{Name: "MDRAR_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 1, CRm: 0, Op2: 0}, Access: ReadOnly},
	{Name: "OSLAR_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 1, CRm: 0, Op2: 4}, Access: WriteOnly},
	{Name: "OSLSR_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 1, CRm: 1, Op2: 4}, Access: ReadOnly},
	{Name: "OSDLR_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 1, CRm: 3, Op2: 4}, Access: ReadWrite},
	{Name: "DBGPRCR_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 1, CRm: 4, Op2: 4}, Access: ReadWrite},
	{Name: "DBGCLAIMSET_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 7, CRm: 8, Op2: 6}, Access: ReadWrite},
	{Name: "DBGCLAIMCLR_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 7, CRm: 9, Op2: 6}, Access: ReadWrite},
	{Name: "DBGAUTHSTATUS_EL1", Coordinates: Coordinates{Op0: 2, Op1: 0, CRn: 7, CRm: 14, Op2: 6}, Access: ReadOnly},
	{Name: "MDCCSR_EL0", Coordinates: Coordinates{Op0: 2, Op1: 3, CRn: 0, CRm: 1, Op2: 0}, Access: ReadOnly},
	{Name: "DBGDTR_EL0", Coordinates: Coordinates{Op0: 2, Op1: 3, CRn: 0, CRm: 4, Op2: 0}, Access: ReadWrite},
	{Name: "DBGDTRRX_EL0", Coordinates: Coordinates{Op0: 2, Op1: 3, CRn: 0, CRm: 5, Op2: 0}, Access: ReadOnly},
	{Name: "DBGDTRTX_EL0", Coordinates: Coordinates{Op0: 2, Op1: 3, CRn: 0, CRm: 5, Op2: 0}, Access: WriteOnly},
	{Name: "DBGVCR32_EL2", Coordinates: Coordinates{Op0: 2, Op1: 4, CRn: 0, CRm: 7, Op2: 0}, Access: ReadWrite},

	// Identification
	{Name: "MIDR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 0, Op2: 0}, Access: ReadOnly},
	{Name: "MPIDR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 0, Op2: 5}, Access: ReadOnly},
	{Name: "REVIDR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 0, Op2: 6}, Access: ReadOnly},
	{Name: "ID_PFR0_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 1, Op2: 0}, Access: ReadOnly},
	{Name: "ID_PFR1_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 1, Op2: 1}, Access: ReadOnly},
	{Name: "ID_DFR0_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 1, Op2: 2}, Access: ReadOnly},
	{Name: "ID_AFR0_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 1, Op2: 3}, Access: ReadOnly},
	{Name: "ID_MMFR0_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 1, Op2: 4}, Access: ReadOnly},
	{Name: "ID_MMFR1_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 1, Op2: 5}, Access: ReadOnly},
	{Name: "ID_MMFR2_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 1, Op2: 6}, Access: ReadOnly},
	{Name: "ID_MMFR3_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 1, Op2: 7}, Access: ReadOnly},
	{Name: "ID_ISAR0_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 2, Op2: 0}, Access: ReadOnly},
	{Name: "ID_ISAR1_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 2, Op2: 1}, Access: ReadOnly},
	{Name: "ID_ISAR2_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 2, Op2: 2}, Access: ReadOnly},
	{Name: "ID_ISAR3_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 2, Op2: 3}, Access: ReadOnly},
	{Name: "ID_ISAR4_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 2, Op2: 4}, Access: ReadOnly},
	{Name: "ID_ISAR5_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 2, Op2: 5}, Access: ReadOnly},
	{Name: "ID_MMFR4_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 2, Op2: 6}, Access: ReadOnly},
	{Name: "ID_ISAR6_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 2, Op2: 7}, Access: ReadOnly},
	{Name: "MVFR0_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 3, Op2: 0}, Access: ReadOnly},
	{Name: "MVFR1_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 3, Op2: 1}, Access: ReadOnly},
	{Name: "MVFR2_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 3, Op2: 2}, Access: ReadOnly},
	{Name: "ID_PFR2_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 3, Op2: 4}, Access: ReadOnly},
	{Name: "ID_DFR1_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 3, Op2: 5}, Access: ReadOnly},
	{Name: "ID_MMFR5_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 3, Op2: 6}, Access: ReadOnly},
	{Name: "ID_AA64PFR0_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 4, Op2: 0}, Access: ReadOnly},
	{Name: "ID_AA64PFR1_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 4, Op2: 1}, Access: ReadOnly},
	{Name: "ID_AA64PFR2_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 4, Op2: 2}, Access: ReadOnly},
	{Name: "ID_AA64ZFR0_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 4, Op2: 4}, Access: ReadOnly},
	{Name: "ID_AA64SMFR0_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 4, Op2: 5}, Access: ReadOnly},
	{Name: "ID_AA64DFR0_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 5, Op2: 0}, Access: ReadOnly},
	{Name: "ID_AA64DFR1_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 5, Op2: 1}, Access: ReadOnly},
	{Name: "ID_AA64AFR0_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 5, Op2: 4}, Access: ReadOnly},
	{Name: "ID_AA64AFR1_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 5, Op2: 5}, Access: ReadOnly},
	{Name: "ID_AA64ISAR0_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 6, Op2: 0}, Access: ReadOnly},
	{Name: "ID_AA64ISAR1_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 6, Op2: 1}, Access: ReadOnly},
	{Name: "ID_AA64ISAR2_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 6, Op2: 2}, Access: ReadOnly},
	{Name: "ID_AA64MMFR0_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 7, Op2: 0}, Access: ReadOnly},
	{Name: "ID_AA64MMFR1_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 7, Op2: 1}, Access: ReadOnly},
	{Name: "ID_AA64MMFR2_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 7, Op2: 2}, Access: ReadOnly},
	{Name: "ID_AA64MMFR3_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 0, CRm: 7, Op2: 3}, Access: ReadOnly},
	{Name: "CCSIDR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 1, CRn: 0, CRm: 0, Op2: 0}, Access: ReadOnly},
	{Name: "CLIDR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 1, CRn: 0, CRm: 0, Op2: 1}, Access: ReadOnly},
	{Name: "CCSIDR2_EL1", Coordinates: Coordinates{Op0: 3, Op1: 1, CRn: 0, CRm: 0, Op2: 2}, Access: ReadOnly},
	{Name: "AIDR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 1, CRn: 0, CRm: 0, Op2: 7}, Access: ReadOnly},
	{Name: "CSSELR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 2, CRn: 0, CRm: 0, Op2: 0}, Access: ReadWrite},
	{Name: "CTR_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 0, CRm: 0, Op2: 1}, Access: ReadOnly},
	{Name: "DCZID_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 0, CRm: 0, Op2: 7}, Access: ReadOnly},

	// System control
	{Name: "SCTLR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 1, CRm: 0, Op2: 0}, Access: ReadWrite},
	{Name: "ACTLR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 1, CRm: 0, Op2: 1}, Access: ReadWrite},
	{Name: "CPACR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 1, CRm: 0, Op2: 2}, Access: ReadWrite},
	{Name: "ZCR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 1, CRm: 2, Op2: 0}, Access: ReadWrite},
	{Name: "TTBR0_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 2, CRm: 0, Op2: 0}, Access: ReadWrite},
	{Name: "TTBR1_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 2, CRm: 0, Op2: 1}, Access: ReadWrite},
	{Name: "TCR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 2, CRm: 0, Op2: 2}, Access: ReadWrite},

	// Pointer authentication
	{Name: "APIAKEYLO_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 2, CRm: 1, Op2: 0}, Access: ReadWrite},
	{Name: "APIAKEYHI_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 2, CRm: 1, Op2: 1}, Access: ReadWrite},
	{Name: "APIBKEYLO_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 2, CRm: 1, Op2: 2}, Access: ReadWrite},
	{Name: "APIBKEYHI_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 2, CRm: 1, Op2: 3}, Access: ReadWrite},
	{Name: "APDAKEYLO_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 2, CRm: 2, Op2: 0}, Access: ReadWrite},
	{Name: "APDAKEYHI_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 2, CRm: 2, Op2: 1}, Access: ReadWrite},
	{Name: "APDBKEYLO_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 2, CRm: 2, Op2: 2}, Access: ReadWrite},
	{Name: "APDBKEYHI_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 2, CRm: 2, Op2: 3}, Access: ReadWrite},
	{Name: "APGAKEYLO_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 2, CRm: 3, Op2: 0}, Access: ReadWrite},
	{Name: "APGAKEYHI_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 2, CRm: 3, Op2: 1}, Access: ReadWrite},

	// Exception handling
	{Name: "SPSR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 4, CRm: 0, Op2: 0}, Access: ReadWrite},
	{Name: "ELR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 4, CRm: 0, Op2: 1}, Access: ReadWrite},
	{Name: "SP_EL0", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 4, CRm: 1, Op2: 0}, Access: ReadWrite},
	{Name: "SPSel", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 4, CRm: 2, Op2: 0}, Access: ReadWrite},
	{Name: "CurrentEL", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 4, CRm: 2, Op2: 2}, Access: ReadOnly},
	{Name: "PAN", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 4, CRm: 2, Op2: 3}, Access: ReadWrite},
	{Name: "UAO", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 4, CRm: 2, Op2: 4}, Access: ReadWrite},
	{Name: "NZCV", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 4, CRm: 2, Op2: 0}, Access: ReadWrite},
	{Name: "DAIF", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 4, CRm: 2, Op2: 1}, Access: ReadWrite},
	{Name: "FPCR", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 4, CRm: 4, Op2: 0}, Access: ReadWrite},
	{Name: "FPSR", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 4, CRm: 4, Op2: 1}, Access: ReadWrite},
	{Name: "SP_EL1", Coordinates: Coordinates{Op0: 3, Op1: 4, CRn: 4, CRm: 1, Op2: 0}, Access: ReadWrite},
	{Name: "AFSR0_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 5, CRm: 1, Op2: 0}, Access: ReadWrite},
	{Name: "AFSR1_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 5, CRm: 1, Op2: 1}, Access: ReadWrite},
	{Name: "ESR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 5, CRm: 2, Op2: 0}, Access: ReadWrite},
	{Name: "ERRIDR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 5, CRm: 3, Op2: 0}, Access: ReadOnly},
	{Name: "ERRSELR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 5, CRm: 3, Op2: 1}, Access: ReadWrite},
	{Name: "FAR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 6, CRm: 0, Op2: 0}, Access: ReadWrite},
	{Name: "PAR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 7, CRm: 4, Op2: 0}, Access: ReadWrite},

	// Performance monitors
	{Name: "PMSCR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 9, CRm: 9, Op2: 0}, Access: ReadWrite},
	{Name: "PMSIDR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 9, CRm: 9, Op2: 7}, Access: ReadOnly},
	{Name: "PMINTENSET_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 9, CRm: 14, Op2: 1}, Access: ReadWrite},
	{Name: "PMINTENCLR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 9, CRm: 14, Op2: 2}, Access: ReadWrite},
	{Name: "PMMIR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 9, CRm: 14, Op2: 6}, Access: ReadOnly},
	{Name: "PMCR_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 9, CRm: 12, Op2: 0}, Access: ReadWrite},
	{Name: "PMCNTENSET_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 9, CRm: 12, Op2: 1}, Access: ReadWrite},
	{Name: "PMCNTENCLR_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 9, CRm: 12, Op2: 2}, Access: ReadWrite},
	{Name: "PMOVSCLR_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 9, CRm: 12, Op2: 3}, Access: ReadWrite},
	{Name: "PMSWINC_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 9, CRm: 12, Op2: 4}, Access: WriteOnly},
	{Name: "PMSELR_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 9, CRm: 12, Op2: 5}, Access: ReadWrite},
	{Name: "PMCEID0_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 9, CRm: 12, Op2: 6}, Access: ReadOnly},
	{Name: "PMCEID1_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 9, CRm: 12, Op2: 7}, Access: ReadOnly},
	{Name: "PMCCNTR_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 9, CRm: 13, Op2: 0}, Access: ReadWrite},
	{Name: "PMXEVTYPER_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 9, CRm: 13, Op2: 1}, Access: ReadWrite},
	{Name: "PMXEVCNTR_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 9, CRm: 13, Op2: 2}, Access: ReadWrite},
	{Name: "PMUSERENR_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 9, CRm: 14, Op2: 0}, Access: ReadWrite},
	{Name: "PMOVSSET_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 9, CRm: 14, Op2: 3}, Access: ReadWrite},
	{Name: "PMEVCNTR0_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 8, Op2: 0}, Access: ReadWrite},
	{Name: "PMEVCNTR1_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 8, Op2: 1}, Access: ReadWrite},
	{Name: "PMEVCNTR2_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 8, Op2: 2}, Access: ReadWrite},
	{Name: "PMEVCNTR3_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 8, Op2: 3}, Access: ReadWrite},
	{Name: "PMEVCNTR4_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 8, Op2: 4}, Access: ReadWrite},
	{Name: "PMEVCNTR5_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 8, Op2: 5}, Access: ReadWrite},
	{Name: "PMEVCNTR6_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 8, Op2: 6}, Access: ReadWrite},
	{Name: "PMEVCNTR7_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 8, Op2: 7}, Access: ReadWrite},
	{Name: "PMEVCNTR8_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 9, Op2: 0}, Access: ReadWrite},
	{Name: "PMEVCNTR9_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 9, Op2: 1}, Access: ReadWrite},
	{Name: "PMEVCNTR10_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 9, Op2: 2}, Access: ReadWrite},
	{Name: "PMEVCNTR11_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 9, Op2: 3}, Access: ReadWrite},
	{Name: "PMEVCNTR12_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 9, Op2: 4}, Access: ReadWrite},
	{Name: "PMEVCNTR13_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 9, Op2: 5}, Access: ReadWrite},
	{Name: "PMEVCNTR14_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 9, Op2: 6}, Access: ReadWrite},
	{Name: "PMEVCNTR15_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 9, Op2: 7}, Access: ReadWrite},
	{Name: "PMEVCNTR16_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 10, Op2: 0}, Access: ReadWrite},
	{Name: "PMEVCNTR17_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 10, Op2: 1}, Access: ReadWrite},
	{Name: "PMEVCNTR18_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 10, Op2: 2}, Access: ReadWrite},
	{Name: "PMEVCNTR19_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 10, Op2: 3}, Access: ReadWrite},
	{Name: "PMEVCNTR20_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 10, Op2: 4}, Access: ReadWrite},
	{Name: "PMEVCNTR21_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 10, Op2: 5}, Access: ReadWrite},
	{Name: "PMEVCNTR22_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 10, Op2: 6}, Access: ReadWrite},
	{Name: "PMEVCNTR23_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 10, Op2: 7}, Access: ReadWrite},
	{Name: "PMEVCNTR24_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 11, Op2: 0}, Access: ReadWrite},
	{Name: "PMEVCNTR25_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 11, Op2: 1}, Access: ReadWrite},
	{Name: "PMEVCNTR26_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 11, Op2: 2}, Access: ReadWrite},
	{Name: "PMEVCNTR27_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 11, Op2: 3}, Access: ReadWrite},
	{Name: "PMEVCNTR28_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 11, Op2: 4}, Access: ReadWrite},
	{Name: "PMEVCNTR29_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 11, Op2: 5}, Access: ReadWrite},
	{Name: "PMEVCNTR30_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 11, Op2: 6}, Access: ReadWrite},
	{Name: "PMEVTYPER0_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 12, Op2: 0}, Access: ReadWrite},
	{Name: "PMEVTYPER1_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 12, Op2: 1}, Access: ReadWrite},
	{Name: "PMEVTYPER2_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 12, Op2: 2}, Access: ReadWrite},
	{Name: "PMEVTYPER3_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 12, Op2: 3}, Access: ReadWrite},
	{Name: "PMEVTYPER4_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 12, Op2: 4}, Access: ReadWrite},
	{Name: "PMEVTYPER5_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 12, Op2: 5}, Access: ReadWrite},
	{Name: "PMEVTYPER6_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 12, Op2: 6}, Access: ReadWrite},
	{Name: "PMEVTYPER7_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 12, Op2: 7}, Access: ReadWrite},
	{Name: "PMEVTYPER8_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 13, Op2: 0}, Access: ReadWrite},
	{Name: "PMEVTYPER9_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 13, Op2: 1}, Access: ReadWrite},
	{Name: "PMEVTYPER10_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 13, Op2: 2}, Access: ReadWrite},
	{Name: "PMEVTYPER11_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 13, Op2: 3}, Access: ReadWrite},
	{Name: "PMEVTYPER12_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 13, Op2: 4}, Access: ReadWrite},
	{Name: "PMEVTYPER13_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 13, Op2: 5}, Access: ReadWrite},
	{Name: "PMEVTYPER14_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 13, Op2: 6}, Access: ReadWrite},
	{Name: "PMEVTYPER15_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 13, Op2: 7}, Access: ReadWrite},
	{Name: "PMEVTYPER16_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 14, Op2: 0}, Access: ReadWrite},
	{Name: "PMEVTYPER17_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 14, Op2: 1}, Access: ReadWrite},
	{Name: "PMEVTYPER18_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 14, Op2: 2}, Access: ReadWrite},
	{Name: "PMEVTYPER19_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 14, Op2: 3}, Access: ReadWrite},
	{Name: "PMEVTYPER20_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 14, Op2: 4}, Access: ReadWrite},
	{Name: "PMEVTYPER21_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 14, Op2: 5}, Access: ReadWrite},
	{Name: "PMEVTYPER22_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 14, Op2: 6}, Access: ReadWrite},
	{Name: "PMEVTYPER23_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 14, Op2: 7}, Access: ReadWrite},
	{Name: "PMEVTYPER24_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 15, Op2: 0}, Access: ReadWrite},
	{Name: "PMEVTYPER25_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 15, Op2: 1}, Access: ReadWrite},
	{Name: "PMEVTYPER26_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 15, Op2: 2}, Access: ReadWrite},
	{Name: "PMEVTYPER27_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 15, Op2: 3}, Access: ReadWrite},
	{Name: "PMEVTYPER28_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 15, Op2: 4}, Access: ReadWrite},
	{Name: "PMEVTYPER29_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 15, Op2: 5}, Access: ReadWrite},
	{Name: "PMEVTYPER30_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 15, Op2: 6}, Access: ReadWrite},
	{Name: "PMCCFILTR_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 15, Op2: 7}, Access: ReadWrite},

	// Memory attributes
	{Name: "MAIR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 10, CRm: 2, Op2: 0}, Access: ReadWrite},
	{Name: "AMAIR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 10, CRm: 3, Op2: 0}, Access: ReadWrite},
	{Name: "LORSA_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 10, CRm: 4, Op2: 0}, Access: ReadWrite},
	{Name: "LOREA_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 10, CRm: 4, Op2: 1}, Access: ReadWrite},
	{Name: "LORN_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 10, CRm: 4, Op2: 2}, Access: ReadWrite},
	{Name: "LORC_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 10, CRm: 4, Op2: 3}, Access: ReadWrite},
	{Name: "LORID_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 10, CRm: 4, Op2: 7}, Access: ReadOnly},

	// Vectors, context and threads
	{Name: "VBAR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 12, CRm: 0, Op2: 0}, Access: ReadWrite},
	{Name: "ISR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 12, CRm: 1, Op2: 0}, Access: ReadOnly},
	{Name: "ICC_PMR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 4, CRm: 6, Op2: 0}, Access: ReadWrite},
	{Name: "ICC_SRE_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 12, CRm: 12, Op2: 5}, Access: ReadWrite},
	{Name: "CONTEXTIDR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 13, CRm: 0, Op2: 1}, Access: ReadWrite},
	{Name: "TPIDR_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 13, CRm: 0, Op2: 4}, Access: ReadWrite},
	{Name: "SCXTNUM_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 13, CRm: 0, Op2: 7}, Access: ReadWrite},
	{Name: "CNTKCTL_EL1", Coordinates: Coordinates{Op0: 3, Op1: 0, CRn: 14, CRm: 1, Op2: 0}, Access: ReadWrite},
	{Name: "TPIDR_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 13, CRm: 0, Op2: 2}, Access: ReadWrite},
	{Name: "TPIDRRO_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 13, CRm: 0, Op2: 3}, Access: ReadWrite},
	{Name: "SCXTNUM_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 13, CRm: 0, Op2: 7}, Access: ReadWrite},

	// Generic timer
	{Name: "CNTFRQ_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 0, Op2: 0}, Access: ReadWrite},
	{Name: "CNTPCT_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 0, Op2: 1}, Access: ReadOnly},
	// KVM_REG_ARM_TIMER_CNT and KVM_REG_ARM_TIMER_CVAL have swapped encodings
	// in the KVM ABI. These two entries follow KVM, not the architecture.
	{Name: "CNTV_CVAL_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 0, Op2: 2}, Access: ReadWrite},
	{Name: "CNTP_TVAL_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 2, Op2: 0}, Access: ReadWrite},
	{Name: "CNTP_CTL_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 2, Op2: 1}, Access: ReadWrite},
	{Name: "CNTP_CVAL_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 2, Op2: 2}, Access: ReadWrite},
	{Name: "CNTV_TVAL_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 3, Op2: 0}, Access: ReadWrite},
	{Name: "CNTV_CTL_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 3, Op2: 1}, Access: ReadWrite},
	{Name: "CNTVCT_EL0", Coordinates: Coordinates{Op0: 3, Op1: 3, CRn: 14, CRm: 3, Op2: 2}, Access: ReadOnly},
	{Name: "DACR32_EL2", Coordinates: Coordinates{Op0: 3, Op1: 4, CRn: 3, CRm: 0, Op2: 0}, Access: ReadWrite},
	{Name: "IFSR32_EL2", Coordinates: Coordinates{Op0: 3, Op1: 4, CRn: 5, CRm: 0, Op2: 1}, Access: ReadWrite},
	{Name: "FPEXC32_EL2", Coordinates: Coordinates{Op0: 3, Op1: 4, CRn: 5, CRm: 3, Op2: 0}, Access: ReadWrite},
}
