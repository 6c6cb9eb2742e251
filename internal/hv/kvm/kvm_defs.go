//go:build linux

package kvm

const (
	kvmApiVersion = 12

	kvmGetApiVersion      = 0xae00
	kvmCreateVm           = 0xae01
	kvmCheckExtension     = 0xae03
	kvmCreateVcpu         = 0xae41
	kvmGetOneReg          = 0x4010aeab
	kvmArmVcpuInitIoctl   = 0x4020aeae
	kvmArmPreferredTarget = 0x8020aeaf
	kvmGetRegList         = 0xc008aeb0
	kvmArmVcpuFinalize    = 0x4004aec2

	kvmCapArmVmIpaSize = 165
	kvmCapArmSve       = 170
)
