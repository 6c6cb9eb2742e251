//go:build linux && arm64

package factory

import (
	"github.com/tinyrange/sysregs/internal/hv"
	"github.com/tinyrange/sysregs/internal/hv/kvm"
)

func Open() (hv.Hypervisor, error) {
	return kvm.Open()
}
