//go:build !(linux && arm64)

package factory

import "github.com/tinyrange/sysregs/internal/hv"

// Open returns hv.ErrHypervisorUnsupported; register enumeration needs KVM on
// an arm64 Linux host.
func Open() (hv.Hypervisor, error) {
	return nil, hv.ErrHypervisorUnsupported
}
