package factory

import (
	"fmt"

	"github.com/tinyrange/sysregs/internal/hv"
)

// OpenWithArchitecture opens the host hypervisor and checks that it runs
// guests of the requested architecture. An invalid architecture means "use
// the host default".
func OpenWithArchitecture(arch hv.CpuArchitecture) (hv.Hypervisor, error) {
	h, err := Open()
	if err != nil {
		return nil, err
	}
	if arch != hv.ArchitectureInvalid && h.Architecture() != arch {
		h.Close()
		return nil, fmt.Errorf("unsupported architecture %q", arch)
	}
	return h, nil
}
