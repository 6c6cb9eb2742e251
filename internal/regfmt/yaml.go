package regfmt

import (
	"fmt"
	"io"

	"github.com/tinyrange/sysregs/internal/regquery"
	"gopkg.in/yaml.v3"
)

type yamlRegister struct {
	ID     string   `yaml:"id"`
	Class  string   `yaml:"class,omitempty"`
	Size   int      `yaml:"size,omitempty"`
	Value  string   `yaml:"value,omitempty"`
	Names  []string `yaml:"names,omitempty"`
	Access []string `yaml:"access,omitempty"`
}

// WriteYAML renders results as a YAML sequence. Options select the same
// fields as Line, including the None marker for unmatched registers; Color
// is ignored.
func WriteYAML(w io.Writer, results []regquery.Result, o Options) error {
	regs := make([]yamlRegister, 0, len(results))
	for _, r := range results {
		reg := yamlRegister{ID: o.id(r.ID)}
		if o.Class {
			reg.Class = r.ID.Class().String()
		}
		if o.Size {
			reg.Size = r.ID.SizeBits()
		}
		if o.Value && r.HasValue {
			reg.Value = HexValue(r.Value)
		}
		if o.Names {
			if len(r.Entries) == 0 {
				reg.Names = []string{None}
			}
			for _, e := range r.Entries {
				reg.Names = append(reg.Names, e.Name)
				if o.Access {
					reg.Access = append(reg.Access, e.Access.String())
				}
			}
		}
		regs = append(regs, reg)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(regs); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
