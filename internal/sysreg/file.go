package sysreg

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// FileVersion is written into catalog files produced by WriteFile.
// LoadFile accepts any v1.x.y document.
const FileVersion = "v1.0.0"

type fileRegister struct {
	Name   string `yaml:"name"`
	Op0    uint8  `yaml:"op0"`
	Op1    uint8  `yaml:"op1"`
	CRn    uint8  `yaml:"crn"`
	CRm    uint8  `yaml:"crm"`
	Op2    uint8  `yaml:"op2"`
	Access string `yaml:"access,omitempty"`
}

type fileDocument struct {
	Version   string         `yaml:"version"`
	Registers []fileRegister `yaml:"registers"`
}

// LoadFile reads a catalog file from disk. See Parse for the format.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes a YAML (or JSON) catalog. The document is either a mapping
// with version and registers keys, or a bare list of registers.
func Parse(data []byte) (*Catalog, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return NewCatalog(nil), nil
	}

	var doc fileDocument
	switch root := node.Content[0]; root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&doc.Registers); err != nil {
			return nil, err
		}
	case yaml.MappingNode:
		if err := root.Decode(&doc); err != nil {
			return nil, err
		}
		if err := checkVersion(doc.Version); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("sysreg: catalog must be a list or a mapping")
	}

	entries := make([]Entry, 0, len(doc.Registers))
	for i, reg := range doc.Registers {
		if reg.Name == "" {
			return nil, fmt.Errorf("sysreg: register %d has no name", i)
		}
		access, err := ParseAccess(reg.Access)
		if err != nil {
			return nil, fmt.Errorf("register %s: %w", reg.Name, err)
		}
		entries = append(entries, Entry{
			Name: reg.Name,
			Coordinates: Coordinates{
				Op0: reg.Op0,
				Op1: reg.Op1,
				CRn: reg.CRn,
				CRm: reg.CRm,
				Op2: reg.Op2,
			},
			Access: access,
		})
	}

	return NewCatalog(entries), nil
}

func checkVersion(v string) error {
	if v == "" {
		return nil
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("sysreg: invalid catalog version %q", v)
	}
	if want := semver.Major(FileVersion); semver.Major(v) != want {
		return fmt.Errorf("sysreg: unsupported catalog version %s, want %s.x.y", v, want)
	}
	return nil
}

// WriteFile encodes c in the format read by Parse.
func WriteFile(w io.Writer, c *Catalog) error {
	doc := fileDocument{
		Version:   FileVersion,
		Registers: make([]fileRegister, 0, c.Len()),
	}
	for _, e := range c.entries {
		doc.Registers = append(doc.Registers, fileRegister{
			Name:   e.Name,
			Op0:    e.Coordinates.Op0,
			Op1:    e.Coordinates.Op1,
			CRn:    e.Coordinates.CRn,
			CRm:    e.Coordinates.CRm,
			Op2:    e.Coordinates.Op2,
			Access: e.Access.String(),
		})
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close catalog encoder: %w", err)
	}

	_, err := w.Write(buf.Bytes())
	return err
}
