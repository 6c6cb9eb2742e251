package sysreg

import (
	"fmt"
	"sync"
)

// Access describes how software may use a system register.
type Access uint8

const (
	ReadWrite Access = iota
	ReadOnly
	WriteOnly
)

func (a Access) String() string {
	switch a {
	case ReadWrite:
		return "RW"
	case ReadOnly:
		return "RO"
	case WriteOnly:
		return "WO"
	default:
		return fmt.Sprintf("Access(%d)", uint8(a))
	}
}

// ParseAccess accepts the spellings produced by Access.String.
func ParseAccess(s string) (Access, error) {
	switch s {
	case "RW", "rw", "":
		return ReadWrite, nil
	case "RO", "ro":
		return ReadOnly, nil
	case "WO", "wo":
		return WriteOnly, nil
	default:
		return 0, fmt.Errorf("sysreg: unknown access mode %q", s)
	}
}

// Entry is a named system register.
type Entry struct {
	Name        string
	Coordinates Coordinates
	Access      Access
}

// ID returns the KVM identifier derived from the entry's coordinates.
func (e Entry) ID() ID {
	return Encode(e.Coordinates)
}

func (e Entry) String() string {
	return fmt.Sprintf("%s (%s %s id=%s)", e.Name, e.Coordinates, e.Access, e.ID())
}

// Catalog is an immutable set of entries indexed by identifier and name.
// It is safe for concurrent use. Lookups return copies.
type Catalog struct {
	entries []Entry
	byID    map[ID][]int
	byName  map[string][]int
}

// NewCatalog builds a catalog from entries. Input order is preserved and
// entries sharing an identifier (architectural aliases) are all kept.
func NewCatalog(entries []Entry) *Catalog {
	c := &Catalog{
		entries: make([]Entry, len(entries)),
		byID:    make(map[ID][]int, len(entries)),
		byName:  make(map[string][]int, len(entries)),
	}
	copy(c.entries, entries)

	for i, e := range c.entries {
		id := e.ID()
		c.byID[id] = append(c.byID[id], i)
		c.byName[e.Name] = append(c.byName[e.Name], i)
	}

	return c
}

func (c *Catalog) collect(idx []int) []Entry {
	if len(idx) == 0 {
		return nil
	}
	ret := make([]Entry, len(idx))
	for i, j := range idx {
		ret[i] = c.entries[j]
	}
	return ret
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Entries returns a copy of all entries in table order.
func (c *Catalog) Entries() []Entry {
	ret := make([]Entry, len(c.entries))
	copy(ret, c.entries)
	return ret
}

// LookupID returns every entry with the given identifier.
func (c *Catalog) LookupID(id ID) []Entry {
	return c.collect(c.byID[id])
}

// FirstID returns the first entry with the given identifier.
func (c *Catalog) FirstID(id ID) (Entry, bool) {
	idx := c.byID[id]
	if len(idx) == 0 {
		return Entry{}, false
	}
	return c.entries[idx[0]], true
}

// LookupName returns every entry whose name is exactly name.
func (c *Catalog) LookupName(name string) []Entry {
	return c.collect(c.byName[name])
}

type entryKey struct {
	name string
	c    Coordinates
}

// Merge returns a catalog holding the entries of base followed by those of
// overlay. An overlay entry restating a base register (same name and
// coordinates) replaces its access mode instead of adding an alias.
func Merge(base, overlay *Catalog) *Catalog {
	all := make([]Entry, 0, base.Len()+overlay.Len())
	seen := make(map[entryKey]int, base.Len()+overlay.Len())

	for _, src := range [][]Entry{base.entries, overlay.entries} {
		for _, e := range src {
			k := entryKey{e.Name, e.Coordinates}
			if i, ok := seen[k]; ok {
				all[i].Access = e.Access
				continue
			}
			seen[k] = len(all)
			all = append(all, e)
		}
	}

	return NewCatalog(all)
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	return NewCatalog(arm64SystemRegisters)
})

// Default returns the built-in catalog of arm64 system registers.
func Default() *Catalog {
	return defaultCatalog()
}
