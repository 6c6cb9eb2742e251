// Package regfmt renders enumeration and lookup results for display.
package regfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/tinyrange/sysregs/internal/regquery"
	"github.com/tinyrange/sysregs/internal/sysreg"
)

// None is printed in place of a name when nothing in the catalog matches.
const None = "None"

// TrimValue returns the shortest little-endian prefix of buf that has the
// same numeric value. An all-zero or empty buffer yields a single zero byte.
func TrimValue(buf []byte) []byte {
	for i := len(buf) - 1; i >= 0; i-- {
		if buf[i] != 0 {
			return buf[:i+1]
		}
	}
	return []byte{0}
}

// HexValue formats a little-endian buffer as a minimal 0x-prefixed hex
// number, most significant byte first.
func HexValue(buf []byte) string {
	v := TrimValue(buf)

	var sb strings.Builder
	sb.Grow(2 + 2*len(v))
	sb.WriteString("0x")
	sb.WriteString(strconv.FormatUint(uint64(v[len(v)-1]), 16))
	for i := len(v) - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%02x", v[i])
	}
	return sb.String()
}

type Options struct {
	Size   bool
	Value  bool
	Names  bool
	Class  bool
	Access bool

	// Decimal prints identifiers in base 10 instead of 0x-hex.
	Decimal bool

	// Color styles absence markers with ANSI escapes.
	Color bool
}

func (o Options) id(id sysreg.ID) string {
	if o.Decimal {
		return strconv.FormatUint(uint64(id), 10)
	}
	return id.String()
}

func (o Options) none() string {
	if o.Color {
		return ansi.Style{}.Faint().Styled(None)
	}
	return None
}

// Line renders one enumerated register. The output never contains a newline.
func Line(r regquery.Result, o Options) string {
	fields := []string{o.id(r.ID)}

	if o.Class {
		fields = append(fields, r.ID.Class().String())
	}
	if o.Size {
		fields = append(fields, strconv.Itoa(r.ID.SizeBits()))
	}
	if o.Value {
		if r.HasValue {
			fields = append(fields, HexValue(r.Value))
		} else {
			fields = append(fields, "-")
		}
	}
	if o.Names {
		if len(r.Entries) == 0 {
			fields = append(fields, o.none())
		}
		for _, e := range r.Entries {
			if o.Access {
				fields = append(fields, e.Name+"("+e.Access.String()+")")
			} else {
				fields = append(fields, e.Name)
			}
		}
	}

	return strings.Join(fields, " ")
}

// Write renders results one per line.
func Write(w io.Writer, results []regquery.Result, o Options) error {
	for _, r := range results {
		if _, err := io.WriteString(w, Line(r, o)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func entryString(e sysreg.Entry) string {
	c := e.Coordinates
	return fmt.Sprintf("%s op0=%d op1=%d CRn=%d CRm=%d op2=%d %s",
		e.Name, c.Op0, c.Op1, c.CRn, c.CRm, c.Op2, e.Access)
}

// WriteFindIDs renders id lookups as "id: <id> => <entry>", one line per
// match and a None line for identifiers without one.
func WriteFindIDs(w io.Writer, results []regquery.Result, o Options) error {
	for _, r := range results {
		if len(r.Entries) == 0 {
			if _, err := fmt.Fprintf(w, "id: %s => %s\n", o.id(r.ID), o.none()); err != nil {
				return err
			}
			continue
		}
		for _, e := range r.Entries {
			if _, err := fmt.Fprintf(w, "id: %s => %s\n", o.id(r.ID), entryString(e)); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteFindNames renders name lookups as "register: <name> => <entry> id=<id>".
func WriteFindNames(w io.Writer, results []regquery.NameResult, o Options) error {
	for _, r := range results {
		if len(r.Entries) == 0 {
			if _, err := fmt.Fprintf(w, "register: %s => %s\n", r.Name, o.none()); err != nil {
				return err
			}
			continue
		}
		for _, e := range r.Entries {
			if _, err := fmt.Fprintf(w, "register: %s => %s id=%s\n", r.Name, entryString(e), o.id(e.ID())); err != nil {
				return err
			}
		}
	}
	return nil
}
