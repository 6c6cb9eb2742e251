package regfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/tinyrange/sysregs/internal/regquery"
	"github.com/tinyrange/sysregs/internal/sysreg"
	"gopkg.in/yaml.v3"
)

func TestHexValue(t *testing.T) {
	for _, tt := range []struct {
		in   []byte
		want string
	}{
		{nil, "0x0"},
		{[]byte{0}, "0x0"},
		{make([]byte, 2048), "0x0"},
		{[]byte{0x01}, "0x1"},
		{[]byte{0x10, 0, 0, 0}, "0x10"},
		{[]byte{0x22, 0x11, 0, 0, 0, 0, 0, 0}, "0x1122"},
		{[]byte{0x05, 0x01}, "0x105"},
		{[]byte{0x00, 0x0a}, "0xa00"},
		{[]byte{0xef, 0xbe, 0xad, 0xde, 0, 0, 0, 0}, "0xdeadbeef"},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, "0xffffffffffffffff"},
	} {
		if got := HexValue(tt.in); got != tt.want {
			t.Errorf("HexValue(% x) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestTrimValueIdempotent(t *testing.T) {
	for _, in := range [][]byte{
		{0x22, 0x11, 0, 0},
		{0},
		make([]byte, 17),
		{0, 0, 0, 1},
	} {
		once := TrimValue(in)
		twice := TrimValue(once)
		if !bytes.Equal(once, twice) {
			t.Errorf("TrimValue not idempotent for % x: % x then % x", in, once, twice)
		}
		if HexValue(once) != HexValue(in) {
			t.Errorf("trimmed value renders differently: %s vs %s", HexValue(once), HexValue(in))
		}
	}
	if got := TrimValue(make([]byte, 64)); !bytes.Equal(got, []byte{0}) {
		t.Fatalf("TrimValue(zeros) = % x", got)
	}
}

func testResults() []regquery.Result {
	x := sysreg.NewCatalog([]sysreg.Entry{{Name: "X", Coordinates: sysreg.Coordinates{Op0: 3, CRn: 15}}})
	ids := []sysreg.ID{0x6030000000100000, sysreg.Encode(sysreg.Coordinates{Op0: 3, CRn: 15}), 0x6040000000100054}

	results := regquery.FindIDs(x, ids)
	results[0].Value, results[0].HasValue = []byte{0x34, 0x12, 0, 0, 0, 0, 0, 0}, true
	return results
}

func TestWriteOneLinePerRegister(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testResults(), Options{Names: true}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	if lines[1] != "0x603000000013c780 X" {
		t.Fatalf("matched line = %q", lines[1])
	}
	for _, i := range []int{0, 2} {
		if !strings.HasSuffix(lines[i], " "+None) {
			t.Fatalf("line %d = %q, want absence marker", i, lines[i])
		}
	}
}

func TestLineDecorations(t *testing.T) {
	r := testResults()

	for _, tt := range []struct {
		r    regquery.Result
		o    Options
		want string
	}{
		{r[0], Options{}, "0x6030000000100000"},
		{r[0], Options{Decimal: true}, "6931039826524241920"},
		{r[0], Options{Size: true, Value: true}, "0x6030000000100000 64 0x1234"},
		{r[2], Options{Size: true, Value: true}, "0x6040000000100054 128 -"},
		{r[2], Options{Class: true, Names: true}, "0x6040000000100054 core None"},
		{r[1], Options{Names: true, Access: true}, "0x603000000013c780 X(RW)"},
	} {
		if got := Line(tt.r, tt.o); got != tt.want {
			t.Errorf("Line(%s, %+v) = %q, want %q", tt.r.ID, tt.o, got, tt.want)
		}
	}
}

func TestLineAliases(t *testing.T) {
	id := sysreg.Encode(sysreg.Coordinates{Op0: 2, Op1: 3, CRm: 5})
	r := regquery.FindIDs(sysreg.Default(), []sysreg.ID{id})[0]

	if got := Line(r, Options{Names: true}); got != id.String()+" DBGDTRRX_EL0 DBGDTRTX_EL0" {
		t.Fatalf("Line = %q", got)
	}
}

func TestColorOnlyStylesMarker(t *testing.T) {
	r := testResults()[0]

	colored := Line(r, Options{Names: true, Color: true})
	if colored == Line(r, Options{Names: true}) {
		t.Fatal("Color did not change output")
	}
	if got := ansi.Strip(colored); got != "0x6030000000100000 None" {
		t.Fatalf("stripped = %q", got)
	}
}

func TestWriteFind(t *testing.T) {
	cat := sysreg.Default()
	dtr := sysreg.Encode(sysreg.Coordinates{Op0: 2, Op1: 3, CRm: 5})

	var buf bytes.Buffer
	if err := WriteFindIDs(&buf, regquery.FindIDs(cat, []sysreg.ID{dtr, 12}), Options{}); err != nil {
		t.Fatalf("WriteFindIDs: %v", err)
	}
	want := "id: 0x6030000000139828 => DBGDTRRX_EL0 op0=2 op1=3 CRn=0 CRm=5 op2=0 RO\n" +
		"id: 0x6030000000139828 => DBGDTRTX_EL0 op0=2 op1=3 CRn=0 CRm=5 op2=0 WO\n" +
		"id: 0xc => None\n"
	if buf.String() != want {
		t.Fatalf("WriteFindIDs =\n%s\nwant\n%s", buf.String(), want)
	}

	buf.Reset()
	if err := WriteFindNames(&buf, regquery.FindNames(cat, []string{"SCTLR_EL1", "sctlr"}), Options{Decimal: true}); err != nil {
		t.Fatalf("WriteFindNames: %v", err)
	}
	want = "register: SCTLR_EL1 => SCTLR_EL1 op0=3 op1=0 CRn=1 CRm=0 op2=0 RW id=6931039826524487808\n" +
		"register: sctlr => None\n"
	if buf.String() != want {
		t.Fatalf("WriteFindNames =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, testResults(), Options{Size: true, Value: true, Names: true}); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	var got []map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("yaml.Unmarshal: %v\n%s", err, buf.String())
	}
	if len(got) != 3 {
		t.Fatalf("got %d documents", len(got))
	}
	if got[0]["value"] != "0x1234" || got[0]["size"] != 64 {
		t.Fatalf("first register = %v", got[0])
	}
	if names, ok := got[1]["names"].([]any); !ok || len(names) != 1 || names[0] != "X" {
		t.Fatalf("second register = %v", got[1])
	}
	if names, ok := got[2]["names"].([]any); !ok || len(names) != 1 || names[0] != None {
		t.Fatalf("unmatched register = %v", got[2])
	}
}
