package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tinyrange/sysregs/internal/hv"
	"github.com/tinyrange/sysregs/internal/sysreg"
)

type testVCPU struct {
	ids    []uint64
	closed bool
}

func (v *testVCPU) ID() int { return 0 }

func (v *testVCPU) Close() error {
	v.closed = true
	return nil
}

func (v *testVCPU) RegisterList(ids []uint64) (int, error) {
	if len(ids) < len(v.ids) {
		return len(v.ids), hv.ErrRegisterListTooSmall
	}
	copy(ids, v.ids)
	return len(v.ids), nil
}

func (v *testVCPU) ReadRegister(id uint64, buf []byte) error {
	binary.LittleEndian.PutUint64(buf, id&0xffff)
	return nil
}

func newTestApp(vcpu *testVCPU, stdin string) (*app, *bytes.Buffer) {
	var stdout bytes.Buffer
	return &app{
		stdin:  strings.NewReader(stdin),
		stdout: &stdout,
		stderr: &bytes.Buffer{},
		openVCPU: func() (hv.VirtualCPU, func(), error) {
			return vcpu, func() { vcpu.Close() }, nil
		},
		isTTY: func(any) bool { return false },
	}, &stdout
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestQueryNames(t *testing.T) {
	sctlr := uint64(sysreg.Encode(sysreg.Coordinates{Op0: 3, CRn: 1}))
	vcpu := &testVCPU{ids: []uint64{0x6030000000100000, sctlr, 0x6030000000160000}}
	a, out := newTestApp(vcpu, "")

	if err := a.run([]string{"query", "-names", "-size", "-value", "-capacity", "2"}); err != nil {
		t.Fatalf("query: %v", err)
	}

	got := lines(out.String())
	want := []string{
		"0x6030000000100000 64 0x0 None",
		"0x603000000013c080 64 0xc080 SCTLR_EL1",
		"0x6030000000160000 64 0x0 None",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d lines: %q", len(got), out.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
	if !vcpu.closed {
		t.Fatal("vCPU not released")
	}
}

func TestQueryYAML(t *testing.T) {
	vcpu := &testVCPU{ids: []uint64{0x6030000000100000}}
	a, out := newTestApp(vcpu, "")

	if err := a.run([]string{"query", "-format", "yaml", "-class"}); err != nil {
		t.Fatalf("query: %v", err)
	}
	if want := "- id: \"0x6030000000100000\"\n  class: core\n"; out.String() != want {
		t.Fatalf("yaml = %q, want %q", out.String(), want)
	}
}

func TestQueryCapacityFromEnv(t *testing.T) {
	t.Setenv(capacityEnv, "zero")

	a, _ := newTestApp(&testVCPU{}, "")
	if err := a.run([]string{"query"}); err == nil {
		t.Fatal("invalid capacity accepted")
	}
}

func TestFindID(t *testing.T) {
	a, out := newTestApp(nil, "6931039826524487808\n\n0x1234\n")

	if err := a.run([]string{"find-id", "-"}); err != nil {
		t.Fatalf("find-id: %v", err)
	}
	got := lines(out.String())
	if len(got) != 2 {
		t.Fatalf("got %q", out.String())
	}
	if !strings.HasPrefix(got[0], "id: 0x603000000013c080 => SCTLR_EL1 ") {
		t.Errorf("line 0 = %q", got[0])
	}
	if got[1] != "id: 0x1234 => None" {
		t.Errorf("line 1 = %q", got[1])
	}
}

func TestFindIDRejectsGarbage(t *testing.T) {
	a, _ := newTestApp(nil, "SCTLR_EL1\n")
	if err := a.run([]string{"find-id", "-"}); err == nil {
		t.Fatal("find-id accepted a name")
	}
}

func TestFindNameWithCatalogFile(t *testing.T) {
	dir := t.TempDir()
	catalog := filepath.Join(dir, "extra.yaml")
	if err := os.WriteFile(catalog, []byte("version: v1.1.0\nregisters:\n  - {name: IMP_TEST_EL1, op0: 3, op1: 0, crn: 15, crm: 0, op2: 0, access: RO}\n"), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	names := filepath.Join(dir, "names.txt")
	if err := os.WriteFile(names, []byte("IMP_TEST_EL1\nMIDR_EL1\nmissing\n"), 0o644); err != nil {
		t.Fatalf("write names: %v", err)
	}

	a, out := newTestApp(nil, "")
	if err := a.run([]string{"find-name", "-catalog", catalog, names}); err != nil {
		t.Fatalf("find-name: %v", err)
	}

	got := lines(out.String())
	want := []string{
		"register: IMP_TEST_EL1 => IMP_TEST_EL1 op0=3 op1=0 CRn=15 CRm=0 op2=0 RO id=0x603000000013c780",
		"register: MIDR_EL1 => MIDR_EL1 op0=3 op1=0 CRn=0 CRm=0 op2=0 RO id=0x603000000013c000",
		"register: missing => None",
	}
	if len(got) != len(want) {
		t.Fatalf("got %q", out.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCatalogCommand(t *testing.T) {
	a, out := newTestApp(nil, "")
	if err := a.run([]string{"catalog"}); err != nil {
		t.Fatalf("catalog: %v", err)
	}

	cat, err := sysreg.Parse(out.Bytes())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cat.Len() != sysreg.Default().Len() {
		t.Fatalf("catalog has %d entries, want %d", cat.Len(), sysreg.Default().Len())
	}
}

func TestUnknownCommand(t *testing.T) {
	a, _ := newTestApp(nil, "")
	if err := a.run([]string{"frobnicate"}); err == nil {
		t.Fatal("unknown command accepted")
	}
	if err := a.run(nil); err == nil {
		t.Fatal("missing command accepted")
	}
}

func TestOpenFailureIsReported(t *testing.T) {
	a, _ := newTestApp(nil, "")
	a.openVCPU = func() (hv.VirtualCPU, func(), error) {
		return nil, nil, hv.ErrHypervisorUnsupported
	}
	if err := a.run([]string{"query"}); !errors.Is(err, hv.ErrHypervisorUnsupported) {
		t.Fatalf("err = %v", err)
	}
}

func TestFindNameKeepsBlankLines(t *testing.T) {
	a, out := newTestApp(nil, "MIDR_EL1\n\nmissing\n")
	if err := a.run([]string{"find-name", "-"}); err != nil {
		t.Fatalf("find-name: %v", err)
	}

	got := lines(out.String())
	if len(got) != 3 {
		t.Fatalf("got %q", out.String())
	}
	if got[1] != "register:  => None" {
		t.Errorf("line 1 = %q", got[1])
	}
}

func TestCatalogExportAsCatalogFile(t *testing.T) {
	a, out := newTestApp(nil, "")
	if err := a.run([]string{"catalog"}); err != nil {
		t.Fatalf("catalog: %v", err)
	}
	catalog := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(catalog, out.Bytes(), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	a, out = newTestApp(nil, "SCTLR_EL1\n")
	if err := a.run([]string{"find-name", "-catalog", catalog, "-"}); err != nil {
		t.Fatalf("find-name: %v", err)
	}
	want := "register: SCTLR_EL1 => SCTLR_EL1 op0=3 op1=0 CRn=1 CRm=0 op2=0 RW id=0x603000000013c080\n"
	if out.String() != want {
		t.Fatalf("find-name = %q, want %q", out.String(), want)
	}

	a, out = newTestApp(nil, "")
	if err := a.run([]string{"catalog", "-catalog", catalog}); err != nil {
		t.Fatalf("catalog: %v", err)
	}
	cat, err := sysreg.Parse(out.Bytes())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cat.Len() != sysreg.Default().Len() {
		t.Fatalf("re-exported catalog has %d entries, want %d", cat.Len(), sysreg.Default().Len())
	}
}

func TestQueryProgressOnTerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	vcpu := &testVCPU{ids: []uint64{0x6030000000100000, 0x6030000000100002}}
	a, out := newTestApp(vcpu, "")
	stderr := a.stderr
	a.isTTY = func(f any) bool { return f == stderr }

	if err := a.run([]string{"query", "-value", "-progress"}); err != nil {
		t.Fatalf("query: %v", err)
	}

	want := "0x6030000000100000 0x0\n0x6030000000100002 0x2\n"
	if out.String() != want {
		t.Fatalf("query = %q, want %q", out.String(), want)
	}
	if !strings.Contains(stderr.(*bytes.Buffer).String(), "reading registers") {
		t.Fatalf("no progress bar on stderr: %q", stderr.(*bytes.Buffer).String())
	}
}
