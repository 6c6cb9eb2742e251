package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/tinyrange/sysregs/internal/hv"
	"github.com/tinyrange/sysregs/internal/hv/factory"
	"github.com/tinyrange/sysregs/internal/regfmt"
	"github.com/tinyrange/sysregs/internal/regquery"
	"github.com/tinyrange/sysregs/internal/sysreg"
	"golang.org/x/term"
)

const capacityEnv = "SYSREGS_PROBE_CAPACITY"

func usage(w io.Writer) {
	fmt.Fprintf(w, `sysregs - list and name the system registers of a KVM arm64 vCPU

USAGE:
  sysregs [-v] <command> [flags] [args...]

COMMANDS:
  find-id FILE     Look up register ids (decimal or 0x-hex, one per line)
  find-name FILE   Look up register names (one per line)
  query            Enumerate the registers of a fresh vCPU
  catalog          Print the register catalog as YAML

Use "-" as FILE to read from stdin. Run "sysregs <command> -h" for flags.

ENVIRONMENT:
  %s   Entries requested by the first KVM_GET_REG_LIST call (default %d)
`, capacityEnv, regquery.DefaultProbeCapacity)
}

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// openVCPU creates the vCPU used by query.
	openVCPU func() (hv.VirtualCPU, func(), error)
	isTTY    func(f any) bool
}

func isTerminal(f any) bool {
	file, ok := f.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

func openHostVCPU() (hv.VirtualCPU, func(), error) {
	h, err := factory.OpenWithArchitecture(hv.ArchitectureARM64)
	if err != nil {
		return nil, nil, fmt.Errorf("open hypervisor: %w", err)
	}

	vcpu, err := h.NewVirtualCPU(0)
	if err != nil {
		h.Close()
		return nil, nil, fmt.Errorf("create vCPU: %w", err)
	}

	return vcpu, func() {
		if err := vcpu.Close(); err != nil {
			slog.Error("close vCPU", "error", err)
		}
		if err := h.Close(); err != nil {
			slog.Error("close hypervisor", "error", err)
		}
	}, nil
}

func (a *app) run(args []string) error {
	fs := flag.NewFlagSet("sysregs", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() { usage(a.stderr) }
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if fs.NArg() < 1 {
		usage(a.stderr)
		return fmt.Errorf("missing command")
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "find-id":
		return a.findID(rest)
	case "find-name":
		return a.findName(rest)
	case "query":
		return a.query(rest)
	case "catalog":
		return a.catalog(rest)
	default:
		usage(a.stderr)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// catalogFlag registers -catalog and returns a loader for the effective
// catalog: the built-in table followed by the file's entries. Entries the
// file restates are not duplicated.
func catalogFlag(fs *flag.FlagSet) func() (*sysreg.Catalog, error) {
	path := fs.String("catalog", "", "YAML or JSON file with extra register definitions")
	return func() (*sysreg.Catalog, error) {
		if *path == "" {
			return sysreg.Default(), nil
		}
		extra, err := sysreg.LoadFile(*path)
		if err != nil {
			return nil, err
		}
		slog.Debug("loaded catalog file", "path", *path, "entries", extra.Len())
		return sysreg.Merge(sysreg.Default(), extra), nil
	}
}

// readLines returns the trimmed lines of name. Blank lines are dropped unless
// keepBlank is set.
func (a *app) readLines(name string, keepBlank bool) ([]string, error) {
	var r io.Reader
	if name == "-" {
		r = a.stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		defer f.Close()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" && !keepBlank {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return lines, nil
}

func (a *app) formatOptions(decimal bool) regfmt.Options {
	return regfmt.Options{
		Decimal: decimal,
		Color:   a.isTTY(a.stdout) && os.Getenv("NO_COLOR") == "",
	}
}

func (a *app) findID(args []string) error {
	fs := flag.NewFlagSet("find-id", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	loadCatalog := catalogFlag(fs)
	decimal := fs.Bool("decimal", false, "print ids in decimal")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("find-id: expected one FILE argument")
	}

	lines, err := a.readLines(fs.Arg(0), false)
	if err != nil {
		return err
	}

	ids := make([]sysreg.ID, len(lines))
	for i, line := range lines {
		v, err := strconv.ParseUint(line, 0, 64)
		if err != nil {
			return fmt.Errorf("parse register id %q: %w", line, err)
		}
		ids[i] = sysreg.ID(v)
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	return regfmt.WriteFindIDs(a.stdout, regquery.FindIDs(cat, ids), a.formatOptions(*decimal))
}

func (a *app) findName(args []string) error {
	fs := flag.NewFlagSet("find-name", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	loadCatalog := catalogFlag(fs)
	decimal := fs.Bool("decimal", false, "print ids in decimal")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("find-name: expected one FILE argument")
	}

	names, err := a.readLines(fs.Arg(0), true)
	if err != nil {
		return err
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	return regfmt.WriteFindNames(a.stdout, regquery.FindNames(cat, names), a.formatOptions(*decimal))
}

func probeCapacity() (int, error) {
	s := os.Getenv(capacityEnv)
	if s == "" {
		return regquery.DefaultProbeCapacity, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s: invalid capacity %q", capacityEnv, s)
	}
	return v, nil
}

func (a *app) query(args []string) error {
	defaultCapacity, err := probeCapacity()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	loadCatalog := catalogFlag(fs)
	value := fs.Bool("value", false, "read and print each register's value")
	size := fs.Bool("size", false, "print each register's size in bits")
	names := fs.Bool("names", false, "print catalog names (None when unknown)")
	access := fs.Bool("access", false, "print the access mode next to each name")
	class := fs.Bool("class", false, "print the register group (core, sysreg, fw, sve, demux)")
	decimal := fs.Bool("decimal", false, "print ids in decimal")
	format := fs.String("format", "text", "output format: text or yaml")
	capacity := fs.Int("capacity", defaultCapacity, "entries requested by the first register list call")
	progress := fs.Bool("progress", false, "show a progress bar while reading values")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("query: unexpected arguments %v", fs.Args())
	}
	if *format != "text" && *format != "yaml" {
		return fmt.Errorf("query: unknown format %q", *format)
	}

	opts := regquery.Options{Values: *value}
	if *names {
		opts.Catalog, err = loadCatalog()
		if err != nil {
			return err
		}
	}

	vcpu, release, err := a.openVCPU()
	if err != nil {
		return err
	}
	defer release()

	if *value && *progress && a.isTTY(a.stderr) {
		var bar *progressbar.ProgressBar
		opts.Progress = func(done, total int) {
			if bar == nil {
				bar = progressbar.NewOptions(total,
					progressbar.OptionSetWriter(a.stderr),
					progressbar.OptionSetDescription("reading registers"),
					progressbar.OptionClearOnFinish(),
				)
			}
			bar.Set(done)
		}
		defer func() {
			if bar != nil {
				bar.Close()
			}
		}()
	}

	results, err := regquery.New(vcpu, regquery.Config{ProbeCapacity: *capacity}).Enumerate(opts)
	if err != nil {
		return err
	}

	fo := a.formatOptions(*decimal)
	fo.Value = *value
	fo.Size = *size
	fo.Names = *names
	fo.Access = *access
	fo.Class = *class

	if *format == "yaml" {
		return regfmt.WriteYAML(a.stdout, results, fo)
	}
	return regfmt.Write(a.stdout, results, fo)
}

func (a *app) catalog(args []string) error {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	loadCatalog := catalogFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	return sysreg.WriteFile(a.stdout, cat)
}

func main() {
	a := &app{
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		openVCPU: openHostVCPU,
		isTTY:    isTerminal,
	}

	if err := a.run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		if errors.Is(err, hv.ErrHypervisorUnsupported) {
			fmt.Fprintf(os.Stderr, "sysregs: %v (KVM on arm64 Linux is required)\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "sysregs: %v\n", err)
		os.Exit(1)
	}
}
