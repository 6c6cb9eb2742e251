// Package regquery discovers the registers a vCPU exposes and matches them
// against a sysreg.Catalog.
package regquery

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/tinyrange/sysregs/internal/hv"
	"github.com/tinyrange/sysregs/internal/sysreg"
)

// DefaultProbeCapacity is the size of the first KVM_GET_REG_LIST request.
const DefaultProbeCapacity = 500

// Config tunes an Enumerator.
type Config struct {
	// ProbeCapacity is the number of identifiers requested by the first
	// list call. Zero or negative selects DefaultProbeCapacity.
	ProbeCapacity int

	// Logger receives debug output. Nil selects slog.Default.
	Logger *slog.Logger
}

// Result is one discovered register.
type Result struct {
	ID sysreg.ID

	// Entries holds every catalog entry sharing ID. Empty when the
	// register is not in the catalog or no catalog was requested.
	Entries []sysreg.Entry

	// Value holds the little-endian register contents when HasValue is set.
	Value    []byte
	HasValue bool
}

// Options selects the decorations produced by Enumerate.
type Options struct {
	Values  bool
	Catalog *sysreg.Catalog

	// Progress, when set, is called after each register read.
	Progress func(done, total int)
}

// Enumerator lists and reads the registers of one vCPU. It is not safe for
// concurrent use.
type Enumerator struct {
	vcpu     hv.RegisterLister
	capacity int
	log      *slog.Logger
}

// New returns an Enumerator reading from vcpu.
func New(vcpu hv.RegisterLister, cfg Config) *Enumerator {
	if cfg.ProbeCapacity <= 0 {
		cfg.ProbeCapacity = DefaultProbeCapacity
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Enumerator{
		vcpu:     vcpu,
		capacity: cfg.ProbeCapacity,
		log:      cfg.Logger,
	}
}

type discoveryState int

const (
	stateProbe discoveryState = iota
	stateResize
	stateDone
)

// IDs returns every register identifier the vCPU currently exposes.
//
// The first request asks for the configured capacity. If that is too small
// the transport reports the real count and a second request of exactly that
// size is made; failure of the second request is returned as a ResizeError.
func (e *Enumerator) IDs() ([]sysreg.ID, error) {
	var (
		state    = stateProbe
		buf      = make([]uint64, e.capacity)
		n        int
		err      error
		required int
	)

	for state != stateDone {
		switch state {
		case stateProbe:
			n, err = e.vcpu.RegisterList(buf)
			switch {
			case err == nil:
				state = stateDone
			case errors.Is(err, hv.ErrRegisterListTooSmall) && n > len(buf):
				e.log.Debug("regquery: probe too small", "capacity", len(buf), "required", n)
				required = n
				state = stateResize
			default:
				return nil, &TransportError{Op: "list registers", Err: err}
			}
		case stateResize:
			buf = make([]uint64, required)
			n, err = e.vcpu.RegisterList(buf)
			if err != nil {
				return nil, &ResizeError{Probed: e.capacity, Required: required, Err: err}
			}
			state = stateDone
		}
	}

	if n > len(buf) {
		return nil, &TransportError{Op: "list registers",
			Err: fmt.Errorf("transport reported %d registers for a %d entry buffer", n, len(buf))}
	}

	e.log.Debug("regquery: discovered registers", "count", n)

	ids := make([]sysreg.ID, n)
	for i, id := range buf[:n] {
		ids[i] = sysreg.ID(id)
	}
	return ids, nil
}

// Values reads the contents of every register in ids. A failed read aborts
// the whole call; registers reported by discovery must be readable.
func (e *Enumerator) Values(ids []sysreg.ID, progress func(done, total int)) ([]Result, error) {
	ret := make([]Result, len(ids))
	buf := make([]byte, hv.MaxRegisterSize)

	for i, id := range ids {
		clear(buf)
		if err := e.vcpu.ReadRegister(uint64(id), buf); err != nil {
			return nil, &ReadError{ID: id, Err: err}
		}

		size := min(id.SizeBytes(), len(buf))
		if size <= 0 {
			size = len(buf)
		}

		ret[i] = Result{
			ID:       id,
			Value:    append([]byte(nil), buf[:size]...),
			HasValue: true,
		}

		if progress != nil {
			progress(i+1, len(ids))
		}
	}

	return ret, nil
}

// Enumerate discovers all registers and applies the decorations in opts.
func (e *Enumerator) Enumerate(opts Options) ([]Result, error) {
	ids, err := e.IDs()
	if err != nil {
		return nil, err
	}

	var results []Result
	if opts.Values {
		results, err = e.Values(ids, opts.Progress)
		if err != nil {
			return nil, err
		}
	} else {
		results = make([]Result, len(ids))
		for i, id := range ids {
			results[i] = Result{ID: id}
		}
	}

	if opts.Catalog != nil {
		for i := range results {
			results[i].Entries = opts.Catalog.LookupID(results[i].ID)
		}
	}

	return results, nil
}
