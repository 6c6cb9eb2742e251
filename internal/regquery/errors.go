package regquery

import (
	"errors"
	"fmt"

	"github.com/tinyrange/sysregs/internal/sysreg"
)

var (
	ErrResizeFailed = errors.New("register list changed between probe and resize")
	ErrReadFailed   = errors.New("register read failed")
)

// TransportError reports a failure of the hypervisor transport itself.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("regquery: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ResizeError reports that the list call sized from the probe's count failed.
type ResizeError struct {
	Probed   int
	Required int
	Err      error
}

func (e *ResizeError) Error() string {
	return fmt.Sprintf("regquery: resize from %d to %d entries: %v", e.Probed, e.Required, e.Err)
}

func (e *ResizeError) Unwrap() error { return e.Err }

func (e *ResizeError) Is(target error) bool { return target == ErrResizeFailed }

// ReadError reports that a register returned by discovery could not be read.
type ReadError struct {
	ID  sysreg.ID
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("regquery: read register %s: %v", e.ID, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

func (e *ReadError) Is(target error) bool { return target == ErrReadFailed }
