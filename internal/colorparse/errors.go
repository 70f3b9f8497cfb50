package colorparse

import (
	"errors"
	"fmt"
)

// ErrorKind separates missing input from input that could not be read.
type ErrorKind int

const (
	KindEmpty ErrorKind = iota + 1
	KindMalformed
)

func (k ErrorKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

var (
	ErrEmpty     = errors.New("empty color")
	ErrMalformed = errors.New("malformed color")
)

// ParseError is returned by Parse. Format is set when the input matched a
// format's syntax but broke its numeric range.
type ParseError struct {
	Kind   ErrorKind
	Input  string
	Format Format
	Reason string
}

func (e *ParseError) Error() string {
	switch {
	case e.Kind == KindEmpty:
		return "color is empty"
	case e.Format != FormatUnknown && e.Reason != "":
		return fmt.Sprintf("invalid %s color %q: %s", e.Format, e.Input, e.Reason)
	default:
		return fmt.Sprintf("unrecognized color %q", e.Input)
	}
}

func (e *ParseError) Unwrap() error {
	if e.Kind == KindEmpty {
		return ErrEmpty
	}
	return ErrMalformed
}

// KindOf extracts the ErrorKind from err, or 0 when err is not a ParseError.
func KindOf(err error) ErrorKind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}
