package lowpass

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind tells at which stage of the decode → filter → encode flow an error happened.
type Kind int

const (
	// IOError reports a file which could not be opened, created or closed.
	IOError Kind = iota
	// DecodeError reports a malformed or unsupported input image stream.
	DecodeError
	// EncodeError reports a failure to produce the output image stream.
	EncodeError
)

func (k Kind) String() string {
	switch k {
	case IOError:
		return "io error"
	case DecodeError:
		return "decode error"
	case EncodeError:
		return "encode error"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ErrInvalidPasses is returned by the Processor when asked to run less than one filter pass.
var ErrInvalidPasses = errors.New("number of passes must be at least 1")

// Error is the error type returned by the decoder and encoder adapters.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	var perr *fs.PathError
	if e.Path == "" || errors.As(e.Err, &perr) {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether any error in err's chain is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
