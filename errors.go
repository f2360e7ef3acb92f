package leb128

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrTooLongBytes is returned by the buffered decoders when the input runs past
	// the 128-bit intermediate accumulator before a terminating byte.
	ErrTooLongBytes = errors.New("leb128: bytes too long")

	// ErrOverflow is returned by the buffered decoders when the decoded value does
	// not fit the target type.
	ErrOverflow = errors.New("leb128: value out of range")

	// ErrTruncated is returned by the buffered decoders when the input ends before
	// a byte with a clear continuation bit.
	ErrTruncated = errors.New("leb128: truncated input")

	// ErrMalformed is returned by the streaming decoders for over-long, out of range
	// or non-canonical encodings.
	ErrMalformed = errors.New("leb128: malformed encoding")
)

// IOError reports a failure of the underlying reader or writer in the streaming profile.
type IOError struct {
	// Op is "read" or "write".
	Op string
	// Err is the underlying error. A read that ends in the middle of a value
	// reports io.ErrUnexpectedEOF.
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("leb128: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func readError(err error, started bool) error {
	if started && errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}

	return &IOError{Op: "read", Err: err}
}

func overflowError[T Integer]() error {
	var zero T
	return fmt.Errorf("%w for %T", ErrOverflow, zero)
}
