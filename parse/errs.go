package parse

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax = errors.New("syntax error")
	ErrAlloc  = errors.New("allocation failed")
)

// SyntaxError reports what went wrong and where. The parser returns it
// per call; there is no shared last-error slot to race on.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Msg, e.Offset)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// Context returns the slice of the original input around the failure
// offset, for diagnostics. The window is clamped to the input.
func (e *SyntaxError) Context(input []byte) string {
	const window = 20
	lo := e.Offset - window
	if lo < 0 {
		lo = 0
	}
	hi := e.Offset + window
	if hi > len(input) {
		hi = len(input)
	}
	return string(input[lo:hi])
}

func errAlloc(what string) error {
	return fmt.Errorf("%s: %w", what, ErrAlloc)
}
