package scan

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by read operations.
var (
	// ErrEndOfInput indicates the source was exhausted before a complete
	// token could be read. A token cut off by end of input instead of a
	// delimiter also reports ErrEndOfInput; no partial value is produced.
	ErrEndOfInput = errors.New("scan: unexpected end of input")

	// ErrInvalidData indicates bytes were present but could not be parsed
	// as the requested type. Errors of this kind are always wrapped in a
	// *ParseError carrying the offending token and its position.
	ErrInvalidData = errors.New("scan: invalid data")
)

// ParseError describes a token that could not be converted to the requested
// type. It unwraps to ErrInvalidData, so callers can classify with
// errors.Is(err, scan.ErrInvalidData).
type ParseError struct {
	// Offset is the input byte offset just past the offending token.
	Offset int64
	// Target names the type the token was parsed as.
	Target string
	// Token is the offending token text.
	Token string
	// Msg describes what was wrong with the token.
	Msg string
}

// Error returns a formatted message with position information.
func (e *ParseError) Error() string {
	return fmt.Sprintf("scan: cannot parse %q as %s at offset %d: %s",
		e.Token, e.Target, e.Offset, e.Msg)
}

// Unwrap returns ErrInvalidData.
func (e *ParseError) Unwrap() error {
	return ErrInvalidData
}
