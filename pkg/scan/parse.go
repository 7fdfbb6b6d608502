package scan

import (
	"encoding"
	"errors"
	"fmt"
	"unicode/utf8"
)

// UnsignedInt is the constraint for Uint: the fixed-width unsigned integer
// types and their derivatives.
type UnsignedInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// SignedInt is the constraint for Int: the fixed-width signed integer types
// and their derivatives.
type SignedInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

var (
	errEmptyToken  = errors.New("empty token")
	errLoneSign    = errors.New("sign with no digits")
	errNotOneByte  = errors.New("token is not exactly one byte")
	errInvalidUTF8 = errors.New("invalid UTF-8")
)

// parseUint converts ASCII digits to an unsigned value using wrapping
// arithmetic. A leading sign is not accepted; any non-digit byte fails.
//
// Accumulating in uint64 and truncating to the caller's width afterwards
// yields the same result as wrapping at that width on every step, because
// every fixed width divides 64 bits.
func parseUint(b []byte) (uint64, error) {
	if len(b) == 0 {
		return 0, errEmptyToken
	}
	var v uint64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid digit %q", c)
		}
		v = v*10 + uint64(c-'0')
	}
	return v, nil
}

// parseInt converts an optionally signed run of ASCII digits to a signed
// value with the same wrapping semantics as parseUint. A lone sign fails.
func parseInt(b []byte) (int64, error) {
	if len(b) == 0 {
		return 0, errEmptyToken
	}
	neg := false
	digits := b
	if b[0] == '+' || b[0] == '-' {
		if len(b) == 1 {
			return 0, errLoneSign
		}
		neg = b[0] == '-'
		digits = b[1:]
	}
	v, err := parseUint(digits)
	if err != nil {
		return 0, err
	}
	n := int64(v)
	if neg {
		n = -n
	}
	return n, nil
}

// Uint reads the next token as an unsigned integer.
//
// Each byte must be an ASCII digit; a leading '+' or '-' is rejected.
// Values exceeding the range of T wrap silently.
func Uint[T UnsignedInt](r *Reader) (T, error) {
	var zero T
	b, err := r.WordBytes()
	if err != nil {
		return zero, err
	}
	v, perr := parseUint(b)
	if perr != nil {
		return zero, r.parseError(fmt.Sprintf("%T", zero), b, perr.Error())
	}
	return T(v), nil
}

// Int reads the next token as a signed integer.
//
// An optional leading '+' or '-' is followed by ASCII digits; a lone sign
// fails. Values exceeding the range of T wrap silently.
func Int[T SignedInt](r *Reader) (T, error) {
	var zero T
	b, err := r.WordBytes()
	if err != nil {
		return zero, err
	}
	v, perr := parseInt(b)
	if perr != nil {
		return zero, r.parseError(fmt.Sprintf("%T", zero), b, perr.Error())
	}
	return T(v), nil
}

// Char reads the next token as a single byte. Tokens of any other length
// fail; multi-byte characters are not supported.
func Char(r *Reader) (byte, error) {
	b, err := r.WordBytes()
	if err != nil {
		return 0, err
	}
	if len(b) != 1 {
		return 0, r.parseError("byte", b, errNotOneByte.Error())
	}
	return b[0], nil
}

// Word reads the next token as an owned string. Equivalent to
// (*Reader).Word; provided so call chains can use one function family
// throughout.
func Word(r *Reader) (string, error) {
	return r.Word()
}

// Line reads the rest of the current line as an owned string. Equivalent to
// (*Reader).Line.
func Line(r *Reader) (string, error) {
	return r.Line()
}

// LineInto reads the rest of the current line and lets v parse it from
// text. The line must be valid UTF-8; a parse rejection by v is reported as
// a *ParseError.
func LineInto(r *Reader, v encoding.TextUnmarshaler) error {
	b, err := r.LineBytes()
	if err != nil {
		return err
	}
	if !utf8.Valid(b) {
		return r.parseError(fmt.Sprintf("%T", v), b, errInvalidUTF8.Error())
	}
	if uerr := v.UnmarshalText(b); uerr != nil {
		return r.parseError(fmt.Sprintf("%T", v), b, uerr.Error())
	}
	return nil
}

// LineAs reads the rest of the current line into a value of type T, where
// *T knows how to parse itself from text.
//
// Example:
//
//	addr, err := scan.LineAs[netip.Addr](r)
func LineAs[T any, P interface {
	*T
	encoding.TextUnmarshaler
}](r *Reader) (T, error) {
	var v T
	err := LineInto(r, P(&v))
	return v, err
}
