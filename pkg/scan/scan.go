// Package scan reads typed values out of a whitespace-delimited byte stream
// without materializing the whole input in memory.
//
// A Reader pulls buffered chunks from its input, locates token boundaries
// (possibly spanning multiple chunks), and converts the delimited bytes to
// the requested type. Tokens contained in a single chunk are parsed straight
// from the read buffer with no copy; only tokens that straddle a chunk
// boundary are assembled in a reusable accumulator.
//
// # Reading values
//
// Because Go methods cannot be generic, typed reads are package-level
// functions taking the Reader:
//
//	r := scan.NewReader(os.Stdin)
//	n, err := scan.Uint[uint](r)
//	x, err := scan.Int[int32](r)
//	w, err := scan.Word(r)
//	l, err := scan.Line(r)
//
// Struct-driven reading (see Unmarshal) covers multi-field input in one
// call:
//
//	var in struct {
//		N, M  int
//		Edges [][2]int `scan:"count=M,index1"`
//	}
//	err := scan.Unmarshal(r, &in)
//
// # Delimiters and quirks
//
// Only the ASCII whitespace bytes space, tab, LF, FF, and CR delimit tokens;
// non-ASCII bytes are opaque payload. Every read, line reads included, first
// skips any run of whitespace. Line therefore silently skips blank lines and
// leading spaces; it is a "next token up to newline" read, not a verbatim
// next-line read.
//
// Integer parsing uses wrapping arithmetic: values whose magnitude exceeds
// the target type silently wrap instead of reporting an error. This is a
// deliberate speed/simplicity trade-off for bulk numeric input.
//
// # Errors
//
// Reads fail with ErrEndOfInput when the source is exhausted, with a
// *ParseError (unwrapping to ErrInvalidData) when bytes cannot be converted,
// and pass any other source error through unchanged. The Reader never
// retries; after a failure the input position is unspecified.
//
// # Thread safety
//
// A Reader owns its input exclusively and is not safe for concurrent use.
// Callers that share one input stream across goroutines must provide their
// own synchronization.
package scan

import (
	"errors"
	"io"
	"unicode/utf8"

	"github.com/shapestone/shape-scan/internal/source"
	"github.com/shapestone/shape-scan/internal/tokenizer"
)

// Reader reads whitespace-delimited typed values from a byte stream.
type Reader struct {
	tok *tokenizer.Tokenizer
}

// NewReader creates a Reader consuming from r with default options.
//
// Example:
//
//	r := scan.NewReader(os.Stdin)
func NewReader(r io.Reader) *Reader {
	return NewReaderWithOptions(r, DefaultOptions())
}

// NewReaderWithOptions creates a Reader consuming from r with custom
// options.
func NewReaderWithOptions(r io.Reader, opts Options) *Reader {
	return &Reader{
		tok: tokenizer.New(source.NewBufferedSize(r, opts.BufferSize)),
	}
}

// FromBytes creates a Reader over in-memory data. The data is not copied;
// it must not be modified while the Reader is in use.
func FromBytes(data []byte) *Reader {
	return &Reader{tok: tokenizer.New(source.NewBytes(data))}
}

// FromString creates a Reader over the bytes of s.
func FromString(s string) *Reader {
	return &Reader{tok: tokenizer.New(source.NewString(s))}
}

// Offset returns the number of input bytes consumed so far, delimiters
// included.
func (r *Reader) Offset() int64 {
	return r.tok.Offset()
}

// WordBytes returns the raw bytes of the next whitespace-delimited token.
// The returned slice is valid only until the next read on the Reader.
func (r *Reader) WordBytes() ([]byte, error) {
	b, err := r.tok.Word()
	if err != nil {
		return nil, coerceEOF(err)
	}
	return b, nil
}

// Word reads the next token as an owned string. The token must be valid
// UTF-8.
func (r *Reader) Word() (string, error) {
	b, err := r.WordBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", r.parseError("string", b, "invalid UTF-8")
	}
	return string(b), nil
}

// LineBytes returns the raw bytes of the rest of the current line, after
// skipping leading whitespace (blank lines included). A trailing CR before
// the newline is stripped. The returned slice is valid only until the next
// read on the Reader.
func (r *Reader) LineBytes() ([]byte, error) {
	b, err := r.tok.Line()
	if err != nil {
		return nil, coerceEOF(err)
	}
	return b, nil
}

// Line reads the rest of the current line as an owned string. The line must
// be valid UTF-8.
func (r *Reader) Line() (string, error) {
	b, err := r.LineBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", r.parseError("string", b, "invalid UTF-8")
	}
	return string(b), nil
}

// SkipLine reads and discards the rest of the current line.
func (r *Reader) SkipLine() error {
	_, err := r.LineBytes()
	return err
}

// parseError builds a *ParseError at the Reader's current offset.
func (r *Reader) parseError(target string, token []byte, msg string) error {
	return &ParseError{
		Offset: r.tok.Offset(),
		Target: target,
		Token:  string(token),
		Msg:    msg,
	}
}

// coerceEOF maps source exhaustion to ErrEndOfInput and passes any other
// I/O error through unchanged.
func coerceEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return ErrEndOfInput
	}
	return err
}
