// Package tokenizer implements the incremental token boundary scanner at the
// heart of shape-scan.
//
// A Tokenizer pulls windows of bytes from a source.Source, locates the next
// delimiter (any ASCII whitespace byte in word mode, a newline in line mode),
// and hands back the delimited byte range. Tokens fully contained in one
// window are returned as sub-slices of the source buffer with no copy (the
// fast path); tokens spanning windows are assembled in a single reusable
// accumulator (the split path).
//
// Tokenizers are not safe for concurrent use.
package tokenizer

import (
	"bytes"

	"github.com/shapestone/shape-scan/internal/source"
)

// Tokenizer scans whitespace-delimited tokens out of a byte source.
//
// It owns its Source and its accumulator exclusively. The accumulator's
// contents are meaningful only during a single Word or Line call; it is
// reset whenever a token spans more than one window.
type Tokenizer struct {
	src source.Source
	acc []byte // reused across calls for tokens spanning windows
	off int64  // bytes consumed so far
}

// New creates a Tokenizer reading from src.
func New(src source.Source) *Tokenizer {
	return &Tokenizer{src: src}
}

// Offset returns the number of bytes consumed so far, delimiters included.
func (t *Tokenizer) Offset() int64 {
	return t.off
}

// consume drops n bytes from the source and advances the running offset.
func (t *Tokenizer) consume(n int) {
	t.src.Consume(n)
	t.off += int64(n)
}

// SkipSpace advances the source past any run of ASCII whitespace, across as
// many windows as the run spans. It returns io.EOF if the source is
// exhausted before a non-whitespace byte is found.
func (t *Tokenizer) SkipSpace() error {
	for {
		buf, err := t.src.Fill()
		if err != nil {
			return err
		}
		if i := indexNotSpace(buf); i >= 0 {
			t.consume(i)
			return nil
		}
		t.consume(len(buf))
	}
}

// Word returns the next whitespace-delimited token. Leading whitespace
// (including blank lines) is skipped first. Exactly one delimiter byte is
// consumed after the token; a token terminated by end of input instead of a
// delimiter is a hard failure (io.EOF, no partial token).
//
// The returned slice is valid only until the next call on the Tokenizer.
func (t *Tokenizer) Word() ([]byte, error) {
	if err := t.SkipSpace(); err != nil {
		return nil, err
	}

	buf, err := t.src.Fill()
	if err != nil {
		return nil, err
	}

	// Fast path: delimiter inside the current window.
	if i := indexSpace(buf); i >= 0 {
		tok := buf[:i]
		t.consume(i + 1)
		return tok, nil
	}

	// Split path: the token continues past this window.
	t.acc = append(t.acc[:0], buf...)
	t.consume(len(buf))

	for {
		buf, err := t.src.Fill()
		if err != nil {
			return nil, err
		}
		if i := indexSpace(buf); i >= 0 {
			t.acc = append(t.acc, buf[:i]...)
			t.consume(i + 1)
			return t.acc, nil
		}
		t.acc = append(t.acc, buf...)
		t.consume(len(buf))
	}
}

// Line returns the next newline-delimited token. Because SkipSpace runs
// first, blank lines and leading spaces before the token are skipped; Line
// is not a verbatim next-line read. A trailing CR immediately before the LF
// is stripped from the payload but stays inside the consumed range; a lone
// CR without a following LF does not terminate the line.
//
// The returned slice is valid only until the next call on the Tokenizer.
func (t *Tokenizer) Line() ([]byte, error) {
	if err := t.SkipSpace(); err != nil {
		return nil, err
	}

	buf, err := t.src.Fill()
	if err != nil {
		return nil, err
	}

	if i := bytes.IndexByte(buf, '\n'); i >= 0 {
		end := i
		if end > 0 && buf[end-1] == '\r' {
			end--
		}
		tok := buf[:end]
		t.consume(i + 1)
		return tok, nil
	}

	t.acc = append(t.acc[:0], buf...)
	t.consume(len(buf))

	for {
		buf, err := t.src.Fill()
		if err != nil {
			return nil, err
		}
		if i := bytes.IndexByte(buf, '\n'); i >= 0 {
			t.acc = append(t.acc, buf[:i]...)
			if n := len(t.acc); n > 0 && t.acc[n-1] == '\r' {
				t.acc = t.acc[:n-1]
			}
			t.consume(i + 1)
			return t.acc, nil
		}
		t.acc = append(t.acc, buf...)
		t.consume(len(buf))
	}
}
