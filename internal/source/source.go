// Package source defines the pull-based buffered byte supplier the tokenizer
// consumes from, plus adapters for io.Reader streams and in-memory data.
//
// The contract is deliberately small: Fill exposes a window of unconsumed
// bytes without copying, Consume drops a prefix of that window. Any transport
// that can buffer bytes (file, stdin, socket, in-memory slice) fits behind it.
package source

import "io"

// Default buffer size for the io.Reader adapter.
// 8KB provides good balance between syscall count and cache footprint.
const defaultBufferSize = 8 * 1024

// Source supplies buffered bytes to a consumer that tracks its own token
// boundaries.
//
// Fill returns a non-empty window of bytes that have been read but not yet
// consumed, performing a blocking read only when the window is empty. It
// returns io.EOF once the underlying input is exhausted, or the transport's
// own error verbatim. The returned slice is only valid until the next call
// to Fill or Consume on the same Source.
//
// Consume drops the first n bytes of the most recently returned window from
// future visibility. Consuming the whole window forces the next Fill to
// perform an actual read.
type Source interface {
	Fill() ([]byte, error)
	Consume(n int)
}

// Buffered adapts an io.Reader to the Source contract.
//
// Each refill issues exactly one Read call, so the windows seen by the
// consumer follow the chunking of the underlying reader. A Read that returns
// data together with an error yields the data first; the error is reported
// by the refill that follows.
type Buffered struct {
	r     io.Reader
	buf   []byte
	start int // buf[start:end] is the unconsumed window
	end   int
	err   error // deferred error from the last Read
}

// NewBuffered creates a Source reading from r with the default buffer size.
func NewBuffered(r io.Reader) *Buffered {
	return NewBufferedSize(r, defaultBufferSize)
}

// NewBufferedSize creates a Source reading from r with the given buffer
// size. Sizes below one byte fall back to the default.
func NewBufferedSize(r io.Reader, size int) *Buffered {
	if size <= 0 {
		size = defaultBufferSize
	}
	return &Buffered{
		r:   r,
		buf: make([]byte, size),
	}
}

// Fill returns the current unconsumed window, reading from the underlying
// reader only when the window is empty.
func (b *Buffered) Fill() ([]byte, error) {
	if b.start < b.end {
		return b.buf[b.start:b.end], nil
	}
	if b.err != nil {
		return nil, b.err
	}

	b.start, b.end = 0, 0
	for {
		n, err := b.r.Read(b.buf)
		if n > 0 {
			b.end = n
			// Report the bytes now, the error on the next refill.
			b.err = err
			return b.buf[:n], nil
		}
		if err != nil {
			b.err = err
			return nil, err
		}
		// Read returned (0, nil); the io.Reader contract allows this,
		// so retry rather than report an empty window.
	}
}

// Consume drops the first n bytes of the current window.
func (b *Buffered) Consume(n int) {
	b.start += n
	if b.start > b.end {
		b.start = b.end
	}
}
