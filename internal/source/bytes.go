package source

import "io"

// Bytes is a zero-copy Source over an in-memory byte slice.
//
// The whole unconsumed remainder is exposed as a single window, so a
// consumer on top of Bytes always takes its fast path. The input slice is
// never copied; callers must not modify it while the Source is in use.
type Bytes struct {
	data []byte
	pos  int
}

// NewBytes creates a Source over data.
func NewBytes(data []byte) *Bytes {
	return &Bytes{data: data}
}

// NewString creates a Source over the bytes of s.
func NewString(s string) *Bytes {
	return &Bytes{data: []byte(s)}
}

// Fill returns the unconsumed remainder, or io.EOF when none is left.
func (b *Bytes) Fill() ([]byte, error) {
	if b.pos >= len(b.data) {
		return nil, io.EOF
	}
	return b.data[b.pos:], nil
}

// Consume drops the first n bytes of the remainder.
func (b *Bytes) Consume(n int) {
	b.pos += n
	if b.pos > len(b.data) {
		b.pos = len(b.data)
	}
}
