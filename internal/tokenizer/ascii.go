package tokenizer

import (
	"encoding/binary"
	"math/bits"
)

// asciiSpace marks the bytes treated as token delimiters: space, tab, LF,
// FF, and CR. Vertical tab is deliberately absent, and no byte above 0x7F
// is ever a delimiter; non-ASCII input is opaque payload.
var asciiSpace = [256]bool{
	'\t': true,
	'\n': true,
	'\f': true,
	'\r': true,
	' ':  true,
}

// SWAR constants for the null-byte detection trick.
const (
	loMask = 0x0101010101010101
	hiMask = 0x8080808080808080
)

// indexSpace returns the index of the first ASCII whitespace byte in b, or
// -1 if there is none.
//
// The bulk of the slice is scanned 8 bytes at a time using SWAR (SIMD Within
// A Register): each whitespace byte is broadcast across a uint64, XORed with
// the data, and run through the null-byte detection trick. The five
// per-delimiter masks are combined with OR so all delimiters are checked in
// parallel. The tail shorter than 8 bytes falls back to the table.
func indexSpace(b []byte) int {
	i := 0
	for ; i+8 <= len(b); i += 8 {
		chunk := binary.LittleEndian.Uint64(b[i:])
		if m := spaceMask(chunk); m != 0 {
			// The load is little-endian, so the lowest set high bit
			// belongs to the earliest matching byte.
			return i + bits.TrailingZeros64(m)/8
		}
	}
	for ; i < len(b); i++ {
		if asciiSpace[b[i]] {
			return i
		}
	}
	return -1
}

// spaceMask returns a mask with the high bit set in every byte of chunk that
// is ASCII whitespace.
//
// The expression ((x - 0x01..01) & ^x & 0x80..80) has a high bit set exactly
// in positions where x had a zero byte; XORing with a broadcast delimiter
// first turns "byte equals delimiter" into "byte is zero".
func spaceMask(chunk uint64) uint64 {
	sp := chunk ^ (' ' * loMask)
	tb := chunk ^ ('\t' * loMask)
	lf := chunk ^ ('\n' * loMask)
	ff := chunk ^ ('\f' * loMask)
	cr := chunk ^ ('\r' * loMask)

	return ((sp - loMask) & ^sp & hiMask) |
		((tb - loMask) & ^tb & hiMask) |
		((lf - loMask) & ^lf & hiMask) |
		((ff - loMask) & ^ff & hiMask) |
		((cr - loMask) & ^cr & hiMask)
}

// indexNotSpace returns the index of the first byte in b that is not ASCII
// whitespace, or -1 if the whole slice is whitespace.
func indexNotSpace(b []byte) int {
	for i, c := range b {
		if !asciiSpace[c] {
			return i
		}
	}
	return -1
}

// IsSpace reports whether c is one of the recognized ASCII whitespace bytes.
func IsSpace(c byte) bool {
	return asciiSpace[c]
}
