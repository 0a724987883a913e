// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package bin provides bounds-checked primitive reads over immutable byte buffers.
package bin

import "encoding/binary"

// Reader is a read-only view over a byte buffer. Every method takes an
// explicit offset and validates it against the buffer length before touching
// memory, so a malformed or truncated offset yields (zero, false) rather than
// a panic. Reads never advance a cursor: two logically independent reads
// cannot share hidden state.
//
// The buffer is borrowed, never copied or mutated. Callers must not modify
// it while a Reader aliases it.
type Reader struct {
	data []byte
}

// NewReader wraps buf in a Reader. An empty or nil buffer is a caller bug
// rather than bad data and panics, the same way a nil receiver would.
func NewReader(buf []byte) *Reader {
	if len(buf) == 0 {
		panic("bin: no bytes to analyze")
	}
	return &Reader{data: buf}
}

// Len returns the number of bytes visible through this view.
func (r *Reader) Len() int {
	return len(r.data)
}

// Has reports whether n bytes starting at off lie entirely within the buffer.
func (r *Reader) Has(off, n int) bool {
	return off >= 0 && n >= 0 && off+n <= len(r.data)
}

// Sub returns a view restricted to the n bytes starting at off, sharing the
// underlying storage. It is used to scope a Reader to a sub-range such as a
// ZIP entry's local header.
func (r *Reader) Sub(off, n int) (*Reader, bool) {
	if n == 0 || !r.Has(off, n) {
		return nil, false
	}
	return &Reader{data: r.data[off : off+n]}, true
}

// U8 reads the byte at off.
func (r *Reader) U8(off int) (uint8, bool) {
	if !r.Has(off, 1) {
		return 0, false
	}
	return r.data[off], true
}

// U16 reads two bytes at off in the given byte order.
func (r *Reader) U16(off int, order binary.ByteOrder) (uint16, bool) {
	if !r.Has(off, 2) {
		return 0, false
	}
	return order.Uint16(r.data[off : off+2]), true
}

// U32 reads four bytes at off in the given byte order.
func (r *Reader) U32(off int, order binary.ByteOrder) (uint32, bool) {
	if !r.Has(off, 4) {
		return 0, false
	}
	return order.Uint32(r.data[off : off+4]), true
}

// Syncsafe32 reads the four bytes at off as an ID3v2 syncsafe integer: each
// byte contributes its low 7 bits, so the encoded value never contains a
// sequence resembling an MPEG frame sync.
func (r *Reader) Syncsafe32(off int) (uint32, bool) {
	if !r.Has(off, 4) {
		return 0, false
	}
	b := r.data[off : off+4]
	v := uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
	return v, true
}

// Bytes returns the n bytes starting at off. The slice aliases the
// underlying buffer and must not be modified.
func (r *Reader) Bytes(off, n int) ([]byte, bool) {
	if !r.Has(off, n) {
		return nil, false
	}
	return r.data[off : off+n], true
}

// ASCII reads n bytes at off, interpreting each byte as a Latin-1 code
// point. This is not UTF-8 decoding: bytes above 0x7F map to the
// corresponding U+0080..U+00FF runes instead of producing invalid sequences.
func (r *Reader) ASCII(off, n int) (string, bool) {
	b, ok := r.Bytes(off, n)
	if !ok {
		return "", false
	}
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes), true
}
