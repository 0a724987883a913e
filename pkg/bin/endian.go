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

package bin

import "encoding/binary"

// DetectByteOrder infers the byte order of the 32-bit value at off by
// decoding it both ways and comparing against the value the caller expects
// to find there. Formats such as TIFF place a known constant after their
// byte-order marker, which makes this probe reliable.
//
// When the expected value is palindromic under byte swapping, the
// little-endian interpretation wins.
func DetectByteOrder(r *Reader, off int, want uint32) (binary.ByteOrder, bool) {
	le, ok := r.U32(off, binary.LittleEndian)
	if !ok {
		return nil, false
	}
	if le == want {
		return binary.LittleEndian, true
	}
	if be, _ := r.U32(off, binary.BigEndian); be == want {
		return binary.BigEndian, true
	}
	return nil, false
}
