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

package format

import (
	"bytes"

	"github.com/croixal/binsight/pkg/bin"
)

var elfMagic = []byte{0x7F, 'E', 'L', 'F'}

const elfIdentLen = 16

// DecodeELF reads the identification fields of an ELF header. The class and
// data bytes are mapped leniently: 1 selects 32-bit/little-endian, any other
// value (canonically 2) selects 64-bit/big-endian.
func DecodeELF(r *bin.Reader) (ELFHeader, bool) {
	if !r.Has(0, elfIdentLen) {
		return ELFHeader{}, false
	}

	magic, _ := r.Bytes(0, 4)
	if !bytes.Equal(magic, elfMagic) {
		return ELFHeader{}, false
	}

	class, _ := r.U8(4)
	data, _ := r.U8(5)
	osabi, _ := r.U8(7)

	hdr := ELFHeader{Bitness: 64, ByteOrder: BigEndian, OSABI: osabi}
	if class == 1 {
		hdr.Bitness = 32
	}
	if data == 1 {
		hdr.ByteOrder = LittleEndian
	}
	return hdr, true
}
