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
	"encoding/binary"

	"github.com/croixal/binsight/pkg/bin"
)

const (
	pngMagic = 0x89504E47

	// Signature (8) + IHDR length/type (8) + width (4) + height (4). The
	// IHDR chunk always immediately follows the signature, so the dimension
	// offsets are fixed by the PNG specification.
	pngMinLen    = 24
	pngWidthOff  = 16
	pngHeightOff = 20
)

// DecodePNG reads the image dimensions out of a PNG header.
func DecodePNG(r *bin.Reader) (PNGHeader, bool) {
	if !r.Has(0, pngMinLen) {
		return PNGHeader{}, false
	}

	magic, _ := r.U32(0, binary.BigEndian)
	if magic != pngMagic {
		return PNGHeader{}, false
	}

	width, _ := r.U32(pngWidthOff, binary.BigEndian)
	height, _ := r.U32(pngHeightOff, binary.BigEndian)

	return PNGHeader{Width: width, Height: height}, true
}
