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
	soiMarker = 0xFFD8 // Start Of Image

	dhtMarker = 0xC4 // Define Huffman Table
	jpgMarker = 0xC8 // reserved
	dacMarker = 0xCC // Define Arithmetic Coding
)

// isSOFMarker reports whether m is one of the Start-Of-Frame variants
// (C0-C3, C5-C7, C9-CB, CD-CF). DHT, JPG and DAC live in the same numeric
// neighborhood but carry no frame dimensions.
func isSOFMarker(m uint8) bool {
	return m >= 0xC0 && m <= 0xCF &&
		m != dhtMarker && m != jpgMarker && m != dacMarker
}

// DecodeJPEG scans for the first SOF segment and reads the image dimensions
// from it. The scan is a linear walk over the buffer: JPEG places SOF near
// the start in virtually all encoders, but nothing here assumes an early
// match. It gives up once fewer than ten bytes remain, the minimum needed to
// address the dimension fields past a marker.
func DecodeJPEG(r *bin.Reader) (JPEGHeader, bool) {
	if !r.Has(0, 4) {
		return JPEGHeader{}, false
	}

	if soi, _ := r.U16(0, binary.BigEndian); soi != soiMarker {
		return JPEGHeader{}, false
	}

	for i := 2; r.Has(i, 10); i++ {
		b, _ := r.U8(i)
		if b != 0xFF {
			continue
		}

		marker, _ := r.U8(i + 1)
		if !isSOFMarker(marker) {
			continue
		}

		// SOF layout: marker (2), segment length (2), precision (1),
		// height (2), width (2).
		height, _ := r.U16(i+5, binary.BigEndian)
		width, _ := r.U16(i+7, binary.BigEndian)

		return JPEGHeader{Width: width, Height: height}, true
	}
	return JPEGHeader{}, false
}
