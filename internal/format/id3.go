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

import "github.com/croixal/binsight/pkg/bin"

const id3HeaderLen = 10

// DecodeID3 reads the ten-byte ID3v2 tag header at the start of an MP3 file.
// The size field is a syncsafe integer; a plain big-endian read would
// misdecode any tag larger than 127 bytes.
func DecodeID3(r *bin.Reader) (ID3Header, bool) {
	if !r.Has(0, id3HeaderLen) {
		return ID3Header{}, false
	}

	tag, _ := r.ASCII(0, 3)
	if tag != "ID3" {
		return ID3Header{}, false
	}

	major, _ := r.U8(3)
	minor, _ := r.U8(4)
	flags, _ := r.U8(5)
	size, _ := r.Syncsafe32(6)

	return ID3Header{
		VersionMajor: major,
		VersionMinor: minor,
		Flags:        flags,
		Size:         size,
	}, true
}
