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
	"encoding/binary"

	"github.com/croixal/binsight/pkg/bin"
)

// Signature pairs a magic prefix with the label it identifies.
type Signature struct {
	Magic []byte
	Label string
}

// Signatures is the ordered magic table consulted by Detect. Order matters:
// the first matching prefix wins, so more specific entries must precede the
// ones they overlap with.
var Signatures = []Signature{
	{Magic: []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, Label: FormatPNG},
	{Magic: []byte{0xFF, 0xD8, 0xFF}, Label: FormatJPEG},
	{Magic: []byte("GIF8"), Label: FormatGIF},
	{Magic: []byte("RIFF"), Label: FormatRIFF},
	{Magic: []byte{'P', 'K', 0x03, 0x04}, Label: FormatZIP},
	{Magic: []byte{'P', 'K', 0x05, 0x06}, Label: FormatZIPEmpty},
	{Magic: []byte{0x7F, 'E', 'L', 'F'}, Label: FormatELF},
	{Magic: []byte{0xCA, 0xFE, 0xBA, 0xBE}, Label: FormatCafebabe},
	{Magic: []byte{0xFE, 0xED, 0xFA, 0xCE}, Label: FormatMachO32},
	{Magic: []byte{0xFE, 0xED, 0xFA, 0xCF}, Label: FormatMachO64},
	{Magic: []byte("%PDF"), Label: FormatPDF},
	{Magic: []byte{0x1F, 0x8B, 0x08}, Label: FormatGZIP},
	{Magic: []byte("BZh"), Label: FormatBZIP2},
	{Magic: []byte{0x37, 0x7A, 0xBC, 0xAF}, Label: Format7Z},
}

// Detect classifies the buffer by scanning the magic table top to bottom,
// then falling back to the MP3 heuristics: an "ID3" tag prefix or an MPEG
// audio frame sync (eleven set bits at the start of the first u16).
func Detect(r *bin.Reader) string {
	for _, sig := range Signatures {
		b, ok := r.Bytes(0, len(sig.Magic))
		if !ok {
			continue
		}
		if bytes.Equal(b, sig.Magic) {
			return sig.Label
		}
	}

	if tag, ok := r.ASCII(0, 3); ok && tag == "ID3" {
		return FormatMP3
	}
	if sync, ok := r.U16(0, binary.BigEndian); ok && sync&0xFFE0 == 0xFFE0 {
		return FormatMP3
	}
	return FormatUnknown
}
