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
	// ZIPLocalHeaderSignature is the little-endian u32 at the start of every
	// local file header ('P', 'K', 0x03, 0x04).
	ZIPLocalHeaderSignature uint32 = 0x04034B50

	// Fixed-size portion of the local file header, up to and including the
	// extra-field length.
	zipLocalHeaderLen = 30
)

// DecodeZIPLocalHeader reads the ZIP local file header starting at off. All
// multi-byte fields are little-endian, the opposite of PNG/JPEG/ELF/ID3;
// that is mandated by the ZIP format, not a convention to normalize.
//
// The filename is best-effort: a declared length running past the buffer is
// truncated rather than rejected, so a corrupted entry still yields a usable
// name.
func DecodeZIPLocalHeader(r *bin.Reader, off int) (ZIPLocalHeader, bool) {
	if !r.Has(off, zipLocalHeaderLen) {
		return ZIPLocalHeader{}, false
	}

	sig, _ := r.U32(off, binary.LittleEndian)
	if sig != ZIPLocalHeaderSignature {
		return ZIPLocalHeader{}, false
	}

	version, _ := r.U16(off+4, binary.LittleEndian)
	flags, _ := r.U16(off+6, binary.LittleEndian)
	compression, _ := r.U16(off+8, binary.LittleEndian)
	// Offsets 10-13 hold the DOS mod time and date, skipped here.
	crc, _ := r.U32(off+14, binary.LittleEndian)
	compressedSize, _ := r.U32(off+18, binary.LittleEndian)
	uncompressedSize, _ := r.U32(off+22, binary.LittleEndian)
	filenameLength, _ := r.U16(off+26, binary.LittleEndian)
	extraLength, _ := r.U16(off+28, binary.LittleEndian)

	nameLen := int(filenameLength)
	if avail := r.Len() - (off + zipLocalHeaderLen); nameLen > avail {
		nameLen = avail
	}
	filename, _ := r.ASCII(off+zipLocalHeaderLen, nameLen)

	return ZIPLocalHeader{
		Signature:        sig,
		Version:          version,
		Flags:            flags,
		Compression:      compression,
		CRC32:            crc,
		CompressedSize:   compressedSize,
		UncompressedSize: uncompressedSize,
		FilenameLength:   filenameLength,
		ExtraLength:      extraLength,
		Filename:         filename,
	}, true
}
