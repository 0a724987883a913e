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

// Package format classifies binary buffers by magic signature and decodes
// the fixed-layout headers of a handful of common formats. Classification
// and decoding are separate steps: a buffer can sniff as JPEG while its SOF
// segment is missing or truncated.
package format

// Labels reported by Detect. The classifier always returns one of these.
const (
	FormatPNG      = "PNG"
	FormatJPEG     = "JPEG"
	FormatGIF      = "GIF"
	FormatRIFF     = "RIFF"
	FormatZIP      = "ZIP"
	FormatZIPEmpty = "ZIP (empty)"
	FormatELF      = "ELF"
	FormatCafebabe = "Mach-O Fat/Java"
	FormatMachO32  = "Mach-O"
	FormatMachO64  = "Mach-O 64"
	FormatPDF      = "PDF"
	FormatGZIP     = "GZIP"
	FormatBZIP2    = "BZIP2"
	Format7Z       = "7Z"
	FormatMP3      = "MP3"
	FormatUnknown  = "Unknown"
)

// Header is a decoded fixed-layout file header. Format reports the label of
// the format the header belongs to.
type Header interface {
	Format() string
}

// ByteOrder is the endianness declared by a file header, as opposed to the
// endianness used to read it.
type ByteOrder uint8

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (o ByteOrder) String() string {
	if o == LittleEndian {
		return "LE"
	}
	return "BE"
}

// PNGHeader holds the image dimensions from the IHDR chunk.
type PNGHeader struct {
	Width  uint32
	Height uint32
}

func (PNGHeader) Format() string { return FormatPNG }

// JPEGHeader holds the image dimensions from the first SOF segment.
type JPEGHeader struct {
	Width  uint16
	Height uint16
}

func (JPEGHeader) Format() string { return FormatJPEG }

// ELFHeader holds the identification fields of an ELF binary.
type ELFHeader struct {
	Bitness   uint8 // 32 or 64
	ByteOrder ByteOrder
	OSABI     uint8
}

func (ELFHeader) Format() string { return FormatELF }

// ID3Header is the ten-byte ID3v2 tag header of an MP3 file. Size is the
// tag payload size, decoded from the syncsafe field; it excludes the header
// itself.
type ID3Header struct {
	VersionMajor uint8
	VersionMinor uint8
	Flags        uint8
	Size         uint32
}

func (ID3Header) Format() string { return FormatMP3 }

// ZIPLocalHeader is the fixed-size portion of a ZIP local file header, plus
// the filename that follows it.
type ZIPLocalHeader struct {
	Signature        uint32
	Version          uint16
	Flags            uint16
	Compression      uint16
	CRC32            uint32
	CompressedSize   uint32
	UncompressedSize uint32
	FilenameLength   uint16
	ExtraLength      uint16
	Filename         string
}

func (ZIPLocalHeader) Format() string { return FormatZIP }
