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
	"fmt"
	"strings"

	"github.com/croixal/binsight/pkg/bin"
	"github.com/croixal/binsight/pkg/table"
)

// FormatInfo describes a recognizable format: its label, file extension,
// magic signatures, and an optional header decoder. Formats without a
// decoder are sniffed only.
type FormatInfo struct {
	Name        string
	Ext         string
	Description string
	Signatures  [][]byte
	Decode      func(r *bin.Reader) (Header, bool)
}

var DefaultFormats = []FormatInfo{
	{
		Name:        FormatPNG,
		Ext:         "png",
		Description: "Portable Network Graphics",
		Signatures:  [][]byte{{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}},
		Decode: func(r *bin.Reader) (Header, bool) {
			h, ok := DecodePNG(r)
			return h, ok
		},
	},
	{
		Name:        FormatJPEG,
		Ext:         "jpg",
		Description: "JPEG image",
		Signatures:  [][]byte{{0xFF, 0xD8, 0xFF}},
		Decode: func(r *bin.Reader) (Header, bool) {
			h, ok := DecodeJPEG(r)
			return h, ok
		},
	},
	{
		Name:        FormatGIF,
		Ext:         "gif",
		Description: "Graphics Interchange Format",
		Signatures:  [][]byte{[]byte("GIF8")},
	},
	{
		Name:        FormatRIFF,
		Ext:         "riff",
		Description: "RIFF container (WAV, AVI, WebP)",
		Signatures:  [][]byte{[]byte("RIFF")},
	},
	{
		Name:        FormatZIP,
		Ext:         "zip",
		Description: "ZIP archive",
		Signatures:  [][]byte{{'P', 'K', 0x03, 0x04}},
		Decode: func(r *bin.Reader) (Header, bool) {
			h, ok := DecodeZIPLocalHeader(r, 0)
			return h, ok
		},
	},
	{
		Name:        FormatZIPEmpty,
		Ext:         "zip",
		Description: "ZIP archive without entries",
		Signatures:  [][]byte{{'P', 'K', 0x05, 0x06}},
	},
	{
		Name:        FormatELF,
		Ext:         "elf",
		Description: "Executable and Linkable Format",
		Signatures:  [][]byte{{0x7F, 'E', 'L', 'F'}},
		Decode: func(r *bin.Reader) (Header, bool) {
			h, ok := DecodeELF(r)
			return h, ok
		},
	},
	{
		Name:        FormatCafebabe,
		Ext:         "class",
		Description: "Java class or Mach-O fat binary",
		Signatures:  [][]byte{{0xCA, 0xFE, 0xBA, 0xBE}},
	},
	{
		Name:        FormatMachO32,
		Ext:         "macho",
		Description: "Mach-O 32-bit binary",
		Signatures:  [][]byte{{0xFE, 0xED, 0xFA, 0xCE}},
	},
	{
		Name:        FormatMachO64,
		Ext:         "macho",
		Description: "Mach-O 64-bit binary",
		Signatures:  [][]byte{{0xFE, 0xED, 0xFA, 0xCF}},
	},
	{
		Name:        FormatPDF,
		Ext:         "pdf",
		Description: "Portable Document Format",
		Signatures:  [][]byte{[]byte("%PDF")},
	},
	{
		Name:        FormatGZIP,
		Ext:         "gz",
		Description: "GZIP compressed data",
		Signatures:  [][]byte{{0x1F, 0x8B, 0x08}},
	},
	{
		Name:        FormatBZIP2,
		Ext:         "bz2",
		Description: "BZIP2 compressed data",
		Signatures:  [][]byte{[]byte("BZh")},
	},
	{
		Name:        Format7Z,
		Ext:         "7z",
		Description: "7-Zip archive",
		Signatures:  [][]byte{{0x37, 0x7A, 0xBC, 0xAF}},
	},
	{
		Name:        FormatMP3,
		Ext:         "mp3",
		Description: "MPEG audio, with or without an ID3v2 tag",
		Signatures: [][]byte{
			[]byte("ID3"),
			{0xFF, 0xFA},
			{0xFF, 0xFB},
			{0xFF, 0xF2},
			{0xFF, 0xF3},
			{0xFF, 0xE2},
			{0xFF, 0xE3},
		},
		Decode: func(r *bin.Reader) (Header, bool) {
			h, ok := DecodeID3(r)
			return h, ok
		},
	},
}

// Formats returns the format descriptors for the given extensions, or all
// of them when no extension is passed.
func Formats(exts ...string) ([]FormatInfo, error) {
	if len(exts) == 0 {
		return DefaultFormats, nil
	}

	byExt := make(map[string][]FormatInfo)
	for _, info := range DefaultFormats {
		byExt[info.Ext] = append(byExt[info.Ext], info)
	}

	var infos []FormatInfo
	for _, ext := range exts {
		matched, ok := byExt[strings.ToLower(ext)]
		if !ok {
			return nil, fmt.Errorf("unsupported format extension %q", ext)
		}
		infos = append(infos, matched...)
	}
	return infos, nil
}

// Registry indexes format descriptors by their magic signatures for
// prefix-based dispatch.
type Registry struct {
	table *table.PrefixTable[[]FormatInfo]
	sigs  int
}

func NewRegistry() *Registry {
	return &Registry{
		table: table.New[[]FormatInfo](),
	}
}

func (r *Registry) Add(info FormatInfo) {
	for _, sig := range info.Signatures {
		infos, _ := r.table.Get(sig)
		r.table.Insert(sig, append(infos, info))
		r.sigs++
	}
}

// Signatures returns the number of registered magic signatures.
func (r *Registry) Signatures() int {
	return r.sigs
}

// Search invokes handle for every registered format whose signature is a
// prefix of data, until handle returns true.
func (r *Registry) Search(data []byte, handle func(info FormatInfo) bool) {
	if r.table.Size() == 0 {
		return
	}

	r.table.Walk(data, func(infos []FormatInfo) bool {
		for _, info := range infos {
			if handle(info) {
				return true
			}
		}
		return false
	})
}

// BuildRegistry indexes the given formats, defaulting to DefaultFormats.
func BuildRegistry(infos ...FormatInfo) *Registry {
	if len(infos) == 0 {
		infos = DefaultFormats
	}

	r := NewRegistry()
	for _, info := range infos {
		r.Add(info)
	}
	return r
}
