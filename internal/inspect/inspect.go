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

// Package inspect walks files and directories, classifies each file with the
// format engine and optionally writes an XML report. The engine itself never
// performs I/O; everything file-shaped lives here.
package inspect

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/croixal/binsight/internal/env"
	"github.com/croixal/binsight/internal/format"
	"github.com/croixal/binsight/internal/mmap"
	"github.com/croixal/binsight/pkg/bin"
	"github.com/croixal/binsight/pkg/pbar"
	"github.com/croixal/binsight/pkg/report"
	fmtutil "github.com/croixal/binsight/pkg/util/format"
)

type Options struct {
	ReportFile  string
	Exts        []string
	MaxReadSize uint64
	LogLevel    logrus.Level
	NoProgress  bool
	Out         io.Writer
}

// Result is the outcome of inspecting a single file.
type Result struct {
	Path   string
	Size   int64
	Format string
	Header format.Header // nil when no decoder applies or decoding failed
}

// Run inspects every regular file reachable from paths.
func Run(paths []string, opts Options) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	logger := newLogger(out, opts.LogLevel)

	infos, err := format.Formats(opts.Exts...)
	if err != nil {
		return err
	}
	registry := format.BuildRegistry(infos...)

	files, totalBytes, err := collectFiles(paths)
	if err != nil {
		return err
	}

	var reportWriter *report.Writer
	if opts.ReportFile != "" {
		f, err := os.Create(opts.ReportFile)
		if err != nil {
			return err
		}
		defer f.Close()

		reportWriter = report.NewWriter(f)
		defer reportWriter.Close()

		err = reportWriter.WriteHeader(report.Header{
			Version: report.OutputVersion,
			Creator: report.Creator{
				Package:              env.AppName,
				Version:              env.Version,
				ExecutionEnvironment: report.GetExecEnv(),
			},
		})
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "[INFO] Inspecting %d files (%s), %d signatures...\n",
		len(files), fmtutil.FormatBytes(totalBytes), registry.Signatures())

	var bar *pbar.Bar
	if !opts.NoProgress {
		bar = pbar.New(out, len(files), totalBytes)
	}

	start := time.Now()
	identified := 0

	for _, path := range files {
		res, err := File(path, opts.MaxReadSize, registry)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"path": path,
				"err":  err,
			}).Warn("unreadable file")
			continue
		}

		if res.Format != format.FormatUnknown {
			identified++
		}

		fields := logrus.Fields{
			"path":   res.Path,
			"format": res.Format,
			"size":   res.Size,
		}
		if res.Header != nil {
			for _, f := range HeaderFields(res.Header) {
				fields[f.Name] = f.Value
			}
		}
		logger.WithFields(fields).Debug("inspected")

		if reportWriter != nil {
			err := reportWriter.WriteFileObject(report.FileObject{
				Filename: res.Path,
				FileSize: uint64(res.Size),
				Format:   res.Format,
				Fields:   HeaderFields(res.Header),
			})
			if err != nil {
				logger.WithField("err", err).Error("unable to write report entry")
			}
		}

		if bar != nil {
			bar.ProcessedFiles++
			bar.ProcessedBytes += res.Size
			bar.Identified = identified
			bar.Render(false)
		}
	}

	if bar != nil {
		bar.Render(true)
		bar.Finish()
	}

	fmt.Fprintf(out, "[INFO] Inspection completed!\n")
	fmt.Fprintf(out, "[INFO] Files identified: \t%d/%d\n", identified, len(files))
	fmt.Fprintf(out, "[INFO] Duration: \t%s\n", time.Since(start).Round(time.Millisecond))
	if opts.ReportFile != "" {
		fmt.Fprintf(out, "[INFO] Report saved to: \t%s\n", absPath(opts.ReportFile))
	}
	return nil
}

// File inspects a single file: maps it, sniffs the format, and runs the
// matching header decoder when one is registered. A zero-length file is an
// ordinary Unknown result, not an error.
func File(path string, maxRead uint64, registry *format.Registry) (Result, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Path:   path,
		Size:   fi.Size(),
		Format: format.FormatUnknown,
	}
	if fi.Size() == 0 {
		return res, nil
	}

	m, err := mmap.Open(path, int64(maxRead))
	if err != nil {
		return Result{}, err
	}
	defer m.Close()

	r := bin.NewReader(m.Data)
	res.Format = format.Detect(r)

	registry.Search(m.Data, func(info format.FormatInfo) bool {
		if info.Decode == nil {
			return false
		}
		hdr, ok := info.Decode(r)
		if ok {
			res.Header = hdr
		}
		return ok
	})
	return res, nil
}

// HeaderFields flattens a decoded header into name/value pairs for the
// report and the debug log.
func HeaderFields(hdr format.Header) []report.Field {
	switch h := hdr.(type) {
	case format.PNGHeader:
		return []report.Field{
			{Name: "width", Value: strconv.FormatUint(uint64(h.Width), 10)},
			{Name: "height", Value: strconv.FormatUint(uint64(h.Height), 10)},
		}
	case format.JPEGHeader:
		return []report.Field{
			{Name: "width", Value: strconv.FormatUint(uint64(h.Width), 10)},
			{Name: "height", Value: strconv.FormatUint(uint64(h.Height), 10)},
		}
	case format.ELFHeader:
		return []report.Field{
			{Name: "bitness", Value: strconv.Itoa(int(h.Bitness))},
			{Name: "endianness", Value: h.ByteOrder.String()},
			{Name: "osabi", Value: strconv.Itoa(int(h.OSABI))},
		}
	case format.ID3Header:
		return []report.Field{
			{Name: "version", Value: fmt.Sprintf("2.%d.%d", h.VersionMajor, h.VersionMinor)},
			{Name: "flags", Value: fmt.Sprintf("%#02x", h.Flags)},
			{Name: "tag_size", Value: strconv.FormatUint(uint64(h.Size), 10)},
		}
	case format.ZIPLocalHeader:
		return []report.Field{
			{Name: "version", Value: strconv.Itoa(int(h.Version))},
			{Name: "flags", Value: fmt.Sprintf("%#04x", h.Flags)},
			{Name: "compression", Value: strconv.Itoa(int(h.Compression))},
			{Name: "crc32", Value: fmt.Sprintf("%#08x", h.CRC32)},
			{Name: "compressed_size", Value: strconv.FormatUint(uint64(h.CompressedSize), 10)},
			{Name: "uncompressed_size", Value: strconv.FormatUint(uint64(h.UncompressedSize), 10)},
			{Name: "filename", Value: h.Filename},
		}
	}
	return nil
}

// collectFiles expands paths into the list of regular files to inspect.
func collectFiles(paths []string) ([]string, int64, error) {
	var (
		files []string
		total int64
	)

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, 0, err
		}

		if !info.IsDir() {
			files = append(files, p)
			total += info.Size()
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type().IsRegular() {
				fi, err := d.Info()
				if err != nil {
					return err
				}
				files = append(files, path)
				total += fi.Size()
			}
			return nil
		})
		if err != nil {
			return nil, 0, err
		}
	}
	return files, total, nil
}

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return logger
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
