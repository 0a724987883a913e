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

// Package pbar renders a single-line terminal progress bar.
package pbar

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/croixal/binsight/pkg/util/format"
)

const MinRefreshRate = 500 * time.Millisecond

// Bar tracks progress over a known number of files and bytes.
type Bar struct {
	out io.Writer

	TotalFiles     int
	TotalBytes     int64
	ProcessedFiles int
	ProcessedBytes int64
	Identified     int

	lastUpdate time.Time
}

func New(out io.Writer, totalFiles int, totalBytes int64) *Bar {
	return &Bar{
		out:        out,
		TotalFiles: totalFiles,
		TotalBytes: totalBytes,
	}
}

// Render redraws the bar. Unless forced, redraws are throttled to
// MinRefreshRate.
func (b *Bar) Render(force bool) {
	if !force && !b.lastUpdate.IsZero() && time.Since(b.lastUpdate) < MinRefreshRate {
		return
	}
	b.lastUpdate = time.Now()

	percentage := 100.0
	if b.TotalFiles > 0 {
		percentage = float64(b.ProcessedFiles) / float64(b.TotalFiles) * 100
	}

	const barLength = 20
	filled := int(barLength * percentage / 100)
	var bar string
	if filled >= barLength {
		bar = strings.Repeat("=", barLength)
	} else {
		bar = strings.Repeat("=", filled) + ">" + strings.Repeat(" ", barLength-filled-1)
	}

	fmt.Fprintf(b.out, "\r[INFO] Progress: [%s] %3.0f%% (%d/%d files, %s) | Identified: %d    ",
		bar,
		percentage,
		b.ProcessedFiles,
		b.TotalFiles,
		format.FormatBytes(b.ProcessedBytes),
		b.Identified,
	)
}

// Finish terminates the progress line.
func (b *Bar) Finish() {
	fmt.Fprintln(b.out)
}
