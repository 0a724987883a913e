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
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/croixal/binsight/internal/format"
	"github.com/croixal/binsight/internal/inspect"
	fmtutil "github.com/croixal/binsight/pkg/util/format"
)

func DefineDecodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "decode <file>",
		Short:        "Decode the header fields of a single file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunDecode,
	}

	cmd.Flags().String("max-read", "64MB", "max number of bytes to read from the file")

	return cmd
}

func RunDecode(cmd *cobra.Command, args []string) error {
	maxRead, err := getBytes(cmd, "max-read")
	if err != nil {
		return err
	}

	res, err := inspect.File(args[0], maxRead, format.BuildRegistry())
	if err != nil {
		return err
	}

	fmt.Printf("File:   %s\n", res.Path)
	fmt.Printf("Size:   %s\n", fmtutil.FormatBytes(res.Size))
	fmt.Printf("Format: %s\n", res.Format)

	if res.Header == nil {
		fmt.Println("No decodable header found.")
		return nil
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, f := range inspect.HeaderFields(res.Header) {
		fmt.Fprintf(w, "%s\t%s\n", f.Name, f.Value)
	}
	return w.Flush()
}
