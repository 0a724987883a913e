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
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/croixal/binsight/internal/inspect"
	"github.com/croixal/binsight/pkg/util/format"
)

func DefineInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "inspect <path>...",
		Short:        "Identify the format of files and directories",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         RunInspect,
	}

	cmd.Flags().StringP("report", "o", "", "write an XML report to the specified path")
	cmd.Flags().StringSliceP("ext", "", nil, "format extensions to decode")
	cmd.Flags().String("max-read", "64MB", "max number of bytes to read per file")
	cmd.Flags().Bool("no-progress", false, "disable the progress bar")

	return cmd
}

func RunInspect(cmd *cobra.Command, args []string) error {
	opts, err := parseOptions(cmd)
	if err != nil {
		return err
	}
	return inspect.Run(args, opts)
}

func parseOptions(cmd *cobra.Command) (inspect.Options, error) {
	reportFile := flagString(cmd, "report")
	noProgress, _ := cmd.Flags().GetBool("no-progress")
	exts, _ := cmd.Flags().GetStringSlice("ext")

	maxRead, err := getBytes(cmd, "max-read")
	if err != nil {
		return inspect.Options{}, err
	}

	level, err := logrus.ParseLevel(flagString(cmd, "log-level"))
	if err != nil {
		return inspect.Options{}, err
	}

	return inspect.Options{
		ReportFile:  reportFile,
		Exts:        exts,
		MaxReadSize: maxRead,
		LogLevel:    level,
		NoProgress:  noProgress,
	}, nil
}

func getBytes(cmd *cobra.Command, name string) (uint64, error) {
	return format.ParseBytes(flagString(cmd, name))
}
