package report_test

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/croixal/binsight/pkg/report"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := report.NewWriter(&buf)

	err := w.WriteHeader(report.Header{
		Version: report.OutputVersion,
		Creator: report.Creator{
			Package:              "binsight",
			Version:              "0.1.0",
			ExecutionEnvironment: report.GetExecEnv(),
		},
	})
	require.NoError(t, err)

	err = w.WriteFileObject(report.FileObject{
		Filename: "image.png",
		FileSize: 1024,
		Format:   "PNG",
		Fields: []report.Field{
			{Name: "width", Value: "256"},
			{Name: "height", Value: "128"},
		},
	})
	require.NoError(t, err)

	err = w.WriteFileObject(report.FileObject{
		Filename: "blob.bin",
		FileSize: 16,
		Format:   "Unknown",
	})
	require.NoError(t, err)

	require.NoError(t, w.Close())

	out := buf.String()
	require.True(t, strings.HasPrefix(out, xml.Header))
	require.Contains(t, out, `<inspection outputversion="1.0">`)
	require.Contains(t, out, "<filename>image.png</filename>")
	require.Contains(t, out, `<field name="width" value="256">`)
	require.Contains(t, out, "<format>Unknown</format>")
	require.Contains(t, out, "</inspection>")

	// The document must be well formed end to end.
	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err != nil {
			require.Equal(t, "EOF", err.Error())
			break
		}
	}
}
