package buildinfo

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()
	require.NoError(t, w.Close())

	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	return buf.String()
}

func TestPrintBuildInfo(t *testing.T) {
	out := captureStdout(t, func() {
		PrintBuildInfo("v1.2.3", "2026-01-01", "abc123")
	})

	require.Contains(t, out, "Build version: v1.2.3")
	require.Contains(t, out, "Build date: 2026-01-01")
	require.Contains(t, out, "Build commit: abc123")
}

func TestPrintBuildInfo_Defaults(t *testing.T) {
	out := captureStdout(t, func() {
		PrintBuildInfo("", "", "")
	})

	require.Contains(t, out, "Build version: N/A")
	require.Contains(t, out, "Build date: N/A")
	require.Contains(t, out, "Build commit: N/A")
}
