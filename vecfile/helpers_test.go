// Package vecfile_test contains shared helpers for the vecfile tests.
package vecfile_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// tempPath returns a path inside a fresh per-test directory.
func tempPath(t *testing.T, name string) string {
	t.Helper()

	return filepath.Join(t.TempDir(), name)
}

// writeText creates a file with exactly content.
func writeText(t *testing.T, name, content string) string {
	t.Helper()
	path := tempPath(t, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// readText returns the file content as a string.
func readText(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

// captureLogger returns a debug-level text logger writing into a buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}
