package testutil

import (
	"strings"
	"testing"

	"github.com/arthur-debert/bootstrap/pkg/types"
	"github.com/stretchr/testify/require"
)

// WriteFile writes content to path on fs, failing the test on error
func WriteFile(t *testing.T, fs types.FS, path, content string) {
	t.Helper()
	require.NoError(t, fs.WriteFile(path, []byte(content), 0644))
}

// ReadFile reads path from fs, failing the test on error
func ReadFile(t *testing.T, fs types.FS, path string) string {
	t.Helper()
	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// ReadLines returns the newline-separated lines of path, without the
// trailing empty element
func ReadLines(t *testing.T, fs types.FS, path string) []string {
	t.Helper()
	content := ReadFile(t, fs, path)
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}
