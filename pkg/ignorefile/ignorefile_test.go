package ignorefile_test

import (
	"testing"

	"github.com/arthur-debert/bootstrap/pkg/errors"
	"github.com/arthur-debert/bootstrap/pkg/ignorefile"
	"github.com/arthur-debert/bootstrap/pkg/testutil"
	"github.com/arthur-debert/bootstrap/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const path = "/project/.gitignore"

var defaultEntries = []string{
	".env/", ".venv/", "env/", "__pycache__/", "__pycache__/*",
	"*/__pycache__/*", "build/", "dist/", ".git/",
}

func TestEnsureLine_CreatesMissingFile(t *testing.T) {
	fs := testutil.NewTestFS()

	added, err := ignorefile.EnsureLine(fs, path, "dist/")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, "dist/\n", testutil.ReadFile(t, fs, path))
}

func TestEnsureLine_PresentLineIsNoop(t *testing.T) {
	tests := []struct {
		name    string
		content string
		line    string
	}{
		{"first line", "dist/\nbuild/\n", "dist/"},
		{"last line", "dist/\nbuild/\n", "build/"},
		{"no trailing newline", "dist/\nbuild/", "build/"},
		{"crlf file", "dist/\r\nbuild/\r\n", "dist/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := testutil.NewTestFS()
			testutil.WriteFile(t, fs, path, tt.content)

			added, err := ignorefile.EnsureLine(fs, path, tt.line)
			require.NoError(t, err)
			assert.False(t, added)
			assert.Equal(t, tt.content, testutil.ReadFile(t, fs, path), "file must be untouched")
		})
	}
}

func TestEnsureLine_AbsentLineAppendsExactlyOne(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"terminated", "*.log\nbuild/\n"},
		{"unterminated", "*.log\nbuild/"},
		{"partial match only", "dist/*\n# dist/\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := testutil.NewTestFS()
			testutil.WriteFile(t, fs, path, tt.content)
			before := testutil.ReadLines(t, fs, path)

			added, err := ignorefile.EnsureLine(fs, path, "dist/")
			require.NoError(t, err)
			assert.True(t, added)

			after := testutil.ReadLines(t, fs, path)
			require.Len(t, after, len(before)+1)
			assert.Equal(t, "dist/", after[len(after)-1])
			if len(before) > 0 {
				assert.Equal(t, before, after[:len(before)])
			}
		})
	}
}

func TestEnsureLines_DefaultEntriesFromScratch(t *testing.T) {
	fs := testutil.NewTestFS()
	file := ignorefile.Open(fs, path)

	// __pycache__/ is requested twice; the second insertion is a no-op
	requested := append([]string{}, defaultEntries[:4]...)
	requested = append(requested, "__pycache__/")
	requested = append(requested, defaultEntries[4:]...)

	added, err := file.EnsureLines(requested...)
	require.NoError(t, err)
	assert.Equal(t, defaultEntries, added)

	lines, err := file.Lines()
	require.NoError(t, err)
	assert.Equal(t, defaultEntries, lines)

	// Second run leaves the file unchanged
	added, err = file.EnsureLines(requested...)
	require.NoError(t, err)
	assert.Empty(t, added)
	assert.Equal(t, defaultEntries, testutil.ReadLines(t, fs, path))
}

func TestEnsureLines_KeepsExistingEntries(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteFile(t, fs, path, "*.log\n.venv/\n")

	added, err := ignorefile.Open(fs, path).EnsureLines(defaultEntries...)
	require.NoError(t, err)
	assert.NotContains(t, added, ".venv/")

	lines := testutil.ReadLines(t, fs, path)
	assert.Equal(t, []string{"*.log", ".venv/"}, lines[:2])
	assert.Len(t, lines, 2+len(defaultEntries)-1)
}

func TestPending(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteFile(t, fs, path, "build/\n")
	file := ignorefile.Open(fs, path)

	missing, err := file.Pending("build/", "dist/")
	require.NoError(t, err)
	assert.Equal(t, []string{"dist/"}, missing)
	assert.Equal(t, "build/\n", testutil.ReadFile(t, fs, path), "Pending must not write")
}

func TestLines_MissingFile(t *testing.T) {
	lines, err := ignorefile.Open(testutil.NewTestFS(), path).Lines()
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestEnsureLine_Errors(t *testing.T) {
	t.Run("unwritable path is an IO error", func(t *testing.T) {
		fs := testutil.NewReadOnlyTestFS(func(seed types.FS) {
			testutil.WriteFile(t, seed, path, "build/\n")
		})

		_, err := ignorefile.EnsureLine(fs, path, "dist/")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
		assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
	})

	t.Run("present line on read-only fs is still a no-op", func(t *testing.T) {
		fs := testutil.NewReadOnlyTestFS(func(seed types.FS) {
			testutil.WriteFile(t, seed, path, "dist/\n")
		})

		added, err := ignorefile.EnsureLine(fs, path, "dist/")
		require.NoError(t, err)
		assert.False(t, added)
	})

	t.Run("multi-line entry is rejected", func(t *testing.T) {
		_, err := ignorefile.EnsureLine(testutil.NewTestFS(), path, "a\nb")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("empty entry is rejected", func(t *testing.T) {
		_, err := ignorefile.EnsureLine(testutil.NewTestFS(), path, "")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}
