package testutil

import (
	"context"
	"testing"

	"github.com/arthur-debert/bootstrap/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeCommand(t *testing.T) {
	log := &CallLog{}
	ok := NewFakeCommand(log, "pip", "install")
	bad := NewFakeCommand(log, "pre-commit", "install").Failing(3)

	code, err := ok.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	code, err = bad.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, code)

	assert.Equal(t, []string{"pip", "pre-commit"}, log.Names())
	assert.Equal(t, 1, ok.Calls)
	assert.Equal(t, "pre-commit install", bad.String())
}

func TestReadOnlyTestFS(t *testing.T) {
	fs := NewReadOnlyTestFS(func(seed types.FS) {
		WriteFile(t, seed, "/project/.gitignore", "dist/\n")
	})

	assert.Equal(t, []string{"dist/"}, ReadLines(t, fs, "/project/.gitignore"))
	assert.Error(t, fs.WriteFile("/project/.gitignore", []byte("x"), 0644))
}
