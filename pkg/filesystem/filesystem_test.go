package filesystem_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/bootstrap/pkg/filesystem"
	"github.com/arthur-debert/bootstrap/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImplementations(t *testing.T) {
	impls := map[string]func(t *testing.T) (types.FS, string){
		"os": func(t *testing.T) (types.FS, string) {
			return filesystem.NewOS(), t.TempDir()
		},
		"afero": func(t *testing.T) (types.FS, string) {
			return filesystem.NewAferoFS(afero.NewMemMapFs()), "/project"
		},
	}

	for name, setup := range impls {
		t.Run(name, func(t *testing.T) {
			fsys, root := setup(t)

			dir := filepath.Join(root, "dist")
			require.NoError(t, fsys.MkdirAll(dir, 0755))
			info, err := fsys.Stat(dir)
			require.NoError(t, err)
			assert.True(t, info.IsDir())

			file := filepath.Join(root, ".gitignore")
			_, err = fsys.ReadFile(file)
			assert.ErrorIs(t, err, fs.ErrNotExist)

			require.NoError(t, fsys.WriteFile(file, []byte("dist/\n"), 0644))
			data, err := fsys.ReadFile(file)
			require.NoError(t, err)
			assert.Equal(t, "dist/\n", string(data))

			_, err = fsys.ReadFile(dir)
			assert.Error(t, err, "reading a directory should fail")

			info, err = fsys.Stat(file)
			require.NoError(t, err)
			assert.False(t, info.IsDir())
			assert.Equal(t, int64(len("dist/\n")), info.Size())

			_, err = fsys.Stat(filepath.Join(root, "missing"))
			assert.True(t, os.IsNotExist(err))
		})
	}
}
