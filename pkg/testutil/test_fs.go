package testutil

import (
	"github.com/arthur-debert/bootstrap/pkg/filesystem"
	"github.com/arthur-debert/bootstrap/pkg/types"
	"github.com/spf13/afero"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// NewReadOnlyTestFS creates an in-memory filesystem that rejects every write.
// seed runs against the writable layer before it is wrapped.
func NewReadOnlyTestFS(seed func(fs types.FS)) types.FS {
	base := afero.NewMemMapFs()
	if seed != nil {
		seed(filesystem.NewAferoFS(base))
	}
	return filesystem.NewAferoFS(afero.NewReadOnlyFs(base))
}
