package styles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStyles(t *testing.T) {
	require.NoError(t, Parse(defaultStyles))

	for _, name := range []string{"Heading", "Label", "Arrow", "Success", "Skipped", "Failure", "Error", "Muted", "Code"} {
		assert.True(t, Has(name), "style %s should be defined", name)
	}
	assert.True(t, GetStyle("Error").GetBold())
	assert.Equal(t, 4, GetStyle("Code").GetPaddingLeft())
}

func TestGetStyle_Unknown(t *testing.T) {
	style := GetStyle("DoesNotExist")
	assert.Equal(t, "text", style.Render("text"))
}

func TestLoadStyles(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, Parse(defaultStyles)) })

	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "colors:\n  red:\n    light: \"#ff0000\"\n    dark: \"#ff0000\"\nstyles:\n  Error:\n    italic: true\n    foreground: red\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	require.NoError(t, LoadStyles(path))
	assert.True(t, GetStyle("Error").GetItalic())
	assert.False(t, Has("Success"))
}

func TestLoadStyles_Errors(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, Parse(defaultStyles)) })

	assert.Error(t, LoadStyles(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, Parse([]byte("styles: [not a map")))
}
