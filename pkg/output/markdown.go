package output

import (
	"github.com/charmbracelet/glamour"

	"github.com/arthur-debert/bootstrap/pkg/logging"
)

// RenderMarkdown renders a markdown document for the terminal. Without
// color the document is returned unchanged. Rendering failures fall back to
// the raw document.
func RenderMarkdown(content string, noColor bool, width int) string {
	if noColor {
		return content
	}

	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	logger := logging.GetLogger("output")
	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		logger.Debug().Err(err).Msg("Markdown renderer unavailable")
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		logger.Debug().Err(err).Msg("Markdown rendering failed")
		return content
	}
	return rendered
}
