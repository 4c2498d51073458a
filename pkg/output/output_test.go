package output

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/bootstrap/pkg/errors"
	"github.com/arthur-debert/bootstrap/pkg/pipeline"
)

func TestStepPrinter_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := NewStepPrinter(&buf, true)

	p.StepStarted(pipeline.Step{Label: "Creating virtual environment"})
	p.StepFinished(pipeline.StepResult{Label: "Creating virtual environment"})
	p.StepStarted(pipeline.Step{Label: "Running pre-commit hooks"})
	p.StepFinished(pipeline.StepResult{Skipped: true})
	p.StepStarted(pipeline.Step{Label: "Packaging application"})
	p.StepFinished(pipeline.StepResult{ExitCode: 2, Err: errors.NewStepError("Packaging application", 2, nil)})

	want := "==> Creating virtual environment\n    ok\n" +
		"==> Running pre-commit hooks\n    skipped\n" +
		"==> Packaging application\n    failed (exit 2)\n"
	assert.Equal(t, want, buf.String())
}

func TestStepPrinter_DryRunAndDuration(t *testing.T) {
	var buf bytes.Buffer
	p := NewStepPrinter(&buf, true)
	p.ShowDuration = true

	p.StepFinished(pipeline.StepResult{DryRun: true})
	p.StepFinished(pipeline.StepResult{Duration: 1500 * time.Millisecond})
	assert.Equal(t, "    would run\n    ok (1.5s)\n", buf.String())
}

func TestStepPrinter_Styled(t *testing.T) {
	var buf bytes.Buffer
	p := NewStepPrinter(&buf, false)

	p.StepStarted(pipeline.Step{Label: "Installing dependencies"})
	assert.Contains(t, buf.String(), "==>")
	assert.Contains(t, buf.String(), "Installing dependencies")
}

func TestError(t *testing.T) {
	err := errors.NewStepError("Installing pre-commit hooks", 1, nil)
	assert.Equal(t, `Error: step "Installing pre-commit hooks" failed with exit code 1`, Error(err, true))
	assert.Contains(t, Error(stderrors.New("boom"), false), "boom")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatAuto, false},
		{"auto", FormatAuto, false},
		{"TERM", FormatTerminal, false},
		{"plain", FormatText, false},
		{"html", FormatAuto, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotEqual(t, "unknown", got.String())
		})
	}
}

func TestDetectFormat_NotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, FormatText, DetectFormat(f))
	assert.False(t, ColorEnabled(f))
	assert.Equal(t, FormatTerminal, FormatTerminal.Resolve(f))
	assert.Equal(t, FormatText, FormatAuto.Resolve(nil))
}

func TestDetectFormat_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, FormatText, DetectFormat(os.Stdout))
}

func TestRenderMarkdown(t *testing.T) {
	doc := "# Plan\n\n| # | Step |\n|---|---|\n| 1 | Build |\n"
	assert.Equal(t, doc, RenderMarkdown(doc, true, 0))

	rendered := RenderMarkdown(doc, false, 80)
	assert.Contains(t, rendered, "Plan")
	assert.Contains(t, rendered, "Build")
}
