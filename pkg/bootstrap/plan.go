package bootstrap

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/bootstrap/pkg/pipeline"
)

// Plan renders the pipeline Run would execute as a markdown document
func Plan(opts Options) (string, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Bootstrap plan\n\nProject root: `%s`\n\n", opts.Root)
	if opts.DryRun {
		b.WriteString("_Dry run: no command will be executed._\n\n")
	}

	b.WriteString("| # | Step | Action |\n|---|---|---|\n")
	steps := buildSteps(opts)
	for i, step := range steps {
		writePlanRow(&b, i+1, step)
	}
	writePlanRow(&b, len(steps)+1, buildPackageStep(opts))

	fmt.Fprintf(&b, "\nPackaging runs only if every step above succeeds. Output directory: `%s`.\n",
		opts.Config.Package.OutputDir)
	return b.String(), nil
}

func writePlanRow(b *strings.Builder, n int, step pipeline.Step) {
	action := "`" + strings.ReplaceAll(step.Describe(), "|", `\|`) + "`"
	if step.Skip {
		action += " (disabled)"
	}
	fmt.Fprintf(b, "| %d | %s | %s |\n", n, step.Label, action)
}
