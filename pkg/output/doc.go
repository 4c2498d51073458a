// Package output renders bootstrap progress for the terminal.
//
// StepPrinter reports pipeline steps as they run: a `==> label` line before
// each step and a styled status line after it. Styling comes from the
// semantic styles in pkg/output/styles and is dropped entirely when color is
// disabled, so piped output stays plain text.
//
// RenderMarkdown renders documents such as the pipeline plan through glamour.
package output
