// Package ignorefile maintains newline-delimited VCS ignore files.
//
// Entries are inserted idempotently: a line that is already present as an
// exact match is left alone, anything else is appended at the end. The file
// is created when missing and always left newline-terminated.
package ignorefile

import (
	stderrors "errors"
	"io/fs"
	"strings"

	"github.com/arthur-debert/bootstrap/pkg/errors"
	"github.com/arthur-debert/bootstrap/pkg/logging"
	"github.com/arthur-debert/bootstrap/pkg/types"
)

// File is a handle on an ignore file
type File struct {
	fs   types.FS
	path string
}

// Open returns a handle on the ignore file at path. The file is not touched
// until it is read or modified.
func Open(fsys types.FS, path string) *File {
	return &File{fs: fsys, path: path}
}

// Path returns the location of the ignore file
func (f *File) Path() string {
	return f.path
}

// Lines returns the entries currently in the file. A missing file has no lines.
func (f *File) Lines() ([]string, error) {
	content, err := f.read()
	if err != nil {
		return nil, err
	}
	return splitLines(content), nil
}

// EnsureLine appends line unless it is already present.
// It reports whether the file was modified.
func (f *File) EnsureLine(line string) (bool, error) {
	added, err := f.EnsureLines(line)
	if err != nil {
		return false, err
	}
	return len(added) == 1, nil
}

// EnsureLines appends every line not already present, in order, with a single
// write. Repeated lines in the input are inserted once. It returns the lines
// that were added.
func (f *File) EnsureLines(lines ...string) ([]string, error) {
	logger := logging.GetLogger("ignorefile")

	content, err := f.read()
	if err != nil {
		return nil, err
	}

	missing, err := pending(content, lines)
	if err != nil {
		return nil, err
	}
	if len(missing) == 0 {
		logger.Debug().Str("path", f.path).Msg("Ignore file already up to date")
		return nil, nil
	}

	var b strings.Builder
	b.WriteString(content)
	if content != "" && !strings.HasSuffix(content, "\n") {
		b.WriteString("\n")
	}
	for _, line := range missing {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if err := f.fs.WriteFile(f.path, []byte(b.String()), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to write ignore file %s", f.path).
			WithDetail("path", f.path)
	}

	logger.Info().
		Str("path", f.path).
		Strs("added", missing).
		Msg("Updated ignore file")
	return missing, nil
}

// Pending returns the lines EnsureLines would add, without writing anything
func (f *File) Pending(lines ...string) ([]string, error) {
	content, err := f.read()
	if err != nil {
		return nil, err
	}
	return pending(content, lines)
}

// EnsureLine is a convenience wrapper for Open(fsys, path).EnsureLine(line)
func EnsureLine(fsys types.FS, path, line string) (bool, error) {
	return Open(fsys, path).EnsureLine(line)
}

func (f *File) read() (string, error) {
	data, err := f.fs.ReadFile(f.path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", errors.Wrapf(err, errors.ErrIO, "failed to read ignore file %s", f.path).
			WithDetail("path", f.path)
	}
	return string(data), nil
}

func pending(content string, lines []string) ([]string, error) {
	present := make(map[string]bool)
	for _, existing := range splitLines(content) {
		present[existing] = true
	}

	var missing []string
	for _, line := range lines {
		if line == "" || strings.ContainsAny(line, "\r\n") {
			return nil, errors.Newf(errors.ErrInvalidInput, "ignore entry %q must be a single non-empty line", line)
		}
		if present[line] {
			continue
		}
		present[line] = true
		missing = append(missing, line)
	}
	return missing, nil
}

// splitLines splits content on newlines, dropping the trailing empty element
// and any carriage returns left by CRLF files
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
