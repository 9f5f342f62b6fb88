package pypub

import (
	"fmt"
	"os"
	"regexp"

	"github.com/hashicorp/go-multierror"
)

// Patterns for the two version declaration styles pypub rewrites. Only the
// first matching line in each file is touched, so dependency pins and other
// version-shaped strings further down are left alone.
var (
	manifestVersionPattern = regexp.MustCompile(`(?m)^(\s*version\s*=\s*")([^"]+)(")`)
	moduleVersionPattern   = regexp.MustCompile(`(?m)^(__version__\s*=\s*["'])([^"']+)(["'])`)
)

// fileEdit is a pending single-file rewrite. The original bytes are retained
// so a partially applied transaction can be rolled back.
type fileEdit struct {
	path     string
	original []byte
	updated  []byte
}

func prepareEdit(path string, pattern *regexp.Regexp, newVersion string) (fileEdit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileEdit{}, fmt.Errorf("reading %s: %w", path, err)
	}

	loc := pattern.FindSubmatchIndex(data)
	if loc == nil {
		return fileEdit{}, fmt.Errorf("%w in %s", ErrVersionNotFound, path)
	}

	// loc[4:6] is the quoted value capture group.
	updated := make([]byte, 0, len(data)+len(newVersion))
	updated = append(updated, data[:loc[4]]...)
	updated = append(updated, newVersion...)
	updated = append(updated, data[loc[5]:]...)

	return fileEdit{path: path, original: data, updated: updated}, nil
}

// ApplyVersion rewrites the manifest's version field and the module's
// __version__ attribute to newVersion, preserving every other byte of both
// files. Both files are read and matched before either is written, and a
// failed second write restores the first from its original contents, so the
// pair is updated as a unit or not at all. It returns the updated paths.
func ApplyVersion(manifestPath, versionFilePath string, newVersion Version) ([]string, error) {
	targets := []struct {
		path    string
		pattern *regexp.Regexp
	}{
		{manifestPath, manifestVersionPattern},
		{versionFilePath, moduleVersionPattern},
	}

	edits := make([]fileEdit, 0, len(targets))
	for _, target := range targets {
		edit, err := prepareEdit(target.path, target.pattern, newVersion.String())
		if err != nil {
			return nil, err
		}
		edits = append(edits, edit)
	}

	updated := make([]string, 0, len(edits))
	for i, edit := range edits {
		if err := os.WriteFile(edit.path, edit.updated, 0644); err != nil {
			err = fmt.Errorf("writing %s: %w", edit.path, err)
			for _, done := range edits[:i] {
				if restoreErr := os.WriteFile(done.path, done.original, 0644); restoreErr != nil {
					err = multierror.Append(err, fmt.Errorf("restoring %s: %w", done.path, restoreErr))
				}
			}
			return nil, err
		}
		updated = append(updated, edit.path)
	}

	return updated, nil
}
