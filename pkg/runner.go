package pypub

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Runner executes an external command line. It is an interface so tests can
// inject fake implementations without running real tools.
type Runner interface {
	Execute(ctx context.Context, command string, dir string, stdout, stderr io.Writer) error
}

// Executor is the real Runner implementation backed by os/exec.
type Executor struct {
	// DryRun prints the command instead of running it.
	DryRun bool
}

// Execute splits command into argv using shell quoting rules (no shell is
// involved otherwise), expands glob tokens against dir, and runs the program
// with its output attached to the given writers. If dir is non-empty the
// command runs there.
func (e *Executor) Execute(ctx context.Context, command, dir string, stdout, stderr io.Writer) error {
	argv, err := shellquote.Split(command)
	if err != nil {
		return fmt.Errorf("parsing command %q: %w", command, err)
	}
	if len(argv) == 0 {
		return errors.New("empty command")
	}
	argv = expandGlobs(argv, dir)

	if e.DryRun {
		fmt.Fprintf(stdout, "[dry run] %s\n", strings.Join(argv, " "))
		return nil
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", argv[0], err)
	}

	return nil
}

// expandGlobs replaces tokens containing glob metacharacters with their
// matches relative to dir. A token with no matches passes through unchanged.
func expandGlobs(argv []string, dir string) []string {
	out := make([]string, 0, len(argv))
	for _, tok := range argv {
		if !strings.ContainsAny(tok, "*?[") {
			out = append(out, tok)
			continue
		}

		pattern := tok
		if dir != "" && !filepath.IsAbs(tok) {
			pattern = filepath.Join(dir, tok)
		}
		matches, err := filepath.Glob(pattern)
		if err != nil || len(matches) == 0 {
			out = append(out, tok)
			continue
		}
		for _, m := range matches {
			if dir != "" && !filepath.IsAbs(tok) {
				if rel, relErr := filepath.Rel(dir, m); relErr == nil {
					m = rel
				}
			}
			out = append(out, m)
		}
	}

	return out
}
