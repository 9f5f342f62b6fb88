package pypub

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kballard/go-shellquote"
)

// ReleaseMeta holds metadata about a release run.
type ReleaseMeta struct {
	Package      string   // [project].name from the manifest.
	OldVersion   string   // The version before bumping.
	NewVersion   string   // The new version after bumping.
	BumpType     string   // How the version was bumped (e.g. "major", "explicit").
	UpdatedFiles []string // Paths of all files rewritten (manifest, version file).
	Steps        []string // Pipeline steps that ran, or would run for dry runs.
}

// Options configures a release run.
type Options struct {
	// Pyproject is the path to the package manifest. Defaults to "pyproject.toml".
	Pyproject string

	// VersionFile overrides the [tool.pypub] version-file setting.
	VersionFile string

	// Runner executes the external tools. Defaults to &Executor{}.
	Runner Runner

	// Stdout and Stderr receive external tool output. Default to
	// os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

func (o *Options) setDefaults() {
	if o.Pyproject == "" {
		o.Pyproject = "pyproject.toml"
	}
	if o.Runner == nil {
		o.Runner = &Executor{}
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}

// Run performs a full release. It resolves the next version from versionArg
// (a bump keyword or an explicit version), rewrites the manifest and module
// version declarations as a single transaction, then runs the pipeline:
// clean build artifacts, run the test suite, build distributions, and upload
// them. The first failing stage aborts the run; nothing downstream executes.
func Run(ctx context.Context, versionArg string, opts Options) (ReleaseMeta, error) {
	var meta ReleaseMeta
	opts.setDefaults()

	// 1. Read the authoritative version from the manifest.
	proj, err := LoadProject(opts.Pyproject)
	if err != nil {
		return meta, err
	}
	if opts.VersionFile != "" {
		proj.Config.VersionFile = opts.VersionFile
	}
	meta.Package = proj.Name
	meta.OldVersion = proj.Version.String()

	// 2. Determine the new version before touching anything.
	next, bumpType, err := ResolveVersion(proj.Version, versionArg)
	if err != nil {
		return meta, err
	}
	meta.NewVersion = next.String()
	meta.BumpType = bumpType

	// 3. Rewrite both version declarations, or neither.
	updated, err := ApplyVersion(proj.ManifestPath, proj.VersionFilePath(), next)
	if err != nil {
		return meta, err
	}
	meta.UpdatedFiles = updated
	slog.Info("version applied", "old", meta.OldVersion, "new", meta.NewVersion)

	// 4. Clean, test, build, publish.
	steps := releaseSteps(proj, opts)
	for _, s := range steps {
		meta.Steps = append(meta.Steps, s.Name)
	}
	if err := runPipeline(ctx, steps); err != nil {
		return meta, err
	}

	return meta, nil
}

// DryRun resolves the version bump and reports the files and steps a real
// run would touch, without modifying anything or invoking any tool.
func DryRun(ctx context.Context, versionArg string, opts Options) (ReleaseMeta, error) {
	var meta ReleaseMeta
	opts.setDefaults()

	proj, err := LoadProject(opts.Pyproject)
	if err != nil {
		return meta, err
	}
	if opts.VersionFile != "" {
		proj.Config.VersionFile = opts.VersionFile
	}
	meta.Package = proj.Name
	meta.OldVersion = proj.Version.String()

	next, bumpType, err := ResolveVersion(proj.Version, versionArg)
	if err != nil {
		return meta, err
	}
	meta.NewVersion = next.String()
	meta.BumpType = bumpType

	// Both targets must still resolve so a dry run surfaces missing
	// version declarations.
	if _, err := prepareEdit(proj.ManifestPath, manifestVersionPattern, next.String()); err != nil {
		return meta, err
	}
	if _, err := prepareEdit(proj.VersionFilePath(), moduleVersionPattern, next.String()); err != nil {
		return meta, err
	}
	meta.UpdatedFiles = []string{proj.ManifestPath, proj.VersionFilePath()}

	for _, s := range releaseSteps(proj, opts) {
		meta.Steps = append(meta.Steps, s.Name)
	}

	return meta, nil
}

// releaseSteps builds the ordered pipeline for a project. The order is fixed:
// cleaning before testing keeps stale artifacts out of the build, and
// publishing is always last.
func releaseSteps(proj *Project, opts Options) []Step {
	c := proj.Config

	return []Step{
		{Name: "clean", Run: func(ctx context.Context) error {
			return cleanArtifacts(proj)
		}},
		{Name: "test", Run: func(ctx context.Context) error {
			return opts.Runner.Execute(ctx, c.TestCommand, proj.Dir, opts.Stdout, opts.Stderr)
		}},
		{Name: "build", Run: func(ctx context.Context) error {
			return opts.Runner.Execute(ctx, c.BuildCommand, proj.Dir, opts.Stdout, opts.Stderr)
		}},
		{Name: "publish", Run: func(ctx context.Context) error {
			return publishArtifacts(ctx, proj, opts)
		}},
	}
}

// cleanArtifacts removes prior build output: the configured clean dirs plus
// every *.egg-info match in the project root. Missing directories are fine;
// cleaning twice leaves the same state as cleaning once.
func cleanArtifacts(proj *Project) error {
	targets := append([]string{}, proj.Config.CleanDirs...)
	if matches, err := filepath.Glob(filepath.Join(proj.Dir, "*.egg-info")); err == nil {
		for _, m := range matches {
			if rel, relErr := filepath.Rel(proj.Dir, m); relErr == nil {
				targets = append(targets, rel)
			}
		}
	}

	for _, t := range targets {
		path := t
		if !filepath.IsAbs(path) {
			path = filepath.Join(proj.Dir, path)
		}
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("removing %s: %w", path, err)
		}
		slog.Debug("removed build output", "path", path)
	}

	return nil
}

// publishArtifacts uploads everything the build left in the dist dir. An
// empty dist dir is an error: it means the build step produced nothing.
func publishArtifacts(ctx context.Context, proj *Project, opts Options) error {
	distDir := filepath.Join(proj.Dir, proj.Config.DistDir)
	artifacts, err := filepath.Glob(filepath.Join(distDir, "*"))
	if err != nil {
		return err
	}
	if len(artifacts) == 0 {
		return fmt.Errorf("no artifacts found in %s", distDir)
	}

	command := proj.Config.PublishCommand
	for _, a := range artifacts {
		rel, relErr := filepath.Rel(proj.Dir, a)
		if relErr != nil {
			rel = a
		}
		command += " " + shellquote.Join(rel)
	}

	return opts.Runner.Execute(ctx, command, proj.Dir, opts.Stdout, opts.Stderr)
}
