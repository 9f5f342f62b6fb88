// Package main implements a CLI tool to release a Python package: bump the
// version in pyproject.toml and the package's __version__ attribute, run the
// test suite, build distributions, and upload them to a package index.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	pypub "github.com/pypub-dev/pypub/pkg"
	"github.com/pypub-dev/pypub/pkg/logging"
)

const longHelp = `Releases a Python package.

pypub bumps the version in pyproject.toml and the package's __version__
attribute, then cleans prior build output, runs the test suite, builds
distribution artifacts, and uploads them to the package index. Any failing
step aborts the release; committing and pushing the version bump is left to
the operator.

The version argument is either a bump keyword (major, minor, patch) applied
to the current [project].version, or an explicit version like 1.2.3.

Commands and paths can be overridden in the [tool.pypub] table of
pyproject.toml:

  [tool.pypub]
  version-file = "src/mypkg/__init__.py"
  test-command = "python -m pytest tests"
  build-command = "python -m build"
  publish-command = "python -m twine upload"
  clean-dirs = ["build", "dist"]
  dist-dir = "dist"

Examples:
  pypub patch
  pypub 1.2.3
  pypub --dry minor
  pypub --pyproject ../pkg/pyproject.toml major
`

func newRootCmd() *cobra.Command {
	var (
		pyprojectPath string
		versionFile   string
		dryRun        bool
		logLevel      string
	)

	cmd := &cobra.Command{
		Use:           "pypub [flags] <major|minor|patch|version>",
		Short:         "Release a Python package",
		Long:          longHelp,
		Args:          cobra.ExactArgs(1),
		Version:       Version,
		SilenceErrors: true,
		PersistentPreRun: func(cc *cobra.Command, args []string) {
			logging.SetDefault(logLevel)
		},
		RunE: func(cc *cobra.Command, args []string) error {
			// Arguments are valid past this point; later failures are
			// runtime errors and should not print usage.
			cc.SilenceUsage = true

			opts := pypub.Options{
				Pyproject:   pyprojectPath,
				VersionFile: versionFile,
			}

			var (
				meta pypub.ReleaseMeta
				err  error
			)
			if dryRun {
				meta, err = pypub.DryRun(cc.Context(), args[0], opts)
			} else {
				meta, err = pypub.Run(cc.Context(), args[0], opts)
			}
			if err != nil {
				return err
			}

			printSummary(cc.OutOrStdout(), meta, dryRun)

			return nil
		},
	}

	cmd.Flags().StringVar(&pyprojectPath, "pyproject", "pyproject.toml", "Path to the package manifest")
	cmd.Flags().StringVar(&versionFile, "version-file", "", "Path to the module file containing __version__ (overrides [tool.pypub])")
	cmd.Flags().BoolVar(&dryRun, "dry", false, "Resolve and report without modifying files or running any tool")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Set the log level (debug, info, warn, error)")

	return cmd
}

func printSummary(w io.Writer, meta pypub.ReleaseMeta, dry bool) {
	if dry {
		fmt.Fprintln(w, "Dry run complete — no files were modified.")
	} else {
		fmt.Fprintf(w, "Published %s %s\n", meta.Package, meta.NewVersion)
	}
	fmt.Fprintf(w, "Old Version: %s\n", meta.OldVersion)
	fmt.Fprintf(w, "New Version: %s\n", meta.NewVersion)
	fmt.Fprintf(w, "Bump Type:   %s\n", meta.BumpType)

	if len(meta.UpdatedFiles) > 0 {
		if dry {
			fmt.Fprintln(w, "Files that would be updated:")
		} else {
			fmt.Fprintln(w, "Files updated:")
		}
		for _, f := range meta.UpdatedFiles {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}

	if !dry {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Don't forget to commit and push the version bump:")
		fmt.Fprintf(w, "  git commit -am %q && git push\n", meta.NewVersion)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
