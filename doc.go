// Package main implements the pypub CLI tool.
//
// The pypub tool automates releasing a Python package. It reads the current
// version from pyproject.toml ("[project].version"), bumps it according to a
// given directive (e.g. "patch", "minor", "major", or an explicit version
// string), rewrites the version in both pyproject.toml and the package's
// __version__ attribute, and then runs the release pipeline: clean prior
// build output, run the test suite, build distribution artifacts, and upload
// them to the package index. Any failing step aborts the release with a
// non-zero exit code and nothing downstream runs.
//
// Command Usage:
//
//	pypub [flags] <major|minor|patch|version>
//
// Flags:
//
//	--pyproject:    Specifies the path to the package manifest.
//	                (Defaults to "pyproject.toml")
//	--version-file: Specifies the module file containing the __version__
//	                attribute, overriding the [tool.pypub] setting. By default
//	                the path is derived from the package name, preferring the
//	                src layout (src/<package>/__init__.py).
//	--dry:          Resolves the version bump and reports the files and steps
//	                a real run would touch, without modifying anything.
//	--log-level:    Sets the log level (debug, info, warn, error).
//	--version:      Displays the version of the pypub CLI tool and exits.
//
// Examples:
//
//	# Bump the patch version (e.g. 1.2.3 → 1.2.4) and release
//	pypub patch
//
//	# Bump the minor version (e.g. 1.2.3 → 1.3.0)
//	pypub minor
//
//	# Bump the major version (e.g. 1.2.3 → 2.0.0)
//	pypub major
//
//	# Set an explicit version directly
//	pypub 2.1.0
//
//	# See what a release would do without running it
//	pypub --dry patch
//
// The external tools invoked by the pipeline default to pytest, build, and
// twine, and can be overridden in the [tool.pypub] table of pyproject.toml.
// pypub never commits or pushes; on success it prints the git commands for
// the operator to run.
//
// For more detailed API documentation, please see the documentation in the
// "pkg" package.
package main
