// Package pypub provides a library for releasing Python packages.
//
// It provides functionalities for:
//   - Reading the authoritative package version from pyproject.toml.
//   - Parsing and validating "major.minor.patch" version strings.
//   - Bumping versions using standard keywords (major, minor, patch) or
//     setting an explicit version.
//   - Rewriting the version declarations in pyproject.toml and the package's
//     __version__ attribute as a single transaction.
//   - Running the release pipeline: clean build artifacts, run the test
//     suite, build distributions, and upload them to a package index.
//
// This library is designed to be used both through the provided CLI and as a
// programmatic API to integrate releases into other Go programs.
//
// Usage Example:
//
//	import (
//	    "context"
//	    "log"
//
//	    pypub "github.com/pypub-dev/pypub/pkg"
//	)
//
//	func main() {
//	    meta, err := pypub.Run(context.Background(), "patch", pypub.Options{})
//	    if err != nil {
//	        log.Fatalf("release failed: %v", err)
//	    }
//	    log.Printf("released %s %s", meta.Package, meta.NewVersion)
//	}
package pypub
