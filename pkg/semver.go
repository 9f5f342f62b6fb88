package pypub

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Recognized bump kinds.
const (
	BumpMajor = "major"
	BumpMinor = "minor"
	BumpPatch = "patch"

	// BumpExplicit is the bump type reported when the caller supplies a
	// version literal instead of a bump keyword.
	BumpExplicit = "explicit"
)

// Validation errors for version parsing and resolution.
var (
	ErrEmptyVersion   = errors.New("version string is empty")
	ErrInvalidVersion = errors.New("version must be of the form major.minor.patch")
	ErrUnknownBump    = errors.New("unknown bump kind")
	ErrSameVersion    = errors.New("new version is the same as the current version")
)

// Version is a three-component semantic version. All components are
// non-negative integers; the serialized form is "major.minor.patch" with no
// "v" prefix, matching the convention of Python package metadata.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String returns the serialized "major.minor.patch" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// ParseVersion parses a "major.minor.patch" string into a Version.
// Exactly three dot-separated decimal components are accepted; prerelease
// suffixes, build metadata, and "v" prefixes are rejected.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	var nums [3]int
	for i, part := range parts {
		if !isDigits(part) {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// MustParseVersion parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests; for user input, use
// ParseVersion and handle errors explicitly.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Bump returns the next version for the given bump kind: the named component
// is incremented and all lower-order components are zeroed.
func (v Version) Bump(kind string) (Version, error) {
	switch kind {
	case BumpMajor:
		return Version{Major: v.Major + 1}, nil
	case BumpMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}, nil
	case BumpPatch:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	}
	return Version{}, fmt.Errorf("%w: %q", ErrUnknownBump, kind)
}

// IsBumpKind reports whether arg names one of the recognized bump kinds.
func IsBumpKind(arg string) bool {
	return arg == BumpMajor || arg == BumpMinor || arg == BumpPatch
}

// ResolveVersion computes the next version from a positional argument, which
// is either a bump keyword (major, minor, patch) or an explicit version
// literal like "1.2.3". It returns the resolved version and the bump type.
//
// An explicit version equal to the current version is rejected as a no-op.
// An explicit version lower than the current version is accepted but logged
// as a warning.
func ResolveVersion(current Version, arg string) (Version, string, error) {
	if IsBumpKind(arg) {
		next, err := current.Bump(arg)
		if err != nil {
			return Version{}, "", err
		}
		return next, arg, nil
	}

	next, err := ParseVersion(arg)
	if err != nil {
		return Version{}, "", err
	}
	if next == current {
		return Version{}, "", fmt.Errorf("%w (%s)", ErrSameVersion, current)
	}
	if semver.Compare("v"+next.String(), "v"+current.String()) < 0 {
		slog.Warn("explicit version is lower than the current version",
			"current", current.String(), "new", next.String())
	}
	return next, BumpExplicit, nil
}
