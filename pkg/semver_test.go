package pypub

import (
	"errors"
	"testing"
)

// TestParseVersion validates acceptance and rejection of version strings.
func TestParseVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    Version
		wantErr error
	}{
		{"1.2.3", Version{1, 2, 3}, nil},
		{"0.0.0", Version{0, 0, 0}, nil},
		{"10.20.30", Version{10, 20, 30}, nil},
		{"01.2.3", Version{1, 2, 3}, nil}, // leading zeros are digits too
		{"", Version{}, ErrEmptyVersion},
		{"1", Version{}, ErrInvalidVersion},
		{"1.2", Version{}, ErrInvalidVersion},
		{"1.2.3.4", Version{}, ErrInvalidVersion},
		{"v1.2.3", Version{}, ErrInvalidVersion},
		{"v1.0", Version{}, ErrInvalidVersion},
		{"1.2.x", Version{}, ErrInvalidVersion},
		{"1.2.3-rc1", Version{}, ErrInvalidVersion},
		{"1.-2.3", Version{}, ErrInvalidVersion},
		{"1..3", Version{}, ErrInvalidVersion},
	}
	for _, tc := range tests {
		got, err := ParseVersion(tc.input)
		if tc.wantErr != nil {
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("ParseVersion(%q) error = %v, expected %v", tc.input, err, tc.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseVersion(%q) returned error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseVersion(%q) = %v, expected %v", tc.input, got, tc.want)
		}
	}
}

// TestVersionString tests serialization back to "major.minor.patch".
func TestVersionString(t *testing.T) {
	tests := []struct {
		version  Version
		expected string
	}{
		{Version{1, 2, 3}, "1.2.3"},
		{Version{0, 0, 0}, "0.0.0"},
		{Version{2, 0, 0}, "2.0.0"},
	}
	for _, tc := range tests {
		if got := tc.version.String(); got != tc.expected {
			t.Errorf("%#v.String() = %q, expected %q", tc.version, got, tc.expected)
		}
	}
}

// TestBump tests the three bump kinds and rejection of unknown kinds.
func TestBump(t *testing.T) {
	tests := []struct {
		version  string
		kind     string
		expected string
	}{
		{"1.2.3", "major", "2.0.0"},
		{"1.2.3", "minor", "1.3.0"},
		{"1.2.3", "patch", "1.2.4"},
		{"0.9.9", "major", "1.0.0"},
		{"0.9.9", "minor", "0.10.0"},
		{"0.0.0", "patch", "0.0.1"},
	}
	for _, tc := range tests {
		res, err := MustParseVersion(tc.version).Bump(tc.kind)
		if err != nil {
			t.Errorf("Bump(%q, %q) returned error: %v", tc.version, tc.kind, err)
			continue
		}
		if res.String() != tc.expected {
			t.Errorf("Bump(%q, %q) = %q, expected %q", tc.version, tc.kind, res, tc.expected)
		}
	}

	if _, err := MustParseVersion("1.2.3").Bump("premajor"); !errors.Is(err, ErrUnknownBump) {
		t.Errorf("Bump with unknown kind = %v, expected ErrUnknownBump", err)
	}
}

// TestResolveVersion tests dispatch between bump keywords and explicit
// version literals.
func TestResolveVersion(t *testing.T) {
	tests := []struct {
		current  string
		arg      string
		expected string
		bumpType string
	}{
		{"1.2.3", "patch", "1.2.4", "patch"},
		{"1.2.3", "minor", "1.3.0", "minor"},
		{"1.2.3", "major", "2.0.0", "major"},
		{"0.8.5", "0.9.0", "0.9.0", "explicit"},
		{"1.0.0", "0.5.0", "0.5.0", "explicit"}, // downgrade accepted, warned
	}
	for _, tc := range tests {
		next, bumpType, err := ResolveVersion(MustParseVersion(tc.current), tc.arg)
		if err != nil {
			t.Errorf("ResolveVersion(%q, %q) returned error: %v", tc.current, tc.arg, err)
			continue
		}
		if next.String() != tc.expected || bumpType != tc.bumpType {
			t.Errorf("ResolveVersion(%q, %q) = (%q, %q), expected (%q, %q)",
				tc.current, tc.arg, next, bumpType, tc.expected, tc.bumpType)
		}
	}

	if _, _, err := ResolveVersion(MustParseVersion("1.2.3"), "v1.0"); !errors.Is(err, ErrInvalidVersion) {
		t.Errorf("ResolveVersion with malformed literal = %v, expected ErrInvalidVersion", err)
	}
	if _, _, err := ResolveVersion(MustParseVersion("1.2.3"), "1.2.3"); !errors.Is(err, ErrSameVersion) {
		t.Errorf("ResolveVersion with current version = %v, expected ErrSameVersion", err)
	}
}

// TestMustParseVersionPanics verifies the panic contract for invalid input.
func TestMustParseVersionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseVersion with invalid input did not panic")
		}
	}()
	MustParseVersion("not-a-version")
}
