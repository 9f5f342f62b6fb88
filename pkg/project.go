package pypub

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Defaults for the [tool.pypub] table.
const (
	DefaultTestCommand    = "python -m pytest tests"
	DefaultBuildCommand   = "python -m build"
	DefaultPublishCommand = "python -m twine upload"
	DefaultDistDir        = "dist"
)

// ErrVersionNotFound indicates a file that should carry a version
// declaration has none.
var ErrVersionNotFound = errors.New("version declaration not found")

// Config holds the optional [tool.pypub] settings from pyproject.toml.
// Relative paths resolve against the directory containing the manifest.
type Config struct {
	// VersionFile is the module file carrying the __version__ attribute.
	// If empty, it is derived from the package name (src layout first).
	VersionFile string `toml:"version-file"`

	// Commands invoked by the release pipeline. Each is a single command
	// line split with shell quoting rules; no shell is involved.
	TestCommand    string `toml:"test-command"`
	BuildCommand   string `toml:"build-command"`
	PublishCommand string `toml:"publish-command"`

	// CleanDirs are build-output directories removed before testing.
	// Every *.egg-info match in the project root is removed as well.
	CleanDirs []string `toml:"clean-dirs"`

	// DistDir is where the build tool leaves distributable artifacts.
	DistDir string `toml:"dist-dir"`
}

// Project is the subset of pyproject.toml that pypub reads. The manifest's
// [project].version field is the single authoritative version source; the
// module __version__ attribute is a derived copy that is only ever written.
type Project struct {
	Name    string
	Version Version
	Config  Config

	// Dir is the directory containing the manifest.
	Dir          string
	ManifestPath string
}

type pyprojectFile struct {
	Project struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"project"`
	Tool struct {
		Pypub Config `toml:"pypub"`
	} `toml:"tool"`
}

// LoadProject reads the manifest at path, validates the current version, and
// fills in configuration defaults.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var raw pyprojectFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if raw.Project.Version == "" {
		return nil, fmt.Errorf("%w in %s", ErrVersionNotFound, path)
	}
	current, err := ParseVersion(raw.Project.Version)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	p := &Project{
		Name:         raw.Project.Name,
		Version:      current,
		Config:       raw.Tool.Pypub,
		Dir:          filepath.Dir(path),
		ManifestPath: path,
	}
	p.applyDefaults()

	return p, nil
}

func (p *Project) applyDefaults() {
	c := &p.Config
	if c.TestCommand == "" {
		c.TestCommand = DefaultTestCommand
	}
	if c.BuildCommand == "" {
		c.BuildCommand = DefaultBuildCommand
	}
	if c.PublishCommand == "" {
		c.PublishCommand = DefaultPublishCommand
	}
	if c.DistDir == "" {
		c.DistDir = DefaultDistDir
	}
	if len(c.CleanDirs) == 0 {
		c.CleanDirs = []string{"build", "dist"}
	}
	if c.VersionFile == "" {
		c.VersionFile = p.findVersionFile()
	}
}

// findVersionFile guesses the module file carrying __version__ from the
// package name, preferring the src layout.
func (p *Project) findVersionFile() string {
	pkg := strings.ReplaceAll(p.Name, "-", "_")
	candidates := []string{
		filepath.Join("src", pkg, "__init__.py"),
		filepath.Join(pkg, "__init__.py"),
	}
	for _, c := range candidates {
		if _, err := os.Stat(filepath.Join(p.Dir, c)); err == nil {
			return c
		}
	}
	return candidates[0]
}

// VersionFilePath resolves the configured version file against the project
// directory.
func (p *Project) VersionFilePath() string {
	if filepath.IsAbs(p.Config.VersionFile) {
		return p.Config.VersionFile
	}
	return filepath.Join(p.Dir, p.Config.VersionFile)
}
