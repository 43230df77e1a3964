package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/flatlint/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Environment variable names
const (
	// EnvWorkspaceRoot names an explicit workspace root
	EnvWorkspaceRoot = "NX_WORKSPACE_ROOT_PATH"

	// EnvConfigDir overrides the XDG config directory for flatlint
	EnvConfigDir = "FLATLINT_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name for flatlint-specific files
	AppDirName = "flatlint"

	// UserConfigFile is the name of the user-level configuration file
	UserConfigFile = "config.toml"

	// NestedMarker is checked when no marker is found directly in a
	// directory: an installed workspace tool marks a candidate root.
	NestedMarker = "node_modules/nx/package.json"
)

// WorkspaceMarkers are the files whose presence identifies a workspace root.
var WorkspaceMarkers = []string{"nx.json", "nx", "nx.bat"}

// Locator finds the workspace root a directory belongs to.
type Locator struct {
	fs        afero.Fs
	lookupEnv func(string) (string, bool)
	markers   []string
	nested    string
	logger    zerolog.Logger
}

// NewLocator creates a Locator reading the given filesystem and the process
// environment.
func NewLocator(fs afero.Fs) *Locator {
	return &Locator{
		fs:        fs,
		lookupEnv: os.LookupEnv,
		markers:   WorkspaceMarkers,
		nested:    NestedMarker,
		logger:    logging.GetLogger("paths.locator"),
	}
}

// WithEnv replaces the environment lookup, mostly for tests.
func (l *Locator) WithEnv(lookup func(string) (string, bool)) *Locator {
	l.lookupEnv = lookup
	return l
}

// Find returns the workspace root for start. When nothing is found, start
// itself is returned.
func (l *Locator) Find(start string) string {
	dir := filepath.Clean(start)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return l.FindFrom(dir, dir)
}

// FindFrom walks upward from dir. candidate is returned when the filesystem
// root is reached without finding a marker. A directory that only contains
// the nested marker becomes the new candidate while the walk continues.
func (l *Locator) FindFrom(dir, candidate string) string {
	if root, ok := l.lookupEnv(EnvWorkspaceRoot); ok && root != "" {
		return root
	}

	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			l.logger.Debug().Str("candidate", candidate).Msg("Reached filesystem root")
			return candidate
		}

		for _, marker := range l.markers {
			if l.exists(filepath.Join(dir, marker)) {
				l.logger.Debug().Str("root", dir).Str("marker", marker).Msg("Found workspace root")
				return dir
			}
		}

		if l.exists(filepath.Join(dir, filepath.FromSlash(l.nested))) {
			candidate = dir
		}
		dir = parent
	}
}

// exists never fails: any stat error counts as absent
func (l *Locator) exists(path string) bool {
	_, err := l.fs.Stat(path)
	return err == nil
}

// UserConfigDir returns the directory for user-level configuration,
// respecting FLATLINT_CONFIG_DIR.
func UserConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// UserConfigPath returns the path of the user-level configuration file.
func UserConfigPath() string {
	return filepath.Join(UserConfigDir(), UserConfigFile)
}

// ExpandHome expands ~ to the home directory
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// Rel returns target relative to base using forward slashes, or target
// unchanged when no relative path exists.
func Rel(base, target string) string {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return filepath.ToSlash(target)
	}
	return filepath.ToSlash(rel)
}
