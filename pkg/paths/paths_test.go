package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/flatlint/pkg/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

// permissionFs fails every Stat call
type permissionFs struct{ afero.Fs }

func (permissionFs) Stat(name string) (os.FileInfo, error) {
	return nil, &os.PathError{Op: "stat", Path: name, Err: os.ErrPermission}
}

func TestLocatorFind(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		start    string
		expected string
	}{
		{
			name:     "marker_in_start_dir",
			files:    []string{"/repo/nx.json"},
			start:    "/repo",
			expected: "/repo",
		},
		{
			name:     "marker_in_ancestor",
			files:    []string{"/repo/nx.json", "/repo/apps/web/package.json"},
			start:    "/repo/apps/web",
			expected: "/repo",
		},
		{
			name:     "nx_wrapper_script_marks_root",
			files:    []string{"/repo/nx"},
			start:    "/repo/libs/ui",
			expected: "/repo",
		},
		{
			name:     "nested_marker_promotes_candidate",
			files:    []string{"/repo/node_modules/nx/package.json"},
			start:    "/repo/apps/web",
			expected: "/repo",
		},
		{
			name: "closest_marker_wins_over_outer_nested_marker",
			files: []string{
				"/outer/node_modules/nx/package.json",
				"/outer/inner/nx.json",
			},
			start:    "/outer/inner/apps/a",
			expected: "/outer/inner",
		},
		{
			name: "outermost_nested_marker_wins",
			files: []string{
				"/outer/node_modules/nx/package.json",
				"/outer/inner/node_modules/nx/package.json",
			},
			start:    "/outer/inner/apps/a",
			expected: "/outer",
		},
		{
			name:     "nothing_found_returns_start",
			files:    []string{"/repo/package.json"},
			start:    "/repo/apps/web",
			expected: "/repo/apps/web",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			for _, f := range tt.files {
				testutil.WriteFile(t, fs, f, "{}")
			}

			loc := NewLocator(fs).WithEnv(noEnv)
			assert.Equal(t, tt.expected, loc.Find(tt.start))
		})
	}
}

func TestLocatorEnvOverride(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteFile(t, fs, "/repo/nx.json", "{}")

	loc := NewLocator(fs).WithEnv(func(key string) (string, bool) {
		if key == EnvWorkspaceRoot {
			return "/explicit/root", true
		}
		return "", false
	})

	assert.Equal(t, "/explicit/root", loc.Find("/repo"))
}

func TestLocatorFilesystemRoot(t *testing.T) {
	loc := NewLocator(afero.NewMemMapFs()).WithEnv(noEnv)

	assert.Equal(t, "/fallback", loc.FindFrom("/", "/fallback"))
	assert.Equal(t, "/", loc.Find("/"))
}

func TestLocatorSwallowsStatErrors(t *testing.T) {
	loc := NewLocator(permissionFs{afero.NewMemMapFs()}).WithEnv(noEnv)

	assert.NotPanics(t, func() {
		assert.Equal(t, "/repo/apps", loc.Find("/repo/apps"))
	})
}

func TestUserConfigDir(t *testing.T) {
	t.Setenv(EnvConfigDir, "/custom/config")
	assert.Equal(t, "/custom/config", UserConfigDir())
	assert.Equal(t, filepath.Join("/custom/config", UserConfigFile), UserConfigPath())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "", ExpandHome(""))
	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "cfg"), ExpandHome("~/cfg"))
	assert.Equal(t, "~other/cfg", ExpandHome("~other/cfg"))
	assert.Equal(t, "/abs", ExpandHome("/abs"))
}

func TestRel(t *testing.T) {
	assert.Equal(t, "apps/web", Rel("/repo", "/repo/apps/web"))
	assert.Equal(t, ".", Rel("/repo", "/repo"))
}
