package testutil

import (
	"path/filepath"
	"testing"
)

// detectionVars are read by environment and workspace detection.
var detectionVars = []string{
	"NX_WORKSPACE_ROOT_PATH",
	"CI",
	"VSCODE_PID", "VSCODE_CWD", "JETBRAINS_IDE", "VIM", "NVIM",
	"GIT_PARAMS", "VSCODE_GIT_COMMAND", "npm_lifecycle_script",
}

// IsolateEnv points the user config and log directories into a temporary
// directory and clears the variables that change runtime detection. It
// returns the temporary directory.
func IsolateEnv(t *testing.T) string {
	t.Helper()

	tmp := t.TempDir()
	t.Setenv("FLATLINT_CONFIG_DIR", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	for _, name := range detectionVars {
		t.Setenv(name, "")
	}
	return tmp
}
