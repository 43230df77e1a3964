// Package environment detects the runtime context a composition runs in:
// editors, CI, and git hooks.
package environment

import (
	"strings"

	"github.com/arthur-debert/flatlint/pkg/types"
)

// editorVars are set by editors that host a lint language server.
var editorVars = []string{"VSCODE_PID", "VSCODE_CWD", "JETBRAINS_IDE", "VIM", "NVIM"}

// Detect builds a RuntimeContext from an environment lookup. It is called
// once at the entry point; nothing below it reads the process environment.
func Detect(getenv func(string) string, cwd string) types.RuntimeContext {
	rc := types.RuntimeContext{
		Cwd:        cwd,
		InCI:       getenv("CI") != "",
		InGitHooks: inGitHooksOrLintStaged(getenv),
	}

	if !rc.InCI && !rc.InGitHooks {
		for _, name := range editorVars {
			if getenv(name) != "" {
				rc.InEditor = true
				break
			}
		}
	}
	return rc
}

func inGitHooksOrLintStaged(getenv func(string) string) bool {
	return getenv("GIT_PARAMS") != "" ||
		getenv("VSCODE_GIT_COMMAND") != "" ||
		strings.HasPrefix(getenv("npm_lifecycle_script"), "lint-staged")
}
