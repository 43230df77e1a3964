// Package paths provides path handling for flatlint.
//
// It handles:
//
//   - Workspace root discovery (an upward directory walk looking for the
//     monorepo tool's marker files)
//   - The user-level configuration directory (XDG compliant)
//   - Home directory expansion
//
// # Environment Variables
//
//   - NX_WORKSPACE_ROOT_PATH: explicit workspace root, skips discovery
//   - FLATLINT_CONFIG_DIR: override for $XDG_CONFIG_HOME/flatlint
//
// # Usage
//
//	loc := paths.NewLocator(afero.NewOsFs())
//	root := loc.Find("/home/user/repo/apps/web")  // /home/user/repo
package paths
