package types

import "context"

// Plugin describes a lint plugin a fragment depends on.
type Plugin struct {
	// Name is the namespace rules are prefixed with (e.g. "ts" in "ts/no-explicit-any")
	Name string
	// Package is the npm package that provides the plugin
	Package string
	// Version is the installed version, empty when the package was not found
	Version string
	// Installed reports whether the package was found in the project
	Installed bool
}

// PluginLoader resolves optional plugins on demand, so a plugin is only
// looked up when the feature using it is enabled.
type PluginLoader interface {
	LoadPlugin(ctx context.Context, name string) (Plugin, error)
}

// Capabilities answers whether optional packages exist in the current
// project and loads their plugins.
type Capabilities interface {
	PluginLoader
	HasPackage(name string) bool
}

// RuntimeContext carries the ambient facts about the invoking process. It is
// built once at the entry point and passed down explicitly.
type RuntimeContext struct {
	// Cwd is the directory composition is rooted at
	Cwd string
	// InEditor is true when running inside an editor's language server
	InEditor bool
	// InCI is true when a CI environment is detected
	InCI bool
	// InGitHooks is true when running from git hooks or lint-staged
	InGitHooks bool
}
