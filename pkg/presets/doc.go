// Package presets contains the rule-fragment builders.
//
// Every builder is a pure function of its options: calling it twice with the
// same options yields the same fragments. Builders for optional features
// resolve their plugins through a types.PluginLoader so a plugin is only
// looked up when its feature is enabled. File globs supplied by the caller
// are passed through without validation.
//
// Fragment names are "flatlint/<concern>/<part>", e.g.
// "flatlint/typescript/rules".
package presets
