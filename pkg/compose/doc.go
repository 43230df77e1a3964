// Package compose assembles rule fragments into a flat lint configuration.
//
// A Composer resolves which features are on (explicit option, else a
// package probe, else a static default), checks the one dependency between
// features (ngrx requires angular), runs the enabled builders from the
// presets package and concatenates their fragments in a fixed order.
//
// Three variants exist:
//
//   - Compose: a standalone configuration.
//   - Workspace: a configuration for a monorepo root, tagged with its
//     options so projects and overrides can build on it.
//   - Project: fragments for one project inside a tagged workspace.
//
// Override re-runs the standard variant with a patch deep-merged over the
// tagged options.
package compose
