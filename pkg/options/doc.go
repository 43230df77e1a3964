// Package options holds the caller-facing composition options.
//
// Options arrive as a raw Input map (from Go code, a config file, env vars or
// CLI flags), one key per feature. Each feature value is either a boolean or
// a feature-specific object:
//
//	options.Input{
//	    "typescript": true,
//	    "stylistic":  map[string]any{"indent": 4},
//	    "ngrx":       false,
//	}
//
// Decode turns the Input into typed Options where every feature is a
// Toggle. Merge layers one Input over another the way overrides expect:
// mappings are merged key by key, everything else (arrays included) is
// replaced, and an explicit nil clears the original value.
package options
