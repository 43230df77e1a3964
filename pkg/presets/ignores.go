package presets

import "github.com/arthur-debert/flatlint/pkg/types"

// Ignores returns the global ignore fragment: the standard exclusions plus
// the caller's extra globs.
func Ignores(extra []string) []types.RuleFragment {
	ignores := make([]string, 0, len(GlobExclude)+len(extra))
	ignores = append(ignores, GlobExclude...)
	ignores = append(ignores, extra...)
	return []types.RuleFragment{{
		Name:    Name("ignores"),
		Ignores: ignores,
	}}
}
