package presets

import (
	"context"

	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/plugins"
	"github.com/arthur-debert/flatlint/pkg/types"
)

// NgRx returns store and effects rules, plus signal store rules when
// Signals is set.
func NgRx(ctx context.Context, loader types.PluginLoader, opts options.NgRxOptions) ([]types.RuleFragment, error) {
	pluginNames, err := loadPlugins(ctx, loader, plugins.NgRx)
	if err != nil {
		return nil, err
	}

	files := orDefault(opts.Files, []string{GlobTS})
	rules := types.Rules{
		"ngrx/avoid-combining-selectors":                       ruleError(),
		"ngrx/avoid-dispatching-multiple-actions-sequentially": ruleError(),
		"ngrx/avoid-duplicate-actions-in-reducer":              ruleError(),
		"ngrx/avoid-mapping-selectors":                         ruleError(),
		"ngrx/no-cyclic-effects":                               ruleError(),
		"ngrx/no-effects-in-providers":                         ruleError(),
		"ngrx/no-multiple-global-stores":                       ruleError(),
		"ngrx/no-reducer-in-key-names":                         ruleError(),
		"ngrx/no-store-subscription":                           ruleError(),
		"ngrx/no-typed-global-store":                           ruleError(),
		"ngrx/on-function-explicit-return-type":                ruleError(),
		"ngrx/prefer-action-creator":                           ruleError(),
		"ngrx/prefer-effect-callback-in-block-statement":       ruleError(),
		"ngrx/prefer-inline-action-props":                      ruleError(),
		"ngrx/prefix-selectors-with-select":                    ruleError(),
		"ngrx/select-style":                                    ruleError(),
		"ngrx/use-consistent-global-store-name":                ruleError(),
	}

	fragments := []types.RuleFragment{{
		Name:    Name("ngrx", "rules"),
		Files:   files,
		Plugins: pluginNames,
		Rules:   withOverrides(rules, opts.Overrides),
	}}

	if opts.Signals {
		fragments = append(fragments, types.RuleFragment{
			Name:  Name("ngrx", "signals"),
			Files: files,
			Rules: types.Rules{
				"ngrx/prefer-protected-state":                       ruleError(),
				"ngrx/signal-state-no-arrays-at-root-level":         ruleError(),
				"ngrx/signal-store-feature-should-use-generic-type": ruleError(),
				"ngrx/with-state-no-arrays-at-root-level":           ruleError(),
			},
		})
	}

	return fragments, nil
}
