package presets

import (
	"context"

	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/plugins"
	"github.com/arthur-debert/flatlint/pkg/types"
)

// Vitest returns rules for test files. Focused tests are an error outside
// editors and a warning inside them.
func Vitest(ctx context.Context, loader types.PluginLoader, opts options.VitestOptions, inEditor bool) ([]types.RuleFragment, error) {
	pluginNames, err := loadPlugins(ctx, loader, plugins.Test)
	if err != nil {
		return nil, err
	}

	rules := types.Rules{
		"test/consistent-test-it":     ruleError(map[string]any{"fn": "it", "withinDescribe": "it"}),
		"test/no-identical-title":     ruleError(),
		"test/no-import-node-test":    ruleError(),
		"test/no-only-tests":          types.Rule(editorSeverity(inEditor)),
		"test/prefer-hooks-in-order":  ruleError(),
		"test/prefer-lowercase-title": ruleError(),

		"no-unused-expressions":            ruleOff(),
		"node/prefer-global/process":       ruleOff(),
		"ts/explicit-function-return-type": ruleOff(),
	}

	var settings map[string]any
	if opts.Typecheck {
		settings = map[string]any{"vitest": map[string]any{"typecheck": true}}
	}

	return []types.RuleFragment{
		{
			Name:     Name("vitest", "setup"),
			Plugins:  pluginNames,
			Settings: settings,
		},
		{
			Name:  Name("vitest", "rules"),
			Files: orDefault(opts.Files, GlobTests),
			Rules: withOverrides(rules, opts.Overrides),
		},
	}, nil
}
