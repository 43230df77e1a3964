package presets

import (
	"context"

	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/plugins"
	"github.com/arthur-debert/flatlint/pkg/types"
)

// Unicorn adds a curated subset of unicorn rules, or the plugin's full
// recommended set when AllRecommended is set.
func Unicorn(ctx context.Context, loader types.PluginLoader, opts options.UnicornOptions) ([]types.RuleFragment, error) {
	pluginNames, err := loadPlugins(ctx, loader, plugins.Unicorn)
	if err != nil {
		return nil, err
	}

	rules := types.Rules{
		"unicorn/consistent-empty-array-spread":  ruleError(),
		"unicorn/error-message":                  ruleError(),
		"unicorn/escape-case":                    ruleError(),
		"unicorn/new-for-builtins":               ruleError(),
		"unicorn/no-instanceof-builtins":         ruleError(),
		"unicorn/no-new-array":                   ruleError(),
		"unicorn/no-new-buffer":                  ruleError(),
		"unicorn/number-literal-case":            ruleError(),
		"unicorn/prefer-dom-node-text-content":   ruleError(),
		"unicorn/prefer-includes":                ruleError(),
		"unicorn/prefer-node-protocol":           ruleError(),
		"unicorn/prefer-number-properties":       ruleError(),
		"unicorn/prefer-string-starts-ends-with": ruleError(),
		"unicorn/prefer-type-error":              ruleError(),
		"unicorn/throw-new-error":                ruleError(),
	}

	var settings map[string]any
	if opts.AllRecommended {
		settings = map[string]any{"unicorn": map[string]any{"extends": "recommended"}}
	}

	return []types.RuleFragment{{
		Name:     Name("unicorn", "rules"),
		Plugins:  pluginNames,
		Settings: settings,
		Rules:    withOverrides(rules, opts.Overrides),
	}}, nil
}
