package presets

import (
	"context"

	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/plugins"
	"github.com/arthur-debert/flatlint/pkg/types"
)

// JSDoc checks documentation comments. Layout rules are only added when
// stylistic checks are on.
func JSDoc(ctx context.Context, loader types.PluginLoader, opts options.JSDocOptions, stylistic bool) ([]types.RuleFragment, error) {
	pluginNames, err := loadPlugins(ctx, loader, plugins.JSDoc)
	if err != nil {
		return nil, err
	}

	rules := types.Rules{
		"jsdoc/check-access":                 ruleWarn(),
		"jsdoc/check-param-names":            ruleWarn(),
		"jsdoc/check-property-names":         ruleWarn(),
		"jsdoc/check-types":                  ruleWarn(),
		"jsdoc/empty-tags":                   ruleWarn(),
		"jsdoc/implements-on-classes":        ruleWarn(),
		"jsdoc/no-defaults":                  ruleWarn(),
		"jsdoc/no-multi-asterisks":           ruleWarn(),
		"jsdoc/require-param-name":           ruleWarn(),
		"jsdoc/require-property":             ruleWarn(),
		"jsdoc/require-property-description": ruleWarn(),
		"jsdoc/require-property-name":        ruleWarn(),
		"jsdoc/require-returns-check":        ruleWarn(),
		"jsdoc/require-returns-description":  ruleWarn(),
		"jsdoc/require-yields-check":         ruleWarn(),
	}
	if stylistic {
		rules["jsdoc/check-alignment"] = ruleWarn()
		rules["jsdoc/multiline-blocks"] = ruleWarn()
	}

	return []types.RuleFragment{{
		Name:    Name("jsdoc", "rules"),
		Plugins: pluginNames,
		Rules:   withOverrides(rules, opts.Overrides),
	}}, nil
}
