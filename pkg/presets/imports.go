package presets

import (
	"context"

	"github.com/arthur-debert/flatlint/pkg/plugins"
	"github.com/arthur-debert/flatlint/pkg/types"
)

// Imports checks import statements.
func Imports(ctx context.Context, loader types.PluginLoader, stylistic bool) ([]types.RuleFragment, error) {
	pluginNames, err := loadPlugins(ctx, loader, plugins.Import)
	if err != nil {
		return nil, err
	}

	rules := types.Rules{
		"import/consistent-type-specifier-style": ruleError("prefer-top-level"),
		"import/first":                           ruleError(),
		"import/no-duplicates":                   ruleError(),
		"import/no-mutable-exports":              ruleError(),
		"import/no-named-default":                ruleError(),
		"import/no-self-import":                  ruleError(),
		"import/no-webpack-loader-syntax":        ruleError(),
	}
	if stylistic {
		rules["import/newline-after-import"] = ruleError(map[string]any{"count": 1})
	}

	return []types.RuleFragment{{
		Name:    Name("imports", "rules"),
		Plugins: pluginNames,
		Rules:   rules,
	}}, nil
}
