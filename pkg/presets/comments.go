package presets

import (
	"context"

	"github.com/arthur-debert/flatlint/pkg/plugins"
	"github.com/arthur-debert/flatlint/pkg/types"
)

// Comments checks eslint directive comments.
func Comments(ctx context.Context, loader types.PluginLoader) ([]types.RuleFragment, error) {
	pluginNames, err := loadPlugins(ctx, loader, plugins.Comments)
	if err != nil {
		return nil, err
	}
	return []types.RuleFragment{{
		Name:    Name("eslint-comments", "rules"),
		Plugins: pluginNames,
		Rules: types.Rules{
			"eslint-comments/no-aggregating-enable": ruleError(),
			"eslint-comments/no-duplicate-disable":  ruleError(),
			"eslint-comments/no-unlimited-disable":  ruleError(),
			"eslint-comments/no-unused-enable":      ruleError(),
		},
	}}, nil
}
