package presets

import (
	"context"

	"github.com/arthur-debert/flatlint/pkg/plugins"
	"github.com/arthur-debert/flatlint/pkg/types"
)

// Node covers Node.js runtime conventions.
func Node(ctx context.Context, loader types.PluginLoader) ([]types.RuleFragment, error) {
	pluginNames, err := loadPlugins(ctx, loader, plugins.Node)
	if err != nil {
		return nil, err
	}
	return []types.RuleFragment{{
		Name:    Name("node", "rules"),
		Plugins: pluginNames,
		Rules: types.Rules{
			"node/handle-callback-err":   ruleError("^(err|error)$"),
			"node/no-deprecated-api":     ruleError(),
			"node/no-exports-assign":     ruleError(),
			"node/no-new-require":        ruleError(),
			"node/no-path-concat":        ruleError(),
			"node/prefer-global/buffer":  ruleError("never"),
			"node/prefer-global/process": ruleError("never"),
			"node/process-exit-as-throw": ruleError(),
		},
	}}, nil
}
