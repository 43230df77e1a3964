package presets

import (
	"context"

	"github.com/arthur-debert/flatlint/pkg/plugins"
	"github.com/arthur-debert/flatlint/pkg/types"
)

// Perfectionist sorts imports, exports and named members.
func Perfectionist(ctx context.Context, loader types.PluginLoader) ([]types.RuleFragment, error) {
	pluginNames, err := loadPlugins(ctx, loader, plugins.Perfectionist)
	if err != nil {
		return nil, err
	}
	return []types.RuleFragment{{
		Name:    Name("perfectionist", "setup"),
		Plugins: pluginNames,
		Rules: types.Rules{
			"perfectionist/sort-exports": ruleError(map[string]any{"order": "asc", "type": "natural"}),
			"perfectionist/sort-imports": ruleError(map[string]any{
				"groups": []any{
					"type",
					[]any{"parent-type", "sibling-type", "index-type", "internal-type"},
					"builtin",
					"external",
					"internal",
					[]any{"parent", "sibling", "index"},
					"side-effect",
					"object",
					"unknown",
				},
				"newlinesBetween": "ignore",
				"order":           "asc",
				"type":            "natural",
			}),
			"perfectionist/sort-named-exports": ruleError(map[string]any{"order": "asc", "type": "natural"}),
			"perfectionist/sort-named-imports": ruleError(map[string]any{"order": "asc", "type": "natural"}),
		},
	}}, nil
}
