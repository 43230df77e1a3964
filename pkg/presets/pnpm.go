package presets

import (
	"context"

	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/plugins"
	"github.com/arthur-debert/flatlint/pkg/types"
)

// PNPM checks package.json and pnpm-workspace.yaml against workspace
// settings. Catalog enforcement is opt-in.
func PNPM(ctx context.Context, loader types.PluginLoader, opts options.PNPMOptions) ([]types.RuleFragment, error) {
	pluginNames, err := loadPlugins(ctx, loader, plugins.PNPM)
	if err != nil {
		return nil, err
	}

	packageRules := types.Rules{
		"pnpm/json-prefer-workspace-settings": ruleError(),
		"pnpm/json-valid-catalog":             ruleError(),
	}
	if opts.Catalogs {
		packageRules["pnpm/json-enforce-catalog"] = ruleError()
	}

	return []types.RuleFragment{
		{
			Name:    Name("pnpm", "package-json"),
			Files:   []string{"package.json", "**/package.json"},
			Plugins: pluginNames,
			LanguageOptions: &types.LanguageOptions{
				Parser: parserFor(plugins.JSONC),
			},
			Rules: withOverrides(packageRules, opts.Overrides),
		},
		{
			Name:    Name("pnpm", "pnpm-workspace-yaml"),
			Files:   []string{"pnpm-workspace.yaml"},
			Plugins: pluginNames,
			LanguageOptions: &types.LanguageOptions{
				Parser: parserFor(plugins.YAML),
			},
			Rules: types.Rules{
				"pnpm/yaml-no-duplicate-catalog-item": ruleError(),
				"pnpm/yaml-no-unused-catalog-item":    ruleError(),
			},
		},
	}, nil
}
