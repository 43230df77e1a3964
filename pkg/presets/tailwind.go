package presets

import (
	"context"

	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/plugins"
	"github.com/arthur-debert/flatlint/pkg/types"
)

// Tailwind checks utility class usage in sources and templates.
func Tailwind(ctx context.Context, loader types.PluginLoader, opts options.TailwindOptions) ([]types.RuleFragment, error) {
	pluginNames, err := loadPlugins(ctx, loader, plugins.Tailwind)
	if err != nil {
		return nil, err
	}

	var settings map[string]any
	if opts.Config != "" {
		settings = map[string]any{"tailwindcss": map[string]any{"config": opts.Config}}
	}

	return []types.RuleFragment{{
		Name:     Name("tailwindcss", "rules"),
		Files:    orDefault(opts.Files, []string{GlobSrc, GlobHTML}),
		Plugins:  pluginNames,
		Settings: settings,
		Rules: withOverrides(types.Rules{
			"tailwindcss/classnames-order":                   ruleWarn(),
			"tailwindcss/enforces-negative-arbitrary-values": ruleWarn(),
			"tailwindcss/enforces-shorthand":                 ruleWarn(),
			"tailwindcss/migration-from-tailwind-2":          ruleWarn(),
			"tailwindcss/no-contradicting-classname":         ruleError(),
			"tailwindcss/no-custom-classname":                ruleOff(),
			"tailwindcss/no-unnecessary-arbitrary-value":     ruleWarn(),
		}, opts.Overrides),
	}}, nil
}
