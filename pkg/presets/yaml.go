package presets

import (
	"context"

	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/plugins"
	"github.com/arthur-debert/flatlint/pkg/types"
)

// YAML checks YAML files.
func YAML(ctx context.Context, loader types.PluginLoader, opts options.YAMLOptions, style *options.StylisticOptions) ([]types.RuleFragment, error) {
	pluginNames, err := loadPlugins(ctx, loader, plugins.YAML)
	if err != nil {
		return nil, err
	}

	rules := types.Rules{
		"yaml/block-mapping":                     ruleError(),
		"yaml/block-sequence":                    ruleError(),
		"yaml/no-empty-key":                      ruleError(),
		"yaml/no-empty-sequence-entry":           ruleError(),
		"yaml/no-irregular-whitespace":           ruleError(),
		"yaml/plain-scalar":                      ruleError(),
		"yaml/vue-custom-block/no-parsing-error": ruleError(),
	}
	if style != nil {
		s := style.WithDefaults()
		indent := s.Indent
		if indent == "tab" {
			indent = 2
		}
		quote := "single"
		if s.Quotes == "double" {
			quote = "double"
		}
		rules["yaml/block-mapping-question-indicator-newline"] = ruleError()
		rules["yaml/block-sequence-hyphen-indicator-newline"] = ruleError()
		rules["yaml/flow-mapping-curly-spacing"] = ruleError()
		rules["yaml/flow-sequence-bracket-spacing"] = ruleError()
		rules["yaml/indent"] = ruleError(indent)
		rules["yaml/key-spacing"] = ruleError()
		rules["yaml/no-tab-indent"] = ruleError()
		rules["yaml/quotes"] = ruleError(map[string]any{"avoidEscape": true, "prefer": quote})
		rules["yaml/spaced-comment"] = ruleError()
	}

	return []types.RuleFragment{
		{
			Name:    Name("yaml", "setup"),
			Plugins: pluginNames,
		},
		{
			Name:  Name("yaml", "rules"),
			Files: orDefault(opts.Files, []string{GlobYAML}),
			LanguageOptions: &types.LanguageOptions{
				Parser: parserFor(plugins.YAML),
			},
			Rules: withOverrides(rules, opts.Overrides),
		},
	}, nil
}
