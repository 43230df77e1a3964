package presets

import (
	"context"

	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/plugins"
	"github.com/arthur-debert/flatlint/pkg/types"
)

// JSONC checks JSON, JSON5 and JSONC files. Layout rules follow style when
// it is non-nil.
func JSONC(ctx context.Context, loader types.PluginLoader, opts options.JSONCOptions, style *options.StylisticOptions) ([]types.RuleFragment, error) {
	pluginNames, err := loadPlugins(ctx, loader, plugins.JSONC)
	if err != nil {
		return nil, err
	}

	rules := types.Rules{
		"jsonc/no-bigint-literals":               ruleError(),
		"jsonc/no-binary-expression":             ruleError(),
		"jsonc/no-binary-numeric-literals":       ruleError(),
		"jsonc/no-dupe-keys":                     ruleError(),
		"jsonc/no-escape-sequence-in-identifier": ruleError(),
		"jsonc/no-floating-decimal":              ruleError(),
		"jsonc/no-hexadecimal-numeric-literals":  ruleError(),
		"jsonc/no-infinity":                      ruleError(),
		"jsonc/no-multi-str":                     ruleError(),
		"jsonc/no-nan":                           ruleError(),
		"jsonc/no-number-props":                  ruleError(),
		"jsonc/no-octal":                         ruleError(),
		"jsonc/no-sparse-arrays":                 ruleError(),
		"jsonc/no-template-literals":             ruleError(),
		"jsonc/no-undefined-value":               ruleError(),
		"jsonc/no-useless-escape":                ruleError(),
		"jsonc/valid-json-number":                ruleError(),
	}
	if style != nil {
		indent := style.WithDefaults().Indent
		rules["jsonc/array-bracket-spacing"] = ruleError("never")
		rules["jsonc/comma-dangle"] = ruleError("never")
		rules["jsonc/comma-style"] = ruleError("last")
		rules["jsonc/indent"] = ruleError(indent)
		rules["jsonc/key-spacing"] = ruleError(map[string]any{"afterColon": true, "beforeColon": false})
		rules["jsonc/object-curly-spacing"] = ruleError("always")
		rules["jsonc/quote-props"] = ruleError()
		rules["jsonc/quotes"] = ruleError()
	}

	return []types.RuleFragment{
		{
			Name:    Name("jsonc", "setup"),
			Plugins: pluginNames,
		},
		{
			Name:  Name("jsonc", "rules"),
			Files: orDefault(opts.Files, []string{GlobJSON, GlobJSON5, GlobJSONC}),
			LanguageOptions: &types.LanguageOptions{
				Parser: parserFor(plugins.JSONC),
			},
			Rules: withOverrides(rules, opts.Overrides),
		},
	}, nil
}
