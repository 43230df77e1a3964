package presets

import (
	"context"

	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/plugins"
	"github.com/arthur-debert/flatlint/pkg/types"
)

// Stylistic enforces formatting through lint rules. Unset settings fall back
// to two-space indent, single quotes, no semicolons and JSX support.
func Stylistic(ctx context.Context, loader types.PluginLoader, opts options.StylisticOptions) ([]types.RuleFragment, error) {
	pluginNames, err := loadPlugins(ctx, loader, plugins.Style)
	if err != nil {
		return nil, err
	}

	opts = opts.WithDefaults()
	semi := "never"
	if *opts.Semi {
		semi = "always"
	}

	rules := types.Rules{
		"style/arrow-parens":            ruleError("as-needed", map[string]any{"requireForBlockBody": true}),
		"style/brace-style":             ruleError("1tbs", map[string]any{"allowSingleLine": true}),
		"style/comma-dangle":            ruleError("always-multiline"),
		"style/eol-last":                ruleError(),
		"style/indent":                  ruleError(opts.Indent, map[string]any{"SwitchCase": 1}),
		"style/key-spacing":             ruleError(map[string]any{"afterColon": true, "beforeColon": false}),
		"style/no-multiple-empty-lines": ruleError(map[string]any{"max": 1, "maxBOF": 0, "maxEOF": 0}),
		"style/no-trailing-spaces":      ruleError(),
		"style/object-curly-spacing":    ruleError("always"),
		"style/quote-props":             ruleError("consistent-as-needed"),
		"style/quotes":                  ruleError(opts.Quotes, map[string]any{"avoidEscape": true}),
		"style/semi":                    ruleError(semi),
		"style/space-before-function-paren": ruleError(map[string]any{
			"anonymous":  "always",
			"asyncArrow": "always",
			"named":      "never",
		}),

		"curly": ruleError("multi-or-nest", "consistent"),
	}
	if *opts.JSX {
		rules["style/jsx-quotes"] = ruleError("prefer-double")
		rules["style/jsx-self-closing-comp"] = ruleError()
		rules["style/jsx-indent-props"] = ruleError(opts.Indent)
	}

	return []types.RuleFragment{{
		Name:    Name("stylistic", "rules"),
		Plugins: pluginNames,
		Rules:   withOverrides(rules, opts.Overrides),
	}}, nil
}
