package presets

import (
	"context"

	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/plugins"
	"github.com/arthur-debert/flatlint/pkg/types"
)

// DefaultAngularPrefix is the selector prefix used when none is configured.
const DefaultAngularPrefix = "app"

// Angular returns component and directive rules for TypeScript sources and,
// unless templates are turned off, rules for HTML templates.
func Angular(ctx context.Context, loader types.PluginLoader, opts options.AngularOptions) ([]types.RuleFragment, error) {
	pluginNames, err := loadPlugins(ctx, loader, plugins.Angular, plugins.AngularTmpl)
	if err != nil {
		return nil, err
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultAngularPrefix
	}
	files := orDefault(opts.Files, []string{GlobTS})
	templateFiles := orDefault(opts.TemplateFiles, []string{GlobHTML})
	templates := opts.Templates == nil || *opts.Templates

	rules := types.Rules{
		"angular/component-selector":           ruleError(map[string]any{"type": "element", "prefix": prefix, "style": "kebab-case"}),
		"angular/directive-selector":           ruleError(map[string]any{"type": "attribute", "prefix": prefix, "style": "camelCase"}),
		"angular/contextual-lifecycle":         ruleError(),
		"angular/no-empty-lifecycle-method":    ruleError(),
		"angular/no-input-rename":              ruleError(),
		"angular/no-inputs-metadata-property":  ruleError(),
		"angular/no-output-native":             ruleError(),
		"angular/no-output-on-prefix":          ruleError(),
		"angular/no-output-rename":             ruleError(),
		"angular/no-outputs-metadata-property": ruleError(),
		"angular/prefer-standalone":            ruleError(),
		"angular/use-lifecycle-interface":      ruleWarn(),
		"angular/use-pipe-transform-interface": ruleError(),
	}

	fragments := []types.RuleFragment{
		{
			Name:    Name("angular", "setup"),
			Plugins: pluginNames,
		},
		{
			Name:  Name("angular", "rules"),
			Files: files,
			Rules: withOverrides(rules, opts.Overrides),
		},
		{
			Name:  Name("angular", "template", "setup"),
			Files: templateFiles,
			LanguageOptions: &types.LanguageOptions{
				Parser: parserFor(plugins.AngularTmpl),
			},
		},
	}

	if templates {
		templateRules := types.Rules{
			"angular-template/banana-in-box":            ruleError(),
			"angular-template/eqeqeq":                   ruleError(),
			"angular-template/no-negated-async":         ruleError(),
			"angular-template/prefer-control-flow":      ruleError(),
			"angular-template/prefer-self-closing-tags": ruleError(),
		}
		fragments = append(fragments, types.RuleFragment{
			Name:  Name("angular", "template", "rules"),
			Files: templateFiles,
			Rules: withOverrides(templateRules, opts.TemplateOverrides),
		})
	}

	return fragments, nil
}
