package presets

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/plugins"
	"github.com/arthur-debert/flatlint/pkg/types"
)

// TypeScript returns the parser setup and rules for TypeScript sources.
// Type-aware fragments are added only when a tsconfig path is given.
func TypeScript(ctx context.Context, loader types.PluginLoader, opts options.TypeScriptOptions) ([]types.RuleFragment, error) {
	pluginNames, err := loadPlugins(ctx, loader, plugins.TypeScript)
	if err != nil {
		return nil, err
	}

	files := orDefault(opts.Files, []string{GlobTS, GlobTSX})
	typeAware := opts.TSConfigPath != ""
	parser := parserFor(plugins.TypeScript)

	parserFragment := func(name string, files []string, extra map[string]any) types.RuleFragment {
		parserOptions := map[string]any{
			"extraFileExtensions": []any{},
			"sourceType":          "module",
		}
		for k, v := range extra {
			parserOptions[k] = v
		}
		for k, v := range opts.ParserOptions {
			parserOptions[k] = v
		}
		return types.RuleFragment{
			Name:  Name("typescript", name),
			Files: files,
			LanguageOptions: &types.LanguageOptions{
				Parser:        parser,
				ParserOptions: parserOptions,
			},
		}
	}

	fragments := []types.RuleFragment{{
		Name:    Name("typescript", "setup"),
		Plugins: pluginNames,
	}}

	if typeAware {
		fragments = append(fragments,
			parserFragment("type-aware-parser", files, map[string]any{
				"project":         []any{opts.TSConfigPath},
				"tsconfigRootDir": filepath.Dir(opts.TSConfigPath),
			}),
			parserFragment("parser", []string{"**/*.md/**"}, nil),
		)
	} else {
		fragments = append(fragments, parserFragment("parser", files, nil))
	}

	rules := types.Rules{
		"no-dupe-class-members":  ruleOff(),
		"no-redeclare":           ruleOff(),
		"no-use-before-define":   ruleOff(),
		"no-useless-constructor": ruleOff(),

		"ts/ban-ts-comment":              ruleError(map[string]any{"ts-expect-error": "allow-with-description"}),
		"ts/consistent-type-definitions": ruleError("interface"),
		"ts/consistent-type-imports":     ruleError(map[string]any{"disallowTypeAnnotations": false, "fixStyle": "separate-type-imports", "prefer": "type-imports"}),
		"ts/method-signature-style":      ruleError("property"),
		"ts/no-dupe-class-members":       ruleError(),
		"ts/no-dynamic-delete":           ruleOff(),
		"ts/no-empty-object-type":        ruleError(map[string]any{"allowInterfaces": "always"}),
		"ts/no-explicit-any":             ruleOff(),
		"ts/no-extraneous-class":         ruleOff(),
		"ts/no-import-type-side-effects": ruleError(),
		"ts/no-invalid-void-type":        ruleOff(),
		"ts/no-non-null-assertion":       ruleOff(),
		"ts/no-redeclare":                ruleError(map[string]any{"builtinGlobals": false}),
		"ts/no-require-imports":          ruleError(),
		"ts/no-unused-expressions":       ruleError(map[string]any{"allowShortCircuit": true, "allowTaggedTemplates": true, "allowTernary": true}),
		"ts/no-unused-vars":              ruleOff(),
		"ts/no-use-before-define":        ruleError(map[string]any{"classes": false, "functions": false, "variables": true}),
		"ts/no-useless-constructor":      ruleOff(),
		"ts/no-wrapper-object-types":     ruleError(),
		"ts/triple-slash-reference":      ruleOff(),
		"ts/unified-signatures":          ruleOff(),
	}
	if len(opts.NamingConvention) > 0 {
		rules["ts/naming-convention"] = ruleError(opts.NamingConvention...)
	}

	fragments = append(fragments, types.RuleFragment{
		Name:  Name("typescript", "rules"),
		Files: files,
		Rules: withOverrides(rules, opts.Overrides),
	})

	if typeAware {
		typeAwareRules := types.Rules{
			"dot-notation":                     ruleOff(),
			"no-implied-eval":                  ruleOff(),
			"ts/await-thenable":                ruleError(),
			"ts/dot-notation":                  ruleError(map[string]any{"allowKeywords": true}),
			"ts/no-floating-promises":          ruleError(),
			"ts/no-for-in-array":               ruleError(),
			"ts/no-implied-eval":               ruleError(),
			"ts/no-misused-promises":           ruleError(),
			"ts/no-unnecessary-type-assertion": ruleError(),
			"ts/no-unsafe-argument":            ruleError(),
			"ts/no-unsafe-assignment":          ruleError(),
			"ts/no-unsafe-call":                ruleError(),
			"ts/no-unsafe-member-access":       ruleError(),
			"ts/no-unsafe-return":              ruleError(),
			"ts/promise-function-async":        ruleError(),
			"ts/restrict-plus-operands":        ruleError(),
			"ts/restrict-template-expressions": ruleError(),
			"ts/return-await":                  ruleError("in-try-catch"),
			"ts/strict-boolean-expressions":    ruleError(map[string]any{"allowNullableBoolean": true, "allowNullableObject": true}),
			"ts/switch-exhaustiveness-check":   ruleError(),
			"ts/unbound-method":                ruleError(),
		}
		fragments = append(fragments, types.RuleFragment{
			Name:    Name("typescript", "rules-type-aware"),
			Files:   files,
			Ignores: []string{"**/*.md/**"},
			Rules:   withOverrides(typeAwareRules, opts.OverridesTypeAware),
		})
	}

	fragments = append(fragments, types.RuleFragment{
		Name:  Name("typescript", "disables"),
		Files: []string{"**/*.d.?([cm])ts", "**/*.?([cm])js", "**/*.{test,spec}.ts?(x)"},
		Rules: types.Rules{
			"eslint-comments/no-unlimited-disable": ruleOff(),
			"no-restricted-syntax":                 ruleOff(),
			"ts/no-require-imports":                ruleOff(),
			"ts/no-unused-expressions":             ruleOff(),
			"unused-imports/no-unused-vars":        ruleOff(),
		},
	})

	return fragments, nil
}
