package presets

import (
	"context"

	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/plugins"
	"github.com/arthur-debert/flatlint/pkg/types"
)

// browserAndNodeGlobals are available in every source file.
var browserAndNodeGlobals = map[string]string{
	"document":   "readonly",
	"navigator":  "readonly",
	"window":     "readonly",
	"globalThis": "readonly",
	"process":    "readonly",
	"console":    "readonly",
}

// JavaScript returns the core language setup and rules.
func JavaScript(ctx context.Context, loader types.PluginLoader, opts options.JavaScriptOptions, inEditor bool) ([]types.RuleFragment, error) {
	pluginNames, err := loadPlugins(ctx, loader, plugins.UnusedImports)
	if err != nil {
		return nil, err
	}

	globals := make(map[string]string, len(browserAndNodeGlobals)+len(opts.Globals))
	for k, v := range browserAndNodeGlobals {
		globals[k] = v
	}
	for k, v := range opts.Globals {
		globals[k] = v
	}

	setup := types.RuleFragment{
		Name: Name("javascript", "setup"),
		LanguageOptions: &types.LanguageOptions{
			EcmaVersion: "latest",
			SourceType:  "module",
			Globals:     globals,
			ParserOptions: map[string]any{
				"ecmaFeatures": map[string]any{"jsx": true},
				"ecmaVersion":  "latest",
				"sourceType":   "module",
			},
		},
		Settings: map[string]any{
			"linterOptions": map[string]any{"reportUnusedDisableDirectives": true},
		},
	}

	rules := types.Rules{
		"accessor-pairs":            ruleError(map[string]any{"enforceForClassMembers": true, "setWithoutGet": true}),
		"array-callback-return":     ruleError(),
		"block-scoped-var":          ruleError(),
		"constructor-super":         ruleError(),
		"default-case-last":         ruleError(),
		"dot-notation":              ruleError(map[string]any{"allowKeywords": true}),
		"eqeqeq":                    ruleError("smart"),
		"new-cap":                   ruleError(map[string]any{"capIsNew": false, "newIsCap": true, "properties": true}),
		"no-alert":                  ruleError(),
		"no-array-constructor":      ruleError(),
		"no-async-promise-executor": ruleError(),
		"no-caller":                 ruleError(),
		"no-case-declarations":      ruleError(),
		"no-class-assign":           ruleError(),
		"no-compare-neg-zero":       ruleError(),
		"no-cond-assign":            ruleError("always"),
		"no-console":                ruleError(map[string]any{"allow": []any{"warn", "error"}}),
		"no-const-assign":           ruleError(),
		"no-debugger":               ruleError(),
		"no-delete-var":             ruleError(),
		"no-dupe-args":              ruleError(),
		"no-dupe-class-members":     ruleError(),
		"no-dupe-keys":              ruleError(),
		"no-duplicate-case":         ruleError(),
		"no-empty":                  ruleError(map[string]any{"allowEmptyCatch": true}),
		"no-eval":                   ruleError(),
		"no-fallthrough":            ruleError(),
		"no-implied-eval":           ruleError(),
		"no-new-wrappers":           ruleError(),
		"no-redeclare":              ruleError(map[string]any{"builtinGlobals": false}),
		"no-self-compare":           ruleError(),
		"no-sparse-arrays":          ruleError(),
		"no-throw-literal":          ruleError(),
		"no-undef":                  ruleError(),
		"no-unreachable":            ruleError(),
		"no-unsafe-finally":         ruleError(),
		"no-unused-expressions":     ruleError(map[string]any{"allowShortCircuit": true, "allowTaggedTemplates": true, "allowTernary": true}),
		"no-unused-vars":            ruleOff(),
		"no-use-before-define":      ruleError(map[string]any{"classes": false, "functions": false, "variables": true}),
		"no-useless-catch":          ruleError(),
		"no-var":                    ruleError(),
		"no-with":                   ruleError(),
		"object-shorthand":          ruleError("always", map[string]any{"avoidQuotes": true, "ignoreConstructors": false}),
		"one-var":                   ruleError(map[string]any{"initialized": "never"}),
		"prefer-arrow-callback":     ruleError(map[string]any{"allowNamedFunctions": false, "allowUnboundThis": true}),
		"prefer-const": types.Rule(editorSeverity(inEditor),
			map[string]any{"destructuring": "all", "ignoreReadBeforeAssign": true}),
		"prefer-exponentiation-operator": ruleError(),
		"prefer-promise-reject-errors":   ruleError(),
		"prefer-rest-params":             ruleError(),
		"prefer-spread":                  ruleError(),
		"prefer-template":                ruleError(),
		"symbol-description":             ruleError(),
		"unicode-bom":                    ruleError("never"),
		"use-isnan":                      ruleError(map[string]any{"enforceForIndexOf": true, "enforceForSwitchCase": true}),
		"valid-typeof":                   ruleError(map[string]any{"requireStringLiterals": true}),
		"vars-on-top":                    ruleError(),
		"yoda":                           ruleError("never"),

		"unused-imports/no-unused-imports": types.Rule(editorSeverity(inEditor)),
		"unused-imports/no-unused-vars": ruleError(map[string]any{
			"args":                           "after-used",
			"argsIgnorePattern":              "^_",
			"ignoreRestSiblings":             true,
			"vars":                           "all",
			"varsIgnorePattern":              "^_",
			"caughtErrors":                   "none",
			"destructuredArrayIgnorePattern": "^_",
		}),
	}

	return []types.RuleFragment{
		setup,
		{
			Name:    Name("javascript", "rules"),
			Plugins: pluginNames,
			Rules:   withOverrides(rules, opts.Overrides),
		},
	}, nil
}
