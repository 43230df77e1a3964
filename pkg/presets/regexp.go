package presets

import (
	"context"

	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/plugins"
	"github.com/arthur-debert/flatlint/pkg/types"
)

var regexpRecommended = []string{
	"regexp/confusing-quantifier",
	"regexp/control-character-escape",
	"regexp/match-any",
	"regexp/negation",
	"regexp/no-contradiction-with-assertion",
	"regexp/no-dupe-characters-character-class",
	"regexp/no-empty-alternative",
	"regexp/no-empty-capturing-group",
	"regexp/no-empty-character-class",
	"regexp/no-empty-group",
	"regexp/no-escape-backspace",
	"regexp/no-invalid-regexp",
	"regexp/no-lazy-ends",
	"regexp/no-misleading-capturing-group",
	"regexp/no-optional-assertion",
	"regexp/no-super-linear-backtracking",
	"regexp/no-useless-backreference",
	"regexp/no-useless-escape",
	"regexp/optimal-quantifier-concatenation",
	"regexp/prefer-character-class",
	"regexp/prefer-w",
	"regexp/strict",
}

// Regexp checks regular expression literals. Recommended rules are reported
// at the configured level, "error" unless "warn" is asked for.
func Regexp(ctx context.Context, loader types.PluginLoader, opts options.RegexpOptions) ([]types.RuleFragment, error) {
	pluginNames, err := loadPlugins(ctx, loader, plugins.Regexp)
	if err != nil {
		return nil, err
	}

	level := types.Error
	if opts.Level == string(types.Warn) {
		level = types.Warn
	}

	rules := make(types.Rules, len(regexpRecommended))
	for _, name := range regexpRecommended {
		rules[name] = types.Rule(level)
	}

	return []types.RuleFragment{{
		Name:    Name("regexp", "rules"),
		Plugins: pluginNames,
		Rules:   withOverrides(rules, opts.Overrides),
	}}, nil
}
