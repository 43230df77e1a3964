package presets

import (
	"context"
	"strings"

	"github.com/arthur-debert/flatlint/pkg/plugins"
	"github.com/arthur-debert/flatlint/pkg/types"
)

// NamePrefix starts every fragment name.
const NamePrefix = "flatlint"

// Name joins parts into a fragment name.
func Name(parts ...string) string {
	return NamePrefix + "/" + strings.Join(parts, "/")
}

func ruleError(options ...any) types.RuleEntry { return types.Rule(types.Error, options...) }
func ruleWarn(options ...any) types.RuleEntry  { return types.Rule(types.Warn, options...) }
func ruleOff() types.RuleEntry                 { return types.Rule(types.Off) }

// editorSeverity softens rules whose autofix gets in the way while typing.
func editorSeverity(inEditor bool) types.Severity {
	if inEditor {
		return types.Warn
	}
	return types.Error
}

// loadPlugins resolves each plugin and returns their namespaces in order.
func loadPlugins(ctx context.Context, loader types.PluginLoader, names ...string) ([]string, error) {
	out := make([]string, 0, len(names))
	for _, name := range names {
		p, err := loader.LoadPlugin(ctx, name)
		if err != nil {
			return nil, err
		}
		out = append(out, p.Name)
	}
	return out, nil
}

// orDefault returns files when the caller supplied any, else def.
func orDefault(files, def []string) []string {
	if len(files) > 0 {
		return files
	}
	return def
}

// withOverrides layers caller overrides over a rule set.
func withOverrides(rules types.Rules, overrides types.Rules) types.Rules {
	return rules.Merge(overrides)
}

// parserFor returns the parser package registered for a plugin.
func parserFor(plugin string) string {
	d, _ := plugins.Lookup(plugin)
	return d.Parser
}
