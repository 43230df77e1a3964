package types_test

import (
	"testing"

	"github.com/arthur-debert/flatlint/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestIsGlobalIgnore(t *testing.T) {
	tests := []struct {
		name     string
		fragment types.RuleFragment
		want     bool
	}{
		{"ignores_only", types.RuleFragment{Name: "x", Ignores: []string{"dist"}}, true},
		{"with_files", types.RuleFragment{Ignores: []string{"dist"}, Files: []string{"**/*.ts"}}, false},
		{"with_rules", types.RuleFragment{Ignores: []string{"dist"}, Rules: types.Rules{"a": types.Rule(types.Off)}}, false},
		{"with_processor", types.RuleFragment{Ignores: []string{"dist"}, Processor: "markdown/markdown"}, false},
		{"empty", types.RuleFragment{Name: "x"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fragment.IsGlobalIgnore())
		})
	}
}

func TestClone(t *testing.T) {
	orig := types.RuleFragment{
		Name:            "flatlint/typescript/rules",
		Files:           []string{"**/*.ts"},
		Ignores:         []string{"**/*.d.ts"},
		Plugins:         []string{"ts"},
		LanguageOptions: &types.LanguageOptions{Parser: "ts/parser"},
		Settings:        map[string]any{"k": 1},
		Rules:           types.Rules{"ts/no-explicit-any": types.Rule(types.Warn)},
	}

	c := orig.Clone()
	c.Files[0] = "apps/web/**/*.ts"
	c.Ignores = append(c.Ignores, "x")
	c.LanguageOptions.Parser = "other"
	c.Settings["k"] = 2
	c.Rules["ts/no-explicit-any"] = types.Rule(types.Off)

	assert.Equal(t, "**/*.ts", orig.Files[0])
	assert.Len(t, orig.Ignores, 1)
	assert.Equal(t, "ts/parser", orig.LanguageOptions.Parser)
	assert.Equal(t, 1, orig.Settings["k"])
	assert.Equal(t, types.Warn, orig.Rules["ts/no-explicit-any"].Severity)
}

func TestFragmentLookup(t *testing.T) {
	frags := []types.RuleFragment{{Name: "a"}, {Name: "b"}}
	assert.Equal(t, []string{"a", "b"}, types.FragmentNames(frags))
	assert.Equal(t, 1, types.FindFragment(frags, "b"))
	assert.Equal(t, -1, types.FindFragment(frags, "c"))
}
