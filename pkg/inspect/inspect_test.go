package inspect

import (
	"testing"

	"github.com/arthur-debert/flatlint/pkg/errors"
	"github.com/arthur-debert/flatlint/pkg/presets"
	"github.com/arthur-debert/flatlint/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	tests := map[string]string{
		"**/*.ts":               "**/*.ts",
		presets.GlobSrc:         "**/*.{,[cm]}[jt]s{,x}",
		presets.GlobYAML:        "**/*.y{,a}ml",
		"**/*.@(md|mdx)":        "**/*.{md,mdx}",
		"**/*.{c,le,sc}ss":      "**/*.{c,le,sc}ss",
		"file?.txt":             "file?.txt",
		"**/auto-import?(s).ts": "**/auto-import{,s}.ts",
	}
	for in, want := range tests {
		assert.Equal(t, want, Translate(in), in)
	}
}

func TestFile(t *testing.T) {
	fragments := []types.RuleFragment{
		{Name: "ignores", Ignores: []string{"**/dist", "**/*.min.*", "build/**", "!build/keep.js"}},
		{Name: "setup", Plugins: []string{"ts"}},
		{
			Name:  "ts",
			Files: []string{presets.GlobTS, presets.GlobTSX},
			Rules: types.Rules{"ts/no-explicit-any": types.Rule(types.Off), "no-console": types.Rule(types.Error)},
		},
		{
			Name:    "ts-type-aware",
			Files:   []string{presets.GlobTS},
			Ignores: []string{"**/*.md/**"},
			Rules:   types.Rules{"ts/await-thenable": types.Rule(types.Error)},
		},
		{
			Name:  "tests",
			Files: presets.GlobTests,
			Rules: types.Rules{"no-console": types.Rule(types.Off)},
		},
		{Name: "yaml", Files: []string{presets.GlobYAML}},
	}

	tests := []struct {
		name      string
		file      string
		ignoredBy string
		matches   []string
	}{
		{"typescript_source", "src/app.ts", "", []string{"setup", "ts", "ts-type-aware"}},
		{"tsx_source", "./src/view.tsx", "", []string{"setup", "ts"}},
		{"test_file", "src/app.test.ts", "", []string{"setup", "ts", "ts-type-aware", "tests"}},
		{"code_block_in_markdown", "README.md/0.ts", "", []string{"setup", "ts"}},
		{"yaml_short_ext", ".github/workflows/ci.yml", "", []string{"setup", "yaml"}},
		{"ignored_directory", "packages/ui/dist/index.ts", "ignores", nil},
		{"ignored_file_glob", "vendor/jquery.min.js", "ignores", nil},
		{"ignored_anchored", "build/out.js", "ignores", nil},
		{"reincluded", "build/keep.js", "", []string{"setup"}},
		{"unmatched_file", "docs/readme.txt", "", []string{"setup"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := File(fragments, tt.file)
			require.NoError(t, err)
			assert.Equal(t, tt.ignoredBy, res.IgnoredBy)
			assert.Equal(t, tt.ignoredBy != "", res.Ignored())

			var names []string
			for _, m := range res.Matches {
				names = append(names, m.Fragment.Name)
			}
			assert.Equal(t, tt.matches, names)
		})
	}
}

func TestResultRules(t *testing.T) {
	fragments := []types.RuleFragment{
		{Name: "base", Rules: types.Rules{"no-console": types.Rule(types.Error), "eqeqeq": types.Rule(types.Error)}},
		{Name: "tests", Files: presets.GlobTests, Rules: types.Rules{"no-console": types.Rule(types.Off)}},
	}

	res, err := File(fragments, "lib/util.spec.js")
	require.NoError(t, err)
	rules := res.Rules()
	assert.Equal(t, types.Off, rules["no-console"].Severity)
	assert.Equal(t, types.Error, rules["eqeqeq"].Severity)
	assert.Equal(t, presets.GlobTests[1], res.Matches[1].Glob)
}

func TestFileBadPattern(t *testing.T) {
	_, err := File([]types.RuleFragment{{Name: "broken", Files: []string{"[unclosed"}}}, "a.ts")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
