package presets

import (
	"context"

	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/plugins"
	"github.com/arthur-debert/flatlint/pkg/types"
)

// MarkdownProcessor extracts fenced code blocks so they are linted as
// virtual files.
const MarkdownProcessor = "markdown/markdown"

// Markdown lints markdown files and the code blocks embedded in them.
func Markdown(ctx context.Context, loader types.PluginLoader, opts options.MarkdownOptions) ([]types.RuleFragment, error) {
	pluginNames, err := loadPlugins(ctx, loader, plugins.Markdown)
	if err != nil {
		return nil, err
	}

	files := orDefault(opts.Files, []string{GlobMarkdown})
	codeFiles := make([]string, 0, len(files))
	for _, f := range files {
		codeFiles = append(codeFiles, f+"/**/*."+GlobSrcExt)
	}

	fragments := []types.RuleFragment{
		{
			Name:    Name("markdown", "setup"),
			Plugins: pluginNames,
		},
		{
			Name:      Name("markdown", "processor"),
			Files:     files,
			Ignores:   []string{GlobMarkdownInMD},
			Processor: MarkdownProcessor,
		},
		{
			Name:     Name("markdown", "parser"),
			Files:    files,
			Language: "markdown/gfm",
			Rules:    withOverrides(types.Rules{}, opts.Overrides),
		},
		{
			Name:  Name("markdown", "disables"),
			Files: codeFiles,
			LanguageOptions: &types.LanguageOptions{
				ParserOptions: map[string]any{
					"ecmaFeatures": map[string]any{"impliedStrict": true},
				},
			},
			Rules: types.Rules{
				"no-alert":                         ruleOff(),
				"no-console":                       ruleOff(),
				"no-labels":                        ruleOff(),
				"no-lone-blocks":                   ruleOff(),
				"no-restricted-syntax":             ruleOff(),
				"no-undef":                         ruleOff(),
				"no-unused-expressions":            ruleOff(),
				"no-unused-labels":                 ruleOff(),
				"no-unused-vars":                   ruleOff(),
				"node/prefer-global/process":       ruleOff(),
				"style/comma-dangle":               ruleOff(),
				"style/eol-last":                   ruleOff(),
				"ts/consistent-type-imports":       ruleOff(),
				"ts/no-namespace":                  ruleOff(),
				"ts/no-redeclare":                  ruleOff(),
				"ts/no-require-imports":            ruleOff(),
				"ts/no-unused-expressions":         ruleOff(),
				"ts/no-unused-vars":                ruleOff(),
				"ts/no-use-before-define":          ruleOff(),
				"unicode-bom":                      ruleOff(),
				"unused-imports/no-unused-imports": ruleOff(),
				"unused-imports/no-unused-vars":    ruleOff(),
			},
		},
	}

	if opts.Slidev {
		fragments = append(fragments, types.RuleFragment{
			Name:      Name("markdown", "slidev"),
			Files:     orDefault(opts.SlidevFiles, []string{GlobSlidev}),
			Processor: MarkdownProcessor,
			Settings:  map[string]any{"markdown": map[string]any{"frontmatter": "yaml", "slideSeparator": "---"}},
		})
	}

	return fragments, nil
}
