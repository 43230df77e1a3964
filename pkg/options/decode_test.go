package options

import (
	"testing"

	"github.com/arthur-debert/flatlint/pkg/errors"
	"github.com/arthur-debert/flatlint/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeToggleForms(t *testing.T) {
	opts, err := Decode(Input{
		KeyTypeScript: true,
		KeyStylistic:  false,
		KeyAngular:    map[string]any{"prefix": "app"},
		KeyVitest:     "false",
		KeyMarkdown:   nil,
	})
	require.NoError(t, err)

	assert.True(t, opts.TypeScript.Set)
	assert.True(t, opts.TypeScript.Enabled)

	assert.True(t, opts.Stylistic.Set)
	assert.False(t, opts.Stylistic.Enabled)

	assert.True(t, opts.Angular.Set)
	assert.True(t, opts.Angular.Enabled)
	assert.Equal(t, "app", opts.Angular.Options.Prefix)

	assert.True(t, opts.Vitest.Set)
	assert.False(t, opts.Vitest.Enabled)

	assert.False(t, opts.Markdown.Set, "explicit nil means not set")
	assert.False(t, opts.NgRx.Set)
}

func TestDecodeNestedInputType(t *testing.T) {
	opts, err := Decode(Input{
		KeyStylistic: Input{"indent": 4, "quotes": "double"},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, opts.Stylistic.Options.Indent)
	assert.Equal(t, "double", opts.Stylistic.Options.Quotes)
}

func TestDecodeRuleOverrides(t *testing.T) {
	opts, err := Decode(Input{
		KeyJavaScript: map[string]any{
			"overrides": map[string]any{
				"no-console":  "off",
				"eqeqeq":      []any{"error", "smart"},
				"no-debugger": 1,
			},
		},
	})
	require.NoError(t, err)

	overrides := opts.JavaScript.Options.Overrides
	assert.Equal(t, types.Rule(types.Off), overrides["no-console"])
	assert.Equal(t, types.Rule(types.Error, "smart"), overrides["eqeqeq"])
	assert.Equal(t, types.Rule(types.Warn), overrides["no-debugger"])
}

func TestDecodeErrors(t *testing.T) {
	t.Run("bad_toggle_string", func(t *testing.T) {
		_, err := Decode(Input{KeyTypeScript: "sometimes"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("bad_severity", func(t *testing.T) {
		_, err := Decode(Input{KeyYAML: map[string]any{"overrides": map[string]any{"x": "loud"}}})
		require.Error(t, err)
	})
}

func TestDecodeIgnoresAndEditor(t *testing.T) {
	opts, err := Decode(Input{
		KeyIgnores:    []any{"dist/**", "coverage"},
		KeyIsInEditor: "true",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"dist/**", "coverage"}, opts.Ignores)
	require.NotNil(t, opts.IsInEditor)
	assert.True(t, *opts.IsInEditor)
}
