package compose_test

import (
	"context"
	"testing"

	"github.com/arthur-debert/flatlint/pkg/compose"
	"github.com/arthur-debert/flatlint/pkg/errors"
	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/probe"
	"github.com/arthur-debert/flatlint/pkg/types"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverrideRequiresTag(t *testing.T) {
	c := newComposer(probe.NewStatic())
	cfg, err := c.Compose(context.Background(), nil)
	require.NoError(t, err)

	_, err = c.Override(context.Background(), cfg, options.Input{"typescript": true})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingTag))
}

func TestOverrideRoundTrip(t *testing.T) {
	c := newComposer(probe.NewStatic("typescript"))
	in := options.Input{"vitest": true, "stylistic": map[string]any{"semi": true}}

	standard, err := c.Compose(context.Background(), in)
	require.NoError(t, err)

	overridden, err := c.Override(context.Background(), compose.Tag(standard, in), options.Input{})
	require.NoError(t, err)

	if diff := cmp.Diff(standard.Fragments, overridden.Fragments); diff != "" {
		t.Errorf("empty override changed fragments (-want +got):\n%s", diff)
	}
}

func TestOverrideMerges(t *testing.T) {
	c := newComposer(probe.NewStatic("typescript"))
	ws, err := c.Workspace(context.Background(), options.Input{
		"typescript": map[string]any{"tsconfigPath": "tsconfig.json"},
		"stylistic":  map[string]any{"indent": 4, "quotes": "double"},
	})
	require.NoError(t, err)

	t.Run("nested_keys_merge", func(t *testing.T) {
		cfg, err := c.Override(context.Background(), ws, options.Input{"stylistic": map[string]any{"quotes": "single"}})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"indent": 4, "quotes": "single"}, cfg.Options["stylistic"])

		i := types.FindFragment(cfg.Fragments, "flatlint/stylistic/rules")
		require.GreaterOrEqual(t, i, 0)
		assert.Equal(t, 4, cfg.Fragments[i].Rules["style/indent"].Options[0])
		assert.Equal(t, "single", cfg.Fragments[i].Rules["style/quotes"].Options[0])
		assert.True(t, has(cfg.Fragments, "flatlint/typescript/rules-type-aware"))
	})

	t.Run("nil_clears_back_to_probe", func(t *testing.T) {
		disabled, err := c.Override(context.Background(), ws, options.Input{"typescript": false})
		require.NoError(t, err)
		assert.False(t, has(disabled.Fragments, "flatlint/typescript/rules"))

		cleared, err := c.Override(context.Background(), disabled, options.Input{"typescript": nil})
		require.NoError(t, err)
		assert.True(t, has(cleared.Fragments, "flatlint/typescript/rules"), "probe turns it back on")
		assert.False(t, has(cleared.Fragments, "flatlint/typescript/rules-type-aware"))
	})

	t.Run("overrides_chain", func(t *testing.T) {
		first, err := c.Override(context.Background(), ws, options.Input{"vitest": true})
		require.NoError(t, err)
		second, err := c.Override(context.Background(), first, options.Input{"pnpm": true})
		require.NoError(t, err)

		assert.True(t, has(second.Fragments, "flatlint/vitest/rules"))
		assert.True(t, has(second.Fragments, "flatlint/pnpm/package-json"))
		assert.Equal(t, true, second.Options["vitest"])
	})

	t.Run("dependency_error", func(t *testing.T) {
		_, err := c.Override(context.Background(), ws, options.Input{"ngrx": true, "angular": false})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigDependency))
	})

	t.Run("base_left_untouched", func(t *testing.T) {
		_, err := c.Override(context.Background(), ws, options.Input{"stylistic": false})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"indent": 4, "quotes": "double"}, ws.Options["stylistic"])
	})
}
