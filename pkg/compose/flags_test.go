package compose

import (
	"testing"

	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/probe"
	"github.com/arthur-debert/flatlint/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFeaturesDefaults(t *testing.T) {
	opts, err := options.Decode(nil)
	require.NoError(t, err)

	f, err := resolveFeatures(opts, probe.NewStatic(), probeAll, types.RuntimeContext{})
	require.NoError(t, err)
	assert.Equal(t, Features{
		Gitignore: true,
		Stylistic: true,
		JSDoc:     true,
		Regexp:    true,
		Unicorn:   true,
		JSONC:     true,
		YAML:      true,
		TOML:      true,
		Markdown:  true,
	}, f)
}

func TestResolveFeaturesProbeScope(t *testing.T) {
	caps := probe.NewStatic("typescript", "@angular/core", "@ngrx/store", "vitest", "tailwindcss")
	opts, err := options.Decode(nil)
	require.NoError(t, err)

	f, err := resolveFeatures(opts, caps, probeAll, types.RuntimeContext{})
	require.NoError(t, err)
	assert.True(t, f.TypeScript && f.Angular && f.NgRx && f.Vitest && f.Tailwind)

	f, err = resolveFeatures(opts, caps, probeWorkspace, types.RuntimeContext{})
	require.NoError(t, err)
	assert.True(t, f.TypeScript)
	assert.False(t, f.Angular || f.NgRx || f.Vitest || f.Tailwind)
}

func TestCleanRoot(t *testing.T) {
	tests := map[string]string{
		"apps/web":     "apps/web",
		"./apps/web/":  "apps/web",
		" libs/ui ":    "libs/ui",
		"apps/../libs": "libs",
		".":            "",
		"../x":         "",
		"/abs":         "",
	}
	for in, want := range tests {
		assert.Equal(t, want, cleanRoot(in), in)
	}
}

func TestScopeFragment(t *testing.T) {
	orig := types.RuleFragment{
		Name:    "flatlint/vitest/rules",
		Files:   []string{"**/*.test.ts", "./src/*.ts"},
		Ignores: []string{"**/fixtures/**"},
	}
	got := scopeFragment(orig, "apps/web")

	assert.Equal(t, "flatlint/vitest/rules@apps/web", got.Name)
	assert.Equal(t, []string{"apps/web/**/*.test.ts", "apps/web/src/*.ts"}, got.Files)
	assert.Equal(t, []string{"apps/web/**/fixtures/**"}, got.Ignores)
	assert.Equal(t, "**/*.test.ts", orig.Files[0], "original untouched")

	setup := scopeFragment(types.RuleFragment{Name: "flatlint/vitest/setup", Plugins: []string{"test"}}, "apps/web")
	assert.Empty(t, setup.Files)
}
