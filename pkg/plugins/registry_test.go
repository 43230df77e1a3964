package plugins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	d, ok := Lookup(TypeScript)
	require.True(t, ok)
	assert.Equal(t, "@typescript-eslint/eslint-plugin", d.Package)
	assert.Equal(t, "@typescript-eslint/parser", d.Parser)

	_, ok = Lookup("does-not-exist")
	assert.False(t, ok)
}

func TestNamesSortedAndComplete(t *testing.T) {
	names := Names()
	assert.IsIncreasing(t, names)
	for _, name := range []string{Angular, NgRx, Test, Tailwind, Format, PNPM} {
		assert.Contains(t, names, name)
	}
}
