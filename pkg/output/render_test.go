package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/flatlint/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFragmentRows(t *testing.T) {
	rows := FragmentRows(sampleConfig().Fragments)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "flatlint/ignores", "(ignores 1 globs)", "", "0"}, rows[0])
	assert.Equal(t, []string{"2", "flatlint/typescript/rules", "**/*.ts", "ts", "2"}, rows[1])

	rows = FragmentRows([]types.RuleFragment{{Name: "setup", Plugins: []string{"a", "b"}}})
	assert.Equal(t, "*", rows[0][2])
	assert.Equal(t, "a, b", rows[0][3])
}

func TestWriteFragmentTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFragmentTable(&buf, sampleConfig().Fragments, false))
	out := buf.String()
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "flatlint/typescript/rules")
	assert.NotContains(t, out, "\x1b[")

	buf.Reset()
	require.NoError(t, WriteFragmentTable(&buf, nil, false))
	assert.Contains(t, buf.String(), "No fragments")
}

func TestExplain(t *testing.T) {
	md := Explain(sampleConfig())
	assert.True(t, strings.HasPrefix(md, "# Composed configuration"))
	assert.Contains(t, md, "## Options")
	assert.Contains(t, md, "- `typescript`")
	assert.Contains(t, md, "1. **flatlint/ignores** ignores 1 globs")
	assert.Contains(t, md, "2. **flatlint/typescript/rules** on `**/*.ts`, plugins ts, 2 rules")

	cfg := sampleConfig()
	cfg.Options = nil
	assert.NotContains(t, Explain(cfg), "## Options")
}

func TestMarkdownRenderer(t *testing.T) {
	out := MarkdownRenderer{Style: "notty", Width: 60}.Render("# Title\n\nSome text.")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Some text.")
}
