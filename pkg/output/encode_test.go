package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/arthur-debert/flatlint/pkg/compose"
	"github.com/arthur-debert/flatlint/pkg/errors"
	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleConfig() compose.Config {
	return compose.Config{
		Fragments: []types.RuleFragment{
			{Name: "flatlint/ignores", Ignores: []string{"**/dist"}},
			{
				Name:            "flatlint/typescript/rules",
				Files:           []string{"**/*.ts"},
				Plugins:         []string{"ts"},
				LanguageOptions: &types.LanguageOptions{Parser: "@typescript-eslint/parser"},
				Rules: types.Rules{
					"ts/no-explicit-any": types.Rule(types.Off),
					"ts/ban-ts-comment":  types.Rule(types.Error, map[string]any{"ts-expect-error": "allow-with-description"}),
				},
			},
		},
		Options: options.Input{
			"typescript": map[string]any{"tsconfigPath": "tsconfig.json"},
			"angular":    nil,
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{"": FormatJSON, "JSON": FormatJSON, "yml": FormatYAML, "toml": FormatTOML}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("xml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatForPath("eslint.flat.yaml"))
	assert.Equal(t, FormatTOML, FormatForPath("out/config.TOML"))
	assert.Equal(t, FormatJSON, FormatForPath("config.json"))
	assert.Equal(t, FormatJSON, FormatForPath("noext"))
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleConfig(), FormatJSON))

	var doc struct {
		Fragments []map[string]any `json:"fragments"`
		Options   map[string]any   `json:"options"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Fragments, 2)
	assert.Equal(t, "flatlint/ignores", doc.Fragments[0]["name"])
	assert.NotContains(t, doc.Fragments[0], "rules")

	rules := doc.Fragments[1]["rules"].(map[string]any)
	assert.Equal(t, "off", rules["ts/no-explicit-any"])
	assert.Equal(t, []any{"error", map[string]any{"ts-expect-error": "allow-with-description"}}, rules["ts/ban-ts-comment"])
	assert.Contains(t, doc.Options, "angular")
}

func TestEncodeUntaggedOmitsOptions(t *testing.T) {
	cfg := sampleConfig()
	cfg.Options = nil

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, cfg, FormatYAML))
	assert.NotContains(t, buf.String(), "options:")

	_, err := ReadTag(&buf, FormatYAML)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingTag))
}

func TestEncodeReadTagRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, sampleConfig(), format))

			in, err := ReadTag(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, map[string]any{"tsconfigPath": "tsconfig.json"}, in["typescript"])
		})
	}
}

func TestEncodeTOMLShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleConfig(), FormatTOML))

	out := buf.String()
	assert.Contains(t, out, "[[fragments]]")
	assert.Contains(t, out, "flatlint/typescript/rules")
	assert.NotContains(t, out, "angular", "nil options are dropped")
}

func TestReadTagParseError(t *testing.T) {
	_, err := ReadTag(strings.NewReader("options: [unclosed"), FormatYAML)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}
