package types_test

import (
	"encoding/json"
	"testing"

	"github.com/arthur-debert/flatlint/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseRuleEntry(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    types.RuleEntry
		wantErr bool
	}{
		{"severity_string", "warn", types.Rule(types.Warn), false},
		{"numeric_string", "2", types.Rule(types.Error), false},
		{"int", 0, types.Rule(types.Off), false},
		{"float_from_json", float64(1), types.Rule(types.Warn), false},
		{"with_options", []any{"error", map[string]any{"max": 3}}, types.Rule(types.Error, map[string]any{"max": 3}), false},
		{"string_slice", []string{"warn", "always"}, types.Rule(types.Warn, "always"), false},
		{"entry_passthrough", types.Rule(types.Off), types.Rule(types.Off), false},
		{"unknown_severity", "fatal", types.RuleEntry{}, true},
		{"empty_list", []any{}, types.RuleEntry{}, true},
		{"out_of_range", 3, types.RuleEntry{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParseRuleEntry(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.Severity, got.Severity)
			assert.Equal(t, len(tt.want.Options), len(got.Options))
			if len(tt.want.Options) > 0 {
				assert.Equal(t, tt.want.Options, got.Options)
			}
		})
	}
}

func TestRuleEntryValue(t *testing.T) {
	assert.Equal(t, "off", types.Rule(types.Off).Value())
	assert.Equal(t, []any{"error", "never"}, types.Rule(types.Error, "never").Value())
}

func TestRuleEntryMarshal(t *testing.T) {
	rules := types.Rules{
		"semi":   types.Rule(types.Error, "never"),
		"eqeqeq": types.Rule(types.Warn),
	}

	data, err := json.Marshal(rules)
	require.NoError(t, err)
	assert.JSONEq(t, `{"semi":["error","never"],"eqeqeq":"warn"}`, string(data))

	out, err := yaml.Marshal(rules)
	require.NoError(t, err)
	var back map[string]any
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, "warn", back["eqeqeq"])
	assert.Equal(t, []any{"error", "never"}, back["semi"])
}

func TestRulesMerge(t *testing.T) {
	base := types.Rules{"a": types.Rule(types.Error), "b": types.Rule(types.Warn)}
	over := types.Rules{"b": types.Rule(types.Off), "c": types.Rule(types.Error)}

	merged := base.Merge(over)
	assert.Equal(t, types.Off, merged["b"].Severity)
	assert.Len(t, merged, 3)
	assert.Equal(t, types.Warn, base["b"].Severity, "receiver untouched")

	var none types.Rules
	assert.Nil(t, none.Merge(nil))
	assert.Equal(t, map[string]any{"a": "error", "b": "warn"}, base.Values())
}
