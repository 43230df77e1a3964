package config

import (
	"testing"

	"github.com/arthur-debert/flatlint/pkg/errors"
	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSet(t *testing.T) {
	tests := []struct {
		name  string
		set   []string
		unset []string
		want  options.Input
	}{
		{
			name: "empty",
			want: options.Input{},
		},
		{
			name: "booleans_and_nesting",
			set:  []string{"typescript=true", "stylistic.indent=4", "stylistic.quotes=double"},
			want: options.Input{
				"typescript": true,
				"stylistic":  map[string]any{"indent": 4, "quotes": "double"},
			},
		},
		{
			name: "flow_values",
			set:  []string{"ignores=[dist, coverage]", "vitest={typecheck: true}"},
			want: options.Input{
				"ignores": []any{"dist", "coverage"},
				"vitest":  map[string]any{"typecheck": true},
			},
		},
		{
			name:  "unset_is_explicit_nil",
			set:   []string{"angular=false"},
			unset: []string{"typescript"},
			want:  options.Input{"angular": false, "typescript": nil},
		},
		{
			name: "case_restored",
			set:  []string{"isineditor=true"},
			want: options.Input{"isInEditor": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSet(tt.set, tt.unset)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseSet mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSetErrors(t *testing.T) {
	for _, pair := range []string{"typescript", "=true", "stylistic={indent"} {
		_, err := ParseSet([]string{pair}, nil)
		require.Error(t, err, pair)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), pair)
	}

	_, err := ParseSet(nil, []string{" "})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
