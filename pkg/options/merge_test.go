package options

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		original Input
		patch    Input
		expected Input
	}{
		{
			name:     "empty_patch_is_identity",
			original: Input{"typescript": true, "stylistic": map[string]any{"indent": 2}},
			patch:    Input{},
			expected: Input{"typescript": true, "stylistic": map[string]any{"indent": 2}},
		},
		{
			name:     "scalar_patch_wins",
			original: Input{"ngrx": false, "angular": true},
			patch:    Input{"ngrx": true},
			expected: Input{"ngrx": true, "angular": true},
		},
		{
			name:     "nested_maps_merge",
			original: Input{"stylistic": map[string]any{"indent": 2, "quotes": "single"}},
			patch:    Input{"stylistic": map[string]any{"indent": 4}},
			expected: Input{"stylistic": map[string]any{"indent": 4, "quotes": "single"}},
		},
		{
			name:     "arrays_replaced_not_merged",
			original: Input{"ignores": []any{"dist", "coverage"}},
			patch:    Input{"ignores": []any{"tmp"}},
			expected: Input{"ignores": []any{"tmp"}},
		},
		{
			name:     "explicit_nil_clears",
			original: Input{"typescript": false, "stylistic": map[string]any{"indent": 2, "quotes": "single"}},
			patch:    Input{"typescript": nil, "stylistic": map[string]any{"quotes": nil}},
			expected: Input{"typescript": nil, "stylistic": map[string]any{"indent": 2, "quotes": nil}},
		},
		{
			name:     "boolean_replaces_object",
			original: Input{"angular": map[string]any{"prefix": "app"}},
			patch:    Input{"angular": false},
			expected: Input{"angular": false},
		},
		{
			name:     "object_replaces_boolean",
			original: Input{"angular": true},
			patch:    Input{"angular": Input{"prefix": "app"}},
			expected: Input{"angular": map[string]any{"prefix": "app"}},
		},
		{
			name:     "nil_original",
			original: nil,
			patch:    Input{"vitest": true},
			expected: Input{"vitest": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.original, tt.patch)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	original := Input{"stylistic": map[string]any{"indent": 2}}
	patch := Input{"stylistic": map[string]any{"indent": 4}, "vitest": map[string]any{"typecheck": true}}

	merged := Merge(original, patch)
	merged["vitest"].(map[string]any)["typecheck"] = false

	assert.Equal(t, 2, original["stylistic"].(map[string]any)["indent"])
	assert.Equal(t, true, patch["vitest"].(map[string]any)["typecheck"])
}
