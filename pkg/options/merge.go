package options

import (
	"github.com/knadh/koanf/maps"
)

// Merge returns a new Input with patch deep-merged over original. Neither
// argument is modified.
//
// When both sides hold a mapping, keys are merged recursively. Any other
// patch value wins outright: arrays are replaced, not merged, and an explicit
// nil clears the original value so the feature falls back to detection.
func Merge(original, patch Input) Input {
	out := maps.Copy(normalize(original))
	if out == nil {
		out = map[string]any{}
	}
	src := maps.Copy(normalize(patch))
	maps.Merge(src, out)
	return Input(out)
}

// normalize rewrites nested mappings to map[string]any so merging and
// decoding see a single map type.
func normalize(in Input) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case Input:
		return normalize(val)
	case map[string]any:
		return normalize(val)
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, item := range val {
			if s, ok := k.(string); ok {
				m[s] = normalizeValue(item)
			}
		}
		return m
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return v
	}
}
