package config

import (
	"strings"

	"github.com/arthur-debert/flatlint/pkg/errors"
	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/knadh/koanf/maps"
	"gopkg.in/yaml.v3"
)

// ParseSet turns "key.path=value" pairs into a nested Input. Values are
// read as YAML, so "true", "4", "[a, b]" and "{indent: 4}" keep their types.
// Each unset key becomes an explicit nil, which clears the setting when
// merged.
func ParseSet(set []string, unset []string) (options.Input, error) {
	flat := make(map[string]interface{}, len(set)+len(unset))
	for _, pair := range set {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "expected key=value, got %q", pair).
				WithDetail("argument", pair)
		}

		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid value for %s", key).
				WithDetail("argument", pair)
		}
		if value == nil && raw != "" && raw != "null" && raw != "~" {
			value = raw
		}
		flat[key] = value
	}
	for _, key := range unset {
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, errors.New(errors.ErrInvalidInput, "empty key to unset")
		}
		flat[key] = nil
	}
	if len(flat) == 0 {
		return options.Input{}, nil
	}

	nested := maps.Unflatten(flat, ".")
	return options.Input(canonicalKeys(nested)), nil
}
