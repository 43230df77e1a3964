package options

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/arthur-debert/flatlint/pkg/errors"
	"github.com/arthur-debert/flatlint/pkg/types"
	"github.com/go-viper/mapstructure/v2"
)

type toggle interface{ isToggle() }

var (
	toggleType    = reflect.TypeOf((*toggle)(nil)).Elem()
	ruleEntryType = reflect.TypeOf(types.RuleEntry{})
)

// Decode converts a raw Input into typed Options.
func Decode(in Input) (*Options, error) {
	var out Options
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		TagName:          "koanf",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			toggleHookFunc(),
			ruleEntryHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to build options decoder")
	}
	if err := decoder.Decode(map[string]any(normalize(in))); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid options")
	}
	return &out, nil
}

// toggleHookFunc lets a feature be written as a bool, a bool-like string or
// an options object.
func toggleHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.Struct || !t.Implements(toggleType) {
			return data, nil
		}
		switch v := data.(type) {
		case bool:
			return map[string]any{"set": true, "enabled": v}, nil
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return nil, errors.Newf(errors.ErrConfigParse, "expected a boolean or an object, got %q", v)
			}
			return map[string]any{"set": true, "enabled": b}, nil
		case map[string]any:
			return map[string]any{"set": true, "enabled": true, "options": v}, nil
		}
		return data, nil
	}
}

func ruleEntryHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != ruleEntryType {
			return data, nil
		}
		entry, err := types.ParseRuleEntry(data)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid rule override")
		}
		return entry, nil
	}
}
