package types

import (
	"encoding/json"
	"fmt"
)

// Severity is the level a rule is reported at.
type Severity string

const (
	Off   Severity = "off"
	Warn  Severity = "warn"
	Error Severity = "error"
)

// RuleEntry is a rule setting: a severity plus optional rule options.
type RuleEntry struct {
	Severity Severity
	Options  []any
}

// Rules maps rule identifiers (plugin-prefixed) to their settings.
type Rules map[string]RuleEntry

// Rule builds a RuleEntry.
func Rule(severity Severity, options ...any) RuleEntry {
	return RuleEntry{Severity: severity, Options: options}
}

// Value returns the plain representation consumed by lint engines: the bare
// severity when there are no options, otherwise [severity, options...].
func (r RuleEntry) Value() any {
	if len(r.Options) == 0 {
		return string(r.Severity)
	}
	out := make([]any, 0, len(r.Options)+1)
	out = append(out, string(r.Severity))
	return append(out, r.Options...)
}

// MarshalJSON implements json.Marshaler
func (r RuleEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Value())
}

// MarshalYAML implements yaml.Marshaler
func (r RuleEntry) MarshalYAML() (interface{}, error) {
	return r.Value(), nil
}

// ParseRuleEntry accepts the forms a user may write a rule setting in:
// "error", 2, or ["error", {...}].
func ParseRuleEntry(v any) (RuleEntry, error) {
	switch val := v.(type) {
	case RuleEntry:
		return val, nil
	case []any:
		if len(val) == 0 {
			return RuleEntry{}, fmt.Errorf("empty rule setting")
		}
		sev, err := parseSeverity(val[0])
		if err != nil {
			return RuleEntry{}, err
		}
		return RuleEntry{Severity: sev, Options: append([]any(nil), val[1:]...)}, nil
	case []string:
		items := make([]any, len(val))
		for i, s := range val {
			items[i] = s
		}
		return ParseRuleEntry(items)
	default:
		sev, err := parseSeverity(val)
		if err != nil {
			return RuleEntry{}, err
		}
		return RuleEntry{Severity: sev}, nil
	}
}

func parseSeverity(v any) (Severity, error) {
	switch val := v.(type) {
	case string:
		switch Severity(val) {
		case Off, Warn, Error:
			return Severity(val), nil
		case "0":
			return Off, nil
		case "1":
			return Warn, nil
		case "2":
			return Error, nil
		}
	case Severity:
		return parseSeverity(string(val))
	case int:
		return parseSeverity(fmt.Sprint(val))
	case int64:
		return parseSeverity(fmt.Sprint(val))
	case float64:
		return parseSeverity(fmt.Sprint(int(val)))
	}
	return "", fmt.Errorf("invalid rule severity %v", v)
}

// Merge returns a new Rules with other layered over r.
func (r Rules) Merge(other Rules) Rules {
	if r == nil && other == nil {
		return nil
	}
	out := make(Rules, len(r)+len(other))
	for k, v := range r {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Values converts the rules into their plain representation.
func (r Rules) Values() map[string]any {
	out := make(map[string]any, len(r))
	for k, v := range r {
		out[k] = v.Value()
	}
	return out
}
