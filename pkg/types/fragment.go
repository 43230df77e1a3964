package types

// LanguageOptions mirrors the languageOptions block of a flat config object.
type LanguageOptions struct {
	Parser        string            `json:"parser,omitempty" yaml:"parser,omitempty" toml:"parser,omitempty"`
	ParserOptions map[string]any    `json:"parserOptions,omitempty" yaml:"parserOptions,omitempty" toml:"parserOptions,omitempty"`
	SourceType    string            `json:"sourceType,omitempty" yaml:"sourceType,omitempty" toml:"sourceType,omitempty"`
	EcmaVersion   string            `json:"ecmaVersion,omitempty" yaml:"ecmaVersion,omitempty" toml:"ecmaVersion,omitempty"`
	Globals       map[string]string `json:"globals,omitempty" yaml:"globals,omitempty" toml:"globals,omitempty"`
}

// RuleFragment is one named unit of a flat lint configuration: a file
// selector plus the rules, plugins and language settings that apply to it.
//
// A fragment that carries nothing but Ignores acts as a global ignore for the
// downstream engine.
type RuleFragment struct {
	Name            string           `json:"name" yaml:"name" toml:"name"`
	Files           []string         `json:"files,omitempty" yaml:"files,omitempty" toml:"files,omitempty"`
	Ignores         []string         `json:"ignores,omitempty" yaml:"ignores,omitempty" toml:"ignores,omitempty"`
	Plugins         []string         `json:"plugins,omitempty" yaml:"plugins,omitempty" toml:"plugins,omitempty"`
	Language        string           `json:"language,omitempty" yaml:"language,omitempty" toml:"language,omitempty"`
	LanguageOptions *LanguageOptions `json:"languageOptions,omitempty" yaml:"languageOptions,omitempty" toml:"languageOptions,omitempty"`
	Processor       string           `json:"processor,omitempty" yaml:"processor,omitempty" toml:"processor,omitempty"`
	Settings        map[string]any   `json:"settings,omitempty" yaml:"settings,omitempty" toml:"settings,omitempty"`
	Rules           Rules            `json:"rules,omitempty" yaml:"rules,omitempty" toml:"rules,omitempty"`
}

// IsGlobalIgnore reports whether the fragment only lists ignore patterns.
func (f RuleFragment) IsGlobalIgnore() bool {
	return len(f.Ignores) > 0 &&
		len(f.Files) == 0 &&
		len(f.Plugins) == 0 &&
		len(f.Rules) == 0 &&
		f.Language == "" &&
		f.LanguageOptions == nil &&
		f.Processor == "" &&
		len(f.Settings) == 0
}

// Clone returns a copy whose slices and maps can be modified without
// touching the original. Nested option values are shared.
func (f RuleFragment) Clone() RuleFragment {
	out := f
	out.Files = append([]string(nil), f.Files...)
	out.Ignores = append([]string(nil), f.Ignores...)
	out.Plugins = append([]string(nil), f.Plugins...)
	if f.LanguageOptions != nil {
		lo := *f.LanguageOptions
		out.LanguageOptions = &lo
	}
	if f.Settings != nil {
		out.Settings = make(map[string]any, len(f.Settings))
		for k, v := range f.Settings {
			out.Settings[k] = v
		}
	}
	out.Rules = f.Rules.Merge(nil)
	return out
}

// FragmentNames returns the names of the fragments in order.
func FragmentNames(fragments []RuleFragment) []string {
	names := make([]string, 0, len(fragments))
	for _, f := range fragments {
		names = append(names, f.Name)
	}
	return names
}

// FindFragment returns the index of the fragment with the given name, or -1.
func FindFragment(fragments []RuleFragment, name string) int {
	for i, f := range fragments {
		if f.Name == name {
			return i
		}
	}
	return -1
}
