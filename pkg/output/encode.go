package output

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/arthur-debert/flatlint/pkg/compose"
	"github.com/arthur-debert/flatlint/pkg/errors"
	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Encode writes cfg in the given format.
func Encode(w io.Writer, cfg compose.Config, format Format) error {
	var err error
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(cfg)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(cfg)
		if err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		err = enc.Encode(plainDocument(cfg))
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown format: %s", format)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrOutput, "failed to encode %s", format)
	}
	return nil
}

// plainDocument converts cfg to maps and slices. TOML has no null, so nil
// values are left out.
func plainDocument(cfg compose.Config) map[string]any {
	fragments := make([]any, 0, len(cfg.Fragments))
	for _, f := range cfg.Fragments {
		fragments = append(fragments, plainFragment(f))
	}
	doc := map[string]any{"fragments": fragments}
	if cfg.Tagged() {
		doc["options"] = dropNil(map[string]any(cfg.Options))
	}
	return doc
}

func plainFragment(f types.RuleFragment) map[string]any {
	out := map[string]any{"name": f.Name}
	if len(f.Files) > 0 {
		out["files"] = f.Files
	}
	if len(f.Ignores) > 0 {
		out["ignores"] = f.Ignores
	}
	if len(f.Plugins) > 0 {
		out["plugins"] = f.Plugins
	}
	if f.Language != "" {
		out["language"] = f.Language
	}
	if lo := f.LanguageOptions; lo != nil {
		m := map[string]any{}
		if lo.Parser != "" {
			m["parser"] = lo.Parser
		}
		if len(lo.ParserOptions) > 0 {
			m["parserOptions"] = dropNil(lo.ParserOptions)
		}
		if lo.SourceType != "" {
			m["sourceType"] = lo.SourceType
		}
		if lo.EcmaVersion != "" {
			m["ecmaVersion"] = lo.EcmaVersion
		}
		if len(lo.Globals) > 0 {
			m["globals"] = lo.Globals
		}
		out["languageOptions"] = m
	}
	if f.Processor != "" {
		out["processor"] = f.Processor
	}
	if len(f.Settings) > 0 {
		out["settings"] = dropNil(f.Settings)
	}
	if len(f.Rules) > 0 {
		rules := make(map[string]any, len(f.Rules))
		for name, entry := range f.Rules {
			rules[name] = entry.Value()
		}
		out["rules"] = rules
	}
	return out
}

func dropNil(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch val := v.(type) {
		case nil:
		case map[string]any:
			out[k] = dropNil(val)
		case options.Input:
			out[k] = dropNil(val)
		default:
			out[k] = v
		}
	}
	return out
}

// taggedDocument is the part of an encoded config ReadTag needs.
type taggedDocument struct {
	Options map[string]any `yaml:"options" toml:"options"`
}

// ReadTag reads the options a config was tagged with from its encoded form.
// A config written without a tag yields ErrMissingTag.
func ReadTag(r io.Reader, format Format) (options.Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to read config")
	}

	var doc taggedDocument
	switch format {
	case FormatTOML:
		err = toml.NewDecoder(bytes.NewReader(data)).Decode(&doc)
	default:
		// JSON documents are valid YAML
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s config", format)
	}
	if doc.Options == nil {
		return nil, errors.New(errors.ErrMissingTag, "config carries no options tag")
	}
	return options.Input(doc.Options), nil
}
