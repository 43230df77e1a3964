package options

import "github.com/arthur-debert/flatlint/pkg/types"

// Input is the raw, untyped option set supplied by a caller.
type Input map[string]any

// Feature keys accepted in an Input.
const (
	KeyGitignore  = "gitignore"
	KeyJavaScript = "javascript"
	KeyTypeScript = "typescript"
	KeyStylistic  = "stylistic"
	KeyJSDoc      = "jsdoc"
	KeyRegexp     = "regexp"
	KeyUnicorn    = "unicorn"
	KeyAngular    = "angular"
	KeyNgRx       = "ngrx"
	KeyVitest     = "vitest"
	KeyTailwind   = "tailwindcss"
	KeyJSONC      = "jsonc"
	KeyYAML       = "yaml"
	KeyTOML       = "toml"
	KeyMarkdown   = "markdown"
	KeyFormatters = "formatters"
	KeyPNPM       = "pnpm"
	KeyIgnores    = "ignores"
	KeyIsInEditor = "isInEditor"
)

// Options is the typed form of an Input.
type Options struct {
	Gitignore  Toggle[GitignoreOptions]  `koanf:"gitignore"`
	JavaScript Toggle[JavaScriptOptions] `koanf:"javascript"`
	TypeScript Toggle[TypeScriptOptions] `koanf:"typescript"`
	Stylistic  Toggle[StylisticOptions]  `koanf:"stylistic"`
	JSDoc      Toggle[JSDocOptions]      `koanf:"jsdoc"`
	Regexp     Toggle[RegexpOptions]     `koanf:"regexp"`
	Unicorn    Toggle[UnicornOptions]    `koanf:"unicorn"`
	Angular    Toggle[AngularOptions]    `koanf:"angular"`
	NgRx       Toggle[NgRxOptions]       `koanf:"ngrx"`
	Vitest     Toggle[VitestOptions]     `koanf:"vitest"`
	Tailwind   Toggle[TailwindOptions]   `koanf:"tailwindcss"`
	JSONC      Toggle[JSONCOptions]      `koanf:"jsonc"`
	YAML       Toggle[YAMLOptions]       `koanf:"yaml"`
	TOML       Toggle[TOMLOptions]       `koanf:"toml"`
	Markdown   Toggle[MarkdownOptions]   `koanf:"markdown"`
	Formatters Toggle[FormattersOptions] `koanf:"formatters"`
	PNPM       Toggle[PNPMOptions]       `koanf:"pnpm"`

	// Ignores are extra global ignore globs
	Ignores []string `koanf:"ignores"`
	// IsInEditor overrides runtime editor detection when set
	IsInEditor *bool `koanf:"isInEditor"`
}

// Toggle is a feature switch that may carry feature options.
//
// Set is false when the caller did not mention the feature, in which case
// the composer falls back to probing or a static default.
type Toggle[T any] struct {
	Set     bool `koanf:"set"`
	Enabled bool `koanf:"enabled"`
	Options T    `koanf:"options"`
}

func (Toggle[T]) isToggle() {}

// Or returns the explicit value if one was given, otherwise fallback.
func (t Toggle[T]) Or(fallback bool) bool {
	if t.Set {
		return t.Enabled
	}
	return fallback
}

// Resolve returns the feature's own options. A boolean toggle (or an absent
// one) resolves to the zero value, meaning every default applies; enablement
// must be checked separately.
func Resolve[T any](t Toggle[T]) T {
	return t.Options
}

// ResolveSubOptions is Resolve over a raw Input. true, false and absent all
// yield an empty map; a map value is returned as is.
func ResolveSubOptions(in Input, key string) map[string]any {
	switch v := in[key].(type) {
	case map[string]any:
		return v
	case Input:
		return v
	default:
		return map[string]any{}
	}
}

type GitignoreOptions struct {
	// Files are the ignore files to read, relative to the root
	Files []string `koanf:"files"`
	// Strict fails when a listed file is missing instead of skipping it
	Strict bool `koanf:"strict"`
}

type JavaScriptOptions struct {
	Globals   map[string]string `koanf:"globals"`
	Overrides types.Rules       `koanf:"overrides"`
}

type TypeScriptOptions struct {
	Files []string `koanf:"files"`
	// TSConfigPath enables type-aware rules when set
	TSConfigPath       string         `koanf:"tsconfigPath"`
	ParserOptions      map[string]any `koanf:"parserOptions"`
	NamingConvention   []any          `koanf:"namingConvention"`
	Overrides          types.Rules    `koanf:"overrides"`
	OverridesTypeAware types.Rules    `koanf:"overridesTypeAware"`
}

type StylisticOptions struct {
	// Indent is a number of spaces or "tab"
	Indent    any         `koanf:"indent"`
	Quotes    string      `koanf:"quotes"`
	Semi      *bool       `koanf:"semi"`
	JSX       *bool       `koanf:"jsx"`
	Overrides types.Rules `koanf:"overrides"`
}

// WithDefaults fills the unset stylistic settings.
func (s StylisticOptions) WithDefaults() StylisticOptions {
	if s.Indent == nil {
		s.Indent = 2
	}
	if s.Quotes == "" {
		s.Quotes = "single"
	}
	if s.Semi == nil {
		semi := false
		s.Semi = &semi
	}
	if s.JSX == nil {
		jsx := true
		s.JSX = &jsx
	}
	return s
}

type JSDocOptions struct {
	Overrides types.Rules `koanf:"overrides"`
}

type RegexpOptions struct {
	// Level is the severity recommended rules are raised to
	Level     string      `koanf:"level"`
	Overrides types.Rules `koanf:"overrides"`
}

type UnicornOptions struct {
	AllRecommended bool        `koanf:"allRecommended"`
	Overrides      types.Rules `koanf:"overrides"`
}

type AngularOptions struct {
	Files         []string `koanf:"files"`
	TemplateFiles []string `koanf:"templateFiles"`
	// Prefix is the required component and directive selector prefix
	Prefix string `koanf:"prefix"`
	// Templates toggles linting of HTML templates, on by default
	Templates         *bool       `koanf:"templates"`
	Overrides         types.Rules `koanf:"overrides"`
	TemplateOverrides types.Rules `koanf:"templateOverrides"`
}

type NgRxOptions struct {
	Files     []string    `koanf:"files"`
	Signals   bool        `koanf:"signals"`
	Overrides types.Rules `koanf:"overrides"`
}

type VitestOptions struct {
	Files     []string    `koanf:"files"`
	Typecheck bool        `koanf:"typecheck"`
	Overrides types.Rules `koanf:"overrides"`
}

type TailwindOptions struct {
	Files     []string    `koanf:"files"`
	Config    string      `koanf:"config"`
	Overrides types.Rules `koanf:"overrides"`
}

type JSONCOptions struct {
	Files     []string    `koanf:"files"`
	Overrides types.Rules `koanf:"overrides"`
}

type YAMLOptions struct {
	Files     []string    `koanf:"files"`
	Overrides types.Rules `koanf:"overrides"`
}

type TOMLOptions struct {
	Files     []string    `koanf:"files"`
	Overrides types.Rules `koanf:"overrides"`
}

type MarkdownOptions struct {
	Files []string `koanf:"files"`
	// Slidev adds a fragment for slide decks written in markdown
	Slidev      bool        `koanf:"slidev"`
	SlidevFiles []string    `koanf:"slidevFiles"`
	Overrides   types.Rules `koanf:"overrides"`
}

type FormattersOptions struct {
	CSS             bool           `koanf:"css"`
	HTML            bool           `koanf:"html"`
	Markdown        bool           `koanf:"markdown"`
	GraphQL         bool           `koanf:"graphql"`
	PrettierOptions map[string]any `koanf:"prettierOptions"`
}

type PNPMOptions struct {
	Catalogs  bool        `koanf:"catalogs"`
	Overrides types.Rules `koanf:"overrides"`
}
