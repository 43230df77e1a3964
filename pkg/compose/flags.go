package compose

import (
	"github.com/arthur-debert/flatlint/pkg/errors"
	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/types"
)

// ProbedPackages maps each detectable feature to the package whose presence
// turns it on.
var ProbedPackages = map[string]string{
	options.KeyTypeScript: "typescript",
	options.KeyAngular:    "@angular/core",
	options.KeyNgRx:       "@ngrx/store",
	options.KeyVitest:     "vitest",
	options.KeyTailwind:   "tailwindcss",
}

// StaticDefaults are used for features that are neither set nor probed.
var StaticDefaults = map[string]bool{
	options.KeyGitignore:  true,
	options.KeyStylistic:  true,
	options.KeyJSDoc:      true,
	options.KeyRegexp:     true,
	options.KeyUnicorn:    true,
	options.KeyJSONC:      true,
	options.KeyYAML:       true,
	options.KeyTOML:       true,
	options.KeyMarkdown:   true,
	options.KeyFormatters: false,
	options.KeyPNPM:       false,
}

// probeScope lists the features a variant is allowed to probe for.
type probeScope []string

var (
	probeAll       = probeScope{options.KeyTypeScript, options.KeyAngular, options.KeyNgRx, options.KeyVitest, options.KeyTailwind}
	probeWorkspace = probeScope{options.KeyTypeScript}
)

func (s probeScope) has(key string) bool {
	for _, k := range s {
		if k == key {
			return true
		}
	}
	return false
}

// Features is the resolved on/off state of every feature.
type Features struct {
	Gitignore  bool
	Stylistic  bool
	JSDoc      bool
	TypeScript bool
	Regexp     bool
	Unicorn    bool
	Angular    bool
	NgRx       bool
	Vitest     bool
	Tailwind   bool
	JSONC      bool
	YAML       bool
	TOML       bool
	Markdown   bool
	Formatters bool
	PNPM       bool
	InEditor   bool
}

type resolver struct {
	caps  types.Capabilities
	scope probeScope
}

// flag resolves one feature: explicit value, else probe, else static default.
// The second result reports whether the value came from the caller.
func flag[T any](r resolver, key string, t options.Toggle[T]) (bool, bool) {
	if t.Set {
		return t.Enabled, true
	}
	if pkg, ok := ProbedPackages[key]; ok {
		if r.scope.has(key) {
			return r.caps.HasPackage(pkg), false
		}
		return false, false
	}
	return StaticDefaults[key], false
}

func resolveFeatures(opts *options.Options, caps types.Capabilities, scope probeScope, rt types.RuntimeContext) (Features, error) {
	r := resolver{caps: caps, scope: scope}
	f := Features{}

	f.Gitignore, _ = flag(r, options.KeyGitignore, opts.Gitignore)
	f.Stylistic, _ = flag(r, options.KeyStylistic, opts.Stylistic)
	f.JSDoc, _ = flag(r, options.KeyJSDoc, opts.JSDoc)
	f.TypeScript, _ = flag(r, options.KeyTypeScript, opts.TypeScript)
	f.Regexp, _ = flag(r, options.KeyRegexp, opts.Regexp)
	f.Unicorn, _ = flag(r, options.KeyUnicorn, opts.Unicorn)
	f.Angular, _ = flag(r, options.KeyAngular, opts.Angular)
	f.Vitest, _ = flag(r, options.KeyVitest, opts.Vitest)
	f.Tailwind, _ = flag(r, options.KeyTailwind, opts.Tailwind)
	f.JSONC, _ = flag(r, options.KeyJSONC, opts.JSONC)
	f.YAML, _ = flag(r, options.KeyYAML, opts.YAML)
	f.TOML, _ = flag(r, options.KeyTOML, opts.TOML)
	f.Markdown, _ = flag(r, options.KeyMarkdown, opts.Markdown)
	f.Formatters, _ = flag(r, options.KeyFormatters, opts.Formatters)
	f.PNPM, _ = flag(r, options.KeyPNPM, opts.PNPM)

	ngrx, explicit := flag(r, options.KeyNgRx, opts.NgRx)
	if ngrx && !f.Angular {
		if explicit {
			return Features{}, errors.New(errors.ErrConfigDependency, "ngrx requires angular to be enabled").
				WithDetail("feature", options.KeyNgRx).
				WithDetail("requires", options.KeyAngular)
		}
		ngrx = false
	}
	f.NgRx = ngrx

	f.InEditor = rt.InEditor
	if opts.IsInEditor != nil {
		f.InEditor = *opts.IsInEditor
	}
	return f, nil
}
