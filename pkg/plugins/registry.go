// Package plugins lists the lint plugins flatlint knows how to wire.
//
// Descriptors are compiled in; nothing here touches the filesystem. The
// probe package decides whether a plugin's package is actually installed.
package plugins

import "sort"

// Descriptor identifies a plugin by the namespace its rules use.
type Descriptor struct {
	// Name is the rule namespace, e.g. "ts" for "ts/no-explicit-any"
	Name string
	// Package is the npm package providing the plugin
	Package string
	// Parser is the parser package the plugin's files need, if any
	Parser string
}

// Plugin names
const (
	Comments      = "eslint-comments"
	Node          = "node"
	Import        = "import"
	UnusedImports = "unused-imports"
	Perfectionist = "perfectionist"
	JSDoc         = "jsdoc"
	Style         = "style"
	TypeScript    = "ts"
	Regexp        = "regexp"
	Unicorn       = "unicorn"
	Angular       = "angular"
	AngularTmpl   = "angular-template"
	NgRx          = "ngrx"
	Test          = "test"
	Tailwind      = "tailwindcss"
	JSONC         = "jsonc"
	YAML          = "yaml"
	TOML          = "toml"
	Markdown      = "markdown"
	Format        = "format"
	PNPM          = "pnpm"
)

var registry = map[string]Descriptor{}

func register(d Descriptor) {
	registry[d.Name] = d
}

func init() {
	register(Descriptor{Name: Comments, Package: "@eslint-community/eslint-plugin-eslint-comments"})
	register(Descriptor{Name: Node, Package: "eslint-plugin-n"})
	register(Descriptor{Name: Import, Package: "eslint-plugin-import-x"})
	register(Descriptor{Name: UnusedImports, Package: "eslint-plugin-unused-imports"})
	register(Descriptor{Name: Perfectionist, Package: "eslint-plugin-perfectionist"})
	register(Descriptor{Name: JSDoc, Package: "eslint-plugin-jsdoc"})
	register(Descriptor{Name: Style, Package: "@stylistic/eslint-plugin"})
	register(Descriptor{Name: TypeScript, Package: "@typescript-eslint/eslint-plugin", Parser: "@typescript-eslint/parser"})
	register(Descriptor{Name: Regexp, Package: "eslint-plugin-regexp"})
	register(Descriptor{Name: Unicorn, Package: "eslint-plugin-unicorn"})
	register(Descriptor{Name: Angular, Package: "@angular-eslint/eslint-plugin"})
	register(Descriptor{Name: AngularTmpl, Package: "@angular-eslint/eslint-plugin-template", Parser: "@angular-eslint/template-parser"})
	register(Descriptor{Name: NgRx, Package: "@ngrx/eslint-plugin"})
	register(Descriptor{Name: Test, Package: "@vitest/eslint-plugin"})
	register(Descriptor{Name: Tailwind, Package: "eslint-plugin-tailwindcss"})
	register(Descriptor{Name: JSONC, Package: "eslint-plugin-jsonc", Parser: "jsonc-eslint-parser"})
	register(Descriptor{Name: YAML, Package: "eslint-plugin-yml", Parser: "yaml-eslint-parser"})
	register(Descriptor{Name: TOML, Package: "eslint-plugin-toml", Parser: "toml-eslint-parser"})
	register(Descriptor{Name: Markdown, Package: "@eslint/markdown"})
	register(Descriptor{Name: Format, Package: "eslint-plugin-format", Parser: "eslint-plugin-format/parser-plain"})
	register(Descriptor{Name: PNPM, Package: "eslint-plugin-pnpm"})
}

// Lookup returns the descriptor registered under name.
func Lookup(name string) (Descriptor, bool) {
	d, ok := registry[name]
	return d, ok
}

// Names returns every registered plugin name, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
