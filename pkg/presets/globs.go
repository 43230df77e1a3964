package presets

// Source and data file globs shared by the builders.
const (
	GlobSrcExt = "?([cm])[jt]s?(x)"
	GlobSrc    = "**/*." + GlobSrcExt
	GlobJS     = "**/*.?([cm])js"
	GlobJSX    = "**/*.?([cm])jsx"
	GlobTS     = "**/*.?([cm])ts"
	GlobTSX    = "**/*.?([cm])tsx"

	GlobStyle   = "**/*.{c,le,sc}ss"
	GlobCSS     = "**/*.css"
	GlobPostCSS = "**/*.{p,post}css"
	GlobLess    = "**/*.less"
	GlobSCSS    = "**/*.scss"

	GlobJSON  = "**/*.json"
	GlobJSON5 = "**/*.json5"
	GlobJSONC = "**/*.jsonc"

	GlobMarkdown         = "**/*.md"
	GlobMarkdownInMD     = "**/*.md/*.md"
	GlobMarkdownCode     = GlobMarkdown + "/" + GlobSrc
	GlobSlidev           = "**/slides.md"
	GlobYAML             = "**/*.y?(a)ml"
	GlobTOML             = "**/*.toml"
	GlobHTML             = "**/*.htm?(l)"
	GlobGraphQL          = "**/*.{g,graph}ql"
	GlobAngularComponent = "**/*.component.ts"
)

// GlobTests matches test and benchmark files.
var GlobTests = []string{
	"**/__tests__/**/*." + GlobSrcExt,
	"**/*.spec." + GlobSrcExt,
	"**/*.test." + GlobSrcExt,
	"**/*.bench." + GlobSrcExt,
	"**/*.benchmark." + GlobSrcExt,
}

// GlobExclude is ignored everywhere.
var GlobExclude = []string{
	"**/node_modules",
	"**/dist",
	"**/package-lock.json",
	"**/yarn.lock",
	"**/pnpm-lock.yaml",
	"**/bun.lockb",

	"**/output",
	"**/coverage",
	"**/temp",
	"**/.temp",
	"**/tmp",
	"**/.tmp",
	"**/.history",
	"**/.vitepress/cache",
	"**/.angular",
	"**/.nx",
	"**/.cache",
	"**/.output",
	"**/.vite-inspect",
	"**/.yarn",
	"**/vite.config.*.timestamp-*",

	"**/CHANGELOG*.md",
	"**/*.min.*",
	"**/LICENSE*",
	"**/__snapshots__",
	"**/auto-import?(s).d.ts",
	"**/components.d.ts",
}
