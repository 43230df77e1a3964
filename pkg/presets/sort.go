package presets

import "github.com/arthur-debert/flatlint/pkg/types"

var packageJSONKeyOrder = []any{
	"publisher", "name", "displayName", "type", "version", "private",
	"packageManager", "description", "author", "contributors", "license",
	"funding", "homepage", "repository", "bugs", "keywords", "categories",
	"sideEffects", "imports", "exports", "main", "module", "unpkg", "jsdelivr",
	"types", "typesVersions", "bin", "icon", "files", "engines",
	"activationEvents", "contributes", "scripts", "peerDependencies",
	"peerDependenciesMeta", "dependencies", "optionalDependencies",
	"devDependencies", "pnpm", "overrides", "resolutions", "husky",
	"simple-git-hooks", "lint-staged", "eslintConfig",
}

var tsconfigKeyOrder = []any{
	"extends", "compilerOptions", "references", "files", "include", "exclude",
}

var compilerOptionsKeyOrder = []any{
	"incremental", "composite", "tsBuildInfoFile", "target", "jsx", "lib",
	"experimentalDecorators", "emitDecoratorMetadata", "useDefineForClassFields",
	"module", "rootDir", "moduleResolution", "baseUrl", "paths", "rootDirs",
	"typeRoots", "types", "allowJs", "checkJs", "resolveJsonModule",
	"noEmit", "declaration", "declarationMap", "outDir", "sourceMap",
	"removeComments", "importHelpers", "isolatedModules",
	"allowSyntheticDefaultImports", "esModuleInterop",
	"forceConsistentCasingInFileNames", "strict", "noImplicitAny",
	"strictNullChecks", "noUnusedLocals", "noUnusedParameters",
	"noImplicitReturns", "noFallthroughCasesInSwitch",
	"noUncheckedIndexedAccess", "skipLibCheck",
}

// SortPackageJSON orders the keys of package.json files.
func SortPackageJSON() []types.RuleFragment {
	return []types.RuleFragment{{
		Name:  Name("sort", "package-json"),
		Files: []string{"**/package.json"},
		Rules: types.Rules{
			"jsonc/sort-array-values": ruleError(map[string]any{
				"order":       map[string]any{"type": "asc"},
				"pathPattern": "^files$",
			}),
			"jsonc/sort-keys": ruleError(
				map[string]any{"order": packageJSONKeyOrder, "pathPattern": "^$"},
				map[string]any{"order": map[string]any{"type": "asc"}, "pathPattern": "^(?:dev|peer|optional|bundled)?[Dd]ependencies(Meta)?$"},
				map[string]any{"order": map[string]any{"type": "asc"}, "pathPattern": "^(?:resolutions|overrides|pnpm.overrides)$"},
				map[string]any{"order": []any{"types", "import", "require", "default"}, "pathPattern": "^exports.*$"},
			),
		},
	}}
}

// SortTSConfig orders the keys of tsconfig files.
func SortTSConfig() []types.RuleFragment {
	return []types.RuleFragment{{
		Name:  Name("sort", "tsconfig-json"),
		Files: []string{"**/tsconfig.json", "**/tsconfig.*.json"},
		Rules: types.Rules{
			"jsonc/sort-keys": ruleError(
				map[string]any{"order": tsconfigKeyOrder, "pathPattern": "^$"},
				map[string]any{"order": compilerOptionsKeyOrder, "pathPattern": "^compilerOptions$"},
			),
		},
	}}
}
