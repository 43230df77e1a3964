package compose

import (
	"context"

	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/presets"
	"github.com/arthur-debert/flatlint/pkg/types"
)

// fixed wraps a builder that cannot fail.
func fixed(frags []types.RuleFragment) func(context.Context) ([]types.RuleFragment, error) {
	return func(context.Context) ([]types.RuleFragment, error) {
		return frags, nil
	}
}

// steps lists the enabled builders in priority order.
func (c *Composer) steps(opts *options.Options, f Features, loader types.PluginLoader) []step {
	var style *options.StylisticOptions
	if f.Stylistic {
		s := options.Resolve(opts.Stylistic)
		style = &s
	}

	var steps []step
	add := func(name string, build func(context.Context) ([]types.RuleFragment, error)) {
		steps = append(steps, step{name: name, build: build})
	}

	if f.Gitignore {
		add("gitignore", func(context.Context) ([]types.RuleFragment, error) {
			return presets.Gitignore(c.fs, c.runtime.Cwd, options.Resolve(opts.Gitignore))
		})
	}
	add("ignores", fixed(presets.Ignores(opts.Ignores)))
	add("javascript", func(ctx context.Context) ([]types.RuleFragment, error) {
		return presets.JavaScript(ctx, loader, options.Resolve(opts.JavaScript), f.InEditor)
	})
	add("comments", func(ctx context.Context) ([]types.RuleFragment, error) {
		return presets.Comments(ctx, loader)
	})
	add("node", func(ctx context.Context) ([]types.RuleFragment, error) {
		return presets.Node(ctx, loader)
	})
	add("imports", func(ctx context.Context) ([]types.RuleFragment, error) {
		return presets.Imports(ctx, loader, f.Stylistic)
	})
	add("perfectionist", func(ctx context.Context) ([]types.RuleFragment, error) {
		return presets.Perfectionist(ctx, loader)
	})
	if f.JSDoc {
		add("jsdoc", func(ctx context.Context) ([]types.RuleFragment, error) {
			return presets.JSDoc(ctx, loader, options.Resolve(opts.JSDoc), f.Stylistic)
		})
	}
	if f.Stylistic {
		add("stylistic", func(ctx context.Context) ([]types.RuleFragment, error) {
			return presets.Stylistic(ctx, loader, *style)
		})
	}
	if f.TypeScript {
		add("typescript", func(ctx context.Context) ([]types.RuleFragment, error) {
			return presets.TypeScript(ctx, loader, options.Resolve(opts.TypeScript))
		})
	}
	if f.Regexp {
		add("regexp", func(ctx context.Context) ([]types.RuleFragment, error) {
			return presets.Regexp(ctx, loader, options.Resolve(opts.Regexp))
		})
	}
	if f.Unicorn {
		add("unicorn", func(ctx context.Context) ([]types.RuleFragment, error) {
			return presets.Unicorn(ctx, loader, options.Resolve(opts.Unicorn))
		})
	}
	steps = append(steps, c.frameworkSteps(opts, f, loader)...)
	if f.JSONC {
		add("jsonc", func(ctx context.Context) ([]types.RuleFragment, error) {
			return presets.JSONC(ctx, loader, options.Resolve(opts.JSONC), style)
		})
		add("sort package.json", fixed(presets.SortPackageJSON()))
		add("sort tsconfig", fixed(presets.SortTSConfig()))
	}
	if f.PNPM {
		add("pnpm", func(ctx context.Context) ([]types.RuleFragment, error) {
			return presets.PNPM(ctx, loader, options.Resolve(opts.PNPM))
		})
	}
	if f.YAML {
		add("yaml", func(ctx context.Context) ([]types.RuleFragment, error) {
			return presets.YAML(ctx, loader, options.Resolve(opts.YAML), style)
		})
	}
	if f.TOML {
		add("toml", func(ctx context.Context) ([]types.RuleFragment, error) {
			return presets.TOML(ctx, loader, options.Resolve(opts.TOML), style)
		})
	}
	if f.Markdown {
		add("markdown", func(ctx context.Context) ([]types.RuleFragment, error) {
			return presets.Markdown(ctx, loader, options.Resolve(opts.Markdown))
		})
	}
	if f.Formatters {
		add("formatters", func(ctx context.Context) ([]types.RuleFragment, error) {
			return presets.Formatters(ctx, loader, options.Resolve(opts.Formatters), options.Resolve(opts.Stylistic))
		})
	}
	return steps
}

// frameworkSteps lists the framework and test builders, the part of a
// configuration that differs between projects of one workspace.
func (c *Composer) frameworkSteps(opts *options.Options, f Features, loader types.PluginLoader) []step {
	var steps []step
	if f.Angular {
		steps = append(steps, step{name: "angular", build: func(ctx context.Context) ([]types.RuleFragment, error) {
			return presets.Angular(ctx, loader, options.Resolve(opts.Angular))
		}})
	}
	if f.NgRx {
		steps = append(steps, step{name: "ngrx", build: func(ctx context.Context) ([]types.RuleFragment, error) {
			return presets.NgRx(ctx, loader, options.Resolve(opts.NgRx))
		}})
	}
	if f.Vitest {
		steps = append(steps, step{name: "vitest", build: func(ctx context.Context) ([]types.RuleFragment, error) {
			return presets.Vitest(ctx, loader, options.Resolve(opts.Vitest), f.InEditor)
		}})
	}
	if f.Tailwind {
		steps = append(steps, step{name: "tailwindcss", build: func(ctx context.Context) ([]types.RuleFragment, error) {
			return presets.Tailwind(ctx, loader, options.Resolve(opts.Tailwind))
		}})
	}
	return steps
}
