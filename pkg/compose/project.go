package compose

import (
	"context"
	"path"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/flatlint/pkg/errors"
	"github.com/arthur-debert/flatlint/pkg/logging"
	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/presets"
	"github.com/arthur-debert/flatlint/pkg/probe"
	"github.com/arthur-debert/flatlint/pkg/types"
)

// ProjectInput describes one project inside a workspace.
type ProjectInput struct {
	// Root is the project directory, relative to the workspace root
	Root string `koanf:"root"`
	// Options are the project's own feature options
	Options options.Input `koanf:"options"`
}

// Project extends a tagged workspace configuration with the framework and
// test fragments of one project. Features are probed in the project
// directory. The workspace stylistic settings and TypeScript naming
// convention carry over unless the project sets its own.
//
// Project fragments only match files under Root and their names end in
// "@<root>". The result is the base fragments, then the project fragments,
// then extra. It is not tagged.
func (c *Composer) Project(ctx context.Context, base Config, project ProjectInput, extra ...types.RuleFragment) (Config, error) {
	defer logging.LogOperationStart(c.logger, "compose project")()

	if !base.Tagged() {
		return Config{}, errors.New(errors.ErrMissingTag, "project configs need a tagged workspace config")
	}
	root := cleanRoot(project.Root)
	if root == "" {
		return Config{}, errors.Newf(errors.ErrInvalidInput, "invalid project root %q", project.Root).
			WithDetail("root", project.Root)
	}

	opts, err := options.Decode(projectInput(base.Options, project.Options))
	if err != nil {
		return Config{}, err
	}
	if len(opts.TypeScript.Options.NamingConvention) == 0 {
		opts.TypeScript.Options.NamingConvention = workspaceNaming(base.Options)
	}

	caps := c.caps
	if scoper, ok := caps.(probe.Scoper); ok {
		caps = scoper.At(filepath.Join(c.runtime.Cwd, filepath.FromSlash(root)))
	}

	features, err := resolveFeatures(opts, caps, probeAll, c.runtime)
	if err != nil {
		return Config{}, errors.Wrapf(err, errors.ErrConfigDependency, "project %s", root).WithDetail("project", root)
	}

	var steps []step
	if _, ok := project.Options[options.KeyStylistic]; ok && features.Stylistic {
		steps = append(steps, step{name: "stylistic", build: func(ctx context.Context) ([]types.RuleFragment, error) {
			return presets.Stylistic(ctx, caps, options.Resolve(opts.Stylistic))
		}})
	}
	if features.TypeScript {
		steps = append(steps, step{name: "typescript", build: func(ctx context.Context) ([]types.RuleFragment, error) {
			return presets.TypeScript(ctx, caps, options.Resolve(opts.TypeScript))
		}})
	}
	steps = append(steps, c.frameworkSteps(opts, features, caps)...)

	fragments, err := run(ctx, steps)
	if err != nil {
		return Config{}, err
	}
	for i := range fragments {
		fragments[i] = scopeFragment(fragments[i], root)
	}
	c.logger.Info().Str("project", root).Int("fragments", len(fragments)).Msg("Composed project configuration")

	out := make([]types.RuleFragment, 0, len(base.Fragments)+len(fragments)+len(extra))
	out = append(out, base.Fragments...)
	out = append(out, fragments...)
	out = append(out, extra...)
	return Config{Fragments: out}, nil
}

// projectInput layers the project's stylistic settings over the
// workspace's. Stylistic rules are only re-emitted for a project that
// mentions them.
func projectInput(workspace, project options.Input) options.Input {
	style := options.ResolveSubOptions(workspace, options.KeyStylistic)
	switch v := project[options.KeyStylistic].(type) {
	case map[string]any:
		return options.Merge(project, options.Input{options.KeyStylistic: options.Merge(style, v)})
	case bool:
		if v && len(style) > 0 {
			return options.Merge(project, options.Input{options.KeyStylistic: style})
		}
	}
	return project
}

// workspaceNaming returns the TypeScript naming convention configured at the
// workspace level.
func workspaceNaming(workspace options.Input) []any {
	ts := options.ResolveSubOptions(workspace, options.KeyTypeScript)
	if len(ts) == 0 {
		return nil
	}
	opts, err := options.Decode(options.Input{options.KeyTypeScript: ts})
	if err != nil {
		return nil
	}
	return opts.TypeScript.Options.NamingConvention
}

// cleanRoot normalizes a project root to a relative slash path, or returns
// "" when it escapes the workspace.
func cleanRoot(root string) string {
	root = path.Clean(filepath.ToSlash(strings.TrimSpace(root)))
	root = strings.TrimPrefix(root, "./")
	if root == "." || root == "" || root == ".." || strings.HasPrefix(root, "../") || path.IsAbs(root) {
		return ""
	}
	return root
}

// scopeFragment restricts a fragment to files under root.
func scopeFragment(f types.RuleFragment, root string) types.RuleFragment {
	f = f.Clone()
	f.Name = f.Name + "@" + root
	if len(f.Files) > 0 {
		for i, glob := range f.Files {
			f.Files[i] = root + "/" + strings.TrimPrefix(glob, "./")
		}
		for i, glob := range f.Ignores {
			f.Ignores[i] = root + "/" + strings.TrimPrefix(glob, "./")
		}
	}
	return f
}
