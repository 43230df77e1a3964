package compose

import (
	"context"

	"github.com/arthur-debert/flatlint/pkg/errors"
	"github.com/arthur-debert/flatlint/pkg/logging"
	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/presets"
	"github.com/arthur-debert/flatlint/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// Config is a composed configuration. Options holds the Input it was
// composed from when the config is tagged, and is nil otherwise.
type Config struct {
	Fragments []types.RuleFragment `json:"fragments" yaml:"fragments" toml:"fragments"`
	Options   options.Input        `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`
}

// Tagged reports whether the config carries its original options.
func (c Config) Tagged() bool {
	return c.Options != nil
}

// Tag attaches in to cfg so it can later be overridden or extended by
// projects. The Input is copied.
func Tag(cfg Config, in options.Input) Config {
	return Config{
		Fragments: cfg.Fragments,
		Options:   options.Merge(nil, in),
	}
}

// Composer builds configurations. It holds no state between calls; probes
// are re-run on every call.
type Composer struct {
	caps    types.Capabilities
	runtime types.RuntimeContext
	fs      afero.Fs
	logger  zerolog.Logger
}

// Option configures a Composer.
type Option func(*Composer)

// WithFS sets the filesystem ignore files are read from.
func WithFS(fs afero.Fs) Option {
	return func(c *Composer) {
		c.fs = fs
	}
}

// New creates a Composer.
func New(caps types.Capabilities, rt types.RuntimeContext, opts ...Option) *Composer {
	c := &Composer{
		caps:    caps,
		runtime: rt,
		fs:      afero.NewOsFs(),
		logger:  logging.GetLogger("compose"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose builds a standalone configuration. extra fragments are appended
// after the built ones. The result is not tagged.
func (c *Composer) Compose(ctx context.Context, in options.Input, extra ...types.RuleFragment) (Config, error) {
	defer logging.LogOperationStart(c.logger, "compose")()

	fragments, err := c.build(ctx, in, c.caps, probeAll)
	if err != nil {
		return Config{}, err
	}
	return Config{Fragments: append(fragments, extra...)}, nil
}

// Workspace builds the configuration for a workspace root and tags it with
// in. Only TypeScript is probed; framework features must be set explicitly
// at this level and are otherwise left to projects.
func (c *Composer) Workspace(ctx context.Context, in options.Input, extra ...types.RuleFragment) (Config, error) {
	defer logging.LogOperationStart(c.logger, "compose workspace")()

	fragments, err := c.build(ctx, in, c.caps, probeWorkspace)
	if err != nil {
		return Config{}, err
	}
	return Tag(Config{Fragments: append(fragments, extra...)}, in), nil
}

func (c *Composer) build(ctx context.Context, in options.Input, caps types.Capabilities, scope probeScope) ([]types.RuleFragment, error) {
	opts, err := options.Decode(in)
	if err != nil {
		return nil, err
	}

	features, err := resolveFeatures(opts, caps, scope, c.runtime)
	if err != nil {
		c.logger.Debug().Err(err).Msg("Feature resolution failed")
		return nil, err
	}
	c.logger.Debug().Interface("features", features).Msg("Resolved features")

	fragments, err := run(ctx, c.steps(opts, features, caps))
	if err != nil {
		return nil, err
	}

	if features.Formatters && features.Markdown && options.Resolve(opts.Formatters).Markdown {
		if i := types.FindFragment(fragments, presets.Name("markdown", "processor")); i >= 0 {
			fragments[i].Processor = ""
		}
	}

	c.logger.Info().Int("fragments", len(fragments)).Msg("Composed configuration")
	return fragments, nil
}

// step is one builder invocation.
type step struct {
	name  string
	build func(ctx context.Context) ([]types.RuleFragment, error)
}

// run invokes every step concurrently and concatenates the results in step
// order. The first error cancels the remaining steps.
func run(ctx context.Context, steps []step) ([]types.RuleFragment, error) {
	results := make([][]types.RuleFragment, len(steps))
	g, gctx := errgroup.WithContext(ctx)
	for i, s := range steps {
		i, s := i, s
		g.Go(func() error {
			frags, err := s.build(gctx)
			if err != nil {
				code := errors.GetErrorCode(err)
				if code == errors.ErrUnknown {
					code = errors.ErrInternal
				}
				return errors.Wrapf(err, code, "builder %s failed", s.name).WithDetail("builder", s.name)
			}
			results[i] = frags
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []types.RuleFragment
	for _, frags := range results {
		out = append(out, frags...)
	}
	return out, nil
}
