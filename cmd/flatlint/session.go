package flatlint

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/flatlint/pkg/compose"
	"github.com/arthur-debert/flatlint/pkg/config"
	"github.com/arthur-debert/flatlint/pkg/environment"
	"github.com/arthur-debert/flatlint/pkg/errors"
	"github.com/arthur-debert/flatlint/pkg/logging"
	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/output"
	"github.com/arthur-debert/flatlint/pkg/paths"
	"github.com/arthur-debert/flatlint/pkg/probe"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// session is everything a command needs about the workspace it runs in.
type session struct {
	root     string
	cfg      *config.Config
	composer *compose.Composer
	logger   zerolog.Logger
}

// openSession locates the workspace root from dir, loads its configuration
// with overrides applied last and builds a composer probing that root.
func openSession(dir string, overrides map[string]any) (*session, error) {
	logger := logging.GetLogger("cmd.session")

	start, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid directory %s", dir)
	}
	fs := afero.NewOsFs()
	root := paths.NewLocator(fs).Find(start)

	src := config.DefaultSources(root)
	src.Overrides = overrides
	cfg, err := config.Load(src)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	rt := environment.Detect(os.Getenv, root)
	logger.Debug().
		Str("root", root).
		Bool("editor", rt.InEditor).
		Bool("ci", rt.InCI).
		Msg("Session opened")

	return &session{
		root:     root,
		cfg:      cfg,
		composer: compose.New(probe.New(fs, root), rt, compose.WithFS(fs)),
		logger:   logger,
	}, nil
}

// input merges --set/--unset over the configured options.
func (s *session) input(set, unset []string) (options.Input, error) {
	patch, err := config.ParseSet(set, unset)
	if err != nil {
		return nil, err
	}
	return options.Merge(s.cfg.Input(), patch), nil
}

// composeRequest selects which composer entry point runs.
type composeRequest struct {
	set       []string
	unset     []string
	workspace bool
	project   string
}

func (s *session) compose(ctx context.Context, req composeRequest) (compose.Config, error) {
	in, err := s.input(req.set, req.unset)
	if err != nil {
		return compose.Config{}, err
	}

	workspace := req.workspace || s.cfg.Output.Mode == config.ModeWorkspace
	if req.project == "" && !workspace {
		return s.composer.Compose(ctx, in)
	}

	base, err := s.composer.Workspace(ctx, in)
	if err != nil || req.project == "" {
		return base, err
	}
	return s.composer.Project(ctx, base, s.projectInput(req.project))
}

// projectInput returns the configured entry for dir, or a bare one.
func (s *session) projectInput(dir string) compose.ProjectInput {
	rel := dir
	if filepath.IsAbs(dir) {
		rel = paths.Rel(s.root, dir)
	}
	rel = strings.TrimSuffix(filepath.ToSlash(filepath.Clean(rel)), "/")
	for _, p := range s.cfg.ProjectInputs() {
		if strings.TrimSuffix(filepath.ToSlash(filepath.Clean(p.Root)), "/") == rel {
			return p
		}
	}
	return compose.ProjectInput{Root: rel}
}

// outputOverrides turns output flags into configuration overrides.
func outputOverrides(format, out string) (map[string]any, error) {
	overrides := map[string]any{}
	if format != "" {
		f, err := output.ParseFormat(format)
		if err != nil {
			return nil, err
		}
		overrides["output.format"] = string(f)
	}
	if out != "" {
		overrides["output.path"] = out
	}
	return overrides, nil
}

// destination resolves the output path and format. Without a configured
// format the path's extension decides, then the terminal.
func (s *session) destination(stdout *os.File) (string, output.Format, error) {
	out := s.cfg.Output.Path
	switch {
	case s.cfg.Output.Format != "":
		f, err := output.ParseFormat(s.cfg.Output.Format)
		return out, f, err
	case out != "":
		return out, output.FormatForPath(out), nil
	default:
		return out, output.DetectFormat(stdout), nil
	}
}

// write encodes cfg to path, or to w when path is empty. Files are replaced
// only after encoding succeeds.
func write(w io.Writer, path string, cfg compose.Config, format output.Format) error {
	if path == "" {
		return output.Encode(w, cfg, format)
	}

	var buf strings.Builder
	if err := output.Encode(&buf, cfg, format); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot create %s", dir)
		}
	}
	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot write %s", path).WithDetail("path", path)
	}
	return nil
}
