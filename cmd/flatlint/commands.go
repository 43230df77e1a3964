package flatlint

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/arthur-debert/flatlint/internal/version"
	"github.com/arthur-debert/flatlint/pkg/compose"
	"github.com/arthur-debert/flatlint/pkg/config"
	"github.com/arthur-debert/flatlint/pkg/errors"
	"github.com/arthur-debert/flatlint/pkg/inspect"
	"github.com/arthur-debert/flatlint/pkg/output"
	"github.com/arthur-debert/flatlint/pkg/paths"
	"github.com/arthur-debert/flatlint/pkg/watch"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newComposeCmd(opts *rootOptions) *cobra.Command {
	var (
		set, unset []string
		format     string
		out        string
		project    string
		workspace  bool
		watchFiles bool
	)

	cmd := &cobra.Command{
		Use:     "compose",
		Short:   MsgComposeShort,
		Long:    MsgComposeLong,
		Example: MsgComposeExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := outputOverrides(format, out)
			if err != nil {
				return err
			}
			s, err := openSession(opts.dir, overrides)
			if err != nil {
				return err
			}
			path, f, err := s.destination(os.Stdout)
			if err != nil {
				return err
			}
			req := composeRequest{set: set, unset: unset, workspace: workspace, project: project}

			emit := func(ctx context.Context) error {
				cfg, err := s.compose(ctx, req)
				if err != nil {
					return fmt.Errorf(MsgErrCompose, err)
				}
				if err := write(cmd.OutOrStdout(), path, cfg, f); err != nil {
					return fmt.Errorf(MsgErrWriteOutput, err)
				}
				if path != "" {
					fmt.Fprintf(cmd.ErrOrStderr(), MsgWrote, path, len(cfg.Fragments))
				}
				return nil
			}

			if err := emit(cmd.Context()); err != nil {
				if !watchFiles {
					return err
				}
				log.Error().Err(err).Msg("Composition failed, waiting for changes")
			}
			if !watchFiles {
				return nil
			}

			w, err := watch.New(s.root)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.ErrOrStderr(), MsgWatching, s.root)
			return w.Run(ctx, func(ctx context.Context, changed []string) error {
				log.Info().Strs("changed", changed).Msg("Recomposing")
				// workspace config files may be among the changes
				next, err := openSession(opts.dir, overrides)
				if err != nil {
					log.Error().Err(err).Msg("Keeping previous configuration")
					return nil
				}
				s = next
				if err := emit(ctx); err != nil {
					if errors.IsErrorCode(err, errors.ErrFileAccess) {
						return err
					}
					log.Error().Err(err).Msg("Composition failed, waiting for changes")
				}
				return nil
			})
		},
	}

	cmd.Flags().StringArrayVar(&set, "set", nil, MsgFlagSet)
	cmd.Flags().StringArrayVar(&unset, "unset", nil, MsgFlagUnset)
	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	cmd.Flags().StringVarP(&out, "out", "o", "", MsgFlagOut)
	cmd.Flags().StringVarP(&project, "project", "p", "", MsgFlagProject)
	cmd.Flags().BoolVarP(&workspace, "workspace", "w", false, MsgFlagWorkspace)
	cmd.Flags().BoolVar(&watchFiles, "watch", false, MsgFlagWatch)

	return cmd
}

func newOverrideCmd(opts *rootOptions) *cobra.Command {
	var (
		set, unset []string
		format     string
		out        string
	)

	cmd := &cobra.Command{
		Use:     "override <tagged-file>",
		Short:   MsgOverrideShort,
		Long:    MsgOverrideLong,
		Example: MsgOverrideExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" && out == "" {
				format = string(output.FormatForPath(args[0]))
			}
			overrides, err := outputOverrides(format, out)
			if err != nil {
				return err
			}
			s, err := openSession(opts.dir, overrides)
			if err != nil {
				return err
			}

			base, err := readTagged(args[0])
			if err != nil {
				return fmt.Errorf(MsgErrReadTagged, err)
			}
			patch, err := config.ParseSet(set, unset)
			if err != nil {
				return err
			}

			cfg, err := s.composer.Override(cmd.Context(), base, patch)
			if err != nil {
				return fmt.Errorf(MsgErrCompose, err)
			}

			path, f, err := s.destination(os.Stdout)
			if err != nil {
				return err
			}
			if err := write(cmd.OutOrStdout(), path, cfg, f); err != nil {
				return fmt.Errorf(MsgErrWriteOutput, err)
			}
			if path != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), MsgWrote, path, len(cfg.Fragments))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&set, "set", nil, MsgFlagSet)
	cmd.Flags().StringArrayVar(&unset, "unset", nil, MsgFlagUnset)
	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	cmd.Flags().StringVarP(&out, "out", "o", "", MsgFlagOut)

	return cmd
}

// readTagged loads the tag of an encoded configuration. Only the options
// matter for an override; fragments are rebuilt from them.
func readTagged(path string) (compose.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return compose.Config{}, errors.Wrapf(err, errors.ErrFileAccess, "cannot open %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	in, err := output.ReadTag(f, output.FormatForPath(path))
	if err != nil {
		return compose.Config{}, err
	}
	return compose.Config{Options: in}, nil
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var set, unset []string

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts.dir, nil)
			if err != nil {
				return err
			}
			cfg, err := s.compose(cmd.Context(), composeRequest{set: set, unset: unset})
			if err != nil {
				return fmt.Errorf(MsgErrCompose, err)
			}
			return output.WriteFragmentTable(cmd.OutOrStdout(), cfg.Fragments, colorOutput(cmd))
		},
	}

	cmd.Flags().StringArrayVar(&set, "set", nil, MsgFlagSet)
	cmd.Flags().StringArrayVar(&unset, "unset", nil, MsgFlagUnset)
	return cmd
}

func newInspectCmd(opts *rootOptions) *cobra.Command {
	var set, unset []string

	cmd := &cobra.Command{
		Use:     "inspect <file>",
		Short:   MsgInspectShort,
		Long:    MsgInspectLong,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts.dir, nil)
			if err != nil {
				return err
			}
			cfg, err := s.compose(cmd.Context(), composeRequest{set: set, unset: unset})
			if err != nil {
				return fmt.Errorf(MsgErrCompose, err)
			}

			file := args[0]
			if filepath.IsAbs(file) {
				file = paths.Rel(s.root, file)
			}
			res, err := inspect.File(cfg.Fragments, file)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			color := colorOutput(cmd)
			if res.Ignored() {
				fmt.Fprintf(w, MsgIgnoredFormat, res.Path, styled(color, output.WarningStyle.Render, res.IgnoredBy))
				return nil
			}
			if len(res.Matches) == 0 {
				fmt.Fprintf(w, MsgNoMatches, res.Path)
				return nil
			}

			fmt.Fprintln(w, styled(color, output.TitleStyle.Render, res.Path))
			for _, m := range res.Matches {
				glob := m.Glob
				if glob == "" {
					glob = "all files"
				}
				fmt.Fprintf(w, MsgMatchFormat, m.Index+1, m.Fragment.Name, styled(color, output.MutedStyle.Render, glob))
			}

			rules := res.Rules()
			names := make([]string, 0, len(rules))
			for name := range rules {
				names = append(names, name)
			}
			sort.Strings(names)
			fmt.Fprintln(w, MsgRulesHeader)
			for _, name := range names {
				fmt.Fprintf(w, MsgRuleFormat, name, rules[name].Value())
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&set, "set", nil, MsgFlagSet)
	cmd.Flags().StringArrayVar(&unset, "unset", nil, MsgFlagUnset)
	return cmd
}

func newExplainCmd(opts *rootOptions) *cobra.Command {
	var (
		set, unset []string
		workspace  bool
		style      string
	)

	cmd := &cobra.Command{
		Use:     "explain",
		Short:   MsgExplainShort,
		Long:    MsgExplainLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts.dir, nil)
			if err != nil {
				return err
			}
			cfg, err := s.compose(cmd.Context(), composeRequest{set: set, unset: unset, workspace: workspace})
			if err != nil {
				return fmt.Errorf(MsgErrCompose, err)
			}

			doc := output.Explain(cfg)
			if !colorOutput(cmd) && style == "" {
				fmt.Fprint(cmd.OutOrStdout(), doc)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), output.MarkdownRenderer{Style: style, Width: 100}.Render(doc))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&set, "set", nil, MsgFlagSet)
	cmd.Flags().StringArrayVar(&unset, "unset", nil, MsgFlagUnset)
	cmd.Flags().BoolVarP(&workspace, "workspace", "w", false, MsgFlagWorkspace)
	cmd.Flags().StringVar(&style, "style", "", MsgFlagStyle)
	return cmd
}

func newRootDirCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "root",
		Short:   MsgRootDirShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts.dir, nil)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.root)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// colorOutput reports whether the command writes to a color terminal.
func colorOutput(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && os.Getenv("NO_COLOR") == "" && output.IsTerminal(f)
}

func styled(color bool, render func(...string) string, s string) string {
	if !color {
		return s
	}
	return render(s)
}
