package flatlint

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/arthur-debert/flatlint/internal/version"
	"github.com/arthur-debert/flatlint/pkg/cobrax/topics"
	"github.com/arthur-debert/flatlint/pkg/logging"
	"github.com/arthur-debert/flatlint/pkg/output"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// rootOptions holds the global flags shared by every command.
type rootOptions struct {
	verbosity int
	dir       string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "flatlint",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			loadDotEnv()
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.dir, "dir", "C", ".", MsgFlagDir)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newComposeCmd(opts))
	rootCmd.AddCommand(newOverrideCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newInspectCmd(opts))
	rootCmd.AddCommand(newExplainCmd(opts))
	rootCmd.AddCommand(newRootDirCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	if err := installTopics(rootCmd); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// installTopics serves the embedded documents through "help <topic>".
// Markdown is styled only at a terminal.
func installTopics(rootCmd *cobra.Command) error {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return err
	}
	render := func(md string) string {
		if !output.IsTerminal(os.Stdout) {
			return md
		}
		return output.MarkdownRenderer{}.Render(md)
	}
	m, err := topics.Load(sub, topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.RendererFunc(render),
	})
	if err != nil {
		return err
	}
	m.Install(rootCmd)
	return nil
}

// loadDotEnv reads .env from the working directory. Variables already set
// in the environment are kept.
func loadDotEnv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("Failed to load .env")
		return
	}
	log.Debug().Msg("Loaded .env")
}
