package capstyle

import (
	"fmt"
	"io/fs"

	"github.com/arthur-debert/capstyle/cmd/capstyle/commands/colors"
	"github.com/arthur-debert/capstyle/cmd/capstyle/commands/genconfig"
	"github.com/arthur-debert/capstyle/cmd/capstyle/commands/markup"
	"github.com/arthur-debert/capstyle/cmd/capstyle/commands/param"
	"github.com/arthur-debert/capstyle/cmd/capstyle/commands/render"
	"github.com/arthur-debert/capstyle/cmd/capstyle/commands/resolve"
	"github.com/arthur-debert/capstyle/cmd/capstyle/internal/app"
	"github.com/arthur-debert/capstyle/internal/version"
	"github.com/arthur-debert/capstyle/pkg/cobrax/topics"
	"github.com/arthur-debert/capstyle/pkg/errors"
	"github.com/arthur-debert/capstyle/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app.App{})
}

func newRootCmd(a *app.App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "capstyle",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.Setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// no subcommand
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	a.BindFlags(rootCmd)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "config",
		Title: "CONFIGURATION:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.AddCommand(resolve.NewCommand(a))
	rootCmd.AddCommand(render.NewCommand(a))
	rootCmd.AddCommand(param.NewCommand(a))
	rootCmd.AddCommand(markup.NewCommand(a))
	rootCmd.AddCommand(colors.NewCommand(a))
	rootCmd.AddCommand(genconfig.NewCommand(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	initTopics(rootCmd)

	return rootCmd
}

// initTopics installs the topic based help command. The topics are
// embedded, so a failure here is a build problem and only logged.
func initTopics(rootCmd *cobra.Command) {
	fsys, err := fs.Sub(helpTopics, "topics")
	if err != nil {
		log.Error().Err(err).Msg("Help topics unavailable")
		return
	}

	opts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(ui.Width(rootCmd.OutOrStdout())),
	}
	if _, err := topics.InitializeWithOptions(rootCmd, fsys, opts); err != nil {
		log.Error().Err(err).Msg("Help topics unavailable")
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
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
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return errors.Newf(errors.ErrInvalidInput, "unsupported shell: %s", args[0])
		},
	}
}
