package resolve

import (
	"github.com/arthur-debert/capstyle/cmd/capstyle/internal/app"
	"github.com/spf13/cobra"
)

// NewCommand creates the resolve command
func NewCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:     "resolve <name>...",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := a.Renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			for _, name := range args {
				if err := renderer.RenderReport(a.Report(name)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
