package render

import (
	"strings"

	"github.com/arthur-debert/capstyle/cmd/capstyle/internal/app"
	"github.com/arthur-debert/capstyle/pkg/errors"
	"github.com/spf13/cobra"
)

// NewCommand creates the render command
func NewCommand(a *app.App) *cobra.Command {
	var (
		style string
		raw   bool
	)

	cmd := &cobra.Command{
		Use:     "render <name> <text>...",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args: func(cmd *cobra.Command, args []string) error {
			if style != "" {
				return cobra.ArbitraryArgs(cmd, args)
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			term := a.Terminal()

			var (
				name string
				out  string
				err  error
			)
			if style != "" {
				out, err = term.Style(style, strings.Join(args, " "))
				// reports describe the attribute the style maps to
				name, _ = term.StyleAttr(style)
			} else {
				name = args[0]
				out, err = term.Apply(name, strings.Join(args[1:], " "))
			}
			if err != nil {
				return err
			}

			if raw {
				if _, err := cmd.OutOrStdout().Write([]byte(out + "\n")); err != nil {
					return errors.Wrap(err, errors.ErrInternal, MsgErrWrite)
				}
				return nil
			}

			renderer, err := a.Renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			rep := a.Report(name)
			rep.Output = out
			return renderer.RenderReport(rep)
		},
	}

	cmd.Flags().StringVarP(&style, "style", "s", "", MsgFlagStyle)
	cmd.Flags().BoolVarP(&raw, "raw", "r", false, MsgFlagRaw)

	return cmd
}
