package param

import (
	"strconv"

	"github.com/arthur-debert/capstyle/cmd/capstyle/internal/app"
	"github.com/arthur-debert/capstyle/pkg/errors"
	"github.com/spf13/cobra"
)

// NewCommand creates the param command
func NewCommand(a *app.App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:     "param <name> [<arg>...]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			out, err := a.Terminal().Call(name, ParseArgs(args[1:])...)
			if err != nil {
				return err
			}

			if raw {
				if _, err := cmd.OutOrStdout().Write([]byte(out)); err != nil {
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

	cmd.Flags().BoolVarP(&raw, "raw", "r", false, MsgFlagRaw)

	return cmd
}

// ParseArgs converts numeric arguments to ints and keeps the rest as
// strings, so a word passed by mistake is reported as a misspelling
func ParseArgs(args []string) []any {
	out := make([]any, 0, len(args))
	for _, arg := range args {
		if n, err := strconv.Atoi(arg); err == nil {
			out = append(out, n)
			continue
		}
		out = append(out, arg)
	}
	return out
}
