package markup

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/capstyle/cmd/capstyle/internal/app"
	"github.com/arthur-debert/capstyle/pkg/errors"
	"github.com/arthur-debert/capstyle/pkg/markup"
	"github.com/spf13/cobra"
)

// NewCommand creates the markup command
func NewCommand(a *app.App) *cobra.Command {
	var (
		strip bool
		file  string
		data  map[string]string
	)

	cmd := &cobra.Command{
		Use:     "markup [<text>...]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd.InOrStdin(), file, args)
			if err != nil {
				return err
			}

			var out string
			if strip {
				out = markup.StripTags(text)
			} else {
				out, err = markup.Render(text, data, a.Terminal())
				if err != nil {
					return err
				}
			}

			if !strings.HasSuffix(out, "\n") {
				out += "\n"
			}
			if _, err := io.WriteString(cmd.OutOrStdout(), out); err != nil {
				return errors.Wrap(err, errors.ErrInternal, MsgErrWrite)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strip, "strip", false, MsgFlagStrip)
	cmd.Flags().StringVar(&file, "file", "", MsgFlagFile)
	cmd.Flags().StringToStringVarP(&data, "data", "d", nil, MsgFlagData)

	return cmd
}

// readInput returns the markup from --file, the arguments, or stdin
// when the only argument is "-"
func readInput(stdin io.Reader, file string, args []string) (string, error) {
	switch {
	case file != "":
		content, err := os.ReadFile(file)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrNotFound, MsgErrReadFile, file).WithDetail("path", file)
		}
		return string(content), nil
	case len(args) == 1 && args[0] == "-":
		content, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInvalidInput, MsgErrReadStdin)
		}
		return string(content), nil
	case len(args) == 0:
		return "", errors.New(errors.ErrInvalidInput, MsgErrNoInput)
	default:
		return strings.Join(args, " "), nil
	}
}
