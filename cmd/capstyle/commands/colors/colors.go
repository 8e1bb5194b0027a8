package colors

import (
	"github.com/arthur-debert/capstyle/cmd/capstyle/internal/app"
	"github.com/arthur-debert/capstyle/pkg/formatters"
	"github.com/arthur-debert/capstyle/pkg/terminal"
	"github.com/arthur-debert/capstyle/pkg/ui/display"
	"github.com/spf13/cobra"
)

// MaxIndexed is the last palette index listed with --all
const MaxIndexed = 256

// NewCommand creates the colors command
func NewCommand(a *app.App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "colors",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := a.Renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			palette := BuildPalette(a.Terminal(), all)
			palette.Terminal = a.Info()
			return renderer.RenderPalette(palette)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, MsgFlagAll)

	return cmd
}

// BuildPalette lists the named colours the terminal supports and, with
// all set, the indexed colours after them
func BuildPalette(term *terminal.Terminal, all bool) *display.Palette {
	limit := term.NumberOfColors()
	if !all && limit > 2*formatters.BrightOffset {
		limit = 2 * formatters.BrightOffset
	}
	if limit > MaxIndexed {
		limit = MaxIndexed
	}

	palette := &display.Palette{Swatches: []display.Swatch{}}
	for i := 0; i < limit; i++ {
		palette.Swatches = append(palette.Swatches, display.Swatch{
			Name:     colorName(i),
			Index:    i,
			Sequence: term.ForegroundColor(i),
			Sample:   sample(term, i),
		})
	}
	return palette
}

func colorName(index int) string {
	base := formatters.BaseColors
	switch {
	case index < len(base):
		return base[index]
	case index < formatters.BrightOffset+len(base):
		return "bright_" + base[index-formatters.BrightOffset]
	default:
		return ""
	}
}

func sample(term *terminal.Terminal, index int) string {
	bg := term.BackgroundColor(index)
	if bg == "" {
		return ""
	}
	return bg + "  " + term.Normal()
}
