// Package app holds the state shared by capstyle's commands: global
// flags, the loaded configuration and the terminal built from them.
package app

import (
	"io"

	"github.com/arthur-debert/capstyle/pkg/config"
	"github.com/arthur-debert/capstyle/pkg/logging"
	"github.com/arthur-debert/capstyle/pkg/terminal"
	"github.com/arthur-debert/capstyle/pkg/ui"
	"github.com/arthur-debert/capstyle/pkg/ui/display"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Flag names shared with the config keys they override
const (
	FlagConfig       = "config"
	FlagTerm         = "term"
	FlagForceStyling = "force-styling"
	FlagBackend      = "backend"
	FlagColors       = "colors"
	FlagFormat       = "format"
	FlagVerbose      = "verbose"
)

var flagKeys = map[string]string{
	FlagTerm:         "terminal.kind",
	FlagForceStyling: "terminal.force_styling",
	FlagBackend:      "terminal.backend",
	FlagColors:       "terminal.colors",
}

// App is the per-invocation state
type App struct {
	Verbosity    int
	ConfigFile   string
	Kind         string
	ForceStyling string
	Backend      string
	Colors       int
	Format       string

	cfg  *config.Config
	term *terminal.Terminal
}

// BindFlags registers the global flags on the root command
func (a *App) BindFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.CountVarP(&a.Verbosity, FlagVerbose, "v", MsgFlagVerbose)
	flags.StringVar(&a.ConfigFile, FlagConfig, "", MsgFlagConfig)
	flags.StringVarP(&a.Kind, FlagTerm, "t", "", MsgFlagTerm)
	flags.StringVar(&a.ForceStyling, FlagForceStyling, config.StylingAuto, MsgFlagForceStyling)
	flags.StringVar(&a.Backend, FlagBackend, config.BackendAuto, MsgFlagBackend)
	flags.IntVar(&a.Colors, FlagColors, 0, MsgFlagColors)
	flags.StringVarP(&a.Format, FlagFormat, "f", "auto", MsgFlagFormat)
}

// Setup initializes logging, loads the configuration and builds the
// terminal. Flags the user set override every config layer.
func (a *App) Setup(cmd *cobra.Command) error {
	logging.SetupLogger(a.Verbosity)
	log.Debug().Str("command", cmd.Name()).Msg("Command started")

	overrides := map[string]interface{}{}
	values := map[string]interface{}{
		FlagTerm:         a.Kind,
		FlagForceStyling: a.ForceStyling,
		FlagBackend:      a.Backend,
		FlagColors:       a.Colors,
	}
	for flag, key := range flagKeys {
		if cmd.Flags().Changed(flag) {
			overrides[key] = values[flag]
		}
	}

	cfg, err := config.Load(config.LoadOptions{ConfigFile: a.ConfigFile, Overrides: overrides})
	if err != nil {
		return err
	}
	a.cfg = cfg

	term, err := terminal.New(terminal.OptionsFromConfig(cfg, cmd.OutOrStdout()))
	if err != nil {
		return err
	}
	a.term = term
	return nil
}

// Config returns the loaded configuration
func (a *App) Config() *config.Config { return a.cfg }

// Terminal returns the terminal styled output is produced for
func (a *App) Terminal() *terminal.Terminal { return a.term }

// Renderer returns a report renderer for the --format flag
func (a *App) Renderer(w io.Writer) (ui.Renderer, error) {
	format, err := ui.ParseFormat(a.Format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, w)
}

// Info describes the terminal for reports
func (a *App) Info() display.TerminalInfo {
	return display.TerminalInfo{
		Kind:    a.term.Kind(),
		Backend: a.term.BackendName(),
		Colors:  a.term.NumberOfColors(),
		Styling: a.term.DoesStyling(),
	}
}

// Report resolves name into a report
func (a *App) Report(name string) *display.Report {
	kind, tokens := a.term.Classify(name)
	return &display.Report{
		Name:      name,
		NameKind:  kind.String(),
		Tokens:    tokens,
		Attribute: a.term.Attr(name),
		Terminal:  a.Info(),
	}
}
