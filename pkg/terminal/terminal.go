// Package terminal provides a concrete terminal for the formatters
// package.
//
// A Terminal combines a capability backend (the terminfo database or
// built-in ANSI sequences), the styling decision for its output and the
// sugar table. Resolved attributes are cached per Terminal.
package terminal

import (
	"io"
	"os"
	"sort"
	"sync"

	"github.com/arthur-debert/capstyle/pkg/config"
	"github.com/arthur-debert/capstyle/pkg/errors"
	"github.com/arthur-debert/capstyle/pkg/formatters"
	"github.com/arthur-debert/capstyle/pkg/logging"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Options configures New
type Options struct {
	// Kind is the terminfo name; empty means $TERM
	Kind string

	// ForceStyling is one of config.StylingAuto, StylingAlways, StylingNever
	ForceStyling string

	// Colors overrides the backend colour count when positive
	Colors int

	// Backend is one of config.BackendAuto, BackendTerminfo, BackendANSI
	Backend string

	// Out is consulted for tty detection in auto mode
	Out io.Writer

	// Sugar extends DefaultSugar
	Sugar map[string]string

	// Styles maps semantic names to attribute names
	Styles map[string]string

	// Resolver overrides the colour and compoundable tables
	Resolver *formatters.Resolver
}

// OptionsFromConfig maps the [terminal], [sugar] and [styles] sections
// onto Options
func OptionsFromConfig(cfg *config.Config, out io.Writer) Options {
	return Options{
		Kind:         cfg.Terminal.Kind,
		ForceStyling: cfg.Terminal.ForceStyling,
		Colors:       cfg.Terminal.Colors,
		Backend:      cfg.Terminal.Backend,
		Out:          out,
		Sugar:        cfg.Sugar,
		Styles:       cfg.Styles,
	}
}

// Terminal implements formatters.Terminal on top of a Backend
type Terminal struct {
	kind     string
	backend  Backend
	styling  bool
	colors   int
	sugar    map[string]string
	styles   map[string]string
	resolver *formatters.Resolver
	normal   string
	logger   zerolog.Logger

	mu    sync.RWMutex
	cache map[string]formatters.Attribute
	group singleflight.Group
}

var _ formatters.Terminal = (*Terminal)(nil)

// New builds a Terminal. Only an explicit terminfo backend can fail;
// auto falls back to ANSI sequences when the database has no entry.
func New(opts Options) (*Terminal, error) {
	logger := logging.GetLogger("terminal")

	kind := opts.Kind
	if kind == "" {
		kind = os.Getenv("TERM")
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.ForceStyling == "" {
		opts.ForceStyling = config.StylingAuto
	}

	backend, err := selectBackend(opts.Backend, kind, logger)
	if err != nil {
		return nil, err
	}
	return NewWithBackend(backend, kind, ShouldStyle(opts.ForceStyling, kind, opts.Out), opts), nil
}

// NewWithBackend builds a Terminal around an existing backend with a
// styling decision already made
func NewWithBackend(backend Backend, kind string, styling bool, opts Options) *Terminal {
	sugar := make(map[string]string, len(DefaultSugar)+len(opts.Sugar))
	for k, v := range DefaultSugar {
		sugar[k] = v
	}
	for k, v := range opts.Sugar {
		sugar[k] = v
	}

	styles := make(map[string]string, len(opts.Styles))
	for k, v := range opts.Styles {
		styles[k] = v
	}

	colors := backend.Colors()
	if opts.Colors > 0 {
		colors = opts.Colors
	}

	resolver := opts.Resolver
	if resolver == nil {
		resolver = formatters.DefaultResolver
	}

	t := &Terminal{
		kind:     kind,
		backend:  backend,
		styling:  styling,
		colors:   colors,
		sugar:    sugar,
		styles:   styles,
		resolver: resolver,
		logger:   logging.GetLogger("terminal").With().Str("kind", kind).Logger(),
		cache:    make(map[string]formatters.Attribute),
	}
	if styling {
		if seq, ok := backend.Lookup("sgr0"); ok {
			t.normal = string(seq)
		}
	}

	t.logger.Debug().
		Str("backend", backend.Name()).
		Bool("styling", styling).
		Int("colors", colors).
		Msg("Terminal ready")
	return t
}

func selectBackend(name, kind string, logger zerolog.Logger) (Backend, error) {
	switch name {
	case config.BackendANSI:
		return NewANSIBackend(ProfileForKind(kind)), nil
	case config.BackendTerminfo:
		return LoadTerminfo(kind)
	case "", config.BackendAuto:
		done := logging.LogOperationStart(logger, "load-terminfo")
		backend, err := LoadTerminfo(kind)
		done()
		if err == nil {
			return backend, nil
		}
		logger.Debug().Err(err).Str("kind", kind).Msg("Falling back to ANSI sequences")
		return NewANSIBackend(ProfileForKind(kind)), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown backend %q", name).
			WithDetail("backend", name)
	}
}

// Kind is the terminal kind the capabilities belong to
func (t *Terminal) Kind() string { return t.kind }

// BackendName reports which backend serves capabilities
func (t *Terminal) BackendName() string { return t.backend.Name() }

// DoesStyling reports whether attributes produce escape sequences
func (t *Terminal) DoesStyling() bool { return t.styling }

// NumberOfColors returns the colour count of the terminal
func (t *Terminal) NumberOfColors() int { return t.colors }

// Lookup returns a raw capability string
func (t *Terminal) Lookup(name string) ([]byte, bool) {
	return t.backend.Lookup(name)
}

// Parameterize substitutes args into a capability template
func (t *Terminal) Parameterize(seq []byte, args ...any) ([]byte, error) {
	return formatters.Tparm(seq, args...)
}

// Normal returns the attribute reset sequence, "" when not styling
func (t *Terminal) Normal() string { return t.normal }

// ForegroundColor returns the sequence selecting palette index as the
// text colour
func (t *Terminal) ForegroundColor(index int) string {
	return t.color(index, false)
}

// BackgroundColor returns the sequence selecting palette index as the
// background colour
func (t *Terminal) BackgroundColor(index int) string {
	return t.color(index, true)
}

func (t *Terminal) color(index int, background bool) string {
	if !t.styling {
		return ""
	}
	if c, ok := t.backend.(colorer); ok {
		return c.Color(index, background)
	}

	names := [2]string{"setaf", "setf"}
	if background {
		names = [2]string{"setab", "setb"}
	}
	for _, name := range names {
		tmpl, ok := t.backend.Lookup(name)
		if !ok {
			continue
		}
		seq, err := t.Parameterize(tmpl, index)
		if err != nil {
			t.logger.Debug().Err(err).Str("cap", name).Int("index", index).Msg("Colour template failed")
			return ""
		}
		return string(seq)
	}
	return ""
}

// Sugar returns the mnemonic name table
func (t *Terminal) Sugar() map[string]string { return t.sugar }

// Styles returns the semantic style names, sorted
func (t *Terminal) Styles() []string {
	names := make([]string, 0, len(t.styles))
	for name := range t.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StyleAttr returns the attribute name a semantic style maps to
func (t *Terminal) StyleAttr(style string) (string, bool) {
	name, ok := t.styles[style]
	return name, ok
}
