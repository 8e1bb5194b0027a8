package config

import (
	"github.com/arthur-debert/capstyle/pkg/errors"
)

// Styling modes for Terminal.ForceStyling
const (
	StylingAuto   = "auto"
	StylingAlways = "always"
	StylingNever  = "never"
)

// Backends for Terminal.Backend
const (
	BackendAuto     = "auto"
	BackendTerminfo = "terminfo"
	BackendANSI     = "ansi"
)

// Terminal holds the [terminal] section
type Terminal struct {
	// Kind is the terminfo name; empty means $TERM
	Kind         string `koanf:"kind" toml:"kind"`
	ForceStyling string `koanf:"force_styling" toml:"force_styling"`
	// Colors overrides the detected colour count when positive
	Colors  int    `koanf:"colors" toml:"colors"`
	Backend string `koanf:"backend" toml:"backend"`
}

// Config is the main configuration structure
type Config struct {
	Terminal Terminal `koanf:"terminal" toml:"terminal"`

	// Sugar adds friendly names for capabilities, e.g. "scroll" -> "ind"
	Sugar map[string]string `koanf:"sugar" toml:"sugar"`

	// Styles maps semantic names to attribute names, e.g. "error" -> "bold_red"
	Styles map[string]string `koanf:"styles" toml:"styles"`
}

// Default returns the configuration built from the embedded defaults only
func Default() *Config {
	cfg, err := Load(LoadOptions{SkipUserConfig: true, SkipEnv: true})
	if err != nil {
		// embedded defaults are part of the binary; this only happens
		// when they were edited into something invalid
		return &Config{
			Terminal: Terminal{ForceStyling: StylingAuto, Backend: BackendAuto},
			Sugar:    map[string]string{},
			Styles:   map[string]string{},
		}
	}
	return cfg
}

// Validate checks enumerated values and ranges
func (c *Config) Validate() error {
	switch c.Terminal.ForceStyling {
	case StylingAuto, StylingAlways, StylingNever:
	default:
		return errors.Newf(errors.ErrConfigInvalid,
			"terminal.force_styling must be one of auto, always, never (got %q)", c.Terminal.ForceStyling).
			WithDetail("key", "terminal.force_styling")
	}

	switch c.Terminal.Backend {
	case BackendAuto, BackendTerminfo, BackendANSI:
	default:
		return errors.Newf(errors.ErrConfigInvalid,
			"terminal.backend must be one of auto, terminfo, ansi (got %q)", c.Terminal.Backend).
			WithDetail("key", "terminal.backend")
	}

	if c.Terminal.Colors < 0 {
		return errors.Newf(errors.ErrConfigInvalid,
			"terminal.colors must not be negative (got %d)", c.Terminal.Colors).
			WithDetail("key", "terminal.colors")
	}

	for name, target := range c.Styles {
		if target == "" {
			return errors.Newf(errors.ErrConfigInvalid, "style %q has no attribute", name).
				WithDetail("key", "styles."+name)
		}
	}

	return nil
}
