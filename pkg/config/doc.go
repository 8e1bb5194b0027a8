// Package config loads capstyle settings.
//
// Configuration is layered with koanf. The embedded defaults.toml is read
// first, then the user file from the XDG config directory, an explicit
// --config file, CAPSTYLE_* environment variables and finally flag
// overrides. Later layers win key by key.
//
//	[terminal]
//	kind = "xterm-256color"
//	force_styling = "always"
//
//	[styles]
//	error = "bold_red"
package config
