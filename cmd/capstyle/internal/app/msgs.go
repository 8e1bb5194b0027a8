package app

// Flag descriptions
const (
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig       = "Config file loaded after the user config"
	MsgFlagTerm         = "Terminal kind to resolve for (default $TERM)"
	MsgFlagForceStyling = "Emit sequences: auto, always or never"
	MsgFlagBackend      = "Capability source: auto, terminfo or ansi"
	MsgFlagColors       = "Override the number of colors (0 detects)"
	MsgFlagFormat       = "Report format: auto, term, text or json"
)
