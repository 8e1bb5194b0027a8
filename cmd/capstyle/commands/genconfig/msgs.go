package genconfig

const (
	MsgShort = "Print the effective configuration"
	MsgLong  = `Gen-config prints the configuration capstyle is running with, merged from
the built-in defaults, the user config file, CAPSTYLE_ environment
variables and command line flags. With --write it is saved as the user
config file instead.`
	MsgExample = `  capstyle gen-config
  capstyle gen-config --term xterm-256color --write
  CAPSTYLE_TERMINAL_COLORS=256 capstyle gen-config`

	MsgFlagWrite = "Write the config file instead of printing it"
	MsgFlagForce = "Replace an existing config file"
	MsgWritten   = "Wrote %s\n"

	MsgErrExists    = "%s already exists; use --force to replace it"
	MsgErrMkdir     = "failed to create %s"
	MsgErrWriteFile = "failed to write %s"
	MsgErrWrite     = "failed to write output"
)
