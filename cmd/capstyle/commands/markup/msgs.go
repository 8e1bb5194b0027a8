package markup

const (
	MsgShort = "Expand attribute tags in text"
	MsgLong  = `Markup runs the text as a Go template, then replaces tags named after
attributes with their sequences. Tags nest, and closing a tag restores the
attributes that are still open:

  <bold>Build <green>passed</green> in 3s</bold>

Content in <no-format> tags is only shown when styling is off. Styles
defined in the configuration can be used as tags as well. Text that is not
well formed is printed unchanged.`
	MsgExample = `  capstyle markup "<bold_red>error:</bold_red> disk full"
  capstyle markup -d name=world "Hello <underline>{{.name}}</underline>"
  capstyle markup --file motd.tmpl
  echo "<warning>careful</warning>" | capstyle markup -`

	MsgFlagStrip = "Remove tags instead of expanding them"
	MsgFlagFile  = "Read the markup from a file"
	MsgFlagData  = "Template data as key=value pairs"

	MsgErrReadFile  = "failed to read %s"
	MsgErrReadStdin = "failed to read standard input"
	MsgErrNoInput   = "no markup given; pass text, --file or -"
	MsgErrWrite     = "failed to write output"
)
