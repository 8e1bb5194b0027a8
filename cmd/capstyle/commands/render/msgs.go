package render

const (
	MsgShort = "Wrap text in a formatting attribute"
	MsgLong  = `Render wraps the text in the sequence an attribute name resolves to,
followed by the terminal's reset sequence. With --style the name is looked
up in the [styles] table of the configuration instead.

Parameterized capabilities such as move_x cannot wrap text; use the param
command for those.`
	MsgExample = `  capstyle render bold_red "disk full"
  capstyle render --raw underline hello world
  capstyle render --style warning "low battery"`

	MsgFlagStyle = "Use a named style from the configuration"
	MsgFlagRaw   = "Print only the styled text"
	MsgErrWrite  = "failed to write output"
)
