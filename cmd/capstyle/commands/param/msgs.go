package param

const (
	MsgShort = "Call a parameterized capability"
	MsgLong  = `Param expands a capability that takes numeric parameters, such as cursor
movement, and shows the resulting sequence. Arguments that are not numbers
are passed through as text, which produces a hint when the name was meant
to be a formatting attribute.`
	MsgExample = `  capstyle param move 10 4
  capstyle param --raw move_x 0
  capstyle param color 208`

	MsgFlagRaw  = "Print only the sequence, without a newline"
	MsgErrWrite = "failed to write output"
)
