package colors

const (
	MsgShort = "List the colors of the terminal"
	MsgLong  = `Colors shows the sixteen named colors with their sequences and a sample.
Use --all to include the indexed colors of 256 color terminals. Nothing is
listed when the terminal reports no colors.`
	MsgExample = `  capstyle colors
  capstyle colors --all --term xterm-256color
  capstyle colors -f json`

	MsgFlagAll = "Include indexed colors beyond the named sixteen"
)
