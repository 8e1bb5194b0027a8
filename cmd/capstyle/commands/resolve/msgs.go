package resolve

const (
	MsgShort = "Show what attribute names resolve to"
	MsgLong  = `Resolve classifies each name as a color, a compoundable, a compound or a
terminal capability, and shows the escape sequence it resolves to on the
current terminal. Nothing is emitted when styling is disabled.`
	MsgExample = `  capstyle resolve bold red_on_white
  capstyle resolve --term xterm-256color color208
  capstyle resolve -f json move_x`
)
