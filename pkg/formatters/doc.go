// Package formatters resolves human friendly attribute names into terminal
// escape sequences.
//
// Names such as "bold", "red", "on_bright_blue", "bold_underline_green" or
// "move_x" are looked up against a Terminal and turned into one of three
// Attribute values:
//
//   - FormattingString wraps text between a start sequence and the
//     terminal's "normal" reset sequence.
//   - ParameterizingString holds a sequence template (cursor movement and
//     the like) that still needs numeric arguments.
//   - NullCallableString is returned when nothing applies, for example when
//     the terminal cannot display colour. It renders as the empty string.
//
// # Name dispatch
//
// ResolveAttribute classifies a name before resolving it:
//
//	red, on_bright_blue         -> colour, see ResolveColor
//	bold, underline             -> compoundable capability
//	bold_on_bright_red          -> compound, every token resolved and joined
//	move_x, cup, anything else  -> parameterizing capability
//
// Compound names are split with SplitCompound, which keeps the "on_" and
// "bright_" prefixes attached to the colour that follows them.
//
// # Usage
//
//	attr := formatters.ResolveAttribute(term, "bright_red_on_black")
//	fmt.Println(formatters.Apply(attr, "alert"))
//
//	move := formatters.ResolveAttribute(term, "move_x")
//	seq, err := move.(formatters.ParameterizingString).Call(10)
//
// The package performs no I/O. Everything it knows about a terminal comes
// through the Terminal interface, and all values it returns are immutable.
package formatters
