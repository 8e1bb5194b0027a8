package terminal

import "github.com/xo/terminfo"

// capIndex maps terminfo short names to xo/terminfo string capability
// indexes. Only capabilities reachable by name are listed.
var capIndex = map[string]int{
	// attributes
	"bold":  terminfo.EnterBoldMode,
	"dim":   terminfo.EnterDimMode,
	"sitm":  terminfo.EnterItalicsMode,
	"ritm":  terminfo.ExitItalicsMode,
	"smul":  terminfo.EnterUnderlineMode,
	"rmul":  terminfo.ExitUnderlineMode,
	"blink": terminfo.EnterBlinkMode,
	"rev":   terminfo.EnterReverseMode,
	"smso":  terminfo.EnterStandoutMode,
	"rmso":  terminfo.ExitStandoutMode,
	"sshm":  terminfo.EnterShadowMode,
	"ssubm": terminfo.EnterSubscriptMode,
	"ssupm": terminfo.EnterSuperscriptMode,
	"invis": terminfo.EnterSecureMode,
	"sgr0":  terminfo.ExitAttributeMode,
	"smacs": terminfo.EnterAltCharsetMode,
	"rmacs": terminfo.ExitAltCharsetMode,

	// colour
	"setaf": terminfo.SetAForeground,
	"setab": terminfo.SetABackground,
	"setf":  terminfo.SetForeground,
	"setb":  terminfo.SetBackground,
	"op":    terminfo.OrigPair,

	// cursor movement
	"cup":  terminfo.CursorAddress,
	"hpa":  terminfo.ColumnAddress,
	"vpa":  terminfo.RowAddress,
	"home": terminfo.CursorHome,
	"cuu1": terminfo.CursorUp,
	"cud1": terminfo.CursorDown,
	"cub1": terminfo.CursorLeft,
	"cuf1": terminfo.CursorRight,
	"cuu":  terminfo.ParmUpCursor,
	"cud":  terminfo.ParmDownCursor,
	"cub":  terminfo.ParmLeftCursor,
	"cuf":  terminfo.ParmRightCursor,
	"sc":   terminfo.SaveCursor,
	"rc":   terminfo.RestoreCursor,
	"cr":   terminfo.CarriageReturn,

	// cursor visibility and screens
	"civis": terminfo.CursorInvisible,
	"cnorm": terminfo.CursorNormal,
	"cvvis": terminfo.CursorVisible,
	"smcup": terminfo.EnterCaMode,
	"rmcup": terminfo.ExitCaMode,

	// erasing and scrolling
	"clear": terminfo.ClearScreen,
	"el":    terminfo.ClrEol,
	"el1":   terminfo.ClrBol,
	"ed":    terminfo.ClrEos,
	"ech":   terminfo.EraseChars,
	"csr":   terminfo.ChangeScrollRegion,
	"ind":   terminfo.ScrollForward,
	"ri":    terminfo.ScrollReverse,
	"il1":   terminfo.InsertLine,
	"dl1":   terminfo.DeleteLine,
	"il":    terminfo.ParmInsertLine,
	"dl":    terminfo.ParmDeleteLine,

	"bel":   terminfo.Bell,
	"flash": terminfo.FlashScreen,
}

// DefaultSugar maps mnemonic names to terminfo short names.
var DefaultSugar = map[string]string{
	"move":             "cup",
	"move_yx":          "cup",
	"move_x":           "hpa",
	"move_y":           "vpa",
	"move_up":          "cuu1",
	"move_down":        "cud1",
	"move_left":        "cub1",
	"move_right":       "cuf1",
	"move_n_up":        "cuu",
	"move_n_down":      "cud",
	"move_n_left":      "cub",
	"move_n_right":     "cuf",
	"clear_eol":        "el",
	"clear_bol":        "el1",
	"clear_eos":        "ed",
	"save":             "sc",
	"restore":          "rc",
	"normal":           "sgr0",
	"no_color":         "op",
	"underline":        "smul",
	"no_underline":     "rmul",
	"italic":           "sitm",
	"no_italic":        "ritm",
	"reverse":          "rev",
	"standout":         "smso",
	"no_standout":      "rmso",
	"shadow":           "sshm",
	"subscript":        "ssubm",
	"superscript":      "ssupm",
	"hide_cursor":      "civis",
	"normal_cursor":    "cnorm",
	"visible_cursor":   "cvvis",
	"enter_fullscreen": "smcup",
	"exit_fullscreen":  "rmcup",
	"scroll_forward":   "ind",
	"scroll_reverse":   "ri",
	"change_scroll":    "csr",
	"bell":             "bel",
}

// CapabilityNames returns every short name a backend may resolve
func CapabilityNames() []string {
	names := make([]string, 0, len(capIndex))
	for name := range capIndex {
		names = append(names, name)
	}
	return names
}
