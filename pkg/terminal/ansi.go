package terminal

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// sgr builds a Select Graphic Rendition sequence
func sgr(code string) string {
	return termenv.CSI + code + "m"
}

// ansiCaps are ECMA-48 sequences understood by every terminal emulator in
// common use. Parameterized entries use terminfo template syntax so they
// go through the same parameterizer as database entries.
var ansiCaps = map[string]string{
	"bold":  sgr(termenv.BoldSeq),
	"dim":   sgr(termenv.FaintSeq),
	"sitm":  sgr(termenv.ItalicSeq),
	"ritm":  sgr("23"),
	"smul":  sgr(termenv.UnderlineSeq),
	"rmul":  sgr("24"),
	"blink": sgr(termenv.BlinkSeq),
	"rev":   sgr(termenv.ReverseSeq),
	"smso":  sgr(termenv.ReverseSeq),
	"rmso":  sgr("27"),
	"invis": sgr("8"),
	"smxx":  sgr(termenv.CrossOutSeq),
	"sgr0":  sgr(termenv.ResetSeq),
	"op":    sgr("39;49"),

	"cup":  termenv.CSI + "%i%p1%d;%p2%dH",
	"hpa":  termenv.CSI + "%i%p1%dG",
	"vpa":  termenv.CSI + "%i%p1%dd",
	"home": termenv.CSI + "H",
	"cuu1": termenv.CSI + "A",
	"cud1": "\n",
	"cub1": "\b",
	"cuf1": termenv.CSI + "C",
	"cuu":  termenv.CSI + "%p1%dA",
	"cud":  termenv.CSI + "%p1%dB",
	"cub":  termenv.CSI + "%p1%dD",
	"cuf":  termenv.CSI + "%p1%dC",
	"sc":   termenv.CSI + termenv.SaveCursorPositionSeq,
	"rc":   termenv.CSI + termenv.RestoreCursorPositionSeq,
	"cr":   "\r",

	"civis": termenv.CSI + termenv.HideCursorSeq,
	"cnorm": termenv.CSI + termenv.ShowCursorSeq,
	"smcup": termenv.CSI + termenv.AltScreenSeq,
	"rmcup": termenv.CSI + termenv.ExitAltScreenSeq,

	"clear": termenv.CSI + "H" + termenv.CSI + "2J",
	"el":    termenv.CSI + termenv.EraseLineRightSeq,
	"el1":   termenv.CSI + "1K",
	"ed":    termenv.CSI + "J",
	"ech":   termenv.CSI + "%p1%dX",
	"csr":   termenv.CSI + "%i%p1%d;%p2%dr",
	"ind":   "\n",
	"ri":    "\x1bM",
	"il1":   termenv.CSI + "L",
	"dl1":   termenv.CSI + "M",
	"il":    termenv.CSI + "%p1%dL",
	"dl":    termenv.CSI + "%p1%dM",

	"bel": "\a",
}

// ansiBackend serves capabilities without a terminfo database. Colour
// depth follows a termenv profile.
type ansiBackend struct {
	profile termenv.Profile
}

// NewANSIBackend returns a backend producing ECMA-48 sequences with the
// colour depth of profile.
func NewANSIBackend(profile termenv.Profile) Backend {
	return &ansiBackend{profile: profile}
}

func (b *ansiBackend) Name() string {
	return "ansi"
}

func (b *ansiBackend) Lookup(capname string) ([]byte, bool) {
	seq, ok := ansiCaps[capname]
	if !ok {
		return nil, false
	}
	return []byte(seq), true
}

func (b *ansiBackend) Colors() int {
	switch b.profile {
	case termenv.TrueColor:
		return 1 << 24
	case termenv.ANSI256:
		return 256
	case termenv.ANSI:
		return 16
	default:
		return 0
	}
}

// Color returns the sequence for palette index, degraded to the profile.
// Indexes outside the 256 colour palette have no sequence.
func (b *ansiBackend) Color(index int, background bool) string {
	if index < 0 || index > 255 || b.profile == termenv.Ascii {
		return ""
	}

	var c termenv.Color
	if index < 16 {
		c = termenv.ANSIColor(index)
	} else {
		c = b.profile.Convert(termenv.ANSI256Color(index))
	}

	seq := c.Sequence(background)
	if seq == "" {
		return ""
	}
	return sgr(seq)
}

// ProfileForKind guesses the colour profile of a terminal kind. An empty
// kind means the current process environment. COLORTERM describes the
// terminal named by $TERM, so it only counts for that kind.
func ProfileForKind(kind string) termenv.Profile {
	if kind == "" {
		return termenv.EnvColorProfile()
	}

	if kind == "dumb" {
		return termenv.Ascii
	}
	if kind == os.Getenv("TERM") {
		if ct := strings.ToLower(os.Getenv("COLORTERM")); ct == "truecolor" || ct == "24bit" {
			return termenv.TrueColor
		}
	}

	switch {
	case strings.Contains(kind, "truecolor") || strings.Contains(kind, "direct"):
		return termenv.TrueColor
	case strings.Contains(kind, "256color"):
		return termenv.ANSI256
	default:
		return termenv.ANSI
	}
}
