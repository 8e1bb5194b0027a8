// Package sequences measures and strips terminal escape sequences in
// rendered text.
package sequences

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// escapes matches, in order: OSC strings ended by BEL or ST, CSI
// sequences, charset designations and two byte escapes.
var escapes = regexp.MustCompile(
	"\x1b\\][^\x07\x1b]*(?:\x07|\x1b\\\\)" +
		"|\x1b\\[[0-?]*[ -/]*[@-~]" +
		"|\x1b[()*+][0-9A-Za-z]" +
		"|\x1b[@-Z\\\\-_]")

// Strip removes escape sequences from text
func Strip(text string) string {
	if !strings.ContainsRune(text, '\x1b') {
		return text
	}
	return escapes.ReplaceAllString(text, "")
}

// Length returns the display width of text, ignoring escape sequences
// and counting wide characters as two cells
func Length(text string) int {
	return runewidth.StringWidth(Strip(text))
}

// Split separates text into alternating plain and escape segments. Each
// segment is either a whole escape sequence or text without any.
func Split(text string) []string {
	var parts []string
	last := 0
	for _, loc := range escapes.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			parts = append(parts, text[last:loc[0]])
		}
		parts = append(parts, text[loc[0]:loc[1]])
		last = loc[1]
	}
	if last < len(text) {
		parts = append(parts, text[last:])
	}
	return parts
}

// Truncate cuts text to at most width display cells. Escape sequences
// are kept so that attributes still get reset; no text follows the cut.
func Truncate(text string, width int) string {
	var b strings.Builder
	used := 0
	full := false
	for _, part := range Split(text) {
		if strings.HasPrefix(part, "\x1b") && escapes.MatchString(part) {
			b.WriteString(part)
			continue
		}
		if full {
			continue
		}
		for _, r := range part {
			w := runewidth.RuneWidth(r)
			if used+w > width {
				full = true
				break
			}
			b.WriteRune(r)
			used += w
		}
	}
	return b.String()
}

// Pad right-pads text with spaces to width display cells
func Pad(text string, width int) string {
	if n := width - Length(text); n > 0 {
		return text + strings.Repeat(" ", n)
	}
	return text
}
