package formatters

import "strings"

// SplitCompound splits a compound attribute name on underscores.
//
// The words "on" and "bright" are glue rather than names of their own, so
// they stay attached to whatever follows:
//
//	SplitCompound("bold_on_bright_red") // ["bold", "on_bright_red"]
//	SplitCompound("")                   // [""]
func SplitCompound(name string) []string {
	words := strings.Split(name, "_")
	merged := make([]string, 0, len(words))
	glue := ""
	for _, word := range words {
		if word == "on" || word == "bright" {
			glue += word + "_"
			continue
		}
		merged = append(merged, glue+word)
		glue = ""
	}
	if glue != "" {
		// trailing glue has nothing to attach to
		merged = append(merged, strings.TrimSuffix(glue, "_"))
	}
	return merged
}
