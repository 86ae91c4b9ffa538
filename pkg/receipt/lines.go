package receipt

import "strings"

// Line is one trimmed, non-empty line of recognized text. Index is the
// position within the segmented sequence; extractors use it for positional
// tie-breaks.
type Line struct {
	Text  string
	Index int
}

// Segment splits recognized text into trimmed, non-empty lines. Empty
// input yields an empty sequence, never an error.
func Segment(text string) []Line {
	var out []Line
	for _, raw := range strings.Split(text, "\n") {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		out = append(out, Line{Text: s, Index: len(out)})
	}
	return out
}
