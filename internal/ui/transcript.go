package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// transcriptWidth caps the transcript box at 70 display columns.
const transcriptWidth = 70

// Transcript prints text in a bordered box, word-wrapped to the terminal.
func (t *Terminal) Transcript(text string) {
	lines := WrapText(text, transcriptWidth)

	width := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}

	rule := strings.Repeat("─", width+4)

	t.Println()
	t.green.Fprintln(t.out, rule)
	for _, line := range lines {
		pad := strings.Repeat(" ", width-runewidth.StringWidth(line))
		t.green.Fprint(t.out, "│ ")
		t.bright.Fprint(t.out, line)
		t.green.Fprintln(t.out, pad+" │")
	}
	t.green.Fprintln(t.out, rule)
	t.Println()
}

// WrapText word-wraps text to the given display width. Existing newlines are
// preserved and words wider than the width are hard-split. Widths are display
// columns, so wide runes count as two.
func WrapText(text string, width int) []string {
	var out []string

	for _, line := range strings.Split(text, "\n") {
		if runewidth.StringWidth(line) <= width {
			out = append(out, line)
			continue
		}

		current := ""
		for _, word := range strings.Fields(line) {
			for runewidth.StringWidth(word) > width {
				if current != "" {
					out = append(out, current)
					current = ""
				}
				head, rest := splitAtWidth(word, width)
				out = append(out, head)
				word = rest
			}
			switch {
			case current == "":
				current = word
			case runewidth.StringWidth(current)+1+runewidth.StringWidth(word) <= width:
				current += " " + word
			default:
				out = append(out, current)
				current = word
			}
		}
		if current != "" {
			out = append(out, current)
		}
	}

	if len(out) == 0 {
		out = []string{""}
	}
	return out
}

// splitAtWidth cuts s at the last rune boundary that fits in width columns.
func splitAtWidth(s string, width int) (string, string) {
	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > width {
			return s[:i], s[i:]
		}
		w += rw
	}
	return s, ""
}
