package textgrid

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/mattn/go-runewidth"
)

// splitLines splits a cell value on embedded line breaks into logical
// lines. Empty lines are dropped.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	var lines []string
	for line := range strings.SplitSeq(s, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// wrapLine wraps one logical line into segments whose display width does
// not exceed width. Breaks happen at word boundaries; a single word wider
// than the column is split runewise. A width of zero disables wrapping.
func wrapLine(s string, width int) []string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return []string{s}
	}

	var lines []string
	var cur strings.Builder
	curWidth := 0

	flush := func() {
		lines = append(lines, strings.TrimRight(cur.String(), " "))
		cur.Reset()
		curWidth = 0
	}

	tokens := words.FromString(s)
	for tokens.Next() {
		tok := tokens.Value()
		tw := runewidth.StringWidth(tok)
		if curWidth+tw > width {
			if strings.TrimSpace(tok) == "" {
				// The line breaks here; the whitespace itself is not
				// carried onto the next line.
				flush()
				continue
			}
			if curWidth > 0 {
				flush()
			}
			if tw > width {
				chunks := splitRunes(tok, width)
				lines = append(lines, chunks[:len(chunks)-1]...)
				last := chunks[len(chunks)-1]
				cur.WriteString(last)
				curWidth = runewidth.StringWidth(last)
				continue
			}
		}
		if curWidth == 0 && strings.TrimSpace(tok) == "" {
			continue
		}
		cur.WriteString(tok)
		curWidth += tw
	}
	if curWidth > 0 {
		flush()
	}
	if len(lines) == 0 {
		lines = append(lines, "")
	}
	return lines
}

// splitRunes hard-splits s into chunks of at most width display columns.
func splitRunes(s string, width int) []string {
	var chunks []string
	for s != "" {
		chunk := runewidth.Truncate(s, width, "")
		if chunk == "" {
			// A rune wider than the column still has to advance, or the
			// loop never terminates.
			r := []rune(s)
			chunk = string(r[0])
		}
		chunks = append(chunks, chunk)
		s = s[len(chunk):]
	}
	return chunks
}

// fitCell pads or truncates s to exactly width display columns.
func fitCell(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w > width {
		s = runewidth.Truncate(s, width, "")
		w = runewidth.StringWidth(s)
	}
	if w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
