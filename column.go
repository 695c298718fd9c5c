package textgrid

import (
	"fmt"
	"strings"
)

// Column is one named vertical slice of a grid. It owns its header, its
// fixed target width, and the wrapped lines accumulated so far.
//
// Every painting method must emit a segment of exactly the column's target
// width, followed by the inter-column delimiter only when more is true.
type Column interface {
	// AddCells converts value to text, wraps it into fitted lines,
	// appends them, and reports how many lines were appended.
	AddCells(value any) int

	// AddCell appends exactly one raw line without re-wrapping. The grid
	// uses it to pad short columns with blank lines.
	AddCell(line string)

	// Height reports the number of stored lines.
	Height() int

	WriteHeaderOn(sb *strings.Builder, more bool)
	WriteSeparatorOn(sb *strings.Builder, more bool)

	// WriteCellOn paints the line at index, or a blank segment when index
	// is at or beyond the column's height.
	WriteCellOn(index int, sb *strings.Builder, more bool)
}

type textColumn struct {
	header    string
	width     int
	delimiter string
	rule      rune
	cells     []string
}

func newTextColumn(header string, width int, delimiter string, rule rune) *textColumn {
	return &textColumn{
		header:    header,
		width:     max(width, 0),
		delimiter: delimiter,
		rule:      rule,
	}
}

// AddCells wraps value into the column. Embedded line breaks split the
// value into logical lines first; each is wrapped independently. Empty
// logical lines are skipped, so an empty value adds no cells.
func (c *textColumn) AddCells(value any) int {
	before := len(c.cells)
	for _, line := range splitLines(cellText(value)) {
		c.cells = append(c.cells, wrapLine(line, c.width)...)
	}
	return len(c.cells) - before
}

func (c *textColumn) AddCell(line string) {
	c.cells = append(c.cells, line)
}

func (c *textColumn) Height() int {
	return len(c.cells)
}

func (c *textColumn) WriteHeaderOn(sb *strings.Builder, more bool) {
	c.writeSegment(sb, c.header, more)
}

func (c *textColumn) WriteSeparatorOn(sb *strings.Builder, more bool) {
	c.writeSegment(sb, strings.Repeat(string(c.rule), c.width), more)
}

func (c *textColumn) WriteCellOn(index int, sb *strings.Builder, more bool) {
	cell := ""
	if index < len(c.cells) {
		cell = c.cells[index]
	}
	c.writeSegment(sb, cell, more)
}

func (c *textColumn) writeSegment(sb *strings.Builder, s string, more bool) {
	sb.WriteString(fitCell(s, c.width))
	if more {
		sb.WriteString(c.delimiter)
	}
}

// cellText converts an arbitrary cell value to its text representation.
func cellText(value any) string {
	if s, ok := value.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", value)
}
