package textgrid

import (
	"io"
	"strings"
)

const (
	defaultTotalWidth = 80
	defaultDelimiter  = " "
	defaultTerminator = "\n"
	defaultRule       = '-'
)

// ColumnFactory creates the Column backing one header. The width is the
// shared per-column width computed by the grid's WidthAllocator.
type ColumnFactory func(header string, width int) Column

// Option configures a Grid at construction time.
type Option func(*Grid)

// WithTotalWidth sets the total display width the grid fits into.
// Default is 80.
func WithTotalWidth(width int) Option {
	return func(g *Grid) { g.totalWidth = width }
}

// WithLineTerminator sets the terminator appended after every output line.
// Default is "\n".
func WithLineTerminator(term string) Option {
	return func(g *Grid) { g.terminator = term }
}

// WithDelimiter sets the delimiter painted between adjacent columns.
// Default is a single space. Applies to columns created by the default
// factory; a custom ColumnFactory owns its own delimiter.
func WithDelimiter(delim string) Option {
	return func(g *Grid) { g.delimiter = delim }
}

// WithRule sets the rule character used for the separator line.
// Default is '-'. Applies to columns created by the default factory.
func WithRule(rule rune) Option {
	return func(g *Grid) { g.rule = rule }
}

// WithWidthAllocator replaces the policy that distributes the total width
// across columns. Default is [EvenWidths].
func WithWidthAllocator(a WidthAllocator) Option {
	return func(g *Grid) { g.allocator = a }
}

// WithColumnFactory replaces the Column implementation backing each header.
func WithColumnFactory(f ColumnFactory) Option {
	return func(g *Grid) { g.factory = f }
}

// Grid accumulates rows of cell values under a fixed set of column headers
// and renders them as an aligned text block. Headers are set once at
// construction; [Grid.Clear] discards accumulated rows but never headers.
//
// A Grid is not safe for concurrent use.
type Grid struct {
	headers    []string
	columns    []Column
	allocator  WidthAllocator
	factory    ColumnFactory
	totalWidth int
	delimiter  string
	terminator string
	rule       rune
}

// New creates an empty grid with the given column headers. The headers
// slice is copied; a nil or empty slice yields a grid with no columns.
func New(headers []string, opts ...Option) *Grid {
	g := &Grid{
		headers:    append([]string(nil), headers...),
		allocator:  EvenWidths{},
		totalWidth: defaultTotalWidth,
		delimiter:  defaultDelimiter,
		terminator: defaultTerminator,
		rule:       defaultRule,
	}
	g.factory = func(header string, width int) Column {
		return newTextColumn(header, width, g.delimiter, g.rule)
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Clear()
	return g
}

// Headers returns a copy of the grid's column headers.
func (g *Grid) Headers() []string {
	out := make([]string, len(g.headers))
	copy(out, g.headers)
	return out
}

// AddRow adds one row of cell values, one value per column in header order.
// Values beyond the number of headers are dropped. Each column wraps its
// value into as many lines as it needs; the columns that received a value
// in this call are then padded to the tallest of them, so a single row
// always renders as a rectangle.
//
// Columns with no corresponding value are left untouched, including
// padding. Callers that want a fully rectangular grid must supply exactly
// one value per header in every call.
func (g *Grid) AddRow(values ...any) {
	g.addPaddingCells(g.addRowCells(values))
}

func (g *Grid) addRowCells(values []any) []int {
	n := min(len(values), len(g.columns))
	added := make([]int, n)
	for i := range n {
		added[i] = g.columns[i].AddCells(values[i])
	}
	return added
}

func (g *Grid) addPaddingCells(added []int) {
	tallest := 0
	for _, n := range added {
		tallest = max(tallest, n)
	}
	for i, n := range added {
		for range tallest - n {
			g.columns[i].AddCell("")
		}
	}
}

// Format renders the grid: a header line, a separator line, and one body
// line per row of the tallest column. Shorter columns paint blank segments.
// A grid with zero columns renders as two bare line terminators.
func (g *Grid) Format() string {
	var sb strings.Builder
	g.writeHeadersOn(&sb)
	g.writeSeparatorsOn(&sb)
	g.writeRowsOn(&sb)
	return sb.String()
}

// WriteTo writes the rendered grid to w. It implements [io.WriterTo].
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.Format())
	return int64(n), err
}

// Clear discards all accumulated rows and recreates every column empty.
// Headers and the computed column width are preserved. Clear is idempotent.
func (g *Grid) Clear() {
	width := g.allocator.Calculate(g.totalWidth, len(g.headers))
	g.columns = make([]Column, len(g.headers))
	for i, header := range g.headers {
		g.columns[i] = g.factory(header, width)
	}
}

func (g *Grid) writeHeadersOn(sb *strings.Builder) {
	for i, col := range g.columns {
		col.WriteHeaderOn(sb, i < len(g.columns)-1)
	}
	sb.WriteString(g.terminator)
}

func (g *Grid) writeSeparatorsOn(sb *strings.Builder) {
	for i, col := range g.columns {
		col.WriteSeparatorOn(sb, i < len(g.columns)-1)
	}
	sb.WriteString(g.terminator)
}

func (g *Grid) writeRowsOn(sb *strings.Builder) {
	maxHeight := 0
	for _, col := range g.columns {
		maxHeight = max(maxHeight, col.Height())
	}
	for row := range maxHeight {
		g.writeRowOn(sb, row)
	}
}

func (g *Grid) writeRowOn(sb *strings.Builder, row int) {
	for i, col := range g.columns {
		col.WriteCellOn(row, sb, i < len(g.columns)-1)
	}
	sb.WriteString(g.terminator)
}
