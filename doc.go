// Package textgrid renders tabular data as fixed-width text grids for
// terminal display, such as the option/description table in a command-line
// tool's help output.
//
// A [Grid] is created with a fixed set of column headers and accumulates
// rows of arbitrary printable values. [Grid.Format] returns the rendered
// grid: a header line, a separator line of rule characters, and one body
// line per row of the tallest column, every line exactly as wide as the
// columns plus their delimiters:
//
//	g := textgrid.New([]string{"Option", "Description"})
//	g.AddRow("--verbose", "Enable verbose output")
//	g.AddRow("--config <file>", "Path to the configuration file")
//	fmt.Print(g.Format())
//
// # Layout
//
// The total display width (default 80) is split across the headers by a
// [WidthAllocator]; every column gets the same target width, with room
// reserved for the inter-column delimiter. Values wider than their column
// wrap at word boundaries onto additional lines, and the other columns in
// the same row are padded with blank lines so each row stays rectangular.
// Display widths are measured with go-runewidth, so wide runes count for
// two columns.
//
// # Ragged Rows
//
// A row may carry fewer values than there are headers. Only the columns
// that received a value are padded against each other; trailing columns
// are left untouched and render blank segments. Values beyond the header
// count are silently dropped. Supply exactly one value per header if the
// full grid must stay rectangular.
//
// # Configuration
//
// The fixed constants of the layout are options on [New]:
//
//   - [WithTotalWidth] — total display width (default 80)
//   - [WithLineTerminator] — line terminator (default "\n")
//   - [WithDelimiter] — inter-column delimiter (default one space)
//   - [WithRule] — separator rule character (default '-')
//
// # Substitution
//
// The two collaborators behind the grid are narrow interfaces: [Column]
// owns one header and its wrapped line buffer, [WidthAllocator] computes
// the shared column width. [WithColumnFactory] and [WithWidthAllocator]
// swap in alternative implementations; [EvenWidths] and the built-in
// wrapping column are the defaults.
//
// A Grid is an ordinary mutable value with no internal locking. Serialize
// access externally if it is shared across goroutines.
package textgrid
