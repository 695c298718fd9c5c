package textgrid

// WidthAllocator distributes a total display width across a number of
// columns, returning the shared per-column width. Implementations must
// tolerate a column count of zero; the result is unused in that case.
type WidthAllocator interface {
	Calculate(totalWidth, columnCount int) int
}

// EvenWidths is the default WidthAllocator. It splits the total width
// evenly, reserving one column for the delimiter between each pair of
// neighbors: a single column gets the whole width; n columns each get
// totalWidth/n - 1, or exactly totalWidth/n when the division remainder
// already covers the n-1 delimiters.
type EvenWidths struct{}

// Calculate implements [WidthAllocator].
func (EvenWidths) Calculate(totalWidth, columnCount int) int {
	if columnCount <= 1 {
		return totalWidth
	}
	if totalWidth%columnCount == columnCount-1 {
		return totalWidth / columnCount
	}
	return totalWidth/columnCount - 1
}
