package textgrid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapLineFits(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"hi"}, wrapLine("hi", 5))
}

func TestWrapLineZeroWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"hi"}, wrapLine("hi", 0))
}

func TestWrapLineWordBoundaries(t *testing.T) {
	t.Parallel()
	lines := wrapLine("the quick brown fox", 10)
	assert.Equal(t, []string{"the quick", "brown fox"}, lines)
}

func TestWrapLineHardSplit(t *testing.T) {
	t.Parallel()
	lines := wrapLine("Hello", 3)
	assert.Equal(t, []string{"Hel", "lo"}, lines)
}

func TestWrapLineWideCharSafety(t *testing.T) {
	t.Parallel()
	// "你" is a full-width character (2 columns). With width=1, Truncate
	// returns "" because the char doesn't fit. The safety branch advances
	// one rune to avoid an infinite loop.
	lines := wrapLine("你好", 1)
	assert.Equal(t, []string{"你", "好"}, lines)
}

func TestWrapLineLongWordThenShort(t *testing.T) {
	t.Parallel()
	lines := wrapLine("extraordinary cat", 6)
	assert.Equal(t, []string{"extrao", "rdinar", "y cat"}, lines)
}

func TestWrapLineTrimsBreakWhitespace(t *testing.T) {
	t.Parallel()
	for _, line := range wrapLine("a b c d e f g h", 4) {
		assert.Equal(t, strings.TrimRight(line, " "), line)
	}
}

func TestSplitRunes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"abc", "de"}, splitRunes("abcde", 3))
}

func TestSplitLines(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  []string
	}{
		"no breaks":      {input: "abc", want: []string{"abc"}},
		"unix breaks":    {input: "a\nb", want: []string{"a", "b"}},
		"windows breaks": {input: "a\r\nb", want: []string{"a", "b"}},
		"blanks dropped": {input: "a\n\nb\n", want: []string{"a", "b"}},
		"empty":          {input: "", want: nil},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, splitLines(tt.input))
		})
	}
}

func TestFitCell(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		width int
		want  string
	}{
		"pads":          {input: "ab", width: 4, want: "ab  "},
		"exact":         {input: "abcd", width: 4, want: "abcd"},
		"truncates":     {input: "abcde", width: 4, want: "abcd"},
		"empty":         {input: "", width: 3, want: "   "},
		"zero width":    {input: "ab", width: 0, want: ""},
		"wide rune pad": {input: "你", width: 3, want: "你 "},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fitCell(tt.input, tt.width))
		})
	}
}

func TestCellText(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "abc", cellText("abc"))
	assert.Equal(t, "42", cellText(42))
	assert.Equal(t, "true", cellText(true))
}

func TestTextColumnAddCellsReportsCount(t *testing.T) {
	t.Parallel()
	c := newTextColumn("h", 4, " ", '-')
	assert.Equal(t, 1, c.AddCells("hi"))
	assert.Equal(t, 2, c.AddCells("hi you"))
	assert.Equal(t, 3, c.Height())
}

func TestTextColumnAddCellNoRewrap(t *testing.T) {
	t.Parallel()
	c := newTextColumn("h", 2, " ", '-')
	c.AddCell("raw line longer than width")
	assert.Equal(t, 1, c.Height())
}

func TestTextColumnSegments(t *testing.T) {
	t.Parallel()
	c := newTextColumn("hdr", 5, " ", '-')
	c.AddCells("x")

	var sb strings.Builder
	c.WriteHeaderOn(&sb, true)
	assert.Equal(t, "hdr   ", sb.String())

	sb.Reset()
	c.WriteSeparatorOn(&sb, false)
	assert.Equal(t, "-----", sb.String())

	sb.Reset()
	c.WriteCellOn(0, &sb, false)
	assert.Equal(t, "x    ", sb.String())

	// Past the column height a blank segment is painted.
	sb.Reset()
	c.WriteCellOn(9, &sb, true)
	assert.Equal(t, "      ", sb.String())
}

func TestTextColumnTruncatesOversizedHeader(t *testing.T) {
	t.Parallel()
	c := newTextColumn("toolong", 4, " ", '-')
	var sb strings.Builder
	c.WriteHeaderOn(&sb, false)
	assert.Equal(t, "tool", sb.String())
}

func TestTextColumnNegativeWidthClamped(t *testing.T) {
	t.Parallel()
	c := newTextColumn("h", -3, " ", '-')
	var sb strings.Builder
	c.WriteSeparatorOn(&sb, false)
	assert.Equal(t, "", sb.String())
}
