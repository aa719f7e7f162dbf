package render

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/bezhuang/mdsegment/internal/types"
)

// plainStyles renders to a non-terminal writer, so no escape codes are emitted.
func plainStyles() *StyleSet {
	return NewStyleSet(lipgloss.NewRenderer(io.Discard), DefaultPalette())
}

func TestSegments_Inline(t *testing.T) {
	segs := []types.Segment{
		{Kind: types.KindText, Content: "say "},
		{Kind: types.KindBold, Content: "hi"},
		{Kind: types.KindText, Content: " to "},
		{Kind: types.KindLink, Content: "docs", URL: "https://go.dev"},
		{Kind: types.KindText, Content: " or "},
		{Kind: types.KindLink, Content: "https://x.io", URL: "https://x.io"},
	}
	got := Segments(segs, plainStyles())
	assert.Equal(t, "say hi to docs (https://go.dev) or https://x.io", got)
}

func TestSegments_MultilineInlineKeepsLines(t *testing.T) {
	segs := []types.Segment{{Kind: types.KindItalic, Content: "a\nlonger line"}}
	assert.Equal(t, "a\nlonger line", Segments(segs, plainStyles()))
}

func TestSegments_CodeBlockOnOwnLines(t *testing.T) {
	segs := []types.Segment{
		{Kind: types.KindText, Content: "before"},
		{Kind: types.KindCodeBlock, Content: "x := 1"},
		{Kind: types.KindText, Content: "after"},
	}
	got := Segments(segs, plainStyles())
	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "before", lines[0])
	assert.Contains(t, lines[1], "x := 1")
	assert.Equal(t, "after", lines[2])
}

func TestSegments_Empty(t *testing.T) {
	assert.Equal(t, "", Segments(nil, plainStyles()))
}
