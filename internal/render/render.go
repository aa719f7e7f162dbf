// Package render maps segments to terminal styles. It plays the part of the
// UI layer for terminals: every kind gets a lipgloss style, links show their
// target after the label.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bezhuang/mdsegment/internal/types"
)

// Palette holds the configurable colors. Values are anything lipgloss.Color
// accepts: ANSI numbers ("212") or hex ("#78DCE8").
type Palette struct {
	Code      string `mapstructure:"code"`
	CodeBlock string `mapstructure:"code_block"`
	Link      string `mapstructure:"link"`
	Dim       string `mapstructure:"dim"`
	Border    string `mapstructure:"border"`
}

// DefaultPalette returns the default colors.
func DefaultPalette() Palette {
	return Palette{
		Code:      "#FFD866",
		CodeBlock: "#A9DC76",
		Link:      "#78DCE8",
		Dim:       "#727072",
		Border:    "#5B595C",
	}
}

// StyleSet holds one style per segment kind.
type StyleSet struct {
	Text      lipgloss.Style
	Bold      lipgloss.Style
	Italic    lipgloss.Style
	Code      lipgloss.Style
	CodeBlock lipgloss.Style
	Strike    lipgloss.Style
	Link      lipgloss.Style
	LinkURL   lipgloss.Style
}

// NewStyleSet builds styles for r. A nil renderer uses the default one,
// which detects the color profile of stdout.
func NewStyleSet(r *lipgloss.Renderer, p Palette) *StyleSet {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &StyleSet{
		Text:   r.NewStyle(),
		Bold:   r.NewStyle().Bold(true),
		Italic: r.NewStyle().Italic(true),
		Code:   r.NewStyle().Foreground(lipgloss.Color(p.Code)),
		CodeBlock: r.NewStyle().
			Foreground(lipgloss.Color(p.CodeBlock)).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(p.Border)).
			PaddingLeft(1),
		Strike:  r.NewStyle().Strikethrough(true),
		Link:    r.NewStyle().Underline(true).Foreground(lipgloss.Color(p.Link)),
		LinkURL: r.NewStyle().Foreground(lipgloss.Color(p.Dim)),
	}
}

// DefaultStyles returns the default style set for stdout.
func DefaultStyles() *StyleSet {
	return NewStyleSet(nil, DefaultPalette())
}

// inline renders s line by line; lipgloss pads multi-line blocks to a
// common width, which would shift text that follows an inline segment.
func inline(style lipgloss.Style, s string) string {
	if !strings.Contains(s, "\n") {
		return style.Render(s)
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// Segments renders segments as one styled string.
//
// Code blocks always start and end on their own line.
func Segments(segments []types.Segment, styles *StyleSet) string {
	if styles == nil {
		styles = DefaultStyles()
	}
	var b strings.Builder
	afterBlock := false
	for _, seg := range segments {
		if afterBlock && !strings.HasPrefix(seg.Content, "\n") {
			b.WriteByte('\n')
		}
		afterBlock = false

		switch seg.Kind {
		case types.KindBold:
			b.WriteString(inline(styles.Bold, seg.Content))
		case types.KindItalic:
			b.WriteString(inline(styles.Italic, seg.Content))
		case types.KindCode:
			b.WriteString(inline(styles.Code, seg.Content))
		case types.KindStrike:
			b.WriteString(inline(styles.Strike, seg.Content))
		case types.KindLink:
			b.WriteString(inline(styles.Link, seg.Content))
			if !seg.IsBareURL() {
				b.WriteString(" " + styles.LinkURL.Render("("+seg.URL+")"))
			}
		case types.KindCodeBlock:
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
				b.WriteByte('\n')
			}
			b.WriteString(styles.CodeBlock.Render(seg.Code()))
			afterBlock = true
		default:
			b.WriteString(inline(styles.Text, seg.Content))
		}
	}
	return b.String()
}
