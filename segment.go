package mdsegment

import (
	"strings"

	"github.com/bezhuang/mdsegment/internal/types"
)

// 导出类型别名
type (
	Segment = types.Segment
	Kind    = types.Kind
)

const (
	KindText      = types.KindText
	KindBold      = types.KindBold
	KindItalic    = types.KindItalic
	KindCode      = types.KindCode
	KindCodeBlock = types.KindCodeBlock
	KindStrike    = types.KindStrike
	KindLink      = types.KindLink
)

// Reconstruct joins segments back into Markdown using canonical delimiters.
func Reconstruct(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.Markdown())
	}
	return b.String()
}

// PlainText joins the content of all segments with every delimiter dropped.
func PlainText(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.Content)
	}
	return b.String()
}
