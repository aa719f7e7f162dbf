// Package parser 将 Markdown 文本切分为带类型的片段
//
// 分两层：块级切分器先提取 ``` 围栏代码块，其余文本交给行内分词器。
// 两者都不持有跨调用的状态，可以并发使用。
package parser

import (
	"strings"

	"github.com/bezhuang/mdsegment/internal/types"
)

// Parse splits text into an ordered, flat list of segments.
//
// Fenced code blocks are matched non-greedily: a fence closes at the next
// ``` rather than the last one. An opening fence without a partner is left
// to the inline tokenizer as ordinary text.
func Parse(text string) []types.Segment {
	if text == "" {
		return nil
	}

	var segments []types.Segment
	last := 0
	for _, loc := range fenceRe.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] > last {
			segments = append(segments, Inline(text[last:loc[0]])...)
		}
		inner := text[loc[2]:loc[3]]
		segments = append(segments, types.Segment{
			Kind:    types.KindCodeBlock,
			Content: strings.TrimSpace(inner),
			Lang:    fenceLang(inner),
		})
		last = loc[1]
	}
	if last < len(text) {
		segments = append(segments, Inline(text[last:])...)
	}
	return segments
}

// fenceLang returns the info string written on the opening fence line, or ""
// when the fence is followed directly by a newline. A block on a single line
// has no info string.
func fenceLang(inner string) string {
	first, _, ok := strings.Cut(inner, "\n")
	if !ok {
		return ""
	}
	first = strings.TrimSpace(first)
	if !infoRe.MatchString(first) {
		return ""
	}
	return strings.ToLower(first)
}
