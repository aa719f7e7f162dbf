package mdsegment

import (
	"strings"

	"github.com/bezhuang/mdsegment/internal/parser"
)

// ExtractLinks 返回文本中所有裸 URL，按出现顺序
//
// [label](url) 语法内的目标不计入：这些区域在扫描前被替换为等长空白。
func ExtractLinks(text string) []string {
	if text == "" {
		return nil
	}
	masked := parser.LinkRe.ReplaceAllStringFunc(text, func(m string) string {
		return strings.Repeat(" ", len(m))
	})
	return parser.BareURLRe.FindAllString(masked, -1)
}

// IsURL reports whether the whole of text is a single bare URL, with no
// leading or trailing characters. The trailing-punctuation heuristic of the
// tokenizer applies, so "http://a.com." is not a URL.
func IsURL(text string) bool {
	if text == "" {
		return false
	}
	return parser.WholeURLRe.MatchString(text)
}
