package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/bezhuang/mdsegment/internal/types"
)

// inlineRule 是一个锚定在游标处的模式及其片段构造函数
//
// open 非空时失败具有单调性：在位置 p 已有开始定界符却匹配失败，说明 p 之后
// 没有闭合定界符，同一跨度中之后的位置也必然失败。这样的规则每个跨度最多
// 扫描到结尾一次。
type inlineRule struct {
	re    *regexp.Regexp
	build func(m []string) types.Segment
	open  string
}

func wrap(kind types.Kind) func(m []string) types.Segment {
	return func(m []string) types.Segment {
		return types.Segment{Kind: kind, Content: m[1]}
	}
}

// inlineRules 按优先级排列在链接之后：粗体先于斜体（单个 * 是 ** 的子串）。
// 链接由 tokenizer.link 手工匹配，语义与 LinkSource 相同。
var inlineRules = []inlineRule{
	{re: anchored(BoldStarSource), build: wrap(types.KindBold), open: "**"},
	{re: anchored(BoldUnderSource), build: wrap(types.KindBold), open: "__"},
	{re: anchored(ItalicStarSource), build: wrap(types.KindItalic), open: "*"},
	{re: anchored(ItalicUnderSource), build: wrap(types.KindItalic), open: "_"},
	{re: anchored(CodeSource), build: wrap(types.KindCode)},
	{re: anchored(StrikeSource), build: wrap(types.KindStrike)},
	{
		re: anchored(BareURLSource),
		build: func(m []string) types.Segment {
			return types.Segment{Kind: types.KindLink, Content: m[1], URL: m[1]}
		},
	},
}

// triggers holds every byte an inline rule can start with.
const triggers = "[*_`~h"

// tokenizer 保存单个跨度内的扫描状态
type tokenizer struct {
	text string
	// dead[i] 表示规则 i 已经因缺少闭合定界符而失败
	dead []bool
	// closeBracket/closeParen 缓存最近一次查找到的 ']' 和 ')' 位置；
	// 查找起点单调递增，缓存值不小于起点时仍然有效。len(text) 表示不存在。
	closeBracket int
	closeParen   int
}

func newTokenizer(text string) *tokenizer {
	return &tokenizer{
		text:         text,
		dead:         make([]bool, len(inlineRules)),
		closeBracket: -1,
		closeParen:   -1,
	}
}

// next returns the index of the first c at or after from, or len(text).
func (t *tokenizer) next(c byte, from int, cache *int) int {
	if *cache >= from {
		return *cache
	}
	if i := strings.IndexByte(t.text[from:], c); i >= 0 {
		*cache = from + i
	} else {
		*cache = len(t.text)
	}
	return *cache
}

// link matches [label](url) at pos. The label runs to the first ']' and the
// url to the first ')', both non-empty, exactly as LinkSource does.
func (t *tokenizer) link(pos int) (types.Segment, int, bool) {
	end := t.next(']', pos+1, &t.closeBracket)
	if end == pos+1 || end+1 >= len(t.text) || t.text[end+1] != '(' {
		return types.Segment{}, 0, false
	}
	urlStart := end + 2
	urlEnd := t.next(')', urlStart, &t.closeParen)
	if urlEnd == urlStart || urlEnd == len(t.text) {
		return types.Segment{}, 0, false
	}
	seg := types.Segment{Kind: types.KindLink, Content: t.text[pos+1 : end], URL: t.text[urlStart:urlEnd]}
	return seg, urlEnd + 1 - pos, true
}

// Inline tokenizes a span that contains no code fences.
//
// A single cursor walks the immutable input. At each position the rules are
// tried in priority order and the first one matching exactly at the cursor
// wins; otherwise the cursor moves one rune forward and the rune joins the
// pending text run.
func Inline(text string) []types.Segment {
	t := newTokenizer(text)
	var segments []types.Segment
	pending := 0
	pos := 0
	for pos < len(text) {
		if seg, n, ok := t.matchAt(pos); ok {
			if pending < pos {
				segments = append(segments, types.Segment{Kind: types.KindText, Content: text[pending:pos]})
			}
			segments = append(segments, seg)
			pos += n
			pending = pos
			continue
		}
		_, size := utf8.DecodeRuneInString(text[pos:])
		pos += size
	}
	if pending < len(text) {
		segments = append(segments, types.Segment{Kind: types.KindText, Content: text[pending:]})
	}
	return segments
}

// matchAt returns the segment produced by the first rule matching at pos,
// and the number of bytes it consumed.
func (t *tokenizer) matchAt(pos int) (types.Segment, int, bool) {
	c := t.text[pos]
	if strings.IndexByte(triggers, c) < 0 {
		return types.Segment{}, 0, false
	}
	if c == '[' {
		if seg, n, ok := t.link(pos); ok {
			return seg, n, true
		}
	}
	rest := t.text[pos:]
	for i, rule := range inlineRules {
		if t.dead[i] {
			continue
		}
		m := rule.re.FindStringSubmatch(rest)
		if m == nil {
			if rule.open != "" && strings.HasPrefix(rest, rule.open) {
				t.dead[i] = true
			}
			continue
		}
		return rule.build(m), len(m[0]), true
	}
	return types.Segment{}, 0, false
}
