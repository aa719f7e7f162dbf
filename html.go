package mdsegment

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/bezhuang/mdsegment/internal/parser"
)

// htmlRule 是一次有序替换
type htmlRule struct {
	re      *regexp.Regexp
	replace func(m []string) string
}

func tag(name string) func(m []string) string {
	return func(m []string) string {
		return "<" + name + ">" + m[1] + "</" + name + ">"
	}
}

func anchor(href, label string) string {
	return `<a href="` + href + `" target="_blank">` + label + `</a>`
}

// htmlRules 与行内分词器保持相同的优先级
var htmlRules = []htmlRule{
	{regexp.MustCompile(parser.LinkSource), func(m []string) string { return anchor(m[2], m[1]) }},
	{regexp.MustCompile(parser.BoldStarSource), tag("strong")},
	{regexp.MustCompile(parser.BoldUnderSource), tag("strong")},
	{regexp.MustCompile(parser.ItalicStarSource), tag("em")},
	{regexp.MustCompile(parser.ItalicUnderSource), tag("em")},
	{regexp.MustCompile(parser.CodeSource), tag("code")},
	{regexp.MustCompile(parser.StrikeSource), tag("s")},
	{parser.BareURLRe, func(m []string) string { return anchor(m[1], m[1]) }},
}

var fenceRe = regexp.MustCompile(parser.FenceSource)

// ToHTML 将 Markdown 直接替换为 HTML 标记（不做任何转义或清洗）
//
// 先替换围栏代码块，然后按 链接、粗体、斜体、行内代码、删除线、裸 URL
// 的顺序替换，最后把换行替换为 <br>。已经生成的标记会先存入占位符，
// 后面的替换不会再改写它们；因此强调不会嵌套，链接的 href 也不会被
// 再次识别为裸 URL。<pre> 内部保留原始换行。
func ToHTML(text string) string {
	if text == "" {
		return ""
	}

	st := newStash(text)
	out := replaceAll(fenceRe, text, func(m []string) string {
		return st.put("<pre><code>" + m[1] + "</code></pre>")
	})
	for _, rule := range htmlRules {
		out = replaceAll(rule.re, out, func(m []string) string {
			return st.put(lineBreaks(rule.replace(m)))
		})
	}
	return st.restore(lineBreaks(out))
}

func lineBreaks(s string) string {
	return strings.ReplaceAll(s, "\n", "<br>")
}

// replaceAll is regexp.ReplaceAllStringFunc with access to submatches.
func replaceAll(re *regexp.Regexp, text string, fn func(m []string) string) string {
	locs := re.FindAllStringSubmatchIndex(text, -1)
	if locs == nil {
		return text
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		b.WriteString(text[last:loc[0]])
		m := make([]string, len(loc)/2)
		for i := range m {
			if loc[2*i] >= 0 {
				m[i] = text[loc[2*i]:loc[2*i+1]]
			}
		}
		b.WriteString(fn(m))
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

// stash holds generated markup behind placeholders. A placeholder starts
// with '<' so the bare URL pattern stops in front of it, as it would in
// front of a real tag.
//
// The NUL run framing the index is one longer than any NUL run in the input,
// so user text can never contain a placeholder.
type stash struct {
	mark  string
	parts []string
}

func newStash(text string) *stash {
	longest, run := 0, 0
	for i := 0; i < len(text); i++ {
		if text[i] != 0 {
			run = 0
			continue
		}
		run++
		longest = max(longest, run)
	}
	return &stash{mark: strings.Repeat("\x00", longest+1)}
}

func (s *stash) placeholder(i int) string {
	return "<" + s.mark + strconv.Itoa(i) + s.mark + ">"
}

func (s *stash) put(markup string) string {
	s.parts = append(s.parts, markup)
	return s.placeholder(len(s.parts) - 1)
}

// restore substitutes placeholders newest first; a later part may embed an
// earlier placeholder but never the reverse.
func (s *stash) restore(text string) string {
	for i := len(s.parts) - 1; i >= 0; i-- {
		text = strings.Replace(text, s.placeholder(i), s.parts[i], 1)
	}
	return text
}

// ToHTMLCommonMark 使用 goldmark 做完整的 CommonMark + GFM 渲染
//
// 适用于需要标题、列表、表格等完整语法的场景；原始 HTML 会被省略。
func ToHTMLCommonMark(text string) (string, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
	var buf bytes.Buffer
	if err := md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("render commonmark: %w", err)
	}
	return buf.String(), nil
}
