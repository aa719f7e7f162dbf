package types

import "strings"

// Kind 表示片段的样式类型（封闭集合）
type Kind string

const (
	KindText      Kind = "text"
	KindBold      Kind = "bold"
	KindItalic    Kind = "italic"
	KindCode      Kind = "code"
	KindCodeBlock Kind = "code-block"
	KindStrike    Kind = "strike"
	KindLink      Kind = "link"
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	return string(k)
}

// Valid reports whether k is one of the seven known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindText, KindBold, KindItalic, KindCode, KindCodeBlock, KindStrike, KindLink:
		return true
	default:
		return false
	}
}

// Segment 是一段带样式的文本，定界符已去除
//
// URL 只在 Kind 为 link 时有值：Markdown 链接为显式目标，裸 URL 与 Content 相同。
// Lang 只在 code-block 的开始围栏同一行写有语言标记时有值，此时该标记仍是
// Content 的第一行。
type Segment struct {
	Kind    Kind   `json:"type" yaml:"type"`
	Content string `json:"content" yaml:"content"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`
	Lang    string `json:"lang,omitempty" yaml:"lang,omitempty"`
}

// Code returns the body of a code block without its info line.
func (s Segment) Code() string {
	if s.Lang == "" {
		return s.Content
	}
	_, body, _ := strings.Cut(s.Content, "\n")
	return strings.TrimLeft(body, "\r\n")
}

// IsBareURL reports whether a link segment came from a plain-text URL
// rather than [label](url) syntax.
func (s Segment) IsBareURL() bool {
	return s.Kind == KindLink && s.URL == s.Content
}

// MessageEntity 表示 Telegram 消息实体
type MessageEntity struct {
	Type     string `json:"type"`
	Offset   int    `json:"offset"`
	Length   int    `json:"length"`
	URL      string `json:"url,omitempty"`
	Language string `json:"language,omitempty"`
}

// RenderConfig 控制片段到 Telegram 内容的转换
type RenderConfig struct {
	// MaxCodeLines 超过该行数的代码块会被提取为文件
	MaxCodeLines int
	// RenderMermaid 是否将 mermaid 代码块渲染为图片
	RenderMermaid bool
	// DetectLanguage 是否把代码块首行的单词视为语言标记
	DetectLanguage bool
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		MaxCodeLines:   50,
		RenderMermaid:  true,
		DetectLanguage: true,
	}
}

// Markdown 使用规范定界符重新序列化片段
//
// bold 总是写成 **、italic 写成 *，因此 __x__ 与 _x_ 不会原样还原；
// 代码块内部被裁剪的空白也无法恢复。
func (s Segment) Markdown() string {
	switch s.Kind {
	case KindBold:
		return "**" + s.Content + "**"
	case KindItalic:
		return "*" + s.Content + "*"
	case KindCode:
		return "`" + s.Content + "`"
	case KindCodeBlock:
		if s.Lang != "" {
			return "```" + s.Content + "\n```"
		}
		return "```\n" + s.Content + "\n```"
	case KindStrike:
		return "~~" + s.Content + "~~"
	case KindLink:
		if s.IsBareURL() {
			return s.Content
		}
		return "[" + s.Content + "](" + s.URL + ")"
	default:
		return s.Content
	}
}
