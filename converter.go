package mdsegment

import "github.com/bezhuang/mdsegment/internal/buffer"

// entityTypes 片段类型到 Telegram entity 类型的映射（link 与 code-block 单独处理）
var entityTypes = map[Kind]string{
	KindBold:   "bold",
	KindItalic: "italic",
	KindCode:   "code",
	KindStrike: "strikethrough",
}

// Convert 将 Markdown 转换为 (plain_text, entities) 用于 Telegram
//
// 参数:
//   - markdown: 原始 Markdown 文本
//   - opts: 转换选项，见 WithConfig 等
//
// 返回:
//   - string: 纯文本（定界符已去除）
//   - []MessageEntity: 实体列表，偏移量以 UTF-16 code units 计
func Convert(markdown string, opts ...Option) (string, []MessageEntity) {
	options := applyOptions(opts...)
	return ConvertSegments(Parse(markdown), options.Config)
}

// ConvertSegments 将已切分的片段转换为 (plain_text, entities)
func ConvertSegments(segments []Segment, config *RenderConfig) (string, []MessageEntity) {
	if config == nil {
		config = DefaultConfig()
	}
	tb := buffer.New()
	for _, seg := range segments {
		writeSegment(tb, seg, config)
	}
	return tb.String(), tb.Entities()
}

func writeSegment(tb *buffer.TextBuffer, seg Segment, config *RenderConfig) {
	switch seg.Kind {
	case KindLink:
		if seg.IsBareURL() {
			tb.WriteEntity(seg.Content, MessageEntity{Type: "url"})
		} else {
			tb.WriteEntity(seg.Content, MessageEntity{Type: "text_link", URL: seg.URL})
		}
	case KindCodeBlock:
		lang, code := codeBlockParts(seg, config)
		tb.WriteEntity(code, MessageEntity{Type: "pre", Language: lang})
	default:
		if typ, ok := entityTypes[seg.Kind]; ok {
			tb.WriteEntity(seg.Content, MessageEntity{Type: typ})
			return
		}
		tb.Write(seg.Content)
	}
}

// codeBlockParts splits a code block into the info string written on its
// opening fence and the code body when language detection is enabled.
// Blocks without an info string are returned whole.
func codeBlockParts(seg Segment, config *RenderConfig) (string, string) {
	if !config.DetectLanguage || seg.Lang == "" {
		return "", seg.Content
	}
	return seg.Lang, seg.Code()
}
