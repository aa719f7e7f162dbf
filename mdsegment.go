// Package mdsegment 将 Markdown 风格的聊天文本切分为带样式的片段
//
// 这个包面向无法渲染 HTML 的界面（例如沙箱化的小程序视图）：
// UI 层把每个 Segment.Kind 映射到一种样式，link 片段映射为打开 URL 的动作。
//
// 支持的片段类型（封闭集合）：
//   - text、bold、italic、code、code-block、strike、link（含裸 URL）
//
// 主要 API：
//   - Parse(): 切分为片段
//   - ToHTML(): 直接替换为 HTML 标记（可渲染原始标记的场景）
//   - ExtractLinks() / IsURL(): 裸 URL 工具
//   - Convert(): 片段转 Telegram 纯文本 + MessageEntity
//   - Telegramify(): 完整管道，返回可发送的内容列表
//
// 示例：
//
//	for _, seg := range mdsegment.Parse("**hi** see https://go.dev") {
//	    switch seg.Kind {
//	    case mdsegment.KindBold:
//	        // 粗体样式
//	    case mdsegment.KindLink:
//	        // 点击打开 seg.URL
//	    }
//	}
package mdsegment

import (
	"fmt"
	"unicode/utf8"

	"github.com/bezhuang/mdsegment/internal/parser"
)

// Parse 将 Markdown 文本切分为有序的片段列表
//
// 空输入返回空列表。格式错误的 Markdown 会退化为纯文本，永远不会出错。
// 函数无状态，可并发调用，相同输入总是得到相同输出。
func Parse(text string) []Segment {
	segments := parser.Parse(text)
	Logger.Debug("parsed markdown", "bytes", len(text), "segments", len(segments))
	return segments
}

// ParseBytes is Parse for raw input read from a file, socket or request body.
// It rejects bytes that are not valid UTF-8 with ErrInvalidArgument instead
// of guessing at an encoding.
func ParseBytes(b []byte) ([]Segment, error) {
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", ErrInvalidArgument)
	}
	return Parse(string(b)), nil
}
