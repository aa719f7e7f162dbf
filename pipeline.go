package mdsegment

import (
	"context"
	"strings"

	"github.com/bezhuang/mdsegment/internal/buffer"
	"github.com/bezhuang/mdsegment/internal/mermaid"
	"github.com/bezhuang/mdsegment/internal/util"
)

// DefaultMaxMessageLength 是 Telegram 单条消息的 UTF-16 长度上限
const DefaultMaxMessageLength = 4096

// Telegramify 将 Markdown 转换为 Telegram 就绪的内容片段
//
// 步骤：
//  1. Parse 切分为片段
//  2. 按顺序遍历片段：
//     - mermaid 代码块 → 渲染为 Photo（失败时为 File）
//     - 超过 MaxCodeLines 行的代码块 → File
//     - 其余片段 → 写入当前文本区域
//  3. 每个文本区域转换为 (text, entities)，按 maxMessageLength 拆分为 Text
//
// maxMessageLength <= 0 时使用 DefaultMaxMessageLength。只有 ctx 被取消时返回错误。
func Telegramify(ctx context.Context, markdown string, maxMessageLength int, opts ...Option) ([]Content, error) {
	if maxMessageLength <= 0 {
		maxMessageLength = DefaultMaxMessageLength
	}
	options := applyOptions(opts...)
	config := options.Config

	var renderer *mermaid.Renderer
	if config.RenderMermaid {
		renderer = mermaid.NewRenderer(options.HTTPClient)
	}

	var result []Content
	// tb 累积当前文本区域，遇到需要单独发送的代码块时清空
	tb := buffer.New()
	flush := func() {
		if tb.Len() == 0 {
			return
		}
		Logger.Debug("flushing text region", "utf16", tb.UTF16Offset(), "entities", len(tb.Entities()))
		appendTextChunks(&result, tb.String(), tb.Entities(), maxMessageLength)
		tb.Reset()
	}

	for _, seg := range Parse(markdown) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if seg.Kind != KindCodeBlock {
			writeSegment(tb, seg, config)
			continue
		}

		lang, code := codeBlockParts(seg, config)
		switch {
		case lang == "mermaid" && renderer != nil:
			flush()
			result = append(result, renderMermaid(ctx, renderer, code))
		case config.MaxCodeLines > 0 && strings.Count(code, "\n")+1 > config.MaxCodeLines:
			flush()
			result = append(result, codeBlockFile(code, lang))
		default:
			writeSegment(tb, seg, config)
		}
	}
	flush()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// appendTextChunks 按 maxMessageLength 拆分文本并追加 Text 对象
func appendTextChunks(result *[]Content, text string, entities []MessageEntity, maxMessageLength int) {
	text, entities = stripNewlinesAdjust(text, entities)
	if strings.TrimSpace(text) == "" {
		return
	}
	for _, chunk := range SplitEntities(text, entities, maxMessageLength) {
		chunkText, chunkEntities := stripNewlinesAdjust(chunk.Text, chunk.Entities)
		if chunkText == "" {
			continue
		}
		*result = append(*result, &Text{
			Text:         chunkText,
			Entities:     chunkEntities,
			ContentTrace: newTrace(SourceText, nil),
		})
	}
}

// codeBlockFile 将长代码块提取为 File
func codeBlockFile(code, lang string) *File {
	if lang == "" {
		lang = "txt"
	}
	return &File{
		FileName:     util.GetFilename(code, lang),
		FileData:     []byte(code),
		ContentTrace: newTrace(SourceCodeBlock, map[string]any{"language": lang}),
	}
}

// renderMermaid 渲染 mermaid 图表为 Photo，失败时回退为 File
func renderMermaid(ctx context.Context, renderer *mermaid.Renderer, code string) Content {
	img, caption, err := renderer.Render(ctx, code)
	if err != nil {
		Logger.Warn("mermaid rendering failed, sending source as file", "error", err)
		return &File{
			FileName:     "invalid_mermaid.txt",
			FileData:     []byte(code),
			ContentTrace: newTrace(SourceMermaid, map[string]any{"error": err.Error()}),
		}
	}
	return &Photo{
		FileName:     "mermaid.webp",
		FileData:     img.Bytes(),
		Caption:      caption,
		ContentTrace: newTrace(SourceMermaid, nil),
	}
}
