package mdsegment

import (
	"strings"
	"unicode/utf8"

	"github.com/bezhuang/mdsegment/internal/buffer"
	"github.com/bezhuang/mdsegment/internal/types"
)

// 导出类型别名
type MessageEntity = types.MessageEntity

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Telegram measures entity offsets and lengths in UTF-16 code units,
// not Go string bytes or runes. Characters outside the BMP take 2 units.
func UTF16Len(text string) int {
	return buffer.UTF16Len(text)
}

// CountText 计算文本在 Telegram 中的有效长度（UTF-16 code units）
//
// 发送的是纯文本，URL 存储在 entity 中，因此计数就是文本的 UTF-16 长度。
func CountText(text string) int {
	return UTF16Len(text)
}

// TextChunk represents a chunk of text with its entities.
type TextChunk struct {
	Text     string
	Entities []MessageEntity
}

// newlineSplitPoints returns the byte index just past every newline.
func newlineSplitPoints(text string) []int {
	var points []int
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			points = append(points, i+1)
		}
	}
	return points
}

// utf16OffsetTable maps each byte position to its UTF-16 offset. Positions
// inside a multi-byte rune carry the offset of that rune's start.
func utf16OffsetTable(text string) []int {
	offsets := make([]int, len(text)+1)
	cum := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		for j := 0; j < size; j++ {
			offsets[i+j] = cum
		}
		if r > 0xFFFF {
			cum += 2
		} else {
			cum++
		}
		i += size
	}
	offsets[len(text)] = cum
	return offsets
}

// clipEntities keeps the entities overlapping [start, end) in UTF-16 units,
// clipped to that window and rebased so the window starts at zero.
func clipEntities(entities []MessageEntity, start, end int) []MessageEntity {
	var out []MessageEntity
	for _, ent := range entities {
		lo := max(ent.Offset, start)
		hi := min(ent.Offset+ent.Length, end)
		if hi <= lo {
			continue
		}
		ent.Offset = lo - start
		ent.Length = hi - lo
		out = append(out, ent)
	}
	return out
}

// SplitEntities splits (text, entities) into chunks not exceeding
// maxUTF16Len UTF-16 code units.
//
// Tries to split at newline boundaries; a line longer than the budget is
// hard-split on a rune boundary. Entities that span a split are clipped into
// both chunks.
func SplitEntities(text string, entities []MessageEntity, maxUTF16Len int) []TextChunk {
	if maxUTF16Len <= 0 || UTF16Len(text) <= maxUTF16Len {
		return []TextChunk{{Text: text, Entities: entities}}
	}

	offsets := utf16OffsetTable(text)
	splitPoints := newlineSplitPoints(text)

	var ranges [][2]int
	start := 0
	for start < len(text) {
		budget := offsets[start] + maxUTF16Len
		if offsets[len(text)] <= budget {
			ranges = append(ranges, [2]int{start, len(text)})
			break
		}

		cut := -1
		for _, sp := range splitPoints {
			if sp <= start {
				continue
			}
			if offsets[sp] > budget {
				break
			}
			cut = sp
		}

		if cut == -1 {
			// no newline fits, cut at the last rune start within budget
			cut = start
			for end := start; end < len(text); {
				_, size := utf8.DecodeRuneInString(text[end:])
				end += size
				if offsets[end] > budget {
					break
				}
				cut = end
			}
			if cut == start {
				// a single rune wider than the budget still has to make progress
				_, size := utf8.DecodeRuneInString(text[start:])
				cut = start + size
			}
		}

		ranges = append(ranges, [2]int{start, cut})
		start = cut
	}

	result := make([]TextChunk, 0, len(ranges))
	for _, r := range ranges {
		result = append(result, TextChunk{
			Text:     text[r[0]:r[1]],
			Entities: clipEntities(entities, offsets[r[0]], offsets[r[1]]),
		})
	}
	return result
}

// stripNewlinesAdjust strips leading/trailing newlines from text and
// adjusts entity offsets.
func stripNewlinesAdjust(text string, entities []MessageEntity) (string, []MessageEntity) {
	stripped := strings.TrimLeft(text, "\n")
	leading := len(text) - len(stripped)
	stripped = strings.TrimRight(stripped, "\n")
	if len(stripped) == len(text) {
		return text, entities
	}
	if stripped == "" {
		return "", nil
	}
	// newlines are one UTF-16 unit each
	return stripped, clipEntities(entities, leading, leading+UTF16Len(stripped))
}

// TrimSpace removes leading and trailing whitespace while adjusting entities.
func TrimSpace(text string, entities []MessageEntity) (string, []MessageEntity) {
	trimmed := strings.TrimSpace(text)
	if trimmed == text {
		return text, entities
	}
	if trimmed == "" {
		return "", nil
	}
	start := UTF16Len(text[:strings.Index(text, trimmed)])
	return trimmed, clipEntities(entities, start, start+UTF16Len(trimmed))
}
