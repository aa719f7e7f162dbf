package buffer

import (
	"strings"

	"github.com/bezhuang/mdsegment/internal/types"
)

// UTF16Len returns the length of text measured in UTF-16 code units.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		if r > 0xFFFF {
			count += 2
		} else {
			count++
		}
	}
	return count
}

// TextBuffer accumulates plain text and the entities covering it, tracking
// the current UTF-16 offset as Telegram counts it.
type TextBuffer struct {
	sb          strings.Builder
	entities    []types.MessageEntity
	utf16Offset int
}

// New creates a new TextBuffer.
func New() *TextBuffer {
	return &TextBuffer{}
}

// Write appends unstyled text to the buffer.
func (tb *TextBuffer) Write(text string) {
	tb.sb.WriteString(text)
	tb.utf16Offset += UTF16Len(text)
}

// WriteEntity appends text and records an entity spanning exactly that
// text. Empty text records nothing.
func (tb *TextBuffer) WriteEntity(text string, entity types.MessageEntity) {
	if text == "" {
		return
	}
	entity.Offset = tb.utf16Offset
	entity.Length = UTF16Len(text)
	tb.entities = append(tb.entities, entity)
	tb.Write(text)
}

// UTF16Offset returns the current UTF-16 offset.
func (tb *TextBuffer) UTF16Offset() int {
	return tb.utf16Offset
}

// Len returns the number of bytes written so far.
func (tb *TextBuffer) Len() int {
	return tb.sb.Len()
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	return tb.sb.String()
}

// Entities returns the entities recorded so far, in offset order.
func (tb *TextBuffer) Entities() []types.MessageEntity {
	return tb.entities
}

// Reset clears the buffer.
func (tb *TextBuffer) Reset() {
	tb.sb.Reset()
	tb.entities = nil
	tb.utf16Offset = 0
}
