package mdsegment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTF16Len(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"cjk", "你好", 2},
		{"bmp emoji with selector", "☑️", 2},
		{"supplementary emoji", "📌", 2},
		{"mixed", "A📌B", 4},
		{"flag", "🇺🇸", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UTF16Len(tt.in))
			assert.Equal(t, tt.want, CountText(tt.in))
		})
	}
}

func TestSplitEntities_NoSplitNeeded(t *testing.T) {
	entities := []MessageEntity{{Type: "bold", Offset: 0, Length: 5}}
	chunks := SplitEntities("hello world", entities, 100)
	require.Len(t, chunks, 1)
	assert.Equal(t, "hello world", chunks[0].Text)
	assert.Equal(t, entities, chunks[0].Entities)
}

func TestSplitEntities_SplitAtNewline(t *testing.T) {
	text := "line one\nline two\nline three"
	entities := []MessageEntity{
		{Type: "bold", Offset: 0, Length: 4},
		{Type: "italic", Offset: 18, Length: 4},
	}
	chunks := SplitEntities(text, entities, 18)
	require.Len(t, chunks, 2)
	assert.Equal(t, "line one\nline two\n", chunks[0].Text)
	assert.Equal(t, "line three", chunks[1].Text)
	assert.Equal(t, []MessageEntity{{Type: "bold", Offset: 0, Length: 4}}, chunks[0].Entities)
	assert.Equal(t, []MessageEntity{{Type: "italic", Offset: 0, Length: 4}}, chunks[1].Entities)
}

func TestSplitEntities_ClipsSpanningEntity(t *testing.T) {
	text := "aaaa\nbbbb"
	entities := []MessageEntity{{Type: "code", Offset: 2, Length: 5}}
	chunks := SplitEntities(text, entities, 5)
	require.Len(t, chunks, 2)
	assert.Equal(t, []MessageEntity{{Type: "code", Offset: 2, Length: 3}}, chunks[0].Entities)
	assert.Equal(t, []MessageEntity{{Type: "code", Offset: 0, Length: 2}}, chunks[1].Entities)
}

func TestSplitEntities_HardSplitNoNewlines(t *testing.T) {
	text := strings.Repeat("x", 25)
	chunks := SplitEntities(text, nil, 10)
	require.Len(t, chunks, 3)
	var joined strings.Builder
	for _, c := range chunks {
		assert.LessOrEqual(t, UTF16Len(c.Text), 10)
		joined.WriteString(c.Text)
	}
	assert.Equal(t, text, joined.String())
}

func TestSplitEntities_NeverSplitsSurrogatePair(t *testing.T) {
	text := strings.Repeat("📌", 5)
	chunks := SplitEntities(text, nil, 3)
	var joined strings.Builder
	for _, c := range chunks {
		assert.LessOrEqual(t, UTF16Len(c.Text), 3)
		assert.True(t, strings.HasPrefix(c.Text, "📌"))
		joined.WriteString(c.Text)
	}
	assert.Equal(t, text, joined.String())
}

func TestStripNewlinesAdjust(t *testing.T) {
	text, entities := stripNewlinesAdjust("\n\nbold\n", []MessageEntity{{Type: "bold", Offset: 2, Length: 4}})
	assert.Equal(t, "bold", text)
	assert.Equal(t, []MessageEntity{{Type: "bold", Offset: 0, Length: 4}}, entities)

	text, entities = stripNewlinesAdjust("\n\n", []MessageEntity{{Type: "bold", Offset: 0, Length: 1}})
	assert.Empty(t, text)
	assert.Empty(t, entities)
}

func TestTrimSpace(t *testing.T) {
	text, entities := TrimSpace("  hi 📌 ", []MessageEntity{
		{Type: "bold", Offset: 0, Length: 4},
		{Type: "italic", Offset: 5, Length: 2},
	})
	assert.Equal(t, "hi 📌", text)
	assert.Equal(t, []MessageEntity{
		{Type: "bold", Offset: 0, Length: 2},
		{Type: "italic", Offset: 3, Length: 2},
	}, entities)
}
