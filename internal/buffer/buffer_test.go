package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bezhuang/mdsegment/internal/types"
)

func TestUTF16Len(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"你好", 2},
		{"📌", 2},
		{"A📌B", 4},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, UTF16Len(tt.in))
		})
	}
}

func TestTextBuffer_WriteEntity(t *testing.T) {
	tb := New()
	tb.Write("📌 ")
	tb.WriteEntity("bold", types.MessageEntity{Type: "bold"})
	tb.Write(" and ")
	tb.WriteEntity("", types.MessageEntity{Type: "italic"})

	assert.Equal(t, "📌 bold and ", tb.String())
	assert.Equal(t, []types.MessageEntity{{Type: "bold", Offset: 3, Length: 4}}, tb.Entities())
	assert.Equal(t, 12, tb.UTF16Offset())
	assert.Equal(t, len("📌 bold and "), tb.Len())

	tb.Reset()
	assert.Equal(t, "", tb.String())
	assert.Empty(t, tb.Entities())
	assert.Equal(t, 0, tb.UTF16Offset())
}
