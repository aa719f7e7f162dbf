package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetExt(t *testing.T) {
	assert.Equal(t, "go", GetExt("go"))
	assert.Equal(t, "py", GetExt("Python"))
	assert.Equal(t, "txt", GetExt("brainfuck"))
}

func TestGetFilename(t *testing.T) {
	tests := []struct {
		name string
		code string
		lang string
		want string
	}{
		{"named in comment", "// main.go\npackage main", "go", "main.go"},
		{"mismatched extension", "# config.yaml\nkey: v", "python", "config.yaml.py"},
		{"fallback", "print('hi')", "python", "snippet.py"},
		{"unknown language", "foo", "zzz", "snippet.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetFilename(tt.code, tt.lang))
		})
	}
}
