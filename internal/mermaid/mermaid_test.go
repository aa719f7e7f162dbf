package mermaid

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t testing.TB) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	img.Set(5, 5, color.RGBA{255, 0, 0, 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestGeneratePako(t *testing.T) {
	tests := []struct {
		name    string
		diagram string
	}{
		{"simple graph", "graph LR\n    A-->B"},
		{"empty diagram", ""},
		{"complex diagram", "flowchart TD\n    A[Start] --> B{Check}\n    B -->|Yes| C[OK]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GeneratePako(tt.diagram, nil)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(got, "pako:"))
			assert.NotContains(t, got[len("pako:"):], "+")
			assert.NotContains(t, got[len("pako:"):], "/")
		})
	}
}

func TestRenderer_URLs(t *testing.T) {
	r := NewRenderer(nil)
	r.Config.Theme = "dark"

	live, err := r.LiveURL("graph LR\n    A-->B")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(live, "https://mermaid.live/edit/#pako:"))

	ink, err := r.InkURL("graph LR\n    A-->B")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ink, "https://mermaid.ink/img/pako:"))
	assert.Contains(t, ink, "theme=dark")
	assert.Contains(t, ink, "type=webp")
}

func TestRenderer_CustomBases(t *testing.T) {
	r := NewRenderer(nil)
	r.InkBase = "http://ink.local"
	r.LiveBase = "http://live.local"

	ink, err := r.InkURL("graph LR\n    A-->B")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ink, "http://ink.local/img/pako:"))

	live, err := r.LiveURL("graph LR\n    A-->B")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(live, "http://live.local/edit/#pako:"))

	// 空的地址回退到公共服务
	r.InkBase, r.LiveBase = "", ""
	ink, err = r.InkURL("graph LR\n    A-->B")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ink, DefaultInkURL+"/img/"))
	live, err = r.LiveURL("graph LR\n    A-->B")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(live, DefaultLiveURL+"/edit/"))
}

func TestIsImage(t *testing.T) {
	jpg := func() []byte {
		var buf bytes.Buffer
		_ = jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 10, 10)), nil)
		return buf.Bytes()
	}
	gifData := func() []byte {
		img := image.NewPaletted(image.Rect(0, 0, 10, 10), color.Palette{
			color.RGBA{0, 0, 0, 255},
			color.RGBA{255, 255, 255, 255},
		})
		var buf bytes.Buffer
		_ = gif.Encode(&buf, img, nil)
		return buf.Bytes()
	}

	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"valid PNG", pngBytes(t), true},
		{"valid JPEG", jpg(), true},
		{"valid GIF", gifData(), true},
		{"empty data", nil, false},
		{"invalid data", []byte("not an image"), false},
		{"corrupted PNG header", []byte{0x89, 0x50, 0x4E, 0x47, 0x00, 0x00}, false},
		{"truncated WebP", []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsImage(tt.data))
		})
	}
}

func TestRenderer_Render(t *testing.T) {
	img := pngBytes(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !strings.HasPrefix(req.URL.Path, "/img/pako:") {
			http.NotFound(w, req)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(img)
	}))
	defer srv.Close()

	r := NewRenderer(srv.Client())
	r.InkBase = srv.URL

	data, caption, err := r.Render(context.Background(), "graph LR\n    A-->B")
	require.NoError(t, err)
	assert.Equal(t, img, data.Bytes())
	assert.True(t, strings.HasPrefix(caption, "https://mermaid.live/edit/#pako:"))
}

func TestRenderer_RenderErrors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}))
		defer srv.Close()

		r := NewRenderer(srv.Client())
		r.InkBase = srv.URL
		_, _, err := r.Render(context.Background(), "graph LR\n    A-->B")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("not an image", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html>syntax error</html>"))
		}))
		defer srv.Close()

		r := NewRenderer(srv.Client())
		r.InkBase = srv.URL
		_, _, err := r.Render(context.Background(), "graph ???")
		assert.ErrorIs(t, err, ErrNotImage)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		r := NewRenderer(nil)
		r.InkBase = "http://127.0.0.1:1"
		_, _, err := r.Render(ctx, "graph LR\n    A-->B")
		assert.Error(t, err)
	})
}

func BenchmarkGeneratePako(b *testing.B) {
	diagram := "graph TD\n    A[Start] --> B[Process]\n    B --> C[End]"
	for i := 0; i < b.N; i++ {
		if _, err := GeneratePako(diagram, nil); err != nil {
			b.Fatal(err)
		}
	}
}
