package mermaid

import (
	"bytes"
	"compress/zlib"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/image/webp"
)

const (
	// DefaultInkURL 是 mermaid.ink 图片服务的地址
	DefaultInkURL = "https://mermaid.ink"
	// DefaultLiveURL 是 Mermaid Live 编辑器地址
	DefaultLiveURL = "https://mermaid.live"
)

// ErrNotImage is returned when the render service answers with bytes that
// are not a recognised image.
var ErrNotImage = errors.New("mermaid: downloaded data is not a valid image")

// Config Mermaid 配置
type Config struct {
	Theme string `json:"theme"`
}

// DefaultConfig 返回默认 Mermaid 配置
func DefaultConfig() *Config {
	return &Config{
		Theme: "default",
	}
}

// Renderer 通过 mermaid.ink 渲染图表
type Renderer struct {
	Client   *http.Client
	InkBase  string
	LiveBase string
	Config   *Config
}

// NewRenderer returns a renderer using the public services. A nil client
// gets a 10 second timeout.
func NewRenderer(client *http.Client) *Renderer {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Renderer{
		Client:   client,
		InkBase:  DefaultInkURL,
		LiveBase: DefaultLiveURL,
		Config:   DefaultConfig(),
	}
}

// compressToDeflate 使用 DEFLATE 算法压缩数据
func compressToDeflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := writer.Write(data); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GeneratePako 生成 Mermaid 图表的 pako 编码
func GeneratePako(diagram string, config *Config) (string, error) {
	if config == nil {
		config = DefaultConfig()
	}
	payload, err := json.Marshal(map[string]interface{}{
		"code":    diagram,
		"mermaid": config,
	})
	if err != nil {
		return "", err
	}
	compressed, err := compressToDeflate(payload)
	if err != nil {
		return "", err
	}
	return "pako:" + base64.URLEncoding.EncodeToString(compressed), nil
}

// LiveURL 获取 Mermaid Live 编辑器 URL，可用于在浏览器中编辑图表
func (r *Renderer) LiveURL(diagram string) (string, error) {
	pako, err := GeneratePako(diagram, r.Config)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/edit/#%s", r.liveBase(), pako), nil
}

// InkURL 获取 Mermaid Ink 图片 URL
func (r *Renderer) InkURL(diagram string) (string, error) {
	pako, err := GeneratePako(diagram, r.Config)
	if err != nil {
		return "", err
	}
	theme := "default"
	if r.Config != nil && r.Config.Theme != "" {
		theme = r.Config.Theme
	}
	return fmt.Sprintf("%s/img/%s?theme=%s&width=500&scale=2&type=webp", r.inkBase(), pako, theme), nil
}

func (r *Renderer) inkBase() string {
	if r.InkBase == "" {
		return DefaultInkURL
	}
	return r.InkBase
}

func (r *Renderer) liveBase() string {
	if r.LiveBase == "" {
		return DefaultLiveURL
	}
	return r.LiveBase
}

// Download fetches url and returns the response body.
func (r *Renderer) Download(ctx context.Context, url string) (*bytes.Buffer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "mdsegment/1.0")

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mermaid render: HTTP %s", resp.Status)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	return &buf, nil
}

// Render 渲染 Mermaid 图表，返回图片数据和编辑器 URL（用作图片说明）
func (r *Renderer) Render(ctx context.Context, diagram string) (*bytes.Buffer, string, error) {
	imgURL, err := r.InkURL(diagram)
	if err != nil {
		return nil, "", err
	}
	caption, err := r.LiveURL(diagram)
	if err != nil {
		return nil, "", err
	}
	img, err := r.Download(ctx, imgURL)
	if err != nil {
		return nil, "", err
	}
	if !IsImage(img.Bytes()) {
		return nil, "", ErrNotImage
	}
	return img, caption, nil
}

// IsImage 检查数据是否为有效图片
//
// PNG、JPEG、GIF 只检查魔术字节；WebP 额外解析文件头，拒绝截断的数据。
func IsImage(data []byte) bool {
	switch {
	case len(data) >= 8 && bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}):
		return true
	case len(data) >= 3 && bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return true
	case len(data) >= 6 && (bytes.HasPrefix(data, []byte("GIF87a")) || bytes.HasPrefix(data, []byte("GIF89a"))):
		return true
	case len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP":
		_, err := webp.DecodeConfig(bytes.NewReader(data))
		return err == nil
	}
	return false
}
