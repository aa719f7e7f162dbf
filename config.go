package mdsegment

import (
	"sync"

	"github.com/bezhuang/mdsegment/internal/types"
)

// 导出类型别名
type RenderConfig = types.RenderConfig

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns a copy of the default render configuration, so
// callers may tweak it without affecting other conversions.
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	cfg := *defaultConfig
	return &cfg
}
