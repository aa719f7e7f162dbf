package mdsegment

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger 全局日志记录器
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "mdsegment",
	Level:  log.WarnLevel,
})

// SetLogger 设置自定义日志记录器
func SetLogger(logger *log.Logger) {
	Logger = logger
}
