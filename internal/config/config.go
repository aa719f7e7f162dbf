package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/bezhuang/mdsegment/internal/render"
)

// Config holds the command-line configuration
type Config struct {
	Format       string         `mapstructure:"format"`
	LogLevel     string         `mapstructure:"log_level"`
	MaxLength    int            `mapstructure:"max_length"`
	MaxCodeLines int            `mapstructure:"max_code_lines"`
	Mermaid      bool           `mapstructure:"mermaid"`
	Colors       render.Palette `mapstructure:"colors"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper. An explicit file wins over
// the search path; a missing default file is not an error.
func Init(file string) error {
	palette := render.DefaultPalette()
	viper.SetDefault("format", "json")
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("max_length", 4096)
	viper.SetDefault("max_code_lines", 50)
	viper.SetDefault("mermaid", true)
	viper.SetDefault("colors.code", palette.Code)
	viper.SetDefault("colors.code_block", palette.CodeBlock)
	viper.SetDefault("colors.link", palette.Link)
	viper.SetDefault("colors.dim", palette.Dim)
	viper.SetDefault("colors.border", palette.Border)

	if file != "" {
		viper.SetConfigFile(file)
	} else {
		viper.SetConfigName("mdsegment")
		viper.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mdsegment"))
		}
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("MDSEGMENT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return err
		}
	}

	return viper.Unmarshal(&C)
}

// Palette returns the configured colors.
func Palette() render.Palette {
	return C.Colors
}
