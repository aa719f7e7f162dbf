package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bezhuang/mdsegment"
	"github.com/bezhuang/mdsegment/internal/config"
)

var version = "0.1.0"

// errNotURL makes `isurl` exit non-zero without printing an error.
var errNotURL = errors.New("not a url")

func newRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "mdsegment",
		Short: "Split chat Markdown into styled segments",
		Long: `Converts Markdown-flavored chat text into typed segments
(text, bold, italic, code, code-block, strike, link) and renders them
as JSON, HTML, styled terminal output or Telegram messages.

Input is read from the file argument, or stdin when none is given.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Init(configFile); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			level, err := log.ParseLevel(config.C.LogLevel)
			if err != nil {
				return fmt.Errorf("invalid log_level %q: %w", config.C.LogLevel, err)
			}
			logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "mdsegment", Level: level})
			mdsegment.SetLogger(logger)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default ~/.config/mdsegment/mdsegment.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(
		newParseCmd(),
		newHTMLCmd(),
		newLinksCmd(),
		newIsURLCmd(),
		newRenderCmd(),
		newViewCmd(),
		newTelegramCmd(),
	)
	return rootCmd
}

// readInput returns the file named by args[0], or stdin.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 && args[0] != "-" {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(cmd.InOrStdin())
}

// parseInput reads and segments the command input.
func parseInput(cmd *cobra.Command, args []string) ([]mdsegment.Segment, error) {
	data, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}
	return mdsegment.ParseBytes(data)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errNotURL) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
