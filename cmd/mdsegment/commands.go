package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/bezhuang/mdsegment"
	"github.com/bezhuang/mdsegment/internal/config"
	"github.com/bezhuang/mdsegment/internal/render"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Print segments as JSON or YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			segments, err := parseInput(cmd, args)
			if err != nil {
				return err
			}
			if segments == nil {
				segments = []mdsegment.Segment{}
			}
			return writeFormatted(cmd, config.C.Format, segments)
		},
	}
	cmd.Flags().StringP("format", "f", "", "Output format: json, yaml")
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	return cmd
}

func writeFormatted(cmd *cobra.Command, format string, v any) error {
	out := cmd.OutOrStdout()
	switch strings.ToLower(format) {
	case "", "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case "yaml", "yml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported format: %s (supported: json, yaml)", format)
	}
}

func newHTMLCmd() *cobra.Command {
	var commonMark bool
	cmd := &cobra.Command{
		Use:   "html [file]",
		Short: "Convert to HTML markup",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out := mdsegment.ToHTML(string(data))
			if commonMark {
				if out, err = mdsegment.ToHTMLCommonMark(string(data)); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&commonMark, "commonmark", false, "Full CommonMark rendering instead of the segment subset")
	return cmd
}

func newLinksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "links [file]",
		Short: "List bare URLs in order of appearance",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			for _, link := range mdsegment.ExtractLinks(string(data)) {
				fmt.Fprintln(cmd.OutOrStdout(), link)
			}
			return nil
		},
	}
}

func newIsURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "isurl <text>",
		Short: "Check whether the argument is exactly one bare URL",
		Long:  "Prints true or false. Exits with status 1 when the text is not a URL.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok := mdsegment.IsURL(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			if !ok {
				return errNotURL
			}
			return nil
		},
	}
}

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render [file]",
		Short: "Print segments with terminal styles",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			segments, err := parseInput(cmd, args)
			if err != nil {
				return err
			}
			styles := render.NewStyleSet(nil, config.Palette())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), render.Segments(segments, styles))
			return err
		},
	}
}

// telegramItem is the JSON shape of one pipeline result.
type telegramItem struct {
	Type    string            `json:"type" yaml:"type"`
	Content mdsegment.Content `json:"content" yaml:"content"`
}

func newTelegramCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "telegram [file]",
		Short: "Convert to Telegram text, entities and attachments",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if _, err := mdsegment.ParseBytes(data); err != nil {
				return err
			}
			contents, err := mdsegment.Telegramify(cmd.Context(), string(data), config.C.MaxLength,
				mdsegment.WithMaxCodeLines(config.C.MaxCodeLines),
				mdsegment.WithMermaid(config.C.Mermaid),
			)
			if err != nil {
				return err
			}
			items := make([]telegramItem, 0, len(contents))
			for _, c := range contents {
				items = append(items, telegramItem{Type: c.GetContentType().String(), Content: c})
			}
			return writeFormatted(cmd, "json", items)
		},
	}
	cmd.Flags().Int("max-length", 0, "Maximum UTF-16 length of one text message")
	cmd.Flags().Int("max-code-lines", 0, "Code blocks longer than this are sent as files")
	cmd.Flags().Bool("mermaid", true, "Render mermaid blocks through mermaid.ink")
	_ = viper.BindPFlag("max_length", cmd.Flags().Lookup("max-length"))
	_ = viper.BindPFlag("max_code_lines", cmd.Flags().Lookup("max-code-lines"))
	_ = viper.BindPFlag("mermaid", cmd.Flags().Lookup("mermaid"))
	return cmd
}
