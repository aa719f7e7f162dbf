package mdsegment

import "net/http"

// ConvertOptions holds options for the Telegram conversion pipeline.
type ConvertOptions struct {
	Config     *RenderConfig
	HTTPClient *http.Client
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ConvertOptions) {
		if config != nil {
			cfg := *config
			opts.Config = &cfg
		}
	}
}

// WithMaxCodeLines sets the line count above which a code block is sent as
// a file instead of inline text.
func WithMaxCodeLines(n int) Option {
	return func(opts *ConvertOptions) {
		opts.Config.MaxCodeLines = n
	}
}

// WithMermaid toggles rendering of mermaid code blocks to images.
func WithMermaid(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.Config.RenderMermaid = enable
	}
}

// WithHTTPClient sets the client used to fetch rendered mermaid diagrams.
func WithHTTPClient(client *http.Client) Option {
	return func(opts *ConvertOptions) {
		opts.HTTPClient = client
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
