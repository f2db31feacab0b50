package mdtransform

import (
	"log/slog"
	"time"

	"github.com/teamup/mdtransform/internal/pipeline"
	"github.com/teamup/mdtransform/mdast"
)

// Key is a mention or highlight key. Text is matched case-insensitively
// unless CaseSensitive is set. A leading "@" is part of the text.
type Key struct {
	Text          string
	CaseSensitive bool
}

// Input is one message to process.
type Input struct {
	Markdown string

	// Per-call keys, added to the processor's keys for this call only.
	MentionKeys   []Key
	HighlightKeys []Key
	SearchTerms   []string

	// HTML requests a rendered preview in Result.
	HTML bool
}

// Result holds the annotated tree and, when requested, its HTML preview.
type Result struct {
	Document *mdast.Node
	Fragment string // HTML fragment, empty unless Input.HTML
	HTML     string // standalone HTML page, empty unless Input.HTML
}

// Option configures a Processor.
type Option func(*processorConfig)

// processorConfig holds internal configuration for Processor.
type processorConfig struct {
	mentionKeys   []Key
	highlightKeys []Key
	searchTerms   []string
	logger        *slog.Logger
	verify        bool
	style         string
	styleDir      string
	codeStyle     string
	timeout       time.Duration
}

// defaultTimeout bounds a single Process call.
const defaultTimeout = 10 * time.Second

// WithMentionKeys adds keys that produce mention highlights.
func WithMentionKeys(keys ...Key) Option {
	return func(c *processorConfig) {
		c.mentionKeys = append(c.mentionKeys, keys...)
	}
}

// WithHighlightKeys adds keys highlighted without notification.
func WithHighlightKeys(keys ...Key) Option {
	return func(c *processorConfig) {
		c.highlightKeys = append(c.highlightKeys, keys...)
	}
}

// WithSearchTerms adds search terms.
func WithSearchTerms(terms ...string) Option {
	return func(c *processorConfig) {
		c.searchTerms = append(c.searchTerms, terms...)
	}
}

// WithLogger sets the logger for per-pass debug output. A nil logger
// discards.
func WithLogger(l *slog.Logger) Option {
	return func(c *processorConfig) {
		c.logger = l
	}
}

// WithVerify checks tree invariants after every pass.
func WithVerify(enabled bool) Option {
	return func(c *processorConfig) {
		c.verify = enabled
	}
}

// WithStyle selects the preview stylesheet by name ("default", "compact",
// or a name found in the WithStyleDir directory).
func WithStyle(name string) Option {
	return func(c *processorConfig) {
		c.style = name
	}
}

// WithStyleDir adds a directory of {name}.css stylesheets that take
// precedence over the built-in ones.
func WithStyleDir(dir string) Option {
	return func(c *processorConfig) {
		c.styleDir = dir
	}
}

// WithCodeStyle selects the chroma style used for code block colors.
func WithCodeStyle(name string) Option {
	return func(c *processorConfig) {
		c.codeStyle = name
	}
}

// WithTimeout bounds each Process call.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdtransform: WithTimeout duration must be positive")
	}
	return func(c *processorConfig) {
		c.timeout = d
	}
}

// toPipelineKeys converts public keys for the internal passes.
func toPipelineKeys(keys []Key) []pipeline.Key {
	if len(keys) == 0 {
		return nil
	}
	out := make([]pipeline.Key, len(keys))
	for i, k := range keys {
		out[i] = pipeline.Key(k)
	}
	return out
}
