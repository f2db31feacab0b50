package mdtransform

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/teamup/mdtransform/internal/assets"
	"github.com/teamup/mdtransform/internal/pipeline"
	"github.com/teamup/mdtransform/mdast"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.MarkdownParser       = (*pipeline.GoldmarkParser)(nil)
	_ pipeline.HTMLRenderer         = (*pipeline.PreviewRenderer)(nil)
)

// Processor runs the transform pipeline. Create with NewProcessor and use
// Process for each message. A Processor is safe for concurrent use; every
// call builds its own tree.
type Processor struct {
	cfg          processorConfig
	logger       *slog.Logger
	preprocessor pipeline.MarkdownPreprocessor
	parser       pipeline.MarkdownParser
	renderer     *pipeline.PreviewRenderer

	mentions   *pipeline.Highlighter
	highlights *pipeline.Highlighter
	search     *pipeline.Highlighter

	// css is the page stylesheet: preview style followed by code colors.
	css string
}

// pass is one named tree transform.
type pass struct {
	name string
	run  func(*mdast.Node) *mdast.Node
}

// NewProcessor creates a Processor. Keys are compiled once here; unusable
// keys are dropped. Returns an error if the preview stylesheet cannot be
// loaded.
func NewProcessor(opts ...Option) (*Processor, error) {
	cfg := processorConfig{
		timeout:   defaultTimeout,
		style:     assets.DefaultStyleName,
		codeStyle: pipeline.DefaultCodeStyle,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	p := &Processor{
		cfg:          cfg,
		logger:       logger,
		preprocessor: &pipeline.CommonMarkPreprocessor{},
		parser:       pipeline.NewGoldmarkParser(),
		renderer:     pipeline.NewPreviewRenderer(pipeline.WithCodeStyle(cfg.codeStyle)),
		mentions:     pipeline.NewMentionHighlighter(toPipelineKeys(cfg.mentionKeys)),
		highlights:   pipeline.NewNotificationFreeHighlighter(toPipelineKeys(cfg.highlightKeys)),
		search:       pipeline.NewSearchHighlighter(cfg.searchTerms),
	}

	if err := p.resolveStyle(); err != nil {
		return nil, err
	}

	return p, nil
}

// resolveStyle loads the preview stylesheet and appends the code colors.
func (p *Processor) resolveStyle() error {
	resolver, err := assets.NewStyleResolver(p.cfg.styleDir)
	if err != nil {
		return fmt.Errorf("resolving style directory: %w", err)
	}

	css, err := resolver.LoadStyle(p.cfg.style)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", p.cfg.style, err)
	}

	codeCSS, err := p.renderer.CodeCSS()
	if err != nil {
		return err
	}

	p.css = css + "\n" + codeCSS
	return nil
}

// Process runs the pipeline on one message and returns the annotated tree.
// The context is used for cancellation; the processor timeout applies on
// top of it. Recovers from internal panics to prevent crashes from
// propagating to callers.
func (p *Processor) Process(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if strings.TrimSpace(input.Markdown) == "" {
		return nil, ErrEmptyMarkdown
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.timeout)
	defer cancel()

	start := time.Now()

	content := p.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := p.parser.Parse(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("parsing markdown: %w", err)
	}
	if err := p.check("parse", doc); err != nil {
		return nil, err
	}

	for _, ps := range p.passes(input) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc = ps.run(doc)
		if err := p.check(ps.name, doc); err != nil {
			return nil, err
		}
	}

	res := &Result{Document: doc}

	if input.HTML {
		fragment, err := p.renderer.Render(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("rendering HTML: %w", err)
		}
		res.Fragment = fragment
		res.HTML = pipeline.Document(fragment, p.css)
	}

	p.logger.Debug("message processed",
		slog.Int("bytes", len(input.Markdown)),
		slog.Bool("html", input.HTML),
		slog.Duration("elapsed", time.Since(start)),
	)

	return res, nil
}

// passes returns the fixed pass sequence. Per-call keys get highlighters
// compiled for this call; otherwise the prebuilt ones are used.
func (p *Processor) passes(input Input) []pass {
	mentions := p.mentions
	if len(input.MentionKeys) > 0 {
		mentions = pipeline.NewMentionHighlighter(toPipelineKeys(append(cloneKeys(p.cfg.mentionKeys), input.MentionKeys...)))
	}
	highlights := p.highlights
	if len(input.HighlightKeys) > 0 {
		highlights = pipeline.NewNotificationFreeHighlighter(toPipelineKeys(append(cloneKeys(p.cfg.highlightKeys), input.HighlightKeys...)))
	}
	search := p.search
	if len(input.SearchTerms) > 0 {
		terms := append(append([]string{}, p.cfg.searchTerms...), input.SearchTerms...)
		search = pipeline.NewSearchHighlighter(terms)
	}

	return []pass{
		{"combineTextNodes", pipeline.CombineTextNodes},
		{"pullOutImages", pipeline.PullOutImages},
		{"addListItemIndices", pipeline.AddListItemIndices},
		{"highlightMentions", mentions.Apply},
		{"highlightWithoutNotification", highlights.Apply},
		{"highlightSearchTerms", search.Apply},
	}
}

// check verifies tree invariants after a pass when verification is enabled.
func (p *Processor) check(name string, doc *mdast.Node) error {
	if !p.cfg.verify {
		return nil
	}
	if err := mdast.Verify(doc); err != nil {
		p.logger.Error("tree integrity check failed", slog.String("pass", name), slog.Any("error", err))
		return fmt.Errorf("%w: after %s: %w", ErrTreeIntegrity, name, err)
	}
	p.logger.Debug("pass verified", slog.String("pass", name))
	return nil
}

func cloneKeys(keys []Key) []Key {
	return append([]Key{}, keys...)
}
