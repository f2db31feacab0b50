package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// CommonMarkPreprocessor prepares message text for parsing.
type CommonMarkPreprocessor struct{}

// PreprocessMarkdown normalizes line endings and replaces NUL characters
// with U+FFFD, as CommonMark requires.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = normalizeLineEndings(content)
	content = replaceNulls(content)
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// replaceNulls replaces U+0000 with the replacement character.
func replaceNulls(content string) string {
	return strings.ReplaceAll(content, "\x00", "\uFFFD")
}

var _ MarkdownPreprocessor = (*CommonMarkPreprocessor)(nil)
