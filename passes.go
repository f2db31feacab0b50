package mdtransform

import (
	"context"

	"github.com/teamup/mdtransform/internal/pipeline"
	"github.com/teamup/mdtransform/mdast"
)

// The functions below expose the individual passes for callers that build
// or parse trees themselves. Each one mutates root and returns it.

// Parse parses markdown into a tree without running any pass.
func Parse(ctx context.Context, markdown string) (*mdast.Node, error) {
	var pre pipeline.CommonMarkPreprocessor
	return pipeline.NewGoldmarkParser().Parse(ctx, pre.PreprocessMarkdown(ctx, markdown))
}

// CombineTextNodes merges runs of adjacent text nodes.
func CombineTextNodes(root *mdast.Node) *mdast.Node {
	return pipeline.CombineTextNodes(root)
}

// PullOutImages copies the destination of a link onto the images it holds.
func PullOutImages(root *mdast.Node) *mdast.Node {
	return pipeline.PullOutImages(root)
}

// AddListItemIndices numbers the items of every list from the list start.
func AddListItemIndices(root *mdast.Node) *mdast.Node {
	return pipeline.AddListItemIndices(root)
}

// HighlightMentions wraps at-mentions and text matches of keys in
// mention_highlight nodes.
func HighlightMentions(root *mdast.Node, keys []Key) *mdast.Node {
	return pipeline.HighlightMentions(root, toPipelineKeys(keys))
}

// HighlightWithoutNotification wraps text matches of keys in
// highlight_without_notification nodes.
func HighlightWithoutNotification(root *mdast.Node, keys []Key) *mdast.Node {
	return pipeline.HighlightWithoutNotification(root, toPipelineKeys(keys))
}

// HighlightSearchTerms wraps text matches of search terms in
// search_highlight nodes.
func HighlightSearchTerms(root *mdast.Node, terms []string) *mdast.Node {
	return pipeline.HighlightSearchTerms(root, terms)
}

// HighlightSpan splits the text node at rune offsets [start, end) and wraps
// the middle in a new node of kind wrapper, which it returns. An empty span
// leaves the tree unchanged and returns nil.
func HighlightSpan(node *mdast.Node, start, end int, wrapper mdast.Kind) *mdast.Node {
	return pipeline.HighlightSpan(node, start, end, wrapper)
}

// Match is a match position in runes; NoMatch when nothing matched.
type Match = pipeline.Match

// NoMatch is returned by FirstMentionMatch and FirstHighlightMatch when
// nothing matches.
var NoMatch = pipeline.NoMatch

// FirstMentionMatch returns the earliest match of any key in text, using
// mention word boundaries.
func FirstMentionMatch(text string, keys []Key) Match {
	return pipeline.FirstMatch(text, pipeline.CompileMentionPatterns(toPipelineKeys(keys)))
}

// FirstHighlightMatch returns the earliest match of any key in text, using
// highlight word boundaries.
func FirstHighlightMatch(text string, keys []Key) Match {
	return pipeline.FirstMatch(text, pipeline.CompileHighlightPatterns(toPipelineKeys(keys)))
}
