package pipeline

import (
	"strings"

	"github.com/teamup/mdtransform/mdast"
)

// Highlighter wraps every match of its patterns in text nodes with a node of
// a fixed kind. A Highlighter is read-only after construction and may be
// applied to many trees concurrently, one goroutine per tree.
type Highlighter struct {
	wrapper  mdast.Kind
	patterns []Pattern

	// mentionKeys enables at_mention handling when non-nil.
	mentionKeys []Key

	// skip reports whether a text node must be left alone.
	skip func(*mdast.Node) bool
}

// NewMentionHighlighter returns a Highlighter for mention keys. Text matches
// and at-mentions of a key are wrapped in mention_highlight.
func NewMentionHighlighter(keys []Key) *Highlighter {
	return &Highlighter{
		wrapper:     mdast.KindMentionHighlight,
		patterns:    CompileMentionPatterns(keys),
		mentionKeys: append([]Key{}, keys...),
		skip:        insideCode,
	}
}

// NewNotificationFreeHighlighter returns a Highlighter for
// highlight-without-notification keys. At-mentions and text already inside
// a mention highlight are not touched.
func NewNotificationFreeHighlighter(keys []Key) *Highlighter {
	return &Highlighter{
		wrapper:  mdast.KindHighlightWithoutNotification,
		patterns: CompileHighlightPatterns(keys),
		skip: func(n *mdast.Node) bool {
			return n.HasAncestor(func(a *mdast.Node) bool {
				return a.Kind.IsCode() || a.Kind == mdast.KindMentionHighlight
			})
		},
	}
}

// NewSearchHighlighter returns a Highlighter for search terms. See
// CompileSearchPatterns for the term syntax.
func NewSearchHighlighter(terms []string) *Highlighter {
	return &Highlighter{
		wrapper:  mdast.KindSearchHighlight,
		patterns: CompileSearchPatterns(terms),
		skip:     insideCode,
	}
}

// Empty reports whether h has nothing to look for.
func (h *Highlighter) Empty() bool {
	return len(h.patterns) == 0 && len(h.mentionKeys) == 0
}

// Apply highlights root in place and returns it.
func (h *Highlighter) Apply(root *mdast.Node) *mdast.Node {
	if root == nil || h.Empty() {
		return root
	}

	w := mdast.NewWalker(root)
	for {
		n, entering, ok := w.Next()
		if !ok {
			break
		}
		if !entering {
			continue
		}

		if n.Parent() == nil {
			continue
		}

		// A leaf root is replaced by its wrapper, so the walker can no
		// longer tell when it leaves root.
		if n == root && !n.Kind.IsContainer() {
			h.applyLeaf(n)
			break
		}

		switch n.Kind {
		case mdast.KindText:
			if h.skip(n) {
				continue
			}
			start, end, found := firstMatch(n.Literal(), h.patterns)
			if !found {
				continue
			}
			// The text after the match becomes the next sibling and is
			// scanned on the following step.
			if highlighted := highlightSpan(n, start, end, h.wrapper); highlighted != nil {
				w.ResumeAt(highlighted, false)
			}

		case mdast.KindAtMention:
			if h.matchesAtMention(n) {
				w.ResumeAt(n.WrapWith(mdast.New(h.wrapper)), false)
			}
		}
	}
	return root
}

// applyLeaf highlights a text or at_mention node given as the root. Matches
// are searched only in the text the node held on entry; its siblings are
// left alone.
func (h *Highlighter) applyLeaf(n *mdast.Node) {
	switch n.Kind {
	case mdast.KindText:
		if h.skip(n) {
			return
		}
		for n != nil {
			literal := n.Literal()
			start, end, found := firstMatch(literal, h.patterns)
			if !found {
				return
			}
			highlighted := highlightSpan(n, start, end, h.wrapper)
			if highlighted == nil || end >= len(literal) {
				return
			}
			n = highlighted.Next()
		}

	case mdast.KindAtMention:
		if h.matchesAtMention(n) {
			n.WrapWith(mdast.New(h.wrapper))
		}
	}
}

func (h *Highlighter) matchesAtMention(n *mdast.Node) bool {
	if h.mentionKeys == nil || n.Parent().Kind == h.wrapper {
		return false
	}
	data := n.AtMention()
	return data != nil && matchesMentionKey(data.Name, h.mentionKeys)
}

// HighlightMentions wraps at-mentions and text matches of keys in
// mention_highlight nodes, skipping code.
func HighlightMentions(root *mdast.Node, keys []Key) *mdast.Node {
	return NewMentionHighlighter(keys).Apply(root)
}

// HighlightWithoutNotification wraps text matches of keys in
// highlight_without_notification nodes, skipping code.
func HighlightWithoutNotification(root *mdast.Node, keys []Key) *mdast.Node {
	return NewNotificationFreeHighlighter(keys).Apply(root)
}

// HighlightSearchTerms wraps text matches of search terms in
// search_highlight nodes, skipping code.
func HighlightSearchTerms(root *mdast.Node, terms []string) *mdast.Node {
	return NewSearchHighlighter(terms).Apply(root)
}

func insideCode(n *mdast.Node) bool {
	return n.HasAncestor(func(a *mdast.Node) bool { return a.Kind.IsCode() })
}

// matchesMentionKey reports whether an at-mention of name refers to one of
// keys. Both "@name" and "name" forms of a key match, and a single trailing
// period on name is ignored. Partial names never match.
func matchesMentionKey(name string, keys []Key) bool {
	candidates := []string{"@" + name, name}
	if trimmed, ok := strings.CutSuffix(name, "."); ok && trimmed != "" {
		candidates = append(candidates, "@"+trimmed, trimmed)
	}

	for _, k := range keys {
		if strings.TrimSpace(k.Text) == "" {
			continue
		}
		for _, c := range candidates {
			if c == k.Text || !k.CaseSensitive && strings.EqualFold(c, k.Text) {
				return true
			}
		}
	}
	return false
}
