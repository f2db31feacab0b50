package pipeline

import "github.com/teamup/mdtransform/mdast"

// HighlightSpan splits the text node at the rune offsets [start, end) and
// wraps the middle part in a new node of kind wrapper, which takes the text
// node's place in the tree. Non-empty text before and after the span is left
// as text siblings of the wrapper. It returns the wrapper.
//
// Offsets are clamped to the literal, so an out-of-range span never panics.
// When the clamped span is empty the tree is left unchanged and nil is
// returned.
func HighlightSpan(node *mdast.Node, start, end int, wrapper mdast.Kind) *mdast.Node {
	literal := node.Literal()
	return highlightSpan(node, runeOffset(literal, start), runeOffset(literal, end), wrapper)
}

// highlightSpan is HighlightSpan with byte offsets.
func highlightSpan(node *mdast.Node, start, end int, wrapper mdast.Kind) *mdast.Node {
	literal := node.Literal()
	end = min(max(end, 0), len(literal))
	start = min(max(start, 0), end)
	if start == end {
		return nil
	}

	node.SetLiteral(literal[start:end])
	highlighted := node.WrapWith(mdast.New(wrapper))

	if start > 0 {
		highlighted.InsertBefore(mdast.NewText(literal[:start]))
	}
	if end < len(literal) {
		highlighted.InsertAfter(mdast.NewText(literal[end:]))
	}
	return highlighted
}

// runeOffset converts a rune index into a byte index of s. Indexes past the
// end map to len(s).
func runeOffset(s string, runes int) int {
	if runes <= 0 {
		return 0
	}
	for i := range s {
		if runes == 0 {
			return i
		}
		runes--
	}
	return len(s)
}
