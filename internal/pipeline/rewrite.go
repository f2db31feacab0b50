package pipeline

import (
	"strings"

	"github.com/teamup/mdtransform/mdast"
)

// CombineTextNodes merges every run of adjacent text siblings into a single
// text node. Other siblings stay where they are. Running it twice is the same
// as running it once.
func CombineTextNodes(root *mdast.Node) *mdast.Node {
	mdast.Walk(root, func(n *mdast.Node, entering bool) mdast.WalkStatus {
		if entering {
			combineChildren(n)
		}
		return mdast.WalkContinue
	})
	return root
}

func combineChildren(parent *mdast.Node) {
	for c := parent.FirstChild(); c != nil; c = c.Next() {
		if c.Kind != mdast.KindText {
			continue
		}
		next := c.Next()
		if next == nil || next.Kind != mdast.KindText {
			continue
		}

		var b strings.Builder
		b.WriteString(c.Literal())
		for next != nil && next.Kind == mdast.KindText {
			b.WriteString(next.Literal())
			following := next.Next()
			next.Unlink()
			next = following
		}
		c.SetLiteral(b.String())
	}
}

// AddListItemIndices numbers the items of every list, starting from the
// list's start number (1 when unset) and counting up by one. Nested lists
// count on their own.
func AddListItemIndices(root *mdast.Node) *mdast.Node {
	mdast.Walk(root, func(n *mdast.Node, entering bool) mdast.WalkStatus {
		if !entering || n.Kind != mdast.KindList {
			return mdast.WalkContinue
		}

		index := 1
		if list := n.List(); list != nil {
			index = list.FirstIndex()
		}
		for item := range n.Children() {
			if data := item.Item(); data != nil {
				data.Index = index
				index++
			}
		}
		return mdast.WalkContinue
	})
	return root
}

// PullOutImages marks images that are the direct child of a link with the
// link's destination, so a renderer can make the image clickable. Images are
// not moved.
func PullOutImages(root *mdast.Node) *mdast.Node {
	mdast.Walk(root, func(n *mdast.Node, entering bool) mdast.WalkStatus {
		if !entering || n.Kind != mdast.KindImage {
			return mdast.WalkContinue
		}
		parent := n.Parent()
		if parent == nil || parent.Kind != mdast.KindLink {
			return mdast.WalkContinue
		}
		if image, link := n.Image(), parent.Link(); image != nil && link != nil {
			image.LinkDestination = link.Destination
		}
		return mdast.WalkContinue
	})
	return root
}
