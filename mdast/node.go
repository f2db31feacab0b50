package mdast

import "iter"

// Node is one element of a markdown tree.
//
// Children form a doubly-linked list owned by their parent. The links are
// unexported so that every mutation goes through the methods below, which
// keep parent, sibling and child pointers consistent.
type Node struct {
	Kind Kind
	Data Payload

	parent     *Node
	prev       *Node
	next       *Node
	firstChild *Node
	lastChild  *Node
}

// New creates a detached node of the given kind with a zero payload and
// appends children in order.
func New(kind Kind, children ...*Node) *Node {
	n := &Node{Kind: kind, Data: payloadFor(kind)}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Prev() *Node       { return n.prev }
func (n *Node) Next() *Node       { return n.next }
func (n *Node) FirstChild() *Node { return n.firstChild }
func (n *Node) LastChild() *Node  { return n.lastChild }

// HasChildren reports whether n has at least one child.
func (n *Node) HasChildren() bool { return n.firstChild != nil }

// Children iterates over the direct children of n. The next sibling is read
// before each yield, so the current child may be unlinked or replaced by the
// loop body.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for c := n.firstChild; c != nil; {
			next := c.next
			if !yield(c) {
				return
			}
			c = next
		}
	}
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for c := n.firstChild; c != nil; c = c.next {
		count++
	}
	return count
}

// AppendChild detaches child from its current position and adds it as the
// last child of n.
func (n *Node) AppendChild(child *Node) {
	child.Unlink()
	child.parent = n
	if n.lastChild != nil {
		n.lastChild.next = child
		child.prev = n.lastChild
		n.lastChild = child
		return
	}
	n.firstChild = child
	n.lastChild = child
}

// PrependChild detaches child from its current position and adds it as the
// first child of n.
func (n *Node) PrependChild(child *Node) {
	child.Unlink()
	child.parent = n
	if n.firstChild != nil {
		n.firstChild.prev = child
		child.next = n.firstChild
		n.firstChild = child
		return
	}
	n.firstChild = child
	n.lastChild = child
}

// InsertBefore detaches sibling and links it immediately before n.
func (n *Node) InsertBefore(sibling *Node) {
	sibling.Unlink()
	sibling.prev = n.prev
	if sibling.prev != nil {
		sibling.prev.next = sibling
	}
	sibling.next = n
	n.prev = sibling
	sibling.parent = n.parent
	if n.parent != nil && n.parent.firstChild == n {
		n.parent.firstChild = sibling
	}
}

// InsertAfter detaches sibling and links it immediately after n.
func (n *Node) InsertAfter(sibling *Node) {
	sibling.Unlink()
	sibling.next = n.next
	if sibling.next != nil {
		sibling.next.prev = sibling
	}
	sibling.prev = n
	n.next = sibling
	sibling.parent = n.parent
	if n.parent != nil && n.parent.lastChild == n {
		n.parent.lastChild = sibling
	}
}

// Unlink removes n from its parent and siblings. Its own children stay
// attached.
func (n *Node) Unlink() {
	if n.prev != nil {
		n.prev.next = n.next
	} else if n.parent != nil {
		n.parent.firstChild = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else if n.parent != nil {
		n.parent.lastChild = n.prev
	}
	n.parent = nil
	n.prev = nil
	n.next = nil
}

// ReplaceWith puts replacement in n's position and unlinks n.
func (n *Node) ReplaceWith(replacement *Node) {
	if replacement == n {
		return
	}
	n.InsertBefore(replacement)
	n.Unlink()
}

// WrapWith puts wrapper in n's position and moves n inside it as its last
// child. It returns wrapper.
func (n *Node) WrapWith(wrapper *Node) *Node {
	n.InsertBefore(wrapper)
	wrapper.AppendChild(n)
	return wrapper
}

// HasAncestor reports whether any ancestor of n satisfies match.
func (n *Node) HasAncestor(match func(*Node) bool) bool {
	for p := n.parent; p != nil; p = p.parent {
		if match(p) {
			return true
		}
	}
	return false
}

// Literal returns the text content of text-like nodes and code blocks, and
// the empty string for every other kind.
func (n *Node) Literal() string {
	switch d := n.Data.(type) {
	case *Literal:
		return d.Value
	case *CodeBlock:
		return d.Literal
	default:
		return ""
	}
}

// SetLiteral replaces the text content of a text-like node or code block.
// It is a no-op for other kinds.
func (n *Node) SetLiteral(value string) {
	switch d := n.Data.(type) {
	case *Literal:
		d.Value = value
	case *CodeBlock:
		d.Literal = value
	}
}

// List returns the list payload, or nil when n is not a list.
func (n *Node) List() *List {
	d, _ := n.Data.(*List)
	return d
}

// Item returns the item payload, or nil when n is not a list item.
func (n *Node) Item() *Item {
	d, _ := n.Data.(*Item)
	return d
}

// Link returns the link payload, or nil when n is not a link.
func (n *Node) Link() *Link {
	d, _ := n.Data.(*Link)
	return d
}

// Image returns the image payload, or nil when n is not an image.
func (n *Node) Image() *Image {
	d, _ := n.Data.(*Image)
	return d
}

// AtMention returns the at-mention payload, or nil.
func (n *Node) AtMention() *AtMention {
	d, _ := n.Data.(*AtMention)
	return d
}
