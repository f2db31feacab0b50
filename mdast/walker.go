package mdast

// Walker iterates a tree depth-first. Containers are visited twice (entering
// and exiting); leaves are visited once, entering.
//
// The tree may be mutated between calls to Next as long as the walker is
// pointed at a node that is still attached, usually with ResumeAt. Root
// itself must stay in place: once root is replaced the walker can no longer
// detect the end of the walk, so callers stop on their own.
type Walker struct {
	root     *Node
	current  *Node
	entering bool
}

// NewWalker returns a walker positioned before root.
func NewWalker(root *Node) *Walker {
	return &Walker{root: root, current: root, entering: true}
}

// Next returns the next node and whether it is being entered. ok is false
// once the walk has left root.
func (w *Walker) Next() (node *Node, entering bool, ok bool) {
	cur := w.current
	if cur == nil {
		return nil, false, false
	}
	entering = w.entering

	switch {
	case entering && cur.Kind.IsContainer():
		if cur.firstChild != nil {
			w.current = cur.firstChild
			w.entering = true
		} else {
			w.entering = false
		}
	case cur == w.root:
		w.current = nil
	case cur.next == nil:
		w.current = cur.parent
		w.entering = false
	default:
		w.current = cur.next
		w.entering = true
	}

	return cur, entering, true
}

// ResumeAt repositions the walker. Resuming at a node with entering=false
// skips its subtree and continues with its next sibling.
func (w *Walker) ResumeAt(node *Node, entering bool) {
	w.current = node
	w.entering = entering
}

// WalkStatus controls a Walk.
type WalkStatus int

const (
	// WalkContinue continues into children and siblings.
	WalkContinue WalkStatus = iota
	// WalkSkipChildren skips the children of the current node.
	WalkSkipChildren
	// WalkStop ends the walk.
	WalkStop
)

// WalkFunc is called by Walk on entering and exiting each node. Exiting
// events are only delivered to nodes whose children were visited.
type WalkFunc func(n *Node, entering bool) WalkStatus

// Walk calls fn for each node of the subtree rooted at n, in document order.
// Children are read after fn returns on entering, so fn may rewrite them.
func Walk(n *Node, fn WalkFunc) WalkStatus {
	switch fn(n, true) {
	case WalkStop:
		return WalkStop
	case WalkSkipChildren:
		return WalkContinue
	}
	for c := n.firstChild; c != nil; {
		next := c.next
		if Walk(c, fn) == WalkStop {
			return WalkStop
		}
		c = next
	}
	if fn(n, false) == WalkStop {
		return WalkStop
	}
	return WalkContinue
}
