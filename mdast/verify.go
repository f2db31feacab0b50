package mdast

import (
	"errors"
	"fmt"
)

// ErrBrokenLink reports a parent, sibling or child pointer that does not
// point back.
var ErrBrokenLink = errors.New("mdast: broken tree linkage")

// Verify checks that every link in the subtree rooted at root goes both ways:
// children point to their parent, siblings to each other, and first/last
// child pointers sit at the ends of an acyclic chain. It returns the first
// violation found.
//
// Verify is meant for tests and debug runs; passes never produce broken
// trees on their own.
func Verify(root *Node) error {
	seen := make(map[*Node]struct{})
	return verify(root, seen)
}

func verify(n *Node, seen map[*Node]struct{}) error {
	if _, dup := seen[n]; dup {
		return brokenLink(n, "node reached twice (cycle or shared node)")
	}
	seen[n] = struct{}{}

	if n.prev != nil && n.prev.next != n {
		return brokenLink(n, "not linked properly to prev")
	}
	if n.next != nil && n.next.prev != n {
		return brokenLink(n, "not linked properly to next")
	}
	if n.firstChild == nil && n.lastChild != nil {
		return brokenLink(n, "has a last child but no first child")
	}
	if n.firstChild != nil && n.lastChild == nil {
		return brokenLink(n, "has a first child but no last child")
	}
	if n.firstChild != nil && n.firstChild.prev != nil {
		return brokenLink(n, "first child has a previous sibling")
	}
	if n.lastChild != nil && n.lastChild.next != nil {
		return brokenLink(n, "last child has a next sibling")
	}

	for c := n.firstChild; c != nil; c = c.next {
		if c.parent != n {
			return brokenLink(n, "child not linked back to parent")
		}
		if err := verify(c, seen); err != nil {
			return err
		}
		if c.next == nil && c != n.lastChild {
			return brokenLink(n, "child chain does not end at last child")
		}
	}
	return nil
}

func brokenLink(n *Node, msg string) error {
	return fmt.Errorf("%w: %s %s", ErrBrokenLink, n.Kind, msg)
}
