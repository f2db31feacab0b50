package mdast

import (
	"fmt"
	"strings"
)

// Dump renders the subtree rooted at root as indented text, one node per
// line: its kind, the kinds of its neighbours, then its non-zero payload
// fields. Two trees with equal dumps have the same shape and content.
func Dump(root *Node) string {
	if root == nil {
		return ""
	}
	var b strings.Builder
	dump(&b, root, "")
	return b.String()
}

func dump(b *strings.Builder, n *Node, indent string) {
	b.WriteString(indent)
	b.WriteString(n.Kind.String())
	writeNeighbour(b, "parent", n.parent)
	writeNeighbour(b, "prev", n.prev)
	writeNeighbour(b, "next", n.next)
	writeNeighbour(b, "firstChild", n.firstChild)
	writeNeighbour(b, "lastChild", n.lastChild)
	for _, f := range fields(n) {
		fmt.Fprintf(b, " %s=`%v`", f.name, f.value)
	}
	b.WriteByte('\n')

	for c := n.firstChild; c != nil; c = c.next {
		dump(b, c, indent+"  ")
	}
}

func writeNeighbour(b *strings.Builder, name string, n *Node) {
	if n == nil {
		return
	}
	b.WriteString(" " + name + "=`" + n.Kind.String())
	if n.Kind == KindText {
		b.WriteString(":" + n.Literal())
	}
	b.WriteByte('`')
}

type field struct {
	name  string
	value any
}

// fields lists the payload fields of n that are set.
func fields(n *Node) []field {
	var out []field
	add := func(name string, value any, set bool) {
		if set {
			out = append(out, field{name, value})
		}
	}

	switch d := n.Data.(type) {
	case *Literal:
		add("literal", d.Value, d.Value != "")
	case *CodeBlock:
		add("info", d.Info, d.Info != "")
		add("literal", d.Literal, d.Literal != "")
	case *Heading:
		add("level", d.Level, d.Level != 0)
	case *List:
		add("listType", d.Type, true)
		add("listTight", d.Tight, d.Tight)
		add("listStart", d.Start, d.Start != 0)
		add("listDelimiter", d.Delimiter, d.Delimiter != DelimiterNone)
	case *Item:
		add("index", d.Index, d.Index != 0)
	case *TableRow:
		add("isHeading", d.IsHeading, d.IsHeading)
	case *TableCell:
		add("isHeading", d.IsHeading, d.IsHeading)
		add("align", d.Align, d.Align != AlignNone)
	case *Link:
		add("destination", d.Destination, d.Destination != "")
		add("title", d.Title, d.Title != "")
	case *Image:
		add("destination", d.Destination, d.Destination != "")
		add("title", d.Title, d.Title != "")
		add("linkDestination", d.LinkDestination, d.LinkDestination != "")
	case *Checkbox:
		add("checked", d.Checked, d.Checked)
	case *AtMention:
		add("mentionName", d.Name, d.Name != "")
	case *ChannelLink:
		add("channelName", d.Name, d.Name != "")
	case *Emoji:
		add("emojiName", d.Name, d.Name != "")
	case nil:
	}
	return out
}
