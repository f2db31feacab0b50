package mdast

// Typed constructors. Each returns a detached node with its payload filled
// in and the given children appended.

func NewDocument(children ...*Node) *Node  { return New(KindDocument, children...) }
func NewParagraph(children ...*Node) *Node { return New(KindParagraph, children...) }
func NewBlockQuote(children ...*Node) *Node {
	return New(KindBlockQuote, children...)
}
func NewEmph(children ...*Node) *Node   { return New(KindEmph, children...) }
func NewStrong(children ...*Node) *Node { return New(KindStrong, children...) }
func NewDel(children ...*Node) *Node    { return New(KindDel, children...) }
func NewSoftBreak() *Node               { return New(KindSoftBreak) }
func NewLineBreak() *Node               { return New(KindLineBreak) }
func NewThematicBreak() *Node           { return New(KindThematicBreak) }
func NewTable(rows ...*Node) *Node      { return New(KindTable, rows...) }

func NewText(literal string) *Node       { return newLiteral(KindText, literal) }
func NewCode(literal string) *Node       { return newLiteral(KindCode, literal) }
func NewHTMLInline(literal string) *Node { return newLiteral(KindHTMLInline, literal) }
func NewHTMLBlock(literal string) *Node  { return newLiteral(KindHTMLBlock, literal) }

func newLiteral(kind Kind, literal string) *Node {
	return &Node{Kind: kind, Data: &Literal{Value: literal}}
}

func NewCodeBlock(info, literal string) *Node {
	return &Node{Kind: KindCodeBlock, Data: &CodeBlock{Info: info, Literal: literal}}
}

func NewHeading(level int, children ...*Node) *Node {
	n := New(KindHeading, children...)
	n.Data = &Heading{Level: level}
	return n
}

func NewList(list List, items ...*Node) *Node {
	n := New(KindList, items...)
	n.Data = &list
	return n
}

func NewItem(children ...*Node) *Node { return New(KindItem, children...) }

func NewTableRow(isHeading bool, cells ...*Node) *Node {
	n := New(KindTableRow, cells...)
	n.Data = &TableRow{IsHeading: isHeading}
	return n
}

func NewTableCell(isHeading bool, align Align, children ...*Node) *Node {
	n := New(KindTableCell, children...)
	n.Data = &TableCell{IsHeading: isHeading, Align: align}
	return n
}

func NewLink(destination, title string, children ...*Node) *Node {
	n := New(KindLink, children...)
	n.Data = &Link{Destination: destination, Title: title}
	return n
}

func NewImage(destination, title string, children ...*Node) *Node {
	n := New(KindImage, children...)
	n.Data = &Image{Destination: destination, Title: title}
	return n
}

func NewCheckbox(checked bool) *Node {
	return &Node{Kind: KindCheckbox, Data: &Checkbox{Checked: checked}}
}

func NewAtMention(name string) *Node {
	return &Node{Kind: KindAtMention, Data: &AtMention{Name: name}}
}

func NewChannelLink(name string) *Node {
	return &Node{Kind: KindChannelLink, Data: &ChannelLink{Name: name}}
}

func NewEmoji(name string) *Node {
	return &Node{Kind: KindEmoji, Data: &Emoji{Name: name}}
}
