package mdast

// Payload is the variant-specific data of a Node. The set of implementations
// is closed: only the types in this file satisfy it.
type Payload interface {
	payload()
}

// Literal holds the text of text, code, html_inline and html_block nodes.
type Literal struct {
	Value string
}

// CodeBlock holds a fenced or indented code block.
type CodeBlock struct {
	Info    string // info string of a fenced block, empty when indented
	Literal string
}

// Heading holds the depth of an ATX or setext heading.
type Heading struct {
	Level int
}

// ListType distinguishes bullet lists from ordered lists.
type ListType uint8

const (
	ListBullet ListType = iota
	ListOrdered
)

func (t ListType) String() string {
	if t == ListOrdered {
		return "ordered"
	}
	return "bullet"
}

// ListDelimiter is the punctuation following an ordered list number.
type ListDelimiter uint8

const (
	DelimiterNone ListDelimiter = iota
	DelimiterPeriod
	DelimiterParen
)

func (d ListDelimiter) String() string {
	switch d {
	case DelimiterPeriod:
		return "period"
	case DelimiterParen:
		return "paren"
	default:
		return ""
	}
}

// List holds list container attributes.
type List struct {
	Type      ListType
	Tight     bool
	Start     int // number of the first item
	Delimiter ListDelimiter
}

// FirstIndex returns the ordinal given to the first item. Ordered lists
// always use Start (CommonMark allows 0); other lists fall back to 1 when no
// start was recorded.
func (l *List) FirstIndex() int {
	if l.Type == ListOrdered || l.Start != 0 {
		return l.Start
	}
	return 1
}

// Item holds the ordinal assigned to a list item.
type Item struct {
	Index int
}

// Align is the column alignment of a table cell.
type Align uint8

const (
	AlignNone Align = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return ""
	}
}

// TableRow marks header rows.
type TableRow struct {
	IsHeading bool
}

// TableCell holds per-cell table attributes.
type TableCell struct {
	IsHeading bool
	Align     Align
}

// Link holds an inline link or autolink target.
type Link struct {
	Destination string
	Title       string
}

// Image holds an image target. LinkDestination is copied from an enclosing
// link so the view layer can open it when the image is tapped.
type Image struct {
	Destination     string
	Title           string
	LinkDestination string
}

// Checkbox is a GFM task list marker.
type Checkbox struct {
	Checked bool
}

// AtMention is an @name reference. Name excludes the leading @.
type AtMention struct {
	Name string
}

// ChannelLink is a ~name reference. Name excludes the leading ~.
type ChannelLink struct {
	Name string
}

// Emoji is a :name: shortcode. Name excludes the colons.
type Emoji struct {
	Name string
}

func (*Literal) payload()     {}
func (*CodeBlock) payload()   {}
func (*Heading) payload()     {}
func (*List) payload()        {}
func (*Item) payload()        {}
func (*TableRow) payload()    {}
func (*TableCell) payload()   {}
func (*Link) payload()        {}
func (*Image) payload()       {}
func (*Checkbox) payload()    {}
func (*AtMention) payload()   {}
func (*ChannelLink) payload() {}
func (*Emoji) payload()       {}

// payloadFor returns a zero payload for kind, or nil for kinds without one.
func payloadFor(kind Kind) Payload {
	switch kind {
	case KindText, KindCode, KindHTMLInline, KindHTMLBlock:
		return &Literal{}
	case KindCodeBlock:
		return &CodeBlock{}
	case KindHeading:
		return &Heading{Level: 1}
	case KindList:
		return &List{}
	case KindItem:
		return &Item{}
	case KindTableRow:
		return &TableRow{}
	case KindTableCell:
		return &TableCell{}
	case KindLink:
		return &Link{}
	case KindImage:
		return &Image{}
	case KindCheckbox:
		return &Checkbox{}
	case KindAtMention:
		return &AtMention{}
	case KindChannelLink:
		return &ChannelLink{}
	case KindEmoji:
		return &Emoji{}
	case KindDocument, KindParagraph, KindBlockQuote, KindThematicBreak,
		KindTable, KindSoftBreak, KindLineBreak, KindEmph, KindStrong, KindDel,
		KindMentionHighlight, KindHighlightWithoutNotification, KindSearchHighlight:
		return nil
	default:
		return nil
	}
}
