package mdast

import "encoding/json"

type jsonNode struct {
	Type            string  `json:"type"`
	Literal         string  `json:"literal,omitempty"`
	Info            string  `json:"info,omitempty"`
	Level           int     `json:"level,omitempty"`
	ListType        string  `json:"listType,omitempty"`
	ListTight       bool    `json:"listTight,omitempty"`
	ListStart       *int    `json:"listStart,omitempty"`
	ListDelimiter   string  `json:"listDelimiter,omitempty"`
	Index           *int    `json:"index,omitempty"`
	IsHeading       bool    `json:"isHeading,omitempty"`
	Align           string  `json:"align,omitempty"`
	Destination     string  `json:"destination,omitempty"`
	Title           string  `json:"title,omitempty"`
	LinkDestination string  `json:"linkDestination,omitempty"`
	Checked         bool    `json:"checked,omitempty"`
	MentionName     string  `json:"mentionName,omitempty"`
	ChannelName     string  `json:"channelName,omitempty"`
	EmojiName       string  `json:"emojiName,omitempty"`
	Children        []*Node `json:"children,omitempty"`
}

// MarshalJSON encodes n and its subtree as nested objects with a "type"
// field, the set payload fields and a "children" array.
func (n *Node) MarshalJSON() ([]byte, error) {
	out := jsonNode{Type: n.Kind.String()}

	switch d := n.Data.(type) {
	case *Literal:
		out.Literal = d.Value
	case *CodeBlock:
		out.Info = d.Info
		out.Literal = d.Literal
	case *Heading:
		out.Level = d.Level
	case *List:
		out.ListType = d.Type.String()
		out.ListTight = d.Tight
		if d.Type == ListOrdered || d.Start != 0 {
			out.ListStart = &d.Start
		}
		out.ListDelimiter = d.Delimiter.String()
	case *Item:
		out.Index = &d.Index
	case *TableRow:
		out.IsHeading = d.IsHeading
	case *TableCell:
		out.IsHeading = d.IsHeading
		out.Align = d.Align.String()
	case *Link:
		out.Destination = d.Destination
		out.Title = d.Title
	case *Image:
		out.Destination = d.Destination
		out.Title = d.Title
		out.LinkDestination = d.LinkDestination
	case *Checkbox:
		out.Checked = d.Checked
	case *AtMention:
		out.MentionName = d.Name
	case *ChannelLink:
		out.ChannelName = d.Name
	case *Emoji:
		out.EmojiName = d.Name
	case nil:
	}

	for c := n.firstChild; c != nil; c = c.next {
		out.Children = append(out.Children, c)
	}
	return json.Marshal(out)
}
