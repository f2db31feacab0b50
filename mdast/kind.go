package mdast

import "fmt"

// Kind identifies the variant of a Node.
type Kind uint8

// Node kinds. Block kinds come first, then inline kinds, then the chat
// annotations added by the highlight passes.
const (
	KindDocument Kind = iota
	KindParagraph
	KindHeading
	KindBlockQuote
	KindList
	KindItem
	KindCodeBlock
	KindHTMLBlock
	KindThematicBreak
	KindTable
	KindTableRow
	KindTableCell

	KindText
	KindSoftBreak
	KindLineBreak
	KindEmph
	KindStrong
	KindDel
	KindCode
	KindHTMLInline
	KindLink
	KindImage
	KindCheckbox
	KindAtMention
	KindChannelLink
	KindEmoji

	KindMentionHighlight
	KindHighlightWithoutNotification
	KindSearchHighlight

	kindCount
)

var kindNames = [kindCount]string{
	KindDocument:                     "document",
	KindParagraph:                    "paragraph",
	KindHeading:                      "heading",
	KindBlockQuote:                   "block_quote",
	KindList:                         "list",
	KindItem:                         "item",
	KindCodeBlock:                    "code_block",
	KindHTMLBlock:                    "html_block",
	KindThematicBreak:                "thematic_break",
	KindTable:                        "table",
	KindTableRow:                     "table_row",
	KindTableCell:                    "table_cell",
	KindText:                         "text",
	KindSoftBreak:                    "softbreak",
	KindLineBreak:                    "linebreak",
	KindEmph:                         "emph",
	KindStrong:                       "strong",
	KindDel:                          "del",
	KindCode:                         "code",
	KindHTMLInline:                   "html_inline",
	KindLink:                         "link",
	KindImage:                        "image",
	KindCheckbox:                     "checkbox",
	KindAtMention:                    "at_mention",
	KindChannelLink:                  "channel_link",
	KindEmoji:                        "emoji",
	KindMentionHighlight:             "mention_highlight",
	KindHighlightWithoutNotification: "highlight_without_notification",
	KindSearchHighlight:              "search_highlight",
}

// String returns the snake_case name used in dumps and JSON output.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind maps a snake_case name back to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// IsContainer reports whether nodes of this kind can hold children.
// Walkers emit an exit event only for containers.
func (k Kind) IsContainer() bool {
	switch k {
	case KindText, KindSoftBreak, KindLineBreak, KindCode, KindHTMLInline,
		KindHTMLBlock, KindCodeBlock, KindThematicBreak, KindCheckbox,
		KindAtMention, KindChannelLink, KindEmoji:
		return false
	default:
		return true
	}
}

// IsCode reports whether the kind holds verbatim code whose content must
// never be annotated.
func (k Kind) IsCode() bool {
	switch k {
	case KindCode, KindCodeBlock, KindHTMLInline, KindHTMLBlock:
		return true
	default:
		return false
	}
}
