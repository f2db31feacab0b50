package pipeline

import (
	"regexp"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/teamup/mdtransform/mdast"
)

// KindChatToken is the goldmark node kind of at-mentions, channel links and
// emoji parsed by ChatSyntax.
var KindChatToken = ast.NewNodeKind("ChatToken")

// ChatToken is a chat reference in goldmark's tree. Ref is the mdast kind it
// converts to.
type ChatToken struct {
	ast.BaseInline
	Ref  mdast.Kind
	Name string
}

// Kind implements ast.Node.
func (n *ChatToken) Kind() ast.NodeKind { return KindChatToken }

// Dump implements ast.Node.
func (n *ChatToken) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Ref":  n.Ref.String(),
		"Name": n.Name,
	}, nil)
}

var (
	atMentionPattern   = regexp.MustCompile(`^@([A-Za-z0-9_][A-Za-z0-9_.\-]*)`)
	channelLinkPattern = regexp.MustCompile(`^~([A-Za-z0-9_][A-Za-z0-9_.\-]*)`)
	emojiPattern       = regexp.MustCompile(`^:([a-z0-9_+\-]+):`)
)

// chatTokenParser parses @user, ~channel and :emoji: references.
type chatTokenParser struct{}

// Trigger implements parser.InlineParser.
func (p *chatTokenParser) Trigger() []byte {
	return []byte{'@', '~', ':'}
}

// Parse implements parser.InlineParser. A reference must not follow a word
// character, so e-mail addresses and times are left alone.
func (p *chatTokenParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	prev := block.PrecendingCharacter()
	if prev == '_' || unicode.IsLetter(prev) || unicode.IsDigit(prev) {
		return nil
	}

	line, _ := block.PeekLine()
	if len(line) < 2 {
		return nil
	}

	var (
		pattern *regexp.Regexp
		ref     mdast.Kind
	)
	switch line[0] {
	case '@':
		pattern, ref = atMentionPattern, mdast.KindAtMention
	case '~':
		pattern, ref = channelLinkPattern, mdast.KindChannelLink
	case ':':
		pattern, ref = emojiPattern, mdast.KindEmoji
	default:
		return nil
	}

	m := pattern.FindSubmatch(line)
	if m == nil {
		return nil
	}
	block.Advance(len(m[0]))
	return &ChatToken{Ref: ref, Name: string(m[1])}
}

// ChatSyntax is a goldmark extension for chat references.
type ChatSyntax struct{}

// Extend implements goldmark.Extender. The parser runs after raw HTML and
// before emphasis and strikethrough, so "~channel" is not taken as a
// strikethrough delimiter.
func (e *ChatSyntax) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&chatTokenParser{}, 450),
	))
}

var (
	_ parser.InlineParser = (*chatTokenParser)(nil)
	_ goldmark.Extender   = (*ChatSyntax)(nil)
)
