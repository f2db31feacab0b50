package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/teamup/mdtransform/mdast"
)

// ErrParse indicates the markdown could not be turned into a tree.
var ErrParse = errors.New("markdown parsing failed")

// MarkdownParser abstracts Markdown parsing.
type MarkdownParser interface {
	Parse(ctx context.Context, content string) (*mdast.Node, error)
}

// GoldmarkParser parses Markdown with goldmark (pure Go) and converts the
// result to an mdast tree.
type GoldmarkParser struct {
	md goldmark.Markdown
}

// NewGoldmarkParser creates a GoldmarkParser with GFM extensions and chat
// references (@user, ~channel, :emoji:).
func NewGoldmarkParser() *GoldmarkParser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			&ChatSyntax{},
		),
	)
	return &GoldmarkParser{md: md}
}

// Parse converts Markdown content to a document tree.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (p *GoldmarkParser) Parse(ctx context.Context, content string) (*mdast.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		doc *mdast.Node
		err error
	}

	done := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("%w: %v", ErrParse, r)}
			}
		}()

		source := []byte(content)
		root := p.md.Parser().Parse(text.NewReader(source))
		done <- result{doc: convert(root, source)}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.doc, r.err
	}
}

// convert builds the mdast equivalent of a goldmark document.
func convert(root ast.Node, source []byte) *mdast.Node {
	c := converter{source: source}
	doc := mdast.NewDocument()
	c.appendChildren(doc, root)
	return doc
}

type converter struct {
	source []byte
}

func (c *converter) appendChildren(dst *mdast.Node, src ast.Node) {
	for child := src.FirstChild(); child != nil; child = child.NextSibling() {
		c.appendNode(dst, child)
	}
}

// appendNode converts n and appends the result to dst. Nodes without an
// mdast equivalent are replaced by their children.
func (c *converter) appendNode(dst *mdast.Node, n ast.Node) {
	switch n := n.(type) {
	// Blocks
	case *ast.Paragraph, *ast.TextBlock:
		c.appendContainer(dst, mdast.NewParagraph(), n)
	case *ast.Heading:
		c.appendContainer(dst, mdast.NewHeading(n.Level), n)
	case *ast.Blockquote:
		c.appendContainer(dst, mdast.NewBlockQuote(), n)
	case *ast.ThematicBreak:
		dst.AppendChild(mdast.NewThematicBreak())
	case *ast.List:
		c.appendContainer(dst, mdast.NewList(listData(n)), n)
	case *ast.ListItem:
		c.appendContainer(dst, mdast.NewItem(), n)
	case *ast.FencedCodeBlock:
		var info string
		if n.Info != nil {
			info = string(n.Info.Segment.Value(c.source))
		}
		dst.AppendChild(mdast.NewCodeBlock(info, c.lines(n.Lines())))
	case *ast.CodeBlock:
		dst.AppendChild(mdast.NewCodeBlock("", c.lines(n.Lines())))
	case *ast.HTMLBlock:
		literal := c.lines(n.Lines())
		if n.HasClosure() {
			literal += string(n.ClosureLine.Value(c.source))
		}
		dst.AppendChild(mdast.NewHTMLBlock(literal))
	case *east.Table:
		c.appendTable(dst, n)

	// Inlines
	case *ast.Text:
		if value := c.text(n); value != "" {
			dst.AppendChild(mdast.NewText(value))
		}
		switch {
		case n.HardLineBreak():
			dst.AppendChild(mdast.NewLineBreak())
		case n.SoftLineBreak():
			dst.AppendChild(mdast.NewSoftBreak())
		}
	case *ast.String:
		if len(n.Value) > 0 {
			dst.AppendChild(mdast.NewText(string(n.Value)))
		}
	case *ast.CodeSpan:
		dst.AppendChild(mdast.NewCode(c.codeSpan(n)))
	case *ast.Emphasis:
		if n.Level >= 2 {
			c.appendContainer(dst, mdast.NewStrong(), n)
		} else {
			c.appendContainer(dst, mdast.NewEmph(), n)
		}
	case *east.Strikethrough:
		c.appendContainer(dst, mdast.NewDel(), n)
	case *ast.Link:
		c.appendContainer(dst, mdast.NewLink(string(n.Destination), string(n.Title)), n)
	case *ast.Image:
		c.appendContainer(dst, mdast.NewImage(string(n.Destination), string(n.Title)), n)
	case *ast.AutoLink:
		dst.AppendChild(c.autoLink(n))
	case *ast.RawHTML:
		var b strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			segment := n.Segments.At(i)
			b.Write(segment.Value(c.source))
		}
		dst.AppendChild(mdast.NewHTMLInline(b.String()))
	case *east.TaskCheckBox:
		dst.AppendChild(mdast.NewCheckbox(n.IsChecked))
	case *ChatToken:
		dst.AppendChild(chatNode(n))

	default:
		c.appendChildren(dst, n)
	}
}

func (c *converter) appendContainer(dst, node *mdast.Node, src ast.Node) {
	c.appendChildren(node, src)
	dst.AppendChild(node)
}

func (c *converter) appendTable(dst *mdast.Node, table *east.Table) {
	out := mdast.NewTable()
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		_, heading := row.(*east.TableHeader)
		r := mdast.NewTableRow(heading)
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			var align mdast.Align
			if tc, ok := cell.(*east.TableCell); ok {
				align = alignment(tc.Alignment)
			}
			c.appendContainer(r, mdast.NewTableCell(heading, align), cell)
		}
		out.AppendChild(r)
	}
	dst.AppendChild(out)
}

func (c *converter) autoLink(n *ast.AutoLink) *mdast.Node {
	url := string(n.URL(c.source))
	if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(url), "mailto:") {
		url = "mailto:" + url
	}
	return mdast.NewLink(url, "", mdast.NewText(string(n.Label(c.source))))
}

// text returns the content of a text node with backslash escapes and
// character references resolved.
func (c *converter) text(n *ast.Text) string {
	value := n.Segment.Value(c.source)
	if n.IsRaw() {
		return string(value)
	}
	value = util.UnescapePunctuations(value)
	value = util.ResolveNumericReferences(value)
	value = util.ResolveEntityNames(value)
	return string(value)
}

func (c *converter) codeSpan(n *ast.CodeSpan) string {
	var b bytes.Buffer
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch t := child.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(c.source))
		case *ast.String:
			b.Write(t.Value)
		}
	}
	// Line endings inside a code span render as spaces.
	return strings.ReplaceAll(b.String(), "\n", " ")
}

func (c *converter) lines(lines *text.Segments) string {
	var b strings.Builder
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		b.Write(line.Value(c.source))
	}
	return b.String()
}

func listData(n *ast.List) mdast.List {
	list := mdast.List{Type: mdast.ListBullet, Tight: n.IsTight}
	if !n.IsOrdered() {
		return list
	}

	list.Type = mdast.ListOrdered
	list.Start = n.Start
	switch n.Marker {
	case '.':
		list.Delimiter = mdast.DelimiterPeriod
	case ')':
		list.Delimiter = mdast.DelimiterParen
	}
	return list
}

func alignment(a east.Alignment) mdast.Align {
	switch a {
	case east.AlignLeft:
		return mdast.AlignLeft
	case east.AlignCenter:
		return mdast.AlignCenter
	case east.AlignRight:
		return mdast.AlignRight
	default:
		return mdast.AlignNone
	}
}

func chatNode(n *ChatToken) *mdast.Node {
	switch n.Ref {
	case mdast.KindChannelLink:
		return mdast.NewChannelLink(n.Name)
	case mdast.KindEmoji:
		return mdast.NewEmoji(n.Name)
	default:
		return mdast.NewAtMention(n.Name)
	}
}

var _ MarkdownParser = (*GoldmarkParser)(nil)
