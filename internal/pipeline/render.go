package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/teamup/mdtransform/mdast"
)

// ErrHTMLRender indicates an annotated tree could not be rendered.
var ErrHTMLRender = errors.New("HTML rendering failed")

// DefaultCodeStyle is the chroma style used for code block classes.
const DefaultCodeStyle = "github"

// htmlTemplate wraps a rendered fragment in a complete HTML5 document.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Message preview</title>
<style>
%s
</style>
</head>
<body>
<div class="post-message">
%s
</div>
</body>
</html>`

// HTMLRenderer abstracts rendering an annotated tree to HTML.
type HTMLRenderer interface {
	Render(ctx context.Context, root *mdast.Node) (string, error)
}

// PreviewRenderer renders annotated trees as HTML fragments. Highlights
// become spans with the classes chat clients style, and fenced code blocks
// are highlighted by chroma with CSS classes. Raw HTML is escaped.
type PreviewRenderer struct {
	formatter *chromahtml.Formatter
	style     *chroma.Style
}

// RendererOption configures a PreviewRenderer.
type RendererOption func(*PreviewRenderer)

// WithCodeStyle selects the chroma style for CodeCSS. Unknown names fall
// back to chroma's default style.
func WithCodeStyle(name string) RendererOption {
	return func(r *PreviewRenderer) {
		r.style = styles.Get(name)
	}
}

// NewPreviewRenderer creates a PreviewRenderer.
func NewPreviewRenderer(opts ...RendererOption) *PreviewRenderer {
	r := &PreviewRenderer{
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
		style:     styles.Get(DefaultCodeStyle),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CodeCSS returns the stylesheet for the classes emitted in code blocks.
func (r *PreviewRenderer) CodeCSS() (string, error) {
	var buf bytes.Buffer
	if err := r.formatter.WriteCSS(&buf, r.style); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}
	return buf.String(), nil
}

// Render converts root to an HTML fragment. The context is checked between
// top-level blocks.
func (r *PreviewRenderer) Render(ctx context.Context, root *mdast.Node) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if root == nil {
		return "", nil
	}

	var buf bytes.Buffer
	if root.Kind == mdast.KindDocument {
		for block := range root.Children() {
			if err := ctx.Err(); err != nil {
				return "", err
			}
			if err := r.renderNode(&buf, block); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := r.renderNode(&buf, root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Document wraps an HTML fragment in a standalone page with css inlined.
func Document(fragment, css string) string {
	return fmt.Sprintf(htmlTemplate, css, fragment)
}

func (r *PreviewRenderer) renderChildren(w *bytes.Buffer, n *mdast.Node) error {
	for c := range n.Children() {
		if err := r.renderNode(w, c); err != nil {
			return err
		}
	}
	return nil
}

// wrap renders the children of n between open and end.
func (r *PreviewRenderer) wrap(w *bytes.Buffer, n *mdast.Node, open, end string) error {
	w.WriteString(open)
	if err := r.renderChildren(w, n); err != nil {
		return err
	}
	w.WriteString(end)
	return nil
}

func (r *PreviewRenderer) renderNode(w *bytes.Buffer, n *mdast.Node) error {
	switch n.Kind {
	case mdast.KindDocument:
		return r.renderChildren(w, n)
	case mdast.KindParagraph:
		if inTightList(n) {
			return r.renderChildren(w, n)
		}
		return r.wrap(w, n, "<p>", "</p>\n")
	case mdast.KindHeading:
		level := 1
		if h, ok := n.Data.(*mdast.Heading); ok {
			level = min(max(h.Level, 1), 6)
		}
		tag := "h" + strconv.Itoa(level)
		return r.wrap(w, n, "<"+tag+">", "</"+tag+">\n")
	case mdast.KindBlockQuote:
		return r.wrap(w, n, "<blockquote>\n", "</blockquote>\n")
	case mdast.KindList:
		return r.renderList(w, n)
	case mdast.KindItem:
		return r.renderItem(w, n)
	case mdast.KindCodeBlock:
		return r.renderCodeBlock(w, n)
	case mdast.KindHTMLBlock:
		w.WriteString("<pre>")
		writeEscaped(w, n.Literal())
		w.WriteString("</pre>\n")
	case mdast.KindThematicBreak:
		w.WriteString("<hr />\n")
	case mdast.KindTable:
		return r.renderTable(w, n)
	case mdast.KindTableRow:
		return r.wrap(w, n, "<tr>\n", "</tr>\n")
	case mdast.KindTableCell:
		return r.renderTableCell(w, n)
	case mdast.KindText, mdast.KindHTMLInline:
		writeEscaped(w, n.Literal())
	case mdast.KindSoftBreak:
		w.WriteByte('\n')
	case mdast.KindLineBreak:
		w.WriteString("<br />\n")
	case mdast.KindEmph:
		return r.wrap(w, n, "<em>", "</em>")
	case mdast.KindStrong:
		return r.wrap(w, n, "<strong>", "</strong>")
	case mdast.KindDel:
		return r.wrap(w, n, "<del>", "</del>")
	case mdast.KindCode:
		w.WriteString("<code>")
		writeEscaped(w, n.Literal())
		w.WriteString("</code>")
	case mdast.KindLink:
		return r.renderLink(w, n)
	case mdast.KindImage:
		r.renderImage(w, n)
	case mdast.KindCheckbox:
		w.WriteString(`<input type="checkbox" disabled=""`)
		if cb, ok := n.Data.(*mdast.Checkbox); ok && cb.Checked {
			w.WriteString(` checked=""`)
		}
		w.WriteString(" />")
	case mdast.KindAtMention:
		var name string
		if m := n.AtMention(); m != nil {
			name = m.Name
		}
		w.WriteString(`<span class="mention" data-mention="`)
		writeEscaped(w, name)
		w.WriteString(`">@`)
		writeEscaped(w, name)
		w.WriteString("</span>")
	case mdast.KindChannelLink:
		var name string
		if c, ok := n.Data.(*mdast.ChannelLink); ok {
			name = c.Name
		}
		w.WriteString(`<a class="channel-link" href="~`)
		writeEscaped(w, name)
		w.WriteString(`" data-channel="`)
		writeEscaped(w, name)
		w.WriteString(`">~`)
		writeEscaped(w, name)
		w.WriteString("</a>")
	case mdast.KindEmoji:
		var name string
		if e, ok := n.Data.(*mdast.Emoji); ok {
			name = e.Name
		}
		w.WriteString(`<span class="emoji" data-emoji="`)
		writeEscaped(w, name)
		w.WriteString(`">:`)
		writeEscaped(w, name)
		w.WriteString(":</span>")
	case mdast.KindMentionHighlight:
		return r.wrap(w, n, `<span class="mention--highlight">`, "</span>")
	case mdast.KindHighlightWithoutNotification:
		return r.wrap(w, n, `<span class="highlight--without-notification">`, "</span>")
	case mdast.KindSearchHighlight:
		return r.wrap(w, n, "<mark>", "</mark>")
	default:
		return r.renderChildren(w, n)
	}
	return nil
}

func (r *PreviewRenderer) renderList(w *bytes.Buffer, n *mdast.Node) error {
	list := n.List()
	if list == nil || list.Type != mdast.ListOrdered {
		return r.wrap(w, n, "<ul>\n", "</ul>\n")
	}
	open := "<ol>\n"
	if list.Start != 1 {
		open = `<ol start="` + strconv.Itoa(list.Start) + "\">\n"
	}
	return r.wrap(w, n, open, "</ol>\n")
}

func (r *PreviewRenderer) renderItem(w *bytes.Buffer, n *mdast.Node) error {
	open := "<li>"
	if parent := n.Parent(); parent != nil {
		if list := parent.List(); list != nil && list.Type == mdast.ListOrdered {
			if item := n.Item(); item != nil {
				open = `<li value="` + strconv.Itoa(item.Index) + `">`
			}
		}
	}
	return r.wrap(w, n, open, "</li>\n")
}

func (r *PreviewRenderer) renderCodeBlock(w *bytes.Buffer, n *mdast.Node) error {
	var info, literal string
	if cb, ok := n.Data.(*mdast.CodeBlock); ok {
		info, literal = cb.Info, cb.Literal
	}

	var lang string
	if fields := strings.Fields(info); len(fields) > 0 {
		lang = fields[0]
	}

	var lexer chroma.Lexer
	if lang != "" {
		lexer = lexers.Get(lang)
	}
	if lexer == nil {
		w.WriteString("<pre><code")
		if lang != "" {
			w.WriteString(` class="language-`)
			writeEscaped(w, lang)
			w.WriteString(`"`)
		}
		w.WriteString(">")
		writeEscaped(w, literal)
		w.WriteString("</code></pre>\n")
		return nil
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, literal)
	if err != nil {
		return fmt.Errorf("%w: tokenizing %s: %v", ErrHTMLRender, lang, err)
	}
	if err := r.formatter.Format(w, r.style, iterator); err != nil {
		return fmt.Errorf("%w: formatting %s: %v", ErrHTMLRender, lang, err)
	}
	w.WriteByte('\n')
	return nil
}

func (r *PreviewRenderer) renderTable(w *bytes.Buffer, n *mdast.Node) error {
	w.WriteString("<table>\n")
	inBody := false
	for row := range n.Children() {
		heading := false
		if data, ok := row.Data.(*mdast.TableRow); ok {
			heading = data.IsHeading
		}

		switch {
		case heading:
			w.WriteString("<thead>\n")
			if err := r.renderNode(w, row); err != nil {
				return err
			}
			w.WriteString("</thead>\n")
			continue
		case !inBody:
			w.WriteString("<tbody>\n")
			inBody = true
		}
		if err := r.renderNode(w, row); err != nil {
			return err
		}
	}
	if inBody {
		w.WriteString("</tbody>\n")
	}
	w.WriteString("</table>\n")
	return nil
}

func (r *PreviewRenderer) renderTableCell(w *bytes.Buffer, n *mdast.Node) error {
	tag := "td"
	var align mdast.Align
	if data, ok := n.Data.(*mdast.TableCell); ok {
		if data.IsHeading {
			tag = "th"
		}
		align = data.Align
	}

	open := "<" + tag + ">"
	if align != mdast.AlignNone {
		open = "<" + tag + ` align="` + align.String() + `">`
	}
	return r.wrap(w, n, open, "</"+tag+">\n")
}

func (r *PreviewRenderer) renderLink(w *bytes.Buffer, n *mdast.Node) error {
	w.WriteString("<a")
	if link := n.Link(); link != nil {
		writeURLAttr(w, "href", link.Destination)
		if link.Title != "" {
			w.WriteString(` title="`)
			writeEscaped(w, link.Title)
			w.WriteString(`"`)
		}
	}
	return r.wrap(w, n, ">", "</a>")
}

func (r *PreviewRenderer) renderImage(w *bytes.Buffer, n *mdast.Node) {
	w.WriteString("<img")
	image := n.Image()
	if image != nil {
		writeURLAttr(w, "src", image.Destination)
	}
	w.WriteString(` alt="`)
	writeEscaped(w, plainText(n))
	w.WriteString(`"`)
	if image != nil && image.Title != "" {
		w.WriteString(` title="`)
		writeEscaped(w, image.Title)
		w.WriteString(`"`)
	}
	w.WriteString(" />")
}

// writeURLAttr writes a URL attribute, dropping dangerous schemes such as
// javascript:.
func writeURLAttr(w *bytes.Buffer, name, url string) {
	dest := []byte(url)
	if html.IsDangerousURL(dest) {
		return
	}
	w.WriteString(" " + name + `="`)
	w.Write(util.EscapeHTML(util.URLEscape(dest, true)))
	w.WriteString(`"`)
}

func writeEscaped(w *bytes.Buffer, s string) {
	w.Write(util.EscapeHTML([]byte(s)))
}

// inTightList reports whether a paragraph belongs to an item of a tight list.
func inTightList(n *mdast.Node) bool {
	item := n.Parent()
	if item == nil || item.Kind != mdast.KindItem || item.Parent() == nil {
		return false
	}
	list := item.Parent().List()
	return list != nil && list.Tight
}

// plainText concatenates the literal content under n.
func plainText(n *mdast.Node) string {
	var b strings.Builder
	mdast.Walk(n, func(c *mdast.Node, entering bool) mdast.WalkStatus {
		if !entering {
			return mdast.WalkContinue
		}
		switch c.Kind {
		case mdast.KindText, mdast.KindCode:
			b.WriteString(c.Literal())
		case mdast.KindSoftBreak, mdast.KindLineBreak:
			b.WriteByte(' ')
		}
		return mdast.WalkContinue
	})
	return b.String()
}

var _ HTMLRenderer = (*PreviewRenderer)(nil)
