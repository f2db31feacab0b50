package mdtransform

import (
	"context"
	"testing"

	"github.com/teamup/mdtransform/mdast"
)

func TestPasses_ManualPipeline(t *testing.T) {
	t.Parallel()

	doc, err := Parse(context.Background(), "ping @Bob\r\nand [![x](i.png)](https://example.com)")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	doc = CombineTextNodes(doc)
	doc = PullOutImages(doc)
	doc = AddListItemIndices(doc)
	doc = HighlightMentions(doc, []Key{{Text: "bob"}})
	doc = HighlightWithoutNotification(doc, []Key{{Text: "ping"}})
	doc = HighlightSearchTerms(doc, []string{"and"})

	img := mdast.NewImage("i.png", "", txt("x"))
	img.Image().LinkDestination = "https://example.com"

	assertTree(t, mdast.NewDocument(mdast.NewParagraph(
		wrap(mdast.KindHighlightWithoutNotification, txt("ping")),
		txt(" "),
		wrap(mdast.KindMentionHighlight, mdast.NewAtMention("Bob")),
		mdast.NewSoftBreak(),
		wrap(mdast.KindSearchHighlight, txt("and")),
		txt(" "),
		mdast.NewLink("https://example.com", "", img),
	)), doc)
}

func TestHighlightSpan_RuneOffsets(t *testing.T) {
	t.Parallel()

	text := txt("좋은 하루 되세요.")
	doc := mdast.NewDocument(mdast.NewParagraph(text))

	m := FirstMentionMatch(text.Literal(), []Key{{Text: "하루"}})
	HighlightSpan(text, m.Index, m.Index+m.Length, mdast.KindMentionHighlight)

	assertTree(t, mdast.NewDocument(mdast.NewParagraph(
		txt("좋은 "),
		wrap(mdast.KindMentionHighlight, txt("하루")),
		txt(" 되세요."),
	)), doc)
}

func TestFirstMatch_Boundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		match func(string, []Key) Match
		text  string
		keys  []Key
		want  Match
	}{
		{name: "mention allows trailing underscores", match: FirstMentionMatch, text: "banana__", keys: []Key{{Text: "banana"}}, want: Match{Index: 0, Length: 6}},
		{name: "mention rejects leading underscore", match: FirstMentionMatch, text: "_lol", keys: []Key{{Text: "lol"}}, want: NoMatch},
		{name: "highlight accepts leading underscore", match: FirstHighlightMatch, text: "_lol", keys: []Key{{Text: "lol"}}, want: Match{Index: 1, Length: 3}},
		{name: "highlight rejects inner word", match: FirstHighlightMatch, text: "Sesquipedalian", keys: []Key{{Text: "quipedalian"}}, want: NoMatch},
		{name: "case sensitive key", match: FirstMentionMatch, text: "apple APPLE Apple aPPle", keys: []Key{{Text: "Apple", CaseSensitive: true}}, want: Match{Index: 12, Length: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.match(tt.text, tt.keys); got != tt.want {
				t.Errorf("match(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}
