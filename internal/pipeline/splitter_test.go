package pipeline

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/teamup/mdtransform/mdast"
)

func TestHighlightSpan(t *testing.T) {
	t.Parallel()

	const literal = "This is a sentence"
	highlighted := func(s string) *mdast.Node {
		return mdast.New(mdast.KindMentionHighlight, mdast.NewText(s))
	}

	tests := []struct {
		name       string
		start, end int
		want       func() []*mdast.Node
	}{
		{
			name:  "highlight entire text",
			start: 0,
			end:   len(literal),
			want: func() []*mdast.Node {
				return []*mdast.Node{highlighted(literal)}
			},
		},
		{
			name:  "highlight start of text",
			start: 0,
			end:   6,
			want: func() []*mdast.Node {
				return []*mdast.Node{highlighted("This i"), mdast.NewText("s a sentence")}
			},
		},
		{
			name:  "highlight end of text",
			start: 8,
			end:   len(literal),
			want: func() []*mdast.Node {
				return []*mdast.Node{mdast.NewText("This is "), highlighted("a sentence")}
			},
		},
		{
			name:  "highlight middle of text",
			start: 5,
			end:   12,
			want: func() []*mdast.Node {
				return []*mdast.Node{mdast.NewText("This "), highlighted("is a se"), mdast.NewText("ntence")}
			},
		},
		{
			name:  "end past literal is clamped",
			start: 8,
			end:   100,
			want: func() []*mdast.Node {
				return []*mdast.Node{mdast.NewText("This is "), highlighted("a sentence")}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+", without siblings", func(t *testing.T) {
			t.Parallel()

			node := mdast.NewText(literal)
			got := mdast.NewParagraph(node)
			want := mdast.NewParagraph(tt.want()...)

			wrapper := HighlightSpan(node, tt.start, tt.end, mdast.KindMentionHighlight)
			if wrapper.Kind != mdast.KindMentionHighlight {
				t.Errorf("wrapper kind = %v, want mention_highlight", wrapper.Kind)
			}
			if err := mdast.Verify(got); err != nil {
				t.Fatalf("Verify() = %v", err)
			}
			if diff := cmp.Diff(mdast.Dump(want), mdast.Dump(got)); diff != "" {
				t.Errorf("tree mismatch (-want +got):\n%s", diff)
			}
		})

		t.Run(tt.name+", with siblings", func(t *testing.T) {
			t.Parallel()

			node := mdast.NewText(literal)
			got := mdast.NewParagraph(mdast.NewSoftBreak(), node, mdast.NewLineBreak())
			want := mdast.NewParagraph(mdast.NewSoftBreak())
			for _, n := range tt.want() {
				want.AppendChild(n)
			}
			want.AppendChild(mdast.NewLineBreak())

			HighlightSpan(node, tt.start, tt.end, mdast.KindMentionHighlight)
			if err := mdast.Verify(got); err != nil {
				t.Fatalf("Verify() = %v", err)
			}
			if diff := cmp.Diff(mdast.Dump(want), mdast.Dump(got)); diff != "" {
				t.Errorf("tree mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHighlightSpan_RuneOffsets(t *testing.T) {
	t.Parallel()

	node := mdast.NewText("좋은 하루 되세요.")
	p := mdast.NewParagraph(node)

	HighlightSpan(node, 3, 5, mdast.KindHighlightWithoutNotification)

	want := mdast.NewParagraph(
		mdast.NewText("좋은 "),
		mdast.New(mdast.KindHighlightWithoutNotification, mdast.NewText("하루")),
		mdast.NewText(" 되세요."),
	)
	if diff := cmp.Diff(mdast.Dump(want), mdast.Dump(p)); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestHighlightSpan_EmptySpanLeavesTree(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		start, end int
	}{
		{name: "start after end", start: 4, end: 2},
		{name: "zero width", start: 2, end: 2},
		{name: "start past literal", start: 10, end: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			node := mdast.NewText("hello")
			p := mdast.NewParagraph(node)

			if got := HighlightSpan(node, tt.start, tt.end, mdast.KindMentionHighlight); got != nil {
				t.Errorf("HighlightSpan() = %v, want nil", got.Kind)
			}
			if diff := cmp.Diff(mdast.Dump(mdast.NewParagraph(mdast.NewText("hello"))), mdast.Dump(p)); diff != "" {
				t.Errorf("tree mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
