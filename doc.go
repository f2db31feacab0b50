// Package mdtransform turns chat message markdown into an annotated tree.
//
// # Quick Start
//
// Create a processor once and share it between goroutines:
//
//	proc, err := mdtransform.NewProcessor(
//	    mdtransform.WithMentionKeys(mdtransform.Key{Text: "@alice"}),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := proc.Process(ctx, mdtransform.Input{
//	    Markdown: "hey @alice, the build is green",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(mdast.Dump(result.Document))
//
// # Pipeline
//
// Every message goes through the same fixed sequence of passes:
//
//  1. Preprocessing (line endings, NUL characters)
//  2. Parsing via Goldmark (CommonMark, GFM, @user, ~channel, :emoji:)
//  3. CombineTextNodes, PullOutImages, AddListItemIndices
//  4. HighlightMentions, HighlightWithoutNotification, HighlightSearchTerms
//  5. Optional HTML preview rendering
//
// Each pass mutates the tree and runs once. WithVerify checks the tree's
// link invariants after every pass and fails with ErrTreeIntegrity.
//
// # Keys
//
// Mention keys are usernames or words such as "@alice", "alice" or
// "@channel". Highlight keys are arbitrary words or phrases that are marked
// without notifying anyone. Both match on ASCII word boundaries and ignore
// case unless Key.CaseSensitive is set. Keys containing CJK characters match
// anywhere.
//
// Search terms are always case-insensitive. A trailing * makes a prefix
// match and surrounding double quotes make a phrase.
//
// # Per-message keys
//
// Keys given to NewProcessor are compiled once. Keys passed in Input are
// added to them for that call only:
//
//	result, err := proc.Process(ctx, mdtransform.Input{
//	    Markdown:    msg,
//	    SearchTerms: []string{"deploy*"},
//	    HTML:        true,
//	})
//	os.WriteFile("preview.html", []byte(result.HTML), 0o644)
package mdtransform
