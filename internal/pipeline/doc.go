// Package pipeline implements the message transform pipeline.
//
// This package handles every stage between raw message text and an
// annotated tree:
//   - Markdown preprocessing (line normalization, NUL replacement)
//   - Parsing via Goldmark, with @user, ~channel and :emoji: references,
//     converted to an mdast tree
//   - Structural rewrites (text merging, image link targets, list numbering)
//   - Mention, highlight-without-notification and search highlighting
//   - HTML preview rendering with chroma code highlighting
//
// Passes mutate the tree they are given and return it. They never fail:
// keys that cannot be used are dropped when compiled, and text without a
// match is left alone. A tree must not be shared between goroutines while a
// pass runs; compiled patterns and Highlighters may be shared freely.
package pipeline
