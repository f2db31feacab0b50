// Package mdast is the markdown tree used by the transform pipeline.
//
// A tree is a set of *Node values linked by parent, sibling and child
// pointers, in the same shape as the CommonMark reference AST:
//
//	document
//	└── paragraph
//	    ├── text "These are "
//	    └── mention_highlight
//	        └── at_mention name="words"
//
// Each node carries a Kind and, for kinds with attributes, a Payload. The
// payload types form a closed set (Literal, CodeBlock, Heading, List, Item,
// TableRow, TableCell, Link, Image, Checkbox, AtMention, ChannelLink,
// Emoji); use a type switch on Node.Data to inspect them.
//
// # Mutation
//
// Links are only reachable through methods (AppendChild, InsertBefore,
// InsertAfter, Unlink, ReplaceWith, WrapWith), which keep both directions of
// every link in sync. Verify checks the same invariants from the outside and
// is run by tests after every pass.
//
// # Traversal
//
// Walk visits a subtree recursively with enter/exit callbacks. Walker is an
// explicit iterator with ResumeAt, for passes that splice nodes in ahead of
// the cursor and need to step over them.
package mdast
