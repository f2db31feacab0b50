package pipeline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Key is a term to find in message text: a username, a configured mention
// key or a highlight-without-notification key.
type Key struct {
	Text          string
	CaseSensitive bool
}

// boundary selects the context a match must appear in.
type boundary uint8

const (
	// boundaryMention rejects a match preceded by [A-Za-z0-9_] or followed,
	// after any run of underscores, by [A-Za-z0-9].
	boundaryMention boundary = iota
	// boundaryHighlight rejects a match touching [A-Za-z0-9] on either side.
	// Underscores and punctuation count as separators.
	boundaryHighlight
	// boundaryNone accepts every match. Used for CJK keys, which are not
	// separated by spaces.
	boundaryNone
)

// Pattern is one compiled key. Patterns are read-only after compilation and
// safe to share between goroutines.
type Pattern struct {
	key      string
	re       *regexp.Regexp
	boundary boundary
	prefix   bool // extend the match over the rest of the word
}

// Key returns the source text the pattern was compiled from.
func (p *Pattern) Key() string { return p.key }

// CompileMentionPatterns compiles mention keys. Blank keys are dropped and
// every key is matched literally, so no input can make compilation or
// matching fail. Order is preserved.
func CompileMentionPatterns(keys []Key) []Pattern {
	return compilePatterns(keys, boundaryMention)
}

// CompileHighlightPatterns compiles highlight-without-notification keys.
// Unlike mention patterns, a leading underscore does not block a match.
func CompileHighlightPatterns(keys []Key) []Pattern {
	return compilePatterns(keys, boundaryHighlight)
}

// CompileSearchPatterns compiles search terms, always case-insensitively.
// A trailing * makes the term a prefix ("hel*" matches "hello") and
// surrounding double quotes are removed from phrases.
func CompileSearchPatterns(terms []string) []Pattern {
	patterns := make([]Pattern, 0, len(terms))
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if len(term) >= 2 && strings.HasPrefix(term, `"`) && strings.HasSuffix(term, `"`) {
			term = term[1 : len(term)-1]
		}
		term, prefix := strings.CutSuffix(term, "*")
		p, ok := compileKey(Key{Text: term}, boundaryHighlight)
		if !ok {
			continue
		}
		p.prefix = prefix
		patterns = append(patterns, p)
	}
	return patterns
}

func compilePatterns(keys []Key, b boundary) []Pattern {
	patterns := make([]Pattern, 0, len(keys))
	for _, k := range keys {
		if p, ok := compileKey(k, b); ok {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

func compileKey(k Key, b boundary) (Pattern, bool) {
	if strings.TrimSpace(k.Text) == "" {
		return Pattern{}, false
	}

	expr := regexp.QuoteMeta(k.Text)
	if !k.CaseSensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, false
	}

	if containsCJK(k.Text) {
		b = boundaryNone
	}
	return Pattern{key: k.Text, re: re, boundary: b}, true
}

// find returns the byte span of the first match of p in text that satisfies
// its boundary rule. Rejected candidates are retried one rune later, so
// overlapping occurrences are not missed.
func (p *Pattern) find(text string) (start, end int, ok bool) {
	for from := 0; from < len(text); {
		loc := p.re.FindStringIndex(text[from:])
		if loc == nil {
			return 0, 0, false
		}
		start, end = from+loc[0], from+loc[1]
		if p.prefix {
			end = extendWord(text, end)
		}
		if end > start && p.accepts(text, start, end) {
			return start, end, true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		from = start + max(size, 1)
	}
	return 0, 0, false
}

func (p *Pattern) accepts(text string, start, end int) bool {
	switch p.boundary {
	case boundaryMention:
		if start > 0 && isWordByte(text[start-1]) {
			return false
		}
		for end < len(text) && text[end] == '_' {
			end++
		}
		return end == len(text) || !isAlnumByte(text[end])
	case boundaryHighlight:
		if start > 0 && isAlnumByte(text[start-1]) {
			return false
		}
		return end == len(text) || !isAlnumByte(text[end])
	case boundaryNone:
		return true
	default:
		return true
	}
}

// extendWord advances end over letters, digits and underscores.
func extendWord(text string, end int) int {
	for end < len(text) {
		r, size := utf8.DecodeRuneInString(text[end:])
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		end += size
	}
	return end
}

// Word boundaries only consider ASCII. Bytes of multi-byte runes are >= 0x80
// and never count as word characters.
func isAlnumByte(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

func isWordByte(c byte) bool {
	return c == '_' || isAlnumByte(c)
}

func containsCJK(s string) bool {
	for _, r := range s {
		if unicode.In(r, unicode.Han, unicode.Hangul, unicode.Hiragana, unicode.Katakana) {
			return true
		}
	}
	return false
}

// Match locates a key in a string. Index and Length count Unicode code
// points (runes), not bytes.
type Match struct {
	Index  int
	Length int
}

// NoMatch is returned by FirstMatch when no pattern matches.
var NoMatch = Match{Index: -1, Length: -1}

// FirstMatch returns the earliest match of any pattern in text. When two
// patterns match at the same index the one listed first wins, even if a
// later one is longer.
func FirstMatch(text string, patterns []Pattern) Match {
	start, end, ok := firstMatch(text, patterns)
	if !ok {
		return NoMatch
	}
	return Match{
		Index:  utf8.RuneCountInString(text[:start]),
		Length: utf8.RuneCountInString(text[start:end]),
	}
}

// firstMatch is FirstMatch in byte offsets.
func firstMatch(text string, patterns []Pattern) (start, end int, ok bool) {
	for i := range patterns {
		s, e, found := patterns[i].find(text)
		if !found {
			continue
		}
		if !ok || s < start {
			start, end, ok = s, e, true
		}
	}
	return start, end, ok
}
