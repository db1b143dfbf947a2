package syntax

import "github.com/iw2rmb/quill/internal/grapheme"

// span is one token claimed by a matcher.
type span struct {
	n   int
	tag Tag
	// open is set when a block comment runs past the end of the line.
	open bool
}

// matcher tries to claim a token starting at clusters[i].
type matcher func(clusters []string, i int, r *Rules) (span, bool)

// matchers are tried in priority order; the first match wins.
var matchers = []matcher{
	matchBlockComment,
	matchChar,
	matchLineComment,
	matchPrimaryKeyword,
	matchSecondaryKeyword,
	matchString,
	matchNumber,
}

const (
	blockOpen  = "/*"
	blockClose = "*/"
	lineOpen   = "//"
)

// Highlight returns one tag per cluster and whether the line ends inside an
// unterminated block comment. inComment is the value returned for the
// previous line. A non-empty word overlays Match tags on every
// non-overlapping occurrence.
func Highlight(clusters []string, r *Rules, word string, inComment bool) ([]Tag, bool) {
	if r == nil {
		r = &Rules{}
	}
	tags := make([]Tag, len(clusters))
	open := false

	i := 0
	if inComment && r.MultilineComments {
		end := commentEnd(clusters, 0)
		if end < 0 {
			end = len(clusters)
			open = true
		}
		fill(tags, 0, end, BlockComment)
		i = end
	}

	for i < len(clusters) {
		sp, ok := nextSpan(clusters, i, r)
		if !ok {
			tags[i] = Plain
			i++
			continue
		}
		fill(tags, i, i+sp.n, sp.tag)
		i += sp.n
		open = sp.open
	}

	overlayMatches(tags, clusters, word)
	return tags, open
}

func nextSpan(clusters []string, i int, r *Rules) (span, bool) {
	for _, m := range matchers {
		if sp, ok := m(clusters, i, r); ok && sp.n > 0 {
			return sp, true
		}
	}
	return span{}, false
}

func overlayMatches(tags []Tag, clusters []string, word string) {
	if word == "" {
		return
	}
	n := grapheme.Count(word)
	for at := grapheme.Index(clusters, word, 0); at >= 0; at = grapheme.Index(clusters, word, at+n) {
		fill(tags, at, at+n, Match)
	}
}

func fill(tags []Tag, from, to int, t Tag) {
	if to > len(tags) {
		to = len(tags)
	}
	for i := from; i < to; i++ {
		tags[i] = t
	}
}

// commentEnd returns the index just past the first "*/" at or after from,
// or -1.
func commentEnd(clusters []string, from int) int {
	at := grapheme.Index(clusters, blockClose, from)
	if at < 0 {
		return -1
	}
	return at + 2
}

func matchBlockComment(clusters []string, i int, r *Rules) (span, bool) {
	if !r.MultilineComments || grapheme.MatchAt(clusters, i, blockOpen) == 0 {
		return span{}, false
	}
	end := commentEnd(clusters, i+2)
	if end < 0 {
		return span{n: len(clusters) - i, tag: BlockComment, open: true}, true
	}
	return span{n: end - i, tag: BlockComment}, true
}

func matchChar(clusters []string, i int, r *Rules) (span, bool) {
	if !r.Characters || clusters[i] != "'" || i+1 >= len(clusters) {
		return span{}, false
	}
	closing := i + 2
	if clusters[i+1] == `\` {
		closing = i + 3
	}
	if closing >= len(clusters) || clusters[closing] != "'" {
		return span{}, false
	}
	return span{n: closing - i + 1, tag: Char}, true
}

func matchLineComment(clusters []string, i int, r *Rules) (span, bool) {
	if !r.Comments || grapheme.MatchAt(clusters, i, lineOpen) == 0 {
		return span{}, false
	}
	return span{n: len(clusters) - i, tag: LineComment}, true
}

func matchPrimaryKeyword(clusters []string, i int, r *Rules) (span, bool) {
	return matchKeyword(clusters, i, r.PrimaryKeywords, Keyword1)
}

func matchSecondaryKeyword(clusters []string, i int, r *Rules) (span, bool) {
	return matchKeyword(clusters, i, r.SecondaryKeywords, Keyword2)
}

// matchKeyword claims the longest keyword at i that has a non-alphanumeric
// neighbour (or the line edge) on both sides.
func matchKeyword(clusters []string, i int, keywords []string, t Tag) (span, bool) {
	if len(keywords) == 0 {
		return span{}, false
	}
	if i > 0 && grapheme.IsAlnum(clusters[i-1]) {
		return span{}, false
	}
	best := 0
	for _, kw := range keywords {
		n := grapheme.MatchAt(clusters, i, kw)
		if n <= best {
			continue
		}
		if i+n < len(clusters) && grapheme.IsAlnum(clusters[i+n]) {
			continue
		}
		best = n
	}
	if best == 0 {
		return span{}, false
	}
	return span{n: best, tag: t}, true
}

// matchString claims a double-quoted literal. Backslash escapes the next
// cluster; an unterminated literal runs to the end of the line.
func matchString(clusters []string, i int, r *Rules) (span, bool) {
	if !r.Strings || clusters[i] != `"` {
		return span{}, false
	}
	for j := i + 1; j < len(clusters); j++ {
		switch clusters[j] {
		case `\`:
			j++
		case `"`:
			return span{n: j - i + 1, tag: String}, true
		}
	}
	return span{n: len(clusters) - i, tag: String}, true
}

func matchNumber(clusters []string, i int, r *Rules) (span, bool) {
	if !r.Numbers || !grapheme.IsDigit(clusters[i]) {
		return span{}, false
	}
	if i > 0 && grapheme.IsAlnum(clusters[i-1]) {
		return span{}, false
	}
	j := i + 1
	for j < len(clusters) && (grapheme.IsDigit(clusters[j]) || clusters[j] == ".") {
		j++
	}
	return span{n: j - i, tag: Number}, true
}
