package buffer

import (
	"slices"

	"github.com/iw2rmb/quill/internal/grapheme"
	"github.com/iw2rmb/quill/syntax"
)

// Line is one editable row.
//
// clusters and tags are aligned: when tags is non-nil it holds exactly one
// tag per cluster. Any content mutation drops tags instead of patching them.
type Line struct {
	clusters []string
	tags     []syntax.Tag
	hl       highlightState
}

// highlightState records the inputs the current tags were computed from.
type highlightState struct {
	valid bool
	word  string
	in    bool
	out   bool
}

func newLine(text string) *Line {
	return &Line{clusters: grapheme.Split(text)}
}

// Text returns the line content.
func (l *Line) Text() string { return grapheme.Join(l.clusters) }

// Len returns the number of grapheme clusters.
func (l *Line) Len() int { return len(l.clusters) }

// IsEmpty reports whether the line has no graphemes.
func (l *Line) IsEmpty() bool { return len(l.clusters) == 0 }

// Highlighted reports whether the tags are current for the line content.
func (l *Line) Highlighted() bool { return l.hl.valid }

// Tags returns a copy of the per-grapheme tags, or nil when not highlighted.
func (l *Line) Tags() []syntax.Tag {
	if !l.hl.valid {
		return nil
	}
	return slices.Clone(l.tags)
}

// Cells returns the graphemes in [start, end) with their tags. Tabs are
// presented as a single blank so cells stay aligned with grapheme columns.
func (l *Line) Cells(start, end int) []Cell {
	end = clampInt(end, 0, len(l.clusters))
	start = clampInt(start, 0, end)
	if start == end {
		return nil
	}
	tagged := l.hl.valid && len(l.tags) == len(l.clusters)
	out := make([]Cell, 0, end-start)
	for i := start; i < end; i++ {
		c := Cell{Text: l.clusters[i]}
		if c.Text == "\t" {
			c.Text = " "
		}
		if tagged {
			c.Tag = l.tags[i]
		}
		out = append(out, c)
	}
	return out
}

// Width returns the terminal cells taken by the graphemes in [start, end).
// A tab takes one cell, matching Cells.
func (l *Line) Width(start, end int) int {
	end = clampInt(end, 0, len(l.clusters))
	start = clampInt(start, 0, end)
	w := 0
	for _, c := range l.clusters[start:end] {
		w += grapheme.Width(c)
	}
	return w
}

// Find returns the grapheme column of query in the line. Forward searches
// [at, Len()) and returns the first match; Backward searches [0, at) and
// returns the rightmost match.
func (l *Line) Find(query string, at int, dir Direction) (int, bool) {
	if query == "" || at < 0 || at > len(l.clusters) {
		return 0, false
	}
	var i int
	if dir == Backward {
		i = grapheme.LastIndex(l.clusters, query, at)
	} else {
		i = grapheme.Index(l.clusters, query, at)
	}
	if i < 0 {
		return 0, false
	}
	return i, true
}

// setText replaces the content and resegments it, so the cluster count
// always matches the content even when an edit merges neighbours.
func (l *Line) setText(text string) {
	l.clusters = grapheme.Split(text)
	l.invalidate()
}

func (l *Line) invalidate() {
	l.tags = nil
	l.hl = highlightState{}
}

// insert puts s before the grapheme at col, or appends when col >= Len().
func (l *Line) insert(col int, s string) {
	if s == "" {
		return
	}
	if col >= len(l.clusters) {
		l.setText(l.Text() + s)
		return
	}
	if col < 0 {
		col = 0
	}
	l.setText(grapheme.Join(l.clusters[:col]) + s + grapheme.Join(l.clusters[col:]))
}

// delete removes the grapheme at col. It reports whether anything changed.
func (l *Line) delete(col int) bool {
	if col < 0 || col >= len(l.clusters) {
		return false
	}
	l.setText(grapheme.Join(l.clusters[:col]) + grapheme.Join(l.clusters[col+1:]))
	return true
}

// split truncates l to [0, col) and returns the rest as a new Line.
func (l *Line) split(col int) *Line {
	col = clampInt(col, 0, len(l.clusters))
	tail := newLine(grapheme.Join(l.clusters[col:]))
	l.setText(grapheme.Join(l.clusters[:col]))
	return tail
}

// appendLine concatenates other onto l.
func (l *Line) appendLine(other *Line) {
	if other == nil || other.IsEmpty() {
		l.invalidate()
		return
	}
	l.setText(l.Text() + other.Text())
}

// highlight retags the line unless the cached tags were computed from the
// same carried-in state with no search word. It returns whether the line
// ends inside a block comment.
func (l *Line) highlight(r *syntax.Rules, word string, in bool) bool {
	if l.hl.valid && word == "" && l.hl.word == "" && l.hl.in == in {
		return l.hl.out
	}
	tags, out := syntax.Highlight(l.clusters, r, word, in)
	l.tags = tags
	l.hl = highlightState{valid: true, word: word, in: in, out: out}
	return out
}
