package buffer

import "github.com/iw2rmb/quill/syntax"

// Pos points into the document by (row, grapheme column).
type Pos struct {
	Row         int
	GraphemeCol int
}

// Direction selects the scan order of a search.
type Direction uint8

const (
	Forward Direction = iota
	Backward
)

// Cell is one render-ready grapheme with its highlight tag.
type Cell struct {
	Text string
	Tag  syntax.Tag
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
