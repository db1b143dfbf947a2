package editor

import "github.com/iw2rmb/quill/buffer"

// Size is the text area in terminal cells.
type Size struct {
	Rows int
	Cols int
}

// MoveDir is a cursor movement request.
type MoveDir uint8

const (
	MoveUp MoveDir = iota
	MoveDown
	MoveLeft
	MoveRight
	MovePageUp
	MovePageDown
	MoveHome
	MoveEnd
)

// Bounds is the document shape cursor movement is clamped to.
//
// Len is the row count; the cursor may sit on row Len (one past the last
// row) so typing there appends a line. CellWidth measures graphemes
// [start, end) of a row in terminal cells.
type Bounds interface {
	Len() int
	LineLen(row int) int
	CellWidth(row, start, end int) int
}

// Viewport holds the cursor and the scroll offset of the text area.
//
// Both are document positions in grapheme columns. The zero value is a
// cursor at (0,0) with nothing scrolled.
type Viewport struct {
	cursor buffer.Pos
	offset buffer.Pos
	size   Size
}

func (v Viewport) Cursor() buffer.Pos { return v.cursor }
func (v Viewport) Offset() buffer.Pos { return v.offset }
func (v Viewport) Size() Size         { return v.size }

// SetSize changes the text area and scrolls the cursor back into view.
func (v *Viewport) SetSize(s Size, b Bounds) {
	v.size = Size{Rows: max(s.Rows, 0), Cols: max(s.Cols, 0)}
	v.Scroll(b)
}

// SetCursor places the cursor at p, clamped to b, and scrolls to it.
func (v *Viewport) SetCursor(p buffer.Pos, b Bounds) {
	p.Row = clamp(p.Row, 0, b.Len())
	p.GraphemeCol = clamp(p.GraphemeCol, 0, b.LineLen(p.Row))
	v.cursor = p
	v.Scroll(b)
}

// restore puts back a cursor and offset saved earlier.
func (v *Viewport) restore(cursor, offset buffer.Pos, b Bounds) {
	v.cursor = cursor
	v.offset = offset
	v.Scroll(b)
}

// Move moves the cursor one step in dir and scrolls it into view.
//
// Left at column 0 wraps to the end of the previous row and right at the end
// of a row wraps to the start of the next one. Vertical moves keep the column
// and clamp it to the target row.
func (v *Viewport) Move(b Bounds, dir MoveDir) {
	x, y := v.cursor.GraphemeCol, v.cursor.Row
	height := b.Len()
	width := b.LineLen(y)

	switch dir {
	case MoveUp:
		if y > 0 {
			y--
		}
	case MoveDown:
		if y < height {
			y++
		}
	case MoveLeft:
		if x > 0 {
			x--
		} else if y > 0 {
			y--
			x = b.LineLen(y)
		}
	case MoveRight:
		if x < width {
			x++
		} else if y < height {
			y++
			x = 0
		}
	case MovePageUp:
		y = max(y-v.size.Rows, 0)
	case MovePageDown:
		y = min(y+v.size.Rows, height)
	case MoveHome:
		x = 0
	case MoveEnd:
		x = width
	}

	x = min(x, b.LineLen(y))
	v.cursor = buffer.Pos{Row: y, GraphemeCol: x}
	v.Scroll(b)
}

// Scroll moves the offset by the minimum needed to keep the cursor on
// screen. Rows scroll by row count. Columns scroll until the cells from the
// column offset through the cursor grapheme fit in the width, so wide
// graphemes are accounted for. An empty axis is left alone.
func (v *Viewport) Scroll(b Bounds) {
	v.scrollRows()
	v.scrollCols(b)
}

func (v *Viewport) scrollRows() {
	rows := v.size.Rows
	if rows <= 0 {
		return
	}
	y := v.cursor.Row
	if y < v.offset.Row {
		v.offset.Row = y
	} else if y >= v.offset.Row+rows {
		v.offset.Row = y - rows + 1
	}
}

func (v *Viewport) scrollCols(b Bounds) {
	cols := v.size.Cols
	if cols <= 0 {
		return
	}
	row, x := v.cursor.Row, v.cursor.GraphemeCol
	off := min(v.offset.GraphemeCol, x)

	// Past the end of the row the cursor is drawn as a one-cell blank.
	cursorCells := 1
	if x < b.LineLen(row) {
		cursorCells = b.CellWidth(row, x, x+1)
	}
	for off < x && b.CellWidth(row, off, x)+cursorCells > cols {
		off++
	}
	v.offset.GraphemeCol = off
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
