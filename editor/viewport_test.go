package editor

import (
	"testing"

	"github.com/iw2rmb/quill/buffer"
)

// rowLens is a Bounds over fixed row lengths.
type rowLens []int

func (r rowLens) Len() int { return len(r) }

func (r rowLens) LineLen(row int) int {
	if row < 0 || row >= len(r) {
		return 0
	}
	return r[row]
}

// CellWidth treats every grapheme as one cell.
func (r rowLens) CellWidth(row, start, end int) int {
	end = clamp(end, 0, r.LineLen(row))
	return end - clamp(start, 0, end)
}

func pos(row, col int) buffer.Pos { return buffer.Pos{Row: row, GraphemeCol: col} }

func TestViewport_MoveWrapsAcrossRows(t *testing.T) {
	b := rowLens{3, 5}
	var v Viewport
	v.SetSize(Size{Rows: 10, Cols: 10}, b)

	v.SetCursor(pos(0, 3), b)
	v.Move(b, MoveRight)
	if got := v.Cursor(); got != pos(1, 0) {
		t.Fatalf("right at end of row: got %v, want (1,0)", got)
	}

	v.Move(b, MoveLeft)
	if got := v.Cursor(); got != pos(0, 3) {
		t.Fatalf("left at column 0: got %v, want (0,3)", got)
	}
}

func TestViewport_MoveAtDocumentEdges(t *testing.T) {
	b := rowLens{2}
	var v Viewport
	v.SetSize(Size{Rows: 10, Cols: 10}, b)

	v.Move(b, MoveLeft)
	v.Move(b, MoveUp)
	if got := v.Cursor(); got != pos(0, 0) {
		t.Fatalf("at origin: got %v, want (0,0)", got)
	}

	v.Move(b, MoveDown)
	v.Move(b, MoveDown)
	if got := v.Cursor(); got != pos(1, 0) {
		t.Fatalf("down past last row: got %v, want (1,0)", got)
	}

	v.Move(b, MoveRight)
	if got := v.Cursor(); got != pos(1, 0) {
		t.Fatalf("right on the append row: got %v, want (1,0)", got)
	}
}

func TestViewport_VerticalMoveClampsColumn(t *testing.T) {
	b := rowLens{8, 2, 8}
	var v Viewport
	v.SetSize(Size{Rows: 10, Cols: 10}, b)
	v.SetCursor(pos(0, 6), b)

	v.Move(b, MoveDown)
	if got := v.Cursor(); got != pos(1, 2) {
		t.Fatalf("down onto short row: got %v, want (1,2)", got)
	}
	v.Move(b, MoveDown)
	if got := v.Cursor(); got != pos(2, 2) {
		t.Fatalf("column is not restored: got %v, want (2,2)", got)
	}
}

func TestViewport_HomeEndAndPaging(t *testing.T) {
	b := make(rowLens, 25)
	for i := range b {
		b[i] = 4
	}
	var v Viewport
	v.SetSize(Size{Rows: 10, Cols: 80}, b)
	v.SetCursor(pos(0, 2), b)

	v.Move(b, MoveEnd)
	if got := v.Cursor(); got != pos(0, 4) {
		t.Fatalf("end: got %v", got)
	}
	v.Move(b, MoveHome)
	if got := v.Cursor(); got != pos(0, 0) {
		t.Fatalf("home: got %v", got)
	}

	v.Move(b, MovePageDown)
	if got := v.Cursor().Row; got != 10 {
		t.Fatalf("page down: row %d, want 10", got)
	}
	v.Move(b, MovePageDown)
	v.Move(b, MovePageDown)
	if got := v.Cursor().Row; got != 25 {
		t.Fatalf("page down clamps to len: row %d, want 25", got)
	}
	v.Move(b, MovePageUp)
	if got := v.Cursor().Row; got != 15 {
		t.Fatalf("page up: row %d, want 15", got)
	}
	v.Move(b, MovePageUp)
	v.Move(b, MovePageUp)
	if got := v.Cursor().Row; got != 0 {
		t.Fatalf("page up clamps to 0: row %d", got)
	}
}

func TestViewport_ScrollIsMinimal(t *testing.T) {
	b := make(rowLens, 50)
	for i := range b {
		b[i] = 40
	}
	var v Viewport
	v.SetSize(Size{Rows: 5, Cols: 10}, b)

	v.SetCursor(pos(7, 0), b)
	if got := v.Offset(); got != pos(3, 0) {
		t.Fatalf("scroll down: offset %v, want (3,0)", got)
	}
	v.Move(b, MoveUp)
	if got := v.Offset(); got != pos(3, 0) {
		t.Fatalf("move inside view must not scroll: offset %v", got)
	}
	v.SetCursor(pos(1, 0), b)
	if got := v.Offset(); got != pos(1, 0) {
		t.Fatalf("scroll up: offset %v, want (1,0)", got)
	}

	v.SetCursor(pos(1, 12), b)
	if got := v.Offset().GraphemeCol; got != 3 {
		t.Fatalf("scroll right: col offset %d, want 3", got)
	}
	v.Move(b, MoveHome)
	if got := v.Offset().GraphemeCol; got != 0 {
		t.Fatalf("scroll left: col offset %d, want 0", got)
	}
}

func TestViewport_ZeroSizeDoesNotScroll(t *testing.T) {
	b := rowLens{5, 5, 5}
	var v Viewport
	v.SetCursor(pos(2, 4), b)
	if got := v.Offset(); got != pos(0, 0) {
		t.Fatalf("offset with zero size: %v, want (0,0)", got)
	}
}

func TestViewport_SetCursorClamps(t *testing.T) {
	b := rowLens{3}
	var v Viewport
	v.SetSize(Size{Rows: 5, Cols: 5}, b)

	v.SetCursor(pos(9, 9), b)
	if got := v.Cursor(); got != pos(1, 0) {
		t.Fatalf("clamped cursor: %v, want (1,0)", got)
	}
	v.SetCursor(pos(-1, 7), b)
	if got := v.Cursor(); got != pos(0, 3) {
		t.Fatalf("clamped cursor: %v, want (0,3)", got)
	}
}

func TestViewport_ScrollCountsCellsOfWideGraphemes(t *testing.T) {
	doc := buffer.FromString("漢字漢字漢字\nab")
	var v Viewport
	v.SetSize(Size{Rows: 3, Cols: 4}, doc)

	v.Move(doc, MoveEnd)
	if got := v.Offset().GraphemeCol; got != 5 {
		t.Fatalf("end of wide row: col offset %d, want 5", got)
	}

	v.Move(doc, MoveHome)
	for i := 0; i < 3; i++ {
		v.Move(doc, MoveRight)
	}
	if got := v.Offset().GraphemeCol; got != 2 {
		t.Fatalf("cursor on fourth wide grapheme: col offset %d, want 2", got)
	}
	v.Move(doc, MoveLeft)
	if got := v.Offset().GraphemeCol; got != 2 {
		t.Fatalf("move inside view must not scroll: col offset %d", got)
	}
	v.Move(doc, MoveDown)
	if got := v.Offset().GraphemeCol; got != 2 {
		t.Fatalf("cursor at column 2 of narrow row: col offset %d, want 2", got)
	}
}

func TestViewport_NarrowViewKeepsWideCursor(t *testing.T) {
	doc := buffer.FromString("漢字")
	var v Viewport
	v.SetSize(Size{Rows: 1, Cols: 1}, doc)
	v.Move(doc, MoveRight)
	if got := v.Offset().GraphemeCol; got != 1 {
		t.Fatalf("col offset %d, want 1", got)
	}
}
