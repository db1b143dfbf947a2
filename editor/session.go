package editor

import (
	"log/slog"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/internal/grapheme"
)

// SessionOptions configures a Session.
type SessionOptions struct {
	// Logger receives load, save and search events. Nil discards them.
	Logger *slog.Logger
}

// Session is one editing session: a document, its viewport and the active
// search. It is the surface the key layer drives; every method runs to
// completion on the caller's goroutine.
type Session struct {
	doc    *buffer.Document
	view   Viewport
	word   string
	search *searchState
	log    *slog.Logger
}

// searchState is the cursor and offset to restore when a search is
// cancelled.
type searchState struct {
	cursor buffer.Pos
	offset buffer.Pos
}

// Row is one visible document row windowed to the viewport.
type Row struct {
	Index int
	Cells []buffer.Cell
}

// NewSession returns a session editing doc. A nil doc starts an empty one.
func NewSession(doc *buffer.Document, opts SessionOptions) *Session {
	if doc == nil {
		doc = buffer.New()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Session{doc: doc, log: log}
}

func (s *Session) Document() *buffer.Document { return s.doc }
func (s *Session) Viewport() Viewport         { return s.view }
func (s *Session) Cursor() buffer.Pos         { return s.view.Cursor() }

// HighlightWord returns the word overlaid as Match, if any.
func (s *Session) HighlightWord() string { return s.word }

// Resize sets the text area size.
func (s *Session) Resize(size Size) { s.view.SetSize(size, s.doc) }

// Move moves the cursor.
func (s *Session) Move(dir MoveDir) { s.view.Move(s.doc, dir) }

// InsertRune inserts r at the cursor and moves past it.
func (s *Session) InsertRune(r rune) {
	if r == '\n' {
		s.Newline()
		return
	}
	s.insertGrapheme(string(r))
}

// InsertText inserts text grapheme by grapheme. Line breaks become
// newlines; "\r" is dropped.
func (s *Session) InsertText(text string) {
	for _, g := range grapheme.Split(text) {
		switch g {
		case "\n", "\r\n":
			s.Newline()
		case "\r":
		default:
			s.insertGrapheme(g)
		}
	}
}

// insertGrapheme advances the cursor by the change in line length, which is
// zero when g joins the cluster before it.
func (s *Session) insertGrapheme(g string) {
	at := s.view.Cursor()
	before := s.doc.LineLen(at.Row)
	if at.Row >= s.doc.Len() {
		before = 0
	}
	s.doc.InsertGrapheme(at, g)
	delta := s.doc.LineLen(at.Row) - before
	at.GraphemeCol += max(delta, 0)
	s.view.SetCursor(at, s.doc)
}

// Newline splits the row at the cursor and moves to the start of the new
// row.
func (s *Session) Newline() {
	s.doc.InsertNewline(s.view.Cursor())
	s.Move(MoveRight)
}

// Backspace deletes the grapheme or line break left of the cursor.
func (s *Session) Backspace() {
	if s.view.Cursor() == (buffer.Pos{}) {
		return
	}
	s.Move(MoveLeft)
	s.doc.DeleteChar(s.view.Cursor())
}

// DeleteForward deletes the grapheme or line break under the cursor.
func (s *Session) DeleteForward() {
	s.doc.DeleteChar(s.view.Cursor())
}

// Save writes the document to its file. It returns buffer.ErrNoFileName
// when the document has no name yet.
func (s *Session) Save() error {
	if err := s.doc.Save(); err != nil {
		s.log.Warn("save failed", "name", s.doc.Name(), "err", err)
		return err
	}
	s.log.Info("saved", "name", s.doc.Name(), "lines", s.doc.Len())
	return nil
}

// SaveAs names the document and saves it.
func (s *Session) SaveAs(name string) error {
	if err := s.doc.SaveAs(name); err != nil {
		s.log.Warn("save failed", "name", name, "err", err)
		return err
	}
	s.log.Info("saved", "name", name, "lines", s.doc.Len(), "filetype", s.doc.FileType().Name)
	return nil
}

// StartSearch remembers the cursor and offset so EndSearch can restore them.
func (s *Session) StartSearch() {
	s.search = &searchState{cursor: s.view.Cursor(), offset: s.view.Offset()}
	s.log.Debug("search started", "cursor", s.search.cursor)
}

// Searching reports whether a search is active.
func (s *Session) Searching() bool { return s.search != nil }

// SearchStep looks for query from the cursor in dir and moves the cursor to
// the match. With advance set the cursor first steps right so a forward
// search leaves the current match; the step is undone when nothing is found.
// query becomes the highlight word either way.
func (s *Session) SearchStep(query string, dir buffer.Direction, advance bool) bool {
	moved := false
	if advance {
		before := s.view.Cursor()
		s.Move(MoveRight)
		moved = s.view.Cursor() != before
	}

	at, ok := s.doc.Find(query, s.view.Cursor(), dir)
	if ok {
		s.view.SetCursor(at, s.doc)
	} else if moved {
		s.Move(MoveLeft)
	}
	s.word = query
	s.log.Debug("search step", "query", query, "found", ok, "cursor", s.view.Cursor())
	return ok
}

// EndSearch finishes the search. When accept is false the cursor and offset
// go back to where StartSearch found them. The highlight word is cleared.
func (s *Session) EndSearch(accept bool) {
	if s.search != nil && !accept {
		s.view.restore(s.search.cursor, s.search.offset, s.doc)
	}
	s.search = nil
	s.word = ""
}

// Rows highlights the visible rows plus one row of lookahead and returns the
// visible ones, windowed to the viewport's column offset and width.
func (s *Session) Rows() []Row {
	size := s.view.Size()
	off := s.view.Offset()
	if size.Rows <= 0 {
		return nil
	}
	s.doc.Highlight(s.word, off.Row+size.Rows)

	end := min(off.Row+size.Rows, s.doc.Len())
	out := make([]Row, 0, max(end-off.Row, 0))
	for row := off.Row; row < end; row++ {
		l, _ := s.doc.Line(row)
		cells := l.Cells(off.GraphemeCol, l.Len())
		out = append(out, Row{Index: row, Cells: fitCells(cells, size.Cols)})
	}
	return out
}

// ScreenCursor returns the cursor relative to the text area. x counts the
// cells of the graphemes between the column offset and the cursor.
func (s *Session) ScreenCursor() (x, y int) {
	cur := s.view.Cursor()
	off := s.view.Offset()
	x = s.doc.CellWidth(cur.Row, off.GraphemeCol, cur.GraphemeCol)
	return x, cur.Row - off.Row
}

// fitCells keeps the leading cells that fit in cols terminal cells.
func fitCells(cells []buffer.Cell, cols int) []buffer.Cell {
	used := 0
	for i, c := range cells {
		w := grapheme.Width(c.Text)
		if used+w > cols {
			return cells[:i]
		}
		used += w
	}
	return cells
}
