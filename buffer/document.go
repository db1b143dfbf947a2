package buffer

import (
	"strings"

	"github.com/iw2rmb/quill/filetype"
)

// Document is an ordered sequence of lines plus the file it came from.
type Document struct {
	lines    []*Line
	name     string
	fileType filetype.FileType
	dirty    bool
}

// New returns an empty, unnamed document.
func New() *Document {
	return &Document{fileType: filetype.Default()}
}

// FromString returns an unnamed document holding text, one Line per input
// line. Empty text yields an empty document.
func FromString(text string) *Document {
	d := New()
	for _, s := range splitLines(text) {
		d.lines = append(d.lines, newLine(s))
	}
	return d
}

// splitLines splits on "\n", dropping a trailing "\r" from each line and a
// single final newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	parts := strings.Split(text, "\n")
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}

// Len returns the number of rows.
func (d *Document) Len() int { return len(d.lines) }

// IsEmpty reports whether the document has no rows.
func (d *Document) IsEmpty() bool { return len(d.lines) == 0 }

// Line returns the row at index row.
func (d *Document) Line(row int) (*Line, bool) {
	if row < 0 || row >= len(d.lines) {
		return nil, false
	}
	return d.lines[row], true
}

// LineLen returns the grapheme length of row, or 0 when row does not exist.
func (d *Document) LineLen(row int) int {
	if l, ok := d.Line(row); ok {
		return l.Len()
	}
	return 0
}

// CellWidth returns the terminal cells taken by graphemes [start, end) of
// row, or 0 when row does not exist.
func (d *Document) CellWidth(row, start, end int) int {
	if l, ok := d.Line(row); ok {
		return l.Width(start, end)
	}
	return 0
}

// Text returns the document content with lines joined by "\n".
func (d *Document) Text() string {
	var sb strings.Builder
	for i, l := range d.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.Text())
	}
	return sb.String()
}

// Name returns the file name, or "" for an unnamed document.
func (d *Document) Name() string { return d.name }

// SetName renames the document and recomputes its file type.
func (d *Document) SetName(name string) {
	d.name = name
	d.retype()
}

// FileType returns the file type detected from the name.
func (d *Document) FileType() filetype.FileType { return d.fileType }

// Dirty reports whether the document changed since the last successful save.
func (d *Document) Dirty() bool { return d.dirty }

func (d *Document) retype() {
	d.fileType = filetype.Detect(d.name)
	d.invalidateFrom(0)
}

// InsertChar inserts ch at p. A newline is routed to InsertNewline.
func (d *Document) InsertChar(p Pos, ch rune) {
	if ch == '\n' {
		d.InsertNewline(p)
		return
	}
	d.InsertGrapheme(p, string(ch))
}

// InsertGrapheme inserts g, which must not contain a newline, at p. When
// p.Row == Len() a new line is appended to hold it.
func (d *Document) InsertGrapheme(p Pos, g string) {
	if g == "" || p.Row < 0 || p.Row > len(d.lines) {
		return
	}
	if p.Row == len(d.lines) {
		l := newLine("")
		l.insert(0, g)
		d.lines = append(d.lines, l)
	} else {
		d.lines[p.Row].insert(p.GraphemeCol, g)
	}
	d.dirty = true
	d.invalidateFrom(p.Row)
}

// InsertNewline splits the row at p, moving the tail to a new row below.
// At Row == Len() it appends an empty row.
func (d *Document) InsertNewline(p Pos) {
	if p.Row < 0 || p.Row > len(d.lines) {
		return
	}
	if p.Row == len(d.lines) {
		d.lines = append(d.lines, newLine(""))
	} else {
		tail := d.lines[p.Row].split(p.GraphemeCol)
		d.lines = append(d.lines, nil)
		copy(d.lines[p.Row+2:], d.lines[p.Row+1:])
		d.lines[p.Row+1] = tail
	}
	d.dirty = true
	d.invalidateFrom(p.Row)
}

// DeleteChar deletes the grapheme at p. At the end of a row that has a
// successor, it deletes the newline instead, merging the next row into this
// one.
func (d *Document) DeleteChar(p Pos) {
	if p.Row < 0 || p.Row >= len(d.lines) {
		return
	}
	l := d.lines[p.Row]
	if p.GraphemeCol == l.Len() && p.Row+1 < len(d.lines) {
		l.appendLine(d.lines[p.Row+1])
		d.lines = append(d.lines[:p.Row+1], d.lines[p.Row+2:]...)
	} else if !l.delete(p.GraphemeCol) {
		return
	}
	d.dirty = true
	d.invalidateFrom(p.Row)
}

func (d *Document) invalidateFrom(row int) {
	if row < 0 {
		row = 0
	}
	for i := row; i < len(d.lines); i++ {
		d.lines[i].invalidate()
	}
}
