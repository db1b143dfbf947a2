package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/syntax"
)

const maxStatusName = 20

func (m Model) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}
	out := m.renderText()
	if m.height >= 2 {
		out = append(out, m.renderStatusBar(), m.renderMessageBar())
	}
	return strings.Join(out, "\n")
}

// renderText draws the text area: document rows, then "~" filler with the
// welcome banner one third down when the document is empty.
func (m Model) renderText() []string {
	size := m.s.Viewport().Size()
	rows := m.s.Rows()
	cur := m.s.Cursor()
	off := m.s.Viewport().Offset()
	_, cy := m.s.ScreenCursor()

	out := make([]string, 0, size.Rows)
	for i := 0; i < size.Rows; i++ {
		if i < len(rows) {
			at := -1
			if i == cy {
				at = cur.GraphemeCol - off.GraphemeCol
			}
			out = append(out, m.renderRow(rows[i].Cells, at, size.Cols))
			continue
		}

		filler := "~"
		if m.s.Document().IsEmpty() && i == size.Rows/3 {
			filler = welcomeLine(m.cfg.Version, size.Cols)
		}
		if i == cy && filler != "" {
			out = append(out, m.cfg.Theme.Cursor.Render("~")+m.cfg.Theme.Tilde.Render(filler[1:]))
			continue
		}
		out = append(out, m.cfg.Theme.Tilde.Render(filler))
	}
	return out
}

// renderRow paints cells in runs of equal tags. The cursor cell at index
// cursor is reversed; a cursor just past the last cell is drawn as a
// reversed blank when it fits.
func (m Model) renderRow(cells []buffer.Cell, cursor, cols int) string {
	var sb strings.Builder
	var run strings.Builder
	runTag := syntax.Plain
	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(m.cfg.Theme.Tag(runTag).Render(run.String()))
			run.Reset()
		}
	}

	for i, c := range cells {
		if i == cursor {
			flush()
			sb.WriteString(m.cfg.Theme.Cursor.Render(c.Text))
			continue
		}
		if c.Tag != runTag {
			flush()
			runTag = c.Tag
		}
		run.WriteString(c.Text)
	}
	flush()

	if cursor == len(cells) && cursor >= 0 && cellsWidth(cells) < cols {
		sb.WriteString(m.cfg.Theme.Cursor.Render(" "))
	}
	return sb.String()
}

func cellsWidth(cells []buffer.Cell) int {
	w := 0
	for _, c := range cells {
		w += lipgloss.Width(c.Text)
	}
	return w
}

// welcomeLine centres the banner in width cells behind a leading "~".
func welcomeLine(version string, width int) string {
	msg := "Quill editor -- version " + version
	padding := max(width-lipgloss.Width(msg), 0) / 2
	line := "~" + strings.Repeat(" ", max(padding-1, 0)) + msg
	return ansi.Truncate(line, width, "")
}

// renderStatusBar shows the file name, line count and dirty state on the
// left, the file type and cursor row on the right.
func (m Model) renderStatusBar() string {
	doc := m.s.Document()

	name := "[No Name]"
	if doc.Name() != "" {
		name = ansi.Truncate(doc.Name(), maxStatusName, "")
	}
	modified := ""
	if doc.Dirty() {
		modified = " (modified)"
	}
	left := fmt.Sprintf("%s - %d lines%s", name, doc.Len(), modified)
	right := fmt.Sprintf("%s | %d/%d", doc.FileType().Name, m.s.Cursor().Row+1, doc.Len())

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	line := ansi.Truncate(left+strings.Repeat(" ", gap)+right, m.width, "")
	return m.cfg.Theme.StatusBar.Render(line)
}

// renderMessageBar shows the active prompt, or the status message until it
// expires.
func (m Model) renderMessageBar() string {
	if m.prompt != promptNone {
		return ansi.Truncate(m.input.View(), m.width, "")
	}
	if !m.statusVisible() {
		return ""
	}
	return m.cfg.Theme.Message.Render(ansi.Truncate(m.status.text, m.width, ""))
}
