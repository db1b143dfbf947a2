package editor

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap

	if key.Matches(msg, km.Quit) {
		if m.quitLeft > 0 && m.s.Document().Dirty() {
			cmd := m.setStatus(fmt.Sprintf(
				"WARNING! File has unsaved changes. Press Ctrl-Q %d more times to quit.", m.quitLeft))
			m.quitLeft--
			return m, cmd
		}
		m.quitting = true
		return m, tea.Quit
	}

	// Any other key cancels a pending quit confirmation.
	if m.quitLeft < m.cfg.QuitTimes {
		m.quitLeft = m.cfg.QuitTimes
		m.status = statusMessage{}
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, km.Save):
		cmd = m.save()
	case key.Matches(msg, km.Find):
		cmd = m.openPrompt(promptSearch)

	case key.Matches(msg, km.Left):
		m.s.Move(MoveLeft)
	case key.Matches(msg, km.Right):
		m.s.Move(MoveRight)
	case key.Matches(msg, km.Up):
		m.s.Move(MoveUp)
	case key.Matches(msg, km.Down):
		m.s.Move(MoveDown)
	case key.Matches(msg, km.PageUp):
		m.s.Move(MovePageUp)
	case key.Matches(msg, km.PageDown):
		m.s.Move(MovePageDown)
	case key.Matches(msg, km.Home):
		m.s.Move(MoveHome)
	case key.Matches(msg, km.End):
		m.s.Move(MoveEnd)

	case key.Matches(msg, km.Backspace):
		m.s.Backspace()
	case key.Matches(msg, km.Delete):
		m.s.DeleteForward()
	case key.Matches(msg, km.Enter):
		m.s.Newline()
	case key.Matches(msg, km.Tab):
		m.s.InsertRune('\t')

	default:
		switch {
		case msg.Type == tea.KeySpace:
			m.s.InsertRune(' ')
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			m.s.InsertText(string(msg.Runes))
		}
	}
	return m, cmd
}

// save writes the document, asking for a name first when it has none.
func (m *Model) save() tea.Cmd {
	err := m.s.Save()
	if errors.Is(err, buffer.ErrNoFileName) {
		return m.openPrompt(promptSaveAs)
	}
	return m.reportSave(err)
}

func (m *Model) reportSave(err error) tea.Cmd {
	if err != nil {
		return m.setStatus("Error writing file!")
	}
	return m.setStatus("File saved successfully.")
}

func (m *Model) openPrompt(kind promptKind) tea.Cmd {
	m.prompt = kind
	m.input.Reset()
	m.input.Prompt = saveAsPrompt
	if kind == promptSearch {
		m.input.Prompt = searchPrompt
		m.s.StartSearch()
	}
	m.status = statusMessage{}
	return m.input.Focus()
}

func (m Model) updatePrompt(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Cancel):
		cmd := m.closePrompt("")
		return m, cmd
	case key.Matches(msg, km.Accept):
		cmd := m.closePrompt(m.input.Value())
		return m, cmd
	}

	if m.prompt == promptSearch {
		sk := km.searchKeys()
		switch {
		case key.Matches(msg, sk.Forward):
			m.s.SearchStep(m.input.Value(), buffer.Forward, true)
			return m, nil
		case key.Matches(msg, sk.Backward):
			m.s.SearchStep(m.input.Value(), buffer.Backward, false)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.prompt == promptSearch {
		m.s.SearchStep(m.input.Value(), buffer.Forward, false)
	}
	return m, cmd
}

// closePrompt ends the prompt with value. An empty value cancels it.
func (m *Model) closePrompt(value string) tea.Cmd {
	kind := m.prompt
	m.prompt = promptNone
	m.input.Blur()

	switch kind {
	case promptSearch:
		m.s.EndSearch(value != "")
		m.status = statusMessage{}
	case promptSaveAs:
		if value == "" {
			return m.setStatus("Save aborted.")
		}
		return m.reportSave(m.s.SaveAs(value))
	}
	return nil
}
