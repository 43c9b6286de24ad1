package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(ws.Width, ws.Height)
		return m, nil
	}
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var listCmd, inputCmd tea.Cmd
		m.list, listCmd = m.list.Update(msg)
		if in := m.focusedInput(); in != nil {
			*in, inputCmd = in.Update(msg)
		}
		return m, tea.Batch(listCmd, inputCmd)
	}
	if km.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.focus {
	case focusAddName, focusAddDescription:
		return m.updateAdd(km)
	case focusEditName, focusEditDescription:
		return m.updateEdit(km)
	default:
		return m.updateList(km)
	}
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the filter prompt is open every key belongs to it; once a filter
	// is applied, esc clears it instead of quitting.
	switch m.list.FilterState() {
	case list.Filtering:
		return m.forwardToList(msg)
	case list.FilterApplied:
		if key.Matches(msg, m.keys.Back) {
			return m.forwardToList(msg)
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Open):
		if t, ok := m.currentTodo(); ok {
			m.sess.Select(t.ID)
			cmd := m.sync()
			return m, cmd
		}
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.currentTodo(); ok {
			m.sess.ToggleItem(t.ID)
			cmd := m.sync()
			return m, cmd
		}
		return m, nil
	case key.Matches(msg, m.keys.Add):
		cmd := m.setFocus(focusAddName)
		return m, cmd
	}
	return m.forwardToList(msg)
}

func (m Model) forwardToList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.sess.SubmitAdd()
		m.addName.SetValue("")
		m.addDesc.SetValue("")
		focusCmd := m.setFocus(focusList)
		syncCmd := m.sync()
		return m, tea.Batch(focusCmd, syncCmd)
	case key.Matches(msg, m.keys.Back):
		// the draft stays in the session; only focus leaves the form
		cmd := m.setFocus(focusList)
		return m, cmd
	case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.PrevField):
		next := focusAddName
		if m.focus == focusAddName {
			next = focusAddDescription
		}
		cmd := m.setFocus(next)
		return m, cmd
	}

	var cmd tea.Cmd
	if m.focus == focusAddName {
		m.addName, cmd = updateInput(m.addName, msg, m.sess.SetAddName)
	} else {
		m.addDesc, cmd = updateInput(m.addDesc, msg, m.sess.SetAddDescription)
	}
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		m.sess.Save()
	case key.Matches(msg, m.keys.ToggleEdit):
		m.sess.ToggleCompleted()
	case key.Matches(msg, m.keys.Delete):
		m.sess.Delete()
	case key.Matches(msg, m.keys.Back):
		m.sess.Back()
	case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.PrevField):
		next := focusEditName
		if m.focus == focusEditName {
			next = focusEditDescription
		}
		cmd := m.setFocus(next)
		return m, cmd
	default:
		var cmd tea.Cmd
		if m.focus == focusEditName {
			m.editName, cmd = updateInput(m.editName, msg, m.sess.SetEditName)
		} else {
			m.editDesc, cmd = updateInput(m.editDesc, msg, m.sess.SetEditDescription)
		}
		return m, cmd
	}
	cmd := m.sync()
	return m, cmd
}

// updateInput feeds msg to in and reports a changed value to set.
func updateInput(in textinput.Model, msg tea.Msg, set func(string)) (textinput.Model, tea.Cmd) {
	before := in.Value()
	in, cmd := in.Update(msg)
	if v := in.Value(); v != before {
		set(v)
	}
	return in, cmd
}
