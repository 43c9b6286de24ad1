// Package tui renders a session in the terminal with Bubble Tea and forwards
// key presses into session operations.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todos/internal/app"
	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/nav"
	"github.com/idilsaglam/todos/internal/store"
	"github.com/idilsaglam/todos/internal/ui"
)

// Options tune the interactive view.
type Options struct {
	// CharLimit caps input length; zero or less means unlimited.
	CharLimit int
}

type focus int

const (
	focusList focus = iota
	focusAddName
	focusAddDescription
	focusEditName
	focusEditDescription
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// rows taken by the add or edit form below/instead of the list
	addFormHeight = 6
)

// Model is the Bubble Tea model. It holds no todo state of its own: every
// frame is rendered from the session snapshot, and key presses are turned
// into session calls.
type Model struct {
	sess *app.Session
	keys keyMap
	help help.Model

	list     list.Model
	addName  textinput.Model
	addDesc  textinput.Model
	editName textinput.Model
	editDesc textinput.Model
	focus    focus

	// view last rendered; a change reloads the form inputs from the drafts
	view          nav.State
	width, height int
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = placeholder
	ti.CharLimit = max(limit, 0)
	return ti
}

// New builds a model for sess.
func New(sess *app.Session, opt Options) Model {
	l := list.New(nil, itemDelegate{}, defaultWidth, defaultHeight-addFormHeight)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Help
	l.Styles.PaginationStyle = ui.Current().Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")

	keys := defaultKeys()
	l.AdditionalShortHelpKeys = keys.listHelp
	l.AdditionalFullHelpKeys = keys.listHelp

	m := Model{
		sess:     sess,
		keys:     keys,
		help:     help.New(),
		list:     l,
		addName:  newInput("Name", opt.CharLimit),
		addDesc:  newInput("Description", opt.CharLimit),
		editName: newInput("Name", opt.CharLimit),
		editDesc: newInput("Description", opt.CharLimit),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.view = sess.View()
	m.loadInputs(sess.Snapshot())
	m.sync()
	return m
}

// Run starts the interactive program and blocks until the user quits.
func Run(sess *app.Session, opt Options) error {
	p := tea.NewProgram(New(sess, opt), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// Init starts the cursor blinking when the session opens on a form.
func (m Model) Init() tea.Cmd {
	if m.focusedInput() != nil {
		return textinput.Blink
	}
	return nil
}

// sync re-reads the session after an event: list rows always, form inputs
// only when the view changed.
func (m *Model) sync() tea.Cmd {
	snap := m.sess.Snapshot()

	listCmd := m.list.SetItems(toListItems(snap.Todos))
	if n := len(snap.Todos); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	done, pending := store.Stats(snap.Todos)
	t := ui.Current()
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), len(snap.Todos),
	)

	var focusCmd tea.Cmd
	if snap.View != m.view {
		m.view = snap.View
		focusCmd = m.loadInputs(snap)
	}
	return tea.Batch(listCmd, focusCmd)
}

// loadInputs copies the drafts into the text inputs and sets focus for the
// current view. The returned command starts the focused input's cursor.
func (m *Model) loadInputs(snap app.Snapshot) tea.Cmd {
	m.addName.SetValue(snap.AddDraft.Name)
	m.addDesc.SetValue(snap.AddDraft.Description)

	if snap.View.Kind() == nav.EditingItem {
		m.editName.SetValue(snap.EditDraft.Name)
		m.editName.CursorEnd()
		m.editDesc.SetValue(snap.EditDraft.Description)
		m.editDesc.CursorEnd()
		return m.setFocus(focusEditName)
	}
	m.editName.SetValue("")
	m.editDesc.SetValue("")
	return m.setFocus(focusList)
}

func (m *Model) inputs() map[focus]*textinput.Model {
	return map[focus]*textinput.Model{
		focusAddName:         &m.addName,
		focusAddDescription:  &m.addDesc,
		focusEditName:        &m.editName,
		focusEditDescription: &m.editDesc,
	}
}

// focusedInput is nil while the list has focus.
func (m *Model) focusedInput() *textinput.Model {
	return m.inputs()[m.focus]
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	var cmd tea.Cmd
	for k, in := range m.inputs() {
		if k == f {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
	}
	return cmd
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.list.SetSize(max(w-4, 10), max(h-addFormHeight-2, 3))
	m.help.Width = w
	for _, in := range []*textinput.Model{&m.addName, &m.addDesc, &m.editName, &m.editDesc} {
		in.Width = max(w-10, 10)
	}
}

// currentTodo is the todo under the list cursor.
func (m Model) currentTodo() (model.Todo, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Todo{}, false
	}
	return it.todo, true
}
