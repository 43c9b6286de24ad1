package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"

	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/ui"
)

// listItem adapts model.Todo to bubbles/list.Item
type listItem struct {
	todo model.Todo
}

func (i listItem) TitleText() string {
	box := ui.Current().BoxUnchecked
	if i.todo.Completed {
		box = ui.Current().BoxChecked
	}
	return fmt.Sprintf("%d. %s %s", i.todo.ID, box, i.todo.Name)
}

// Implement list.Item interface
func (i listItem) Title() string { return i.TitleText() }
func (i listItem) Description() string {
	first, _, _ := strings.Cut(i.todo.Description, "\n")
	return first
}
func (i listItem) FilterValue() string { return i.todo.Name }

func toListItems(todos []model.Todo) []list.Item {
	out := make([]list.Item, 0, len(todos))
	for _, t := range todos {
		out = append(out, listItem{todo: t})
	}
	return out
}

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()

	idx := t.Muted.Render(fmt.Sprintf("%2d.", it.todo.ID))
	box := t.Muted.Render(t.BoxUnchecked)
	name := it.todo.Name
	if name == "" {
		name = t.Muted.Render("(untitled)")
	}
	if it.todo.Completed {
		box = t.Success.Render(t.BoxChecked)
		name = t.Done.Render(name)
	}
	line := fmt.Sprintf("%s %s %s", idx, box, name)
	if desc := it.Description(); desc != "" {
		line += "  " + t.Muted.Render(desc)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	if width := m.Width(); width > 2 {
		line = truncate.StringWithTail(line, uint(width-2), "…")
	}
	fmt.Fprint(w, prefix+line)
}
