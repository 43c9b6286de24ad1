package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todos/internal/app"
	"github.com/idilsaglam/todos/internal/markdown"
	"github.com/idilsaglam/todos/internal/nav"
	"github.com/idilsaglam/todos/internal/ui"
)

func (m Model) View() string {
	snap := m.sess.Snapshot()
	if snap.View.Kind() == nav.EditingItem {
		return ui.PanelString([]string{m.editView(snap)})
	}
	return ui.PanelString([]string{m.list.View(), m.addView()})
}

func (m Model) addView() string {
	t := ui.Current()
	bar := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)

	title := t.Muted.Render("Add new item")
	if m.focus == focusAddName || m.focus == focusAddDescription {
		title = t.Accent.Render("Add new item") + "  " + m.help.ShortHelpView(m.keys.addHelp())
	}
	return bar.Render(title + "\n" + m.addName.View() + "\n" + m.addDesc.View())
}

func (m Model) editView(snap app.Snapshot) string {
	t := ui.Current()
	id, _ := snap.View.ItemID()

	var b strings.Builder
	todo, found := snap.Selected()
	if !found {
		b.WriteString(t.Error.Render(fmt.Sprintf("Item #%d not found", id)))
		b.WriteString("\n\n")
	} else {
		status := t.Pending.Render(t.SymPending + " not completed")
		if todo.Completed {
			status = t.Success.Render(t.SymDone + " completed")
		}
		fmt.Fprintf(&b, "%s  %s\n\n", t.Title.Render(fmt.Sprintf("Edit item #%d", id)), status)
	}

	b.WriteString(t.Muted.Render("Name") + "\n")
	b.WriteString(m.editName.View() + "\n\n")
	b.WriteString(t.Muted.Render("Description") + "\n")
	b.WriteString(m.editDesc.View() + "\n")

	if preview := markdown.Render(m.width-8, snap.EditDraft.Description); preview != "" {
		b.WriteString("\n" + t.Muted.Render("Preview") + "\n")
		b.WriteString(preview + "\n")
	}

	b.WriteString("\n" + m.help.ShortHelpView(m.keys.editHelp()))
	return b.String()
}
