package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Open   key.Binding
	Toggle key.Binding
	Add    key.Binding
	Quit   key.Binding

	Submit     key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Save       key.Binding
	ToggleEdit key.Binding
	Delete     key.Binding
	Back       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Add:    key.NewBinding(key.WithKeys("a", "tab"), key.WithHelp("a", "add")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),

		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		NextField:  key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField:  key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Save:       key.NewBinding(key.WithKeys("enter", "ctrl+s"), key.WithHelp("enter", "save")),
		ToggleEdit: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "toggle completed")),
		Delete:     key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Open, k.Toggle, k.Add}
}

func (k keyMap) addHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextField, k.Back}
}

func (k keyMap) editHelp() []key.Binding {
	return []key.Binding{k.Save, k.ToggleEdit, k.Delete, k.NextField, k.Back}
}
