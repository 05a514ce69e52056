package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	New, Edit, Rename, Delete key.Binding
	Bigger, Smaller           key.Binding
	Back, Confirm, Quit       key.Binding
	Interrupt                 key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		New:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Edit:    key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Rename:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Bigger:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "text size")),
		Smaller: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "text size")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		// q is text in the editor and rename box; ctrl+c quits from anywhere.
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.New, k.Edit, k.Rename, k.Delete, k.Bigger, k.Smaller}
}
