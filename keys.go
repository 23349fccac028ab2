package main

import "github.com/charmbracelet/bubbles/key"

// ---------------------------------------------------------------------------
// Key bindings
// ---------------------------------------------------------------------------

type keyMap struct {
	New    key.Binding
	Edit   key.Binding
	Expend key.Binding
	Search key.Binding
	Sort   key.Binding
	Reset  key.Binding
	UpDown key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		New:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "new entry")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit expended")),
		Expend: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "expend today")),
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Sort:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset filter")),
		UpDown: key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("j/k", "navigate")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Edit, k.Expend, k.Search, k.Sort, k.UpDown, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.New, k.Edit, k.Expend, k.Search, k.Sort, k.Reset, k.UpDown, k.Quit}}
}

type inputKeyMap struct {
	NextField key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}

func newInputKeyMap() inputKeyMap {
	return inputKeyMap{
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k inputKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.NextField, k.Cancel}
}

func (k inputKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Confirm, k.NextField, k.Cancel}}
}
