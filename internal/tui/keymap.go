package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Pick      key.Binding
	Drop      key.Binding
	Cancel    key.Binding
	Done      key.Binding
	Delete    key.Binding
	Copy      key.Binding
	Add       key.Binding
	Command   key.Binding
	PrevWeeks key.Binding
	NextWeeks key.Binding
	Today     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("←/h", "prev slot")),
		Right:     key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("→/l", "next slot")),
		Pick:      key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "pick up")),
		Drop:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Done:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "done")),
		Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d d", "delete")),
		Copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy text")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Command:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command")),
		PrevWeeks: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev week")),
		NextWeeks: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next week")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Drop, k.Cancel, k.Done, k.Add, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pick, k.Drop, k.Cancel},
		{k.Done, k.Delete, k.Copy, k.Add, k.Command},
		{k.PrevWeeks, k.NextWeeks, k.Today, k.Help, k.Quit},
	}
}
