package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next      key.Binding
	Previous  key.Binding
	Reset     key.Binding
	Play      key.Binding
	Start     key.Binding
	Generate  key.Binding
	Bigger    key.Binding
	Smaller   key.Binding
	Faster    key.Binding
	Slower    key.Binding
	Target    key.Binding
	Guarantee key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:      key.NewBinding(key.WithKeys("n", "right", "l"), key.WithHelp("→/n", "next")),
		Previous:  key.NewBinding(key.WithKeys("p", "left", "h"), key.WithHelp("←/p", "previous")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Play:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "auto-play")),
		Start:     key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter", "start search")),
		Generate:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "new array")),
		Bigger:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "size +1")),
		Smaller:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "size -1")),
		Faster:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "faster")),
		Slower:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "slower")),
		Target:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "set target")),
		Guarantee: key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "toggle guarantee")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Previous, k.Play, k.Start, k.Generate, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous, k.Reset, k.Play},
		{k.Start, k.Generate, k.Target, k.Guarantee},
		{k.Bigger, k.Smaller, k.Faster, k.Slower},
		{k.Help, k.Quit},
	}
}
