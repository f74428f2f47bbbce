package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Close  key.Binding
	Reset  key.Binding
	Save   key.Binding
	ShareX key.Binding
	ShareF key.Binding
	ShareT key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "pick")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "again")),
		Save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		ShareX: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "share on X")),
		ShareF: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "facebook")),
		ShareT: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "telegram")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Save, k.ShareX, k.ShareF, k.ShareT, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Toggle},
		{k.Close, k.Reset, k.Quit},
		{k.Save, k.ShareX, k.ShareF, k.ShareT},
	}
}
