package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	PanUp    key.Binding
	PanDown  key.Binding
	PanLeft  key.Binding
	PanRight key.Binding
	ZoomIn   key.Binding
	ZoomOut  key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "navigate")),
		Down:     key.NewBinding(key.WithKeys("down")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "show locations")),
		PanUp:    key.NewBinding(key.WithKeys("ctrl+up"), key.WithHelp("ctrl+←↑↓→", "pan")),
		PanDown:  key.NewBinding(key.WithKeys("ctrl+down")),
		PanLeft:  key.NewBinding(key.WithKeys("ctrl+left")),
		PanRight: key.NewBinding(key.WithKeys("ctrl+right")),
		ZoomIn:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup/pgdn", "zoom")),
		ZoomOut:  key.NewBinding(key.WithKeys("pgdown")),
		Quit:     key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Up, k.Select, k.PanUp, k.ZoomIn, k.Quit}
}
