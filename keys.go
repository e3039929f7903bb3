package main

import "github.com/charmbracelet/bubbles/key"

// keyMap 键位定义
type keyMap struct {
	Quit           key.Binding
	NextArea       key.Binding
	PrevArea       key.Binding
	Up             key.Binding
	Down           key.Binding
	Left           key.Binding
	Right          key.Binding
	Activate       key.Binding
	Select         key.Binding
	ToggleFavorite key.Binding
	PageUp         key.Binding
	PageDown       key.Binding
	Home           key.Binding
	End            key.Binding
	ToggleDebug    key.Binding
}

// defaultKeyMap 默认键位
func defaultKeyMap() keyMap {
	return keyMap{
		Quit:           key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
		NextArea:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		PrevArea:       key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
		Up:             key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:           key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:           key.NewBinding(key.WithKeys("left")),
		Right:          key.NewBinding(key.WithKeys("right")),
		Activate:       key.NewBinding(key.WithKeys("enter", " ")),
		Select:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		ToggleFavorite: key.NewBinding(key.WithKeys("f", "F"), key.WithHelp("f", "favorite")),
		PageUp:         key.NewBinding(key.WithKeys("pgup")),
		PageDown:       key.NewBinding(key.WithKeys("pgdown")),
		Home:           key.NewBinding(key.WithKeys("home")),
		End:            key.NewBinding(key.WithKeys("end")),
		ToggleDebug:    key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "debug")),
	}
}
