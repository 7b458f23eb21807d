package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	Edit       key.Binding
	Save       key.Binding
	CopySource key.Binding
	CopyTarget key.Binding
	Paste      key.Binding
	Quit       key.Binding
	Commit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k")),
		Down:       key.NewBinding(key.WithKeys("down", "j")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "left", "right", "h", "l")),
		Edit:       key.NewBinding(key.WithKeys("enter")),
		Save:       key.NewBinding(key.WithKeys("s")),
		CopySource: key.NewBinding(key.WithKeys("y")),
		CopyTarget: key.NewBinding(key.WithKeys("Y")),
		Paste:      key.NewBinding(key.WithKeys("p")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
		Commit:     key.NewBinding(key.WithKeys("esc")),
	}
}
