package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev       key.Binding
	Submit     key.Binding
	SubmitNext key.Binding
	NextGroup  key.Binding
	PrevGroup  key.Binding
	UpDown     key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Prev:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "previous")),
		Submit:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "submit")),
		SubmitNext: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit & next")),
		NextGroup:  key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("←/→", "switch group")),
		PrevGroup:  key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("", "")),
		UpDown:     key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("j/k", "pick measure")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.UpDown, k.NextGroup, k.Submit, k.SubmitNext, k.Prev, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.UpDown, k.NextGroup, k.Submit, k.SubmitNext, k.Prev, k.Quit}}
}

type pickerKeyMap struct {
	keyMap
	Enter key.Binding
}

func newPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		keyMap: newKeyMap(),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	}
}

func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.UpDown, k.Quit}
}
