package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	AddFriend key.Binding
	Search    key.Binding
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Back      key.Binding
	Payer     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select/close")),
		AddFriend: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add friend")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "find")),
		NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Payer:     key.NewBinding(key.WithKeys("left", "right", " ", "h", "l"), key.WithHelp("←/→", "payer")),
	}
}

// helpFor returns the bindings listed in the footer for the given focus.
// The add-friend caption follows the panel state.
func (k keyMap) helpFor(f focus, panelOpen bool) []key.Binding {
	switch f {
	case focusAddFriend:
		return []key.Binding{k.NextField, k.Submit, k.Back}
	case focusSplit:
		return []key.Binding{k.NextField, k.Payer, k.Submit, k.Back}
	case focusSearch:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "jump")),
			k.Back,
		}
	}
	add := key.NewBinding(key.WithKeys(k.AddFriend.Keys()...), key.WithHelp("a", panelCaption(panelOpen)))
	return []key.Binding{k.Up, k.Down, k.Select, add, k.Search, k.Quit}
}
