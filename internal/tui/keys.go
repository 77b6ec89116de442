package tui

import "charm.land/bubbles/v2/key"

// KeyMap holds the gallery's terminal key bindings.
type KeyMap struct {
	Left         key.Binding
	Right        key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	Open         key.Binding
	Close        key.Binding
	Quit         key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next category"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous category"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view photo"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// gridHelp and lightboxHelp list the bindings shown in the footer.
func (k KeyMap) gridHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.NextCategory, k.Open, k.Quit}
}

func (k KeyMap) lightboxHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Close, k.Quit}
}
