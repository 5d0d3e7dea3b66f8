package cli

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the TUI's global keybindings.
type keyMap struct {
	Quit      key.Binding
	NextPane  key.Binding
	PrevDay   key.Binding
	NextDay   key.Binding
	Today     key.Binding
	Up        key.Binding
	Down      key.Binding
	New       key.Binding
	Toggle    key.Binding
	Delete    key.Binding
	Promote   key.Binding
	FocusRun  key.Binding
	FocusStop key.Binding
	MoreTime  key.Binding
	LessTime  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		NextPane:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "pane")),
		PrevDay:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev day")),
		NextDay:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next day")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		New:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "done")),
		Delete:    key.NewBinding(key.WithKeys("x", "d"), key.WithHelp("d", "delete")),
		Promote:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "promote")),
		FocusRun:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "focus")),
		FocusStop: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		MoreTime:  key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "+5m")),
		LessTime:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "-5m")),
	}
}

// helpBindings is the order keys appear in the status bar.
func (k keyMap) helpBindings() []key.Binding {
	return []key.Binding{
		k.NextPane, k.PrevDay, k.Today, k.New, k.Toggle,
		k.Delete, k.Promote, k.FocusRun, k.Quit,
	}
}
