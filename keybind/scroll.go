package keybind

// ScrollKeyMap holds the bindings a scrolling view reacts to. Backward
// bindings reveal earlier items, forward bindings later ones.
type ScrollKeyMap struct {
	Backward     Keybind
	Forward      Keybind
	PageBackward Keybind
	PageForward  Keybind
	Start        Keybind
	End          Keybind
}

// DefaultVerticalScrollKeyMap returns arrow, page and vi style bindings for
// a vertical view.
func DefaultVerticalScrollKeyMap() ScrollKeyMap {
	return ScrollKeyMap{
		Backward:     NewKeybind(WithKeys("up", "k"), WithHelp("↑/k", "scroll up")),
		Forward:      NewKeybind(WithKeys("down", "j"), WithHelp("↓/j", "scroll down")),
		PageBackward: NewKeybind(WithKeys("pgup", "ctrl+b"), WithHelp("pgup", "page up")),
		PageForward:  NewKeybind(WithKeys("pgdn", "ctrl+f"), WithHelp("pgdn", "page down")),
		Start:        NewKeybind(WithKeys("home", "g"), WithHelp("home/g", "go to start")),
		End:          NewKeybind(WithKeys("end", "G"), WithHelp("end/G", "go to end")),
	}
}

// DefaultHorizontalScrollKeyMap returns the horizontal counterpart of
// DefaultVerticalScrollKeyMap.
func DefaultHorizontalScrollKeyMap() ScrollKeyMap {
	m := DefaultVerticalScrollKeyMap()
	m.Backward = NewKeybind(WithKeys("left", "h"), WithHelp("←/h", "scroll left"))
	m.Forward = NewKeybind(WithKeys("right", "l"), WithHelp("→/l", "scroll right"))
	return m
}

// Bindings lists every binding of the map, for help views.
func (m ScrollKeyMap) Bindings() []Keybind {
	return []Keybind{m.Backward, m.Forward, m.PageBackward, m.PageForward, m.Start, m.End}
}

// ShortHelp lists the bindings worth a one line summary.
func (m ScrollKeyMap) ShortHelp() []Keybind {
	return []Keybind{m.Backward, m.Forward, m.PageForward, m.End}
}
