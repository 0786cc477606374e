package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	logout   key.Binding
	newItem  key.Binding
	refresh  key.Binding
	seeMore  key.Binding
	search   key.Binding
	edit     key.Binding
	delete   key.Binding
	remove   key.Binding
	add      key.Binding
	download key.Binding
	copy     key.Binding
	copyURL  key.Binding
	save     key.Binding
	header   key.Binding
	toggle   key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left")),
	right:    key.NewBinding(key.WithKeys("right")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	logout:   key.NewBinding(key.WithKeys("L")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	seeMore:  key.NewBinding(key.WithKeys("m")),
	search:   key.NewBinding(key.WithKeys("/")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("D")),
	remove:   key.NewBinding(key.WithKeys("x")),
	add:      key.NewBinding(key.WithKeys("a")),
	download: key.NewBinding(key.WithKeys("o")),
	copy:     key.NewBinding(key.WithKeys("c")),
	copyURL:  key.NewBinding(key.WithKeys("u")),
	save:     key.NewBinding(key.WithKeys("ctrl+s")),
	header:   key.NewBinding(key.WithKeys("ctrl+n")),
	toggle:   key.NewBinding(key.WithKeys(" ")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
