package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	backtab     key.Binding
	quit        key.Binding
	forceQuit   key.Binding
	start       key.Binding
	newItem     key.Binding
	login       key.Binding
	forceReveal key.Binding
	revealAll   key.Binding
	copy        key.Binding
	refresh     key.Binding
	info        key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab")),
	quit:        key.NewBinding(key.WithKeys("q")),
	forceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
	start:       key.NewBinding(key.WithKeys("s")),
	newItem:     key.NewBinding(key.WithKeys("n")),
	login:       key.NewBinding(key.WithKeys("l")),
	forceReveal: key.NewBinding(key.WithKeys("f")),
	revealAll:   key.NewBinding(key.WithKeys("a")),
	copy:        key.NewBinding(key.WithKeys("c")),
	refresh:     key.NewBinding(key.WithKeys("r")),
	info:        key.NewBinding(key.WithKeys("v")),
}
