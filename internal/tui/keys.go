// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	lock    key.Binding
	newItem key.Binding
	search  key.Binding
	pin     key.Binding
	delete  key.Binding
	theme   key.Binding
	export  key.Binding
	edit    key.Binding
	save    key.Binding
	copy    key.Binding
	version key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	left:    key.NewBinding(key.WithKeys("left", "h")),
	right:   key.NewBinding(key.WithKeys("right", "l")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q")),
	lock:    key.NewBinding(key.WithKeys("L")),
	newItem: key.NewBinding(key.WithKeys("n")),
	search:  key.NewBinding(key.WithKeys("/")),
	pin:     key.NewBinding(key.WithKeys("p")),
	delete:  key.NewBinding(key.WithKeys("d")),
	theme:   key.NewBinding(key.WithKeys("t")),
	export:  key.NewBinding(key.WithKeys("x")),
	edit:    key.NewBinding(key.WithKeys("e")),
	save:    key.NewBinding(key.WithKeys("ctrl+s")),
	copy:    key.NewBinding(key.WithKeys("c")),
	version: key.NewBinding(key.WithKeys("ctrl+v")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),
}
