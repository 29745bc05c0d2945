package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the non-calculator keys. Calculator keys go through
// calc.KeyAction so the terminal and raylib-free tests share one table.
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Press key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓/←/→", "focus")),
		Down:  key.NewBinding(key.WithKeys("down")),
		Left:  key.NewBinding(key.WithKeys("left")),
		Right: key.NewBinding(key.WithKeys("right")),
		Press: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "press")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) helpLine() string {
	parts := []string{"0-9 . + - * / digits & ops", "enter =", "esc clear"}
	for _, b := range []key.Binding{k.Up, k.Press, k.Quit} {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
