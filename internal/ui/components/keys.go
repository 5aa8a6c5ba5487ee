package components

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/tizhi/internal/ui/layout"
)

// Shared key bindings. Screens match with key.Matches and turn the help
// text into footer hints with Hints.
var (
	KeyUp     = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Navigate"))
	KeyDown   = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "Down"))
	KeyPrev   = key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←→", "Question"))
	KeyNext   = key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→", "Next"))
	KeyChoose = key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "Answer"))
	KeyClear  = key.NewBinding(key.WithKeys("backspace", "delete", "0"), key.WithHelp("⌫", "Clear"))
	KeyEnter  = key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Select"))
	KeySubmit = key.NewBinding(key.WithKeys("s", "ctrl+s"), key.WithHelp("s", "Submit"))
	KeyEdit   = key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "Edit answers"))
	KeyBack   = key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Back"))
	KeyQuit   = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "Quit"))
)

// Hints converts bindings into footer hints, skipping disabled ones.
func Hints(bindings ...key.Binding) []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}
