package quiz

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Pick   key.Binding
	Number key.Binding
	Submit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑↓", "Move"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		Pick: key.NewBinding(
			key.WithKeys("space"),
			key.WithHelp("Space", "Select"),
		),
		Number: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "Select"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Submit"),
		),
	}
}

// setLocked disables the answering keys while feedback is shown.
func (k *keyMap) setLocked(locked bool) {
	for _, b := range []*key.Binding{&k.Up, &k.Down, &k.Pick, &k.Number, &k.Submit} {
		b.SetEnabled(!locked)
	}
}
