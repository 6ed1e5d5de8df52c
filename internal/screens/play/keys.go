package play

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Affirm  key.Binding
	Deny    key.Binding
	Restart key.Binding
	History key.Binding
}

var keys = keyMap{
	Affirm:  key.NewBinding(key.WithKeys("right", "l", "d"), key.WithHelp("→/l", "true")),
	Deny:    key.NewBinding(key.WithKeys("left", "h", "a"), key.WithHelp("←/h", "false")),
	Restart: key.NewBinding(key.WithKeys("enter", "r"), key.WithHelp("enter", "play again")),
	History: key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "history")),
}
