package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap is the roadmap view's key bindings. It implements help.KeyMap.
type keyMap struct {
	Submit       key.Binding
	Browse       key.Binding
	Up           key.Binding
	Down         key.Binding
	Toggle       key.Binding
	Jump         key.Binding
	Answers      key.Binding
	Final        key.Binding
	FinalAnswers key.Binding
	NewTopic     key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Help         key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "generate")),
		Browse:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to roadmap")),
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:       key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "expand/collapse")),
		Jump:         key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "toggle module")),
		Answers:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "quiz answers")),
		Final:        key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "final assessment")),
		FinalAnswers: key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "final answers")),
		NewTopic:     key.NewBinding(key.WithKeys("n", "/"), key.WithHelp("n", "new topic")),
		PageUp:       key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown:     key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:         key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Answers, k.Final, k.NewTopic, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Jump},
		{k.Answers, k.Final, k.FinalAnswers},
		{k.PageUp, k.PageDown, k.NewTopic},
		{k.Help, k.Quit},
	}
}

// inputKeyMap is shown while the topic field has focus.
type inputKeyMap struct{ keyMap }

func (k inputKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Browse, k.ForceQuit}
}

func (k inputKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
