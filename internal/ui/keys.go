package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	ForceQuit key.Binding

	// Create
	SwitchSource key.Binding
	Generate     key.Binding
	Paste        key.Binding
	Cancel       key.Binding

	// Study
	Previous   key.Binding
	Next       key.Binding
	Flip       key.Binding
	Reset      key.Binding
	Copy       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),

		SwitchSource: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Describe/paste"),
		),
		Generate: key.NewBinding(
			key.WithKeys("ctrl+g", "alt+enter"),
			key.WithHelp("ctrl+g", "Generate"),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "Paste"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Quit"),
		),

		Previous: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Next"),
		),
		Flip: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "Flip"),
		),
		Reset: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "New flashcards"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Copy card"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// CreateHelp returns the bindings shown in the create view footer.
func (k keyMap) CreateHelp() []key.Binding {
	return []key.Binding{k.Generate, k.SwitchSource, k.Paste, k.Cancel}
}

// StudyHelp returns the bindings shown in the study view footer.
func (k keyMap) StudyHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Flip, k.Reset, k.Help, k.Quit}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Generate, k.SwitchSource, k.Paste, k.Cancel},
		{k.Previous, k.Next, k.Flip},
		{k.Reset, k.Copy, k.CycleTheme, k.Help, k.Quit},
	}
}
