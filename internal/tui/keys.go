package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	PrevSlide key.Binding
	NextSlide key.Binding
	Indicator key.Binding
	Filter    key.Binding
	All       key.Binding
	SavedOnly key.Binding
	Save      key.Binding
	SaveSlide key.Binding
	Open      key.Binding
	OpenSlide key.Binding
	Refresh   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		PrevSlide: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev slide")),
		NextSlide: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next slide")),
		Indicator: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump to slide")),
		Filter:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "all/saved")),
		All:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all articles")),
		SavedOnly: key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "saved only")),
		Save:      key.NewBinding(key.WithKeys("s", " "), key.WithHelp("s", "save")),
		SaveSlide: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "save slide")),
		Open:      key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("o", "open")),
		OpenSlide: key.NewBinding(key.WithKeys("O"), key.WithHelp("O", "open slide")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSlide, k.Filter, k.Save, k.Open, k.Refresh, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Save, k.Open},
		{k.PrevSlide, k.NextSlide, k.Indicator, k.SaveSlide, k.OpenSlide},
		{k.Filter, k.All, k.SavedOnly, k.Refresh, k.Help, k.Quit},
	}
}
