// Package results is the interactive browser for ranked circuit matches.
package results

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/OWNER/ohm/internal/circuit"
	"github.com/OWNER/ohm/internal/schematic"
)

// Item is one browsable result: a ranked match and its pre-rendered
// diagram.
type Item struct {
	Match    circuit.Match
	Diagram  string
	Expanded bool
}

// Model is the bubbletea model for the results browser.
type Model struct {
	target float64
	items  []Item
	cursor int

	// UI state
	keys     KeyMap
	help     help.Model
	showHelp bool
	width    int
	height   int
}

// New builds a browser over the ranked matches. Diagrams are rendered up
// front so navigation stays instant.
func New(target float64, matches []circuit.Match, diagramWidth int) Model {
	items := make([]Item, 0, len(matches))
	for _, m := range matches {
		items = append(items, Item{
			Match:   m,
			Diagram: schematic.NewDrawer(diagramWidth).Draw(m.Circuit),
		})
	}

	return Model{
		target: target,
		items:  items,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Top):
			m.cursor = 0
			return m, nil

		case key.Matches(msg, m.keys.Bottom):
			if len(m.items) > 0 {
				m.cursor = len(m.items) - 1
			}
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			if m.cursor < len(m.items) {
				m.items[m.cursor].Expanded = !m.items[m.cursor].Expanded
			}
			return m, nil

		// Number keys jump straight to a result.
		case msg.String() >= "1" && msg.String() <= "9":
			n := int(msg.String()[0] - '0')
			if n <= len(m.items) {
				m.cursor = n - 1
			}
			return m, nil
		}
	}

	return m, nil
}
