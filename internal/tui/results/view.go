package results

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/OWNER/ohm/internal/format"
	"github.com/OWNER/ohm/internal/ui"
)

var (
	headerStyle = ui.Header.Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorAccent)

	rowStyle = lipgloss.NewStyle()

	deviationStyle = lipgloss.NewStyle().
			Foreground(ui.ColorWarn)

	resistanceStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPass)

	diagramStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorMuted).
			Padding(0, 1)

	dimStyle = ui.Dim
)

// View renders the model.
func (m Model) View() string {
	var b strings.Builder

	header := fmt.Sprintf("ohm — %d circuits near %sΩ",
		len(m.items), format.Resistance(m.target))
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(dimStyle.Render("  no circuits within tolerance"))
		b.WriteString("\n")
	}

	for i, item := range m.items {
		marker := "  "
		style := rowStyle
		if i == m.cursor {
			marker = "> "
			style = cursorStyle
		}

		c := item.Match.Circuit
		row := fmt.Sprintf("%s%d. %s  %s  %s, %d components",
			marker,
			i+1,
			resistanceStyle.Render(format.Resistance(c.TotalResistance())+"Ω"),
			deviationStyle.Render("±"+format.Resistance(item.Match.Deviation)+"Ω"),
			c.Type(),
			c.ComponentCount(),
		)
		b.WriteString(style.Render(row))
		b.WriteString("\n")

		if item.Expanded {
			b.WriteString(diagramStyle.Render(strings.Trim(item.Diagram, "\n")))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.showHelp {
		b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	b.WriteString("\n")

	return b.String()
}
