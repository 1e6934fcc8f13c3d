package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/levos/internal/timegrid"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("levos  %s", m.date)))
	b.WriteString("\n\n")

	blocks := m.blocks()
	if len(blocks) == 0 {
		b.WriteString("  no blocks\n")
	}
	for i, block := range blocks {
		name := block.BlockID
		emoji := " "
		if def, ok := m.catalog.Block(block.BlockID); ok {
			name = def.Name
			emoji = def.Emoji
		}

		line := fmt.Sprintf("%s-%s  %s %s (%dm)",
			timegrid.FormatHour(block.StartHour),
			timegrid.FormatHour(block.EndHour()),
			emoji, name, block.Duration)

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
			line = selectedStyle.Render(line)
		} else if block.Auto {
			line = autoStyle.Render(line)
		}
		if block.Auto {
			line += autoStyle.Render("  auto")
		}

		b.WriteString(cursor + line + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		docStyle.Render(b.String()),
		m.help.View(m.keys),
	)
	return ui
}
