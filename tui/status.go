package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// locationDisplayName derives a readable name from a location id:
// "wine_cellar" becomes "Wine Cellar".
func locationDisplayName(id string) string {
	return titleCaser.String(strings.ReplaceAll(id, "_", " "))
}

// renderStatusBar produces the full-width inverted status line: current
// location, exits, carried-item count, and visit count.
func (m Model) renderStatusBar() string {
	loc := m.game.Current
	if loc == nil {
		return styleStatusBar.Width(m.width).Render(" ...")
	}

	names := make([]string, 0, len(loc.Exits()))
	for _, e := range loc.Exits() {
		names = append(names, e.Name)
	}

	left := fmt.Sprintf(" %s | Exits: %s", locationDisplayName(loc.ID()), strings.Join(names, ","))
	right := fmt.Sprintf("Inv:%d V:%d ", m.game.Inventory.Len(), loc.Visits)

	pad := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	return styleStatusBar.Render(left + strings.Repeat(" ", pad) + right)
}
