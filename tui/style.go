package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jon-m/adventure-machine/console"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	styleDescription = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255"))

	styleSection = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleInformation = lipgloss.NewStyle().
				Foreground(lipgloss.Color("228"))

	styleCommand = lipgloss.NewStyle().
			Foreground(lipgloss.Color("117"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleMessage = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

// styleFor maps a console kind to its lipgloss style.
func styleFor(kind console.Kind) lipgloss.Style {
	switch kind {
	case console.Title:
		return styleTitle
	case console.Description:
		return styleDescription
	case console.Section, console.Subsection:
		return styleSection
	case console.Information:
		return styleInformation
	case console.Command:
		return styleCommand
	case console.Error:
		return styleError
	default:
		return styleMessage
	}
}
