package styles

import (
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/exp/charmtone"
)

// Styles used by the interactive viewer.
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(charmtone.Zest).
		Background(charmtone.Charple).
		Padding(0, 1)

	Status = lipgloss.NewStyle().
		Foreground(charmtone.Squid)

	TabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(charmtone.Malibu).
			Underline(true)

	TabInactive = lipgloss.NewStyle().
			Foreground(charmtone.Charcoal)

	Error = lipgloss.NewStyle().
		Foreground(charmtone.Cherry).
		Bold(true)

	Help = lipgloss.NewStyle().
		Foreground(charmtone.Oyster)
)
