// Package style holds the lipgloss styles for spanline's human output
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tdmtools/spanline/pkg/types"
)

// Core styles
var (
	HeaderStyle  = lipgloss.NewStyle().Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	PathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Line type styles
var (
	e1Style    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	t1Style    = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	j1Style    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	otherStyle = MutedStyle
)

// DisableColor forces plain output regardless of terminal capabilities
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// LineType renders a line type with its color
func LineType(t types.LineType) string {
	switch t {
	case types.LineTypeE1:
		return e1Style.Render(string(t))
	case types.LineTypeT1:
		return t1Style.Render(string(t))
	case types.LineTypeJ1:
		return j1Style.Render(string(t))
	default:
		return otherStyle.Render(string(t))
	}
}
