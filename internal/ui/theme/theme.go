package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sysdesign/internal/catalog"
	"github.com/abhisek/sysdesign/internal/progress"
)

// Color palette
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)

// StatusColor returns the accent color for a node status.
func StatusColor(s progress.NodeStatus) color.Color {
	switch s {
	case progress.StatusCompleted:
		return Success
	case progress.StatusInProgress:
		return Warning
	case progress.StatusLocked:
		return Border
	default:
		return TextDim
	}
}

// Status renders a status icon and label in its accent color.
func Status(s progress.NodeStatus) string {
	return lipgloss.NewStyle().
		Foreground(StatusColor(s)).
		Render(s.Icon() + " " + s.Label())
}

// CategoryColor returns the accent color for a roadmap category.
func CategoryColor(c catalog.Category) color.Color {
	switch c {
	case catalog.CategoryFundamentals:
		return Primary
	case catalog.CategoryBuildingBlocks:
		return Secondary
	case catalog.CategoryPatterns:
		return Warning
	case catalog.CategoryProblems:
		return Success
	default:
		return Text
	}
}
