package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/learnplan/internal/domain"
	"github.com/alexanderramin/learnplan/internal/generation"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// FamilyStyle returns the style used for categories of the given family.
func FamilyStyle(f domain.Family) lipgloss.Style {
	switch f {
	case domain.FamilyLanguage:
		return StyleBlue
	case domain.FamilyCreative:
		return StylePurple
	case domain.FamilyExam:
		return StyleRed
	case domain.FamilyLifestyle:
		return StyleGreen
	default:
		return StyleYellow
	}
}

// SourceBadge returns a colored marker for where a plan came from, such as
// "● MODEL".
func SourceBadge(source generation.Source) string {
	switch source {
	case generation.SourceLLM:
		return StyleGreen.Render("● MODEL")
	case generation.SourceFallback:
		return StyleYellow.Render("● CURRICULUM")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
