package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/learnplan/internal/domain"
	"github.com/alexanderramin/learnplan/internal/duration"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// CategoryName turns a category key like "weight_loss" into "Weight loss".
func CategoryName(c domain.Category) string {
	s := strings.ReplaceAll(string(c), "_", " ")
	if s == "" {
		return "--"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// CategoryBadge returns the category name in its family color.
func CategoryBadge(c domain.Category, f domain.Family) string {
	return FamilyStyle(f).Render(CategoryName(c))
}

// Checkbox renders an entry's completion state.
func Checkbox(done bool) string {
	if done {
		return StyleGreen.Render("[x]")
	}
	return StyleDim.Render("[ ]")
}

// Pluralize formats a count with its unit, e.g. "1 week" or "3 weeks".
func Pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// FormatTotals renders plan counts as "28 days · 4 weeks · 0 months".
func FormatTotals(t duration.Totals) string {
	return strings.Join([]string{
		Pluralize(t.TotalDays, "day"),
		Pluralize(t.TotalWeeks, "week"),
		Pluralize(t.TotalMonths, "month"),
	}, " · ")
}
