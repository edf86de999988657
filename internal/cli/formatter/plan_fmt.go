package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/learnplan/internal/curriculum"
	"github.com/alexanderramin/learnplan/internal/domain"
	"github.com/alexanderramin/learnplan/internal/duration"
	"github.com/alexanderramin/learnplan/internal/generation"
)

var tierTitles = map[domain.Tier]string{
	domain.TierMonthly: "Monthly milestones",
	domain.TierWeekly:  "Weekly goals",
	domain.TierDaily:   "Daily tasks",
}

// FormatPlan renders every non-empty tier of p inside a box.
func FormatPlan(p domain.Plan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n\n", StyleBold.Render(p.GoalTitle), Dim(Pluralize(p.TotalDays, "day")))

	for _, tier := range domain.Tiers {
		entries := p.Entries(tier)
		if len(entries) == 0 {
			continue
		}
		b.WriteString(Header(tierTitles[tier]))
		b.WriteString("\n")
		for _, e := range entries {
			writeEntry(&b, e)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "  Progress: %s", RenderProgress(PlanProgress(p), 20))
	return RenderBox("Learning plan", b.String())
}

func writeEntry(b *strings.Builder, e domain.TaskEntry) {
	fmt.Fprintf(b, "  %s %s\n", Checkbox(e.Status), StyleBold.Render(e.Label))
	for _, task := range e.Tasks {
		fmt.Fprintf(b, "      • %s\n", task)
	}
	for _, r := range e.Resources {
		line := fmt.Sprintf("↳ %s [%s]", r.Title, r.Type)
		if r.URL != "" {
			line += " " + r.URL
		}
		fmt.Fprintf(b, "      %s\n", Dim(line))
	}
}

// FormatResultSummary renders the one-line provenance of a generated plan.
func FormatResultSummary(r *generation.Result, family domain.Family) string {
	parts := []string{
		SourceBadge(r.Source),
		CategoryBadge(r.Category, family),
		Dim(FormatTotals(r.Totals)),
	}
	if r.Attempts > 0 {
		parts = append(parts, Dim(Pluralize(r.Attempts, "attempt")))
	}
	return strings.Join(parts, "  ")
}

// FormatDuration shows what was parsed from text and the plan counts it
// yields.
func FormatDuration(text string, spec duration.Spec, totals duration.Totals) string {
	rows := [][]string{
		{"months", strconv.Itoa(spec.Months), strconv.Itoa(totals.TotalMonths)},
		{"weeks", strconv.Itoa(spec.Weeks), strconv.Itoa(totals.TotalWeeks)},
		{"days", strconv.Itoa(spec.Days), strconv.Itoa(totals.TotalDays)},
	}
	return fmt.Sprintf("%s %q\n\n%s", Bold("Duration"), text, RenderTable([]string{"UNIT", "PARSED", "PLAN ENTRIES"}, rows))
}

// FormatClassification renders the category chosen for goal.
func FormatClassification(goal string, category domain.Category, family domain.Family) string {
	return fmt.Sprintf("%s %s %s %s",
		Bold(goal),
		Dim("→"),
		CategoryBadge(category, family),
		Dim("("+string(family)+")"))
}

// FormatCategories lists the catalog plus the general category.
func FormatCategories(catalog *curriculum.Catalog) string {
	rows := make([][]string, 0, catalog.Len()+1)
	for _, cat := range catalog.Categories() {
		e, _ := catalog.Get(cat)
		rows = append(rows, []string{
			CategoryBadge(cat, e.Family),
			string(cat),
			string(e.Family),
			strconv.Itoa(len(e.Topics)),
			strconv.Itoa(len(e.PracticalTasks)),
			strconv.Itoa(len(e.Projects)),
		})
	}
	rows = append(rows, []string{CategoryName(domain.CategoryGeneral), string(domain.CategoryGeneral), Dim("--"), Dim("--"), Dim("--"), Dim("--")})
	return RenderTable([]string{"NAME", "KEY", "FAMILY", "TOPICS", "PRACTICAL", "PROJECTS"}, rows)
}
