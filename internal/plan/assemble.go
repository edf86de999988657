// Package plan builds Plan values from synthesized text and repairs
// loosely-shaped candidate plans into structurally valid ones.
package plan

import (
	"strings"

	"github.com/alexanderramin/learnplan/internal/domain"
	"github.com/alexanderramin/learnplan/internal/duration"
	"github.com/alexanderramin/learnplan/internal/synthesis"
)

// Assembler builds complete plans from the synthesis engine.
type Assembler struct {
	engine *synthesis.Engine
}

func NewAssembler(engine *synthesis.Engine) *Assembler {
	return &Assembler{engine: engine}
}

// Assemble synthesizes all three tiers for goal using the counts in totals.
// It never fails.
func (a *Assembler) Assemble(goal string, totals duration.Totals, category domain.Category) domain.Plan {
	goal = strings.TrimSpace(goal)
	return domain.Plan{
		GoalTitle:    firstNonBlank(goal, DefaultGoalTitle),
		TotalDays:    totals.TotalDays,
		MonthlyTasks: pairEntries(domain.TierMonthly, a.engine.Monthly(goal, category, totals.TotalMonths)),
		WeeklyTasks:  pairEntries(domain.TierWeekly, a.engine.Weekly(goal, category, totals.TotalWeeks)),
		DailyTasks:   lineEntries(domain.TierDaily, a.engine.Daily(goal, category, totals.TotalDays)),
	}
}

func lineEntries(tier domain.Tier, lines []string) []domain.TaskEntry {
	out := make([]domain.TaskEntry, len(lines))
	for i, line := range lines {
		out[i] = newEntry(tier, i, []string{line})
	}
	return out
}

func pairEntries(tier domain.Tier, groups [][]string) []domain.TaskEntry {
	out := make([]domain.TaskEntry, len(groups))
	for i, tasks := range groups {
		out[i] = newEntry(tier, i, tasks)
	}
	return out
}

func newEntry(tier domain.Tier, i int, tasks []string) domain.TaskEntry {
	return domain.TaskEntry{
		Label:     tier.Label(i),
		Tasks:     tasks,
		Resources: []domain.Resource{},
		Status:    false,
	}
}
