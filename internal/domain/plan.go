package domain

import "fmt"

// ResourceType enumerates the accepted kinds of learning resource.
type ResourceType string

const (
	ResourceVideo         ResourceType = "video"
	ResourceArticle       ResourceType = "article"
	ResourceBook          ResourceType = "book"
	ResourceTool          ResourceType = "tool"
	ResourceCourse        ResourceType = "course"
	ResourceWebsite       ResourceType = "website"
	ResourceTutorial      ResourceType = "tutorial"
	ResourceDocumentation ResourceType = "documentation"
	ResourceGeneral       ResourceType = "general"
)

var validResourceTypes = map[ResourceType]bool{
	ResourceVideo: true, ResourceArticle: true, ResourceBook: true,
	ResourceTool: true, ResourceCourse: true, ResourceWebsite: true,
	ResourceTutorial: true, ResourceDocumentation: true, ResourceGeneral: true,
}

// ParseResourceType maps s onto the enum, coercing unknown values to general.
func ParseResourceType(s string) ResourceType {
	rt := ResourceType(s)
	if validResourceTypes[rt] {
		return rt
	}
	return ResourceGeneral
}

// Resource is a reference attached to a task entry.
type Resource struct {
	Title       string       `json:"title"`
	Type        ResourceType `json:"type"`
	URL         string       `json:"url"`
	Description string       `json:"description"`
}

// TaskEntry is one labeled slot in a plan tier.
type TaskEntry struct {
	Label     string     `json:"label"`
	Tasks     []string   `json:"tasks"`
	Resources []Resource `json:"resources"`
	Status    bool       `json:"status"`
}

// Plan is the full learning plan returned to callers.
type Plan struct {
	GoalTitle    string      `json:"goalTitle"`
	TotalDays    int         `json:"totalDays"`
	MonthlyTasks []TaskEntry `json:"monthlyTasks"`
	WeeklyTasks  []TaskEntry `json:"weeklyTasks"`
	DailyTasks   []TaskEntry `json:"dailyTasks"`
}

// Tier identifies one of the three task granularities of a plan.
type Tier string

const (
	TierMonthly Tier = "monthlyTasks"
	TierWeekly  Tier = "weeklyTasks"
	TierDaily   Tier = "dailyTasks"
)

// Tiers lists the plan tiers in serialization order.
var Tiers = []Tier{TierMonthly, TierWeekly, TierDaily}

// Label returns the 1-indexed positional label for the i-th (0-indexed) entry.
func (t Tier) Label(i int) string {
	switch t {
	case TierMonthly:
		return fmt.Sprintf("Month %d", i+1)
	case TierWeekly:
		return fmt.Sprintf("Week %d", i+1)
	case TierDaily:
		return fmt.Sprintf("Day %d", i+1)
	default:
		return fmt.Sprintf("Task %d", i+1)
	}
}

// Entries returns the slice of the plan that backs tier t.
func (p *Plan) Entries(t Tier) []TaskEntry {
	switch t {
	case TierMonthly:
		return p.MonthlyTasks
	case TierWeekly:
		return p.WeeklyTasks
	case TierDaily:
		return p.DailyTasks
	default:
		return nil
	}
}
