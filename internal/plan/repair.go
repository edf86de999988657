package plan

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/learnplan/internal/domain"
)

const (
	DefaultGoalTitle = "Learning Goal"
	DefaultTotalDays = 30
)

// Repair turns any JSON-decoded value into a structurally valid Plan.
// Missing or mistyped fields are replaced with defaults; nothing is rejected.
// Values decoded with json.Decoder.UseNumber are accepted as well.
func Repair(candidate any) domain.Plan {
	obj, _ := candidate.(map[string]any)

	totalDays, ok := asCount(obj["totalDays"])
	if !ok || totalDays < 1 {
		totalDays = DefaultTotalDays
	}
	title, _ := asString(obj["goalTitle"])

	return domain.Plan{
		GoalTitle:    firstNonBlank(title, DefaultGoalTitle),
		TotalDays:    totalDays,
		MonthlyTasks: repairTier(domain.TierMonthly, obj[string(domain.TierMonthly)]),
		WeeklyTasks:  repairTier(domain.TierWeekly, obj[string(domain.TierWeekly)]),
		DailyTasks:   repairTier(domain.TierDaily, obj[string(domain.TierDaily)]),
	}
}

// RepairJSON decodes data and repairs the result. The only error is a
// decode failure.
func RepairJSON(data []byte) (domain.Plan, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return domain.Plan{}, fmt.Errorf("decode plan: %w", err)
	}
	return Repair(v), nil
}

func repairTier(tier domain.Tier, v any) []domain.TaskEntry {
	items, ok := v.([]any)
	if !ok {
		return []domain.TaskEntry{}
	}
	out := make([]domain.TaskEntry, len(items))
	for i, item := range items {
		if m, ok := item.(map[string]any); ok {
			out[i] = repairEntry(tier, i, m)
			continue
		}
		out[i] = placeholderEntry(tier, i, item)
	}
	return out
}

func repairEntry(tier domain.Tier, i int, m map[string]any) domain.TaskEntry {
	label, _ := asString(m["label"])
	status, _ := asBool(m["status"])
	return domain.TaskEntry{
		Label:     firstNonBlank(label, tier.Label(i)),
		Tasks:     repairTasks(tier, i, m["tasks"]),
		Resources: repairResources(m["resources"]),
		Status:    status,
	}
}

// placeholderEntry stands in for a tier element that is not an object. A
// scalar element is kept as the entry's only task.
func placeholderEntry(tier domain.Tier, i int, v any) domain.TaskEntry {
	task, _ := asString(v)
	return domain.TaskEntry{
		Label:     tier.Label(i),
		Tasks:     []string{firstNonBlank(task, placeholderTask(tier, i))},
		Resources: []domain.Resource{},
	}
}

func placeholderTask(tier domain.Tier, i int) string {
	return fmt.Sprintf("%s: review progress and continue practicing", tier.Label(i))
}

func repairTasks(tier domain.Tier, i int, v any) []string {
	var tasks []string
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if s, ok := asString(item); ok && strings.TrimSpace(s) != "" {
				tasks = append(tasks, s)
			}
		}
	default:
		if s, ok := asString(t); ok && strings.TrimSpace(s) != "" {
			tasks = []string{s}
		}
	}
	if len(tasks) == 0 {
		return []string{placeholderTask(tier, i)}
	}
	return tasks
}

func repairResources(v any) []domain.Resource {
	var items []any
	switch t := v.(type) {
	case nil:
		return []domain.Resource{}
	case []any:
		items = t
	default:
		items = []any{t}
	}
	out := make([]domain.Resource, 0, len(items))
	for _, item := range items {
		out = append(out, repairResource(len(out), item))
	}
	return out
}

// repairResource coerces one resource. A bare value becomes both the title
// and the description.
func repairResource(i int, v any) domain.Resource {
	placeholder := fmt.Sprintf("Resource %d", i+1)

	m, ok := v.(map[string]any)
	if !ok {
		s, _ := asString(v)
		return domain.Resource{
			Title:       firstNonBlank(s, placeholder),
			Type:        domain.ResourceGeneral,
			Description: s,
		}
	}

	title, _ := asString(m["title"])
	title = firstNonBlank(title, placeholder)
	typ, _ := asString(m["type"])
	url, _ := asString(m["url"])
	desc, _ := asString(m["description"])
	return domain.Resource{
		Title:       title,
		Type:        domain.ParseResourceType(typ),
		URL:         strings.TrimSpace(url),
		Description: firstNonBlank(desc, title),
	}
}
