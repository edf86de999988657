package generation

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/learnplan/internal/domain"
	"github.com/alexanderramin/learnplan/internal/duration"
)

const planSystemPrompt = `You are an expert learning coach who writes personalized, progressive study plans.

You MUST output ONLY a JSON object with exactly this structure:
{
  "goalTitle": "the learner's goal",
  "totalDays": 30,
  "monthlyTasks": [
    {"label": "Month 1", "tasks": ["milestone 1", "milestone 2"], "resources": [], "status": false}
  ],
  "weeklyTasks": [
    {"label": "Week 1", "tasks": ["weekly task 1", "weekly task 2"], "resources": [], "status": false}
  ],
  "dailyTasks": [
    {"label": "Day 1", "tasks": ["one specific task with a clear completion criterion"], "resources": [], "status": false}
  ]
}

Each resource is {"title": "...", "type": "video|article|book|tool|course|website|tutorial|documentation|general", "url": "...", "description": "..."}.

Rules:
- The number of entries in each list must match the counts you are given exactly.
- Labels are 1-indexed: "Day 1", "Week 1", "Month 1".
- Daily tasks are single actions with a concrete deliverable. Weekly tasks have 2-3 sub-tasks; monthly tasks have 2-4 milestones.
- Tasks build on each other from fundamentals to advanced work.
- Never repeat a task. Avoid vague phrasing such as "learn the basics", "study fundamentals", "practice concepts", "get familiar with".
- Prefer exact numbers, named tools and measurable outcomes.
- No markdown, no comments, no trailing commas.`

// Profile describes the learner. Empty fields fall back to beginner,
// practical learning and one to two hours a day.
type Profile struct {
	SkillLevel     string   `json:"skillLevel,omitempty"`
	LearningStyle  string   `json:"learningStyle,omitempty"`
	DailyTime      string   `json:"dailyTime,omitempty"`
	Interests      []string `json:"interests,omitempty"`
	PracticalGoals []string `json:"practicalGoals,omitempty"`
}

func (p *Profile) withDefaults() Profile {
	var out Profile
	if p != nil {
		out = *p
	}
	out.SkillLevel = orDefault(out.SkillLevel, "beginner")
	out.LearningStyle = orDefault(out.LearningStyle, "practical")
	out.DailyTime = orDefault(out.DailyTime, "1-2 hours")
	if len(out.Interests) == 0 {
		out.Interests = []string{"general application"}
	}
	if len(out.PracticalGoals) == 0 {
		out.PracticalGoals = []string{"skill development"}
	}
	return out
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s == "" {
		return def
	}
	return s
}

// buildPlanPrompt renders the user prompt for one attempt. Attempts after
// the first ask for more specific output.
func buildPlanPrompt(goal, durationText string, totals duration.Totals, category domain.Category, profile *Profile, attempt int) string {
	p := profile.withDefaults()

	var b strings.Builder
	fmt.Fprintf(&b, "LEARNING GOAL: %s\n", goal)
	fmt.Fprintf(&b, "DURATION: %s (%d days, %d weeks, %d months)\n", durationText, totals.TotalDays, totals.TotalWeeks, totals.TotalMonths)
	fmt.Fprintf(&b, "SUBJECT CATEGORY: %s\n\n", category)

	b.WriteString("LEARNER PROFILE:\n")
	fmt.Fprintf(&b, "- Skill level: %s\n", p.SkillLevel)
	fmt.Fprintf(&b, "- Learning style: %s\n", p.LearningStyle)
	fmt.Fprintf(&b, "- Available time: %s per day\n", p.DailyTime)
	fmt.Fprintf(&b, "- Interests: %s\n", strings.Join(p.Interests, ", "))
	fmt.Fprintf(&b, "- Practical goals: %s\n\n", strings.Join(p.PracticalGoals, ", "))

	b.WriteString("REQUIRED COUNTS:\n")
	fmt.Fprintf(&b, "- dailyTasks: exactly %d entries\n", totals.TotalDays)
	fmt.Fprintf(&b, "- weeklyTasks: exactly %d entries\n", totals.TotalWeeks)
	fmt.Fprintf(&b, "- monthlyTasks: exactly %d entries\n", totals.TotalMonths)
	fmt.Fprintf(&b, "- goalTitle: %q, totalDays: %d\n\n", goal, totals.TotalDays)

	fmt.Fprintf(&b, "Tune difficulty for a %s learner who prefers %s learning and fits each daily task into %s.\n\n",
		p.SkillLevel, p.LearningStyle, p.DailyTime)

	fmt.Fprintf(&b, "EXAMPLES OF THE SPECIFICITY EXPECTED FOR %s:\n", strings.ToUpper(string(category)))
	for _, ex := range specificityExamples(category) {
		fmt.Fprintf(&b, "- %s\n", ex)
	}

	if attempt > 1 {
		fmt.Fprintf(&b, "\nRETRY ATTEMPT #%d:\n", attempt)
		b.WriteString("The previous answer was rejected. Return valid JSON with the exact counts above, ")
		b.WriteString("no repeated tasks, and even more specific tasks: tool names, quantities, time estimates and success metrics.\n")
	}
	return b.String()
}

var categoryExamples = map[domain.Category][]string{
	domain.CategoryDSA: {
		"Solve Two Sum with a hash map in Python and test it with 5 different inputs",
		"Implement binary search from scratch and compare it with linear search on a 1000-element array",
		"Build a stack and use it to solve Valid Parentheses with 10 test cases",
	},
	domain.CategoryReact: {
		"Create a counter app with increment and decrement buttons using useState, styled with CSS modules",
		"Build a todo list with add and delete, localStorage persistence and input validation",
		"Fetch weather data from a public API and render loading and error states",
	},
	domain.CategoryPython: {
		"Build an expense tracker CLI that reads a CSV file and prints a monthly report",
		"Scrape job listings with BeautifulSoup, follow pagination and save the results to JSON",
		"Write a file organizer that sorts a downloads folder by type and date",
	},
	domain.CategoryHindi: {
		"Write 30 Devanagari characters with stroke order and two example words each",
		"Learn 15 greetings and practice them with a native speaker for 20 minutes",
		"Write a 100-word paragraph about your morning routine using correct verb forms",
	},
	domain.CategoryFitness: {
		"Complete a 20-minute full-body workout: 3 sets of 10 push-ups, 15 squats and a 30-second plank",
		"Walk 5000 steps and log energy levels in a workout journal",
		"Film yourself doing 5 bodyweight exercises and check your form against a tutorial",
	},
	domain.CategoryCooking: {
		"Practice knife skills: julienne 2 carrots, dice 1 onion and chiffonade 5 basil leaves",
		"Cook scrambled eggs three ways and note the texture differences",
		"Bake a basic white loaf and record kneading and proofing times",
	},
}

func specificityExamples(category domain.Category) []string {
	if ex, ok := categoryExamples[category]; ok {
		return ex
	}
	return []string{
		fmt.Sprintf("Identify 5 specific tools or resources professionals use in %s", category),
		"Complete a hands-on tutorial that produces a tangible deliverable",
		"Build a mini-project that applies 3 key concepts and share it for feedback",
	}
}
