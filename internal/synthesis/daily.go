package synthesis

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/learnplan/internal/curriculum"
	"github.com/alexanderramin/learnplan/internal/domain"
)

// Daily returns exactly numDays task lines, one per day.
//
// Curated categories are split into four consecutive phases: foundation
// (a quarter), skill building (a third), advanced practice (a quarter) and
// projects (the rest). Each phase has at least one day, so plans shorter
// than four days are cut to length after synthesis.
func (e *Engine) Daily(goal string, category domain.Category, numDays int) []string {
	if numDays <= 0 {
		return []string{}
	}
	cur, ph, ok := e.lookup(category)
	if !ok {
		return generalDaily(SubjectName(goal), numDays)
	}

	foundation := max(1, numDays/4)
	building := max(1, numDays/3)
	advanced := max(1, numDays/4)
	projects := max(0, numDays-foundation-building-advanced)

	out := make([]string, 0, foundation+building+advanced+projects)
	for day := 0; day < foundation; day++ {
		out = append(out, foundationTask(cur, ph, day))
	}
	for day := 0; day < building; day++ {
		out = append(out, buildingTask(cur, day))
	}
	for day := 0; day < advanced; day++ {
		out = append(out, advancedTask(cur, ph, day))
	}
	for day := 0; day < projects; day++ {
		out = append(out, projectTask(cur, ph, day))
	}
	return out[:numDays]
}

func foundationTask(cur curriculum.Curriculum, ph phrasing, day int) string {
	n := len(cur.Topics)
	if day < n {
		return fmt.Sprintf(ph.foundation, strings.ToLower(cur.Topics[day]))
	}
	round := day / n
	tmpl := reviewTemplates[(round-1)%len(reviewTemplates)]
	return fmt.Sprintf(tmpl, strings.ToLower(cur.Topics[day%n]))
}

func buildingTask(cur curriculum.Curriculum, day int) string {
	n := len(cur.PracticalTasks)
	if day < n {
		return cur.PracticalTasks[day]
	}
	round := day / n
	tmpl := enhanceTemplates[(round-1)%len(enhanceTemplates)]
	return fmt.Sprintf(tmpl, strings.ToLower(cur.PracticalTasks[day%n]))
}

func advancedTask(cur curriculum.Curriculum, ph phrasing, day int) string {
	n := len(cur.Topics)
	topic := cur.Topics[(day+n/2)%n]
	aspect := ph.aspects[day%len(ph.aspects)]
	return fmt.Sprintf(ph.advanced, aspect, strings.ToLower(topic))
}

func projectTask(cur curriculum.Curriculum, ph phrasing, day int) string {
	n := len(cur.Projects)
	switch {
	case n > 0 && day < n:
		return "Work on project: " + cur.Projects[day]
	case n > 0 && day < 2*n:
		return "Refine and add advanced features to: " + cur.Projects[(day-n)%n]
	case strings.Contains(ph.projectClosing, "%s"):
		return fmt.Sprintf(ph.projectClosing, displayName(cur.Category))
	default:
		return ph.projectClosing
	}
}

var generalPhases = []string{
	"Research and understand what %s involves and its practical applications",
	"Gather essential resources, tools, and materials needed for %s",
	"Learn fundamental concepts and basic principles of %s",
	"Practice beginner exercises and follow structured tutorials for %s",
	"Apply knowledge by working on a simple real-world project in %s",
	"Study intermediate concepts and explore different approaches in %s",
	"Implement a medium-complexity project demonstrating your %s skills",
	"Learn advanced techniques and study expert-level practices in %s",
	"Contribute to community projects or create original content in %s",
	"Build a comprehensive portfolio showcasing your %s expertise",
}

var generalVariations = []string{
	"Continue %s with focused practice sessions",
	"Deepen understanding: %s through different perspectives",
	"Apply and test knowledge: %s in new scenarios",
	"Review and reinforce: %s with peer discussions",
}

// generalDaily spreads the ten learning phases evenly across numDays. The
// first day of a phase states it plainly and later days rotate through
// variations of it. Days left over after the phases become capstone work.
func generalDaily(subject string, numDays int) []string {
	perPhase := max(1, numDays/len(generalPhases))
	out := make([]string, 0, numDays)

	for _, phase := range generalPhases {
		base := fmt.Sprintf(phase, subject)
		for d := 0; d < perPhase && len(out) < numDays; d++ {
			if d == 0 {
				out = append(out, base)
				continue
			}
			v := generalVariations[d%len(generalVariations)]
			out = append(out, fmt.Sprintf(v, strings.ToLower(base)))
		}
	}

	for len(out) < numDays {
		if numDays-len(out) > 5 {
			out = append(out, fmt.Sprintf("Work on capstone project: comprehensive %s application with real-world impact", subject))
		} else {
			out = append(out, fmt.Sprintf("Consolidate learning, create study materials, and prepare to teach %s to others", subject))
		}
	}
	return out
}
