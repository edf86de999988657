package synthesis

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/learnplan/internal/domain"
)

const reviewCompanion = "Review, refine and document your work"

var generalWeeklyThemes = [][2]string{
	{"Foundation building", "Basic practice"},
	{"Skill development", "Hands-on application"},
	{"Advanced concepts", "Complex projects"},
	{"Mastery refinement", "Portfolio creation"},
	{"Expert application", "Teaching others"},
	{"Professional integration", "Continuous improvement"},
}

// Weekly returns exactly numWeeks task pairs. Even weeks study the next
// curriculum topic and odd weeks work the next practical task. A week whose
// source list has run out gets a closing pair instead.
func (e *Engine) Weekly(goal string, category domain.Category, numWeeks int) [][]string {
	if numWeeks <= 0 {
		return [][]string{}
	}
	cur, ph, ok := e.lookup(category)
	if !ok {
		return generalWeekly(SubjectName(goal), numWeeks)
	}

	lowerGoal := strings.ToLower(strings.TrimSpace(goal))
	out := make([][]string, 0, numWeeks)
	closings := 0
	for week := 0; week < numWeeks; week++ {
		if week%2 == 0 {
			if i := week / 2; i < len(cur.Topics) {
				topic := strings.ToLower(cur.Topics[i])
				out = append(out, []string{
					fmt.Sprintf(ph.weeklyTopic[0], topic),
					fmt.Sprintf(ph.weeklyTopic[1], topic),
				})
				continue
			}
		} else if i := week / 2; i < len(cur.PracticalTasks) {
			out = append(out, []string{cur.PracticalTasks[i], reviewCompanion})
			continue
		}

		pair := ph.weeklyClosing[closings%len(ph.weeklyClosing)]
		closings++
		out = append(out, []string{fillGoal(pair[0], lowerGoal), fillGoal(pair[1], lowerGoal)})
	}
	return out
}

func fillGoal(tmpl, goal string) string {
	if !strings.Contains(tmpl, "%s") {
		return tmpl
	}
	return fmt.Sprintf(tmpl, goal)
}

func generalWeekly(subject string, numWeeks int) [][]string {
	out := make([][]string, numWeeks)
	for week := 0; week < numWeeks; week++ {
		theme := generalWeeklyThemes[week%len(generalWeeklyThemes)]
		out[week] = []string{
			fmt.Sprintf("%s in %s with focused study sessions", theme[0], subject),
			fmt.Sprintf("%s through practical exercises and real-world scenarios", theme[1]),
		}
	}
	return out
}
