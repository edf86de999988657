package synthesis

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/learnplan/internal/domain"
)

const topicsPerMonth = 4

// Monthly returns exactly numMonths task pairs. Each month pairs the family
// theme for that month with a window of four curriculum topics; months past
// the end of the topic list reuse the last window.
func (e *Engine) Monthly(goal string, category domain.Category, numMonths int) [][]string {
	if numMonths <= 0 {
		return [][]string{}
	}
	cur, ph, ok := e.lookup(category)
	if !ok {
		return generalMonthly(SubjectName(goal), numMonths)
	}

	out := make([][]string, numMonths)
	for month := 0; month < numMonths; month++ {
		theme := ph.monthlyThemes[month%len(ph.monthlyThemes)]
		topics := monthTopics(cur.Topics, month)
		out[month] = []string{
			fmt.Sprintf("Focus on %s - %s", strings.ToLower(theme[0]), strings.ToLower(strings.Join(topics[:2], ", "))),
			fmt.Sprintf("Master %s - %s", strings.ToLower(theme[1]), strings.ToLower(strings.Join(topics[2:], ", "))),
		}
	}
	return out
}

// monthTopics returns the four-topic window for month. Catalog validation
// guarantees at least four topics.
func monthTopics(topics []string, month int) []string {
	start := month * topicsPerMonth
	if start+topicsPerMonth <= len(topics) {
		return topics[start : start+topicsPerMonth]
	}
	return topics[len(topics)-topicsPerMonth:]
}

func generalMonthly(subject string, numMonths int) [][]string {
	out := make([][]string, numMonths)
	for month := 0; month < numMonths; month++ {
		switch {
		case month == 0:
			out[month] = []string{
				fmt.Sprintf("Build strong foundation in %s fundamentals and core concepts", subject),
				"Establish consistent practice routine and gather essential resources",
			}
		case month == numMonths-1:
			out[month] = []string{
				fmt.Sprintf("Achieve mastery-level proficiency in %s", subject),
				"Create portfolio and prepare to teach or mentor others",
			}
		default:
			out[month] = []string{
				fmt.Sprintf("Advance your %s skills through challenging projects and exercises", subject),
				fmt.Sprintf("Apply %s knowledge to real-world scenarios and problems", subject),
			}
		}
	}
	return out
}
