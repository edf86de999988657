// Package synthesis produces plan task text without a language model.
//
// Output depends only on the goal, the resolved category and the requested
// count, so the same inputs always yield the same tasks.
package synthesis

import (
	"strings"

	"github.com/alexanderramin/learnplan/internal/curriculum"
	"github.com/alexanderramin/learnplan/internal/domain"
)

// Engine synthesizes daily, weekly and monthly task text from a curriculum
// catalog. Categories missing from the catalog use the general tables.
type Engine struct {
	catalog *curriculum.Catalog
}

func NewEngine(catalog *curriculum.Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// lookup returns the curriculum for category and its phrasing family.
func (e *Engine) lookup(category domain.Category) (curriculum.Curriculum, phrasing, bool) {
	if e.catalog == nil || category == domain.CategoryGeneral {
		return curriculum.Curriculum{}, phrasing{}, false
	}
	cur, ok := e.catalog.Get(category)
	if !ok {
		return curriculum.Curriculum{}, phrasing{}, false
	}
	return cur, phrasingFor(cur.Family), true
}

var subjectPrefixes = strings.NewReplacer("Learn ", "", "learn ", "", "prepare for ", "", "Prepare for ", "")

// SubjectName strips a leading verb phrase from goal to get the bare subject,
// e.g. "Learn underwater basket weaving" becomes "underwater basket weaving".
func SubjectName(goal string) string {
	s := strings.TrimSpace(subjectPrefixes.Replace(goal))
	if s == "" {
		s = strings.TrimSpace(goal)
	}
	if s == "" {
		return "your goal"
	}
	return s
}

// displayName renders a category as words, e.g. weight_loss as "weight loss".
func displayName(c domain.Category) string {
	return strings.ReplaceAll(string(c), "_", " ")
}
