// Package curriculum holds the static per-category content bank used by the
// deterministic plan synthesizer.
package curriculum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/learnplan/internal/domain"
)

// MinTopics is the smallest topic list a curriculum may carry. Monthly
// synthesis slices topics four at a time.
const MinTopics = 4

var (
	// ErrInvalidCurriculum indicates malformed static curriculum data.
	ErrInvalidCurriculum = errors.New("invalid curriculum")
	ErrUnknownCategory   = errors.New("unknown category")
)

// Curriculum is the content bank for one category. Topics are ordered from
// foundational to advanced.
type Curriculum struct {
	Category       domain.Category
	Family         domain.Family
	Topics         []string
	PracticalTasks []string
	Projects       []string
}

// Catalog is an immutable, insertion-ordered set of curricula. It is safe
// for concurrent use because nothing mutates it after New returns.
type Catalog struct {
	entries []Curriculum
	index   map[domain.Category]int
}

// New validates entries and builds a Catalog. Entries are copied so later
// changes to the caller's slices are not observed.
func New(entries []Curriculum) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Curriculum, 0, len(entries)),
		index:   make(map[domain.Category]int, len(entries)),
	}
	var errs []error
	for i, e := range entries {
		if err := validateEntry(e); err != nil {
			errs = append(errs, fmt.Errorf("entry %d (%q): %w", i, e.Category, err))
			continue
		}
		if _, dup := c.index[e.Category]; dup {
			errs = append(errs, fmt.Errorf("entry %d: duplicate category %q", i, e.Category))
			continue
		}
		c.index[e.Category] = len(c.entries)
		c.entries = append(c.entries, cloneEntry(e))
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCurriculum, errors.Join(errs...))
	}
	return c, nil
}

// MustNew is like New but panics on invalid data. Intended for package-level
// defaults whose correctness is a deployment-time guarantee.
func MustNew(entries []Curriculum) *Catalog {
	c, err := New(entries)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the curriculum for category. General never has one. The
// returned slices are shared and must be treated as read-only.
func (c *Catalog) Get(category domain.Category) (Curriculum, bool) {
	i, ok := c.index[category]
	if !ok {
		return Curriculum{}, false
	}
	return c.entries[i], true
}

// Categories returns the catalog keys in insertion order.
func (c *Catalog) Categories() []domain.Category {
	out := make([]domain.Category, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Category
	}
	return out
}

// Family returns the phrasing family of category, or FamilyTechnical when
// the category has no entry.
func (c *Catalog) Family(category domain.Category) domain.Family {
	if e, ok := c.Get(category); ok {
		return e.Family
	}
	return domain.FamilyTechnical
}

// Lookup resolves user input such as "Weight Loss" to a category. General
// is accepted even though it has no entry.
func (c *Catalog) Lookup(name string) (domain.Category, error) {
	key := domain.Category(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_"))
	if key == domain.CategoryGeneral {
		return key, nil
	}
	if _, ok := c.index[key]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return key, nil
}

// Len returns the number of curricula.
func (c *Catalog) Len() int {
	return len(c.entries)
}

func validateEntry(e Curriculum) error {
	var errs []error
	if strings.TrimSpace(string(e.Category)) == "" {
		errs = append(errs, errors.New("category is required"))
	}
	if e.Category == domain.CategoryGeneral {
		errs = append(errs, errors.New("general cannot have a curriculum"))
	}
	if !domain.ValidFamilies[e.Family] {
		errs = append(errs, fmt.Errorf("invalid family %q", e.Family))
	}
	if len(e.Topics) < MinTopics {
		errs = append(errs, fmt.Errorf("topics: need at least %d, got %d", MinTopics, len(e.Topics)))
	}
	if len(e.PracticalTasks) == 0 {
		errs = append(errs, errors.New("practical_tasks is required"))
	}
	errs = append(errs, nonBlank("topics", e.Topics)...)
	errs = append(errs, nonBlank("practical_tasks", e.PracticalTasks)...)
	errs = append(errs, nonBlank("projects", e.Projects)...)
	return errors.Join(errs...)
}

func nonBlank(field string, items []string) []error {
	var errs []error
	for i, s := range items {
		if strings.TrimSpace(s) == "" {
			errs = append(errs, fmt.Errorf("%s[%d] is blank", field, i))
		}
	}
	return errs
}

func cloneEntry(e Curriculum) Curriculum {
	e.Topics = append([]string(nil), e.Topics...)
	e.PracticalTasks = append([]string(nil), e.PracticalTasks...)
	e.Projects = append([]string(nil), e.Projects...)
	return e
}
