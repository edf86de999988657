// Package subject maps free-text goals onto curriculum categories.
package subject

import (
	"strings"

	"github.com/alexanderramin/learnplan/internal/curriculum"
	"github.com/alexanderramin/learnplan/internal/domain"
)

// KeywordGroup associates keywords with the category they imply.
type KeywordGroup struct {
	Category domain.Category
	Keywords []string
}

// DefaultKeywordGroups returns the built-in groups in priority order.
func DefaultKeywordGroups() []KeywordGroup {
	return []KeywordGroup{
		{domain.CategoryDSA, []string{"algorithm", "data structure", "coding", "leetcode", "competitive programming"}},
		{domain.CategoryPython, []string{"python", "django", "flask", "fastapi", "pandas"}},
		{domain.CategoryReact, []string{"react", "jsx", "frontend", "component", "nextjs"}},
		{domain.CategoryHindi, []string{"हिंदी", "hindi", "devanagari"}},
		{domain.CategoryEnglish, []string{"english", "grammar", "vocabulary", "speaking", "writing"}},
		{domain.CategoryPhotography, []string{"photo", "camera", "photography", "portrait", "landscape"}},
		{domain.CategoryMusic, []string{"music", "instrument", "guitar", "piano", "singing", "composition"}},
		{domain.CategoryGATE, []string{"gate", "graduate aptitude test", "engineering entrance"}},
		{domain.CategoryJEE, []string{"jee", "joint entrance", "iit", "nit"}},
		{domain.CategoryUPSC, []string{"upsc", "civil services", "ias", "ips", "public service"}},
		{domain.CategoryFitness, []string{"fitness", "workout", "exercise", "gym", "health"}},
		{domain.CategoryWeightLoss, []string{"weight loss", "lose weight", "losing weight", "weight reduction", "fat loss", "slim down", "get lean"}},
		{domain.CategoryCooking, []string{"cooking", "recipe", "chef", "culinary", "baking"}},
	}
}

// Classifier is a pure, immutable goal-to-category mapper.
type Classifier struct {
	keys   []domain.Category
	groups []KeywordGroup
}

// NewClassifier builds a classifier over the catalog keys and the given
// keyword groups. A nil groups slice selects DefaultKeywordGroups.
func NewClassifier(catalog *curriculum.Catalog, groups []KeywordGroup) *Classifier {
	if groups == nil {
		groups = DefaultKeywordGroups()
	}
	lowered := make([]KeywordGroup, len(groups))
	for i, g := range groups {
		kws := make([]string, len(g.Keywords))
		for j, kw := range g.Keywords {
			kws[j] = strings.ToLower(kw)
		}
		lowered[i] = KeywordGroup{Category: g.Category, Keywords: kws}
	}
	return &Classifier{
		keys:   catalog.Categories(),
		groups: lowered,
	}
}

// Classify returns the category for goal. Catalog keys contained in the goal
// win first, in catalog order; then the first keyword group with a hit;
// otherwise general.
func (c *Classifier) Classify(goal string) domain.Category {
	g := strings.ToLower(goal)

	for _, key := range c.keys {
		if strings.Contains(g, string(key)) {
			return key
		}
	}

	for _, group := range c.groups {
		for _, kw := range group.Keywords {
			if strings.Contains(g, kw) {
				return group.Category
			}
		}
	}

	return domain.CategoryGeneral
}
