package synthesis

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/alexanderramin/learnplan/internal/curriculum"
	"github.com/alexanderramin/learnplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allCategories(t *testing.T) []domain.Category {
	t.Helper()
	return append(curriculum.Default().Categories(), domain.CategoryGeneral)
}

func mustGet(t *testing.T, c domain.Category) curriculum.Curriculum {
	t.Helper()
	cur, ok := curriculum.Default().Get(c)
	require.True(t, ok, "missing curriculum for %s", c)
	return cur
}

func assertDistinct(t *testing.T, items []string) {
	t.Helper()
	seen := make(map[string]int, len(items))
	for i, s := range items {
		if j, dup := seen[s]; dup {
			t.Fatalf("entries %d and %d are identical: %q", j, i, s)
		}
		seen[s] = i
	}
}

func firstLines(pairs [][]string) []string {
	out := make([]string, len(pairs))
	for i, p := range pairs {
		out[i] = strings.Join(p, " | ")
	}
	return out
}

func TestSubjectName(t *testing.T) {
	tests := []struct {
		goal string
		want string
	}{
		{"Learn underwater basket weaving", "underwater basket weaving"},
		{"learn knitting", "knitting"},
		{"prepare for the bar exam", "the bar exam"},
		{"Prepare for a marathon", "a marathon"},
		{"Woodworking", "Woodworking"},
		{"  Learn   ", "Learn"},
		{"", "your goal"},
	}
	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			assert.Equal(t, tt.want, SubjectName(tt.goal))
		})
	}
}

func TestDaily_PhasesForFourDays(t *testing.T) {
	e := NewEngine(curriculum.Default())
	cur := mustGet(t, domain.CategoryDSA)

	got := e.Daily("Master DSA", domain.CategoryDSA, 4)

	require.Len(t, got, 4)
	assert.Equal(t, fmt.Sprintf("Learn and understand %s - read documentation and watch tutorials", strings.ToLower(cur.Topics[0])), got[0])
	assert.Equal(t, cur.PracticalTasks[0], got[1])
	assert.Equal(t, fmt.Sprintf("Master advanced optimization in %s", strings.ToLower(cur.Topics[len(cur.Topics)/2])), got[2])
	assert.Equal(t, "Work on project: "+cur.Projects[0], got[3])
}

func TestDaily_AdvancedAspectsRotateByDay(t *testing.T) {
	e := NewEngine(curriculum.Default())
	cur := mustGet(t, domain.CategoryDSA)
	n := len(cur.Topics)

	// 80 days: 20 foundation, 26 building, then 20 advanced days.
	got := e.Daily("Master DSA", domain.CategoryDSA, 80)
	require.Len(t, got, 80)
	advanced := got[46:66]

	aspects := phrasings[domain.FamilyTechnical].aspects
	for _, day := range []int{0, n - 1, n, 19} {
		want := fmt.Sprintf("Master advanced %s in %s",
			aspects[day%len(aspects)], strings.ToLower(cur.Topics[(day+n/2)%n]))
		assert.Equal(t, want, advanced[day], "advanced day %d", day)
	}
}

func TestDaily_ShortPlansAreTruncated(t *testing.T) {
	e := NewEngine(curriculum.Default())
	full := e.Daily("Learn React", domain.CategoryReact, 3)
	require.Len(t, full, 3)

	for n := 1; n <= 3; n++ {
		got := e.Daily("Learn React", domain.CategoryReact, n)
		assert.Equal(t, full[:n], got)
	}
	assert.Empty(t, e.Daily("Learn React", domain.CategoryReact, 0))
	assert.Empty(t, e.Daily("Learn React", domain.CategoryReact, -3))
}

func TestDaily_FamilyPhrasing(t *testing.T) {
	e := NewEngine(curriculum.Default())
	tests := []struct {
		category domain.Category
		prefix   string
		closing  string
	}{
		{domain.CategoryHindi, "Master ", "Create advanced hindi content and teach others"},
		{domain.CategoryPhotography, "Learn and practice ", "Develop your unique photography style and showcase your portfolio"},
		{domain.CategoryGATE, "Study ", "Take full mock exams and analyze performance for final preparation"},
		{domain.CategoryWeightLoss, "Learn and implement ", "Create portfolio documentation and showcase your weight loss expertise"},
		{domain.CategoryPython, "Learn and understand ", "Create portfolio documentation and showcase your python expertise"},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			got := e.Daily("goal", tt.category, 60)
			require.Len(t, got, 60)
			assert.True(t, strings.HasPrefix(got[0], tt.prefix), got[0])
			assert.Equal(t, tt.closing, got[len(got)-1])
		})
	}
}

func TestDaily_WrappedEntriesAreRephrased(t *testing.T) {
	e := NewEngine(curriculum.Default())
	cur := mustGet(t, domain.CategoryReact)

	// 120 days: 30 foundation days over 16 topics, 40 building days over 8 tasks.
	got := e.Daily("Learn React", domain.CategoryReact, 120)
	require.Len(t, got, 120)

	foundation := got[:30]
	assert.Equal(t, fmt.Sprintf("Review and practice %s with hands-on exercises", strings.ToLower(cur.Topics[0])), foundation[16])

	building := got[30:70]
	assert.Equal(t, cur.PracticalTasks[7], building[7])
	assert.Equal(t, "Enhance and expand on: "+strings.ToLower(cur.PracticalTasks[0]), building[8])
	assert.Equal(t, "Extend with a new constraint: "+strings.ToLower(cur.PracticalTasks[0]), building[16])
	// Three rephrasings cover four passes over the practical tasks.
	assertDistinct(t, building[:32])
	assertDistinct(t, foundation)
}

func TestDaily_DistinctBeforeClosing(t *testing.T) {
	e := NewEngine(curriculum.Default())
	for _, c := range curriculum.Default().Categories() {
		for n := 1; n <= 28; n++ {
			got := e.Daily("Learn something new", c, n)
			require.Len(t, got, n)
			assertDistinct(t, got)
		}
	}
}

func TestDaily_OnlyClosingRepeats(t *testing.T) {
	e := NewEngine(curriculum.Default())
	for _, c := range curriculum.Default().Categories() {
		got := e.Daily("goal", c, 90)
		closing := got[len(got)-1]
		var rest []string
		for _, s := range got {
			if s != closing {
				rest = append(rest, s)
			}
		}
		assertDistinct(t, rest)
	}
}

func TestDaily_General(t *testing.T) {
	e := NewEngine(curriculum.Default())
	const goal = "Learn underwater basket weaving"

	t.Run("one day per phase", func(t *testing.T) {
		got := e.Daily(goal, domain.CategoryGeneral, 10)
		require.Len(t, got, 10)
		assert.Equal(t, "Research and understand what underwater basket weaving involves and its practical applications", got[0])
		assert.Equal(t, "Build a comprehensive portfolio showcasing your underwater basket weaving expertise", got[9])
	})

	t.Run("fewer days than phases", func(t *testing.T) {
		got := e.Daily(goal, domain.CategoryGeneral, 5)
		require.Len(t, got, 5)
		assert.Equal(t, "Apply knowledge by working on a simple real-world project in underwater basket weaving", got[4])
	})

	t.Run("repeated phase days are rephrased", func(t *testing.T) {
		got := e.Daily(goal, domain.CategoryGeneral, 30)
		require.Len(t, got, 30)
		base := "Research and understand what underwater basket weaving involves and its practical applications"
		assert.Equal(t, base, got[0])
		assert.Equal(t, "Deepen understanding: "+strings.ToLower(base)+" through different perspectives", got[1])
		assert.Equal(t, "Apply and test knowledge: "+strings.ToLower(base)+" in new scenarios", got[2])
		for i := 1; i < len(got); i++ {
			assert.NotEqual(t, got[i-1], got[i])
		}
	})

	t.Run("padding", func(t *testing.T) {
		got := e.Daily(goal, domain.CategoryGeneral, 27)
		require.Len(t, got, 27)
		capstone := "Work on capstone project: comprehensive underwater basket weaving application with real-world impact"
		consolidate := "Consolidate learning, create study materials, and prepare to teach underwater basket weaving to others"
		assert.Equal(t, []string{capstone, capstone, consolidate, consolidate, consolidate, consolidate, consolidate}, got[20:])
	})

	t.Run("category without curriculum", func(t *testing.T) {
		got := e.Daily(goal, domain.Category("knitting"), 10)
		assert.Equal(t, e.Daily(goal, domain.CategoryGeneral, 10), got)
	})

	t.Run("nil catalog", func(t *testing.T) {
		got := NewEngine(nil).Daily(goal, domain.CategoryDSA, 10)
		assert.Equal(t, e.Daily(goal, domain.CategoryGeneral, 10), got)
	})
}

func TestWeekly_AlternatesTopicsAndPractice(t *testing.T) {
	e := NewEngine(curriculum.Default())
	cur := mustGet(t, domain.CategoryReact)

	got := e.Weekly("Learn React", domain.CategoryReact, 4)

	require.Len(t, got, 4)
	t0 := strings.ToLower(cur.Topics[0])
	assert.Equal(t, []string{"Learn and understand " + t0, "Complete exercises and tutorials on " + t0}, got[0])
	assert.Equal(t, []string{cur.PracticalTasks[0], "Review, refine and document your work"}, got[1])
	assert.Equal(t, "Learn and understand "+strings.ToLower(cur.Topics[1]), got[2][0])
	assert.Equal(t, cur.PracticalTasks[1], got[3][0])
}

func TestWeekly_FamilyPhrasing(t *testing.T) {
	e := NewEngine(curriculum.Default())
	tests := []struct {
		category domain.Category
		first    string
	}{
		{domain.CategoryEnglish, "Master %s through reading, writing, and speaking practice"},
		{domain.CategoryMusic, "Learn and practice %s with hands-on creative exercises"},
		{domain.CategoryUPSC, "Study %s comprehensively with detailed notes"},
		{domain.CategoryCooking, "Learn and understand %s"},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			cur := mustGet(t, tt.category)
			got := e.Weekly("goal", tt.category, 1)
			require.Len(t, got, 1)
			assert.Equal(t, fmt.Sprintf(tt.first, strings.ToLower(cur.Topics[0])), got[0][0])
		})
	}
}

func TestWeekly_ClosingPairs(t *testing.T) {
	e := NewEngine(curriculum.Default())

	exam := e.Weekly("Crack GATE", domain.CategoryGATE, 20)
	require.Len(t, exam, 20)
	// Eight practical tasks cover odd weeks 1..15; week 17 closes.
	assert.Equal(t, []string{
		"Take comprehensive mock exams and analyze performance",
		"Focus on weak areas and final revision for exam preparation",
	}, exam[17])
	assert.NotEqual(t, exam[17], exam[19])

	other := e.Weekly("Learn React", domain.CategoryReact, 18)
	assert.Equal(t, []string{
		"Advanced practice and portfolio building in learn react",
		"Review and consolidate your learn react knowledge",
	}, other[17])
}

func TestWeekly_DistinctWhileSourcesLast(t *testing.T) {
	e := NewEngine(curriculum.Default())
	for _, c := range allCategories(t) {
		got := e.Weekly("Learn something", c, 6)
		require.Len(t, got, 6)
		assertDistinct(t, firstLines(got))
	}
	for _, c := range curriculum.Default().Categories() {
		assertDistinct(t, firstLines(e.Weekly("goal", c, 16)))
	}
}

func TestWeekly_General(t *testing.T) {
	e := NewEngine(curriculum.Default())
	got := e.Weekly("Learn underwater basket weaving", domain.CategoryGeneral, 7)

	require.Len(t, got, 7)
	assert.Equal(t, []string{
		"Foundation building in underwater basket weaving with focused study sessions",
		"Basic practice through practical exercises and real-world scenarios",
	}, got[0])
	assert.Equal(t, got[0], got[6])
}

func TestMonthly(t *testing.T) {
	e := NewEngine(curriculum.Default())
	cur := mustGet(t, domain.CategoryDSA)
	lower := func(ss ...string) string { return strings.ToLower(strings.Join(ss, ", ")) }

	got := e.Monthly("Master DSA", domain.CategoryDSA, 6)

	require.Len(t, got, 6)
	assert.Equal(t, []string{
		"Focus on foundation and environment setup - " + lower(cur.Topics[0], cur.Topics[1]),
		"Master basic concepts and syntax - " + lower(cur.Topics[2], cur.Topics[3]),
	}, got[0])
	n := len(cur.Topics)
	last := cur.Topics[n-4:]
	assert.Equal(t, "Focus on specialization areas - "+lower(last[0], last[1]), got[4][0])
	assert.True(t, strings.HasPrefix(got[5][1], "Master teaching and mentoring - "), got[5][1])
	assertDistinct(t, firstLines(got))
}

func TestMonthly_FamilyThemes(t *testing.T) {
	e := NewEngine(curriculum.Default())
	tests := []struct {
		category domain.Category
		prefix   string
	}{
		{domain.CategoryHindi, "Focus on script and basic vocabulary - "},
		{domain.CategoryPhotography, "Focus on equipment and technical basics - "},
		{domain.CategoryJEE, "Focus on syllabus analysis and foundation - "},
		{domain.CategoryFitness, "Focus on foundation and environment setup - "},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			got := e.Monthly("goal", tt.category, 1)
			require.Len(t, got, 1)
			assert.True(t, strings.HasPrefix(got[0][0], tt.prefix), got[0][0])
		})
	}
}

func TestMonthly_General(t *testing.T) {
	e := NewEngine(curriculum.Default())
	const goal = "Learn underwater basket weaving"

	one := e.Monthly(goal, domain.CategoryGeneral, 1)
	require.Len(t, one, 1)
	assert.Equal(t, "Build strong foundation in underwater basket weaving fundamentals and core concepts", one[0][0])

	three := e.Monthly(goal, domain.CategoryGeneral, 3)
	require.Len(t, three, 3)
	assert.Equal(t, "Advance your underwater basket weaving skills through challenging projects and exercises", three[1][0])
	assert.Equal(t, []string{
		"Achieve mastery-level proficiency in underwater basket weaving",
		"Create portfolio and prepare to teach or mentor others",
	}, three[2])
}

// Every tier must return exactly the requested count of non-empty entries
// for any category and any count.
func TestEngine_CountsAndNonEmpty(t *testing.T) {
	e := NewEngine(curriculum.Default())
	categories := allCategories(t)
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 300; trial++ {
		c := categories[rng.Intn(len(categories))]
		n := rng.Intn(400)

		daily := e.Daily("Learn things", c, n)
		require.Len(t, daily, n, "daily %s n=%d", c, n)
		for i, s := range daily {
			require.NotEmpty(t, strings.TrimSpace(s), "daily %s n=%d i=%d", c, n, i)
		}

		weeks := n / 7
		weekly := e.Weekly("Learn things", c, weeks)
		require.Len(t, weekly, weeks)
		for _, pair := range weekly {
			require.Len(t, pair, 2)
			assert.NotEmpty(t, pair[0])
			assert.NotEmpty(t, pair[1])
		}

		months := n / 30
		monthly := e.Monthly("Learn things", c, months)
		require.Len(t, monthly, months)
		for _, pair := range monthly {
			require.Len(t, pair, 2)
			assert.NotEmpty(t, pair[0])
			assert.NotEmpty(t, pair[1])
		}
	}
}

func TestEngine_Deterministic(t *testing.T) {
	a := NewEngine(curriculum.Default())
	b := NewEngine(curriculum.Default())
	for _, c := range allCategories(t) {
		assert.Equal(t, a.Daily("Learn it", c, 45), b.Daily("Learn it", c, 45))
		assert.Equal(t, a.Weekly("Learn it", c, 9), b.Weekly("Learn it", c, 9))
		assert.Equal(t, a.Monthly("Learn it", c, 4), b.Monthly("Learn it", c, 4))
	}
}
