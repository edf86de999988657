package synthesis

import "github.com/alexanderramin/learnplan/internal/domain"

// phrasing holds the sentence templates a family uses across all tiers.
// Every template takes the lower-cased topic (or category) as its %s.
type phrasing struct {
	foundation     string
	advanced       string // aspect, topic
	aspects        []string
	projectClosing string // optional %s: display name of the category
	weeklyTopic    [2]string
	weeklyClosing  [][2]string // optional %s: lower-cased goal
	monthlyThemes  [][2]string
}

var (
	reviewTemplates = []string{
		"Review and practice %s with hands-on exercises",
		"Revisit %s and summarize it in your own words",
		"Reinforce %s by explaining it to someone else",
	}
	enhanceTemplates = []string{
		"Enhance and expand on: %s",
		"Extend with a new constraint: %s",
		"Redo from scratch without notes: %s",
	}

	genericWeeklyClosing = [][2]string{
		{"Advanced practice and portfolio building in %s", "Review and consolidate your %s knowledge"},
		{"Tackle a stretch challenge that combines everything learned in %s", "Write a progress retrospective for %s and set next goals"},
		{"Polish and publish your best %s work", "Identify remaining gaps in %s and close one of them"},
	}
	examWeeklyClosing = [][2]string{
		{"Take comprehensive mock exams and analyze performance", "Focus on weak areas and final revision for exam preparation"},
		{"Attempt a full-length paper under strict exam timing", "Revise your error log and re-solve every missed question"},
		{"Run a rapid revision cycle across all high-weight topics", "Practice exam-day strategy: question selection and time budgeting"},
	}

	technicalMonthly = [][2]string{
		{"Foundation and Environment Setup", "Basic Concepts and Syntax"},
		{"Intermediate Concepts and Patterns", "Hands-on Practice Projects"},
		{"Advanced Topics and Frameworks", "Real-world Applications"},
		{"Mastery and Optimization", "Portfolio and Interview Prep"},
		{"Specialization Areas", "Industry Best Practices"},
		{"Expert-level Challenges", "Teaching and Mentoring"},
	}
)

var phrasings = map[domain.Family]phrasing{
	domain.FamilyLanguage: {
		foundation:     "Master %s with writing practice and pronunciation drills",
		advanced:       "Master advanced %s in %s",
		aspects:        []string{"fluency", "cultural context", "advanced grammar", "literature", "business communication"},
		projectClosing: "Create advanced %s content and teach others",
		weeklyTopic: [2]string{
			"Master %s through reading, writing, and speaking practice",
			"Apply %s in real conversations and practical exercises",
		},
		weeklyClosing: genericWeeklyClosing,
		monthlyThemes: [][2]string{
			{"Script and Basic Vocabulary", "Grammar Fundamentals"},
			{"Conversation and Listening Skills", "Reading Comprehension"},
			{"Writing Skills and Advanced Grammar", "Cultural Context"},
			{"Fluency Development", "Literature and Media"},
			{"Professional Communication", "Advanced Composition"},
			{"Mastery and Teaching Skills", "Native-level Proficiency"},
		},
	},
	domain.FamilyCreative: {
		foundation:     "Learn and practice %s with hands-on exercises",
		advanced:       "Develop %s in %s",
		aspects:        []string{"professional techniques", "creative expression", "technical mastery", "artistic vision", "commercial application"},
		projectClosing: "Develop your unique %s style and showcase your portfolio",
		weeklyTopic: [2]string{
			"Learn and practice %s with hands-on creative exercises",
			"Create original work showcasing your understanding of %s",
		},
		weeklyClosing: genericWeeklyClosing,
		monthlyThemes: [][2]string{
			{"Equipment and Technical Basics", "Fundamental Techniques"},
			{"Creative Exploration", "Style Development"},
			{"Advanced Techniques", "Professional Skills"},
			{"Portfolio Development", "Commercial Applications"},
			{"Artistic Mastery", "Teaching and Mentoring"},
			{"Industry Integration", "Personal Brand Building"},
		},
	},
	domain.FamilyExam: {
		foundation:     "Study %s thoroughly with notes and solve practice questions",
		advanced:       "Master %s in %s",
		aspects:        []string{"complex problems", "time optimization", "accuracy improvement", "conceptual depth", "application skills"},
		projectClosing: "Take full mock exams and analyze performance for final preparation",
		weeklyTopic: [2]string{
			"Study %s comprehensively with detailed notes",
			"Solve practice questions and mock tests on %s",
		},
		weeklyClosing: examWeeklyClosing,
		monthlyThemes: [][2]string{
			{"Syllabus Analysis and Foundation", "Basic Concept Building"},
			{"Topic-wise Mastery", "Practice and Problem Solving"},
			{"Mock Tests and Time Management", "Weak Area Improvement"},
			{"Advanced Problem Solving", "Revision and Consolidation"},
			{"Final Preparation", "Stress Management"},
			{"Last-minute Revision", "Exam Strategy Refinement"},
		},
	},
	domain.FamilyLifestyle: {
		foundation:     "Learn and implement %s with practical application",
		advanced:       "Master advanced %s in %s",
		aspects:        []string{"consistency", "technique refinement", "progression", "troubleshooting", "habit building"},
		projectClosing: "Create portfolio documentation and showcase your %s expertise",
		weeklyTopic: [2]string{
			"Learn and understand %s",
			"Complete exercises and tutorials on %s",
		},
		weeklyClosing: genericWeeklyClosing,
		monthlyThemes: technicalMonthly,
	},
	domain.FamilyTechnical: {
		foundation:     "Learn and understand %s - read documentation and watch tutorials",
		advanced:       "Master advanced %s in %s",
		aspects:        []string{"optimization", "edge cases", "scalability", "best practices", "performance"},
		projectClosing: "Create portfolio documentation and showcase your %s expertise",
		weeklyTopic: [2]string{
			"Learn and understand %s",
			"Complete exercises and tutorials on %s",
		},
		weeklyClosing: genericWeeklyClosing,
		monthlyThemes: technicalMonthly,
	},
}

func phrasingFor(f domain.Family) phrasing {
	if p, ok := phrasings[f]; ok {
		return p
	}
	return phrasings[domain.FamilyTechnical]
}
