package curriculum

import "github.com/alexanderramin/learnplan/internal/domain"

// Default returns the built-in catalog. It panics if the built-in data is
// malformed, which makes a bad build fail at startup rather than per request.
func Default() *Catalog {
	return MustNew(DefaultEntries())
}

// DefaultEntries returns the built-in curricula in classification order.
func DefaultEntries() []Curriculum {
	return []Curriculum{
		{
			Category: domain.CategoryDSA,
			Family:   domain.FamilyTechnical,
			Topics: []string{
				"Time and space complexity with Big-O notation",
				"Arrays and two-pointer techniques",
				"Strings and sliding window patterns",
				"Hash maps and hash sets",
				"Linked lists",
				"Stacks and queues",
				"Recursion and backtracking",
				"Sorting algorithms",
				"Binary search and its variants",
				"Binary trees and tree traversals",
				"Binary search trees",
				"Heaps and priority queues",
				"Graphs: BFS and DFS",
				"Shortest path algorithms",
				"Dynamic programming fundamentals",
				"Greedy algorithms",
				"Tries and advanced string structures",
				"Union-find and minimum spanning trees",
			},
			PracticalTasks: []string{
				"Solve 5 easy array problems on LeetCode and note the pattern behind each",
				"Implement a singly linked list with insert, delete and reverse operations",
				"Build a stack-based solution for the valid parentheses problem with 10 test cases",
				"Implement merge sort and quicksort and compare them on 10,000 random integers",
				"Solve 5 binary search problems including search in a rotated sorted array",
				"Implement level-order, inorder, preorder and postorder tree traversals",
				"Solve 3 graph problems using BFS and 3 using DFS",
				"Solve the 0/1 knapsack and longest common subsequence problems with memoization",
				"Design an LRU cache with O(1) get and put operations",
				"Complete a timed mock interview with 2 medium problems in 60 minutes",
			},
			Projects: []string{
				"Build a visualizer that animates sorting algorithms step by step",
				"Create a pathfinding demo comparing BFS, Dijkstra and A* on a grid",
				"Implement an autocomplete engine backed by a trie",
				"Publish a personal problem-solving journal with 50 annotated solutions",
			},
		},
		{
			Category: domain.CategoryReact,
			Family:   domain.FamilyTechnical,
			Topics: []string{
				"Modern JavaScript essentials for React",
				"JSX and rendering elements",
				"Components and props",
				"State with useState",
				"Handling events and forms",
				"Conditional rendering and lists with keys",
				"Side effects with useEffect",
				"Lifting state up and component composition",
				"React Router and client-side navigation",
				"Context API for shared state",
				"Custom hooks",
				"Fetching data and handling loading states",
				"Performance with memo, useMemo and useCallback",
				"State management with Redux Toolkit",
				"Testing components with React Testing Library",
				"Server-side rendering with Next.js",
			},
			PracticalTasks: []string{
				"Build a counter app with increment, decrement and reset buttons using useState",
				"Create a todo list with add, delete and local storage persistence",
				"Build a controlled multi-step registration form with validation",
				"Develop a weather dashboard that fetches data from a public API with error handling",
				"Refactor a prop-drilled component tree to use Context",
				"Write a custom useFetch hook and reuse it in two components",
				"Add client-side routing with three pages and a not-found route",
				"Write unit tests for three components with React Testing Library",
			},
			Projects: []string{
				"Build a personal portfolio site with React Router and a contact form",
				"Create a task management board with drag-and-drop columns",
				"Develop an e-commerce product catalog with filtering, search and a cart",
				"Build a real-time chat client with rooms and typing indicators",
			},
		},
		{
			Category: domain.CategoryPython,
			Family:   domain.FamilyTechnical,
			Topics: []string{
				"Python setup, the REPL and virtual environments",
				"Variables, data types and operators",
				"Control flow with conditionals and loops",
				"Functions, arguments and scope",
				"Lists, tuples, dictionaries and sets",
				"String manipulation and formatting",
				"File handling and context managers",
				"Error handling with exceptions",
				"Modules, packages and pip",
				"Object-oriented programming with classes",
				"Comprehensions, iterators and generators",
				"Decorators and closures",
				"Working with APIs using requests",
				"Data analysis with pandas",
				"Testing with pytest",
				"Concurrency with asyncio",
			},
			PracticalTasks: []string{
				"Write a number guessing game that tracks attempts and high scores",
				"Build a CLI expense tracker that reads and writes CSV files",
				"Create a file organizer that sorts a folder by file type and date",
				"Write a web scraper for a public listings page and save results to JSON",
				"Build a weather API wrapper class with caching and error handling",
				"Analyze a public CSV dataset with pandas and summarize 5 findings",
				"Write pytest tests with fixtures for an existing script",
				"Convert a synchronous downloader to asyncio and measure the speedup",
			},
			Projects: []string{
				"Build a password manager CLI with encrypted storage",
				"Create a REST API with FastAPI and a SQLite database",
				"Develop a data dashboard that automates a weekly report",
				"Publish a small reusable package to TestPyPI",
			},
		},
		{
			Category: domain.CategoryHindi,
			Family:   domain.FamilyLanguage,
			Topics: []string{
				"Devanagari vowels and their sounds",
				"Devanagari consonants and conjuncts",
				"Matras and reading simple words",
				"Greetings and self-introduction",
				"Numbers, days and telling time",
				"Family and relationship vocabulary",
				"Pronouns and the verb hona",
				"Present tense verb conjugation",
				"Postpositions and the oblique case",
				"Past tense and ne construction",
				"Future tense and making plans",
				"Gender and noun agreement",
				"Everyday conversations in shops and markets",
				"Reading short stories and news headlines",
				"Idioms and colloquial expressions",
				"Formal and polite registers",
			},
			PracticalTasks: []string{
				"Write all Devanagari vowels and 10 consonants five times with correct stroke order",
				"Record a 1-minute self-introduction in Hindi and compare it with a native recording",
				"Create 50 flashcards for family, food and travel vocabulary",
				"Write a 100-word paragraph about your daily routine using present tense",
				"Hold a 15-minute conversation with a language exchange partner",
				"Translate a short children's story from Hindi to English",
				"Watch a 10-minute Hindi film clip and list 20 new words with context sentences",
				"Write a short diary entry each day for a week using past tense",
			},
			Projects: []string{
				"Keep a 30-day Hindi journal and have it reviewed by a native speaker",
				"Create an illustrated Hindi vocabulary book for a chosen theme",
				"Record a 5-minute Hindi podcast episode on a topic you enjoy",
			},
		},
		{
			Category: domain.CategoryEnglish,
			Family:   domain.FamilyLanguage,
			Topics: []string{
				"Parts of speech and sentence structure",
				"Present tenses in context",
				"Past tenses and storytelling",
				"Future forms and conditionals",
				"Articles, prepositions and determiners",
				"Phrasal verbs in everyday speech",
				"Pronunciation and word stress",
				"Listening for gist and detail",
				"Vocabulary building with collocations",
				"Paragraph structure and linking words",
				"Formal email and business writing",
				"Reported speech and the passive voice",
				"Debate and expressing opinions",
				"Reading comprehension of news articles",
				"Presentation and public speaking skills",
				"Academic essay writing",
			},
			PracticalTasks: []string{
				"Write 10 sentences for each present tense about your own life",
				"Record yourself reading a news paragraph aloud and mark mispronounced words",
				"Learn 30 phrasal verbs and use each in an original sentence",
				"Summarize a 5-minute podcast episode in 150 words",
				"Write a formal email requesting information and get feedback on it",
				"Hold a 20-minute conversation practice session on a current topic",
				"Rewrite a news article using the passive voice where appropriate",
				"Deliver a 3-minute talk on a familiar topic and record it",
			},
			Projects: []string{
				"Publish a 4-post English blog series on a topic you know well",
				"Prepare and deliver a 10-minute presentation with slides",
				"Write a 1,000-word argumentative essay with peer review",
			},
		},
		{
			Category: domain.CategoryPhotography,
			Family:   domain.FamilyCreative,
			Topics: []string{
				"Camera body, lenses and basic settings",
				"The exposure triangle: aperture, shutter speed and ISO",
				"Focus modes and depth of field",
				"Composition: rule of thirds and leading lines",
				"Natural light and golden hour",
				"White balance and color temperature",
				"Portrait photography fundamentals",
				"Landscape photography techniques",
				"Street photography and candid moments",
				"Artificial lighting and flash",
				"Post-processing in Lightroom",
				"Black and white photography",
				"Long exposure and night photography",
				"Building a cohesive visual style",
			},
			PracticalTasks: []string{
				"Shoot the same scene at 5 different apertures and compare depth of field",
				"Complete a 20-photo walk applying the rule of thirds",
				"Photograph a subject during golden hour and at midday and compare the light",
				"Shoot 10 portraits using only window light",
				"Capture a motion series using fast and slow shutter speeds",
				"Edit 10 RAW images with a consistent preset in Lightroom",
				"Take a 2-hour street photography session and select your best 5 shots",
				"Create 3 long exposure images at night using a tripod",
			},
			Projects: []string{
				"Produce a 12-image photo essay on your neighborhood",
				"Build an online portfolio with 3 themed galleries",
				"Run a mock portrait session for a friend and deliver edited photos",
			},
		},
		{
			Category: domain.CategoryMusic,
			Family:   domain.FamilyCreative,
			Topics: []string{
				"Instrument setup, posture and technique basics",
				"Reading rhythm and note values",
				"Reading notation on the staff",
				"Major scales and key signatures",
				"Intervals and ear training",
				"Basic chords and triads",
				"Chord progressions in popular music",
				"Minor scales and modes",
				"Dynamics, articulation and expression",
				"Improvisation over a backing track",
				"Song structure and arrangement",
				"Recording basics and home studio setup",
				"Songwriting and melody writing",
				"Performance skills and stage presence",
			},
			PracticalTasks: []string{
				"Practice a major scale at 60 bpm with a metronome for 15 minutes",
				"Clap and count 10 rhythm exercises with mixed note values",
				"Learn the I-IV-V-I progression in 3 keys",
				"Transcribe the melody of a simple song by ear",
				"Record yourself playing a piece and list 3 areas to improve",
				"Improvise for 5 minutes over a 12-bar blues backing track",
				"Arrange a familiar song with an intro, verse, chorus and outro",
				"Write an 8-bar melody over a given chord progression",
			},
			Projects: []string{
				"Compose and record an original 2-minute piece",
				"Learn and perform a complete song for a small audience",
				"Produce a 3-track demo with layered parts",
			},
		},
		{
			Category: domain.CategoryGATE,
			Family:   domain.FamilyExam,
			Topics: []string{
				"GATE syllabus and exam pattern analysis",
				"Engineering mathematics: linear algebra",
				"Engineering mathematics: calculus and probability",
				"Discrete mathematics and graph theory",
				"Digital logic",
				"Computer organization and architecture",
				"Programming and data structures",
				"Algorithms and complexity",
				"Theory of computation",
				"Compiler design",
				"Operating systems",
				"Databases and SQL",
				"Computer networks",
				"General aptitude: verbal and numerical ability",
			},
			PracticalTasks: []string{
				"Solve the last 5 years of GATE questions for engineering mathematics",
				"Create a one-page formula sheet for digital logic",
				"Solve 30 numerical-answer questions on computer architecture under timed conditions",
				"Solve 40 previous-year questions on algorithms and data structures",
				"Draw DFA and PDA constructions for 15 theory of computation problems",
				"Solve 25 scheduling and paging problems from operating systems",
				"Write and normalize schemas for 10 database design questions",
				"Take a full-length GATE mock test and analyze every mistake",
			},
			Projects: []string{
				"Complete a subject-wise test series covering every paper section",
				"Build a personal error log with categorized mistakes and fixes",
				"Finish three full-length mock tests under exam conditions",
			},
		},
		{
			Category: domain.CategoryJEE,
			Family:   domain.FamilyExam,
			Topics: []string{
				"JEE syllabus and exam pattern analysis",
				"Physics: kinematics and laws of motion",
				"Physics: work, energy and rotational motion",
				"Physics: electrostatics and current electricity",
				"Physics: optics and modern physics",
				"Chemistry: atomic structure and chemical bonding",
				"Chemistry: thermodynamics and equilibrium",
				"Chemistry: organic reaction mechanisms",
				"Chemistry: coordination compounds and p-block elements",
				"Mathematics: algebra and complex numbers",
				"Mathematics: calculus",
				"Mathematics: coordinate geometry",
				"Mathematics: vectors, 3D geometry and probability",
				"Time management and exam strategy",
			},
			PracticalTasks: []string{
				"Solve 40 kinematics problems from previous JEE papers",
				"Create a reaction mechanism chart for 20 named organic reactions",
				"Solve 30 integration problems under a 60-minute limit",
				"Solve 25 electrostatics problems and review every wrong answer",
				"Make summary notes for inorganic chemistry exceptions",
				"Solve 30 coordinate geometry questions from previous papers",
				"Take a chapter-wise test in each subject and record scores",
				"Attempt a full JEE Main mock paper in 3 hours and analyze accuracy",
			},
			Projects: []string{
				"Complete a 10-paper JEE Main mock series with score tracking",
				"Build a formula and concept revision booklet for all three subjects",
				"Finish two JEE Advanced style papers under exam conditions",
			},
		},
		{
			Category: domain.CategoryUPSC,
			Family:   domain.FamilyExam,
			Topics: []string{
				"UPSC syllabus and exam pattern analysis",
				"Indian polity and the Constitution",
				"Modern Indian history",
				"Ancient and medieval Indian history",
				"Indian and world geography",
				"Indian economy and budgeting",
				"Environment and ecology",
				"Science and technology in current affairs",
				"Art and culture",
				"International relations",
				"Ethics, integrity and aptitude",
				"Essay writing",
				"Answer writing for mains",
				"CSAT: comprehension and reasoning",
			},
			PracticalTasks: []string{
				"Read NCERT polity chapters and make concise notes",
				"Solve 100 previous-year prelims questions on history",
				"Create a map-based revision sheet for Indian geography",
				"Summarize the latest Economic Survey in 2 pages",
				"Write 5 mains answers of 250 words on governance topics",
				"Prepare monthly current affairs notes from a national newspaper",
				"Write one full essay in 3 hours on a previous-year topic",
				"Take a full prelims mock test and analyze accuracy by subject",
			},
			Projects: []string{
				"Complete a prelims test series with subject-wise score tracking",
				"Build a consolidated current affairs compendium for the year",
				"Write and self-evaluate 20 mains answers across all papers",
			},
		},
		{
			Category: domain.CategoryFitness,
			Family:   domain.FamilyLifestyle,
			Topics: []string{
				"Fitness assessment and goal setting",
				"Warm-up and mobility routines",
				"Bodyweight strength fundamentals",
				"Proper squat, hinge and push form",
				"Cardiovascular endurance training",
				"Progressive overload principles",
				"Core stability and posture",
				"Flexibility and stretching",
				"Nutrition for training",
				"Recovery, sleep and rest days",
				"Interval and circuit training",
				"Tracking progress and adjusting the program",
			},
			PracticalTasks: []string{
				"Record baseline push-ups, squats and a 1 km walk or run time",
				"Complete a 20-minute full-body bodyweight workout",
				"Film your squat and push-up form and compare against a reference",
				"Walk or jog 5,000 steps and log energy levels",
				"Complete a 15-minute stretching routine targeting hips and shoulders",
				"Plan a week of balanced meals with a protein target",
				"Complete a 20-minute interval session with 30-second efforts",
				"Retest baseline exercises and compare with week one",
			},
			Projects: []string{
				"Follow a 4-week progressive strength program and log every session",
				"Train for and complete a 5 km run",
				"Design a personal weekly routine balancing strength, cardio and mobility",
			},
		},
		{
			Category: domain.CategoryWeightLoss,
			Family:   domain.FamilyLifestyle,
			Topics: []string{
				"Calorie balance and energy expenditure",
				"Setting a realistic weight loss target",
				"Macronutrients and protein intake",
				"Meal planning and portion control",
				"Reading nutrition labels",
				"Hydration and appetite",
				"Walking and low-impact cardio",
				"Strength training to preserve muscle",
				"Sleep, stress and cravings",
				"Habit building and consistency",
				"Handling plateaus",
				"Maintaining weight long term",
			},
			PracticalTasks: []string{
				"Track everything you eat for 3 days to find your current intake",
				"Calculate your maintenance calories and set a moderate deficit",
				"Prepare 3 high-protein meals for the week ahead",
				"Walk 8,000 steps and log the total",
				"Complete two 30-minute strength sessions this week",
				"Replace two sugary drinks a day with water for a week",
				"Take body measurements and progress photos",
				"Plan a restaurant meal that fits your daily targets",
			},
			Projects: []string{
				"Follow a 4-week meal plan and review the results",
				"Build a personal recipe book of 15 healthy meals",
				"Create a long-term maintenance plan with weekly check-ins",
			},
		},
		{
			Category: domain.CategoryCooking,
			Family:   domain.FamilyLifestyle,
			Topics: []string{
				"Kitchen safety and essential tools",
				"Knife skills and basic cuts",
				"Cooking methods: boiling, sauteing and roasting",
				"Seasoning and balancing flavors",
				"Eggs and breakfast basics",
				"Rice, grains and pasta",
				"Soups and stocks",
				"Meat and poultry cooking",
				"Vegetable preparation",
				"Mother sauces",
				"Baking fundamentals",
				"Meal planning and batch cooking",
				"Plating and presentation",
			},
			PracticalTasks: []string{
				"Practice julienne, dice and chiffonade cuts on three vegetables",
				"Cook scrambled eggs three different ways and compare texture",
				"Make a chicken or vegetable stock from scratch",
				"Cook a stir-fry controlling heat and timing for each ingredient",
				"Make bechamel and turn it into a cheese sauce",
				"Bake a basic white bread loaf from scratch",
				"Roast a tray of seasonal vegetables with two seasoning blends",
				"Batch cook three lunches for the week",
			},
			Projects: []string{
				"Cook a three-course dinner for friends or family",
				"Create a personal cookbook of 10 tested recipes",
				"Recreate a restaurant dish and document each attempt",
			},
		},
	}
}
