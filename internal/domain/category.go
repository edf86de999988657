package domain

// Category is a classified subject bucket. Every category except General has
// a curriculum entry.
type Category string

const (
	CategoryDSA         Category = "dsa"
	CategoryReact       Category = "react"
	CategoryPython      Category = "python"
	CategoryHindi       Category = "hindi"
	CategoryEnglish     Category = "english"
	CategoryPhotography Category = "photography"
	CategoryMusic       Category = "music"
	CategoryGATE        Category = "gate"
	CategoryJEE         Category = "jee"
	CategoryUPSC        Category = "upsc"
	CategoryFitness     Category = "fitness"
	CategoryWeightLoss  Category = "weight_loss"
	CategoryCooking     Category = "cooking"
	CategoryGeneral     Category = "general"
)

// Family groups categories that share phrasing tables.
type Family string

const (
	FamilyLanguage  Family = "language"
	FamilyCreative  Family = "creative"
	FamilyExam      Family = "exam"
	FamilyLifestyle Family = "lifestyle"
	FamilyTechnical Family = "technical"
)

// ValidFamilies is the canonical set of accepted family strings.
var ValidFamilies = map[Family]bool{
	FamilyLanguage: true, FamilyCreative: true, FamilyExam: true,
	FamilyLifestyle: true, FamilyTechnical: true,
}
