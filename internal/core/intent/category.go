package intent

import "strings"

// Category is one of the six legal practice buckets a session is
// classified into. Once set on a session it is never changed.
type Category string

const (
	CategoryFamily         Category = "family"
	CategoryLabor          Category = "labor"
	CategoryCivil          Category = "civil"
	CategoryAdministrative Category = "administrative"
	CategoryInheritance    Category = "inheritance"
	CategoryGeneral        Category = "general"
)

type bucket struct {
	category Category
	keywords map[string][]string
}

// categoryBuckets are ordered: first sub-keyword match wins.
var categoryBuckets = []bucket{
	{CategoryFamily, map[string][]string{
		"ru": {"развод", "алимент", "брак", "опек", "усыновлен", "семейн"},
		"ky": {"ажырашуу", "алимент", "нике", "камкорчулук", "үй-бүлө"},
		"en": {"divorce", "alimony", "custody", "marriage", "adoption", "family law"},
	}},
	{CategoryLabor, map[string][]string{
		"ru": {"увольнен", "трудов", "зарплат", "работодател", "отпуск", "сокращен"},
		"ky": {"жумуштан", "эмгек", "айлык", "иш берүүчү", "өргүү"},
		"en": {"dismissal", "fired", "salary", "employer", "labor", "employment"},
	}},
	{CategoryInheritance, map[string][]string{
		"ru": {"наследств", "завещан", "наследник"},
		"ky": {"мурас", "керээз", "мураскер"},
		"en": {"inheritance", "will", "testament", "heir"},
	}},
	{CategoryAdministrative, map[string][]string{
		"ru": {"штраф", "лицензи", "миграц", "гражданств", "госорган", "регистрац"},
		"ky": {"айып", "лицензия", "миграция", "жарандык", "каттоо"},
		"en": {"fine", "license", "migration", "citizenship", "registration", "permit"},
	}},
	{CategoryCivil, map[string][]string{
		"ru": {"договор", "сделк", "аренд", "долг", "ущерб", "недвижимост", "имуществ"},
		"ky": {"келишим", "ижара", "карыз", "зыян", "кыймылсыз мүлк", "мүлк"},
		"en": {"contract", "agreement", "rent", "lease", "debt", "damages", "property"},
	}},
}

var categoryNames = map[Category]map[string]string{
	CategoryFamily: {
		"ru": "Семейное право", "ky": "Үй-бүлө укугу", "en": "Family Law",
	},
	CategoryLabor: {
		"ru": "Трудовое право", "ky": "Эмгек укугу", "en": "Labor Law",
	},
	CategoryCivil: {
		"ru": "Гражданское право", "ky": "Жарандык укук", "en": "Civil Law",
	},
	CategoryAdministrative: {
		"ru": "Административное право", "ky": "Административдик укук", "en": "Administrative Law",
	},
	CategoryInheritance: {
		"ru": "Наследственное право", "ky": "Мурас укугу", "en": "Inheritance Law",
	},
	CategoryGeneral: {
		"ru": "Общая консультация", "ky": "Жалпы консультация", "en": "General Inquiry",
	},
}

// DetectCategory classifies a message into one of the six legal buckets.
// The boolean is false when the message carries no legal topic at all.
func DetectCategory(message, language string) (Category, bool) {
	lower := strings.ToLower(message)

	for _, b := range categoryBuckets {
		if containsAny(lower, keywordsFor(b.keywords, language)) {
			return b.category, true
		}
	}
	if containsAny(lower, keywordsFor(genericLegalKeywords, language)) {
		return CategoryGeneral, true
	}
	return "", false
}

// DisplayName returns the localized human-readable name of a category.
func DisplayName(c Category, language string) string {
	names, ok := categoryNames[c]
	if !ok {
		return string(c)
	}
	if name, ok := names[language]; ok {
		return name
	}
	return names["ru"]
}
