package domain

// Category classifies a saved link. The model is asked to answer with one of
// the known values; its text is preserved verbatim on the record, so Known
// may be false for drifting model output.
type Category string

const (
	CategoryTechnology    Category = "Technology"
	CategoryBusiness      Category = "Business"
	CategoryScience       Category = "Science"
	CategoryHealth        Category = "Health"
	CategoryEntertainment Category = "Entertainment"
	CategorySports        Category = "Sports"
	CategoryPolitics      Category = "Politics"
	CategoryEducation     Category = "Education"
	CategoryEnvironment   Category = "Environment"
	CategoryOther         Category = "Other"
)

// Categories lists the closed vocabulary, in prompt order.
var Categories = []Category{
	CategoryTechnology,
	CategoryBusiness,
	CategoryScience,
	CategoryHealth,
	CategoryEntertainment,
	CategorySports,
	CategoryPolitics,
	CategoryEducation,
	CategoryEnvironment,
	CategoryOther,
}

var categoryIcons = map[Category]string{
	CategoryTechnology:    "💻",
	CategoryBusiness:      "💼",
	CategoryScience:       "🔬",
	CategoryHealth:        "🏥",
	CategoryEntertainment: "🎭",
	CategorySports:        "⚽",
	CategoryPolitics:      "🏛️",
	CategoryEducation:     "📚",
	CategoryEnvironment:   "🌱",
}

func (c Category) Known() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Normalized maps anything outside the closed vocabulary to Other.
func (c Category) Normalized() Category {
	if c.Known() {
		return c
	}
	return CategoryOther
}

// Icon returns the display glyph for the category's normalized value.
func (c Category) Icon() string {
	if icon, ok := categoryIcons[c.Normalized()]; ok {
		return icon
	}
	return "📄"
}
