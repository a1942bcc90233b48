package recipe

// Summary is one menu listing entry
type Summary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Ingredient is a single recipe line item as the upstream API reports it.
// Quantity stays a string; upstream sends "", "2", "0.5" interchangeably.
type Ingredient struct {
	Name     string
	Quantity string
}

// Detail holds everything a recipe lookup can return. Ingredient-based
// lookups fill Ingredients; title-based lookups fill the nutrition fields.
type Detail struct {
	ID          string
	Title       string
	Ingredients []Ingredient
	Calories    float64
	Protein     float64
	TotalTime   float64
	Region      string
}

// Documented stand-in attributes used whenever the upstream lookup fails.
const (
	DefaultCalories  = 300.0
	DefaultProtein   = 10.0
	DefaultTotalTime = 45.0
	DefaultRegion    = "Standard"
)

// DefaultDetail is the degraded-mode recipe: analysis proceeds on these
// attributes instead of failing the request.
func DefaultDetail() *Detail {
	return &Detail{
		Calories:  DefaultCalories,
		Protein:   DefaultProtein,
		TotalTime: DefaultTotalTime,
		Region:    DefaultRegion,
	}
}

// FallbackMenu is served when the upstream listing is unreachable
func FallbackMenu() []Summary {
	return []Summary{
		{ID: "92757", Title: "Costa Rican Stuffed Tortilla"},
		{ID: "10087", Title: "Dal Rice"},
		{ID: "10112", Title: "Paneer Tikka"},
	}
}
