package extract

// MaxImages is the maximum number of image URLs carried on an extracted recipe.
const MaxImages = 3

// ExtractedRecipe is the canonical result of a successful extraction.
// Optional numeric fields are pointers so that "unknown" stays distinct
// from zero.
type ExtractedRecipe struct {
	Title            string   `json:"title"`
	ImageURLs        []string `json:"image_urls"`
	PrepTimeMinutes  *int     `json:"prep_time_minutes,omitempty"`
	CookTimeMinutes  *int     `json:"cook_time_minutes,omitempty"`
	TotalTimeMinutes *int     `json:"total_time_minutes,omitempty"`
	Servings         *int     `json:"servings,omitempty"`
	IngredientLines  []string `json:"ingredient_lines"`
	InstructionSteps []string `json:"instruction_steps"`
	Cuisine          string   `json:"cuisine,omitempty"`
	Category         string   `json:"category,omitempty"`
	Calories         *int     `json:"calories,omitempty"`
	ProteinGrams     *int     `json:"protein_grams,omitempty"`
	CarbsGrams       *int     `json:"carbs_grams,omitempty"`
	FatGrams         *int     `json:"fat_grams,omitempty"`
	Description      string   `json:"description,omitempty"`
	Notes            string   `json:"notes,omitempty"`
	SourceURL        string   `json:"source_url"`
}

// ParsedIngredient is one free-text ingredient line split into its amount
// and name. Amount is "" when the line carried no parseable quantity; it is
// still textual (e.g. "1 1/2 cups") so compound and ranged amounts survive
// round-tripping to the two-column store.
type ParsedIngredient struct {
	Amount string `json:"amount,omitempty"`
	Name   string `json:"name"`
}
