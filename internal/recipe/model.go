package recipe

import (
	"time"

	"ladle/internal/extract"
)

// Ingredient is one stored ingredient: the parsed amount and name columns.
// Amount stays textual so compound quantities like "1 (14.5 ounce) can"
// survive and can be rescaled at display time.
type Ingredient struct {
	Amount string `json:"amount,omitempty"`
	Name   string `json:"name"`
}

// Recipe is the persisted recipe record. Optional numeric fields are
// pointers so a NULL column round-trips as "unknown" rather than zero.
type Recipe struct {
	ID               string       `json:"id" db:"id"`
	Title            string       `json:"title" db:"title"`
	SourceURL        string       `json:"source_url" db:"source_url"`
	ImageURLs        []string     `json:"image_urls"`
	Ingredients      []Ingredient `json:"ingredients"`
	Instructions     []string     `json:"instructions"`
	PrepTimeMinutes  *int         `json:"prep_time_minutes,omitempty" db:"prep_time_minutes"`
	CookTimeMinutes  *int         `json:"cook_time_minutes,omitempty" db:"cook_time_minutes"`
	TotalTimeMinutes *int         `json:"total_time_minutes,omitempty" db:"total_time_minutes"`
	Servings         *int         `json:"servings,omitempty" db:"servings"`
	Cuisine          string       `json:"cuisine,omitempty" db:"cuisine"`
	Category         string       `json:"category,omitempty" db:"category"`
	Calories         *int         `json:"calories,omitempty" db:"calories"`
	ProteinGrams     *int         `json:"protein_grams,omitempty" db:"protein_grams"`
	CarbsGrams       *int         `json:"carbs_grams,omitempty" db:"carbs_grams"`
	FatGrams         *int         `json:"fat_grams,omitempty" db:"fat_grams"`
	Description      string       `json:"description,omitempty" db:"description"`
	Notes            string       `json:"notes,omitempty" db:"notes"`
	CreatedAt        time.Time    `json:"created_at" db:"created_at"`
}

// FromExtracted converts a freshly extracted recipe into a persistable
// record, parsing each raw ingredient line into its amount/name pair.
// Empty lines are filtered out here; the store never sees them. The caller
// assigns the ID and the rehosted image URLs.
func FromExtracted(e *extract.ExtractedRecipe) *Recipe {
	r := &Recipe{
		Title:            e.Title,
		SourceURL:        e.SourceURL,
		ImageURLs:        e.ImageURLs,
		Instructions:     e.InstructionSteps,
		PrepTimeMinutes:  e.PrepTimeMinutes,
		CookTimeMinutes:  e.CookTimeMinutes,
		TotalTimeMinutes: e.TotalTimeMinutes,
		Servings:         e.Servings,
		Cuisine:          e.Cuisine,
		Category:         e.Category,
		Calories:         e.Calories,
		ProteinGrams:     e.ProteinGrams,
		CarbsGrams:       e.CarbsGrams,
		FatGrams:         e.FatGrams,
		Description:      e.Description,
		Notes:            e.Notes,
	}
	for _, line := range e.IngredientLines {
		parsed := extract.ParseIngredientLine(line)
		if parsed.Name == "" {
			continue
		}
		r.Ingredients = append(r.Ingredients, Ingredient{Amount: parsed.Amount, Name: parsed.Name})
	}
	return r
}
