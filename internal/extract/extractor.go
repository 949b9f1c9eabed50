package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// browserUserAgent keeps publishers that reject generic clients from
// refusing the fetch.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// Extractor turns a recipe web page into an ExtractedRecipe. It is
// stateless across calls; each Extract is a single bounded fetch plus pure
// mapping, so concurrent use needs no coordination.
type Extractor struct {
	client *resty.Client
	log    *zap.Logger
}

// NewExtractor creates an Extractor whose page fetches are bounded by
// timeout.
func NewExtractor(timeout time.Duration, log *zap.Logger) *Extractor {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", browserUserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	return &Extractor{client: client, log: log}
}

// Extract fetches pageURL, locates an embedded schema.org Recipe node and
// maps it into an ExtractedRecipe. It returns a *FetchError when the page
// cannot be retrieved and ErrNoRecipeFound when no structured data block
// holds a recipe-typed node. Malformed blocks are skipped, not fatal.
func (e *Extractor) Extract(ctx context.Context, pageURL string) (*ExtractedRecipe, error) {
	resp, err := e.client.R().SetContext(ctx).Get(pageURL)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	if resp.IsError() {
		return nil, &FetchError{URL: pageURL, StatusCode: resp.StatusCode()}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		e.log.Warn("page is not parseable as HTML", zap.String("url", pageURL), zap.Error(err))
		return nil, ErrNoRecipeFound
	}

	var node map[string]any
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(i int, s *goquery.Selection) bool {
		var tree any
		if err := json.Unmarshal([]byte(s.Text()), &tree); err != nil {
			e.log.Warn("skipping malformed structured data block",
				zap.String("url", pageURL), zap.Int("block", i), zap.Error(err))
			return true
		}
		if found := findRecipeNode(tree); found != nil {
			node = found
			return false
		}
		return true
	})
	if node == nil {
		return nil, ErrNoRecipeFound
	}

	return mapRecipeNode(node, pageURL), nil
}

// mapRecipeNode maps the divergent field shapes of a recipe node into the
// canonical record. Missing or malformed optional fields are simply left
// absent; only the node itself is mandatory.
func mapRecipeNode(node map[string]any, sourceURL string) *ExtractedRecipe {
	r := &ExtractedRecipe{
		Title:     "Untitled Recipe",
		SourceURL: sourceURL,
	}

	if name, ok := node["name"].(string); ok {
		if name = strings.TrimSpace(name); name != "" {
			r.Title = name
		}
	}

	r.PrepTimeMinutes = parseDurationMinutes(node["prepTime"])
	r.CookTimeMinutes = parseDurationMinutes(node["cookTime"])
	r.TotalTimeMinutes = parseDurationMinutes(node["totalTime"])
	r.Servings = parseServings(node["recipeYield"])

	r.IngredientLines = stringList(node["recipeIngredient"])
	r.InstructionSteps = flattenInstructions(node["recipeInstructions"])

	r.Cuisine = humanizeList(node["recipeCuisine"])
	r.Category = humanizeList(node["recipeCategory"])

	if nutrition, ok := node["nutrition"].(map[string]any); ok {
		r.Calories = parseNutritionValue(nutrition["calories"])
		r.ProteinGrams = parseNutritionValue(nutrition["proteinContent"])
		r.CarbsGrams = parseNutritionValue(nutrition["carbohydrateContent"])
		r.FatGrams = parseNutritionValue(nutrition["fatContent"])
	}

	r.ImageURLs = selectImageURLs(node["image"], MaxImages)

	if desc, ok := node["description"].(string); ok {
		r.Description = strings.TrimSpace(desc)
	}
	note := ""
	for _, key := range []string{"cooksNote", "note", "comment"} {
		if s, ok := node[key].(string); ok && strings.TrimSpace(s) != "" {
			note = strings.TrimSpace(s)
			break
		}
	}
	switch {
	case note != "" && r.Description != "":
		r.Notes = r.Description + "\n\nNotes:\n" + note
	case note != "":
		r.Notes = note
	}

	return r
}
