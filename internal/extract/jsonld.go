package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// isRecipeNode reports whether a decoded JSON-LD node declares the Recipe
// type, either as a plain string or as one entry of a type array.
func isRecipeNode(node map[string]any) bool {
	switch t := node["@type"].(type) {
	case string:
		return strings.EqualFold(t, "Recipe")
	case []any:
		for _, entry := range t {
			if s, ok := entry.(string); ok && strings.EqualFold(s, "Recipe") {
				return true
			}
		}
	}
	return false
}

// findRecipeNode searches a decoded JSON-LD tree for the first recipe-typed
// node. The closed set of shapes in the wild: a single recipe object, an
// array containing one, a wrapper object holding an @graph array, and an
// array of such wrappers.
func findRecipeNode(tree any) map[string]any {
	switch v := tree.(type) {
	case map[string]any:
		if isRecipeNode(v) {
			return v
		}
		if graph, ok := v["@graph"].([]any); ok {
			for _, entry := range graph {
				if node, ok := entry.(map[string]any); ok && isRecipeNode(node) {
					return node
				}
			}
		}
	case []any:
		for _, entry := range v {
			if node := findRecipeNode(entry); node != nil {
				return node
			}
		}
	}
	return nil
}

var durationPattern = regexp.MustCompile(`(?i)^P(?:\d+D)?T(?:(\d+)H)?(?:(\d+)M)?(?:\d+S)?$`)

// parseDurationMinutes converts an ISO-8601-style duration ("PT1H30M") into
// total minutes. Missing components count as zero; anything unparsable is
// absent rather than zero.
func parseDurationMinutes(field any) *int {
	s, ok := field.(string)
	if !ok {
		return nil
	}
	m := durationPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil || (m[1] == "" && m[2] == "") {
		return nil
	}
	minutes := 0
	if m[1] != "" {
		h, _ := strconv.Atoi(m[1])
		minutes += h * 60
	}
	if m[2] != "" {
		mm, _ := strconv.Atoi(m[2])
		minutes += mm
	}
	return &minutes
}

var firstIntPattern = regexp.MustCompile(`\d+`)

// parseServings pulls the first positive integer out of a yield field,
// which may be a bare number, a string like "4 servings", or an array of
// either.
func parseServings(field any) *int {
	switch v := field.(type) {
	case float64:
		if n := int(v); n > 0 {
			return &n
		}
	case string:
		if m := firstIntPattern.FindString(v); m != "" {
			if n, err := strconv.Atoi(m); err == nil && n > 0 {
				return &n
			}
		}
	case []any:
		for _, entry := range v {
			if n := parseServings(entry); n != nil {
				return n
			}
		}
	}
	return nil
}

var leadingNumberPattern = regexp.MustCompile(`^\d+(?:\.\d+)?`)

// parseNutritionValue extracts the numeric portion of a nutrition sub-field
// ("12g", "240 kcal", or a bare number), rounded to the nearest integer.
func parseNutritionValue(field any) *int {
	switch v := field.(type) {
	case float64:
		n := int(math.Round(v))
		if n >= 0 {
			return &n
		}
	case string:
		if m := leadingNumberPattern.FindString(strings.TrimSpace(v)); m != "" {
			if f, err := strconv.ParseFloat(m, 64); err == nil {
				n := int(math.Round(f))
				return &n
			}
		}
	}
	return nil
}

// stringList coerces a string-or-array field into a trimmed, non-empty
// string slice.
func stringList(field any) []string {
	var out []string
	switch v := field.(type) {
	case string:
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	case []any:
		for _, entry := range v {
			if s, ok := entry.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
	}
	return out
}

// flattenInstructions walks a recipeInstructions value depth-first and
// returns the ordered step texts. Handles a plain string, arrays of
// strings, HowToStep objects (text or name field) and HowToSection objects
// nesting further steps under itemListElement.
func flattenInstructions(field any) []string {
	var out []string
	switch v := field.(type) {
	case string:
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	case []any:
		for _, entry := range v {
			out = append(out, flattenInstructions(entry)...)
		}
	case map[string]any:
		if text, ok := v["text"].(string); ok && strings.TrimSpace(text) != "" {
			out = append(out, strings.TrimSpace(text))
		} else if name, ok := v["name"].(string); ok && strings.TrimSpace(name) != "" {
			// Sections carry their steps under itemListElement; only fall
			// back to name when there is nothing nested to flatten.
			if _, nested := v["itemListElement"]; !nested {
				out = append(out, strings.TrimSpace(name))
			}
		}
		if nested, ok := v["itemListElement"]; ok {
			out = append(out, flattenInstructions(nested)...)
		}
	}
	return out
}

// humanizeLabel turns raw category/cuisine tokens like "main_course" into
// "Main Course".
func humanizeLabel(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
	}
	return strings.Join(words, " ")
}

// humanizeList coerces a string-or-array label field into one humanized,
// comma-joined string.
func humanizeList(field any) string {
	var out []string
	for _, s := range stringList(field) {
		if h := humanizeLabel(s); h != "" {
			out = append(out, h)
		}
	}
	return strings.Join(out, ", ")
}
