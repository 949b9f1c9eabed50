package extract

import (
	"regexp"
	"strings"
)

// amountPattern matches a leading amount expression followed by the rest of
// the line. An amount is an integer, decimal, simple fraction or mixed
// number, optionally ranged with "-" or "to", optionally trailed by a
// parenthetical aside like "(14.5 ounce can)". The required whitespace after
// the amount is what keeps look-alikes such as "2% milk" from matching.
var amountPattern = regexp.MustCompile(`(?i)^((?:\d+ \d+/\d+|\d+/\d+|\d+(?:\.\d+)?)(?:\s*(?:-|to)\s*(?:\d+ \d+/\d+|\d+/\d+|\d+(?:\.\d+)?))?(?:\s*\([^)]+\))?)\s+(.+)$`)

// unitWords is the fixed culinary unit vocabulary, all lowercase.
var unitWords = map[string]bool{
	"cup": true, "cups": true,
	"tablespoon": true, "tablespoons": true, "tbsp": true,
	"teaspoon": true, "teaspoons": true, "tsp": true,
	"ounce": true, "ounces": true, "oz": true,
	"pound": true, "pounds": true, "lb": true, "lbs": true,
	"gram": true, "grams": true, "g": true,
	"kilogram": true, "kilograms": true, "kg": true,
	"milliliter": true, "milliliters": true, "millilitre": true, "millilitres": true, "ml": true,
	"liter": true, "liters": true, "litre": true, "litres": true, "l": true,
	"pinch": true, "pinches": true,
	"dash": true, "dashes": true,
	"clove": true, "cloves": true,
	"piece": true, "pieces": true,
	"slice": true, "slices": true,
	"can": true, "cans": true,
	"package": true, "packages": true,
}

func isUnitWord(w string) bool {
	return unitWords[strings.ToLower(strings.TrimRight(w, ".,"))]
}

// ParseIngredientLine splits one free-text ingredient line into an amount
// and a name. The line is normalized first; then an amount expression with
// an optional unit word is peeled off the front. When the amount grammar
// does not cleanly terminate the whole line becomes the name, which keeps
// entries like "Salt to taste" intact.
func ParseIngredientLine(line string) ParsedIngredient {
	norm := NormalizeAmount(line)
	if norm == "" {
		return ParsedIngredient{}
	}

	m := amountPattern.FindStringSubmatch(norm)
	if m == nil {
		return ParsedIngredient{Name: norm}
	}
	amount := strings.TrimSpace(m[1])
	rest := strings.TrimSpace(m[2])

	// A unit word is only consumed when something is left over to serve as
	// the name; "2 cups" alone keeps "cups" as the name.
	fields := strings.Fields(rest)
	if len(fields) > 1 && isUnitWord(fields[0]) {
		return ParsedIngredient{
			Amount: amount + " " + fields[0],
			Name:   strings.Join(fields[1:], " "),
		}
	}
	return ParsedIngredient{Amount: amount, Name: rest}
}
