package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeTree(t *testing.T, raw string) any {
	t.Helper()
	var tree any
	require.NoError(t, json.Unmarshal([]byte(raw), &tree))
	return tree
}

func TestFindRecipeNodeShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"single object", `{"@type":"Recipe","name":"Tacos"}`},
		{"type array", `{"@type":["Recipe","Thing"],"name":"Tacos"}`},
		{"array containing one", `[{"@type":"WebSite"},{"@type":"Recipe","name":"Tacos"}]`},
		{"graph wrapper", `{"@context":"https://schema.org","@graph":[{"@type":"WebPage"},{"@type":"Recipe","name":"Tacos"}]}`},
		{"array of wrappers", `[{"@graph":[{"@type":"WebPage"}]},{"@graph":[{"@type":"Recipe","name":"Tacos"}]}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := findRecipeNode(decodeTree(t, tt.raw))
			require.NotNil(t, node)
			assert.Equal(t, "Tacos", node["name"])
		})
	}
}

func TestFindRecipeNodeAbsent(t *testing.T) {
	trees := []string{
		`{"@type":"WebSite"}`,
		`[{"@type":"BreadcrumbList"}]`,
		`{"@graph":[{"@type":"Article"}]}`,
		`"just a string"`,
	}
	for _, raw := range trees {
		assert.Nil(t, findRecipeNode(decodeTree(t, raw)), "tree %s", raw)
	}
}

func TestParseDurationMinutes(t *testing.T) {
	tests := []struct {
		in   any
		want *int
	}{
		{"PT30M", intPtr(30)},
		{"PT1H", intPtr(60)},
		{"PT1H30M", intPtr(90)},
		{"PT2H15M30S", intPtr(135)},
		{"P0DT0H45M", intPtr(45)},
		{"30 minutes", nil},
		{"PT", nil},
		{"", nil},
		{nil, nil},
		{12.0, nil},
	}
	for _, tt := range tests {
		got := parseDurationMinutes(tt.in)
		if tt.want == nil {
			assert.Nil(t, got, "input %v", tt.in)
		} else {
			require.NotNil(t, got, "input %v", tt.in)
			assert.Equal(t, *tt.want, *got)
		}
	}
}

func TestParseServings(t *testing.T) {
	tests := []struct {
		in   any
		want *int
	}{
		{4.0, intPtr(4)},
		{"4", intPtr(4)},
		{"Serves 6", intPtr(6)},
		{"4 to 6 servings", intPtr(4)},
		{[]any{"8", "8 servings"}, intPtr(8)},
		{"a few", nil},
		{0.0, nil},
		{nil, nil},
	}
	for _, tt := range tests {
		got := parseServings(tt.in)
		if tt.want == nil {
			assert.Nil(t, got, "input %v", tt.in)
		} else {
			require.NotNil(t, got, "input %v", tt.in)
			assert.Equal(t, *tt.want, *got)
		}
	}
}

func TestParseNutritionValue(t *testing.T) {
	tests := []struct {
		in   any
		want *int
	}{
		{"12g", intPtr(12)},
		{"11.6 g", intPtr(12)},
		{"240 kcal", intPtr(240)},
		{240.0, intPtr(240)},
		{"about right", nil},
		{nil, nil},
	}
	for _, tt := range tests {
		got := parseNutritionValue(tt.in)
		if tt.want == nil {
			assert.Nil(t, got, "input %v", tt.in)
		} else {
			require.NotNil(t, got, "input %v", tt.in)
			assert.Equal(t, *tt.want, *got)
		}
	}
}

func TestFlattenInstructionsShapes(t *testing.T) {
	want := []string{"Chop the onions.", "Cook the onions.", "Serve."}

	flatStrings := decodeTree(t, `["Chop the onions.","Cook the onions.","Serve."]`)
	stepObjects := decodeTree(t, `[
		{"@type":"HowToStep","text":"Chop the onions."},
		{"@type":"HowToStep","text":"Cook the onions."},
		{"@type":"HowToStep","text":"Serve."}
	]`)
	sections := decodeTree(t, `[
		{"@type":"HowToSection","name":"Prep","itemListElement":[
			{"@type":"HowToStep","text":"Chop the onions."}
		]},
		{"@type":"HowToSection","name":"Cook","itemListElement":[
			{"@type":"HowToStep","text":"Cook the onions."},
			{"@type":"HowToStep","text":"Serve."}
		]}
	]`)

	// All three publisher shapes flatten to the same ordered sequence.
	assert.Equal(t, want, flattenInstructions(flatStrings))
	assert.Equal(t, want, flattenInstructions(stepObjects))
	assert.Equal(t, want, flattenInstructions(sections))

	// A single string is a one-step recipe.
	assert.Equal(t, []string{"Cook it."}, flattenInstructions("Cook it."))

	// Steps with only a name fall back to it.
	assert.Equal(t, []string{"Serve warm."},
		flattenInstructions([]any{map[string]any{"name": "Serve warm."}}))
}

func TestHumanizeList(t *testing.T) {
	assert.Equal(t, "Main Course", humanizeList("main_course"))
	assert.Equal(t, "Tex Mex, Comfort Food", humanizeList([]any{"tex-mex", "comfort food"}))
	assert.Equal(t, "", humanizeList(nil))
}

func intPtr(n int) *int { return &n }
