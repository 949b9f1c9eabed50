package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleAmount(t *testing.T) {
	tests := []struct {
		amount     string
		multiplier float64
		want       string
	}{
		{"1/2", 2, "1"},
		{"1", 0.5, "1/2"},
		{"1 1/2", 2, "3"},
		{"2", 2, "4"},
		{"1/4", 2, "1/2"},
		{"1/3", 2, "2/3"},
		{"3", 0.25, "3/4"},
		{"1 1/2", 0.5, "3/4"},
		{"2.5", 2, "5"},
		{"1.1", 1, "1.1"},

		// Trailing unit text is preserved.
		{"2 cups", 2, "4 cups"},
		{"1/2 tsp", 3, "1 1/2 tsp"},
		{"1 (14.5 ounce) can", 2, "2 (14.5 ounce) can"},

		// No leading numeric token: scaling is a no-op.
		{"a splash", 2, "a splash"},
		{"2-3", 2, "2-3"},
		{"", 2, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ScaleAmount(tt.amount, tt.multiplier),
			"amount %q x %v", tt.amount, tt.multiplier)
	}
}

func TestScaleAmountIdentity(t *testing.T) {
	// Multiplier 1 must reproduce the numeric value; formatting may
	// normalize.
	tests := []struct {
		amount string
		want   string
	}{
		{"2", "2"},
		{"2.0", "2"},
		{"1/2", "1/2"},
		{"1 1/2", "1 1/2"},
		{"3 cups", "3 cups"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ScaleAmount(tt.amount, 1))
	}
}
