package extract

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// fracTolerance is how close a scaled value must sit to a whole number or a
// common culinary fraction before we snap to it for display.
const fracTolerance = 0.02

var displayFractions = []struct {
	value float64
	text  string
}{
	{1.0 / 4.0, "1/4"},
	{1.0 / 3.0, "1/3"},
	{1.0 / 2.0, "1/2"},
	{2.0 / 3.0, "2/3"},
	{3.0 / 4.0, "3/4"},
}

// ScaleAmount multiplies the leading numeric portion of an amount string by
// the serving multiplier and formats the result, preferring common culinary
// fractions over decimals. Mixed numbers ("1 1/2") are summed before
// scaling. Any trailing unit or qualifier text is preserved unchanged. When
// no leading numeric token is found the input comes back untouched.
func ScaleAmount(amount string, multiplier float64) string {
	fields := strings.Fields(NormalizeAmount(amount))

	total := 0.0
	consumed := 0
	for _, f := range fields {
		v, ok := numericToken(f)
		if !ok {
			break
		}
		total += v
		consumed++
	}
	if consumed == 0 {
		return amount
	}

	scaled := formatQuantity(total * multiplier)
	if rest := strings.Join(fields[consumed:], " "); rest != "" {
		return scaled + " " + rest
	}
	return scaled
}

// numericToken parses one token as a decimal or a simple fraction.
func numericToken(tok string) (float64, bool) {
	if n, d, ok := strings.Cut(tok, "/"); ok {
		num, err1 := strconv.Atoi(n)
		den, err2 := strconv.Atoi(d)
		if err1 != nil || err2 != nil || den == 0 {
			return 0, false
		}
		return float64(num) / float64(den), true
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func formatQuantity(v float64) string {
	if rounded := math.Round(v); math.Abs(v-rounded) < fracTolerance {
		return strconv.Itoa(int(rounded))
	}

	whole := math.Floor(v)
	part := v - whole
	for _, f := range displayFractions {
		if math.Abs(part-f.value) < fracTolerance {
			if whole == 0 {
				return f.text
			}
			return fmt.Sprintf("%d %s", int(whole), f.text)
		}
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
