package extract

import "strings"

// vulgarFractions maps unicode fraction glyphs to their ASCII n/d form.
var vulgarFractions = map[rune]string{
	'¼': "1/4",
	'½': "1/2",
	'¾': "3/4",
	'⅓': "1/3",
	'⅔': "2/3",
	'⅕': "1/5",
	'⅖': "2/5",
	'⅗': "3/5",
	'⅘': "4/5",
	'⅙': "1/6",
	'⅚': "5/6",
	'⅐': "1/7",
	'⅛': "1/8",
	'⅜': "3/8",
	'⅝': "5/8",
	'⅞': "7/8",
	'⅑': "1/9",
	'⅒': "1/10",
}

// NormalizeAmount canonicalizes amount text ahead of pattern matching:
// unicode vulgar fractions become ASCII "n/d", em and en dashes become "-",
// and whitespace runs collapse to single spaces. Unmapped characters pass
// through unchanged, and normalizing twice is a no-op.
func NormalizeAmount(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '–' || r == '—':
			b.WriteByte('-')
		default:
			if frac, ok := vulgarFractions[r]; ok {
				// "1½" should read "1 1/2", not "11/2".
				if b.Len() > 0 {
					prev := b.String()
					last := prev[len(prev)-1]
					if last >= '0' && last <= '9' {
						b.WriteByte(' ')
					}
				}
				b.WriteString(frac)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
