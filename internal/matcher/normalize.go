package matcher

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// normalizeText prepares roster names and schedule fragments for comparison:
// uppercase, diacritics stripped via NFD decomposition (Ñ collapses to N that
// way), the '?' corruption marker mapped to N, everything but A-Z and spaces
// dropped, whitespace collapsed.
func normalizeText(text string) string {
	decomposed := norm.NFD.String(strings.ToUpper(text))

	var b strings.Builder
	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining marks from the decomposition
		case r == '?':
			b.WriteRune('N')
		case (r >= 'A' && r <= 'Z') || r == ' ':
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
