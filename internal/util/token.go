package util

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeToken folds a user-typed token to its canonical form.
//   - Trims surrounding whitespace
//   - Applies NFKC, so full-width input like "Ｃ３" becomes "C3"
//   - Upper-cases
func NormalizeToken(s string) string {
	s = strings.TrimSpace(s)
	s = norm.NFKC.String(s)
	return strings.ToUpper(s)
}
