package pipeline

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

var zeroWidth = strings.NewReplacer(
	"\u200b", "",
	"\u200c", "",
	"\u200d", "",
	"\ufeff", "",
)

// NormalizeText converts engine output to NFC, drops zero-width characters
// and the trailing page separator. Layout whitespace is kept.
func NormalizeText(s string) string {
	s = norm.NFC.String(s)
	s = zeroWidth.Replace(s)
	return strings.TrimRight(s, "\f")
}
