package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s and strips diacritics so "Žiline" and "ziline" compare
// equal. Whitespace runs collapse to a single space.
func Fold(s string) string {
	if s == "" {
		return ""
	}
	// transform chains keep state, so one is built per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		folded = strings.ToLower(s)
	}
	return strings.Join(strings.Fields(folded), " ")
}

// Words folds s, turns punctuation into spaces and pads the result with one
// space on each side, so keywords with a leading or trailing space only match
// at word boundaries. Text without any letters or digits yields "".
func Words(s string) string {
	spaced := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, Fold(s))
	fields := strings.Fields(spaced)
	if len(fields) == 0 {
		return ""
	}
	return " " + strings.Join(fields, " ") + " "
}

// ContainsAny reports whether folded text contains any of the keywords.
// Keywords are expected to be folded already.
func ContainsAny(text string, keywords []string) bool {
	return MatchedKeyword(text, keywords) != ""
}

// MatchedKeyword returns the first keyword, in slice order, contained in text
func MatchedKeyword(text string, keywords []string) string {
	if text == "" {
		return ""
	}
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			return kw
		}
	}
	return ""
}

// FoldAll folds every keyword in place and returns the slice
func FoldAll(keywords []string) []string {
	for i, kw := range keywords {
		keywords[i] = Fold(kw)
	}
	return keywords
}
