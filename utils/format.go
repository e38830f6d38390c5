package utils

import (
	"strings"
	"unicode"
)

// Capitalize title-cases every word: first rune upper, rest lower. Extra
// whitespace collapses to single spaces.
func Capitalize(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = upperFirst(strings.ToLower(word))
	}
	return strings.Join(words, " ")
}

// CapitalizeFirstWord upper-cases only the first letter of the text and
// leaves the rest untouched.
func CapitalizeFirstWord(s string) string {
	return upperFirst(strings.TrimSpace(s))
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
