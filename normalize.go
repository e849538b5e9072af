package gopidgin

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// trailingPunct is the set of sentence punctuation carried across translation.
const trailingPunct = ".,!?;:"

var quoteReplacer = strings.NewReplacer(
	"’", "'", // right single quotation mark
	"‘", "'",
	"ʼ", "'", // modifier letter apostrophe
	"“", `"`,
	"”", `"`,
)

// NormalizeKey lower-cases, NFC-normalizes, unifies apostrophes and collapses
// whitespace. Every lookup table key goes through it.
func NormalizeKey(s string) string {
	s = norm.NFC.String(s)
	s = quoteReplacer.Replace(s)
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Tokenize splits text on whitespace and lower-cases every token.
func Tokenize(text string) []string {
	key := NormalizeKey(text)
	if key == "" {
		return nil
	}
	return strings.Split(key, " ")
}

// surfaceTokens splits text exactly like Tokenize but keeps the casing.
func surfaceTokens(text string) []string {
	return strings.Fields(quoteReplacer.Replace(norm.NFC.String(text)))
}

// splitPunct separates trailing sentence punctuation from a token.
// A token made only of punctuation is returned as its own bare word.
func splitPunct(token string) (bare, punct string) {
	bare = strings.TrimRight(token, trailingPunct)
	if bare == "" {
		return token, ""
	}
	return bare, token[len(bare):]
}

// capitalizeFirst upper-cases the first letter of s.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// endsWithSentencePunct reports whether text ends in '.', '!' or '?'.
func endsWithSentencePunct(text string) bool {
	t := strings.TrimSpace(text)
	if t == "" {
		return false
	}
	switch t[len(t)-1] {
	case '.', '!', '?':
		return true
	}
	return false
}
