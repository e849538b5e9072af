package gopidgin

import (
	"regexp"
	"strings"
)

// Rule is one ordered grammar rewrite.
type Rule struct {
	Name      string
	Direction Direction
	Pattern   *regexp.Regexp
	Replace   string
}

// Apply rewrites every match of the rule in s.
func (r Rule) Apply(s string) string {
	return r.Pattern.ReplaceAllString(s, r.Replace)
}

func rule(dir Direction, name, pattern, replace string) Rule {
	return Rule{Name: name, Direction: dir, Pattern: regexp.MustCompile(pattern), Replace: replace}
}

// grammarRules run top to bottom. Later rules see the output of earlier ones.
var grammarRules = []Rule{
	// English to pidgin. Patterns also accept what the token rules emit
	// ("dey", "goin").
	rule(EnglishToPidgin, "copula-i", `(?i)\b(?:i am|i'm)\b`, "I stay"),
	rule(EnglishToPidgin, "copula-you", `(?i)\b(?:you are|you're)\b`, "you stay"),
	rule(EnglishToPidgin, "copula-he-she", `(?i)\b(he|she) is\b`, "${1} stay"),
	rule(EnglishToPidgin, "copula-they", `(?i)\b(?:they|dey) are\b|\bthey're\b`, "dey stay"),
	rule(EnglishToPidgin, "copula-we", `(?i)\b(?:we are|we're)\b`, "we stay"),
	rule(EnglishToPidgin, "going-to", `(?i)\b(goin'?g?)(?: to)+\b`, "${1}"),
	rule(EnglishToPidgin, "negation-present", `(?i)\b(?:don't|doesn't|dont|doesnt)\b`, "no"),
	rule(EnglishToPidgin, "negation-past", `(?i)\b(?:didn't|didnt)\b`, "neva"),
	rule(EnglishToPidgin, "modal-gotta", `(?i)\b(?:have|has)(?: to)+\b`, "gotta"),
	rule(EnglishToPidgin, "intensifier", `(?i)\b(?:very|really)\b`, "real"),
	rule(EnglishToPidgin, "quantity", `(?i)\b(?:a lot of|many)\b`, "choke"),
	rule(EnglishToPidgin, "pronoun-i", `\bi\b`, "I"),
	rule(EnglishToPidgin, "collapse-question", `\?{2,}`, "?"),

	// Pidgin to English.
	rule(PidginToEnglish, "modal-cannot", `(?i)\bno can\b`, "cannot"),
	rule(PidginToEnglish, "want-to", `(?i)\blike (go|eat)\b`, "want to ${1}"),
	rule(PidginToEnglish, "copula-i", `(?i)\bi (?:is|stay)\b`, "I am"),
	rule(PidginToEnglish, "copula-plural", `(?i)\b(you|they|we) (?:is|stay)\b`, "${1} are"),
	rule(PidginToEnglish, "copula-singular", `(?i)\b(he|she|it) stay\b`, "${1} is"),
	rule(PidginToEnglish, "double-negative", `(?i)\b(?:no\s+)+(don't|doesn't)\b`, "${1}"),
	rule(PidginToEnglish, "duplicate-the", `(?i)\b(the)(?:\s+the)+\b`, "${1}"),
	rule(PidginToEnglish, "duplicate-a", `(?i)\b(a)(?:\s+a)+\b`, "${1}"),
	rule(PidginToEnglish, "pronoun-i", `\bi\b`, "I"),
	rule(PidginToEnglish, "collapse-question", `\?{2,}`, "?"),
}

// Rules returns the ordered grammar rules for a direction.
func Rules(dir Direction) []Rule {
	var out []Rule
	for _, r := range grammarRules {
		if r.Direction == dir {
			out = append(out, r)
		}
	}
	return out
}

// Normalize applies the direction's grammar rules to assembled output and
// capitalizes the first letter. Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string, dir Direction) string {
	return NormalizeSentence(text, "", dir)
}

// NormalizeSentence is Normalize plus the rules that depend on the source
// sentence. Only English questions translated to pidgin get a tag.
func NormalizeSentence(text, source string, dir Direction) string {
	out := strings.Join(strings.Fields(text), " ")
	for _, r := range grammarRules {
		if r.Direction == dir {
			out = r.Apply(out)
		}
	}
	if dir == EnglishToPidgin {
		out = questionTag(out, source)
	}
	return capitalizeFirst(out)
}

var (
	tagYeah  = ", yeah?"
	tagOWat  = ", o wat?"
	whPrefix = regexp.MustCompile(`(?i)^\s*(?:how|what|where|wat|wea)\b`)
)

// questionTag appends the confirmatory tag when the source was a question.
func questionTag(out, source string) string {
	if !strings.HasSuffix(strings.TrimSpace(source), "?") {
		return out
	}
	lower := strings.ToLower(out)
	if strings.HasSuffix(lower, tagYeah) || strings.HasSuffix(lower, tagOWat) {
		return out
	}
	base := strings.TrimRight(out, "?!. ")
	if base == "" {
		return out
	}
	if whPrefix.MatchString(source) {
		return base + tagOWat
	}
	return base + tagYeah
}
