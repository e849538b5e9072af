package gopidgin

// TokenResult is the outcome of translating one bare token.
type TokenResult struct {
	Text       string
	Confidence float64
	Source     Source
	Category   string
	Difficulty Difficulty
	// Alternates holds up to two further word-table targets.
	Alternates []string
}

// englishRules are the closed-class substitutions applied to English tokens
// missing from the word table.
var englishRules = map[string]string{
	"the":     "da",
	"that":    "dat",
	"that's":  "dat's",
	"this":    "dis",
	"them":    "dem",
	"they":    "dey",
	"there":   "dea",
	"these":   "dese",
	"those":   "dose",
	"with":    "wit",
	"for":     "fo",
	"about":   "bout",
	"going":   "goin",
	"what":    "wat",
	"what's":  "wat's",
	"where":   "wea",
	"to":      "to",
	"you":     "you",
	"your":    "your",
	"little":  "litto",
	"brother": "braddah",
	"sister":  "sistah",
	"nothing": "notting",
	"thing":   "ting",
	"think":   "tink",
}

// pidginRules are the substitutions applied to pidgin tokens missing from the
// word table. "stay" maps to a bare copula and the grammar pass fixes agreement.
var pidginRules = map[string]string{
	"da":      "the",
	"dat":     "that",
	"dat's":   "that's",
	"dats":    "that's",
	"dis":     "this",
	"dem":     "them",
	"dey":     "they",
	"dea":     "there",
	"dese":    "these",
	"dose":    "those",
	"wit":     "with",
	"fo":      "for",
	"bout":    "about",
	"goin":    "going",
	"wat":     "what",
	"wea":     "where",
	"stay":    "is",
	"grindz":  "food",
	"grinds":  "food",
	"ono":     "delicious",
	"choke":   "a lot",
	"pau":     "finished",
	"hana":    "work",
	"neva":    "didn't",
	"gotta":   "have to",
	"litto":   "little",
	"braddah": "brother",
	"sistah":  "sister",
	"notting": "nothing",
	"ting":    "thing",
	"tink":    "think",
	"brah":    "brother",
}

// ruleTable returns the fallback substitutions for a direction.
func ruleTable(dir Direction) map[string]string {
	if dir == PidginToEnglish {
		return pidginRules
	}
	return englishRules
}

// TranslateToken looks a bare, lower-cased token up in the word table, then
// in the direction's rule table. An unknown token is passed through with
// confidence zero.
func (idx *Index) TranslateToken(word string, dir Direction) TokenResult {
	if cands := idx.lookupNormalized(dir, GranularityWord, word); len(cands) > 0 {
		top := cands[0]
		res := TokenResult{
			Text:       top.Target,
			Confidence: wordConfidence(top.Confidence),
			Source:     SourceWord,
			Category:   top.Category,
			Difficulty: top.Difficulty,
		}
		for _, c := range cands[1:] {
			if len(res.Alternates) == 2 {
				break
			}
			res.Alternates = append(res.Alternates, c.Target)
		}
		return res
	}

	if target, ok := ruleTable(dir)[word]; ok {
		return TokenResult{Text: target, Confidence: RuleConfidence, Source: SourceRule}
	}

	return TokenResult{Text: word, Confidence: PassthroughConfidence, Source: SourcePassthrough}
}

// wordConfidence clamps a candidate's own confidence into [0.7, 1].
func wordConfidence(c float64) float64 {
	switch {
	case c <= 0:
		return WordConfidence
	case c < WordConfidence:
		return WordConfidence
	case c > 1:
		return 1
	}
	return c
}
