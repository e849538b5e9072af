package gopidgin

import "strings"

// pronunciationGuide is the built-in guide for common pidgin and Hawaiian
// terms. Lexicon entries with their own pronunciation take precedence.
var pronunciationGuide = map[string]string{
	"brah":           `brah (like "bra")`,
	"da kine":        "dah kyne",
	"howzit":         "how-zit",
	"shoots":         "shoots",
	"grinds":         "grindz",
	"pau":            "pow",
	"ono":            "oh-no",
	"broke da mouth": "broke dah mout",
	"lolo":           "low-low",
	"akamai":         "ah-kah-my",
	"wiki wiki":      "wee-kee wee-kee",
	"mauka":          "mow-kah",
	"makai":          "mah-kye",
	"mahalo":         "mah-HAH-loh",
	"keiki":          "KAY-kee",
	"ohana":          "oh-HAH-nah",
	"kokua":          "koh-KOO-ah",
	"aloha":          "ah-LOH-hah",
	"pono":           "POH-noh",
	"manapua":        "mah-nah-POO-ah",
	"slippahs":       "SLIP-pahz",
	"hale":           "HAH-leh",
	"lanai":          "lah-NYE",
	"pupu":           "POO-poo",
}

// Pronunciation pairs a known term with its guide.
type Pronunciation struct {
	Term  string `json:"term"`
	Guide string `json:"guide"`
}

func (p Pronunciation) String() string {
	return p.Term + " = " + p.Guide
}

type pronunciationMap struct {
	guides   map[string]string
	maxWords int
}

func newPronunciationMap(entries []LexiconEntry) *pronunciationMap {
	m := &pronunciationMap{guides: make(map[string]string, len(pronunciationGuide)+len(entries))}
	add := func(term, guide string) {
		key := NormalizeKey(term)
		if key == "" || guide == "" {
			return
		}
		m.guides[key] = guide
		if n := len(strings.Fields(key)); n > m.maxWords {
			m.maxWords = n
		}
	}
	for term, guide := range pronunciationGuide {
		add(term, guide)
	}
	for _, e := range entries {
		add(e.PidginForm, strings.TrimSpace(e.Pronunciation))
	}
	return m
}

// lookup scans text left to right, preferring the longest known term at each
// position. Each term is reported once.
func (m *pronunciationMap) lookup(text string, limit int) []Pronunciation {
	tokens := Tokenize(text)
	for i, t := range tokens {
		tokens[i], _ = splitPunct(t)
	}

	var out []Pronunciation
	seen := make(map[string]bool)
	for i := 0; i < len(tokens); {
		matched := 0
		for n := min(m.maxWords, len(tokens)-i); n >= 1; n-- {
			term := strings.Join(tokens[i:i+n], " ")
			guide, ok := m.guides[term]
			if !ok {
				continue
			}
			if !seen[term] {
				seen[term] = true
				out = append(out, Pronunciation{Term: term, Guide: guide})
				if limit > 0 && len(out) == limit {
					return out
				}
			}
			matched = n
			break
		}
		i += max(matched, 1)
	}
	return out
}

// Pronunciation returns the guide for the first known term in pidginText.
func (idx *Index) Pronunciation(pidginText string) (string, bool) {
	found := idx.pronounce.lookup(pidginText, 1)
	if len(found) == 0 {
		return "", false
	}
	return found[0].Guide, true
}

// Pronunciations returns every known term in pidginText with its guide.
func (idx *Index) Pronunciations(pidginText string) []Pronunciation {
	return idx.pronounce.lookup(pidginText, 0)
}

// FormatPronunciations renders guides as "Pronunciation: a = x, b = y".
func FormatPronunciations(ps []Pronunciation) string {
	if len(ps) == 0 {
		return ""
	}
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return "Pronunciation: " + strings.Join(parts, ", ")
}

// IsSentence reports whether text should be treated as a full sentence: six
// or more words, or closing sentence punctuation.
func IsSentence(text string) bool {
	return len(strings.Fields(text)) >= 6 || endsWithSentencePunct(text)
}
