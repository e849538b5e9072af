package gopidgin

import (
	"sort"
	"strings"
)

// DefaultSuggestionLimit caps Suggest when no limit is given.
const DefaultSuggestionLimit = 5

// Suggestion is one autocomplete hit.
type Suggestion struct {
	Text     string `json:"text"`
	Target   string `json:"target"`
	Category string `json:"category,omitempty"`
}

// Suggest returns known phrase and sentence keys starting with partial, in
// lexical order. Prefixes shorter than two characters return nothing.
func (idx *Index) Suggest(partial string, dir Direction, limit int) []Suggestion {
	prefix := NormalizeKey(partial)
	if len([]rune(prefix)) < 2 {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	keys := idx.prefixKeys[dir.index()]
	var out []Suggestion
	for i := sort.SearchStrings(keys, prefix); i < len(keys) && len(out) < limit; i++ {
		k := keys[i]
		if !strings.HasPrefix(k, prefix) {
			break
		}
		c := idx.topCandidate(dir, k)
		out = append(out, Suggestion{Text: k, Target: c.Target, Category: c.Category})
	}
	return out
}

// topCandidate prefers the phrase table over the sentence table.
func (idx *Index) topCandidate(dir Direction, key string) TranslationCandidate {
	if cands := idx.lookupNormalized(dir, GranularityPhrase, key); len(cands) > 0 {
		return cands[0]
	}
	if cands := idx.lookupNormalized(dir, GranularitySentence, key); len(cands) > 0 {
		return cands[0]
	}
	return TranslationCandidate{}
}

// PhrasesByCategory returns curated phrases and sentences tagged with
// category, in lexicon order.
func (idx *Index) PhrasesByCategory(category string, limit int) []Pair {
	pairs := idx.categories[category]
	if limit > 0 && len(pairs) > limit {
		pairs = pairs[:limit]
	}
	return append([]Pair(nil), pairs...)
}

// Categories lists the categories that have curated phrases, sorted.
func (idx *Index) Categories() []string {
	out := make([]string, 0, len(idx.categories))
	for c := range idx.categories {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
