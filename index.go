package gopidgin

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sort"
	"strconv"
	"strings"
)

// LookupTable maps a normalized key to its ordered candidates.
type LookupTable map[string][]TranslationCandidate

// Index holds the six direction/granularity tables built from a lexicon.
// It is immutable once BuildIndex returns.
type Index struct {
	tables      [2][3]LookupTable
	prefixKeys  [2][]string // sorted phrase and sentence keys, for Suggest
	categories  map[string][]Pair
	pronounce   *pronunciationMap
	entries     []LexiconEntry
	fingerprint string
	stats       IndexStats
}

// IndexStats summarizes the tables of an Index.
type IndexStats struct {
	Entries   int
	Phrases   int
	Sentences int
	// Keys per [direction][granularity].
	Keys [2][3]int
}

// BuildIndex validates the lexicon and builds all lookup tables.
//
// Dictionary entries are inserted first, so they take priority over curated
// phrases, which in turn outrank curated sentences. A (key, target) pair that
// already exists is skipped. Every malformed record is reported; the index is
// only returned when the lexicon is clean.
func BuildIndex(lex Lexicon) (*Index, error) {
	if err := validateLexicon(lex); err != nil {
		return nil, err
	}

	idx := &Index{categories: make(map[string][]Pair)}
	for d := 0; d < 2; d++ {
		for g := 0; g < 3; g++ {
			idx.tables[d][g] = make(LookupTable)
		}
	}

	for _, e := range lex.Entries {
		idx.addEntry(e)
	}
	for _, p := range lex.Phrases {
		idx.addPair(p, SourcePhrase)
	}
	for _, s := range lex.Sentences {
		idx.addPair(s, SourceExactSentence)
	}

	idx.entries = append([]LexiconEntry(nil), lex.Entries...)
	idx.pronounce = newPronunciationMap(lex.Entries)
	idx.fingerprint = fingerprintLexicon(lex)
	idx.stats.Entries = len(lex.Entries)
	idx.stats.Phrases = len(lex.Phrases)
	idx.stats.Sentences = len(lex.Sentences)

	for d := 0; d < 2; d++ {
		seen := make(map[string]bool)
		for g := 0; g < 3; g++ {
			idx.stats.Keys[d][g] = len(idx.tables[d][g])
			if g == int(GranularityWord) {
				continue
			}
			for k := range idx.tables[d][g] {
				if !seen[k] {
					seen[k] = true
					idx.prefixKeys[d] = append(idx.prefixKeys[d], k)
				}
			}
		}
		sort.Strings(idx.prefixKeys[d])
	}

	idx.aliasClosingPunct()
	return idx, nil
}

func validateLexicon(lex Lexicon) error {
	var errs []error
	for i, e := range lex.Entries {
		if strings.TrimSpace(e.PidginForm) == "" {
			errs = append(errs, &LexiconError{Kind: "entry", Index: i, Field: "pidgin", Message: "must be non-empty"})
		}
		if len(e.EnglishMeanings) == 0 {
			errs = append(errs, &LexiconError{Kind: "entry", Index: i, Field: "english", Message: "needs at least one meaning"})
			continue
		}
		if strings.TrimSpace(e.EnglishMeanings[0]) == "" {
			errs = append(errs, &LexiconError{Kind: "entry", Index: i, Field: "english", Message: "primary meaning must be non-empty"})
		}
	}
	check := func(kind string, pairs []Pair) {
		for i, p := range pairs {
			if strings.TrimSpace(p.English) == "" {
				errs = append(errs, &LexiconError{Kind: kind, Index: i, Field: "english", Message: "must be non-empty"})
			}
			if strings.TrimSpace(p.Pidgin) == "" {
				errs = append(errs, &LexiconError{Kind: kind, Index: i, Field: "pidgin", Message: "must be non-empty"})
			}
			if p.Confidence < 0 || p.Confidence > 1 {
				errs = append(errs, &LexiconError{Kind: kind, Index: i, Field: "confidence", Message: "must be within [0,1]"})
			}
		}
	}
	check("phrase", lex.Phrases)
	check("sentence", lex.Sentences)
	return errors.Join(errs...)
}

// addEntry indexes one dictionary entry in both directions.
func (idx *Index) addEntry(e LexiconEntry) {
	pidgin := strings.TrimSpace(e.PidginForm)
	base := TranslationCandidate{
		Source:     SourceWord,
		Category:   e.Category,
		Difficulty: e.Difficulty,
	}

	for _, meaning := range e.EnglishMeanings {
		for _, key := range meaningKeys(meaning) {
			c := base
			c.Target = pidgin
			idx.insert(EnglishToPidgin, key, c)
		}
	}

	c := base
	c.Target = primaryMeaning(e.EnglishMeanings[0])
	idx.insert(PidginToEnglish, NormalizeKey(pidgin), c)
}

// addPair indexes a curated phrase or sentence in both directions.
func (idx *Index) addPair(p Pair, src Source) {
	c := TranslationCandidate{
		Confidence: p.Confidence,
		Source:     src,
		Category:   p.Category,
		Difficulty: p.Difficulty,
	}

	toPidgin := c
	toPidgin.Target = strings.TrimSpace(p.Pidgin)
	idx.insertPair(EnglishToPidgin, NormalizeKey(p.English), toPidgin, src)

	toEnglish := c
	toEnglish.Target = strings.TrimSpace(p.English)
	idx.insertPair(PidginToEnglish, NormalizeKey(p.Pidgin), toEnglish, src)

	if p.Category != "" {
		idx.categories[p.Category] = append(idx.categories[p.Category], p)
	}
}

// insert files a dictionary-derived candidate: single-token keys go to the
// word table, multi-token keys to the phrase table, and every key is also an
// exact-match key.
func (idx *Index) insert(dir Direction, key string, c TranslationCandidate) {
	if key == "" {
		return
	}
	if strings.Contains(key, " ") {
		c.Source = SourcePhrase
		idx.add(dir, GranularityPhrase, key, c)
	} else {
		idx.add(dir, GranularityWord, key, c)
	}
	exact := c
	exact.Source = SourceExactSentence
	idx.add(dir, GranularitySentence, key, exact)
}

// insertPair files a curated pair. Curated phrases are the phrase table's main
// source; sentences only feed exact matching.
func (idx *Index) insertPair(dir Direction, key string, c TranslationCandidate, src Source) {
	if key == "" {
		return
	}
	if src == SourcePhrase && strings.Contains(key, " ") {
		idx.add(dir, GranularityPhrase, key, c)
	}
	exact := c
	exact.Source = SourceExactSentence
	idx.add(dir, GranularitySentence, key, exact)

	// "how are you?" is also reachable as "how are you" so that input with
	// different closing punctuation still matches.
	if bare := strings.TrimSpace(strings.TrimRight(key, ".!?")); bare != "" && bare != key {
		exact.Target = strings.TrimRight(exact.Target, ".!?")
		if exact.Target != "" {
			idx.add(dir, GranularitySentence, bare, exact)
		}
	}
}

// aliasClosingPunct files every sentence key that lacks closing punctuation
// again under key+".", key+"!" and key+"?", carrying the mark onto targets
// that have none. Aliases rank after candidates filed under the punctuated
// key directly. They are not counted in Stats and not offered by Suggest.
func (idx *Index) aliasClosingPunct() {
	for _, dir := range []Direction{EnglishToPidgin, PidginToEnglish} {
		table := idx.tables[dir.index()][GranularitySentence]
		keys := make([]string, 0, len(table))
		for k := range table {
			if !endsWithSentencePunct(k) {
				keys = append(keys, k)
			}
		}
		for _, k := range keys {
			for _, mark := range []string{".", "!", "?"} {
				for _, c := range table[k] {
					if !endsWithSentencePunct(c.Target) {
						c.Target += mark
					}
					idx.add(dir, GranularitySentence, k+mark, c)
				}
			}
		}
	}
}

// add appends c under key unless the same target is already present.
func (idx *Index) add(dir Direction, g Granularity, key string, c TranslationCandidate) {
	table := idx.tables[dir.index()][g]
	for _, existing := range table[key] {
		if strings.EqualFold(existing.Target, c.Target) {
			return
		}
	}
	table[key] = append(table[key], c)
}

// Lookup returns the candidates for key in the given table.
func (idx *Index) Lookup(dir Direction, g Granularity, key string) []TranslationCandidate {
	return idx.tables[dir.index()][g][NormalizeKey(key)]
}

// lookupNormalized skips key normalization for hot paths.
func (idx *Index) lookupNormalized(dir Direction, g Granularity, key string) []TranslationCandidate {
	return idx.tables[dir.index()][g][key]
}

// Table exposes one lookup table. Callers must not mutate it.
func (idx *Index) Table(dir Direction, g Granularity) LookupTable {
	return idx.tables[dir.index()][g]
}

// Stats returns table sizes and source counts.
func (idx *Index) Stats() IndexStats {
	return idx.stats
}

// Fingerprint identifies the lexicon content the index was built from.
func (idx *Index) Fingerprint() string {
	return idx.fingerprint
}

// Entries returns the dictionary entries the index was built from.
func (idx *Index) Entries() []LexiconEntry {
	return idx.entries
}

// meaningKeys returns the normalized keys for an English meaning: the full
// string plus every "/"-separated variant.
func meaningKeys(meaning string) []string {
	full := NormalizeKey(meaning)
	if full == "" {
		return nil
	}
	keys := []string{full}
	if strings.Contains(full, "/") {
		for _, v := range strings.Split(full, "/") {
			v = NormalizeKey(v)
			if v != "" && v != full {
				keys = append(keys, v)
			}
		}
	}
	return keys
}

// primaryMeaning returns the first "/"-variant of an English meaning.
func primaryMeaning(meaning string) string {
	m := strings.TrimSpace(meaning)
	if i := strings.Index(m, "/"); i > 0 {
		if first := strings.TrimSpace(m[:i]); first != "" {
			return first
		}
	}
	return m
}

// fingerprintLexicon hashes every field of the lexicon in a stable order.
func fingerprintLexicon(lex Lexicon) string {
	h := sha256.New()
	write := func(parts ...string) {
		for _, p := range parts {
			h.Write([]byte(p))
			h.Write([]byte{0})
		}
		h.Write([]byte{'\n'})
	}
	for _, e := range lex.Entries {
		write(e.PidginForm, strings.Join(e.EnglishMeanings, "\x1f"), e.Category, string(e.Difficulty),
			e.Pronunciation, strings.Join(e.Examples, "\x1f"))
	}
	pair := func(kind string, p Pair) {
		write(kind, p.English, p.Pidgin, p.Category, string(p.Difficulty),
			strconv.FormatFloat(p.Confidence, 'g', -1, 64))
	}
	for _, p := range lex.Phrases {
		pair("p", p)
	}
	for _, s := range lex.Sentences {
		pair("s", s)
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}
