package gopidgin

// ResolveExact looks the whole normalized input up in the sentence table.
// It is a single equality lookup; closing punctuation variants are filed as
// keys by BuildIndex. Only capitalization is applied to a hit; grammar rules
// never touch curated text.
func (idx *Index) ResolveExact(text string, dir Direction) (*TranslationResult, bool) {
	key := NormalizeKey(text)
	if key == "" {
		return nil, false
	}

	cands := idx.lookupNormalized(dir, GranularitySentence, key)
	if len(cands) == 0 {
		return nil, false
	}

	top := cands[0]
	res := &TranslationResult{
		Translation:  capitalizeFirst(top.Target),
		Confidence:   ExactMatchConfidence,
		Method:       MethodExactSentenceMatch,
		Direction:    dir,
		Alternatives: []string{},
		Category:     top.Category,
		Difficulty:   top.Difficulty,
	}
	for _, c := range cands[1:] {
		if len(res.Alternatives) == 2 {
			break
		}
		res.Alternatives = append(res.Alternatives, capitalizeFirst(c.Target))
	}
	return res, true
}
