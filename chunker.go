package gopidgin

import "strings"

// Chunk splits text into phrase and word chunks using greedy longest match.
//
// At each position the widest window (up to MaxPhraseLength tokens) found in
// the phrase table wins; otherwise a single token is translated. Trailing
// punctuation on the last token of a span is carried over to its target.
// A window is looked up as joined first, so curated keys with inner
// punctuation such as "yes, please" match anywhere in the input.
func (idx *Index) Chunk(text string, dir Direction) []Chunk {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	surface := surfaceTokens(text)
	if len(surface) != len(tokens) {
		surface = tokens
	}

	chunks := make([]Chunk, 0, len(tokens))
	for i := 0; i < len(tokens); {
		if c, ok := idx.matchPhrase(tokens, i, dir); ok {
			chunks = append(chunks, c)
			i += c.Span.Length
			continue
		}
		chunks = append(chunks, idx.wordChunk(tokens[i], surface[i], i, dir))
		i++
	}
	return chunks
}

// matchPhrase tries windows from the widest down to two tokens.
func (idx *Index) matchPhrase(tokens []string, start int, dir Direction) (Chunk, bool) {
	longest := min(MaxPhraseLength, len(tokens)-start)
	for n := longest; n >= 2; n-- {
		span := tokens[start : start+n]
		raw := strings.Join(span, " ")
		target, cand, ok := idx.phraseTarget(dir, raw, span)
		if !ok {
			continue
		}
		return Chunk{
			SourceText: raw,
			TargetText: target,
			Type:       ChunkPhrase,
			Source:     SourcePhrase,
			Confidence: PhraseConfidence,
			Span:       TokenSpan{Start: start, Length: n},
			Category:   cand.Category,
			Difficulty: cand.Difficulty,
		}, true
	}
	return Chunk{}, false
}

// phraseTarget looks the joined span up as is first, then without the
// trailing punctuation of its last token, reattaching that punctuation to the
// target. Inner tokens are never stripped.
func (idx *Index) phraseTarget(dir Direction, raw string, span []string) (string, TranslationCandidate, bool) {
	if cands := idx.lookupNormalized(dir, GranularityPhrase, raw); len(cands) > 0 {
		return cands[0].Target, cands[0], true
	}

	last, punct := splitPunct(span[len(span)-1])
	if punct == "" {
		return "", TranslationCandidate{}, false
	}
	key := strings.Join(span[:len(span)-1], " ") + " " + last
	if cands := idx.lookupNormalized(dir, GranularityPhrase, key); len(cands) > 0 {
		return cands[0].Target + punct, cands[0], true
	}
	return "", TranslationCandidate{}, false
}

// wordChunk translates one token, keeping its trailing punctuation. A token
// passed through untranslated keeps its original casing.
func (idx *Index) wordChunk(token, surface string, pos int, dir Direction) Chunk {
	bare, punct := splitPunct(token)
	res := idx.TranslateToken(bare, dir)
	if res.Source == SourcePassthrough {
		res.Text, _ = splitPunct(surface)
	}

	var alternates []string
	for _, a := range res.Alternates {
		alternates = append(alternates, a+punct)
	}

	return Chunk{
		SourceText: token,
		TargetText: res.Text + punct,
		Type:       ChunkWord,
		Source:     res.Source,
		Confidence: res.Confidence,
		Span:       TokenSpan{Start: pos, Length: 1},
		Category:   res.Category,
		Difficulty: res.Difficulty,
		alternates: alternates,
	}
}

// Assemble joins chunk targets with single spaces.
func Assemble(chunks []Chunk) string {
	parts := make([]string, len(chunks))
	for i, c := range chunks {
		parts[i] = c.TargetText
	}
	return strings.Join(parts, " ")
}
