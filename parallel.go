package gopidgin

import (
	"context"
	"sync"
)

// ParallelCacheLookup performs cache lookups in parallel using goroutines.
// Returns decoded hits keyed by node hash, and the cache misses in input order.
// Entries that fail to decode count as misses.
func ParallelCacheLookup(cache TranslationCache, nodes []TextNode, dir Direction, fingerprint string) (map[string]*TranslationResult, []TextNode) {
	if cache == nil || len(nodes) == 0 {
		return make(map[string]*TranslationResult), dedupeNodes(nodes)
	}

	type lookupResult struct {
		hash  string
		value *TranslationResult
	}

	// Deduplicate nodes by hash first
	unique := make(map[string]bool)
	for _, node := range nodes {
		unique[node.Hash] = true
	}

	results := make(chan lookupResult, len(unique))
	var wg sync.WaitGroup

	for hash := range unique {
		wg.Add(1)
		go func(h string) {
			defer wg.Done()
			var res *TranslationResult
			if raw, ok := cache.Get(CacheKey(h, dir, fingerprint)); ok {
				res, _ = decodeResult(raw)
			}
			results <- lookupResult{hash: h, value: res}
		}(hash)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	hits := make(map[string]*TranslationResult)
	for r := range results {
		if r.value != nil {
			hits[r.hash] = r.value
		}
	}

	// Build cache misses slice (preserving original order)
	var misses []TextNode
	seen := make(map[string]bool)
	for _, node := range nodes {
		if _, ok := hits[node.Hash]; ok || seen[node.Hash] {
			continue
		}
		seen[node.Hash] = true
		misses = append(misses, node)
	}

	return hits, misses
}

func dedupeNodes(nodes []TextNode) []TextNode {
	seen := make(map[string]bool)
	var out []TextNode
	for _, n := range nodes {
		if !seen[n.Hash] {
			seen[n.Hash] = true
			out = append(out, n)
		}
	}
	return out
}

// BatchResult is the outcome of TranslateBatch.
type BatchResult struct {
	Results         []*TranslationResult // One per input text, in order
	CachedCount     int
	TranslatedCount int
}

// TranslateBatch translates texts in order. Duplicate texts are translated
// once; large batches look the cache up in parallel.
func (t *Translator) TranslateBatch(ctx context.Context, texts []string) (*BatchResult, error) {
	nodes := make([]TextNode, len(texts))
	for i, text := range texts {
		nodes[i] = TextNode{Text: text, Hash: HashText(text), NodeType: "text"}
	}

	results, cachedCount, translatedCount, err := t.translateNodes(ctx, nodes)
	if err != nil {
		return nil, err
	}

	out := &BatchResult{
		Results:         make([]*TranslationResult, len(nodes)),
		CachedCount:     cachedCount,
		TranslatedCount: translatedCount,
	}
	for i, node := range nodes {
		out.Results[i] = results[node.Hash]
	}
	return out, nil
}
