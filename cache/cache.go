// Package cache stores serialized translation results keyed by
// text hash, direction and lexicon fingerprint.
package cache

import "strings"

// TranslationCache is the interface for translation caching.
type TranslationCache interface {
	// Get retrieves a cached result. Returns empty string and false if not found or expired.
	Get(key string) (string, bool)

	// Set stores a result in the cache.
	Set(key string, value string) error
}

// EntryLister is implemented by caches whose contents can be enumerated
// for export.
type EntryLister interface {
	Entries() map[string]string
}

// KeyFingerprint returns the lexicon fingerprint segment of a cache key
// ("<hash>:<direction>:<fingerprint>"), or "" for keys in another shape.
func KeyFingerprint(key string) string {
	parts := strings.Split(key, ":")
	if len(parts) != 3 {
		return ""
	}
	return parts[2]
}
