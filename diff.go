package gopidgin

import (
	"sort"
	"strings"
)

// LexiconDiff represents the difference between two lexicon versions.
type LexiconDiff struct {
	// Added contains entries whose pidgin form is new.
	Added []LexiconEntry

	// Removed contains entries whose pidgin form no longer exists.
	Removed []LexiconEntry

	// Unchanged contains entries identical in both versions.
	Unchanged []LexiconEntry

	// Modified pairs entries that kept their pidgin form but changed content.
	Modified []ModifiedEntry
}

// ModifiedEntry represents an entry that was edited between versions.
type ModifiedEntry struct {
	Old LexiconEntry
	New LexiconEntry
}

// DiffStats contains summary statistics for a diff.
type DiffStats struct {
	Added     int
	Removed   int
	Unchanged int
	Modified  int
}

// Stats returns summary statistics for the diff.
func (d *LexiconDiff) Stats() DiffStats {
	return DiffStats{
		Added:     len(d.Added),
		Removed:   len(d.Removed),
		Unchanged: len(d.Unchanged),
		Modified:  len(d.Modified),
	}
}

// HasChanges returns true if there are any differences.
func (d *LexiconDiff) HasChanges() bool {
	return len(d.Added) > 0 || len(d.Removed) > 0 || len(d.Modified) > 0
}

// ChangedForms returns the normalized pidgin forms touched by the diff, sorted.
func (d *LexiconDiff) ChangedForms() []string {
	forms := make([]string, 0, len(d.Added)+len(d.Removed)+len(d.Modified))
	for _, e := range d.Added {
		forms = append(forms, NormalizeKey(e.PidginForm))
	}
	for _, e := range d.Removed {
		forms = append(forms, NormalizeKey(e.PidginForm))
	}
	for _, m := range d.Modified {
		forms = append(forms, NormalizeKey(m.New.PidginForm))
	}
	sort.Strings(forms)
	return forms
}

// DiffLexicon compares two entry sets keyed by normalized pidgin form.
// When a form appears more than once, the last occurrence wins.
func DiffLexicon(oldEntries, newEntries []LexiconEntry) *LexiconDiff {
	result := &LexiconDiff{}

	oldByForm := make(map[string]LexiconEntry)
	newByForm := make(map[string]LexiconEntry)
	var oldOrder, newOrder []string

	for _, e := range oldEntries {
		k := NormalizeKey(e.PidginForm)
		if _, ok := oldByForm[k]; !ok {
			oldOrder = append(oldOrder, k)
		}
		oldByForm[k] = e
	}
	for _, e := range newEntries {
		k := NormalizeKey(e.PidginForm)
		if _, ok := newByForm[k]; !ok {
			newOrder = append(newOrder, k)
		}
		newByForm[k] = e
	}

	for _, k := range oldOrder {
		oldEntry := oldByForm[k]
		newEntry, exists := newByForm[k]
		switch {
		case !exists:
			result.Removed = append(result.Removed, oldEntry)
		case entryHash(oldEntry) == entryHash(newEntry):
			result.Unchanged = append(result.Unchanged, oldEntry)
		default:
			result.Modified = append(result.Modified, ModifiedEntry{Old: oldEntry, New: newEntry})
		}
	}

	for _, k := range newOrder {
		if _, exists := oldByForm[k]; !exists {
			result.Added = append(result.Added, newByForm[k])
		}
	}

	return result
}

// entryHash fingerprints the translatable content of an entry.
func entryHash(e LexiconEntry) string {
	meanings := make([]string, len(e.EnglishMeanings))
	for i, m := range e.EnglishMeanings {
		meanings[i] = NormalizeKey(m)
	}
	return HashText(strings.Join([]string{
		NormalizeKey(e.PidginForm),
		strings.Join(meanings, "\x1f"),
		e.Category,
		string(e.Difficulty),
		e.Pronunciation,
	}, "\x1e"))
}
