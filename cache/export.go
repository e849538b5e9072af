package cache

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"
)

// ExportVersion is the snapshot format written by Exporter.
const ExportVersion = "2"

// ExportFormat represents the JSON structure for cache export/import.
type ExportFormat struct {
	Version     string            `json:"version"`
	ExportedAt  string            `json:"exported_at"`
	Fingerprint string            `json:"fingerprint,omitempty"`
	Entries     []ExportEntry     `json:"entries"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// ExportEntry represents a single cache entry.
type ExportEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Exporter writes cache snapshots.
type Exporter struct {
	cache       TranslationCache
	fingerprint string
	now         func() time.Time
}

// NewExporter creates a new cache exporter. When fingerprint is set only
// entries produced by that lexicon are written.
func NewExporter(cache TranslationCache, fingerprint string) *Exporter {
	return &Exporter{cache: cache, fingerprint: fingerprint, now: time.Now}
}

// Export writes the cache contents to w as indented JSON, sorted by key.
func (e *Exporter) Export(w io.Writer, metadata map[string]string) error {
	lister, ok := e.cache.(EntryLister)
	if !ok {
		return fmt.Errorf("cache type %T does not support export", e.cache)
	}

	data := lister.Entries()
	entries := make([]ExportEntry, 0, len(data))
	for key, value := range data {
		if e.fingerprint != "" && KeyFingerprint(key) != e.fingerprint {
			continue
		}
		entries = append(entries, ExportEntry{Key: key, Value: value})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })

	export := ExportFormat{
		Version:     ExportVersion,
		ExportedAt:  e.now().UTC().Format(time.RFC3339),
		Fingerprint: e.fingerprint,
		Entries:     entries,
		Metadata:    metadata,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(export); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ExportToFile exports the cache to a file.
func (e *Exporter) ExportToFile(path string, metadata map[string]string) error {
	f, err := os.Create(path) // #nosec G304 - path is user-provided
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	return e.Export(f, metadata)
}

// Importer loads cache snapshots.
type Importer struct {
	cache       TranslationCache
	fingerprint string
}

// NewImporter creates a new cache importer. When fingerprint is set,
// entries keyed to any other lexicon are skipped as stale.
func NewImporter(cache TranslationCache, fingerprint string) *Importer {
	return &Importer{cache: cache, fingerprint: fingerprint}
}

// ImportResult contains statistics about the import operation.
type ImportResult struct {
	Version  string
	Metadata map[string]string
	Imported int
	Skipped  int
	Failed   int
}

// Import reads cache entries from r and loads them into the cache.
func (i *Importer) Import(r io.Reader) (*ImportResult, error) {
	var export ExportFormat
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}

	result := &ImportResult{
		Version:  export.Version,
		Metadata: export.Metadata,
	}

	for _, entry := range export.Entries {
		if i.fingerprint != "" && KeyFingerprint(entry.Key) != i.fingerprint {
			result.Skipped++
			continue
		}
		if err := i.cache.Set(entry.Key, entry.Value); err != nil {
			result.Failed++
			continue
		}
		result.Imported++
	}

	return result, nil
}

// ImportFromFile imports cache entries from a file.
func (i *Importer) ImportFromFile(path string) (*ImportResult, error) {
	f, err := os.Open(path) // #nosec G304 - path is user-provided
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return i.Import(f)
}
