package cache

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestExporter_Export(t *testing.T) {
	c := NewInMemoryCache(3600)
	c.Set("h2:eng-to-pidgin:fp1", "b")
	c.Set("h1:eng-to-pidgin:fp1", "a")
	c.Set("h3:eng-to-pidgin:fp0", "stale")

	exporter := NewExporter(c, "fp1")
	exporter.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	var buf bytes.Buffer
	if err := exporter.Export(&buf, map[string]string{"direction": "eng-to-pidgin"}); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var export ExportFormat
	if err := json.Unmarshal(buf.Bytes(), &export); err != nil {
		t.Fatalf("Failed to parse export: %v", err)
	}

	if export.Version != ExportVersion || export.Fingerprint != "fp1" {
		t.Errorf("Unexpected header %+v", export)
	}
	if export.ExportedAt != "2024-05-01T12:00:00Z" {
		t.Errorf("Unexpected timestamp %q", export.ExportedAt)
	}
	if len(export.Entries) != 2 || export.Entries[0].Key != "h1:eng-to-pidgin:fp1" {
		t.Errorf("Expected 2 sorted current entries, got %+v", export.Entries)
	}
	if export.Metadata["direction"] != "eng-to-pidgin" {
		t.Errorf("Expected metadata to round trip, got %v", export.Metadata)
	}
}

type opaqueCache struct{}

func (opaqueCache) Get(string) (string, bool) { return "", false }
func (opaqueCache) Set(string, string) error  { return nil }

func TestExporter_UnsupportedCache(t *testing.T) {
	err := NewExporter(opaqueCache{}, "").Export(&bytes.Buffer{}, nil)
	if err == nil || !strings.Contains(err.Error(), "does not support export") {
		t.Errorf("Expected unsupported error, got %v", err)
	}
}

func TestImporter_SkipsStaleEntries(t *testing.T) {
	data := `{
		"version": "2",
		"exported_at": "2024-01-01T00:00:00Z",
		"entries": [
			{"key": "h1:eng-to-pidgin:fp1", "value": "a"},
			{"key": "h2:pidgin-to-eng:fp1", "value": "b"},
			{"key": "h3:eng-to-pidgin:fp0", "value": "c"}
		],
		"metadata": {"source": "test"}
	}`

	c := NewInMemoryCache(0)
	result, err := NewImporter(c, "fp1").Import(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if result.Imported != 2 || result.Skipped != 1 || result.Failed != 0 {
		t.Errorf("Unexpected result %+v", result)
	}
	if result.Metadata["source"] != "test" {
		t.Errorf("Expected metadata, got %v", result.Metadata)
	}
	if _, ok := c.Get("h3:eng-to-pidgin:fp0"); ok {
		t.Error("Stale entry should not be imported")
	}
}

func TestExportImport_FileRoundTrip(t *testing.T) {
	src := NewInMemoryCache(0)
	src.Set("h1:eng-to-pidgin:fp", "Howzit")
	src.Set("h2:eng-to-pidgin:fp", "Mahalo")

	path := filepath.Join(t.TempDir(), "cache.json")
	if err := NewExporter(src, "").ExportToFile(path, nil); err != nil {
		t.Fatalf("ExportToFile failed: %v", err)
	}

	dst := NewInMemoryCache(0)
	result, err := NewImporter(dst, "").ImportFromFile(path)
	if err != nil {
		t.Fatalf("ImportFromFile failed: %v", err)
	}
	if result.Imported != 2 {
		t.Errorf("Expected 2 imported, got %d", result.Imported)
	}
	if val, _ := dst.Get("h2:eng-to-pidgin:fp"); val != "Mahalo" {
		t.Errorf("Expected Mahalo, got %q", val)
	}
}

func TestImporter_InvalidJSON(t *testing.T) {
	if _, err := NewImporter(NewInMemoryCache(0), "").Import(strings.NewReader("{nope")); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestImporter_MissingFile(t *testing.T) {
	if _, err := NewImporter(NewInMemoryCache(0), "").ImportFromFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}
