package lexicon

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gopidgin "github.com/ZaguanLabs/gopidgin"
)

const sampleJSON = `{
  "metadata": {"version": "2.1"},
  "entries": [
    {"pidgin": "grindz", "english": ["food"], "category": "food", "difficulty": "beginner", "pronunciation": "GRINDZ"},
    {"pidgin": "pau", "english": ["finished", "done"], "examples": ["I pau already."]}
  ],
  "phrases": [{"english": "thank you", "pidgin": "mahalo"}],
  "sentences": [{"english": "How are you?", "pidgin": "Howzit?", "confidence": 0.9}]
}`

const sampleYAML = `
entries:
  - pidgin: grindz
    english: [food]
    category: food
  - pidgin: pau
    english: [finished, done]
phrases:
  - english: thank you
    pidgin: mahalo
`

func TestDecode_JSON(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleJSON), FormatJSON)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if doc.Metadata.Version != "2.1" {
		t.Errorf("Expected version 2.1, got %q", doc.Metadata.Version)
	}

	lex := doc.Lexicon()
	if len(lex.Entries) != 2 || len(lex.Phrases) != 1 || len(lex.Sentences) != 1 {
		t.Fatalf("Unexpected lexicon shape: %+v", lex)
	}
	if lex.Entries[0].Difficulty != gopidgin.DifficultyBeginner || lex.Entries[0].Pronunciation != "GRINDZ" {
		t.Errorf("Unexpected first entry %+v", lex.Entries[0])
	}
	if lex.Entries[1].EnglishMeanings[1] != "done" || lex.Entries[1].Examples[0] != "I pau already." {
		t.Errorf("Unexpected second entry %+v", lex.Entries[1])
	}
	if lex.Sentences[0].Confidence != 0.9 {
		t.Errorf("Expected sentence confidence 0.9, got %v", lex.Sentences[0].Confidence)
	}
}

func TestDecode_YAML(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleYAML), FormatYAML)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(doc.Entries) != 2 || doc.Entries[1].EnglishMeanings[0] != "finished" {
		t.Errorf("Unexpected entries %+v", doc.Entries)
	}
	if len(doc.Phrases) != 1 || doc.Phrases[0].Pidgin != "mahalo" {
		t.Errorf("Unexpected phrases %+v", doc.Phrases)
	}
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	if _, err := Decode(strings.NewReader(`{"entries": [{"pidgn": "typo"}]}`), FormatJSON); err == nil {
		t.Error("Expected unknown JSON field to be rejected")
	}
	if _, err := Decode(strings.NewReader("entrys: []\n"), FormatYAML); err == nil {
		t.Error("Expected unknown YAML field to be rejected")
	}
}

func TestDecode_EmptyYAML(t *testing.T) {
	doc, err := Decode(strings.NewReader(""), FormatYAML)
	if err != nil {
		t.Fatalf("Expected empty YAML to decode, got %v", err)
	}
	if len(doc.Entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(doc.Entries))
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"lex.json", FormatJSON, false},
		{"LEX.YML", FormatYAML, false},
		{"dir/lex.yaml", FormatYAML, false},
		{"lex.csv", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, %v", tt.path, got, err)
		}
	}
}

func TestWriteFile_ReadFile(t *testing.T) {
	dir := t.TempDir()
	doc, err := Decode(strings.NewReader(sampleJSON), FormatJSON)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	for _, name := range []string{"lex.json", "lex.yaml"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, doc); err != nil {
			t.Fatalf("WriteFile(%s) failed: %v", name, err)
		}
		got, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile(%s) failed: %v", name, err)
		}
		if len(got.Entries) != 2 || got.Entries[0].PidginForm != "grindz" || got.Sentences[0].Pidgin != "Howzit?" {
			t.Errorf("%s: unexpected document %+v", name, got)
		}
	}
}

func TestFileSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lex.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	engine := gopidgin.NewEngine()
	if err := engine.LoadFrom(context.Background(), NewFileSource(path)); err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	res, err := engine.Translate("thank you", gopidgin.EnglishToPidgin)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if res.Translation != "Mahalo" {
		t.Errorf("Expected Mahalo, got %q", res.Translation)
	}
}

func TestFileSource_MissingFile(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "absent.json")).Load(context.Background())
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if gopidgin.IsRetryable(err) {
		t.Error("A missing file should not be retryable")
	}
}

func TestDefault(t *testing.T) {
	lex, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	if len(lex.Entries) < 40 || len(lex.Phrases) == 0 || len(lex.Sentences) == 0 {
		t.Errorf("Seed lexicon looks truncated: %d entries, %d phrases, %d sentences",
			len(lex.Entries), len(lex.Phrases), len(lex.Sentences))
	}

	engine, err := gopidgin.NewEngineFromLexicon(lex)
	if err != nil {
		t.Fatalf("Seed lexicon does not build: %v", err)
	}

	tests := []struct {
		text string
		dir  gopidgin.Direction
		want string
	}{
		{"How are you?", gopidgin.EnglishToPidgin, "Howzit?"},
		{"the food", gopidgin.EnglishToPidgin, "Da grindz"},
		{"I am hungry.", gopidgin.EnglishToPidgin, "I stay hungry."},
		{"Da grindz stay ono.", gopidgin.PidginToEnglish, "The food is delicious."},
	}
	for _, tt := range tests {
		res, err := engine.Translate(tt.text, tt.dir)
		if err != nil {
			t.Fatalf("Translate(%q) failed: %v", tt.text, err)
		}
		if res.Translation != tt.want {
			t.Errorf("Translate(%q, %s) = %q, want %q", tt.text, tt.dir, res.Translation, tt.want)
		}
	}
}

func TestEmbedded_Load(t *testing.T) {
	lex, err := Embedded{}.Load(context.Background())
	if err != nil || len(lex.Entries) == 0 {
		t.Errorf("Embedded load failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (Embedded{}).Load(ctx); err == nil {
		t.Error("Expected cancelled context to fail")
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "lex.yml")
	os.WriteFile(yamlPath, []byte(sampleYAML), 0o644)

	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"", "lexicon.Embedded", false},
		{yamlPath, "*lexicon.FileSource", false},
		{filepath.Join(dir, "lex.db"), "*lexicon.SQLiteStore", false},
		{filepath.Join(dir, "lex.txt"), "", true},
		{filepath.Join(dir, "noext"), "", true},
	}
	for _, tt := range tests {
		src, closeFn, err := Open(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("Open(%q) error = %v", tt.path, err)
			continue
		}
		if err != nil {
			continue
		}
		if got := fmt.Sprintf("%T", src); got != tt.want {
			t.Errorf("Open(%q) = %s, want %s", tt.path, got, tt.want)
		}
		if _, err := src.Load(context.Background()); err != nil {
			t.Errorf("Load(%q): %v", tt.path, err)
		}
		if err := closeFn(); err != nil {
			t.Errorf("close(%q): %v", tt.path, err)
		}
	}
}
