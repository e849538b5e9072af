// Package lexicon loads and stores the dictionary the translation engine
// is built from: JSON or YAML files, a SQLite database, or the embedded
// seed lexicon.
package lexicon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	gopidgin "github.com/ZaguanLabs/gopidgin"
	"gopkg.in/yaml.v3"
)

// Format identifies a lexicon file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Document is the on-disk shape of a lexicon file.
type Document struct {
	Metadata  Metadata                `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Entries   []gopidgin.LexiconEntry `json:"entries" yaml:"entries"`
	Phrases   []gopidgin.Pair         `json:"phrases,omitempty" yaml:"phrases,omitempty"`
	Sentences []gopidgin.Pair         `json:"sentences,omitempty" yaml:"sentences,omitempty"`
}

// Metadata describes a lexicon file.
type Metadata struct {
	Version     string `json:"version,omitempty" yaml:"version,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Lexicon returns the engine-facing lexicon.
func (d Document) Lexicon() gopidgin.Lexicon {
	return gopidgin.Lexicon{
		Entries:   d.Entries,
		Phrases:   d.Phrases,
		Sentences: d.Sentences,
	}
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported lexicon file extension %q", filepath.Ext(path))
	}
}

// Decode reads a lexicon document. Unknown fields are rejected so typos in
// hand-edited files surface at load time.
func Decode(r io.Reader, format Format) (Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return Document{}, fmt.Errorf("decoding JSON lexicon: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && err != io.EOF {
			return Document{}, fmt.Errorf("decoding YAML lexicon: %w", err)
		}
	default:
		return Document{}, fmt.Errorf("unsupported lexicon format %q", format)
	}
	return doc, nil
}

// Encode writes doc in the given format.
func Encode(w io.Writer, doc Document, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported lexicon format %q", format)
	}
}

// ReadFile loads a lexicon document from path.
func ReadFile(path string) (Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Document{}, err
	}
	data, err := os.ReadFile(path) // #nosec G304 - path is user-provided
	if err != nil {
		return Document{}, &gopidgin.StoreError{Message: "reading lexicon file", Cause: err}
	}
	return Decode(bytes.NewReader(data), format)
}

// WriteFile saves doc to path, choosing the format from the extension.
func WriteFile(path string, doc Document) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, doc, format); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// FileSource is a LexiconSource backed by a JSON or YAML file. The file
// is re-read on every Load so edits are picked up by a reload.
type FileSource struct {
	Path string
}

// NewFileSource creates a file-backed source.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Load reads and decodes the file.
func (s *FileSource) Load(ctx context.Context) (gopidgin.Lexicon, error) {
	if err := ctx.Err(); err != nil {
		return gopidgin.Lexicon{}, err
	}
	doc, err := ReadFile(s.Path)
	if err != nil {
		return gopidgin.Lexicon{}, err
	}
	return doc.Lexicon(), nil
}

var _ gopidgin.LexiconSource = (*FileSource)(nil)
