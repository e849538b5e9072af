package lexicon

import (
	"path/filepath"
	"strings"

	gopidgin "github.com/ZaguanLabs/gopidgin"
)

// Open returns a source for path: the embedded seed when path is empty,
// a SQLite store for .db/.sqlite files, otherwise a JSON or YAML file.
// The returned close function must be called when the source is no
// longer needed.
func Open(path string) (gopidgin.LexiconSource, func() error, error) {
	noop := func() error { return nil }

	switch strings.ToLower(filepath.Ext(path)) {
	case "":
		if path == "" {
			return Embedded{}, noop, nil
		}
	case ".db", ".sqlite", ".sqlite3":
		store, err := OpenSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	}

	if _, err := FormatFromPath(path); err != nil {
		return nil, nil, err
	}
	return NewFileSource(path), noop, nil
}
