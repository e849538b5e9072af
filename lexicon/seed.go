package lexicon

import (
	"bytes"
	"context"
	_ "embed"

	gopidgin "github.com/ZaguanLabs/gopidgin"
)

//go:embed seed.yaml
var seedYAML []byte

// Default returns the embedded seed lexicon.
func Default() (gopidgin.Lexicon, error) {
	doc, err := Decode(bytes.NewReader(seedYAML), FormatYAML)
	if err != nil {
		return gopidgin.Lexicon{}, err
	}
	return doc.Lexicon(), nil
}

// Embedded is a LexiconSource serving the seed lexicon.
type Embedded struct{}

// Load returns the seed lexicon.
func (Embedded) Load(ctx context.Context) (gopidgin.Lexicon, error) {
	if err := ctx.Err(); err != nil {
		return gopidgin.Lexicon{}, err
	}
	return Default()
}

var _ gopidgin.LexiconSource = Embedded{}
