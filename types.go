package gopidgin

// Difficulty is the learner level attached to a lexicon entry.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Granularity selects one of the three lookup tables kept per direction.
type Granularity int

const (
	GranularityWord Granularity = iota
	GranularityPhrase
	GranularitySentence
)

func (g Granularity) String() string {
	switch g {
	case GranularityWord:
		return "word"
	case GranularityPhrase:
		return "phrase"
	case GranularitySentence:
		return "sentence"
	}
	return "unknown"
}

// Source is the provenance tag of a translation candidate or chunk.
type Source string

const (
	SourceExactSentence Source = "exact_sentence"
	SourcePhrase        Source = "phrase"
	SourceWord          Source = "word"
	SourceRule          Source = "rule"
	// SourcePassthrough marks a token returned unchanged.
	SourcePassthrough Source = "passthrough"
)

// Method records which pipeline path produced a TranslationResult.
type Method string

const (
	MethodExactSentenceMatch Method = "exact_sentence_match"
	MethodSentenceChunking   Method = "sentence_chunking"
)

// ChunkType distinguishes phrase spans from single-token chunks.
type ChunkType string

const (
	ChunkPhrase ChunkType = "phrase"
	ChunkWord   ChunkType = "word"
)

// Confidence levels assigned by the pipeline stages.
const (
	ExactMatchConfidence  = 0.95
	PhraseConfidence      = 0.9
	WordConfidence        = 0.7
	RuleConfidence        = 0.5
	PassthroughConfidence = 0.0
)

// MaxPhraseLength is the widest token window tried by the chunker.
const MaxPhraseLength = 10

// LexiconEntry is one curated pidgin term.
type LexiconEntry struct {
	PidginForm      string     `json:"pidgin" yaml:"pidgin"`
	EnglishMeanings []string   `json:"english" yaml:"english"` // first is primary
	Category        string     `json:"category,omitempty" yaml:"category,omitempty"`
	Difficulty      Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Examples        []string   `json:"examples,omitempty" yaml:"examples,omitempty"`
	Pronunciation   string     `json:"pronunciation,omitempty" yaml:"pronunciation,omitempty"`
}

// Pair is a curated parallel phrase or sentence. Confidence is optional.
type Pair struct {
	English    string     `json:"english" yaml:"english"`
	Pidgin     string     `json:"pidgin" yaml:"pidgin"`
	Category   string     `json:"category,omitempty" yaml:"category,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Confidence float64    `json:"confidence,omitempty" yaml:"confidence,omitempty"`
}

// Lexicon bundles everything the index builder consumes.
type Lexicon struct {
	Entries   []LexiconEntry `json:"entries" yaml:"entries"`
	Phrases   []Pair         `json:"phrases,omitempty" yaml:"phrases,omitempty"`
	Sentences []Pair         `json:"sentences,omitempty" yaml:"sentences,omitempty"`
}

// TranslationCandidate maps a normalized key to one target string.
type TranslationCandidate struct {
	Target     string     `json:"target"`
	Confidence float64    `json:"confidence,omitempty"`
	Source     Source     `json:"source"`
	Category   string     `json:"category,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
}

// TokenSpan locates a chunk in the tokenized input.
type TokenSpan struct {
	Start  int `json:"start"`
	Length int `json:"length"`
}

// Chunk is one matched span produced while chunking.
type Chunk struct {
	SourceText string     `json:"source_text"`
	TargetText string     `json:"target_text"`
	Type       ChunkType  `json:"type"`
	Source     Source     `json:"source"`
	Confidence float64    `json:"confidence"`
	Span       TokenSpan  `json:"span"`
	Category   string     `json:"category,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`

	// alternates holds the other word-level targets of an ambiguous token.
	alternates []string
}

// TranslationResult is returned by every Translate call.
type TranslationResult struct {
	Translation  string     `json:"translation"`
	Confidence   float64    `json:"confidence"`
	Method       Method     `json:"method"`
	Direction    Direction  `json:"direction"`
	Alternatives []string   `json:"alternatives"`
	Category     string     `json:"category,omitempty"`
	Difficulty   Difficulty `json:"difficulty,omitempty"`
	Chunks       []Chunk    `json:"chunks,omitempty"`
}

// PhraseMatches counts the phrase chunks in the result.
func (r *TranslationResult) PhraseMatches() int {
	n := 0
	for _, c := range r.Chunks {
		if c.Type == ChunkPhrase {
			n++
		}
	}
	return n
}

// WordFills counts the single-token chunks in the result.
func (r *TranslationResult) WordFills() int {
	return len(r.Chunks) - r.PhraseMatches()
}

// TextNode represents a translatable unit of document content.
type TextNode struct {
	ID       string            // Unique identifier within the document
	Text     string            // Original text content (trimmed)
	Hash     string            // SHA-256 hash of Text
	NodeType string            // Content type: "html_text"
	Context  string            // Structural context (parent tag, classes)
	Metadata map[string]string // Additional info (parent tag, etc.)
}

// ProcessedContent is the result of a document translation.
type ProcessedContent struct {
	Content         string  // Translated content
	TranslatedCount int     // Number of nodes translated by the engine
	CachedCount     int     // Number of cache hits
	TotalNodes      int     // Total translatable nodes found
	Confidence      float64 // Mean confidence over all nodes
}

// IgnoredTags contains HTML tags whose content should not be translated.
var IgnoredTags = map[string]bool{
	"script":   true,
	"style":    true,
	"code":     true,
	"pre":      true,
	"textarea": true,
	"noscript": true,
}
