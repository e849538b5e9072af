package gopidgin

import "strings"

// Direction is one of the two supported translation directions.
type Direction string

const (
	EnglishToPidgin Direction = "eng-to-pidgin"
	PidginToEnglish Direction = "pidgin-to-eng"
)

// Language codes used for HTML lang attributes and display.
const (
	LangEnglish = "en"
	LangPidgin  = "hwc" // ISO 639-3 Hawaii Creole English
)

// LanguageNames maps language codes to human-readable names.
var LanguageNames = map[string]string{
	LangEnglish: "English",
	LangPidgin:  "Hawaiian Pidgin",
}

// directionAliases maps accepted spellings to a Direction.
var directionAliases = map[string]Direction{
	"eng-to-pidgin": EnglishToPidgin,
	"eng→pidgin":    EnglishToPidgin,
	"en-to-pidgin":  EnglishToPidgin,
	"english":       EnglishToPidgin,
	"e2p":           EnglishToPidgin,
	"en:hwc":        EnglishToPidgin,
	"pidgin-to-eng": PidginToEnglish,
	"pidgin→eng":    PidginToEnglish,
	"pidgin-to-en":  PidginToEnglish,
	"pidgin":        PidginToEnglish,
	"p2e":           PidginToEnglish,
	"hwc:en":        PidginToEnglish,
}

// ParseDirection converts a user-supplied string into a Direction.
func ParseDirection(s string) (Direction, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "_", "-")
	if d, ok := directionAliases[key]; ok {
		return d, nil
	}
	return "", &DirectionError{Value: s}
}

// Valid reports whether d is one of the two known directions.
func (d Direction) Valid() bool {
	return d == EnglishToPidgin || d == PidginToEnglish
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == EnglishToPidgin {
		return PidginToEnglish
	}
	return EnglishToPidgin
}

// SourceLang returns the language code of the input side.
func (d Direction) SourceLang() string {
	if d == PidginToEnglish {
		return LangPidgin
	}
	return LangEnglish
}

// TargetLang returns the language code of the output side.
func (d Direction) TargetLang() string {
	return d.Reverse().SourceLang()
}

// index returns the table slot for d.
func (d Direction) index() int {
	if d == PidginToEnglish {
		return 1
	}
	return 0
}

// GetLanguageName returns the human-readable name for a language code.
// Falls back to the code itself if not found.
func GetLanguageName(langCode string) string {
	if name, ok := LanguageNames[strings.ToLower(langCode)]; ok {
		return name
	}
	return langCode
}
