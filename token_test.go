package gopidgin

import "testing"

func TestTranslateToken(t *testing.T) {
	idx := newTestIndex(t)

	tests := []struct {
		name   string
		word   string
		dir    Direction
		want   string
		source Source
		conf   float64
	}{
		{"word table", "food", EnglishToPidgin, "grindz", SourceWord, WordConfidence},
		{"reverse word table", "akamai", PidginToEnglish, "smart", SourceWord, WordConfidence},
		{"english rule", "the", EnglishToPidgin, "da", SourceRule, RuleConfidence},
		{"pidgin rule", "stay", PidginToEnglish, "is", SourceRule, RuleConfidence},
		{"passthrough", "zzyzx", EnglishToPidgin, "zzyzx", SourcePassthrough, PassthroughConfidence},
		{"rules are directional", "da", EnglishToPidgin, "da", SourcePassthrough, PassthroughConfidence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := idx.TranslateToken(tt.word, tt.dir)
			if res.Text != tt.want {
				t.Errorf("TranslateToken(%q) = %q, want %q", tt.word, res.Text, tt.want)
			}
			if res.Source != tt.source {
				t.Errorf("Expected source %q, got %q", tt.source, res.Source)
			}
			if res.Confidence != tt.conf {
				t.Errorf("Expected confidence %v, got %v", tt.conf, res.Confidence)
			}
		})
	}
}

func TestTranslateToken_Alternates(t *testing.T) {
	res := newTestIndex(t).TranslateToken("food", EnglishToPidgin)
	if res.Text != "grindz" {
		t.Errorf("Expected top candidate grindz, got %q", res.Text)
	}
	if len(res.Alternates) != 1 || res.Alternates[0] != "kaukau" {
		t.Errorf("Expected [kaukau] as alternates, got %v", res.Alternates)
	}
	if res.Category != "food" {
		t.Errorf("Expected category from the entry, got %q", res.Category)
	}
}

func TestWordConfidence(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, WordConfidence},
		{0.3, WordConfidence},
		{0.85, 0.85},
		{1.4, 1},
	}
	for _, tt := range tests {
		if got := wordConfidence(tt.in); got != tt.want {
			t.Errorf("wordConfidence(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTranslateToken_RuleTablesAreDirectional(t *testing.T) {
	idx := newTestIndex(t)

	if res := idx.TranslateToken("the", EnglishToPidgin); res.Text != "da" || res.Source != SourceRule {
		t.Errorf("Expected the -> da by rule, got %+v", res)
	}
	if res := idx.TranslateToken("da", PidginToEnglish); res.Text != "the" {
		t.Errorf("Expected da -> the, got %+v", res)
	}
	// continuous aspect marker has no English-side rule
	if res := idx.TranslateToken("stay", EnglishToPidgin); res.Source != SourcePassthrough {
		t.Errorf("Expected stay to pass through in eng-to-pidgin, got %+v", res)
	}
	if res := idx.TranslateToken("stay", PidginToEnglish); res.Text != "is" {
		t.Errorf("Expected stay -> is, got %+v", res)
	}
}
