package gopidgin

import "testing"

func TestSuggest_Prefix(t *testing.T) {
	idx := newTestIndex(t)

	got := idx.Suggest("good", EnglishToPidgin, 0)
	if len(got) != 2 {
		t.Fatalf("Expected 2 suggestions, got %+v", got)
	}
	if got[0].Text != "good morning" || got[0].Target != "mornin" {
		t.Errorf("Unexpected first suggestion: %+v", got[0])
	}
	if got[1].Text != "good morning sunshine" {
		t.Errorf("Unexpected second suggestion: %+v", got[1])
	}
	if got[0].Category != "greetings" {
		t.Errorf("Expected category to be carried, got %q", got[0].Category)
	}
}

func TestSuggest_Limits(t *testing.T) {
	idx := newTestIndex(t)

	if got := idx.Suggest("g", EnglishToPidgin, 5); got != nil {
		t.Errorf("Expected nil for 1-char prefix, got %+v", got)
	}
	if got := idx.Suggest("good", EnglishToPidgin, 1); len(got) != 1 {
		t.Errorf("Expected limit to be honoured, got %+v", got)
	}
	if got := idx.Suggest("zzz", EnglishToPidgin, 5); len(got) != 0 {
		t.Errorf("Expected no suggestions, got %+v", got)
	}
}

func TestSuggest_PidginSide(t *testing.T) {
	idx := newTestIndex(t)

	got := idx.Suggest("da", PidginToEnglish, 5)
	if len(got) == 0 {
		t.Fatal("Expected pidgin suggestions")
	}
	for _, s := range got {
		if s.Text[:2] != "da" {
			t.Errorf("Suggestion %q does not share the prefix", s.Text)
		}
	}
	if got[0].Text != "da grindz stay ono" && got[0].Text != "da kine" {
		t.Errorf("Unexpected first suggestion %+v", got[0])
	}
}

func TestPhrasesByCategory(t *testing.T) {
	idx := newTestIndex(t)

	greetings := idx.PhrasesByCategory("greetings", 0)
	if len(greetings) != 4 {
		t.Fatalf("Expected 4 greetings, got %d", len(greetings))
	}
	if greetings[0].English != "good morning" {
		t.Errorf("Expected lexicon order, got %q first", greetings[0].English)
	}

	if got := idx.PhrasesByCategory("greetings", 2); len(got) != 2 {
		t.Errorf("Expected limit 2, got %d", len(got))
	}
	if got := idx.PhrasesByCategory("nope", 0); len(got) != 0 {
		t.Errorf("Expected no phrases, got %d", len(got))
	}

	cats := idx.Categories()
	if len(cats) == 0 || cats[0] != "activities" {
		t.Errorf("Expected sorted categories, got %v", cats)
	}
}
