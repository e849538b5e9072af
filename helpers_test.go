package gopidgin

import "testing"

// testLexicon is a small synthetic lexicon shared by the package tests.
func testLexicon() Lexicon {
	return Lexicon{
		Entries: []LexiconEntry{
			{PidginForm: "grindz", EnglishMeanings: []string{"food"}, Category: "food", Difficulty: DifficultyBeginner},
			{PidginForm: "kaukau", EnglishMeanings: []string{"food", "meal"}, Category: "food", Difficulty: DifficultyIntermediate},
			{PidginForm: "howzit", EnglishMeanings: []string{"hello / how are you"}, Category: "greetings", Difficulty: DifficultyBeginner, Pronunciation: "HOW-zit"},
			{PidginForm: "pau", EnglishMeanings: []string{"finished", "done"}, Category: "expressions"},
			{PidginForm: "ono", EnglishMeanings: []string{"delicious"}, Category: "food"},
			{PidginForm: "brah", EnglishMeanings: []string{"brother", "friend"}, Category: "people"},
			{PidginForm: "da kine", EnglishMeanings: []string{"whatchamacallit", "thing"}, Category: "expressions"},
			{PidginForm: "broke da mouth", EnglishMeanings: []string{"very delicious"}, Category: "food", Difficulty: DifficultyAdvanced},
			{PidginForm: "akamai", EnglishMeanings: []string{"smart"}, Category: "descriptions"},
		},
		Phrases: []Pair{
			{English: "good morning", Pidgin: "mornin", Category: "greetings"},
			{English: "good morning sunshine", Pidgin: "mornin sunshine", Category: "greetings"},
			{English: "thank you", Pidgin: "mahalo", Category: "greetings"},
			{English: "what are you doing", Pidgin: "wat you doing", Category: "questions"},
			{English: "let's eat", Pidgin: "go grind", Category: "food"},
		},
		Sentences: []Pair{
			{English: "How are you?", Pidgin: "Howzit?", Category: "greetings"},
			{English: "The food is delicious.", Pidgin: "Da grindz stay ono.", Category: "food"},
			{English: "Let's go to the beach.", Pidgin: "Go beach.", Category: "activities"},
		},
	}
}

func newTestEngine(t testing.TB, opts ...EngineOption) *Engine {
	t.Helper()
	engine, err := NewEngineFromLexicon(testLexicon(), opts...)
	if err != nil {
		t.Fatalf("NewEngineFromLexicon failed: %v", err)
	}
	return engine
}

func newTestIndex(t testing.TB) *Index {
	t.Helper()
	idx, err := BuildIndex(testLexicon())
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}
	return idx
}
