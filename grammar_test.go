package gopidgin

import "testing"

func TestNormalize_EnglishToPidgin(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"i am hungry.", "I stay hungry."},
		{"i'm tired", "I stay tired"},
		{"you are akamai", "You stay akamai"},
		{"she is pau", "She stay pau"},
		{"dey are here", "Dey stay here"},
		{"we're ready", "We stay ready"},
		{"i am goin to eat", "I stay goin eat"},
		{"i am going to to eat", "I stay going eat"},
		{"he don't know", "He no know"},
		{"she didn't come", "She neva come"},
		{"i have to go", "I gotta go"},
		{"dat is really ono", "Dat is real ono"},
		{"get a lot of grindz", "Get choke grindz"},
		{"what???", "What?"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in, EnglishToPidgin); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize_PidginToEnglish(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"i is hungry", "I am hungry"},
		{"you is akamai", "You are akamai"},
		{"they stay here", "They are here"},
		{"he stay pau", "He is pau"},
		{"no don't do that", "Don't do that"},
		{"the the food", "The food"},
		{"eat the the the food", "Eat the food"},
		{"a a house", "A house"},
		{"i no can go", "I cannot go"},
		{"you like go?", "You want to go?"},
		{"like eat", "Want to eat"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in, PidginToEnglish); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeSentence_QuestionTag(t *testing.T) {
	tests := []struct {
		name, text, source string
		want               string
	}{
		{"yes-no question", "are you hungry?", "Are you hungry?", "Are you hungry, yeah?"},
		{"wh question", "wea you goin?", "Where are you going?", "Wea you goin, o wat?"},
		{"statement", "i stay hungry.", "I am hungry.", "I stay hungry."},
		{"already tagged", "you hungry, yeah?", "You hungry?", "You hungry, yeah?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeSentence(tt.text, tt.source, EnglishToPidgin); got != tt.want {
				t.Errorf("NormalizeSentence(%q, %q) = %q, want %q", tt.text, tt.source, got, tt.want)
			}
		})
	}
}

func TestNormalizeSentence_NoTagForPidginToEnglish(t *testing.T) {
	got := NormalizeSentence("you want to go?", "You like go?", PidginToEnglish)
	if got != "You want to go?" {
		t.Errorf("Expected no confirmatory tag, got %q", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"i am hungry.",
		"you are going to to the store",
		"i have to have to go",
		"what??? really very many",
		"he don't didn't know",
		"i is no can like go",
		"the the the a a food",
		"you stay stay",
		"he stay stay",
		"no no don't",
		"  spaced   out   text ",
		"",
		"ALL CAPS I AM",
		"they're here and dey are there",
	}
	for _, dir := range []Direction{EnglishToPidgin, PidginToEnglish} {
		for _, in := range inputs {
			once := Normalize(in, dir)
			twice := Normalize(once, dir)
			if once != twice {
				t.Errorf("%s: Normalize not idempotent for %q: %q then %q", dir, in, once, twice)
			}
		}
	}

	once := NormalizeSentence("are you hungry?", "Are you hungry?", EnglishToPidgin)
	if twice := NormalizeSentence(once, "Are you hungry?", EnglishToPidgin); twice != once {
		t.Errorf("NormalizeSentence not idempotent: %q then %q", once, twice)
	}
}

func TestRules_Ordered(t *testing.T) {
	rules := Rules(EnglishToPidgin)
	if len(rules) == 0 {
		t.Fatal("Expected English to pidgin rules")
	}
	if rules[0].Name != "copula-i" {
		t.Errorf("Expected copula-i first, got %s", rules[0].Name)
	}
	for _, r := range Rules(PidginToEnglish) {
		if r.Direction != PidginToEnglish {
			t.Errorf("Rule %s leaked into the wrong direction", r.Name)
		}
	}
}

func TestNormalize_PronounI(t *testing.T) {
	if got := Normalize("me and i go beach", EnglishToPidgin); got != "Me and I go beach" {
		t.Errorf("Expected capital I, got %q", got)
	}
	if got := Normalize("i tink so", PidginToEnglish); got != "I tink so" {
		t.Errorf("Expected capital I, got %q", got)
	}
}
