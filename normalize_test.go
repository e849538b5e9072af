package gopidgin

import (
	"reflect"
	"testing"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Good  Morning", "good morning"},
		{"  \tHowzit\n", "howzit"},
		{"Don’t worry", "don't worry"},
		{"café", "café"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeKey(tt.in); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTokenize(t *testing.T) {
	if got := Tokenize("  Da Grindz   stay ONO! "); !reflect.DeepEqual(got, []string{"da", "grindz", "stay", "ono!"}) {
		t.Errorf("Unexpected tokens %q", got)
	}
	if got := Tokenize("   "); got != nil {
		t.Errorf("Expected nil for blank text, got %q", got)
	}
}

func TestSplitPunct(t *testing.T) {
	tests := []struct {
		in, bare, punct string
	}{
		{"ono!", "ono", "!"},
		{"wat?!", "wat", "?!"},
		{"brah,", "brah", ","},
		{"pau", "pau", ""},
		{"?", "?", ""},
		{"dat's", "dat's", ""},
		{"...", "...", ""},
	}
	for _, tt := range tests {
		bare, punct := splitPunct(tt.in)
		if bare != tt.bare || punct != tt.punct {
			t.Errorf("splitPunct(%q) = (%q, %q), want (%q, %q)", tt.in, bare, punct, tt.bare, tt.punct)
		}
	}
}

func TestCapitalizeFirst(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"howzit", "Howzit"},
		{"Howzit", "Howzit"},
		{"ʻono", "ʻono"},
		{"éclair", "Éclair"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := capitalizeFirst(tt.in); got != tt.want {
			t.Errorf("capitalizeFirst(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEndsWithSentencePunct(t *testing.T) {
	for _, s := range []string{"Pau.", "Howzit?", "Shoots! ", "wat?!"} {
		if !endsWithSentencePunct(s) {
			t.Errorf("Expected %q to end a sentence", s)
		}
	}
	for _, s := range []string{"brah,", "da kine", "", "   "} {
		if endsWithSentencePunct(s) {
			t.Errorf("Expected %q not to end a sentence", s)
		}
	}
}
