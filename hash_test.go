package gopidgin

import "testing"

func TestHashText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple text",
			input:    "Hello World",
			expected: "a591a6d40bf420404a011733cfb7b190d62c65bf0bcda32b57b277d9ad9f146e",
		},
		{
			name:     "surrounding whitespace is ignored",
			input:    "  Hello World\n",
			expected: "a591a6d40bf420404a011733cfb7b190d62c65bf0bcda32b57b277d9ad9f146e",
		},
		{
			name:  "empty string",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := HashText(tt.input)
			if tt.expected != "" && result != tt.expected {
				t.Errorf("HashText(%q) = %q, want %q", tt.input, result, tt.expected)
			}
			// SHA-256 = 64 hex chars
			if len(result) != 64 {
				t.Errorf("HashText(%q) length = %d, want 64", tt.input, len(result))
			}
		})
	}
}

func TestHashText_CaseSensitive(t *testing.T) {
	if HashText("Howzit") == HashText("howzit") {
		t.Error("Expected hashes to differ by case")
	}
}

func TestCacheKey(t *testing.T) {
	result := CacheKey("abc123", PidginToEnglish, "0f1e2d3c4b5a6978")
	expected := "abc123:pidgin-to-eng:0f1e2d3c4b5a6978"

	if result != expected {
		t.Errorf("CacheKey() = %q, want %q", result, expected)
	}

	if CacheKey("abc123", EnglishToPidgin, "x") == CacheKey("abc123", PidginToEnglish, "x") {
		t.Error("Expected directions to produce different keys")
	}
}
