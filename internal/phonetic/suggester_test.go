package phonetic

import (
	"os"
	"strings"
	"testing"
)

func TestSuggestNoAPIKey(t *testing.T) {
	s := NewSuggester("")
	if _, err := s.Suggest("Kageyama"); err == nil {
		t.Error("Suggest() expected error without API key")
	}
}

func TestSuggestInvalidInput(t *testing.T) {
	s := NewSuggester("test-key")

	tests := []struct {
		name string
		word string
	}{
		{"empty word", ""},
		{"whitespace only", "   "},
		{"two words", "Kageyama Tobio"},
		{"tab separated", "a\tb"},
		{"contains comma", "a,b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Suggest(tt.word); err == nil {
				t.Errorf("Suggest(%q) expected error", tt.word)
			}
		})
	}
}

func TestDictionaryRow(t *testing.T) {
	got := DictionaryRow("Kageyama", "Kah-geh-yah-mah")
	want := "Kageyama,Kah-geh-yah-mah"
	if got != want {
		t.Errorf("DictionaryRow() = %q, want %q", got, want)
	}
}

func TestSuggestIntegration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	s := NewSuggester(apiKey)
	suggestion, err := s.Suggest("Kageyama")
	if err != nil {
		t.Fatalf("Suggest() error: %v", err)
	}
	if suggestion == "" {
		t.Fatal("Suggest() returned empty suggestion")
	}
	if !strings.Contains(suggestion, "-") {
		t.Errorf("suggestion %q is not hyphenated", suggestion)
	}
}
