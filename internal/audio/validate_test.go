package audio

import "testing"

func TestValidateSpeakableText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"plain sentence", "I visited Toh-kyoh", false},
		{"respelled word", "wah-tah-nah-beh", false},
		{"digits count as speakable", "route 66", false},
		{"empty", "", true},
		{"whitespace only", "   \n\t", true},
		{"punctuation only", "?!...-", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSpeakableText(tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSpeakableText(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
		})
	}
}
