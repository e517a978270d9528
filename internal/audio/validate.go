package audio

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateSpeakableText checks that the input is worth sending to a
// speech engine
func ValidateSpeakableText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text cannot be empty")
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return nil
		}
	}

	return fmt.Errorf("text contains no speakable characters")
}
