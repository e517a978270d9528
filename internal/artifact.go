package internal

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// ArtifactName builds a stable output filename for a text submission:
// a sanitized snippet of the text plus a short hash of the whole of it.
func ArtifactName(text, format string) string {
	snippet := text
	if len(snippet) > 24 {
		snippet = snippet[:24]
	}

	hash := md5.Sum([]byte(text))
	hashStr := hex.EncodeToString(hash[:])[:8]

	return SanitizeFilename(snippet) + "_" + hashStr + "." + format
}

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isAlphaNumeric(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

func isAlphaNumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
