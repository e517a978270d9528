package rewrite

import "sort"

// Rewrite applies the substitution tiers to text and returns the
// respelled result. Tiers run in a fixed order: the external
// dictionary, the specific name overrides, the structural pattern
// rules (only when usePatterns is set), then the terminal dictionary.
// Each pass operates on the output of the one before it, so a later
// rule may re-match text an earlier rule produced. That is how the
// pipeline is meant to behave, not an accident.
//
// externalDict entries are whole-word, case-insensitive literal
// substitutions, applied in sorted key order so runs are
// deterministic. A nil or empty map is the same as no dictionary.
func Rewrite(text string, usePatterns bool, externalDict map[string]string) string {
	out := text

	if len(externalDict) > 0 {
		words := make([]string, 0, len(externalDict))
		for word := range externalDict {
			words = append(words, word)
		}
		sort.Strings(words)
		for _, word := range words {
			out = LiteralRule(word, externalDict[word]).Apply(out)
		}
	}

	for _, rule := range specificNameFixes {
		out = rule.Apply(out)
	}

	if usePatterns {
		for _, rule := range patternRules {
			out = rule.Apply(out)
		}
	}

	for _, rule := range ipaFixes {
		out = rule.Apply(out)
	}

	return out
}
