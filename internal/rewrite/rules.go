package rewrite

import "regexp"

// Rule is a single substitution: a compiled matcher and its replacement.
// Literal rules insert their replacement verbatim; pattern rules expand
// ${n} capture references.
type Rule struct {
	re      *regexp.Regexp
	repl    string
	literal bool
}

// Apply runs the rule over text. No match is a no-op.
func (r Rule) Apply(text string) string {
	if r.literal {
		return r.re.ReplaceAllLiteralString(text, r.repl)
	}
	return r.re.ReplaceAllString(text, r.repl)
}

// LiteralRule builds a case-insensitive whole-word substitution. The
// replacement is inserted exactly as given, never case-adjusted.
func LiteralRule(word, phonetic string) Rule {
	return Rule{
		re:      regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`),
		repl:    phonetic,
		literal: true,
	}
}

func patternRule(expr, template string) Rule {
	return Rule{re: regexp.MustCompile(expr), repl: template}
}

// 1. Specific name overrides (highest built-in priority). These are
// names that break the structural rules or are extremely common.
var specificNameFixes = []Rule{
	LiteralRule("Tokyo", "Toh-kyoh"),
	LiteralRule("Kyoto", "Key-oh-toh"),
	LiteralRule("Ryu", "Ree-yoo"),
	LiteralRule("Sean", "Shawn"),
	LiteralRule("Sake", "Sah-keh"),
	LiteralRule("Kobe", "Koh-bay"),
}

// 2. Structural pattern rules. Instead of listing names we list
// shapes: "yama\b" -> "yah-mah" alone covers Kageyama, Sugiyama,
// Yokoyama, Tateyama and everything else ending the same way.
var patternRules = []Rule{
	// Consonant + y + vowel, the most common TTS failure shape.
	// Ryu, Kyu, Nyu, Hyu -> Ree-yoo, Kee-yoo, ...
	patternRule(`(?i)\b([BCDFGHJKLMNPQRSTVWXYZ])yu\b`, `${1}ee-yoo`),
	patternRule(`(?i)\b([BCDFGHJKLMNPQRSTVWXYZ])yu([a-z]+)`, `${1}ee-yoo-${2}`), // mid-word (Ryunosuke)
	// Kyo, Ryo, Hyo -> Kee-oh, Ree-oh, Hee-oh
	patternRule(`(?i)\b([BCDFGHJKLMNPQRSTVWXYZ])yo\b`, `${1}ee-oh`),
	patternRule(`(?i)\b([BCDFGHJKLMNPQRSTVWXYZ])yo([a-z]+)`, `${1}ee-oh-${2}`), // mid-word (Kyosuke)

	// Common name suffixes.
	patternRule(`(?i)([a-z]+)yama\b`, `${1}-yah-mah`),  // mountain
	patternRule(`(?i)([a-z]+)gawa\b`, `${1}-gah-wah`),  // river
	patternRule(`(?i)([a-z]+)kawa\b`, `${1}-kah-wah`),  // river
	patternRule(`(?i)([a-z]+)shima\b`, `${1}-shee-mah`), // island
	patternRule(`(?i)([a-z]+)jima\b`, `${1}-jee-mah`),   // island
	patternRule(`(?i)([a-z]+)mura\b`, `${1}-moo-rah`),   // village
	patternRule(`(?i)([a-z]+)zaki\b`, `${1}-zah-key`),   // cape
	patternRule(`(?i)([a-z]+)saki\b`, `${1}-sah-key`),   // cape
	patternRule(`(?i)\bwatanabe\b`, `wah-tah-nah-beh`),

	// Vowel clarity: final 'i' sounds like 'ee' (Satoshi). The strict
	// consonant-vowel-consonant constraint keeps English words like
	// "Corgi" or "Hi" intact.
	patternRule(`(?i)\b([BCDFGHJKLMNPQRSTVWXYZ][aeiou][BCDFGHJKLMNPQRSTVWXYZ])i\b`, `${1}ee`),
}

// 3. Terminal dictionary: residual mispronunciations that survive the
// structural pass.
var ipaFixes = []Rule{
	LiteralRule("epitome", "eh-pit-oh-me"),
	LiteralRule("hyperbole", "high-per-bow-lee"),
	LiteralRule("colonel", "ker-nel"),
	LiteralRule("worcestershire", "wuss-ter-sher"),
	LiteralRule("anesthetist", "ah-nes-the-tist"),
	LiteralRule("draught", "draft"),
}

// SpecificOverrides returns the literal name-override tier in
// application order.
func SpecificOverrides() []Rule {
	return append([]Rule(nil), specificNameFixes...)
}

// PatternRules returns the structural pattern tier in application order.
func PatternRules() []Rule {
	return append([]Rule(nil), patternRules...)
}

// TerminalDictionary returns the terminal IPA-fix tier in application
// order.
func TerminalDictionary() []Rule {
	return append([]Rule(nil), ipaFixes...)
}
