// Package rewrite implements the phonetic respelling pipeline. It holds
// the built-in rule tiers and applies them, together with an optional
// per-invocation external dictionary, as ordered substitution passes
// over the input text.
package rewrite
