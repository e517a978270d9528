// Package dictionary loads user-supplied pronunciation dictionaries
// from a remote source. A dictionary is a newline-separated list of
// "word,phonetic" rows; the loader keeps a local fallback cache so a
// previously fetched dictionary survives network trouble.
package dictionary
