// Package phonetic suggests hyphenated phonetic respellings for words
// the built-in rule catalogue misses, using OpenAI's chat models. The
// suggestions are printed in dictionary row format so they can go
// straight into a user's remote dictionary.
package phonetic
