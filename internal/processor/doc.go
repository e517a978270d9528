// Package processor contains the business logic for one text
// submission. It resolves the input text, loads the optional external
// dictionary, runs the phonetic rewrite, and hands the result to the
// speech synthesis provider. This package serves as the coordinator
// between all other components.
package processor
