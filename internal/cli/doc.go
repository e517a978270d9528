// Package cli handles command-line interface setup including flag
// parsing, configuration loading, and API key management.
package cli
