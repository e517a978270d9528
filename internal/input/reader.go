// Package input resolves the text of one submission from the command
// argument, an input file, or stdin.
package input

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Resolve returns the submission text. Priority: explicit argument,
// then input file, then piped stdin.
func Resolve(arg, inputFile string) (string, error) {
	if arg != "" {
		return arg, nil
	}

	if inputFile != "" {
		return ReadFile(inputFile)
	}

	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		text := strings.TrimSpace(string(data))
		if text == "" {
			return "", fmt.Errorf("stdin was empty")
		}
		return text, nil
	}

	return "", fmt.Errorf("no text given: pass an argument, --input, or pipe to stdin")
}

// ReadFile reads submission text from a .txt or .md file
func ReadFile(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".txt" && ext != ".md" {
		return "", fmt.Errorf("unsupported input file type %q (want .txt or .md)", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("input file %s is empty", path)
	}

	return text, nil
}
