package phonetic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Suggester produces phonetic respelling suggestions for single words
type Suggester struct {
	apiKey string
	client *openai.Client
}

// NewSuggester creates a new respelling suggester
func NewSuggester(apiKey string) *Suggester {
	return &Suggester{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// Suggest returns a hyphenated phonetic respelling for word, in the
// same style as the built-in catalogue ("Tokyo" -> "Toh-kyoh").
func (s *Suggester) Suggest(word string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not configured")
	}

	word = strings.TrimSpace(word)
	if word == "" {
		return "", fmt.Errorf("word cannot be empty")
	}
	if strings.ContainsAny(word, " \t\n,") {
		return "", fmt.Errorf("suggestions work on single words, got %q", word)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: openai.GPT4o,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "You help prepare text for English speech synthesizers that mispronounce " +
					"foreign names and irregular English words. Given a word, respond with a " +
					"hyphenated phonetic respelling that an English TTS engine would read aloud " +
					"correctly, using plain ASCII syllables, like 'Toh-kyoh' for 'Tokyo' or " +
					"'ker-nel' for 'colonel'. Respond with only the respelling, nothing else.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: word,
			},
		},
		Temperature: 0.3,
		MaxTokens:   50,
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no suggestion returned")
	}

	suggestion := strings.TrimSpace(resp.Choices[0].Message.Content)
	return suggestion, nil
}

// DictionaryRow formats a word and its suggestion as a loadable
// dictionary row
func DictionaryRow(word, suggestion string) string {
	return fmt.Sprintf("%s,%s", word, suggestion)
}
