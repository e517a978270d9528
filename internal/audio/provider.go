package audio

import (
	"context"
	"fmt"
	"math/rand"
)

// Provider defines the interface for text-to-speech engines. The text
// it receives is already phoneticized and must be passed to the engine
// unchanged.
type Provider interface {
	// GenerateAudio generates audio from text and saves it to the specified file
	GenerateAudio(ctx context.Context, text string, outputFile string) error

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and available
	IsAvailable() error
}

// Config holds common configuration for audio providers
type Config struct {
	Provider     string // Provider name: "openai", "gemini" or "espeak"
	OutputDir    string // Directory for output files
	OutputFormat string // Output format: "mp3" or "wav"
	Voice        string // Provider voice identifier; empty picks a random one
	Rate         string // Signed percentage speech rate, e.g. "+20%", "-10%", "+0%"

	// OpenAI-specific settings
	OpenAIKey         string
	OpenAIModel       string // "tts-1", "tts-1-hd", or "gpt-4o-mini-tts"
	OpenAIInstruction string // Voice instructions for gpt-4o-mini-tts model

	// Gemini-specific settings
	GeminiKey   string
	GeminiModel string // "gemini-2.5-flash-preview-tts" or "gemini-2.5-pro-preview-tts"

	// espeak-ng tuning
	ESpeakPitch     int
	ESpeakAmplitude int

	// Cache settings
	CacheDir    string
	EnableCache bool
}

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:        "openai",
		OutputDir:       "./",
		OutputFormat:    "mp3",
		Rate:            "+0%",
		OpenAIModel:     "gpt-4o-mini-tts",
		GeminiModel:     "gemini-2.5-flash-preview-tts",
		ESpeakPitch:     50,
		ESpeakAmplitude: 100,
	}
}

// OpenAIVoices lists the voices the OpenAI TTS endpoint accepts
func OpenAIVoices() []string {
	return []string{"alloy", "ash", "ballad", "coral", "echo", "fable", "onyx", "nova", "sage", "shimmer", "verse"}
}

// GeminiVoices lists a selection of prebuilt Gemini TTS voices
func GeminiVoices() []string {
	return []string{"Kore", "Puck", "Zephyr", "Charon", "Fenrir", "Aoede"}
}

// ResolveVoice returns the configured voice, or a random one from
// candidates when no voice was configured.
func ResolveVoice(configured string, candidates []string) string {
	if configured != "" {
		return configured
	}
	return candidates[rand.Intn(len(candidates))]
}

// NewProvider creates the appropriate audio provider based on configuration
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	switch config.Provider {
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIProvider(config)

	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		return NewGeminiProvider(config)

	case "espeak":
		return NewESpeakProvider(config)

	default:
		return nil, fmt.Errorf("unknown audio provider: %s", config.Provider)
	}
}

// ProviderWithFallback wraps a primary provider with a fallback option
type ProviderWithFallback struct {
	primary  Provider
	fallback Provider
}

// NewProviderWithFallback creates a provider that falls back to secondary if primary fails
func NewProviderWithFallback(primary, fallback Provider) Provider {
	return &ProviderWithFallback{
		primary:  primary,
		fallback: fallback,
	}
}

// GenerateAudio tries primary provider first, falls back to secondary on error
func (p *ProviderWithFallback) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	err := p.primary.GenerateAudio(ctx, text, outputFile)
	if err != nil {
		fmt.Printf("Primary provider (%s) failed: %v. Falling back to %s\n",
			p.primary.Name(), err, p.fallback.Name())

		return p.fallback.GenerateAudio(ctx, text, outputFile)
	}
	return nil
}

// Name returns the provider name
func (p *ProviderWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", p.primary.Name(), p.fallback.Name())
}

// IsAvailable checks if at least one provider is available
func (p *ProviderWithFallback) IsAvailable() error {
	primaryErr := p.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := p.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both providers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}
