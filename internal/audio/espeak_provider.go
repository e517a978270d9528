package audio

import (
	"context"
	"path/filepath"
	"strings"
)

// ESpeakProvider implements Provider interface for espeak-ng. It is the
// offline fallback engine: no API key, no network.
type ESpeakProvider struct {
	espeak *ESpeak
}

// NewESpeakProvider creates a new espeak-ng provider
func NewESpeakProvider(config *Config) (Provider, error) {
	speed, err := ParseRate(config.Rate)
	if err != nil {
		return nil, err
	}

	espeakConfig := DefaultESpeakConfig()
	if config.Voice != "" {
		espeakConfig.Voice = config.Voice
	}

	espeak, err := NewESpeak(espeakConfig)
	if err != nil {
		return nil, err
	}

	espeak.SetSpeed(int(float64(espeakBaseWPM) * speed))
	espeak.SetPitch(config.ESpeakPitch)
	espeak.SetAmplitude(config.ESpeakAmplitude)

	return &ESpeakProvider{espeak: espeak}, nil
}

// GenerateAudio generates audio using espeak-ng
func (p *ESpeakProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	if err := ValidateSpeakableText(text); err != nil {
		return err
	}

	ext := strings.ToLower(filepath.Ext(outputFile))

	switch ext {
	case ".mp3":
		return p.espeak.GenerateMP3(text, outputFile)
	case ".wav":
		return p.espeak.GenerateWAV(text, outputFile)
	default:
		if !strings.HasSuffix(outputFile, ".mp3") {
			outputFile += ".mp3"
		}
		return p.espeak.GenerateMP3(text, outputFile)
	}
}

// Name returns the provider name
func (p *ESpeakProvider) Name() string {
	return "espeak-ng"
}

// IsAvailable checks if espeak-ng is installed
func (p *ESpeakProvider) IsAvailable() error {
	return checkESpeakInstalled()
}
