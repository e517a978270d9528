package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"codeberg.org/snonux/omniread/internal"
	"codeberg.org/snonux/omniread/internal/audio"
	"codeberg.org/snonux/omniread/internal/cli"
	"codeberg.org/snonux/omniread/internal/dictionary"
	"codeberg.org/snonux/omniread/internal/input"
	"codeberg.org/snonux/omniread/internal/rewrite"
)

// How much of the text the --show-rewrite view prints.
const previewLen = 100

// Processor handles one text submission end to end
type Processor struct {
	flags *cli.Flags

	// newProvider is swappable for tests
	newProvider func(*audio.Config) (audio.Provider, error)
}

// NewProcessor creates a new submission processor
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{
		flags:       flags,
		newProvider: audio.NewProvider,
	}
}

// ProcessSubmission resolves the submission text, rewrites it and,
// unless audio is skipped, synthesizes it. The rewrite itself cannot
// fail; only input resolution and synthesis can.
func (p *Processor) ProcessSubmission(arg string) error {
	if p.flags.Speed < 0.5 || p.flags.Speed > 2.0 {
		return fmt.Errorf("speed %.2f out of range (0.5 to 2.0)", p.flags.Speed)
	}

	text, err := input.Resolve(arg, p.flags.InputFile)
	if err != nil {
		return err
	}

	externalDict := p.loadDictionary()

	finalText := rewrite.Rewrite(text, !p.flags.NoPatterns, externalDict)

	if p.flags.ShowRewrite {
		fmt.Printf("Original: %s\n", preview(text))
		fmt.Printf("Modified: %s\n", preview(finalText))
	}

	if p.flags.SkipAudio {
		fmt.Println(finalText)
		return nil
	}

	return p.synthesize(finalText)
}

// loadDictionary fetches the external dictionary when one was
// requested. Loader failures degrade to no dictionary; the rewrite
// proceeds either way.
func (p *Processor) loadDictionary() map[string]string {
	if p.flags.DictURL == "" {
		return nil
	}

	var cache *dictionary.Cache
	if !p.flags.NoDictCache {
		c, err := dictionary.OpenCache(dictionary.DefaultCachePath())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: dictionary cache unavailable: %v\n", err)
		} else {
			cache = c
			defer c.Close()
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	entries, err := dictionary.NewLoader(cache).Load(ctx, p.flags.DictURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, proceeding without external dictionary\n", err)
		return nil
	}

	fmt.Printf("Loaded %d custom names from %s\n", len(entries), p.flags.DictURL)
	return entries
}

// synthesize hands the phoneticized text to the configured TTS engine
func (p *Processor) synthesize(text string) error {
	config := &audio.Config{
		Provider:        p.flags.Provider,
		OutputDir:       p.flags.OutputDir,
		OutputFormat:    p.flags.AudioFormat,
		Voice:           p.flags.Voice,
		Rate:            audio.FormatRate(p.flags.Speed),
		OpenAIKey:       cli.GetOpenAIKey(),
		OpenAIModel:     p.flags.OpenAIModel,
		GeminiKey:       cli.GetGeminiKey(),
		GeminiModel:     p.flags.GeminiModel,
		ESpeakPitch:     p.flags.ESpeakPitch,
		ESpeakAmplitude: p.flags.ESpeakAmplitude,
	}
	if p.flags.OpenAIInstruction != "" {
		config.OpenAIInstruction = p.flags.OpenAIInstruction
	}

	provider, err := p.newProvider(config)
	if err != nil {
		return fmt.Errorf("failed to set up TTS provider: %w", err)
	}

	// Cloud engines fall back to the local one when they fail
	if config.Provider != "espeak" {
		espeakConfig := *config
		espeakConfig.Provider = "espeak"
		espeakConfig.Voice = ""
		if fallback, err := p.newProvider(&espeakConfig); err == nil {
			provider = audio.NewProviderWithFallback(provider, fallback)
		}
	}

	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	outputFile := filepath.Join(p.flags.OutputDir, internal.ArtifactName(text, p.flags.AudioFormat))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := provider.GenerateAudio(ctx, text, outputFile); err != nil {
		return fmt.Errorf("speech synthesis failed: %w", err)
	}

	fmt.Printf("Audio written to %s\n", outputFile)
	return nil
}

func preview(text string) string {
	if len(text) <= previewLen {
		return text
	}
	return text[:previewLen] + "..."
}
