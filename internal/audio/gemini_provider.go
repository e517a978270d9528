package audio

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/genai"
)

// Gemini TTS returns raw PCM: signed 16-bit little-endian, mono.
const (
	geminiSampleRate = 24000
	geminiBitDepth   = 16
	geminiChannels   = 1
)

// GeminiProvider implements Provider interface for Gemini TTS
type GeminiProvider struct {
	client *genai.Client
	config *Config
	voice  string
}

// NewGeminiProvider creates a new Gemini TTS provider
func NewGeminiProvider(config *Config) (Provider, error) {
	if config.GeminiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		config: config,
		voice:  ResolveVoice(config.Voice, GeminiVoices()),
	}, nil
}

// GenerateAudio generates audio using Gemini TTS. The model returns
// PCM, which is wrapped into a WAV container; an MP3 target goes
// through ffmpeg afterwards. Gemini has no speed parameter, so the
// configured rate is ignored by this provider.
func (p *GeminiProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	if err := ValidateSpeakableText(text); err != nil {
		return err
	}

	fmt.Printf("Gemini TTS: model '%s', voice '%s'\n", p.config.GeminiModel, p.voice)

	speechConfig := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: p.voice},
			},
		},
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.config.GeminiModel, genai.Text(text), speechConfig)
	if err != nil {
		return fmt.Errorf("Gemini TTS API error: %w", err)
	}

	pcm := extractAudioData(resp)
	if len(pcm) == 0 {
		return fmt.Errorf("no audio data received from Gemini")
	}

	dir := filepath.Dir(outputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	ext := strings.ToLower(filepath.Ext(outputFile))
	if ext == ".mp3" {
		tempWAV := strings.TrimSuffix(outputFile, ext) + "_temp.wav"
		if err := writeWAV(tempWAV, pcm); err != nil {
			return err
		}
		if err := ConvertWAVToMP3(tempWAV, outputFile); err != nil {
			os.Remove(tempWAV)
			return err
		}
		return os.Remove(tempWAV)
	}

	if ext != ".wav" {
		outputFile += ".wav"
	}
	return writeWAV(outputFile, pcm)
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// IsAvailable checks if the Gemini API is accessible
func (p *GeminiProvider) IsAvailable() error {
	if p.config.GeminiKey == "" {
		return fmt.Errorf("Gemini API key not configured")
	}
	return nil
}

// extractAudioData pulls the inline PCM bytes out of a generation response
func extractAudioData(resp *genai.GenerateContentResponse) []byte {
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data
			}
		}
	}
	return nil
}

// writeWAV wraps raw PCM data in a RIFF/WAVE container
func writeWAV(path string, pcm []byte) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	byteRate := geminiSampleRate * geminiChannels * geminiBitDepth / 8
	blockAlign := geminiChannels * geminiBitDepth / 8

	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(36+len(pcm)))
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], geminiChannels)
	binary.LittleEndian.PutUint32(header[24:28], geminiSampleRate)
	binary.LittleEndian.PutUint32(header[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], geminiBitDepth)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(len(pcm)))

	if _, err := out.Write(header); err != nil {
		return fmt.Errorf("failed to write WAV header: %w", err)
	}
	if _, err := out.Write(pcm); err != nil {
		return fmt.Errorf("failed to write WAV data: %w", err)
	}

	return nil
}
