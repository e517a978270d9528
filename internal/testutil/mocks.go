package testutil

import (
	"context"
	"os"
)

// MockAudioProvider implements the audio.Provider interface for tests
type MockAudioProvider struct {
	ProviderName  string
	GenerateErr   error
	AvailableErr  error
	GenerateCalls int
	LastText      string
	LastOutput    string
}

// GenerateAudio records the call and writes a placeholder file on success
func (m *MockAudioProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	m.GenerateCalls++
	m.LastText = text
	m.LastOutput = outputFile

	if m.GenerateErr != nil {
		return m.GenerateErr
	}

	return os.WriteFile(outputFile, []byte{0xFF, 0xFB, 0x90, 0x00}, 0644)
}

// Name returns the mock provider name
func (m *MockAudioProvider) Name() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}

// IsAvailable returns the configured availability error
func (m *MockAudioProvider) IsAvailable() error {
	return m.AvailableErr
}
