package audio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultESpeakConfig(t *testing.T) {
	config := DefaultESpeakConfig()

	if config == nil {
		t.Fatal("DefaultESpeakConfig() returned nil")
	}

	if config.Voice != "en-us" {
		t.Errorf("Expected default voice 'en-us', got '%s'", config.Voice)
	}

	if config.Speed != espeakBaseWPM {
		t.Errorf("Expected default speed %d, got %d", espeakBaseWPM, config.Speed)
	}

	if config.Pitch != 50 {
		t.Errorf("Expected default pitch 50, got %d", config.Pitch)
	}

	if config.Amplitude != 100 {
		t.Errorf("Expected default amplitude 100, got %d", config.Amplitude)
	}
}

func TestNewESpeak(t *testing.T) {
	espeak, err := NewESpeak(nil)
	if err != nil {
		if checkESpeakInstalled() != nil {
			t.Skip("espeak-ng not installed, skipping test")
		}
		t.Fatalf("NewESpeak() failed: %v", err)
	}

	if espeak == nil {
		t.Fatal("NewESpeak() returned nil ESpeak instance")
	}

	if espeak.config == nil {
		t.Fatal("ESpeak instance has nil config")
	}
}

func TestSetSpeed(t *testing.T) {
	espeak := &ESpeak{config: DefaultESpeakConfig()}

	tests := []struct {
		input    int
		expected int
	}{
		{175, 175}, // Normal speed
		{50, 80},   // Below minimum
		{500, 450}, // Above maximum
		{200, 200}, // Valid speed
	}

	for _, tt := range tests {
		espeak.SetSpeed(tt.input)
		if espeak.config.Speed != tt.expected {
			t.Errorf("SetSpeed(%d) resulted in speed %d, expected %d",
				tt.input, espeak.config.Speed, tt.expected)
		}
	}
}

func TestSetPitch(t *testing.T) {
	espeak := &ESpeak{config: DefaultESpeakConfig()}

	tests := []struct {
		input    int
		expected int
	}{
		{50, 50},
		{-10, 0},
		{150, 99},
	}

	for _, tt := range tests {
		espeak.SetPitch(tt.input)
		if espeak.config.Pitch != tt.expected {
			t.Errorf("SetPitch(%d) resulted in pitch %d, expected %d",
				tt.input, espeak.config.Pitch, tt.expected)
		}
	}
}

func TestSetAmplitude(t *testing.T) {
	espeak := &ESpeak{config: DefaultESpeakConfig()}

	tests := []struct {
		input    int
		expected int
	}{
		{100, 100},
		{-5, 0},
		{300, 200},
	}

	for _, tt := range tests {
		espeak.SetAmplitude(tt.input)
		if espeak.config.Amplitude != tt.expected {
			t.Errorf("SetAmplitude(%d) resulted in amplitude %d, expected %d",
				tt.input, espeak.config.Amplitude, tt.expected)
		}
	}
}

func TestGenerateWAV_EmptyText(t *testing.T) {
	if checkESpeakInstalled() != nil {
		t.Skip("espeak-ng not installed, skipping test")
	}

	espeak, err := NewESpeak(nil)
	if err != nil {
		t.Fatalf("Failed to create ESpeak: %v", err)
	}

	if err := espeak.GenerateWAV("", "test.wav"); err == nil {
		t.Error("GenerateWAV() with empty text should return error")
	}
}

func TestGenerateWAV_Integration(t *testing.T) {
	if checkESpeakInstalled() != nil {
		t.Skip("espeak-ng not installed, skipping integration test")
	}

	espeak, err := NewESpeak(nil)
	if err != nil {
		t.Fatalf("Failed to create ESpeak: %v", err)
	}

	outputFile := filepath.Join(t.TempDir(), "test.wav")
	if err := espeak.GenerateWAV("Toh-kee-oh", outputFile); err != nil {
		t.Fatalf("GenerateWAV() failed: %v", err)
	}

	info, err := os.Stat(outputFile)
	if err != nil {
		t.Fatalf("Output file not created: %v", err)
	}

	if info.Size() == 0 {
		t.Error("Output file is empty")
	}
}
