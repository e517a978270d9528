package cli

import "testing"

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	if flags == nil {
		t.Fatal("NewFlags returned nil")
	}

	if flags.AudioFormat != "mp3" {
		t.Errorf("Expected default audio format 'mp3', got '%s'", flags.AudioFormat)
	}

	if flags.Provider != "openai" {
		t.Errorf("Expected default provider 'openai', got '%s'", flags.Provider)
	}

	if flags.Speed != 1.0 {
		t.Errorf("Expected default speed 1.0, got %f", flags.Speed)
	}

	if flags.OpenAIModel != "gpt-4o-mini-tts" {
		t.Errorf("Expected default OpenAI model 'gpt-4o-mini-tts', got '%s'", flags.OpenAIModel)
	}

	if flags.GeminiModel != "gemini-2.5-flash-preview-tts" {
		t.Errorf("Expected default Gemini model 'gemini-2.5-flash-preview-tts', got '%s'", flags.GeminiModel)
	}

	if flags.NoPatterns {
		t.Error("Expected pattern rules to be enabled by default")
	}

	if flags.ESpeakPitch != 50 || flags.ESpeakAmplitude != 100 {
		t.Errorf("Expected espeak defaults 50/100, got %d/%d", flags.ESpeakPitch, flags.ESpeakAmplitude)
	}
}
