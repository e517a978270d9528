package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if cmd.Use != "omniread [text]" {
		t.Errorf("Expected Use to be 'omniread [text]', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "Phonetic text-to-speech reader") {
		t.Errorf("Expected Short description to contain 'Phonetic text-to-speech reader'")
	}

	flagTests := []struct {
		name     string
		expected bool
	}{
		{"config", true},
		{"input", true},
		{"output", true},
		{"format", true},
		{"provider", true},
		{"voice", true},
		{"speed", true},
		{"dict-url", true},
		{"no-patterns", true},
		{"show-rewrite", true},
		{"skip-audio", true},
		{"no-dict-cache", true},
		{"list-models", true},
		{"suggest", true},
		{"openai-model", true},
		{"openai-instruction", true},
		{"gemini-model", true},
		{"espeak-pitch", true},
		{"espeak-amplitude", true},
	}

	for _, tt := range flagTests {
		t.Run("flag_"+tt.name, func(t *testing.T) {
			var flag *pflag.Flag
			if tt.name == "config" {
				flag = cmd.PersistentFlags().Lookup(tt.name)
			} else {
				flag = cmd.Flags().Lookup(tt.name)
			}
			if flag == nil && tt.expected {
				t.Errorf("Expected flag %s to exist", tt.name)
			}
		})
	}
}

func TestSetupFlagsDefaults(t *testing.T) {
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	formatFlag := cmd.Flags().Lookup("format")
	if formatFlag == nil {
		t.Fatal("format flag not found")
	}
	if formatFlag.DefValue != "mp3" {
		t.Errorf("Expected format default 'mp3', got '%s'", formatFlag.DefValue)
	}

	speedFlag := cmd.Flags().Lookup("speed")
	if speedFlag == nil {
		t.Fatal("speed flag not found")
	}
	if speedFlag.DefValue != "1" {
		t.Errorf("Expected speed default '1', got '%s'", speedFlag.DefValue)
	}
}

func TestGetOpenAIKeyFromEnvironment(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-key")

	if got := GetOpenAIKey(); got != "env-key" {
		t.Errorf("GetOpenAIKey() = %q, want env value", got)
	}
}

func TestGetOpenAIKeyFromConfig(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	viper.Set("audio.openai_key", "config-key")
	defer viper.Set("audio.openai_key", "")

	if got := GetOpenAIKey(); got != "config-key" {
		t.Errorf("GetOpenAIKey() = %q, want config value", got)
	}
}

func TestGetGeminiKeyFromEnvironment(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	if got := GetGeminiKey(); got != "env-key" {
		t.Errorf("GetGeminiKey() = %q, want env value", got)
	}
}
