package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/omniread/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "omniread [text]",
		Short: "Phonetic text-to-speech reader",
		Long: `omniread reads text aloud through a TTS engine, respelling
mispronunciation-prone words (Japanese-origin names in particular)
phonetically first so the engine gets them right.

Examples:
  omniread "I visited Tokyo and met Kageyama"
  omniread --input chapter.md --voice nova --speed 1.2
  omniread --skip-audio --show-rewrite "Colonel Watanabe"   # rewrite only
  omniread --dict-url https://example.com/names.csv "..."   # custom names`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Default output directory matches where the dictionary cache lives
	home, _ := os.UserHomeDir()
	defaultOutputDir := filepath.Join(home, ".local", "state", "omniread", "audio")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.omniread.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.InputFile, "input", "i", "", "Read text from a .txt or .md file instead of the argument")
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", defaultOutputDir, "Output directory")
	cmd.Flags().StringVarP(&flags.AudioFormat, "format", "f", flags.AudioFormat, "Audio format (wav or mp3)")
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "TTS engine: openai, gemini or espeak")
	cmd.Flags().StringVar(&flags.Voice, "voice", "", "Voice identifier for the chosen engine (default: random)")
	cmd.Flags().Float64Var(&flags.Speed, "speed", flags.Speed, "Speech speed multiplier (0.5 to 2.0)")
	cmd.Flags().StringVar(&flags.DictURL, "dict-url", "", "URL of a word,phonetic CSV dictionary to apply first")
	cmd.Flags().BoolVar(&flags.NoPatterns, "no-patterns", false, "Disable structural pattern rules (-yama, -gawa, -saki, ...)")
	cmd.Flags().BoolVar(&flags.ShowRewrite, "show-rewrite", false, "Print the text before and after phonetic rewriting")
	cmd.Flags().BoolVar(&flags.SkipAudio, "skip-audio", false, "Skip audio generation, print the rewritten text to stdout")
	cmd.Flags().BoolVar(&flags.NoDictCache, "no-dict-cache", false, "Disable the local dictionary fallback cache")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")
	cmd.Flags().StringVar(&flags.Suggest, "suggest", "", "Suggest a phonetic respelling for a word and exit")

	// OpenAI flags
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI TTS model: tts-1, tts-1-hd, gpt-4o-mini-tts")
	cmd.Flags().StringVar(&flags.OpenAIInstruction, "openai-instruction", "", "Voice instructions for gpt-4o-mini-tts model")

	// Gemini flags
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini TTS model")

	// espeak-ng flags
	cmd.Flags().IntVar(&flags.ESpeakPitch, "espeak-pitch", flags.ESpeakPitch, "espeak-ng pitch (0-99)")
	cmd.Flags().IntVar(&flags.ESpeakAmplitude, "espeak-amplitude", flags.ESpeakAmplitude, "espeak-ng amplitude (0-200)")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("audio.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("audio.voice", cmd.Flags().Lookup("voice"))
	viper.BindPFlag("audio.format", cmd.Flags().Lookup("format"))
	viper.BindPFlag("audio.speed", cmd.Flags().Lookup("speed"))
	viper.BindPFlag("audio.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("audio.openai_instruction", cmd.Flags().Lookup("openai-instruction"))
	viper.BindPFlag("audio.gemini_model", cmd.Flags().Lookup("gemini-model"))
	viper.BindPFlag("audio.espeak_pitch", cmd.Flags().Lookup("espeak-pitch"))
	viper.BindPFlag("audio.espeak_amplitude", cmd.Flags().Lookup("espeak-amplitude"))
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("dictionary.url", cmd.Flags().Lookup("dict-url"))
	viper.BindPFlag("rewrite.no_patterns", cmd.Flags().Lookup("no-patterns"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".omniread" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".omniread")
	}

	// Environment variables
	viper.SetEnvPrefix("OMNIREAD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("audio.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("audio.gemini_key")
}
