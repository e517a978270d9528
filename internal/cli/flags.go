package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile     string
	InputFile   string
	OutputDir   string
	AudioFormat string
	Provider    string
	Voice       string
	Speed       float64
	DictURL     string
	NoPatterns  bool
	ShowRewrite bool
	SkipAudio   bool
	NoDictCache bool
	ListModels  bool
	Suggest     string

	// OpenAI flags
	OpenAIModel       string
	OpenAIInstruction string

	// Gemini flags
	GeminiModel string

	// espeak-ng flags
	ESpeakPitch     int
	ESpeakAmplitude int
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		AudioFormat:     "mp3",
		Provider:        "openai",
		Speed:           1.0,
		OpenAIModel:     "gpt-4o-mini-tts",
		GeminiModel:     "gemini-2.5-flash-preview-tts",
		ESpeakPitch:     50,
		ESpeakAmplitude: 100,
	}
}
