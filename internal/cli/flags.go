package cli

import "github.com/tsachovadia/RapTrainer/internal"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile       string
	BatchFile     string
	DictionaryDir string
	StorePath     string
	Save          bool
	History       bool
	HistoryLimit  int
	ExportTier    string
	ListModels    bool
	Archive       bool
	Names         bool

	// Phonemization flags
	PreservePunctuation bool
	PreserveStress      bool
	UseExpander         bool
	UsePostNormalize    bool
	PredictStress       bool
	PredictShvaNah      bool
	StressPlacement     string
	Schema              string

	// Fallback transcription flags
	Fallback    string
	OpenAIModel string
	GeminiModel string
	ESpeakVoice string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		StorePath:           internal.DefaultStorePath(),
		HistoryLimit:        20,
		PreservePunctuation: true,
		PreserveStress:      true,
		UseExpander:         true,
		UsePostNormalize:    true,
		PredictStress:       true,
		PredictShvaNah:      true,
		StressPlacement:     "vowel",
		Schema:              "modern",
		Fallback:            "none",
		OpenAIModel:         "gpt-4o-mini",
		GeminiModel:         "gemini-2.0-flash",
		ESpeakVoice:         "en-us",
	}
}
