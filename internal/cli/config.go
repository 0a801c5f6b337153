package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/tsachovadia/RapTrainer/internal"
	"github.com/tsachovadia/RapTrainer/internal/phonemizer"
	"github.com/tsachovadia/RapTrainer/internal/phonetic"
	"github.com/tsachovadia/RapTrainer/internal/postprocess"
	"github.com/tsachovadia/RapTrainer/internal/rules"
)

// Configuration keys
const (
	KeyPreservePunctuation = "phonemize.preserve_punctuation"
	KeyPreserveStress      = "phonemize.preserve_stress"
	KeyUseExpander         = "phonemize.use_expander"
	KeyUsePostNormalize    = "phonemize.use_post_normalize"
	KeyPredictStress       = "phonemize.predict_stress"
	KeyPredictShvaNah      = "phonemize.predict_shva_nah"
	KeyStressPlacement     = "phonemize.stress_placement"
	KeySchema              = "phonemize.schema"
	KeyDictionaryDir       = "dictionary.dir"
	KeyStorePath           = "store.path"
	KeyFallbackProvider    = "fallback.provider"
	KeyOpenAIModel         = "fallback.openai_model"
	KeyGeminiModel         = "fallback.gemini_model"
	KeyESpeakVoice         = "fallback.espeak_voice"
	KeyOpenAIKey           = "fallback.openai_key"
	KeyGeminiKey           = "fallback.gemini_key"
)

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".phonikud" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("." + internal.AppName)
	}

	// Environment variables: PHONIKUD_PHONEMIZE_SCHEMA and so on
	viper.SetEnvPrefix(strings.ToUpper(internal.AppName))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString(KeyOpenAIKey)
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString(KeyGeminiKey)
}

// boolOr reads a boolean key, falling back to def when it is unset
func boolOr(key string, def bool) bool {
	if !viper.IsSet(key) {
		return def
	}
	return viper.GetBool(key)
}

// PhonemizerOptions builds phonemization options from flags and config.
// Config file and environment values apply where the flag was not given.
func PhonemizerOptions() (phonemizer.Options, error) {
	opts := phonemizer.DefaultOptions()
	opts.PreservePunctuation = boolOr(KeyPreservePunctuation, opts.PreservePunctuation)
	opts.PreserveStress = boolOr(KeyPreserveStress, opts.PreserveStress)
	opts.UseExpander = boolOr(KeyUseExpander, opts.UseExpander)
	opts.UsePostNormalize = boolOr(KeyUsePostNormalize, opts.UsePostNormalize)
	opts.PredictStress = boolOr(KeyPredictStress, opts.PredictStress)
	opts.PredictShvaNah = boolOr(KeyPredictShvaNah, opts.PredictShvaNah)

	if s := viper.GetString(KeyStressPlacement); s != "" {
		placement, err := rules.ParsePlacement(s)
		if err != nil {
			return opts, err
		}
		opts.StressPlacement = placement
	}
	if s := viper.GetString(KeySchema); s != "" {
		schema, err := postprocess.ParseSchema(s)
		if err != nil {
			return opts, err
		}
		opts.Schema = schema
	}
	return opts, nil
}

// TranscriberConfig builds the fallback transcriber configuration
func TranscriberConfig() *phonetic.Config {
	config := phonetic.DefaultConfig()
	if s := viper.GetString(KeyFallbackProvider); s != "" {
		config.Provider = s
	}
	if s := viper.GetString(KeyOpenAIModel); s != "" {
		config.OpenAIModel = s
	}
	if s := viper.GetString(KeyGeminiModel); s != "" {
		config.GeminiModel = s
	}
	if s := viper.GetString(KeyESpeakVoice); s != "" {
		config.ESpeakVoice = s
	}
	config.OpenAIKey = GetOpenAIKey()
	config.GeminiKey = GetGeminiKey()
	return config
}

// StorePath returns the configured history database path
func StorePath() string {
	if s := viper.GetString(KeyStorePath); s != "" {
		return s
	}
	return internal.DefaultStorePath()
}

// DictionaryDir returns the configured dictionary directory, empty for the
// embedded tiers.
func DictionaryDir() string {
	return viper.GetString(KeyDictionaryDir)
}
