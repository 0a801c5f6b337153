package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsachovadia/RapTrainer/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "phonikud [text]",
		Short: "Hebrew text to IPA phonemizer",
		Long: `phonikud converts Hebrew text, with or without nikud, into IPA phonemes.

Numbers, dates and times are spelled out, stress and vocal shva are
predicted, and runs of Latin letters can be handed to a fallback
transcriber (espeak-ng, OpenAI or Gemini).

Examples:
  phonikud "שָׁלוֹם עוֹלָם"                # Phonemize text
  echo "שלום" | phonikud                # Phonemize standard input
  phonikud --batch words.txt            # Phonemize and score a batch file
  phonikud --fallback espeak "hello שלום" # Transcribe English words too`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.phonikud.yaml)")

	// Local flags
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Phonemize lines from file (\"text\" or \"text = expected\")")
	cmd.Flags().StringVar(&flags.DictionaryDir, "dict-dir", "", "Load dictionary tiers (*_bronze.json, *_silver.json, *_gold.json) from this directory instead of the embedded ones")
	cmd.Flags().StringVar(&flags.StorePath, "store", flags.StorePath, "History database path")
	cmd.Flags().BoolVarP(&flags.Save, "save", "s", false, "Save results to the history database")
	cmd.Flags().BoolVar(&flags.History, "history", false, "Show recent results from the history database")
	cmd.Flags().IntVar(&flags.HistoryLimit, "limit", flags.HistoryLimit, "Number of history entries to show")
	cmd.Flags().StringVar(&flags.ExportTier, "export-tier", "", "Export saved single word results as a dictionary tier file")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move the history database into the archive directory")
	cmd.Flags().BoolVar(&flags.Names, "names", false, "Print the Unicode name of every character of the input")

	// Phonemization flags
	cmd.Flags().BoolVar(&flags.PreservePunctuation, "preserve-punctuation", flags.PreservePunctuation, "Keep .,!? in the output")
	cmd.Flags().BoolVar(&flags.PreserveStress, "preserve-stress", flags.PreserveStress, "Keep stress marks in the output")
	cmd.Flags().BoolVar(&flags.UseExpander, "expand", flags.UseExpander, "Spell out numbers, dates and times and apply the dictionary")
	cmd.Flags().BoolVar(&flags.UsePostNormalize, "post-normalize", flags.UsePostNormalize, "Trim silent endings and drop unknown symbols")
	cmd.Flags().BoolVar(&flags.PredictStress, "predict-stress", flags.PredictStress, "Stress the last syllable of words without a stress mark")
	cmd.Flags().BoolVar(&flags.PredictShvaNah, "predict-shva", flags.PredictShvaNah, "Predict a vocal shva on the first letter")
	cmd.Flags().StringVar(&flags.StressPlacement, "stress-placement", flags.StressPlacement, "Stress mark position: vowel or syllable")
	cmd.Flags().StringVar(&flags.Schema, "schema", flags.Schema, "Phoneme schema: modern or plain")

	// Fallback flags
	cmd.Flags().StringVar(&flags.Fallback, "fallback", flags.Fallback, "Transcriber for Latin letters: none, espeak, openai, gemini or auto")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model for the fallback transcriber")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for the fallback transcriber")
	cmd.Flags().StringVar(&flags.ESpeakVoice, "espeak-voice", flags.ESpeakVoice, "espeak-ng voice for the fallback transcriber")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag(KeyPreservePunctuation, cmd.Flags().Lookup("preserve-punctuation"))
	viper.BindPFlag(KeyPreserveStress, cmd.Flags().Lookup("preserve-stress"))
	viper.BindPFlag(KeyUseExpander, cmd.Flags().Lookup("expand"))
	viper.BindPFlag(KeyUsePostNormalize, cmd.Flags().Lookup("post-normalize"))
	viper.BindPFlag(KeyPredictStress, cmd.Flags().Lookup("predict-stress"))
	viper.BindPFlag(KeyPredictShvaNah, cmd.Flags().Lookup("predict-shva"))
	viper.BindPFlag(KeyStressPlacement, cmd.Flags().Lookup("stress-placement"))
	viper.BindPFlag(KeySchema, cmd.Flags().Lookup("schema"))
	viper.BindPFlag(KeyDictionaryDir, cmd.Flags().Lookup("dict-dir"))
	viper.BindPFlag(KeyStorePath, cmd.Flags().Lookup("store"))
	viper.BindPFlag(KeyFallbackProvider, cmd.Flags().Lookup("fallback"))
	viper.BindPFlag(KeyOpenAIModel, cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag(KeyGeminiModel, cmd.Flags().Lookup("gemini-model"))
	viper.BindPFlag(KeyESpeakVoice, cmd.Flags().Lookup("espeak-voice"))
}
