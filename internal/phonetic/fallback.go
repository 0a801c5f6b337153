package phonetic

import (
	"context"

	"github.com/tsachovadia/RapTrainer/internal/logging"
	"github.com/tsachovadia/RapTrainer/internal/phonemizer"
)

// AsFallback adapts t to the phonemizer fallback hook. Failed transcriptions
// are logged and the run is dropped from the output.
func AsFallback(ctx context.Context, t Transcriber) phonemizer.Fallback {
	if t == nil {
		return nil
	}
	return func(word string) string {
		ipa, err := t.Transcribe(ctx, word)
		if err != nil {
			logging.Logger().Warn("fallback transcription failed",
				"word", word, "transcriber", t.Name(), "error", err)
			return ""
		}
		return ipa
	}
}
