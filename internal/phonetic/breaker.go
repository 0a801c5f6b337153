package phonetic

import (
	"context"
	"time"

	"github.com/sony/gobreaker"

	"github.com/tsachovadia/RapTrainer/internal/logging"
)

// BreakerTranscriber stops calling a failing backend for a while so that a
// long text does not wait on one timeout per foreign word.
type BreakerTranscriber struct {
	next Transcriber
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerTranscriber opens the circuit after failures consecutive errors
// and probes the backend again after timeout.
func NewBreakerTranscriber(next Transcriber, failures uint32, timeout time.Duration) *BreakerTranscriber {
	if failures == 0 {
		failures = 3
	}
	settings := gobreaker.Settings{
		Name:        next.Name(),
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger().Warn("transcriber circuit changed state",
				"transcriber", name, "from", from.String(), "to", to.String())
		},
	}
	return &BreakerTranscriber{
		next: next,
		cb:   gobreaker.NewCircuitBreaker(settings),
	}
}

// Transcribe calls the wrapped transcriber unless the circuit is open
func (t *BreakerTranscriber) Transcribe(ctx context.Context, text string) (string, error) {
	out, err := t.cb.Execute(func() (interface{}, error) {
		return t.next.Transcribe(ctx, text)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

// Name returns the wrapped transcriber name
func (t *BreakerTranscriber) Name() string {
	return t.next.Name()
}

// IsAvailable fails while the circuit is open
func (t *BreakerTranscriber) IsAvailable() error {
	if t.cb.State() == gobreaker.StateOpen {
		return gobreaker.ErrOpenState
	}
	return t.next.IsAvailable()
}

// State returns the current circuit state
func (t *BreakerTranscriber) State() gobreaker.State {
	return t.cb.State()
}
