// Package enrich decorates scripted assistant replies with an optional
// LLM rewrite in the brand's sales tone. Enrichment is display-only: the
// deterministic state transition has already happened by the time it
// runs, and any failure falls back to the scripted text.
package enrich

import (
	"context"
	"time"

	"github.com/threeonelabs/storebuilder/internal/domain"
	"github.com/threeonelabs/storebuilder/internal/logging"
)

// DefaultTimeout bounds how long a decoration attempt may take before the
// scripted reply wins the race.
const DefaultTimeout = 4 * time.Second

// Enricher rewrites a scripted reply for display.
type Enricher interface {
	// Enrich returns a rewritten reply, or an error to fall back.
	Enrich(ctx context.Context, scripted string, profile domain.AgentProfile) (string, error)

	// Name identifies the provider for logging.
	Name() string
}

// Decorate races the enricher against the timeout and returns whichever
// reply is usable: the enriched text on success, the scripted text on
// nil enricher, error, empty result, or timeout. The returned error is
// informational; the reply is always valid.
func Decorate(ctx context.Context, e Enricher, timeout time.Duration, scripted string, profile domain.AgentProfile, log *logging.Logger) (string, error) {
	if e == nil {
		return scripted, nil
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		text string
		err  error
	}
	done := make(chan outcome, 1)
	go func() {
		text, err := e.Enrich(ctx, scripted, profile)
		done <- outcome{text: text, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			log.Warn().Err(out.err).Str("provider", e.Name()).Msg("reply enrichment failed, using scripted reply")
			return scripted, out.err
		}
		if out.text == "" {
			return scripted, nil
		}
		return out.text, nil
	case <-ctx.Done():
		log.Warn().Str("provider", e.Name()).Msg("reply enrichment timed out, using scripted reply")
		return scripted, ctx.Err()
	}
}
