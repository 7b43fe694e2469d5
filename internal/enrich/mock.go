package enrich

import (
	"context"
	"time"

	"github.com/threeonelabs/storebuilder/internal/domain"
)

// Mock is a test double for Enricher.
type Mock struct {
	ProviderName string
	Reply        string
	Err          error
	Delay        time.Duration
}

func (m *Mock) Name() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}

func (m *Mock) Enrich(ctx context.Context, scripted string, _ domain.AgentProfile) (string, error) {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if m.Err != nil {
		return "", m.Err
	}
	if m.Reply == "" {
		return scripted, nil
	}
	return m.Reply, nil
}
