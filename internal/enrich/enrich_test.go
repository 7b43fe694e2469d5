package enrich

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/threeonelabs/storebuilder/internal/domain"
	"github.com/threeonelabs/storebuilder/internal/logging"
)

func testLogger() *logging.Logger {
	return logging.New(nil, "silent")
}

func TestDecorate_NilEnricherReturnsScripted(t *testing.T) {
	got, err := Decorate(context.Background(), nil, time.Second, "scripted", domain.AgentProfile{}, testLogger())
	assert.NoError(t, err)
	assert.Equal(t, "scripted", got)
}

func TestDecorate_Success(t *testing.T) {
	mock := &Mock{Reply: "fancier reply"}

	got, err := Decorate(context.Background(), mock, time.Second, "scripted", domain.AgentProfile{}, testLogger())

	assert.NoError(t, err)
	assert.Equal(t, "fancier reply", got)
}

func TestDecorate_ErrorFallsBack(t *testing.T) {
	mock := &Mock{Err: errors.New("boom")}

	got, err := Decorate(context.Background(), mock, time.Second, "scripted", domain.AgentProfile{}, testLogger())

	assert.Error(t, err)
	assert.Equal(t, "scripted", got)
}

func TestDecorate_EmptyResultFallsBack(t *testing.T) {
	mock := &Mock{Reply: ""} // echoes scripted by default
	got, err := Decorate(context.Background(), mock, time.Second, "scripted", domain.AgentProfile{}, testLogger())
	assert.NoError(t, err)
	assert.Equal(t, "scripted", got)
}

func TestDecorate_TimeoutFallsBack(t *testing.T) {
	mock := &Mock{Reply: "too late", Delay: 500 * time.Millisecond}

	start := time.Now()
	got, err := Decorate(context.Background(), mock, 20*time.Millisecond, "scripted", domain.AgentProfile{}, testLogger())

	assert.Error(t, err)
	assert.Equal(t, "scripted", got)
	assert.Less(t, time.Since(start), 400*time.Millisecond, "decoration must not wait out a slow enricher")
}

func TestSystemPrompt_UsesBrandAndTone(t *testing.T) {
	prompt := systemPrompt(domain.AgentProfile{BrandName: "Lumen", SalesTone: domain.ToneLuxury})
	assert.Contains(t, prompt, "Lumen")
	assert.Contains(t, prompt, "luxury")

	prompt = systemPrompt(domain.AgentProfile{})
	assert.Contains(t, prompt, "the store")
	assert.Contains(t, prompt, "friendly")
}
