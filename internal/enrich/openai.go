package enrich

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/threeonelabs/storebuilder/internal/domain"
)

// OpenAI is an Enricher backed by the OpenAI chat completions API (or any
// compatible endpoint via a custom base URL).
type OpenAI struct {
	model string
	opts  []option.RequestOption
}

// NewOpenAI builds an OpenAI enricher.
func NewOpenAI(apiKey, baseURL, model string) (*OpenAI, error) {
	if apiKey == "" {
		return nil, errors.New("enrich: api key is required")
	}
	if model == "" {
		return nil, errors.New("enrich: model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAI{model: model, opts: opts}, nil
}

func (o *OpenAI) Name() string { return "openai" }

// Enrich asks the model to restate the scripted reply in the brand's
// sales tone without changing its meaning or instructions.
func (o *OpenAI) Enrich(ctx context.Context, scripted string, profile domain.AgentProfile) (string, error) {
	client := openai.NewClient(o.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt(profile)),
			openai.UserMessage(scripted),
		},
	})
	if err != nil {
		return "", fmt.Errorf("enrich: completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("enrich: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func systemPrompt(profile domain.AgentProfile) string {
	brand := profile.BrandName
	if brand == "" {
		brand = "the store"
	}
	tone := profile.SalesTone
	if tone == "" {
		tone = domain.ToneFriendly
	}
	return fmt.Sprintf(
		"You are the setup assistant for %s. Restate the following assistant message in a %s tone. "+
			"Keep every instruction, example, and URL exactly as given. Do not add new steps.",
		brand, tone,
	)
}
