package schemagen

import (
	"context"
	"errors"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type openAIProvider struct {
	client *openai.Client
}

func newOpenAIProvider(cfg Config, hc *http.Client) (providerClient, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, configError("OpenAI API key is required to use ProviderOpenAI")
	}
	oc := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		oc.BaseURL = cfg.OpenAIBaseURL
	}
	if cfg.OpenAIOrgID != "" {
		oc.OrgID = cfg.OpenAIOrgID
	}
	oc.HTTPClient = hc
	return &openAIProvider{client: openai.NewClientWithConfig(oc)}, nil
}

func (p *openAIProvider) Generate(ctx context.Context, plan callPlan) (callResult, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, 2)
	system := plan.System
	if plan.Proofread {
		system = proofreadInstruction
	}
	if strings.TrimSpace(system) != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}

	input := plan.Prompt
	if !plan.Proofread {
		input = localPrompt(plan)
	}
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: input,
	})

	req := openai.ChatCompletionRequest{
		Model:    plan.Model,
		Messages: msgs,
	}
	if !plan.Proofread && plan.Definition != nil {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "definition",
				Schema: plan.Definition.OpenAISchema(),
			},
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
			return callResult{}, &Error{
				Kind:       KindStatus,
				Message:    "openai request failed",
				StatusCode: apiErr.HTTPStatusCode,
				Err:        err,
			}
		}
		return callResult{}, transportError("openai request failed", err)
	}
	return p.toCallResult(resp, plan.Proofread)
}

func (p *openAIProvider) toCallResult(resp openai.ChatCompletionResponse, proofread bool) (callResult, error) {
	if len(resp.Choices) == 0 {
		return callResult{}, decodeError("error decoding response", errors.New("no choices in response"))
	}
	text := resp.Choices[0].Message.Content
	if proofread {
		return callResult{Text: text}, nil
	}
	return callResult{Data: decodeGenerated(text)}, nil
}
