package schemagen

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

// remoteProvider talks to the schema-driven generation service.
type remoteProvider struct {
	apiKey  string
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

type remoteRequest struct {
	Prompt     string         `json:"prompt"`
	Definition map[string]any `json:"definition"`
}

func (p *remoteProvider) send(ctx context.Context, prompt string, def *Definition) (*http.Response, error) {
	url := p.baseURL
	if def != nil && def.Req != nil && def.Req.URL != "" {
		url = def.Req.URL
	}
	if url == "" {
		return nil, configError("base URL is required")
	}
	if p.apiKey == "" {
		return nil, configError("API key is required")
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("Authorization", "Bearer "+p.apiKey)
	header.Set(headerRequestID, uuid.NewString())

	return doJSON(ctx, p.http, p.log, http.MethodPost, url, header, remoteRequest{
		Prompt:     prompt,
		Definition: def.ToMap(),
	})
}

func (p *remoteProvider) Generate(ctx context.Context, plan callPlan) (callResult, error) {
	resp, err := p.send(ctx, plan.Prompt, plan.Definition)
	if err != nil {
		return callResult{}, err
	}
	defer resp.Body.Close()

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return callResult{}, decodeError("error decoding response", err)
	}
	return callResult{Data: out.Data, USDCost: out.USDCost}, nil
}
