package schemagen

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

type googleProvider struct {
	client *genai.Client
}

func newGoogleProvider(cfg Config, hc *http.Client) (providerClient, error) {
	cc := &genai.ClientConfig{
		APIKey:     cfg.GoogleAPIKey,
		HTTPClient: hc,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: cfg.GoogleBaseURL,
		},
	}
	switch cfg.GoogleBackend {
	case GoogleBackendVertex:
		cc.Backend = genai.BackendVertexAI
	case GoogleBackendGemini:
		cc.Backend = genai.BackendGeminiAPI
	default:
		if cfg.GoogleProject != "" && cfg.GoogleLocation != "" {
			cc.Backend = genai.BackendVertexAI
		} else {
			cc.Backend = genai.BackendGeminiAPI
		}
	}
	if cc.Backend == genai.BackendVertexAI {
		if cfg.GoogleProject == "" || cfg.GoogleLocation == "" {
			return nil, configError("Google project and location are required for Vertex AI")
		}
		cc.Project = cfg.GoogleProject
		cc.Location = cfg.GoogleLocation
	} else if cfg.GoogleAPIKey == "" {
		return nil, configError("Google API key is required to use ProviderGoogle")
	}

	gc, err := genai.NewClient(context.Background(), cc)
	if err != nil {
		return nil, &Error{Kind: KindConfig, Message: "error creating genai client", Err: err}
	}
	return &googleProvider{client: gc}, nil
}

func (p *googleProvider) Generate(ctx context.Context, plan callPlan) (callResult, error) {
	cfg := &genai.GenerateContentConfig{}
	input := plan.Prompt

	if plan.Proofread {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: proofreadInstruction}}}
		cfg.Temperature = genai.Ptr[float32](0.2)
	} else {
		if strings.TrimSpace(plan.System) != "" {
			cfg.SystemInstruction = &genai.Content{
				Parts: []*genai.Part{{Text: plan.System}},
			}
		}
		if plan.Definition != nil {
			cfg.ResponseMIMEType = "application/json"
			cfg.ResponseSchema = plan.Definition.GenAISchema()
		}
		input = localPrompt(plan)
	}

	res, err := p.client.Models.GenerateContent(ctx, plan.Model, genai.Text(input), cfg)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return callResult{}, &Error{
				Kind:       KindStatus,
				Message:    "genai request failed",
				StatusCode: apiErr.Code,
				Err:        err,
			}
		}
		return callResult{}, transportError("genai request failed", err)
	}

	text := textFromGenAI(res)
	if plan.Proofread {
		return callResult{Text: text}, nil
	}
	if text == "" {
		return callResult{}, decodeError("error decoding response", errors.New("no candidates in response"))
	}
	return callResult{Data: decodeGenerated(text)}, nil
}

func textFromGenAI(res *genai.GenerateContentResponse) string {
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range res.Candidates[0].Content.Parts {
		if p.Text == "" || p.Thought {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(p.Text)
	}
	return sb.String()
}
