// Package schemagen is a client for a schema-driven generation service:
// callers describe the structure they want as a Definition tree and send it
// with a prompt, receiving generated data and its cost.
package schemagen

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
)

// Client sends prompts and Definitions to a generation backend.
// Configuration is read-only after New; a Client performs one blocking
// round trip per call and is safe for concurrent use. Local providers are
// created once, on first use.
type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger

	remote *remoteProvider
	openai lazyProvider
	google lazyProvider
}

// lazyProvider builds a provider client at most once.
type lazyProvider struct {
	once sync.Once
	pc   providerClient
	err  error
}

func (l *lazyProvider) get(build func() (providerClient, error)) (providerClient, error) {
	l.once.Do(func() {
		l.pc, l.err = build()
	})
	return l.pc, l.err
}

// New creates a Client with the given config.
// If DetectEnv is true, it pulls missing keys and URLs from environment variables.
func New(cfg Config) *Client {
	cfg = cfg.withEnv()
	c := &Client{
		cfg:  cfg,
		http: cfg.httpClient(),
		log:  cfg.logger(),
	}
	c.remote = &remoteProvider{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		http:    c.http,
		log:     c.log,
	}
	return c
}

// SendHTTPRequest posts {"prompt", "definition"} to the generation service
// and returns the raw response, which the caller must close. The target is
// def.Req.URL when set, else the configured BaseURL.
func (c *Client) SendHTTPRequest(ctx context.Context, prompt string, def *Definition) (*http.Response, error) {
	return c.remote.send(ctx, prompt, def)
}

// SendRequest generates data for def and returns it with its cost.
func (c *Client) SendRequest(ctx context.Context, prompt string, def *Definition) (*Response, error) {
	if def == nil {
		return nil, &Error{Kind: KindMisuse, Message: "definition is nil"}
	}
	provider := c.cfg.Provider
	if provider == "" {
		provider = ProviderRemote
	}

	model, err := c.resolveModel(provider, def)
	if err != nil {
		return nil, err
	}

	// 1) Build call plans.
	plans := buildPlans(provider, model, prompt, def)

	// 2) Execute plans sequentially; later plans may depend on earlier outputs.
	var finalRes callResult
	for i, p := range plans {
		pc, err := c.ensureProvider(p.Provider)
		if err != nil {
			return nil, err
		}
		res, err := pc.Generate(ctx, p)
		if err != nil {
			return nil, err
		}
		finalRes = res

		if i+1 < len(plans) {
			plans[i+1].Prompt = resultPreferredInput(res)
		}
	}

	return &Response{Data: finalRes.Data, USDCost: finalRes.USDCost}, nil
}

func (c *Client) resolveModel(provider Provider, def *Definition) (string, error) {
	if def.Model != "" || provider == ProviderRemote {
		return def.Model, nil
	}
	var model string
	switch provider {
	case ProviderOpenAI:
		model = c.cfg.DefaultModelOpenAI
	case ProviderGoogle:
		model = c.cfg.DefaultModelGoogle
	}
	if model == "" {
		return "", configError("model must be specified")
	}
	return model, nil
}

func (c *Client) ensureProvider(p Provider) (providerClient, error) {
	switch p {
	case ProviderRemote:
		return c.remote, nil
	case ProviderOpenAI:
		return c.openai.get(func() (providerClient, error) {
			return newOpenAIProvider(c.cfg, c.http)
		})
	case ProviderGoogle:
		return c.google.get(func() (providerClient, error) {
			return newGoogleProvider(c.cfg, c.http)
		})
	default:
		return nil, configError(fmt.Sprintf("unsupported provider %q", p))
	}
}
