package schemagen

import (
	"context"
	"log/slog"
	"maps"
	"net/http"
)

// ExecuteRequest issues the auxiliary call described by d.Req using
// http.DefaultClient. See Client.ExecuteRequest.
func (d *Definition) ExecuteRequest(ctx context.Context, currentGen map[string]any) (*http.Response, error) {
	return executeRequest(ctx, http.DefaultClient, discardLogger, d, currentGen)
}

// ExecuteRequest merges currentGen into def.Req.Body (currentGen wins on
// collisions) and sends it to def.Req.URL with def.Req.Method and
// def.Req.Headers. The merge is kept on def.Req.Body.
//
// It fails with ErrNoRequestFormat before any network activity when def has
// no Req. On success the raw response is returned and the caller must close
// its body.
func (c *Client) ExecuteRequest(ctx context.Context, def *Definition, currentGen map[string]any) (*http.Response, error) {
	return executeRequest(ctx, c.http, c.log, def, currentGen)
}

func executeRequest(ctx context.Context, hc *http.Client, log *slog.Logger, def *Definition, currentGen map[string]any) (*http.Response, error) {
	if def == nil || def.Req == nil {
		return nil, ErrNoRequestFormat
	}
	req := def.Req

	if req.Body == nil {
		req.Body = make(map[string]any, len(currentGen))
	}
	maps.Copy(req.Body, currentGen)

	header := make(http.Header, len(req.Headers)+1)
	for k, v := range req.Headers {
		header.Set(k, v)
	}
	if req.Authorization != "" && header.Get("Authorization") == "" {
		header.Set("Authorization", req.Authorization)
	}

	return doJSON(ctx, hc, log, req.Method, req.URL, header, req.Body)
}
