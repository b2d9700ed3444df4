package schemagen

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const headerRequestID = "X-Request-ID"

// doJSON sends body as JSON and returns the response when the status is 2xx.
// Any other status closes the body and returns a KindStatus error; this is
// the only place success is decided.
func doJSON(ctx context.Context, hc *http.Client, log *slog.Logger, method, url string, header http.Header, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, &Error{Kind: KindMisuse, Message: "error encoding request body", Err: err}
	}

	r, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(data))
	if err != nil {
		return nil, &Error{Kind: KindMisuse, Message: "error building request", Err: err}
	}
	for k, vs := range header {
		for _, v := range vs {
			r.Header.Add(k, v)
		}
	}
	if r.Header.Get("Content-Type") == "" {
		r.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	log.DebugContext(ctx, "sending request",
		"method", r.Method,
		"url", url,
		"request_id", r.Header.Get(headerRequestID),
	)

	resp, err := hc.Do(r)
	if err != nil {
		log.DebugContext(ctx, "request failed", "url", url, "error", err)
		return nil, transportError("error sending request", err)
	}

	log.DebugContext(ctx, "received response",
		"url", url,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", r.Header.Get(headerRequestID),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, statusError("received non-success response code", resp.StatusCode)
	}
	return resp, nil
}
