package schemagen

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestExecuteRequest_WithoutRequestFormat(t *testing.T) {
	called := false
	hc := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		called = true
		return nil, errors.New("unexpected call")
	})}
	c := New(Config{HTTPClient: hc})

	_, err := c.ExecuteRequest(context.Background(), &Definition{}, map[string]any{"a": 1})
	require.ErrorIs(t, err, ErrNoRequestFormat)
	assert.True(t, IsMisuse(err))
	assert.False(t, called, "no network call may be attempted")

	_, err = (&Definition{}).ExecuteRequest(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoRequestFormat)
}

func TestExecuteRequest_MergesBody(t *testing.T) {
	var got capturedRequest
	srv := stubServer(t, http.StatusCreated, `{"ok": true}`, &got)

	def := &Definition{Req: &RequestFormat{
		URL:     srv.URL + "/hook",
		Method:  http.MethodPatch,
		Headers: map[string]string{"X-Token": "abc"},
		Body:    map[string]any{"a": 1},
	}}

	resp, err := def.ExecuteRequest(context.Background(), map[string]any{"a": 2, "b": 3})
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, http.MethodPatch, got.method)
	assert.Equal(t, "/hook", got.path)
	assert.Equal(t, "abc", got.header.Get("X-Token"))
	assert.Equal(t, map[string]any{"a": float64(2), "b": float64(3)}, got.body)
	assert.Equal(t, map[string]any{"a": 2, "b": 3}, def.Req.Body)
}

func TestExecuteRequest_NilBodyTakesGeneratedValues(t *testing.T) {
	var got capturedRequest
	srv := stubServer(t, http.StatusOK, `{}`, &got)

	c := New(Config{})
	def := &Definition{Req: &RequestFormat{URL: srv.URL, Method: http.MethodPost}}

	resp, err := c.ExecuteRequest(context.Background(), def, map[string]any{"name": "Ada"})
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, map[string]any{"name": "Ada"}, got.body)
	assert.Equal(t, "application/json", got.header.Get("Content-Type"))
}

func TestExecuteRequest_AuthorizationHeader(t *testing.T) {
	var got capturedRequest
	srv := stubServer(t, http.StatusOK, `{}`, &got)

	def := &Definition{Req: &RequestFormat{URL: srv.URL, Method: http.MethodPost, Authorization: "Bearer hook-key"}}
	resp, err := def.ExecuteRequest(context.Background(), nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "Bearer hook-key", got.header.Get("Authorization"))

	def.Req.Headers = map[string]string{"Authorization": "Basic explicit"}
	resp, err = def.ExecuteRequest(context.Background(), nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "Basic explicit", got.header.Get("Authorization"))
}

func TestExecuteRequest_NonSuccessStatus(t *testing.T) {
	srv := stubServer(t, http.StatusBadGateway, `upstream down`, nil)

	def := &Definition{Req: &RequestFormat{URL: srv.URL, Method: http.MethodPost}}
	_, err := def.ExecuteRequest(context.Background(), map[string]any{"a": 1})
	require.Error(t, err)
	assert.True(t, IsStatus(err))
	assert.Equal(t, http.StatusBadGateway, StatusCode(err))
}

func TestExecuteRequest_TransportError(t *testing.T) {
	hc := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("dial tcp: connection refused")
	})}
	c := New(Config{HTTPClient: hc})

	def := &Definition{Req: &RequestFormat{URL: "http://hook.invalid", Method: http.MethodPost}}
	_, err := c.ExecuteRequest(context.Background(), def, nil)
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.Contains(t, err.Error(), "connection refused")
}
