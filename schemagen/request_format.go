package schemagen

import "encoding/json"

// RequestFormat describes an auxiliary HTTP call attached to a Definition.
// Body is merged with generated values by ExecuteRequest.
type RequestFormat struct {
	URL           string            `json:"url" yaml:"url"`
	Method        string            `json:"method" yaml:"method"`
	Headers       map[string]string `json:"headers" yaml:"headers"`
	Body          map[string]any    `json:"body" yaml:"body"`
	Authorization string            `json:"authorization,omitempty" yaml:"authorization,omitempty"`
	RequireFields []string          `json:"requireFields" yaml:"requireFields"`
}

// ToMap returns the wire form. Every key is present; an empty Authorization
// is sent as null.
func (r *RequestFormat) ToMap() map[string]any {
	if r == nil {
		return nil
	}
	headers := r.Headers
	if headers == nil {
		headers = map[string]string{}
	}
	body := r.Body
	if body == nil {
		body = map[string]any{}
	}
	var auth any
	if r.Authorization != "" {
		auth = r.Authorization
	}
	return map[string]any{
		"url":           r.URL,
		"method":        r.Method,
		"headers":       headers,
		"body":          body,
		"authorization": auth,
		"requireFields": stringsOrEmpty(r.RequireFields),
	}
}

func (r *RequestFormat) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ToMap())
}

// Focus narrows generation to Fields, optionally keeping the rest of the
// original structure.
type Focus struct {
	Prompt       string   `json:"prompt" yaml:"prompt"`
	Fields       []string `json:"fields" yaml:"fields"`
	KeepOriginal bool     `json:"keepOriginal" yaml:"keepOriginal"`
}

func (f *Focus) ToMap() map[string]any {
	if f == nil {
		return nil
	}
	return map[string]any{
		"prompt":       f.Prompt,
		"fields":       stringsOrEmpty(f.Fields),
		"keepOriginal": f.KeepOriginal,
	}
}

func (f *Focus) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.ToMap())
}
