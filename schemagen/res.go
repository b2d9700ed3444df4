package schemagen

import (
	"fmt"
	"io"
	"net/http"

	"github.com/valyala/fastjson"
)

// Res is the parsed result of an endpoint replying with {"value", "Other"}.
type Res struct {
	Value string
	Other map[string]any
}

// ExtractValue reads a Res from resp and closes its body. The status must be
// 200; otherwise the body is not parsed. Value holds the string contents of
// "value", or its raw JSON text when it is not a string. The capital "Other"
// key is the service's wire name.
func ExtractValue(resp *http.Response) (*Res, error) {
	if resp == nil || resp.Body == nil {
		return nil, misuseError("ExtractValue: nil response")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError("request failed with status", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError("error reading response body", err)
	}

	var p fastjson.Parser
	v, err := p.ParseBytes(body)
	if err != nil {
		return nil, decodeError("error reading response body", err)
	}
	if v.Type() != fastjson.TypeObject {
		return nil, decodeError("error reading response body", fmt.Errorf("expected object, got %s", v.Type()))
	}

	res := &Res{}
	if val := v.Get("value"); val != nil {
		switch val.Type() {
		case fastjson.TypeString:
			res.Value = string(val.GetStringBytes())
		case fastjson.TypeNull:
		default:
			res.Value = val.String()
		}
	}
	if other := v.Get("Other"); other != nil && other.Type() != fastjson.TypeNull {
		if other.Type() != fastjson.TypeObject {
			return nil, decodeError("error reading response body", fmt.Errorf("field Other: expected object, got %s", other.Type()))
		}
		res.Other = fastjsonValue(other).(map[string]any)
	}
	return res, nil
}

// fastjsonValue converts v into the same shapes encoding/json produces for
// an any target.
func fastjsonValue(v *fastjson.Value) any {
	switch v.Type() {
	case fastjson.TypeObject:
		o := v.GetObject()
		m := make(map[string]any, o.Len())
		o.Visit(func(k []byte, item *fastjson.Value) {
			m[string(k)] = fastjsonValue(item)
		})
		return m
	case fastjson.TypeArray:
		items := v.GetArray()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = fastjsonValue(item)
		}
		return out
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeNumber:
		return v.GetFloat64()
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	default:
		return nil
	}
}
