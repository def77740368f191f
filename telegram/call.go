// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"time"

	"go.astrophena.name/tgapi/internal/request"
)

// envelope is the outer object of every Bot API response.
type envelope struct {
	OK          *bool               `json:"ok"`
	Result      json.RawMessage     `json:"result"`
	ErrorCode   int                 `json:"error_code"`
	Description string              `json:"description"`
	Parameters  *ResponseParameters `json:"parameters"`
}

var errMissingResult = errors.New("result is missing")

// Call calls the Bot API method named method with params and decodes the
// result into R.
//
// params must encode to a JSON object; nil sends an empty object. Optional
// fields are expected to be tagged with omitempty or omitzero so that absent
// values are omitted rather than sent as null. A json.RawMessage is sent as
// is, and R may be json.RawMessage to receive the result undecoded.
//
// Call makes exactly one HTTP request and never retries. The returned error
// is one of *InvalidURLError, *EncodeError, *TransportError, *APIError or
// *DecodeError, or wraps ctx.Err() if the context was cancelled or its
// deadline exceeded before the response arrived.
func Call[R any](ctx context.Context, b *Bot, method string, params any) (R, error) {
	var zero R

	u, err := b.MethodURL(method)
	if err != nil {
		return zero, err
	}

	body, err := encodeParams(params)
	if err != nil {
		return zero, &EncodeError{Method: method, Err: err}
	}

	res, err := request.Do(ctx, request.Params{
		Method:     http.MethodPost,
		URL:        u,
		Body:       json.RawMessage(body),
		HTTPClient: b.httpc,
		Scrubber:   b.scrubber,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return zero, fmt.Errorf("telegram: %s: %w", method, ctxErr)
		}
		return zero, &TransportError{Method: method, Err: err}
	}

	var env envelope
	if err := json.Unmarshal(res.Body, &env); err != nil || env.OK == nil {
		if res.StatusCode < 200 || res.StatusCode > 299 {
			return zero, &TransportError{Method: method, Err: request.Scrub(&request.StatusError{
				StatusCode: res.StatusCode,
				Body:       res.Body,
			}, b.scrubber)}
		}
		if err == nil {
			return zero, &DecodeError{Method: method, Type: "response", Field: "ok", Err: errors.New("field is missing")}
		}
		return zero, &DecodeError{Method: method, Type: "response", Err: err}
	}

	if !*env.OK {
		apiErr := &APIError{
			Method:      method,
			Code:        env.ErrorCode,
			Description: env.Description,
		}
		if p := env.Parameters; p != nil {
			apiErr.RetryAfter = time.Duration(p.RetryAfter) * time.Second
			apiErr.MigrateToChatID = p.MigrateToChatID
		}
		return zero, apiErr
	}

	return decodeResult[R](method, env.Result)
}

func encodeParams(params any) ([]byte, error) {
	if params == nil {
		return []byte("{}"), nil
	}

	var (
		b   []byte
		err error
	)
	if raw, ok := params.(json.RawMessage); ok {
		if !json.Valid(raw) {
			return nil, errors.New("invalid JSON")
		}
		b = raw
	} else if b, err = json.Marshal(params); err != nil {
		return nil, err
	}

	if t := bytes.TrimSpace(b); len(t) == 0 || t[0] != '{' {
		return nil, fmt.Errorf("parameters must be a JSON object, got %s", b)
	}
	return b, nil
}

func decodeResult[R any](method string, raw json.RawMessage) (R, error) {
	var r R
	typ := reflect.TypeFor[R]()

	if _, ok := any(r).(json.RawMessage); ok {
		return any(raw).(R), nil
	}

	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		if nullable(typ) {
			return r, nil
		}
		return r, &DecodeError{Method: method, Type: typ.String(), Field: "result", Err: errMissingResult}
	}

	if err := json.Unmarshal(raw, &r); err != nil {
		var zero R
		de := &DecodeError{Method: method, Type: typ.String(), Err: err}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			de.Field = typeErr.Field
		}
		return zero, de
	}

	if field, err := validateResult(r); err != nil {
		var zero R
		return zero, &DecodeError{Method: method, Type: typ.String(), Field: field, Err: err}
	}

	return r, nil
}

func nullable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return true
	}
	return false
}
