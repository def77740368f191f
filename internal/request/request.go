// Package request provides utilities for making HTTP requests.
package request

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.astrophena.name/tgapi/internal/version"
)

// DefaultClient is a [http.Client] used when [Params] don't specify one.
//
// It has no overall timeout: callers bound requests with a context deadline,
// and long polling calls such as getUpdates may legitimately take minutes.
var DefaultClient = &http.Client{}

// Params defines the parameters needed for making an HTTP request.
type Params struct {
	// Method is the HTTP method (GET, POST, etc.) for the request.
	Method string
	// URL is the target URL of the request.
	URL string
	// Headers is a map of key-value pairs for additional request headers.
	Headers map[string]string
	// Body is any data to be sent in the request body. It will be marshaled to
	// JSON, unless it's already a json.RawMessage.
	Body any
	// HTTPClient is an optional custom HTTP client object to use for the request.
	// If not provided, DefaultClient will be used.
	HTTPClient *http.Client
	// Scrubber is an optional strings.Replacer that scrubs unwanted data from
	// error messages.
	Scrubber *strings.Replacer
}

// Response is a raw HTTP response with the body fully read.
type Response struct {
	StatusCode int
	Body       []byte
}

// StatusError is returned by [Make] when the server responds with a status
// other than 200 OK.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("want 200, got %d: %s", e.StatusCode, e.Body)
}

type scrubbedError struct {
	err      error
	scrubber *strings.Replacer
}

func (se *scrubbedError) Error() string {
	if se.scrubber != nil {
		return se.scrubber.Replace(se.err.Error())
	}
	return se.err.Error()
}

func (se *scrubbedError) Unwrap() error { return se.err }

// Scrub wraps err so that its message is passed through scrubber. The
// original error stays reachable with errors.Is and errors.As.
func Scrub(err error, scrubber *strings.Replacer) error {
	if err == nil {
		return nil
	}
	return &scrubbedError{err: err, scrubber: scrubber}
}

// Do makes an HTTP request with the provided parameters and returns the
// response with its body read. Any status code is returned as is; only
// failures to build, send or read the request are reported as errors.
func Do(ctx context.Context, p Params) (*Response, error) {
	var br io.Reader
	if p.Body != nil {
		data, ok := p.Body.(json.RawMessage)
		if !ok {
			var err error
			data, err = json.Marshal(p.Body)
			if err != nil {
				return nil, Scrub(err, p.Scrubber)
			}
		}
		br = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, p.Method, p.URL, br)
	if err != nil {
		return nil, Scrub(err, p.Scrubber)
	}

	for k, v := range p.Headers {
		req.Header.Set(k, v)
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", version.UserAgent())
	}
	if br != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	httpc := DefaultClient
	if p.HTTPClient != nil {
		httpc = p.HTTPClient
	}

	res, err := httpc.Do(req)
	if err != nil {
		return nil, Scrub(err, p.Scrubber)
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, Scrub(err, p.Scrubber)
	}

	return &Response{StatusCode: res.StatusCode, Body: b}, nil
}

// Bytes is a response type for [Make] that returns the raw body.
type Bytes []byte

// Make makes an HTTP request with the provided parameters and unmarshals the
// JSON response body into the specified type. Non-200 responses are reported
// as *[StatusError].
func Make[Response any](ctx context.Context, p Params) (Response, error) {
	var resp Response

	res, err := Do(ctx, p)
	if err != nil {
		return resp, err
	}

	if res.StatusCode != http.StatusOK {
		return resp, Scrub(fmt.Errorf("%s %q: %w", p.Method, p.URL, &StatusError{
			StatusCode: res.StatusCode,
			Body:       res.Body,
		}), p.Scrubber)
	}

	if v, ok := any(&resp).(*Bytes); ok {
		*v = res.Body
		return resp, nil
	}

	if err := json.Unmarshal(res.Body, &resp); err != nil {
		return resp, Scrub(err, p.Scrubber)
	}

	return resp, nil
}
