// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package telegram

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// InvalidURLError is returned when the endpoint URL for a method can't be
// built, either because the method name is malformed or because the
// configured base URL is. No request is made in this case.
type InvalidURLError struct {
	Method string
	URL    string // token is scrubbed
	Err    error  // may be nil
}

func (e *InvalidURLError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("telegram: %s: invalid URL %q: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("telegram: %s: invalid URL %q", e.Method, e.URL)
}

func (e *InvalidURLError) Unwrap() error { return e.Err }

// EncodeError is returned when method parameters can't be encoded to JSON.
// No request is made in this case.
type EncodeError struct {
	Method string
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("telegram: %s: encoding parameters: %v", e.Method, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// TransportError is returned when the request could not be completed at the
// network level, or when the server replied with something that isn't a Bot
// API response at all (for example, an error page from a proxy). It may be
// transient.
type TransportError struct {
	Method string
	Err    error // token is scrubbed from its message
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("telegram: %s: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is an error reported by the Bot API in a response with ok set to
// false. Code and Description are passed through verbatim.
type APIError struct {
	Method      string
	Code        int
	Description string
	// RetryAfter is how long to wait before repeating the request, set when
	// the flood limit was exceeded.
	RetryAfter time.Duration
	// MigrateToChatID is set when the group was migrated to a supergroup
	// with this identifier.
	MigrateToChatID int64
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram: %s: %d %s", e.Method, e.Code, e.Description)
}

// DecodeError is returned when a response doesn't match the expected shape.
// It usually means the client and the Bot API disagree about the schema.
type DecodeError struct {
	Method string
	// Type is the Go type the result was decoded into.
	Type string
	// Field is the offending field path, if known.
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("telegram: %s: decoding %s: field %q: %v", e.Method, e.Type, e.Field, e.Err)
	}
	return fmt.Sprintf("telegram: %s: decoding %s: %v", e.Method, e.Type, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// RetryAfter reports how long the caller should wait before repeating a
// request that failed with err, and whether err is a flood limit error at
// all.
func RetryAfter(err error) (time.Duration, bool) {
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Code != http.StatusTooManyRequests {
		return 0, false
	}
	return apiErr.RetryAfter, true
}

// IsRetryable reports whether repeating the request that failed with err
// may succeed: flood limits, transport failures and server-side errors.
// Cancellation, invalid URLs, encoding and decoding errors, and other API
// errors are not retryable.
func IsRetryable(err error) bool {
	var (
		apiErr       *APIError
		transportErr *TransportError
	)
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= 500
	case errors.As(err, &transportErr):
		return true
	}
	return false
}
