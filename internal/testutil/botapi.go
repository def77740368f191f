package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
)

// BotAPI is a fake Telegram Bot API server.
type BotAPI struct {
	t     *testing.T
	token string

	mu       sync.Mutex
	calls    []BotAPICall
	handlers map[string]func(params map[string]any) (any, error)
	files    map[string][]byte
}

// BotAPICall is a method call received by [BotAPI].
type BotAPICall struct {
	Method string
	Params map[string]any
}

// BotAPIError makes a [BotAPI] handler fail the call. It is sent with Code
// as the HTTP status, like the real Bot API does.
type BotAPIError struct {
	Code        int
	Description string
	RetryAfter  int
}

func (e *BotAPIError) Error() string { return fmt.Sprintf("%d %s", e.Code, e.Description) }

// NewBotAPI returns a fake Bot API that accepts requests made with token.
// Methods without a handler fail with 404, as unknown methods do.
func NewBotAPI(t *testing.T, token string) *BotAPI {
	return &BotAPI{
		t:        t,
		token:    token,
		handlers: make(map[string]func(map[string]any) (any, error)),
		files:    make(map[string][]byte),
	}
}

// Handle makes method succeed with result.
func (b *BotAPI) Handle(method string, result any) {
	b.HandleFunc(method, func(map[string]any) (any, error) { return result, nil })
}

// HandleFunc makes method respond with what f returns. A non-nil error
// other than *BotAPIError fails the test.
func (b *BotAPI) HandleFunc(method string, f func(params map[string]any) (any, error)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[method] = f
}

// HandleFile serves content at the download URL of filePath.
func (b *BotAPI) HandleFile(filePath string, content []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.files[filePath] = content
}

// Calls returns received method calls in order.
func (b *BotAPI) Calls() []BotAPICall {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]BotAPICall(nil), b.calls...)
}

// Client returns an HTTP client that sends all requests to b.
func (b *BotAPI) Client() *http.Client { return MockHTTPClient(b) }

func (b *BotAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if filePath, ok := strings.CutPrefix(r.URL.Path, "/file/bot"+b.token+"/"); ok && r.Method == http.MethodGet {
		b.mu.Lock()
		content, ok := b.files[filePath]
		b.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Write(content)
		return
	}

	method, ok := strings.CutPrefix(r.URL.Path, "/bot"+b.token+"/")
	if !ok || r.Method != http.MethodPost {
		writeEnvelope(w, nil, &BotAPIError{Code: http.StatusUnauthorized, Description: "Unauthorized"})
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		b.t.Errorf("reading request body: %v", err)
		return
	}
	var params map[string]any
	if len(body) > 0 {
		if err := json.Unmarshal(body, &params); err != nil {
			b.t.Errorf("%s: request body %q is not a JSON object: %v", method, body, err)
		}
	}

	b.mu.Lock()
	b.calls = append(b.calls, BotAPICall{Method: method, Params: params})
	h, ok := b.handlers[method]
	b.mu.Unlock()

	if !ok {
		writeEnvelope(w, nil, &BotAPIError{Code: http.StatusNotFound, Description: "Not Found"})
		return
	}
	res, err := h(params)
	if err != nil {
		apiErr, ok := err.(*BotAPIError)
		if !ok {
			b.t.Errorf("%s: handler failed: %v", method, err)
			apiErr = &BotAPIError{Code: http.StatusInternalServerError, Description: "Internal Server Error"}
		}
		writeEnvelope(w, nil, apiErr)
		return
	}
	writeEnvelope(w, res, nil)
}

func writeEnvelope(w http.ResponseWriter, result any, apiErr *BotAPIError) {
	w.Header().Set("Content-Type", "application/json")
	if apiErr == nil {
		json.NewEncoder(w).Encode(map[string]any{"ok": true, "result": result})
		return
	}
	env := map[string]any{
		"ok":          false,
		"error_code":  apiErr.Code,
		"description": apiErr.Description,
	}
	if apiErr.RetryAfter > 0 {
		env["parameters"] = map[string]any{"retry_after": apiErr.RetryAfter}
	}
	w.WriteHeader(apiErr.Code)
	json.NewEncoder(w).Encode(env)
}
