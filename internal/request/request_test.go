package request_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.astrophena.name/tgapi/internal/request"
	"go.astrophena.name/tgapi/internal/testutil"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /echo", func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		json.NewEncoder(w).Encode(map[string]string{
			"body":         string(b),
			"content_type": r.Header.Get("Content-Type"),
			"user_agent":   r.Header.Get("User-Agent"),
			"x_test":       r.Header.Get("X-Test"),
		})
	})
	mux.HandleFunc("GET /bytes", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "raw bytes")
	})
	mux.HandleFunc("POST /fail", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestMake(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	cases := map[string]struct {
		params request.Params
		want   map[string]string
	}{
		"struct body": {
			params: request.Params{
				Method: http.MethodPost,
				URL:    ts.URL + "/echo",
				Body:   map[string]string{"key": "value"},
			},
			want: map[string]string{
				"body":         `{"key":"value"}`,
				"content_type": "application/json",
				"user_agent":   "",
				"x_test":       "",
			},
		},
		"raw body and headers": {
			params: request.Params{
				Method:     http.MethodPost,
				URL:        ts.URL + "/echo",
				Body:       json.RawMessage(`{"chat_id": 1}`),
				Headers:    map[string]string{"X-Test": "test", "User-Agent": "custom"},
				HTTPClient: &http.Client{},
			},
			want: map[string]string{
				"body":         `{"chat_id": 1}`,
				"content_type": "application/json",
				"user_agent":   "custom",
				"x_test":       "test",
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := request.Make[map[string]string](t.Context(), tc.params)
			if err != nil {
				t.Fatal(err)
			}
			if tc.want["user_agent"] == "" {
				if !strings.HasPrefix(got["user_agent"], "tgapi/") {
					t.Errorf("default User-Agent %q must start with tgapi/", got["user_agent"])
				}
				tc.want["user_agent"] = got["user_agent"]
			}
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}

func TestMakeBytes(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	got, err := request.Make[request.Bytes](t.Context(), request.Params{
		Method: http.MethodGet,
		URL:    ts.URL + "/bytes",
	})
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, string(got), "raw bytes")
}

func TestMakeStatusError(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	const secret = "s3cr3t"
	_, err := request.Make[request.Bytes](t.Context(), request.Params{
		Method:   http.MethodPost,
		URL:      ts.URL + "/fail?token=" + secret,
		Scrubber: strings.NewReplacer(secret, "[EXPUNGED]"),
	})

	var se *request.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("want *request.StatusError, got %v", err)
	}
	testutil.AssertEqual(t, se.StatusCode, http.StatusBadGateway)
	testutil.AssertErrorContains(t, err, "want 200, got 502")
	testutil.AssertErrorContains(t, err, "[EXPUNGED]")
	if strings.Contains(err.Error(), secret) {
		t.Fatalf("error %q leaks the secret", err)
	}
}

func TestDoReturnsAnyStatus(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	res, err := request.Do(t.Context(), request.Params{
		Method: http.MethodPost,
		URL:    ts.URL + "/fail",
	})
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, res.StatusCode, http.StatusBadGateway)
	testutil.AssertEqual(t, string(res.Body), "bad gateway\n")
}

func TestDoScrubsTransportErrors(t *testing.T) {
	t.Parallel()

	const secret = "s3cr3t"
	_, err := request.Do(t.Context(), request.Params{
		Method: http.MethodPost,
		URL:    "http://127.0.0.1:0/bot" + secret + "/getMe",
		HTTPClient: &http.Client{Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		})},
		Scrubber: strings.NewReplacer(secret, "[EXPUNGED]"),
	})
	testutil.AssertErrorContains(t, err, "connection refused")
	if strings.Contains(err.Error(), secret) {
		t.Fatalf("error %q leaks the secret", err)
	}
}

func TestScrubNil(t *testing.T) {
	t.Parallel()
	testutil.AssertEqual(t, request.Scrub(nil, strings.NewReplacer("a", "b")), nil)
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }
