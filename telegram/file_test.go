// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package telegram

import (
	"errors"
	"io"
	"net/http"
	"testing"

	"go.astrophena.name/tgapi/internal/testutil"
)

func TestDownloadFile(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /bot"+testToken+"/getFile", func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		switch string(b) {
		case `{"file_id":"ok"}`:
			io.WriteString(w, `{"ok":true,"result":{"file_id":"ok","file_unique_id":"u","file_path":"photos/file_1.jpg"}}`)
		case `{"file_id":"gone"}`:
			io.WriteString(w, `{"ok":true,"result":{"file_id":"gone","file_unique_id":"u"}}`)
		case `{"file_id":"missing"}`:
			io.WriteString(w, `{"ok":true,"result":{"file_id":"missing","file_unique_id":"u","file_path":"photos/missing.jpg"}}`)
		default:
			w.WriteHeader(http.StatusBadRequest)
			io.WriteString(w, `{"ok":false,"error_code":400,"description":"Bad Request: invalid file_id"}`)
		}
	})
	mux.HandleFunc("GET /file/bot"+testToken+"/photos/file_1.jpg", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "JPEG")
	})

	bot := New(Config{
		Token:      testToken,
		BaseURL:    "https://api.example.com",
		HTTPClient: testutil.MockHTTPClient(mux),
	})

	got, err := bot.DownloadFile(t.Context(), "ok")
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, string(got), "JPEG")

	_, err = bot.DownloadFile(t.Context(), "bad")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *APIError, got %v", err)
	}
	testutil.AssertEqual(t, apiErr.Code, 400)

	_, err = bot.DownloadFile(t.Context(), "gone")
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("want *DecodeError, got %v", err)
	}

	_, err = bot.DownloadFile(t.Context(), "missing")
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("want *TransportError, got %v", err)
	}
	testutil.AssertErrorContains(t, err, "404")
	testutil.AssertErrorContains(t, err, "[EXPUNGED]")
}
