// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package telegram

import (
	"net/http"
	"net/url"
	"strings"

	"go.astrophena.name/tgapi/internal/request"
)

// DefaultBaseURL is the address of the public Bot API server.
const DefaultBaseURL = "https://api.telegram.org"

// Config configures a [Bot].
type Config struct {
	// Token is the bot token issued by @BotFather.
	Token string
	// BaseURL is the Bot API server address. If empty, DefaultBaseURL is
	// used. Set it when running a local Bot API server.
	BaseURL string
	// HTTPClient is the transport shared by all calls. If nil,
	// request.DefaultClient is used. It must be safe for concurrent use.
	HTTPClient *http.Client
}

// Bot holds the configuration needed to call Bot API methods. It is
// immutable after construction and safe for concurrent use.
type Bot struct {
	token    string
	baseURL  string
	httpc    *http.Client
	scrubber *strings.Replacer
}

// New returns a Bot configured by cfg.
func New(cfg Config) *Bot {
	b := &Bot{
		token:   cfg.Token,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpc:   cfg.HTTPClient,
	}
	if b.baseURL == "" {
		b.baseURL = DefaultBaseURL
	}
	if b.httpc == nil {
		b.httpc = request.DefaultClient
	}
	if b.token != "" {
		b.scrubber = strings.NewReplacer(b.token, "[EXPUNGED]")
	}
	return b
}

// Scrub replaces the bot token in s.
func (b *Bot) Scrub(s string) string {
	if b.scrubber == nil {
		return s
	}
	return b.scrubber.Replace(s)
}

// MethodURL returns the endpoint URL for the named method.
func (b *Bot) MethodURL(method string) (string, error) {
	if method == "" || strings.ContainsFunc(method, isReservedInMethod) {
		return "", &InvalidURLError{Method: method, URL: b.Scrub(b.baseURL + "/bot" + b.token + "/" + method)}
	}
	return b.checkURL(method, b.baseURL+"/bot"+b.token+"/"+method)
}

// FileURL returns the download URL for a file path obtained from getFile.
func (b *Bot) FileURL(filePath string) (string, error) {
	return b.checkURL("getFile", b.baseURL+"/file/bot"+b.token+"/"+strings.TrimPrefix(filePath, "/"))
}

func (b *Bot) checkURL(method, raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", &InvalidURLError{Method: method, URL: b.Scrub(raw), Err: request.Scrub(err, b.scrubber)}
	}
	if !u.IsAbs() || u.Host == "" {
		return "", &InvalidURLError{Method: method, URL: b.Scrub(raw)}
	}
	return raw, nil
}

func isReservedInMethod(r rune) bool {
	switch r {
	case '/', '?', '#', '%', ' ', '\t', '\n', '\r':
		return true
	}
	return r < 0x20 || r == 0x7f
}
