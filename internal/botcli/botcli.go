// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package botcli contains flags and setup shared by commands that call the
// Telegram Bot API.
package botcli

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"go.astrophena.name/tgapi/internal/cli"
	"go.astrophena.name/tgapi/internal/cli/envflag"
	"go.astrophena.name/tgapi/internal/httplogger"
	"go.astrophena.name/tgapi/internal/request"
	"go.astrophena.name/tgapi/telegram"
)

// Flags are the common flags of Bot API commands.
type Flags struct {
	token   *string
	apiURL  *string
	verbose *bool
}

// Register adds -token, -api-url and -v to fs. Token and API URL default
// to TELEGRAM_TOKEN and TELEGRAM_API_URL.
func (f *Flags) Register(fs *flag.FlagSet, getenv func(string) string) {
	f.token = envflag.Value("token", "TELEGRAM_TOKEN", "", "Bot `token`.", fs, getenv)
	f.apiURL = envflag.Value("api-url", "TELEGRAM_API_URL", telegram.DefaultBaseURL, "Bot API server `URL`.", fs, getenv)
	f.verbose = envflag.Value("v", "TELEGRAM_VERBOSE", false, "Log HTTP requests and debug messages.", fs, getenv)
}

// Bot returns a Bot configured from the flags. httpc is used for requests
// if not nil. With -v, requests are logged to env with the token scrubbed
// and debug logging is enabled.
func (f *Flags) Bot(env *cli.Env, httpc *http.Client) (*telegram.Bot, error) {
	if f.token == nil || *f.token == "" {
		return nil, fmt.Errorf("%w: bot token is required, pass -token or set TELEGRAM_TOKEN", cli.ErrInvalidArgs)
	}
	if httpc == nil {
		httpc = request.DefaultClient
	}
	if *f.verbose {
		env.Level.Set(slog.LevelDebug)
		httpc = &http.Client{
			Transport: httplogger.New(httpc.Transport, env.Logf, strings.NewReplacer(*f.token, "[EXPUNGED]")),
			Timeout:   httpc.Timeout,
		}
	}
	return telegram.New(telegram.Config{
		Token:      *f.token,
		BaseURL:    *f.apiURL,
		HTTPClient: httpc,
	}), nil
}

// ChatIDs parses a comma-separated list of chat IDs and usernames.
func ChatIDs(s string) ([]telegram.ChatID, error) {
	var ids []telegram.ChatID
	for part := range strings.SplitSeq(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		id, err := telegram.ParseChatID(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cli.ErrInvalidArgs, err)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: chat ID is required, pass -chat or set TELEGRAM_CHAT_ID", cli.ErrInvalidArgs)
	}
	return ids, nil
}
