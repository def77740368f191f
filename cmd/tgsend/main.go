// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.astrophena.name/tgapi/internal/botcli"
	"go.astrophena.name/tgapi/internal/cli"
	"go.astrophena.name/tgapi/internal/cli/envflag"
	"go.astrophena.name/tgapi/internal/util/syncx"
	"go.astrophena.name/tgapi/telegram"
	"go.astrophena.name/tgapi/telegram/retry"
	"go.astrophena.name/tgapi/telegram/tgmarkup"

	"golang.org/x/time/rate"
)

const (
	sendConcurrencyLimit = 4  // N sends that can run at the same time
	sendsPerSecond       = 25 // the Bot API allows about 30 messages per second overall
	sendRetryLimit       = 5  // N attempts to send each message
)

func main() { cli.Main(new(app)) }

type app struct {
	bot       botcli.Flags
	chats     *string
	plain     bool
	silent    bool
	noPreview bool
	threadID  int
	perSecond float64
	maxWait   *time.Duration

	httpc *http.Client
	sleep func(context.Context, time.Duration) bool // for tests
}

func (a *app) EnvFlags(fs *flag.FlagSet, getenv func(string) string) {
	a.bot.Register(fs, getenv)
	a.chats = envflag.Value("chat", "TELEGRAM_CHAT_ID", "", "Comma-separated `list` of chat IDs and @usernames.", fs, getenv)
	a.maxWait = envflag.Value("max-wait", "TELEGRAM_MAX_WAIT", time.Minute, "Give up on a chat if the flood limit wait is longer than `duration`.", fs, getenv)
	fs.BoolVar(&a.plain, "plain", false, "Send text as is, without Markdown conversion.")
	fs.BoolVar(&a.silent, "silent", false, "Send without notification sound.")
	fs.BoolVar(&a.noPreview, "no-preview", false, "Disable link previews.")
	fs.IntVar(&a.threadID, "thread", 0, "Send to the forum topic with this `ID`.")
	fs.Float64Var(&a.perSecond, "rate", sendsPerSecond, "Send at most `N` messages per second.")
}

type result struct {
	chat      telegram.ChatID
	messageID int
	err       error
}

func (a *app) Run(ctx context.Context, env *cli.Env) error {
	if len(env.Args) > 1 {
		return fmt.Errorf("%w: expected at most one argument: the message", cli.ErrInvalidArgs)
	}
	chats, err := botcli.ChatIDs(*a.chats)
	if err != nil {
		return err
	}
	if a.perSecond <= 0 {
		return fmt.Errorf("%w: -rate must be positive", cli.ErrInvalidArgs)
	}

	text, err := readMessage(env)
	if err != nil {
		return err
	}

	bot, err := a.bot.Bot(env, a.httpc)
	if err != nil {
		return err
	}

	var (
		logger  = env.Slog()
		limiter = rate.NewLimiter(rate.Limit(a.perSecond), 1)
		lwg     = syncx.NewLimitedWaitGroup(sendConcurrencyLimit)
		results syncx.Protected[[]result]
	)
	policy := retry.Policy{
		Attempts: sendRetryLimit,
		MaxWait:  *a.maxWait,
		Logger:   logger,
		Sleep:    a.sleep,
	}
	results.Access(func(rs *[]result) { *rs = make([]result, len(chats)) })

	for i, chat := range chats {
		lwg.Go(func() {
			params := a.params(text, chat)
			msg, err := retry.Do(ctx, policy, func(ctx context.Context) (telegram.Message, error) {
				if err := limiter.Wait(ctx); err != nil {
					return telegram.Message{}, err
				}
				logger.Debug("sending message", "chat", chat.String())
				return telegram.SendMessage.Call(ctx, bot, params)
			})
			results.Access(func(rs *[]result) {
				(*rs)[i] = result{chat: chat, messageID: msg.MessageID, err: err}
			})
		})
	}
	lwg.Wait()

	var errs []error
	results.RAccess(func(rs []result) {
		for _, r := range rs {
			if r.err != nil {
				logger.Error("failed to send message", slog.String("chat", r.chat.String()), slog.Any("error", r.err))
				errs = append(errs, fmt.Errorf("%s: %w", r.chat, r.err))
				continue
			}
			fmt.Fprintf(env.Stdout, "%s\t%d\n", r.chat, r.messageID)
		}
	})
	return errors.Join(errs...)
}

func (a *app) params(text string, chat telegram.ChatID) telegram.SendMessageParams {
	var p telegram.SendMessageParams
	if a.plain {
		p = telegram.SendMessageParams{ChatID: chat, Text: text}
	} else {
		p = tgmarkup.FromMarkdown(text).Params(chat)
	}
	p.MessageThreadID = a.threadID
	p.DisableNotification = a.silent
	if a.noPreview {
		p.LinkPreviewOptions = &telegram.LinkPreviewOptions{IsDisabled: true}
	}
	return p
}

func readMessage(env *cli.Env) (string, error) {
	var text string
	if len(env.Args) == 1 {
		text = env.Args[0]
	} else {
		b, err := io.ReadAll(env.Stdin)
		if err != nil {
			return "", err
		}
		text = string(b)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: message is empty", cli.ErrInvalidArgs)
	}
	return text, nil
}
