// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"cmp"
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"go.astrophena.name/tgapi/internal/botcli"
	"go.astrophena.name/tgapi/internal/cli"
	"go.astrophena.name/tgapi/internal/cli/envflag"
	"go.astrophena.name/tgapi/internal/request"
	"go.astrophena.name/tgapi/telegram"
	"go.astrophena.name/tgapi/telegram/retry"
	"go.astrophena.name/tgapi/telegram/tgmarkup"

	"github.com/mmcdole/gofeed"
)

const sendRetryLimit = 5 // N attempts to retry message sending

func main() { cli.Main(new(fetcher)) }

type fetcher struct {
	bot       botcli.Flags
	chat      *string
	n         int
	since     time.Duration
	threadID  int
	filter    string
	stateFile string
	dry       bool

	httpc *http.Client
	now   func() time.Time
	sleep func(context.Context, time.Duration) bool
}

func (f *fetcher) EnvFlags(fs *flag.FlagSet, getenv func(string) string) {
	f.bot.Register(fs, getenv)
	f.chat = envflag.Value("chat", "TELEGRAM_CHAT_ID", "", "Chat `ID` or @username to post to.", fs, getenv)
	fs.IntVar(&f.n, "n", 5, "Post at most `N` newest entries.")
	fs.DurationVar(&f.since, "since", 0, "Skip entries published more than `duration` ago.")
	fs.IntVar(&f.threadID, "thread", 0, "Post to the forum topic with this `ID`.")
	fs.StringVar(&f.filter, "filter", "", "Starlark `expression` selecting entries to post.")
	fs.StringVar(&f.stateFile, "state", "", "Remember posted entries in this JSON `file` and skip them on later runs.")
	fs.BoolVar(&f.dry, "dry", false, "Print messages instead of sending them.")
}

func (f *fetcher) Run(ctx context.Context, env *cli.Env) (err error) {
	if len(env.Args) != 1 {
		return fmt.Errorf("%w: expected one argument: the feed URL", cli.ErrInvalidArgs)
	}
	feedURL := env.Args[0]
	if f.n <= 0 {
		return fmt.Errorf("%w: -n must be positive", cli.ErrInvalidArgs)
	}

	var keep rule
	if f.filter != "" {
		keep, err = compileRule(f.filter)
		if err != nil {
			return fmt.Errorf("%w: %v", cli.ErrInvalidArgs, err)
		}
	}

	var (
		chat telegram.ChatID
		bot  *telegram.Bot
	)
	if !f.dry {
		chats, err := botcli.ChatIDs(*f.chat)
		if err != nil {
			return err
		}
		if len(chats) != 1 {
			return fmt.Errorf("%w: tgfeed posts to exactly one chat", cli.ErrInvalidArgs)
		}
		chat = chats[0]
		if bot, err = f.bot.Bot(env, f.httpc); err != nil {
			return err
		}
	}

	logger := env.Slog()
	feed, err := f.fetch(ctx, feedURL)
	if err != nil {
		return fmt.Errorf("fetching feed %q: %w", feedURL, err)
	}
	logger.Debug("fetched feed", "feed", feedURL, "title", feed.Title, "items", len(feed.Items))

	var fst *feedState
	if f.stateFile != "" {
		st, err := openState(f.stateFile)
		if err != nil {
			return err
		}
		defer st.close()
		fst = st.feed(strings.TrimSpace(*f.chat), feedURL)
		defer func() {
			if f.dry {
				return
			}
			fst.LastRun = f.clock()().UTC()
			if serr := st.save(); serr != nil {
				err = errors.Join(err, fmt.Errorf("saving state: %w", serr))
			}
		}()
	}

	items := slices.Clone(feed.Items)
	if fst != nil {
		items = slices.DeleteFunc(items, func(item *gofeed.Item) bool {
			if fst.has(item) {
				logger.Debug("already posted", "item", item.Link)
				return true
			}
			return false
		})
	}
	if keep != nil {
		items = slices.DeleteFunc(items, func(item *gofeed.Item) bool {
			ok, err := keep(item)
			if err != nil {
				logger.Warn("applying filter", "item", item.Link, "error", err)
				return true
			}
			if !ok {
				logger.Debug("skipped by filter", "item", item.Link)
			}
			return !ok
		})
	}
	items = f.newest(items)

	policy := retry.Policy{Attempts: sendRetryLimit, Logger: logger, Sleep: f.sleep}
	for _, item := range items {
		params := f.message(item).Params(chat)
		params.MessageThreadID = f.threadID
		params.ReplyMarkup = buttons(item)

		if f.dry {
			fmt.Fprintf(env.Stdout, "%s\n\n", params.Text)
			continue
		}

		msg, err := retry.Do(ctx, policy, func(ctx context.Context) (telegram.Message, error) {
			return telegram.SendMessage.Call(ctx, bot, params)
		})
		if err != nil {
			return fmt.Errorf("sending %q: %w", item.Link, err)
		}
		logger.Debug("sent message", "item", item.Link, "message_id", msg.MessageID)
		if fst != nil {
			fst.remember(item)
		}
		fmt.Fprintf(env.Stdout, "%d\t%s\n", msg.MessageID, item.Link)
	}
	return nil
}

func (f *fetcher) fetch(ctx context.Context, url string) (*gofeed.Feed, error) {
	b, err := request.Make[request.Bytes](ctx, request.Params{
		Method:     http.MethodGet,
		URL:        url,
		HTTPClient: f.httpc,
	})
	if err != nil {
		return nil, err
	}
	return gofeed.NewParser().ParseString(string(b))
}

// newest returns the newest entries allowed by -n and -since, oldest first.
func (f *fetcher) newest(items []*gofeed.Item) []*gofeed.Item {
	if f.since > 0 {
		cutoff := f.clock()().Add(-f.since)
		items = slices.DeleteFunc(items, func(item *gofeed.Item) bool {
			t := published(item)
			return !t.IsZero() && t.Before(cutoff)
		})
	}
	slices.SortStableFunc(items, func(a, b *gofeed.Item) int {
		return published(a).Compare(published(b))
	})
	if len(items) > f.n {
		items = items[len(items)-f.n:]
	}
	return items
}

func (f *fetcher) clock() func() time.Time {
	if f.now != nil {
		return f.now
	}
	return time.Now
}

func published(item *gofeed.Item) time.Time {
	switch {
	case item.PublishedParsed != nil:
		return *item.PublishedParsed
	case item.UpdatedParsed != nil:
		return *item.UpdatedParsed
	}
	return time.Time{}
}

var nonAlphaNumRe = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile("[^a-zA-Z0-9]+")
})

func (f *fetcher) message(item *gofeed.Item) tgmarkup.Message {
	title := cmp.Or(strings.TrimSpace(item.Title), item.Link)
	text := fmt.Sprintf("[%s](%s)", escapeMarkdown(title), item.Link)
	if tag := hashtag(item.Link); tag != "" {
		text += " " + tag
	}
	return tgmarkup.FromMarkdown(text)
}

func hashtag(link string) string {
	host, ok := hostname(link)
	if !ok {
		return ""
	}
	switch host {
	case "t.me":
		return "#tg"
	case "www.youtube.com", "youtube.com", "youtu.be":
		return "#youtube"
	}
	tag := nonAlphaNumRe().ReplaceAllString(host, "")
	if tag == "" {
		return ""
	}
	return "#" + tag
}

func buttons(item *gofeed.Item) telegram.ReplyMarkup {
	if !strings.HasPrefix(item.GUID, "https://news.ycombinator.com/item?id=") || item.GUID == item.Link {
		return nil
	}
	return &telegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]telegram.InlineKeyboardButton{{
			{Text: "↪ Hacker News", URL: item.GUID},
		}},
	}
}

var markdownReplacer = strings.NewReplacer(
	`\`, `\\`, `[`, `\[`, `]`, `\]`, `*`, `\*`, `_`, `\_`, "`", "\\`", `~`, `\~`, `<`, `\<`,
)

func escapeMarkdown(s string) string { return markdownReplacer.Replace(s) }
