// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	_ "embed"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"go.astrophena.name/tgapi/internal/cli"
	"go.astrophena.name/tgapi/internal/cli/clitest"
	"go.astrophena.name/tgapi/internal/filelock"
	"go.astrophena.name/tgapi/internal/request"
	"go.astrophena.name/tgapi/internal/testutil"

	"github.com/mmcdole/gofeed"
)

// Typical Telegram Bot API token, copied from docs.
const tgToken = "123456:ABC-DEF1234ghIkl-zyx57W2v1u123ew11"

const feedURL = "https://example.com/feed.xml"

//go:embed testdata/feed.xml
var feedXML []byte

var tgEnv = map[string]string{
	"TELEGRAM_TOKEN":   tgToken,
	"TELEGRAM_CHAT_ID": "@channel",
}

type testEnv struct {
	api *testutil.BotAPI
}

func newTestEnv(t *testing.T) *testEnv {
	te := &testEnv{api: testutil.NewBotAPI(t, tgToken)}
	var n int
	te.api.HandleFunc("sendMessage", func(map[string]any) (any, error) {
		n++
		return map[string]any{
			"message_id": n,
			"date":       1704276000,
			"chat":       map[string]any{"id": -1001234567890, "type": "channel", "username": "channel"},
		}, nil
	})
	return te
}

func (te *testEnv) fetcher(*testing.T) *fetcher {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Host {
		case "example.com":
			if r.URL.Path != "/feed.xml" {
				http.NotFound(w, r)
				return
			}
			w.Header().Set("Content-Type", "application/rss+xml")
			w.Write(feedXML)
		default:
			te.api.ServeHTTP(w, r)
		}
	})
	return &fetcher{
		httpc: testutil.MockHTTPClient(h),
		now:   func() time.Time { return time.Date(2024, time.January, 3, 12, 0, 0, 0, time.UTC) },
		sleep: func(context.Context, time.Duration) bool { return true },
	}
}

func (te *testEnv) sentTexts() []string {
	var texts []string
	for _, c := range te.api.Calls() {
		if c.Method == "sendMessage" {
			texts = append(texts, c.Params["text"].(string))
		}
	}
	return texts
}

func TestRun(t *testing.T) {
	t.Parallel()

	clitest.Run(t, func(t *testing.T) *fetcher { return newTestEnv(t).fetcher(t) }, map[string]clitest.Case[*fetcher]{
		"no args": {
			Env:     tgEnv,
			WantErr: cli.ErrInvalidArgs,
		},
		"bad n": {
			Args:    []string{"-n", "0", feedURL},
			Env:     tgEnv,
			WantErr: cli.ErrInvalidArgs,
		},
		"no chat": {
			Args:    []string{feedURL},
			Env:     map[string]string{"TELEGRAM_TOKEN": tgToken},
			WantErr: cli.ErrInvalidArgs,
		},
		"many chats": {
			Args:    []string{"-chat", "1,2", feedURL},
			Env:     tgEnv,
			WantErr: cli.ErrInvalidArgs,
		},
		"bad filter": {
			Args:    []string{"-filter", "item.title ==", feedURL},
			Env:     tgEnv,
			WantErr: cli.ErrInvalidArgs,
		},
		"feed not found": {
			Args:        []string{"https://example.com/missing.xml"},
			Env:         tgEnv,
			WantErrType: &request.StatusError{},
		},
		"dry run": {
			Args:       []string{"-dry", "-n", "2", feedURL},
			WantStdout: "Second post #examplecom\n\nThird [draft] post #examplecom\n\n",
		},
		"send": {
			Args:       []string{"-n", "2", feedURL},
			Env:        tgEnv,
			WantStdout: "1\thttps://example.com/second.pdf\n2\thttps://example.com/third\n",
		},
	})
}

func TestRunFilterAndSince(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		args []string
		want []string
	}{
		"all oldest first": {
			args: []string{feedURL},
			want: []string{"First post #examplecom", "Second post #examplecom", "Third [draft] post #examplecom"},
		},
		"since": {
			args: []string{"-since", "36h", feedURL},
			want: []string{"Second post #examplecom", "Third [draft] post #examplecom"},
		},
		"filter": {
			args: []string{"-filter", `not item.url.endswith(".pdf")`, feedURL},
			want: []string{"First post #examplecom", "Third [draft] post #examplecom"},
		},
		"filter by category": {
			args: []string{"-filter", `"go" in item.categories`, feedURL},
			want: []string{"Third [draft] post #examplecom"},
		},
		"filter applies before n": {
			args: []string{"-n", "1", "-filter", `"draft" not in item.title`, feedURL},
			want: []string{"Second post #examplecom"},
		},
		"filter error skips entry": {
			args: []string{"-filter", `item.title`, feedURL},
			want: nil,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			te := newTestEnv(t)
			clitest.Run(t, te.fetcher, map[string]clitest.Case[*fetcher]{
				name: {
					Args: tc.args,
					Env:  tgEnv,
					CheckFunc: func(t *testing.T, _ *fetcher) {
						testutil.AssertEqual(t, te.sentTexts(), tc.want)
					},
				},
			})
		})
	}
}

func TestState(t *testing.T) {
	t.Parallel()

	stateFile := filepath.Join(t.TempDir(), "state.json")
	te := newTestEnv(t)

	run := func(args ...string) {
		t.Helper()
		env := &cli.Env{
			Args:   append([]string{"-state", stateFile}, args...),
			Getenv: func(key string) string { return tgEnv[key] },
			Stdin:  strings.NewReader(""),
			Stdout: io.Discard,
			Stderr: io.Discard,
		}
		if err := cli.Run(t.Context(), te.fetcher(t), env); err != nil {
			t.Fatal(err)
		}
	}

	run("-n", "1", feedURL)
	testutil.AssertEqual(t, te.sentTexts(), []string{"Third [draft] post #examplecom"})

	run(feedURL)
	testutil.AssertEqual(t, te.sentTexts(), []string{
		"Third [draft] post #examplecom",
		"First post #examplecom",
		"Second post #examplecom",
	})

	run(feedURL)
	testutil.AssertEqual(t, len(te.sentTexts()), 3)

	st, err := openState(stateFile)
	if err != nil {
		t.Fatal(err)
	}
	defer st.close()
	fst := st.Feeds["@channel "+feedURL]
	if fst == nil {
		t.Fatalf("no state for feed, got %v", st.Feeds)
	}
	testutil.AssertEqual(t, len(fst.Sent), 3)
	testutil.AssertEqual(t, fst.LastRun, time.Date(2024, time.January, 3, 12, 0, 0, 0, time.UTC))
}

func TestStateSaveError(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "state")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	stateFile := filepath.Join(dir, "state.json")

	te := newTestEnv(t)
	te.api.HandleFunc("sendMessage", func(map[string]any) (any, error) {
		// The state directory disappears after the lock is taken.
		if err := os.RemoveAll(dir); err != nil {
			return nil, err
		}
		return map[string]any{
			"message_id": 1,
			"date":       1704276000,
			"chat":       map[string]any{"id": -1001234567890, "type": "channel"},
		}, nil
	})

	clitest.Run(t, te.fetcher, map[string]clitest.Case[*fetcher]{
		"save fails": {
			Args:            []string{"-n", "1", "-state", stateFile, feedURL},
			Env:             tgEnv,
			WantErrContains: "saving state",
		},
	})
}

func TestStateLocked(t *testing.T) {
	t.Parallel()

	stateFile := filepath.Join(t.TempDir(), "state.json")
	lock, err := filelock.Acquire(stateFile + ".lock")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { lock.Release() })

	te := newTestEnv(t)
	clitest.Run(t, te.fetcher, map[string]clitest.Case[*fetcher]{
		"locked": {
			Args:    []string{"-state", stateFile, feedURL},
			Env:     tgEnv,
			WantErr: errAlreadyRunning,
			CheckFunc: func(t *testing.T, _ *fetcher) {
				testutil.AssertEqual(t, len(te.api.Calls()), 0)
			},
		},
	})
}

func TestRemember(t *testing.T) {
	t.Parallel()

	st := &state{Feeds: map[string]*feedState{}}
	fst := st.feed("1", feedURL)
	for i := range maxRemembered + 10 {
		fst.remember(&gofeed.Item{GUID: strconv.Itoa(i)})
	}
	fst.remember(&gofeed.Item{GUID: "0"})

	testutil.AssertEqual(t, len(fst.Sent), maxRemembered)
	testutil.AssertEqual(t, fst.Sent[0], "10")
	testutil.AssertEqual(t, fst.has(&gofeed.Item{Link: "https://example.com/x"}), false)
	if st.feed("1", feedURL) != fst {
		t.Fatal("feed returned a new state for the same key")
	}
}

func TestMessageFormat(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t)
	clitest.Run(t, te.fetcher, map[string]clitest.Case[*fetcher]{
		"newest": {
			Args: []string{"-n", "1", "-thread", "9", feedURL},
			Env:  tgEnv,
			CheckFunc: func(t *testing.T, _ *fetcher) {
				calls := te.api.Calls()
				testutil.AssertEqual(t, len(calls), 1)
				testutil.AssertEqual(t, calls[0].Params, map[string]any{
					"chat_id":           "@channel",
					"message_thread_id": float64(9),
					"text":              "Third [draft] post #examplecom",
					"entities": []any{
						map[string]any{"type": "text_link", "offset": float64(0), "length": float64(18), "url": "https://example.com/third"},
					},
					"reply_markup": map[string]any{
						"inline_keyboard": []any{[]any{
							map[string]any{"text": "↪ Hacker News", "url": "https://news.ycombinator.com/item?id=3"},
						}},
					},
				})
			},
		},
	})
}

func TestHashtag(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"https://t.me/durov/1":                 "#tg",
		"https://www.youtube.com/watch?v=abc":  "#youtube",
		"https://go.dev/blog/go1.24":           "#godev",
		"not a url":                            "",
		"https://xn--80ak6aa92e.com/something": "#xn80ak6aa92ecom",
	}
	for link, want := range cases {
		testutil.AssertEqual(t, hashtag(link), want)
	}
}
