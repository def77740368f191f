// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package envflag

import (
	"flag"
	"io"
	"testing"
	"time"

	"go.astrophena.name/tgapi/internal/testutil"
)

func getenv(env map[string]string) func(string) string {
	return func(key string) string { return env[key] }
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestValue(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		env  map[string]string
		args []string
		want string
	}{
		"default": {
			want: "https://api.telegram.org",
		},
		"environment": {
			env:  map[string]string{"TELEGRAM_API_URL": "http://localhost:8081"},
			want: "http://localhost:8081",
		},
		"flag wins": {
			env:  map[string]string{"TELEGRAM_API_URL": "http://localhost:8081"},
			args: []string{"-api-url", "http://localhost:9090"},
			want: "http://localhost:9090",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			fs := newFlagSet()
			got := Value("api-url", "TELEGRAM_API_URL", "https://api.telegram.org", "Bot API `URL`.", fs, getenv(tc.env))
			if err := fs.Parse(tc.args); err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, *got, tc.want)
		})
	}
}

func TestValueTypes(t *testing.T) {
	t.Parallel()

	env := getenv(map[string]string{
		"N":        "5",
		"CHAT":     "-1001234567890",
		"RATE":     "0.5",
		"VERBOSE":  "true",
		"INTERVAL": "1m30s",
		"BAD":      "not a number",
	})
	fs := newFlagSet()
	n := Value("n", "N", 1, "", fs, env)
	chat := Value("chat", "CHAT", int64(0), "", fs, env)
	rate := Value("rate", "RATE", 1.0, "", fs, env)
	verbose := Value("v", "VERBOSE", false, "", fs, env)
	interval := Value("interval", "INTERVAL", time.Second, "", fs, env)
	bad := Value("bad", "BAD", 7, "", fs, env)
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}

	testutil.AssertEqual(t, *n, 5)
	testutil.AssertEqual(t, *chat, int64(-1001234567890))
	testutil.AssertEqual(t, *rate, 0.5)
	testutil.AssertEqual(t, *verbose, true)
	testutil.AssertEqual(t, *interval, 90*time.Second)
	testutil.AssertEqual(t, *bad, 7)
}

func TestBoolFlagWithoutValue(t *testing.T) {
	t.Parallel()

	fs := newFlagSet()
	v := Value("v", "VERBOSE", false, "Verbose.", fs, getenv(nil))
	if err := fs.Parse([]string{"-v", "arg"}); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, *v, true)
	testutil.AssertEqual(t, fs.Args(), []string{"arg"})
}

func TestInvalidFlagValue(t *testing.T) {
	t.Parallel()

	fs := newFlagSet()
	Value("n", "N", 1, "", fs, getenv(nil))
	if err := fs.Parse([]string{"-n", "many"}); err == nil {
		t.Fatal("want error, got nil")
	}
}

func TestUsageMentionsEnv(t *testing.T) {
	t.Parallel()

	fs := newFlagSet()
	Value("token", "TELEGRAM_TOKEN", "", "Bot token.", fs, getenv(nil))
	testutil.AssertEqual(t, fs.Lookup("token").Usage, "Bot token. Can be overridden by TELEGRAM_TOKEN environment variable.")
}
