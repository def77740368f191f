// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package retry repeats Bot API calls that hit flood limits.
//
// The telegram package never retries on its own. Wrap a call with [Do] to
// wait out the retry_after interval reported by the Bot API:
//
//	msg, err := retry.Do(ctx, retry.Policy{}, func(ctx context.Context) (telegram.Message, error) {
//		return telegram.SendMessage.Call(ctx, bot, params)
//	})
package retry

import (
	"context"
	"log/slog"
	"time"

	"go.astrophena.name/tgapi/telegram"
)

// DefaultAttempts is the number of attempts made when Policy.Attempts is zero.
const DefaultAttempts = 5

// Policy configures [Do].
type Policy struct {
	// Attempts is the maximum number of calls, including the first one.
	Attempts int
	// MaxWait caps a single wait. Calls asking to wait longer fail
	// immediately with the flood limit error. Zero means no cap.
	MaxWait time.Duration
	// Logger receives a warning before each wait. If nil, slog.Default is used.
	Logger *slog.Logger
	// Sleep waits for d and reports whether it did so before ctx was done.
	// If nil, a timer is used.
	Sleep func(ctx context.Context, d time.Duration) bool
}

// Do calls f until it succeeds, fails with an error other than a flood
// limit with a positive retry_after, or the attempts are exhausted. It
// returns the last result and error.
func Do[R any](ctx context.Context, p Policy, f func(context.Context) (R, error)) (R, error) {
	attempts := p.Attempts
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	sleepFunc := p.Sleep
	if sleepFunc == nil {
		sleepFunc = sleep
	}

	var (
		res R
		err error
	)
	for attempt := 1; attempt <= attempts; attempt++ {
		res, err = f(ctx)
		if err == nil {
			return res, nil
		}

		wait, limited := telegram.RetryAfter(err)
		// A flood limit without retry_after is final.
		if !limited || wait <= 0 || attempt == attempts {
			break
		}
		if p.MaxWait > 0 && wait > p.MaxWait {
			break
		}

		logger.Warn("rate limited, waiting",
			slog.Int("attempt", attempt),
			slog.Duration("wait", wait),
			slog.String("error", err.Error()),
		)
		if !sleepFunc(ctx, wait) {
			var zero R
			return zero, ctx.Err()
		}
	}
	return res, err
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
