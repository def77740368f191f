// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package telegram is a client for the Telegram Bot API.

Every Bot API method is a POST of a JSON object to
https://api.telegram.org/bot<token>/<method>, answered with an envelope
holding either a result or an error. [Call] implements that once for all
methods; the catalog in this package describes each method as a
[Method] value binding its name to parameter and result types:

	bot := telegram.New(telegram.Config{Token: token})
	msg, err := telegram.ForwardMessage.Call(ctx, bot, telegram.ForwardMessageParams{
		ChatID:     telegram.Username("@channel"),
		FromChatID: telegram.ID(123456789),
		MessageID:  42,
	})

Methods missing from the catalog can be called with [Call] directly, or
with [Raw] to pass JSON through untouched.

# Errors

Errors are reported as distinct types so callers can decide what to do:

  - *InvalidURLError: the endpoint URL could not be built. Nothing was sent.
  - *EncodeError: parameters could not be encoded. Nothing was sent.
  - *TransportError: the request failed at the network level. May be
    transient.
  - *APIError: the Bot API rejected the request. Code and Description are
    passed through verbatim; RetryAfter is set on flood limits.
  - *DecodeError: the response didn't match the expected type.

If the context is cancelled, the error wraps [context.Canceled] (or
[context.DeadlineExceeded]) instead.

Call never retries and never logs. The retry package implements waiting
out flood limits on top of it.
*/
package telegram
