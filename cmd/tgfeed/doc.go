// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Tgfeed posts the newest entries of an RSS, Atom or JSON feed to a Telegram
chat.

# Usage

	$ tgfeed [flags...] <feed URL>

Entries are sent oldest first, one message per entry, with the entry title
linking to the entry. Use -n to choose how many of the newest entries to
post and -since to skip entries published earlier than the given duration
ago:

	$ tgfeed -chat @mychannel -n 3 -since 24h https://go.dev/blog/feed.atom

# Filtering

The -filter flag takes a Starlark expression that decides whether an entry
is posted. The entry is available as item, a struct with these fields:

  - title: the title of the entry.
  - url: the link of the entry.
  - description: the description of the entry.
  - content: the content of the entry.
  - categories: a list of categories the entry belongs to.

For example, to skip PDF files:

	$ tgfeed -filter 'not item.url.endswith(".pdf")' https://hnrss.org/newest

# State

With -state, tgfeed remembers which entries it posted to which chat in a
JSON file and skips them on later runs, so it can run from cron:

	$ tgfeed -chat @mychannel -state ~/.cache/tgfeed.json https://go.dev/blog/feed.atom

The file is replaced atomically. While tgfeed runs, it holds a lock on the
file with a .lock suffix, and a second tgfeed using the same file exits
with an error.

# Environment Variables

  - TELEGRAM_TOKEN: bot token, same as -token.
  - TELEGRAM_API_URL: Bot API server URL, same as -api-url.
  - TELEGRAM_CHAT_ID: default for -chat.

With -dry, messages are printed instead of sent and no token is needed.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/tgapi/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
