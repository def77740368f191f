// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Tgsend sends a Markdown message to one or more Telegram chats.

# Usage

	$ tgsend [flags...] [message]

The message is read from standard input when not given as an argument.
Markdown formatting (bold, italic, links, code, quotes, lists) is converted
to message entities, so no escaping is needed. Pass -plain to send the text
as is.

Chats are given with -chat as a comma-separated list of numeric IDs and
@usernames:

	$ tgsend -chat -1001234567890,@mychannel 'Release **v1.2.0** is out!'

Messages are sent concurrently, paced to stay under the Bot API flood
limits. Calls that hit a flood limit anyway are retried after the interval
the Bot API asks for. For each chat, tgsend prints the chat and the ID of
the sent message.

# Environment Variables

  - TELEGRAM_TOKEN: bot token, same as -token.
  - TELEGRAM_API_URL: Bot API server URL, same as -api-url.
  - TELEGRAM_CHAT_ID: default for -chat.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/tgapi/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
