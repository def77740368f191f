// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Tgcall calls a Telegram Bot API method and prints the result as JSON.

# Usage

	$ tgcall [flags...] <method> [params]

Params are a JSON or YAML mapping given as the second argument or read from
a file with -f ("-" reads standard input). Methods without parameters can
be called without them:

	$ tgcall getMe
	$ tgcall sendMessage '{chat_id: -1001234567890, text: "Hello!"}'
	$ tgcall -f params.yaml copyMessage

Only known methods are accepted unless -raw is passed. To list them:

	$ tgcall -list

# Environment Variables

  - TELEGRAM_TOKEN: bot token, same as -token.
  - TELEGRAM_API_URL: Bot API server URL, same as -api-url.

Failed calls print the error reported by the Bot API and exit with a
non-zero status.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/tgapi/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
