// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Tgscript runs a Starlark script that can call the Telegram Bot API.

# Usage

	$ tgscript [flags...] <script.star> [args...]

The script can use these predeclared names:

  - telegram: the Bot API module, see below.
  - json: the Starlark json module (encode, decode, indent).
  - time: the Starlark time module.
  - struct: creates a struct from keyword arguments.
  - args: a list of strings with the arguments after the script name.

Other files can be loaded with load, relative to the directory of the
script.

# Telegram Module

	telegram.call(method, args) -> value
	telegram.get_file(file_id) -> bytes
	telegram.markdown(text) -> dict

telegram.call calls a Bot API method with args, a dict of parameters, and
returns the result. Failed calls stop the script with the error from the
Bot API. telegram.markdown converts Markdown to a dict with text and
entities:

	msg = telegram.markdown("Hello, **%s**!" % args[0])
	telegram.call(method = "sendMessage", args = {
	    "chat_id": -1001234567890,
	    "text": msg["text"],
	    "entities": msg["entities"],
	})

# Environment Variables

  - TELEGRAM_TOKEN: bot token, same as -token.
  - TELEGRAM_API_URL: Bot API server URL, same as -api-url.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/tgapi/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
