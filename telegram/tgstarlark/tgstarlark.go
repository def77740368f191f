// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package tgstarlark exposes the Telegram Bot API to Starlark scripts.
//
// The module provides these functions:
//
//	telegram.call(method, args) -> value
//	telegram.get_file(file_id) -> bytes
//	telegram.markdown(text) -> dict
//
// telegram.call sends args, a dict, as the parameters of method and returns
// the decoded result. API errors fail the script with the error description.
// telegram.markdown converts Markdown to a dict with "text" and "entities"
// keys that can be merged into sendMessage arguments.
package tgstarlark

import (
	"context"
	"encoding/json"
	"fmt"

	"go.astrophena.name/tgapi/telegram"
	"go.astrophena.name/tgapi/telegram/tgmarkup"

	starlarkjson "go.starlark.net/lib/json"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

const contextKey = "context"

// SetContext attaches ctx to thread. Calls made by the module are bound to
// it. Threads without a context use context.Background.
func SetContext(thread *starlark.Thread, ctx context.Context) {
	thread.SetLocal(contextKey, ctx)
}

func threadContext(thread *starlark.Thread) context.Context {
	if ctx, ok := thread.Local(contextKey).(context.Context); ok {
		return ctx
	}
	return context.Background()
}

// Module returns a Starlark module that calls the Bot API with bot.
func Module(bot *telegram.Bot) *starlarkstruct.Module {
	m := &module{bot: bot}
	return &starlarkstruct.Module{
		Name: "telegram",
		Members: starlark.StringDict{
			"call":     starlark.NewBuiltin("telegram.call", m.call),
			"get_file": starlark.NewBuiltin("telegram.get_file", m.getFile),
			"markdown": starlark.NewBuiltin("telegram.markdown", markdown),
		},
	}
}

type module struct {
	bot *telegram.Bot
}

func (m *module) call(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(args) > 0 {
		return nil, fmt.Errorf("%s: unexpected positional arguments", b.Name())
	}
	var (
		method   string
		argsDict *starlark.Dict
	)
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "method", &method, "args?", &argsDict); err != nil {
		return nil, err
	}

	params := json.RawMessage("{}")
	if argsDict != nil {
		raw, err := encode(thread, argsDict)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to encode received args to JSON: %v", b.Name(), err)
		}
		params = raw
	}

	res, err := telegram.Raw(method).Call(threadContext(thread), m.bot, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", b.Name(), err)
	}
	if len(res) == 0 {
		return starlark.None, nil
	}
	return decode(thread, res)
}

func (m *module) getFile(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var fileID string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "file_id", &fileID); err != nil {
		return nil, err
	}
	buf, err := m.bot.DownloadFile(threadContext(thread), fileID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to download file %q: %v", b.Name(), fileID, err)
	}
	return starlark.Bytes(buf), nil
}

func markdown(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "text", &text); err != nil {
		return nil, err
	}
	msg := tgmarkup.FromMarkdown(text)
	if msg.Entities == nil {
		msg.Entities = []telegram.MessageEntity{}
	}
	raw, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", b.Name(), err)
	}
	return decode(thread, raw)
}

func encode(thread *starlark.Thread, v starlark.Value) (json.RawMessage, error) {
	s, err := starlark.Call(thread, starlarkjson.Module.Members["encode"], starlark.Tuple{v}, nil)
	if err != nil {
		return nil, err
	}
	str, ok := s.(starlark.String)
	if !ok {
		return nil, fmt.Errorf("json.encode returned %s, want string", s.Type())
	}
	return json.RawMessage(str), nil
}

func decode(thread *starlark.Thread, raw json.RawMessage) (starlark.Value, error) {
	return starlark.Call(thread, starlarkjson.Module.Members["decode"], starlark.Tuple{starlark.String(raw)}, nil)
}
