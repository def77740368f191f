// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"fmt"
	"net/url"

	"github.com/mmcdole/gofeed"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"
)

// rule reports whether an entry should be posted.
type rule func(*gofeed.Item) (bool, error)

func compileRule(expr string) (rule, error) {
	thread := &starlark.Thread{Name: "filter"}
	fn, err := starlark.EvalOptions(&syntax.FileOptions{}, thread, "filter", "lambda item: (\n"+expr+"\n)", nil)
	if err != nil {
		return nil, fmt.Errorf("compiling filter: %v", err)
	}

	return func(item *gofeed.Item) (bool, error) {
		val, err := starlark.Call(thread, fn, starlark.Tuple{itemValue(item)}, nil)
		if err != nil {
			return false, err
		}
		ret, ok := val.(starlark.Bool)
		if !ok {
			return false, fmt.Errorf("filter returned %s, want bool", val.Type())
		}
		return bool(ret), nil
	}, nil
}

func itemValue(item *gofeed.Item) starlark.Value {
	categories := make([]starlark.Value, 0, len(item.Categories))
	for _, c := range item.Categories {
		categories = append(categories, starlark.String(c))
	}
	return starlarkstruct.FromStringDict(starlarkstruct.Default, starlark.StringDict{
		"title":       starlark.String(item.Title),
		"url":         starlark.String(item.Link),
		"description": starlark.String(item.Description),
		"content":     starlark.String(item.Content),
		"categories":  starlark.NewList(categories),
	})
}

func hostname(link string) (string, bool) {
	u, err := url.Parse(link)
	if err != nil || u.Hostname() == "" {
		return "", false
	}
	return u.Hostname(), true
}
