// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"go.astrophena.name/tgapi/internal/botcli"
	"go.astrophena.name/tgapi/internal/cli"
	"go.astrophena.name/tgapi/telegram/tgstarlark"

	starlarkjson "go.starlark.net/lib/json"
	starlarktime "go.starlark.net/lib/time"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"
)

func main() { cli.Main(new(app)) }

type app struct {
	bot   botcli.Flags
	httpc *http.Client
}

func (a *app) EnvFlags(fs *flag.FlagSet, getenv func(string) string) {
	a.bot.Register(fs, getenv)
}

func (a *app) Run(ctx context.Context, env *cli.Env) error {
	if len(env.Args) == 0 {
		return fmt.Errorf("%w: expected script path", cli.ErrInvalidArgs)
	}
	script := env.Args[0]

	bot, err := a.bot.Bot(env, a.httpc)
	if err != nil {
		return err
	}

	scriptArgs := make([]starlark.Value, 0, len(env.Args)-1)
	for _, arg := range env.Args[1:] {
		scriptArgs = append(scriptArgs, starlark.String(arg))
	}
	predeclared := starlark.StringDict{
		"telegram": tgstarlark.Module(bot),
		"json":     starlarkjson.Module,
		"time":     starlarktime.Module,
		"struct":   starlark.NewBuiltin("struct", starlarkstruct.Make),
		"args":     starlark.NewList(scriptArgs),
	}

	l := &loader{
		root:        filepath.Dir(script),
		predeclared: predeclared,
		cache:       make(map[string]*entry),
		print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(env.Stdout, msg)
		},
		ctx: ctx,
	}

	done := make(chan struct{})
	defer close(done)
	thread := l.thread("main")
	go func() {
		select {
		case <-ctx.Done():
			thread.Cancel(ctx.Err().Error())
		case <-done:
		}
	}()

	src, err := os.ReadFile(script)
	if err != nil {
		return err
	}
	if _, err := starlark.ExecFileOptions(fileOptions, thread, script, src, predeclared); err != nil {
		var evalErr *starlark.EvalError
		if errors.As(err, &evalErr) {
			return errors.New(evalErr.Backtrace())
		}
		return err
	}
	return nil
}

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
	Recursion:       true,
}

// loader loads modules relative to root, executing each at most once.
type loader struct {
	root        string
	predeclared starlark.StringDict
	print       func(*starlark.Thread, string)
	ctx         context.Context

	cache map[string]*entry
}

type entry struct {
	globals starlark.StringDict
	err     error
}

func (l *loader) thread(name string) *starlark.Thread {
	thread := &starlark.Thread{Name: name, Print: l.print, Load: l.load}
	tgstarlark.SetContext(thread, l.ctx)
	return thread
}

func (l *loader) load(_ *starlark.Thread, module string) (starlark.StringDict, error) {
	if !filepath.IsLocal(filepath.FromSlash(module)) {
		return nil, fmt.Errorf("cannot load %q: outside the script directory", module)
	}
	e, ok := l.cache[module]
	if e == nil {
		if ok {
			return nil, fmt.Errorf("cycle in load graph")
		}
		// Add a placeholder to indicate "load in progress".
		l.cache[module] = nil

		path := filepath.Join(l.root, filepath.FromSlash(module))
		e = new(entry)
		src, err := os.ReadFile(path)
		if err != nil {
			e.err = err
		} else {
			e.globals, e.err = starlark.ExecFileOptions(fileOptions, l.thread("load "+module), path, src, l.predeclared)
		}
		l.cache[module] = e
	}
	return e.globals, e.err
}
