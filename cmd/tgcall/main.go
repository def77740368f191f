// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"text/tabwriter"

	"go.astrophena.name/tgapi/internal/botcli"
	"go.astrophena.name/tgapi/internal/cli"
	"go.astrophena.name/tgapi/telegram"

	"gopkg.in/yaml.v3"
)

func main() { cli.Main(new(app)) }

type app struct {
	bot   botcli.Flags
	list  bool
	raw   bool
	file  string
	httpc *http.Client
}

func (a *app) EnvFlags(fs *flag.FlagSet, getenv func(string) string) {
	a.bot.Register(fs, getenv)
	fs.BoolVar(&a.list, "list", false, "List known methods and exit.")
	fs.BoolVar(&a.raw, "raw", false, "Allow calling methods that are not known.")
	fs.StringVar(&a.file, "f", "", "Read params from `file` (\"-\" for standard input).")
}

func (a *app) Run(ctx context.Context, env *cli.Env) error {
	if a.list {
		return listMethods(env.Stdout)
	}

	if len(env.Args) == 0 || len(env.Args) > 2 {
		return fmt.Errorf("%w: expected method name and optional params", cli.ErrInvalidArgs)
	}
	method := env.Args[0]
	if _, ok := telegram.LookupMethod(method); !ok && !a.raw {
		return fmt.Errorf("%w: unknown method %q, see -list or pass -raw", cli.ErrInvalidArgs, method)
	}

	src, err := a.readParams(env)
	if err != nil {
		return err
	}
	params, err := yamlToJSON(src)
	if err != nil {
		return fmt.Errorf("%w: parsing params: %v", cli.ErrInvalidArgs, err)
	}

	bot, err := a.bot.Bot(env, a.httpc)
	if err != nil {
		return err
	}

	env.Slog().Debug("calling method", "method", method, "params", string(params))
	res, err := telegram.Raw(method).Call(ctx, bot, params)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, res, "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err = out.WriteTo(env.Stdout)
	return err
}

func (a *app) readParams(env *cli.Env) ([]byte, error) {
	switch {
	case a.file != "" && len(env.Args) == 2:
		return nil, fmt.Errorf("%w: params given both inline and with -f", cli.ErrInvalidArgs)
	case a.file == "-":
		return io.ReadAll(env.Stdin)
	case a.file != "":
		return os.ReadFile(a.file)
	case len(env.Args) == 2:
		return []byte(env.Args[1]), nil
	}
	return nil, nil
}

func listMethods(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, d := range telegram.Methods() {
		fmt.Fprintf(tw, "%s\t%s\n", d.Name, d.Doc)
	}
	return tw.Flush()
}

// yamlToJSON converts a YAML mapping (and thus JSON, which is valid YAML) to
// JSON. Empty input yields an empty object.
func yamlToJSON(src []byte) (json.RawMessage, error) {
	var v any
	if err := yaml.Unmarshal(src, &v); err != nil {
		return nil, err
	}
	if v == nil {
		return json.RawMessage("{}"), nil
	}
	v = normalize(v)
	if _, ok := v.(map[string]any); !ok {
		return nil, fmt.Errorf("params must be a mapping, got %T", v)
	}
	return json.Marshal(v)
}

// normalize makes values decoded by yaml.v3 encodable as JSON.
func normalize(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, e := range v {
			v[k] = normalize(e)
		}
		return v
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, e := range v {
			m[fmt.Sprint(k)] = normalize(e)
		}
		return m
	case []any:
		for i, e := range v {
			v[i] = normalize(e)
		}
		return v
	}
	return v
}
