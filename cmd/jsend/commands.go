/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"dirpx.dev/jsend"
	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"
)

var errInvalid = errors.New("invalid envelopes found")

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "jsend"
	app.Usage = "validate, normalize and forward jsend envelopes"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML file with the jsend configuration",
			EnvVars: []string{"JSEND_CONFIG"},
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "require string messages in error envelopes (overrides the config file)",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		if ctx.Bool("debug") {
			return logging.SetLogLevel("jsend", "debug")
		}
		return nil
	}
	app.Commands = []*cli.Command{
		{
			Name:      "validate",
			Usage:     "report whether each document is a valid envelope",
			ArgsUsage: "[file...]",
			Action:    cmdValidate,
		},
		{
			Name:      "normalize",
			Usage:     `build an envelope from each {"error": ..., "data": ...} document`,
			ArgsUsage: "[file...]",
			Action:    cmdNormalize,
		},
		{
			Name:      "forward",
			Usage:     "decompose each envelope into an (error, data) pair",
			ArgsUsage: "[file...]",
			Action:    cmdForward,
		},
	}
	return app
}

// options resolves the component options from --config and --strict.
func options(ctx *cli.Context) ([]jsend.Option, error) {
	cfg := jsend.DefaultConfig()
	if path := ctx.String("config"); path != "" {
		c, err := jsend.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = c
	}
	if ctx.IsSet("strict") {
		cfg.Strict = ctx.Bool("strict")
	}
	log.Debugw("configuration resolved", "strict", cfg.Strict)
	return cfg.Options(), nil
}

func cmdValidate(ctx *cli.Context) error {
	opts, err := options(ctx)
	if err != nil {
		return err
	}
	v := jsend.NewValidator(opts...)

	invalid := 0
	err = eachDocument(ctx, func(name string, idx int, doc any) error {
		if _, err := v.Parse(doc); err != nil {
			invalid++
			_, werr := fmt.Fprintf(ctx.App.Writer, "%s#%d: invalid: %v\n", name, idx, err)
			return werr
		}
		_, werr := fmt.Fprintf(ctx.App.Writer, "%s#%d: valid\n", name, idx)
		return werr
	})
	if err != nil {
		return err
	}
	if invalid > 0 {
		return fmt.Errorf("%w: %d", errInvalid, invalid)
	}
	return nil
}

func cmdNormalize(ctx *cli.Context) error {
	opts, err := options(ctx)
	if err != nil {
		return err
	}
	n := jsend.NewNormalizer(opts...)
	enc := json.NewEncoder(ctx.App.Writer)

	return eachDocument(ctx, func(_ string, _ int, doc any) error {
		var errArg, data any
		if m, ok := doc.(map[string]any); ok {
			errArg, data = m["error"], m["data"]
		} else {
			data = doc
		}
		return enc.Encode(n.FromArguments(errArg, data))
	})
}

// forwarded is the printed form of a sink call.
type forwarded struct {
	Error *forwardedError `json:"error"`
	Data  any             `json:"data"`
}

type forwardedError struct {
	Message string `json:"message"`
	Code    any    `json:"code,omitempty"`
}

func cmdForward(ctx *cli.Context) error {
	opts, err := options(ctx)
	if err != nil {
		return err
	}
	n := jsend.NewNormalizer(opts...)
	enc := json.NewEncoder(ctx.App.Writer)

	return eachDocument(ctx, func(name string, idx int, doc any) error {
		env, err := n.Validator().Parse(doc)
		if err != nil {
			log.Warnw("not an envelope, normalizing", "source", name, "index", idx, "error", err)
			env = n.FromArguments(doc, nil)
		}
		var out forwarded
		jsend.Forward(env, func(err error, data any) {
			out.Data = data
			var fe *jsend.ForwardError
			if errors.As(err, &fe) {
				out.Error = &forwardedError{Message: fe.Message, Code: fe.ErrorCode()}
			}
		})
		return enc.Encode(out)
	})
}

// eachDocument decodes every JSON document of every input (standard input
// when no file is given, or for "-") and calls fn for each of them.
func eachDocument(ctx *cli.Context, fn func(name string, idx int, doc any) error) error {
	names := ctx.Args().Slice()
	if len(names) == 0 {
		names = []string{"-"}
	}
	for _, name := range names {
		if err := decodeAll(ctx, name, fn); err != nil {
			return err
		}
	}
	return nil
}

func decodeAll(ctx *cli.Context, name string, fn func(name string, idx int, doc any) error) error {
	var r io.Reader = ctx.App.Reader
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	dec := json.NewDecoder(r)
	for idx := 0; ; idx++ {
		var doc any
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("%s#%d: %w", name, idx, err)
		}
		if err := fn(name, idx, doc); err != nil {
			return err
		}
	}
}
