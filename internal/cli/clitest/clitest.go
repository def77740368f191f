// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package clitest provides utilities for testing command-line applications.
package clitest

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"go.astrophena.name/tgapi/internal/cli"
)

// Case represents a single test case for a command-line application.
type Case[App cli.App] struct {
	// Args are the command-line arguments to pass to the application.
	Args []string
	// Stdin is the optional standard input to pass to the application.
	Stdin io.Reader
	// Env are the environment variables visible to the application.
	Env map[string]string
	// WantErr is the expected error to be returned by the application, checked
	// with errors.Is.
	WantErr error
	// WantErrType is the expected type of the error to be returned by the
	// application, checked with errors.As.
	WantErrType error
	// WantErrContains is the expected substring of the error message.
	WantErrContains string
	// WantNothingPrinted indicates that no output should be printed to stdout or
	// stderr.
	WantNothingPrinted bool
	// WantStdout, if set, must be equal to the whole stdout output.
	WantStdout string
	// WantInStdout is the expected substring to be present in the stdout output.
	WantInStdout string
	// WantInStderr is the expected substring to be present in the stderr output.
	WantInStderr string
	// CheckFunc is an optional function to perform additional checks after the
	// application has run.
	CheckFunc func(*testing.T, App)
}

// Run runs the provided test cases against the given command-line
// application. setup is called once per case to create a fresh application.
func Run[App cli.App](t *testing.T, setup func(*testing.T) App, cases map[string]Case[App]) {
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			app := setup(t)
			stdout, stderr, err := run(t, app, tc)
			check(t, tc, err)

			if tc.WantNothingPrinted {
				if stdout != "" {
					t.Errorf("stdout must be empty, got: %q", stdout)
				}
				if stderr != "" {
					t.Errorf("stderr must be empty, got: %q", stderr)
				}
			}
			if tc.WantStdout != "" && stdout != tc.WantStdout {
				t.Errorf("stdout must be %q, got: %q", tc.WantStdout, stdout)
			}
			if tc.WantInStdout != "" && !strings.Contains(stdout, tc.WantInStdout) {
				t.Errorf("stdout must contain %q, got: %q", tc.WantInStdout, stdout)
			}
			if tc.WantInStderr != "" && !strings.Contains(stderr, tc.WantInStderr) {
				t.Errorf("stderr must contain %q, got: %q", tc.WantInStderr, stderr)
			}

			if tc.CheckFunc != nil {
				tc.CheckFunc(t, app)
			}
		})
	}
}

func run[App cli.App](t *testing.T, app App, tc Case[App]) (stdout, stderr string, err error) {
	stdin := tc.Stdin
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	var outBuf, errBuf bytes.Buffer
	env := &cli.Env{
		Args:   tc.Args,
		Getenv: getenvFunc(tc.Env),
		Stdin:  stdin,
		Stdout: &outBuf,
		Stderr: &errBuf,
	}
	err = cli.Run(t.Context(), app, env)
	return outBuf.String(), errBuf.String(), err
}

func check[App cli.App](t *testing.T, tc Case[App], err error) {
	t.Helper()

	if err == nil {
		if tc.WantErr != nil {
			t.Fatalf("must fail with error: %v", tc.WantErr)
		}
		if tc.WantErrType != nil {
			t.Fatalf("must fail with error type %T", tc.WantErrType)
		}
		if tc.WantErrContains != "" {
			t.Fatalf("must fail with error containing %q", tc.WantErrContains)
		}
		return
	}

	if tc.WantErr == nil && tc.WantErrType == nil && tc.WantErrContains == "" {
		t.Fatalf("unexpected error: %v", err)
	}
	if tc.WantErr != nil && !errors.Is(err, tc.WantErr) {
		t.Fatalf("want error %v, got: %v", tc.WantErr, err)
	}
	if tc.WantErrType != nil {
		target := reflect.New(reflect.TypeOf(tc.WantErrType))
		if !errors.As(err, target.Interface()) {
			t.Fatalf("want error type %T, got %T (%v)", tc.WantErrType, err, err)
		}
	}
	if tc.WantErrContains != "" && !strings.Contains(err.Error(), tc.WantErrContains) {
		t.Fatalf("want error containing %q, got: %v", tc.WantErrContains, err)
	}
}

func getenvFunc(env map[string]string) func(string) string {
	return func(name string) string {
		return env[name]
	}
}
