// Package runner executes an approved command line in-process with the
// mvdan.cc/sh interpreter instead of handing it to /bin/sh.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Options controls one execution. Zero values inherit from the process.
type Options struct {
	Dir     string
	Env     []string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Timeout time.Duration
}

// Result is the outcome of a command that ran to completion.
type Result struct {
	ExitCode int
	Duration time.Duration
}

// Parse parses command as a bash program.
func Parse(command string) (*syntax.File, error) {
	parser := syntax.NewParser(syntax.KeepComments(false), syntax.Variant(syntax.LangBash))
	file, err := parser.Parse(strings.NewReader(command), "")
	if err != nil {
		return nil, fmt.Errorf("parse command: %w", err)
	}
	return file, nil
}

// Run parses and executes command. A non-zero exit status is reported in
// Result.ExitCode, not as an error; err is set only when the command could
// not be started or was interrupted.
func Run(ctx context.Context, command string, opts Options) (res Result, err error) {
	file, err := Parse(command)
	if err != nil {
		return Result{}, err
	}

	// The interpreter panics on a few AST nodes it does not support.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("interpreter panic: %v", r)
		}
	}()

	env := opts.Env
	if env == nil {
		env = os.Environ()
	}
	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	runnerOpts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(stdin, stdout, stderr),
	}
	if opts.Dir != "" {
		runnerOpts = append(runnerOpts, interp.Dir(opts.Dir))
	}

	r, err := interp.New(runnerOpts...)
	if err != nil {
		return Result{}, fmt.Errorf("create interpreter: %w", err)
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	runErr := r.Run(ctx, file)
	res.Duration = time.Since(start)

	if runErr == nil {
		return res, nil
	}

	var status interp.ExitStatus
	if errors.As(runErr, &status) {
		res.ExitCode = int(status)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, ctxErr
		}
		return res, nil
	}
	return res, runErr
}
