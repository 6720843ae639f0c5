// Package svm runs the external LIBSVM binaries.
package svm

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/hscells/arff2libsvm/dataset"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrExitStatus is returned when an external program exits with a non-zero status.
var ErrExitStatus = errors.New("external program failed")

// Command is an external program invocation.
type Command struct {
	// The path to the binary file for execution.
	Path string
	Args []string
	// Stdout, when set, receives the program's standard output instead of the log.
	Stdout string
}

// String renders the command line.
func (c Command) String() string {
	s := append([]string{c.Path}, c.Args...)
	if len(c.Stdout) > 0 {
		s = append(s, ">", c.Stdout)
	}
	return strings.Join(s, " ")
}

// Result describes a finished program.
type Result struct {
	Elapsed time.Duration
	// Output holds the standard output lines when they were not redirected to a file.
	Output []string
}

// Runner executes external programs and waits for them to terminate.
type Runner interface {
	Run(ctx context.Context, c Command) (Result, error)
}

// ExecRunner runs programs as subprocesses, relaying their output through the logger.
type ExecRunner struct{}

// NewExecRunner creates a subprocess runner.
func NewExecRunner() ExecRunner {
	return ExecRunner{}
}

// Run starts the program and blocks until it exits. The elapsed time covers start to exit. A non-zero exit status
// is reported as ErrExitStatus.
func (ExecRunner) Run(ctx context.Context, c Command) (Result, error) {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	logger := log.With().Str("program", c.Path).Logger()

	var (
		result Result
		wg     sync.WaitGroup
	)

	// Either redirect stdout to a temporary file that replaces c.Stdout on success, or capture and log it.
	var out *os.File
	if len(c.Stdout) > 0 {
		f, err := os.CreateTemp(filepath.Dir(c.Stdout), "."+filepath.Base(c.Stdout)+".*")
		if err != nil {
			return Result{}, errors.Wrapf(err, "creating output for %s", c.Stdout)
		}
		defer func() {
			f.Close()
			os.Remove(f.Name())
		}()
		if err := f.Chmod(0644); err != nil {
			return Result{}, err
		}
		out = f
		cmd.Stdout = f
	}

	var stdout io.Reader
	if out == nil {
		r, err := cmd.StdoutPipe()
		if err != nil {
			return Result{}, err
		}
		stdout = r
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return Result{}, err
	}

	if stdout != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result.Output = relay(logger, stdout, func(line string) {
				logger.Info().Msg(line)
			})
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		relay(logger, stderr, func(line string) {
			logger.Warn().Msg(line)
		})
	}()

	logger.Debug().Str("command", c.String()).Msg("starting")
	start := time.Now()
	if err := cmd.Start(); err != nil {
		wg.Wait()
		return Result{}, errors.Wrapf(err, "starting %s", c.Path)
	}

	// The pipes must be drained before waiting.
	wg.Wait()
	err = cmd.Wait()
	result.Elapsed = time.Since(start)

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return result, errors.Wrapf(ErrExitStatus, "%s exited with status %d", c.Path, exitErr.ExitCode())
		}
		return result, errors.Wrapf(err, "running %s", c.Path)
	}

	if out != nil {
		if err := out.Close(); err != nil {
			return result, errors.Wrapf(err, "writing %s", c.Stdout)
		}
		if err := os.Rename(out.Name(), c.Stdout); err != nil {
			return result, errors.Wrapf(err, "writing %s", c.Stdout)
		}
	}
	return result, nil
}

// relay reads lines from r, passing each to fn, and returns them. Whatever cannot be scanned is discarded so the
// program never blocks on a full pipe.
func relay(logger zerolog.Logger, r io.Reader, fn func(string)) []string {
	var lines []string
	s := dataset.NewScanner(r)
	for s.Scan() {
		fn(s.Text())
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil && !errors.Is(err, os.ErrClosed) {
		logger.Warn().Err(err).Msg("output no longer relayed")
	}
	io.Copy(io.Discard, r)
	return lines
}
