package wsl

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/wslkit/wslctl/src/common/errors"
)

// Invoker launches the external tool and returns its decoded standard
// output. The two entry points match the two ways the tool is used:
// Invoke for captured-output calls and Attach for sessions wired to the
// caller's terminal.
type Invoker interface {
	// Invoke runs the tool with the given arguments and returns its
	// stdout as non-empty lines. A non-zero exit status becomes an
	// error unless ignoreErrors is set, in which case an empty slice
	// is returned.
	Invoke(ctx context.Context, args []string, ignoreErrors bool) ([]string, error)

	// Attach runs the tool with stdin/stdout/stderr connected to the
	// current process. A non-zero exit status of the child is
	// propagated as an error.
	Attach(ctx context.Context, args []string) error
}

// ToolInvoker is the production Invoker backed by wsl.exe.
type ToolInvoker struct {
	cfg Config
}

// NewInvoker creates an Invoker for the given configuration.
func NewInvoker(cfg Config) *ToolInvoker {
	return &ToolInvoker{cfg: cfg}
}

// Invoke implements Invoker. Output is decoded from UTF-16LE or UTF-8
// depending on the configuration, split into lines, and stripped of
// empty lines.
func (t *ToolInvoker) Invoke(ctx context.Context, args []string, ignoreErrors bool) ([]string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, t.cfg.Tool, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Env = t.childEnv()

	runErr := cmd.Run()
	lines := splitOutput(t.decode(stdout.Bytes()))

	if runErr != nil {
		if ignoreErrors {
			return nil, nil
		}
		captured := lines
		if msg := strings.TrimSpace(t.decode(stderr.Bytes())); msg != "" {
			captured = append(captured, msg)
		}
		return nil, toolFailure(args, captured, runErr)
	}
	return lines, nil
}

// Attach implements Invoker.
func (t *ToolInvoker) Attach(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, t.cfg.Tool, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = t.childEnv()

	if err := cmd.Run(); err != nil {
		return toolFailure(args, nil, err)
	}
	return nil
}

// childEnv builds the child environment: the parent environment plus
// the per-call entries from the configuration. The parent environment
// itself is never mutated.
func (t *ToolInvoker) childEnv() []string {
	if len(t.cfg.Env) == 0 {
		return nil // inherit as-is
	}
	return append(os.Environ(), t.cfg.Env...)
}

// decode converts raw tool output to a string using the configured
// encoding.
func (t *ToolInvoker) decode(raw []byte) string {
	if !t.cfg.UTF16 {
		return string(raw)
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	decoded, err := dec.Bytes(raw)
	if err != nil {
		// Mis-encoded output is still better surfaced than dropped.
		return string(raw)
	}
	return string(decoded)
}

// splitOutput splits decoded output into trimmed, non-empty lines.
func splitOutput(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// toolFailure wraps a non-zero exit of the tool, carrying the captured
// output as context for the user-facing message.
func toolFailure(args []string, output []string, cause error) error {
	msg := "wsl " + strings.Join(args, " ") + " failed"
	if len(output) > 0 {
		msg += ": " + strings.Join(output, " / ")
	}
	return errors.ErrToolExec.WithMessage(msg).WithCause(cause)
}
