// Package launcher opens a project in the editor as an external process.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
)

// NewWindowFlag makes the editor open the path in a fresh window.
const NewWindowFlag = "--new-window"

var (
	// ErrEditorNotFound means the editor binary is not on PATH.
	ErrEditorNotFound = errors.New("editor command not found")
	// ErrLaunch wraps any other failure starting or running the editor.
	ErrLaunch = errors.New("launching editor")
)

// Runner executes name with args. It exists so tests can observe the
// invocation without starting a process.
type Runner func(ctx context.Context, name string, args ...string) error

// Launcher runs the editor with a project path as its last argument.
type Launcher struct {
	// Command is the editor binary followed by its fixed arguments.
	Command []string
	Run     Runner
}

// New returns a Launcher for binary with the new-window flag.
func New(binary string) *Launcher {
	return &Launcher{Command: []string{binary, NewWindowFlag}, Run: execRunner}
}

// Parse builds a Launcher from a shell-quoted command line such as
// `code --new-window` or `"/Applications/Visual Studio Code.app/.../code" -n`.
func Parse(commandLine string) (*Launcher, error) {
	words, err := shellquote.Split(commandLine)
	if err != nil {
		return nil, fmt.Errorf("parsing editor command %q: %w", commandLine, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("parsing editor command: empty command")
	}
	return &Launcher{Command: words, Run: execRunner}, nil
}

// String renders the command line with shell quoting.
func (l *Launcher) String() string {
	return shellquote.Join(l.Command...)
}

// Launch opens path in the editor and waits for the launcher binary to
// return. The editor itself keeps running detached.
func (l *Launcher) Launch(ctx context.Context, path string) error {
	if len(l.Command) == 0 {
		return fmt.Errorf("%w: no command configured", ErrLaunch)
	}
	run := l.Run
	if run == nil {
		run = execRunner
	}

	name := l.Command[0]
	args := append(append([]string(nil), l.Command[1:]...), path)
	slog.Debug("launching editor", "cmd", name, "args", args)

	if err := run(ctx, name, args...); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %q (is it installed and on PATH?)", ErrEditorNotFound, name)
		}
		return fmt.Errorf("%w: %w", ErrLaunch, err)
	}
	return nil
}

func execRunner(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}
