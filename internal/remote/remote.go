package remote

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/simon/vigil/internal/tmux"
	"github.com/simon/vigil/internal/ui"
)

// CommandNotFound is the exit status POSIX shells report when the
// requested program does not exist on the remote host.
const CommandNotFound = 127

// Runner spawns the SSH client. Interactive runs hand the caller's
// terminal to the child and return an empty stdout; batch runs leave stdin
// detached and collect stdout. The returned code is the child's exit
// status; err is reserved for spawn failures.
type Runner interface {
	Run(prog string, args []string, interactive bool) (stdout string, code int, err error)
}

type osRunner struct{}

func (osRunner) Run(prog string, args []string, interactive bool) (string, int, error) {
	cmd := exec.Command(prog, args...)
	var out strings.Builder
	if interactive {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	} else {
		cmd.Stdout = &out
	}

	if err := cmd.Run(); err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return out.String(), ee.ExitCode(), nil
		}
		return "", 0, err
	}
	return out.String(), 0, nil
}

// Executor runs commands on the remote host through the SSH client. Args
// is the base argument vector (options plus destination); each call
// derives its own vector from it and never mutates it.
type Executor struct {
	Prog  string
	Args  []string
	Debug bool

	runner Runner
}

// New returns an Executor that spawns real processes.
func New(prog string, args []string, debug bool) *Executor {
	return &Executor{Prog: prog, Args: args, Debug: debug, runner: osRunner{}}
}

// NewWithRunner is New with an injected process runner, for tests.
func NewWithRunner(prog string, args []string, debug bool, r Runner) *Executor {
	return &Executor{Prog: prog, Args: args, Debug: debug, runner: r}
}

// AttachSession runs the create-or-attach argv interactively, handing the
// terminal to ssh for the lifetime of the remote session. Returns the
// child's exit status.
func (e *Executor) AttachSession(tmuxArgv []string) (int, error) {
	args := tmux.AttachArgs(e.Args, tmuxArgv)
	ui.Debugf(e.Debug, "ssh args (final): %v", args)
	_, code, err := e.runner.Run(e.Prog, args, true)
	if err != nil {
		return 0, fmt.Errorf("failed to execute %s: %w", e.Prog, err)
	}
	return code, nil
}

// RunCommand runs a single remote command string with the caller's stdio
// attached but no TTY allocation. Used for batch actions whose remote
// output should stay visible, like kill-session.
func (e *Executor) RunCommand(remoteCmd string) (int, error) {
	args := append(tmux.StripTTYFlags(e.Args), remoteCmd)
	ui.Debugf(e.Debug, "ssh args (final): %v", args)
	_, code, err := e.runner.Run(e.Prog, args, true)
	if err != nil {
		return 0, fmt.Errorf("failed to execute %s: %w", e.Prog, err)
	}
	return code, nil
}

// CaptureCommand runs a single remote command string with stdout captured
// and stdin detached. Remote bytes are untrusted, so invalid UTF-8 is
// replaced rather than surfaced. A non-zero exit status is reported
// through code, not err; callers decide what it means.
func (e *Executor) CaptureCommand(remoteCmd string) (string, int, error) {
	args := append(tmux.StripTTYFlags(e.Args), remoteCmd)
	ui.Debugf(e.Debug, "executing remote (capture): %s", remoteCmd)
	out, code, err := e.runner.Run(e.Prog, args, false)
	if err != nil {
		return "", 0, fmt.Errorf("failed to execute %s: %w", e.Prog, err)
	}
	return strings.ToValidUTF8(out, "�"), code, nil
}

// ExitStatusError reports a remote command that ran but exited non-zero.
type ExitStatusError struct {
	Code int
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("remote command exited with status: %d", e.Code)
}

// ExitCode maps an error chain to the exit code the process should
// propagate: nil is success, a remote exit status passes through
// unchanged, anything else is a plain failure.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *ExitStatusError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return 1
}

// CheckProg verifies the SSH client can be found before any remote
// interaction is attempted.
func CheckProg(prog string) error {
	if _, err := exec.LookPath(prog); err != nil {
		return fmt.Errorf("`%s` not found in PATH", prog)
	}
	return nil
}
