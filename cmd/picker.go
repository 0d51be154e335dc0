package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/simon/vigil/internal/config"
	"github.com/simon/vigil/internal/remote"
	"github.com/simon/vigil/internal/session"
	"github.com/simon/vigil/internal/tmux"
	"github.com/simon/vigil/internal/tui"
)

// pickerService adapts the remote executor to the picker. Kills go through
// the capturing executor because inherited stdio would scribble over the
// full-screen program.
type pickerService struct {
	cfg *config.Config
	ex  *remote.Executor
}

func (s pickerService) List() ([]session.Session, error) {
	out, code, err := s.ex.CaptureCommand(tmux.DetailedListCommand(s.cfg.TmuxBin))
	if err != nil {
		return nil, err
	}
	if code != 0 {
		return nil, nil
	}
	return session.Parse(out), nil
}

func (s pickerService) Kill(name string) error {
	_, code, err := s.ex.CaptureCommand(tmux.KillCommand(s.cfg.TmuxBin, name))
	if err != nil {
		return err
	}
	if code != 0 {
		return &remote.ExitStatusError{Code: code}
	}
	return nil
}

// isTerminal and runProgram isolate the screen takeover from the picker
// flow. Tests swap these.
var (
	isTerminal = func() bool { return isatty.IsTerminal(os.Stdout.Fd()) }

	runProgram = func(m tea.Model) (tea.Model, error) {
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
		return p.Run()
	}
)

// runPicker opens the full-screen session picker. done reports whether the
// picker handled the invocation; when stdout is not a terminal or the
// remote has nothing to pick, the caller falls back to the plain attach
// path.
func runPicker(cfg *config.Config, ex *remote.Executor) (done bool, err error) {
	if !isTerminal() {
		return false, nil
	}

	for {
		finalModel, err := runProgram(tui.NewModel(pickerService{cfg: cfg, ex: ex}))
		if err != nil {
			return true, fmt.Errorf("picker error: %w", err)
		}

		final := finalModel.(tui.Model)
		if final.NoSessions {
			return false, nil
		}
		if final.AttachTarget == "" {
			return true, nil
		}

		// Attach as child process; returns when the user detaches
		if err := attachTo(cfg, ex, final.AttachTarget); err != nil {
			return true, err
		}
		// Loop restarts the picker
	}
}
