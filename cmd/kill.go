package cmd

import (
	"fmt"

	"github.com/simon/vigil/internal/config"
	"github.com/simon/vigil/internal/remote"
	"github.com/simon/vigil/internal/tmux"
	"github.com/simon/vigil/internal/ui"
)

// runKill kills one remote session: the named one, or one chosen
// interactively after discovery. The kill runs through the interactive
// executor so the remote's own output stays visible, but without a TTY.
func runKill(cfg *config.Config, ex *remote.Executor, flag modeFlag) error {
	name := flag.name
	if !flag.named() {
		sessions, err := discoverSessions(cfg, ex)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}
		if len(sessions) == 0 {
			ui.Status("No tmux sessions found remotely to kill.")
			return nil
		}
		name, err = ui.SelectSession("kill", sessions)
		if err != nil {
			return err
		}
	}

	code, err := ex.RunCommand(tmux.KillCommand(cfg.TmuxBin, name))
	if err != nil {
		return err
	}
	if code == remote.CommandNotFound {
		ui.Error(tmux.InstallHint(cfg.TmuxBin))
		return &remote.ExitStatusError{Code: code}
	}
	if code != 0 {
		return &remote.ExitStatusError{Code: code}
	}

	ui.Statusf("Killed session '%s'.", name)
	return nil
}
