package cmd

import (
	"fmt"

	"github.com/simon/vigil/internal/config"
	"github.com/simon/vigil/internal/remote"
	"github.com/simon/vigil/internal/tmux"
	"github.com/simon/vigil/internal/ui"
)

// runAttach resolves the target session and attaches. An explicit name is
// used as-is; a bare attach flag discovers and selects interactively; no
// flag at all goes straight to the default name without touching the
// remote host.
func runAttach(cfg *config.Config, ex *remote.Executor, flag modeFlag) error {
	var name string
	switch {
	case flag.named():
		name = flag.name
	case flag.set():
		sessions, err := discoverSessions(cfg, ex)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}
		if len(sessions) == 0 {
			name = cfg.DefaultName()
			ui.Statusf("No tmux sessions found remotely; will create/attach to '%s'.", name)
		} else {
			name, err = ui.SelectSession("attach", sessions)
			if err != nil {
				return err
			}
		}
	default:
		name = cfg.DefaultName()
	}

	return attachTo(cfg, ex, name)
}

// attachTo runs the create-or-attach command for name interactively and
// turns the child's exit status into this process's outcome.
func attachTo(cfg *config.Config, ex *remote.Executor, name string) error {
	argv := tmux.SessionArgs(cfg.TmuxBin, name, cfg.TmuxArgs)
	ui.Debugf(cfg.Debug, "ssh args (pre-tmux): %v", cfg.SSHArgs)
	ui.Debugf(cfg.Debug, "tmux argv: %v", argv)

	code, err := ex.AttachSession(argv)
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
	return nil
}
