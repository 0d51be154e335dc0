package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/simon/vigil/internal/config"
	"github.com/simon/vigil/internal/remote"
	"github.com/simon/vigil/internal/tmux"
	"github.com/simon/vigil/internal/ui"
)

// stdout is where runList prints session names. Status and error lines go
// through the ui package to stderr instead, so listings stay pipeable.
var stdout io.Writer = os.Stdout

// discoverSessions queries the remote session list. A remote that cannot
// run tmux comes back as an empty list, not a failure: exit 127 prints the
// install hint, and any other non-zero status means the server is simply
// not running. Only a failure to spawn ssh is an error.
func discoverSessions(cfg *config.Config, ex *remote.Executor) ([]string, error) {
	out, code, err := ex.CaptureCommand(tmux.ListCommand(cfg.TmuxBin))
	if err != nil {
		return nil, err
	}
	if code == remote.CommandNotFound {
		ui.Status(tmux.InstallHint(cfg.TmuxBin))
		return nil, nil
	}
	if code != 0 {
		return nil, nil
	}
	return tmux.ParseSessionNames(out), nil
}

// runList prints every remote session name, one per line.
func runList(cfg *config.Config, ex *remote.Executor) error {
	sessions, err := discoverSessions(cfg, ex)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}
	if len(sessions) == 0 {
		ui.Status("No tmux sessions found remotely.")
		return nil
	}
	for _, s := range sessions {
		fmt.Fprintln(stdout, s)
	}
	return nil
}
