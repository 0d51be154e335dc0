package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/simon/vigil/internal/config"
	"github.com/simon/vigil/internal/remote"
)

// buildConfig resolves flag, file, and default precedence into the runtime
// config, expands host profiles in the ssh vector, and verifies the ssh
// program exists before any remote work starts.
func buildConfig(cmd *cobra.Command, sshArgs []string) (*config.Config, error) {
	file, err := config.LoadFile()
	if err != nil {
		return nil, err
	}

	cfg := &config.Config{
		Session:   sessionFlag,
		TmuxBin:   tmuxFlag,
		TmuxArgs:  tmuxArgsFlag,
		SSHProg:   "ssh",
		LocalUser: localUsername(),
		Debug:     debugEnabled(),
	}

	flags := cmd.Flags()
	if !flags.Changed("session") && file.Session != "" {
		cfg.Session = file.Session
	}
	if !flags.Changed("tmux") && file.Tmux != "" {
		cfg.TmuxBin = file.Tmux
	}
	if !flags.Changed("tmuxargs") && file.TmuxArgs != "" {
		cfg.TmuxArgs = file.TmuxArgs
	}
	if file.SSHProgram != "" {
		cfg.SSHProg = file.SSHProgram
	}

	if err := remote.CheckProg(cfg.SSHProg); err != nil {
		return nil, err
	}

	cfg.SSHArgs = file.ResolveHost(sshArgs)
	return cfg, nil
}

// localUsername resolves the invoking user for the default session name:
// USER, then LOGNAME, then a fixed placeholder.
func localUsername() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	if u := os.Getenv("LOGNAME"); u != "" {
		return u
	}
	return "user"
}

// debugEnabled reports whether VIGIL_DEBUG is present in the environment.
// Any value counts, including empty.
func debugEnabled() bool {
	_, ok := os.LookupEnv("VIGIL_DEBUG")
	return ok
}
