package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simon/vigil/internal/config"
	"github.com/simon/vigil/internal/remote"
	"github.com/simon/vigil/internal/ui"
)

var (
	sessionFlag  string
	tmuxFlag     string
	tmuxArgsFlag string
	pickFlag     bool

	// trailingArgs is everything splitOwnArgs left for ssh, captured
	// before cobra parses the rest.
	trailingArgs []string
)

func SetVersionInfo(version, commit string) {
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)
}

var rootCmd = &cobra.Command{
	Use:   "vigil [flags] [ssh options] destination",
	Short: "Persistent remote tmux sessions over SSH",
	Long: `vigil opens a persistent tmux session on a remote host over ssh: the
session is created if missing and attached otherwise, so a dropped
connection never loses the remote shell.

Mode flags may appear anywhere in the ssh argument vector, even after
the destination:

  --list            print remote session names and exit
  --attach [name]   attach to a named session, or pick one interactively
  --select [name]   alias for --attach
  --kill [name]     kill a named session, or pick one interactively

Every other trailing token is handed to ssh untouched.`,
	Example: `  vigil user@host
  vigil --session work user@host
  vigil -p 2222 user@host --list
  vigil --attach work user@host
  vigil user@host --kill
  vigil --pick user@host`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		modes := hoistModeFlags(trailingArgs)
		cfg, err := buildConfig(cmd, modes.rest)
		if err != nil {
			return err
		}
		ex := remote.New(cfg.SSHProg, cfg.SSHArgs, cfg.Debug)
		return runModes(cfg, ex, modes)
	},
}

func init() {
	rootCmd.Flags().StringVar(&sessionFlag, "session", "default", "session name stem")
	rootCmd.Flags().StringVar(&tmuxFlag, "tmux", "tmux", "remote multiplexer binary")
	rootCmd.Flags().StringVar(&tmuxArgsFlag, "tmuxargs", "", "extra arguments for the remote create command")
	rootCmd.Flags().BoolVar(&pickFlag, "pick", false, "choose the session in a full-screen picker")
}

// runModes drives the mode state machine. List beats Kill beats Attach;
// exactly one mode runs, then the process exits.
func runModes(cfg *config.Config, ex *remote.Executor, modes hoistResult) error {
	if modes.list {
		if cfg.Debug {
			ui.Status("List mode enabled")
		}
		return runList(cfg, ex)
	}

	// Debug tracing runs the list query as a side effect; it cannot
	// change which mode runs or how the run exits.
	if cfg.Debug {
		ui.Status("List mode enabled")
		if err := runList(cfg, ex); err != nil {
			ui.Errorf("%v", err)
		}
	}

	if modes.kill.set() {
		return runKill(cfg, ex, modes.kill)
	}

	if pickFlag && !modes.attach.named() {
		done, err := runPicker(cfg, ex)
		if done || err != nil {
			return err
		}
	}

	return runAttach(cfg, ex, modes.attach)
}

func Execute() {
	own, trailing := splitOwnArgs(os.Args[1:])
	trailingArgs = trailing
	rootCmd.SetArgs(own)

	if err := rootCmd.Execute(); err != nil {
		ui.Errorf("%v", err)
		os.Exit(remote.ExitCode(err))
	}
}
