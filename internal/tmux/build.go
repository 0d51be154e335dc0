package tmux

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// nameFormat expands to bare session names, one per line, on the remote
// side. It starts with '#', a comment introducer in remote shells, so it
// must always travel through Quote.
const nameFormat = "#{session_name}"

// detailFormat carries the extra columns the picker displays. Parsed by
// the session package.
const detailFormat = "#{session_name}|#{session_attached}|#{session_created}"

// SessionArgs builds the create-or-attach argv. new-session -A attaches
// when the named session already exists and creates it otherwise, which is
// what makes reconnecting land in the same remote shell. A non-blank
// extraArgs string is word-split and appended; if it does not lex, the
// extras are dropped rather than failing the build, since they only carry
// optional flags.
func SessionArgs(bin, name, extraArgs string) []string {
	args := []string{bin, "new-session", "-A", "-s", name}
	if strings.TrimSpace(extraArgs) != "" {
		if extra, err := shellquote.Split(extraArgs); err == nil {
			args = append(args, extra...)
		}
	}
	return args
}

// ListCommand returns the remote command string that prints session names
// one per line.
func ListCommand(bin string) string {
	return fmt.Sprintf("%s list-sessions -F %s", bin, Quote(nameFormat))
}

// DetailedListCommand returns the remote command string for the picker's
// session listing with attached counts and creation times.
func DetailedListCommand(bin string) string {
	return fmt.Sprintf("%s list-sessions -F %s", bin, Quote(detailFormat))
}

// KillCommand returns the remote command string that kills one session.
func KillCommand(bin, name string) string {
	return fmt.Sprintf("%s kill-session -t %s", bin, Quote(name))
}

// EnsureTTYFlag returns a copy of args with -t inserted at the front when
// no TTY flag is present. The remote end of an attach is a full-screen
// program, so a TTY is required unless the user already asked for one.
func EnsureTTYFlag(args []string) []string {
	out := make([]string, 0, len(args)+1)
	if !HasTTYFlag(args) {
		out = append(out, "-t")
	}
	return append(out, args...)
}

// AttachArgs merges the tmux argv into a copy of the SSH argument vector,
// forcing TTY allocation.
func AttachArgs(sshArgs, tmuxArgv []string) []string {
	out := EnsureTTYFlag(sshArgs)
	out = append(out, tmuxArgv...)
	return out
}

// HasTTYFlag reports whether args already requests TTY allocation.
func HasTTYFlag(args []string) bool {
	for _, a := range args {
		if a == "-t" || a == "-tt" {
			return true
		}
	}
	return false
}

// StripTTYFlags returns args without -t/-tt. List and kill run batched, so
// forcing a TTY would only garble their captured output.
func StripTTYFlags(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if a == "-t" || a == "-tt" {
			continue
		}
		out = append(out, a)
	}
	return out
}

// InstallHint is the diagnostic for a remote exit status of 127: the
// remote shell could not find the tmux binary.
func InstallHint(bin string) string {
	return bin + " not found on remote host.\n" +
		"  - Debian/Ubuntu: sudo apt-get install tmux\n" +
		"  - RHEL/CentOS/Fedora: sudo yum install tmux (or dnf)\n" +
		"  - macOS (Homebrew): brew install tmux"
}

// ParseSessionNames extracts session names from ListCommand output, one
// per line. Surrounding whitespace and blank lines are dropped.
func ParseSessionNames(out string) []string {
	var names []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	return names
}
