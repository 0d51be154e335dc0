package tmux

import "strings"

// Quote wraps s in single quotes for a POSIX remote shell. Embedded single
// quotes become the close-escape-reopen sequence '\''; every other byte is
// literal inside single quotes, so nothing else needs rewriting.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}
