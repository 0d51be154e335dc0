package cmd

import (
	"strings"

	"github.com/simon/vigil/internal/tmux"
)

// modeState distinguishes a mode flag that was never given from one given
// bare or with an explicit session name. Collapsing the first two would
// lose "flag present, pick interactively".
type modeState int

const (
	modeUnset modeState = iota
	modeBare
	modeNamed
)

type modeFlag struct {
	state modeState
	name  string
}

func (f modeFlag) set() bool   { return f.state != modeUnset }
func (f modeFlag) named() bool { return f.state == modeNamed }

// hoistResult is the outcome of rewriting the trailing token vector: the
// mode flags pulled out of it, plus the cleaned ssh arguments.
type hoistResult struct {
	list   bool
	attach modeFlag
	kill   modeFlag
	rest   []string
}

// ownFlags are the flags the root command parses itself; the value records
// whether the flag consumes the following token.
var ownFlags = map[string]bool{
	"--session":  true,
	"--tmux":     true,
	"--tmuxargs": true,
	"--pick":     false,
	"--help":     false,
	"-h":         false,
	"--version":  false,
}

// splitOwnArgs separates vigil's leading flags from the ssh argument
// vector. The scan stops at the first token vigil does not own, so ssh's
// flags never need declaring here; an explicit "--" also ends it.
func splitOwnArgs(args []string) (own, trailing []string) {
	own = []string{}
	i := 0
	for i < len(args) {
		a := args[i]
		if a == "--" {
			i++
			break
		}
		if eq := strings.IndexByte(a, '='); eq > 0 {
			if _, ok := ownFlags[a[:eq]]; ok {
				own = append(own, a)
				i++
				continue
			}
		}
		takesValue, ok := ownFlags[a]
		if !ok {
			break
		}
		own = append(own, a)
		i++
		if takesValue && i < len(args) {
			own = append(own, args[i])
			i++
		}
	}
	return own, args[i:]
}

// hoistModeFlags rewrites the trailing token vector: mode flags anywhere
// in it are recorded and removed, everything else stays for ssh. The scan
// index does not advance on a removal, so the token sliding into the
// removed slot is examined next. Only the first occurrence of each mode
// flag is hoisted; duplicates fall through to ssh. After the scan a TTY
// flag is inserted at the front unless one is already present.
func hoistModeFlags(args []string) hoistResult {
	var res hoistResult
	rest := append([]string{}, args...)

	i := 0
	for i < len(rest) {
		a := rest[i]
		switch {
		case a == "--list" && !res.list:
			res.list = true
			rest = append(rest[:i], rest[i+1:]...)
		case (a == "--attach" || a == "--select") && !res.attach.set():
			rest = append(rest[:i], rest[i+1:]...)
			res.attach = takeName(&rest, i)
		case a == "--kill" && !res.kill.set():
			rest = append(rest[:i], rest[i+1:]...)
			res.kill = takeName(&rest, i)
		case (strings.HasPrefix(a, "--attach=") || strings.HasPrefix(a, "--select=")) && !res.attach.set():
			res.attach = explicitName(a[strings.IndexByte(a, '=')+1:])
			rest = append(rest[:i], rest[i+1:]...)
		case strings.HasPrefix(a, "--kill=") && !res.kill.set():
			res.kill = explicitName(a[strings.IndexByte(a, '=')+1:])
			rest = append(rest[:i], rest[i+1:]...)
		default:
			i++
		}
	}

	res.rest = tmux.EnsureTTYFlag(rest)
	return res
}

// takeName claims the token now sitting at index i as the preceding mode
// flag's session name, unless it looks like another flag or an ssh
// destination. The check is purely syntactic; an exotic session name
// containing '@' or ':' reads as a destination and stays in place.
func takeName(rest *[]string, i int) modeFlag {
	r := *rest
	if i >= len(r) {
		return modeFlag{state: modeBare}
	}
	tok := r[i]
	if tok == "" || strings.HasPrefix(tok, "-") || strings.ContainsAny(tok, "@:") {
		return modeFlag{state: modeBare}
	}
	*rest = append(r[:i], r[i+1:]...)
	return modeFlag{state: modeNamed, name: tok}
}

func explicitName(name string) modeFlag {
	if name == "" {
		return modeFlag{state: modeBare}
	}
	return modeFlag{state: modeNamed, name: name}
}
