package cmd

import (
	"reflect"
	"testing"
)

func TestSplitOwnArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantOwn      []string
		wantTrailing []string
	}{
		{
			"own flags then destination",
			[]string{"--session", "work", "user@host"},
			[]string{"--session", "work"},
			[]string{"user@host"},
		},
		{
			"equals and bool forms",
			[]string{"--session=work", "--pick", "host"},
			[]string{"--session=work", "--pick"},
			[]string{"host"},
		},
		{
			"stops at first foreign token",
			[]string{"-p", "2222", "--session", "w", "host"},
			[]string{},
			[]string{"-p", "2222", "--session", "w", "host"},
		},
		{
			"mode flags are not own flags",
			[]string{"--list", "host"},
			[]string{},
			[]string{"--list", "host"},
		},
		{
			"double dash ends own parsing",
			[]string{"--", "--session", "host"},
			[]string{},
			[]string{"--session", "host"},
		},
		{
			"help flag",
			[]string{"-h"},
			[]string{"-h"},
			[]string{},
		},
		{
			"all own flags",
			[]string{"--tmux", "/usr/bin/tmux", "--tmuxargs", "-x 200", "--pick"},
			[]string{"--tmux", "/usr/bin/tmux", "--tmuxargs", "-x 200", "--pick"},
			[]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			own, trailing := splitOwnArgs(tt.args)
			if !reflect.DeepEqual(own, tt.wantOwn) {
				t.Errorf("own = %v, want %v", own, tt.wantOwn)
			}
			if !reflect.DeepEqual(trailing, tt.wantTrailing) {
				t.Errorf("trailing = %v, want %v", trailing, tt.wantTrailing)
			}
		})
	}
}

func TestSplitOwnArgsEmpty(t *testing.T) {
	own, trailing := splitOwnArgs(nil)
	if own == nil || len(own) != 0 {
		t.Errorf("own = %#v, want empty non-nil slice", own)
	}
	if len(trailing) != 0 {
		t.Errorf("trailing = %v, want empty", trailing)
	}
}

func TestSplitOwnArgsDanglingValue(t *testing.T) {
	own, trailing := splitOwnArgs([]string{"--session"})
	if !reflect.DeepEqual(own, []string{"--session"}) {
		t.Errorf("own = %v, want the dangling flag kept", own)
	}
	if len(trailing) != 0 {
		t.Errorf("trailing = %v, want empty", trailing)
	}
}

func TestHoistModeFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		list   bool
		attach modeFlag
		kill   modeFlag
		rest   []string
	}{
		{
			name: "list flag after destination",
			args: []string{"user@host", "--list"},
			list: true,
			rest: []string{"-t", "user@host"},
		},
		{
			name:   "attach with explicit name",
			args:   []string{"--attach", "work", "user@host"},
			attach: modeFlag{state: modeNamed, name: "work"},
			rest:   []string{"-t", "user@host"},
		},
		{
			name: "plain destination",
			args: []string{"user@host"},
			rest: []string{"-t", "user@host"},
		},
		{
			name:   "token with @ is a destination, not a name",
			args:   []string{"--attach", "user@host"},
			attach: modeFlag{state: modeBare},
			rest:   []string{"-t", "user@host"},
		},
		{
			name:   "token with colon is a destination, not a name",
			args:   []string{"--attach", "host:22"},
			attach: modeFlag{state: modeBare},
			rest:   []string{"-t", "host:22"},
		},
		{
			name:   "select is an attach alias",
			args:   []string{"--select", "work", "host"},
			attach: modeFlag{state: modeNamed, name: "work"},
			rest:   []string{"-t", "host"},
		},
		{
			name: "kill with name after destination",
			args: []string{"host", "--kill", "scratch"},
			kill: modeFlag{state: modeNamed, name: "scratch"},
			rest: []string{"-t", "host"},
		},
		{
			name: "kill bare when followed by a flag",
			args: []string{"--kill", "-p", "22", "host"},
			kill: modeFlag{state: modeBare},
			rest: []string{"-t", "-p", "22", "host"},
		},
		{
			name:   "adjacent mode flags all hoisted",
			args:   []string{"--attach", "--kill", "host"},
			attach: modeFlag{state: modeBare},
			kill:   modeFlag{state: modeNamed, name: "host"},
			rest:   []string{"-t"},
		},
		{
			name: "duplicate list flag flows to ssh",
			args: []string{"--list", "--list", "host"},
			list: true,
			rest: []string{"-t", "--list", "host"},
		},
		{
			name:   "equals form carries the name",
			args:   []string{"--attach=work", "host"},
			attach: modeFlag{state: modeNamed, name: "work"},
			rest:   []string{"-t", "host"},
		},
		{
			name: "equals form with empty name is bare",
			args: []string{"--kill=", "host"},
			kill: modeFlag{state: modeBare},
			rest: []string{"-t", "host"},
		},
		{
			name: "existing tty flag not duplicated",
			args: []string{"-t", "user@host", "--list"},
			list: true,
			rest: []string{"-t", "user@host"},
		},
		{
			name: "tt variant counts as a tty flag",
			args: []string{"-tt", "host"},
			rest: []string{"-tt", "host"},
		},
		{
			name: "empty vector still gets a tty flag",
			args: nil,
			rest: []string{"-t"},
		},
		{
			name:   "all three modes at once",
			args:   []string{"--list", "--kill", "doomed", "--attach", "work", "host"},
			list:   true,
			attach: modeFlag{state: modeNamed, name: "work"},
			kill:   modeFlag{state: modeNamed, name: "doomed"},
			rest:   []string{"-t", "host"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hoistModeFlags(tt.args)
			if got.list != tt.list {
				t.Errorf("list = %v, want %v", got.list, tt.list)
			}
			if got.attach != tt.attach {
				t.Errorf("attach = %+v, want %+v", got.attach, tt.attach)
			}
			if got.kill != tt.kill {
				t.Errorf("kill = %+v, want %+v", got.kill, tt.kill)
			}
			if !reflect.DeepEqual(got.rest, tt.rest) {
				t.Errorf("rest = %v, want %v", got.rest, tt.rest)
			}
		})
	}
}

func TestHoistDoesNotMutateInput(t *testing.T) {
	args := []string{"--attach", "work", "user@host"}
	hoistModeFlags(args)
	if !reflect.DeepEqual(args, []string{"--attach", "work", "user@host"}) {
		t.Errorf("input vector mutated: %v", args)
	}
}

// Re-running the hoister on its own cleaned output must find no modes and
// leave the vector unchanged.
func TestHoistIdempotent(t *testing.T) {
	vectors := [][]string{
		{"user@host", "--list"},
		{"--attach", "work", "user@host"},
		{"--kill", "scratch", "-p", "2222", "host"},
		{"-t", "host"},
		{"--select", "host:5"},
		{"-tt", "user@host", "--kill"},
		nil,
	}

	for _, v := range vectors {
		first := hoistModeFlags(v)
		second := hoistModeFlags(first.rest)
		if second.list || second.attach.set() || second.kill.set() {
			t.Errorf("hoist(%v): re-run found modes in cleaned vector %v", v, first.rest)
		}
		if !reflect.DeepEqual(second.rest, first.rest) {
			t.Errorf("hoist(%v): cleaned vector unstable: %v then %v", v, first.rest, second.rest)
		}
	}
}

// A plain session name directly after the kill flag is recorded wherever
// the pair appears in the vector.
func TestHoistNameRecordedAnywhere(t *testing.T) {
	names := []string{"work", "a", "big_long.name-1"}
	for _, name := range names {
		for _, args := range [][]string{
			{"--kill", name, "user@host"},
			{"user@host", "--kill", name},
			{"-p", "22", "--kill", name, "host"},
		} {
			got := hoistModeFlags(args)
			if !got.kill.named() || got.kill.name != name {
				t.Errorf("hoist(%v): kill = %+v, want name %q", args, got.kill, name)
			}
		}
	}
}
