package cmd

import (
	"os"
	"testing"
)

func TestLocalUsername(t *testing.T) {
	t.Setenv("USER", "alice")
	t.Setenv("LOGNAME", "bob")
	if got := localUsername(); got != "alice" {
		t.Errorf("localUsername() = %q, want USER first", got)
	}

	t.Setenv("USER", "")
	if got := localUsername(); got != "bob" {
		t.Errorf("localUsername() = %q, want LOGNAME fallback", got)
	}

	t.Setenv("LOGNAME", "")
	if got := localUsername(); got != "user" {
		t.Errorf("localUsername() = %q, want fixed fallback", got)
	}
}

func TestDebugEnabled(t *testing.T) {
	t.Setenv("VIGIL_DEBUG", "x") // registers restore
	os.Unsetenv("VIGIL_DEBUG")
	if debugEnabled() {
		t.Error("debugEnabled() = true with variable unset")
	}

	t.Setenv("VIGIL_DEBUG", "")
	if !debugEnabled() {
		t.Error("debugEnabled() = false with empty value present")
	}

	t.Setenv("VIGIL_DEBUG", "1")
	if !debugEnabled() {
		t.Error("debugEnabled() = false with value set")
	}
}
