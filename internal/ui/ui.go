// Package ui owns vigil's line-oriented terminal protocol: tagged status
// and error lines on stderr, and the numbered session prompt. Remote
// output and vigil's own output share the same streams, so every line
// vigil prints carries the identity tag.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const tag = "[vigil]"

// Output and Input are the streams the helpers use. Status goes to stderr
// so it never mixes with session names on stdout. Tests swap these.
var (
	Output io.Writer = os.Stderr
	Input  io.Reader = os.Stdin
)

// Status prints a tagged informational line.
func Status(msg string) {
	fmt.Fprintf(Output, "%s %s\n", tag, msg)
}

// Statusf is Status with formatting.
func Statusf(format string, args ...any) {
	Status(fmt.Sprintf(format, args...))
}

// Error prints a tagged error line.
func Error(msg string) {
	fmt.Fprintf(Output, "%s ERROR: %s\n", tag, msg)
}

// Errorf is Error with formatting.
func Errorf(format string, args ...any) {
	Error(fmt.Sprintf(format, args...))
}

// Debugf prints a tagged trace line when enabled is true.
func Debugf(enabled bool, format string, args ...any) {
	if enabled {
		Statusf(format, args...)
	}
}

// SelectSession lists sessions numbered from 1 on the diagnostic stream
// and reads one choice. Empty input picks the first entry. Input that does
// not parse counts as zero, and zero is out of range like any other bad
// index.
func SelectSession(action string, sessions []string) (string, error) {
	Statusf("Select a session to %s:", action)
	for i, name := range sessions {
		fmt.Fprintf(Output, "  %d. %s\n", i+1, name)
	}
	fmt.Fprint(Output, "Enter number (or press Enter for 1): ")

	line, err := bufio.NewReader(Input).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read selection: %w", err)
	}
	line = strings.TrimSpace(line)

	idx := 1
	if line != "" {
		idx, _ = strconv.Atoi(line)
	}
	if idx < 1 || idx > len(sessions) {
		return "", errors.New("invalid selection")
	}
	return sessions[idx-1], nil
}
