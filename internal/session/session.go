// Package session interprets the detailed list-sessions output the picker
// asks for: one line per session, fields separated by '|'.
package session

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Session is one remote tmux session with the metadata the picker shows.
type Session struct {
	Name     string
	Attached int // attached client count
	Created  time.Time
}

// Parse reads detailed list output (name|attached|created, created as a
// unix timestamp). Lines that do not match the three-field shape are
// skipped; remote output is untrusted and a garbled line should never take
// the picker down.
func Parse(out string) []Session {
	var sessions []Session
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 3)
		if len(parts) != 3 || parts[0] == "" {
			continue
		}

		attached, _ := strconv.Atoi(parts[1])
		var created time.Time
		if unix, err := strconv.ParseInt(parts[2], 10, 64); err == nil {
			created = time.Unix(unix, 0)
		}

		sessions = append(sessions, Session{
			Name:     parts[0],
			Attached: attached,
			Created:  created,
		})
	}
	return sessions
}

// Sort orders sessions for display: attached first, then newest first,
// ties broken by name so the order is stable across refreshes.
func Sort(sessions []Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		a, b := sessions[i], sessions[j]
		if (a.Attached > 0) != (b.Attached > 0) {
			return a.Attached > 0
		}
		if !a.Created.Equal(b.Created) {
			return a.Created.After(b.Created)
		}
		return a.Name < b.Name
	})
}

// FormatDuration formats a duration for the picker's AGE column.
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	if d < 24*time.Hour {
		h := int(d.Hours())
		m := int(d.Minutes()) % 60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh %dm", h, m)
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	if hours == 0 {
		return fmt.Sprintf("%dd", days)
	}
	return fmt.Sprintf("%dd %dh", days, hours)
}
