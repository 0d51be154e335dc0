package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/simon/vigil/internal/session"
)

var (
	// Adaptive colors for light/dark terminal backgrounds
	accentColor = lipgloss.AdaptiveColor{Light: "#D6249F", Dark: "#FF79C6"}
	greenColor  = lipgloss.AdaptiveColor{Light: "#116620", Dark: "#50FA7B"}
	redColor    = lipgloss.AdaptiveColor{Light: "#B31D28", Dark: "#FF5555"}
	dimColor    = lipgloss.AdaptiveColor{Light: "#777777", Dark: "#6272A4"}
	hlBgColor   = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#333333"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			PaddingLeft(1)

	headerStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	cursorStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	selectedRowStyle = lipgloss.NewStyle().
				Background(hlBgColor)

	attachedStyle = lipgloss.NewStyle().
			Foreground(greenColor)

	detachedStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	ageStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(redColor)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	confirmLabelStyle = lipgloss.NewStyle().
				Foreground(redColor).
				Bold(true).
				PaddingLeft(1)

	confirmKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
			Background(redColor).
			Bold(true).
			Padding(0, 1)

	confirmDimStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			PaddingLeft(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			PaddingLeft(1)

	inputLabelStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)
)

// pad right-pads s to width with spaces (based on visual width, not byte count).
func pad(s string, width int) string {
	visual := lipgloss.Width(s)
	if visual >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visual)
}

func (m Model) View() string {
	if m.quitting && m.AttachTarget == "" {
		return ""
	}

	var b strings.Builder

	// Title
	b.WriteString(titleStyle.Render("vigil"))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("  " + m.spin.View() + " fetching remote sessions...\n\n")

	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("  Error: %v", m.err)))
		b.WriteString("\n\n")

	case len(m.filtered) == 0:
		b.WriteString("  No sessions match.\n\n")

	default:
		// Measure the name column from data, clamped like the header row
		names := make([]string, len(m.filtered))
		wName := len("NAME")
		for i, s := range m.filtered {
			name := s.Name
			if len(name) > 32 {
				name = name[:29] + "..."
			}
			names[i] = name
			if w := lipgloss.Width(name); w > wName {
				wName = w
			}
		}

		header := "   " + pad("NAME", wName) + "  " + pad("ATTACHED", 8) + "  AGE"
		b.WriteString(headerStyle.Render(header))
		b.WriteString("\n")

		for i, s := range m.filtered {
			row := " " + pad(names[i], wName) + "  " + pad(renderAttached(s), 8) + "  " + renderAge(s)
			if i == m.cursor {
				b.WriteString(cursorStyle.Render(" >"))
				b.WriteString(selectedRowStyle.Render(row))
			} else {
				b.WriteString("  ")
				b.WriteString(row)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Input line
	b.WriteString(inputLabelStyle.Render(" > "))
	b.WriteString(m.input.View())
	b.WriteString("\n")

	// Help bar / kill confirmation (same slot to avoid layout shift)
	if m.confirmKill != "" {
		b.WriteString(confirmLabelStyle.Render(fmt.Sprintf("Kill '%s'?", m.confirmKill)))
		b.WriteString("  ")
		b.WriteString(confirmKeyStyle.Render("Enter"))
		b.WriteString(confirmDimStyle.Render("confirm"))
		b.WriteString("  ")
		b.WriteString(confirmKeyStyle.Render("Esc"))
		b.WriteString(confirmDimStyle.Render("cancel"))
	} else {
		b.WriteString(helpStyle.Render("enter attach  j/k navigate  ctrl+k kill  ctrl+r refresh  q quit"))
	}
	b.WriteString("\n")

	return b.String()
}

func renderAttached(s session.Session) string {
	if s.Attached > 0 {
		return attachedStyle.Render("attached")
	}
	return detachedStyle.Render("-")
}

func renderAge(s session.Session) string {
	if s.Created.IsZero() {
		return ageStyle.Render("-")
	}
	return ageStyle.Render(session.FormatDuration(time.Since(s.Created)))
}
