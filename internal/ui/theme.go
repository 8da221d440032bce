package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the Lip Gloss styles and symbols every renderer pulls
// from. All helpers read `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Done, Selected, Help                          lipgloss.Style
	Border                                        lipgloss.Border

	BoxUnchecked, BoxChecked string
	SymOK, SymFail           string
}

var current = classic()

func classic() Theme {
	return Theme{
		Title:   lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Faint(true),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),

		Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Border:   lipgloss.RoundedBorder(),

		BoxUnchecked: "☐", BoxChecked: "☑",
		SymOK: "✔", SymFail: "✖",
	}
}

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		t := classic()
		t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
		t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		t.BoxUnchecked, t.BoxChecked = "◻", "◼"
		current = t
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Title: plain, Muted: plain, Accent: plain,
			Success: plain, Error: plain, Pending: plain,
			Done: plain, Selected: plain, Help: plain,
			Border:       lipgloss.NormalBorder(),
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymOK: "x", SymFail: "!",
		}
	default: // classic
		current = classic()
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }
