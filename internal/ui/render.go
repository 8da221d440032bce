package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func OK(msg string) {
	fmt.Println(current.Success.Render(current.SymOK + " " + msg))
}

func Fail(msg string) {
	fmt.Fprintln(os.Stderr, current.Error.Render(current.SymFail+" "+msg))
}

// Panel draws a framed box around lines using the current theme border.
func Panel(lines []string) {
	fmt.Println(PanelString(strings.Join(lines, "\n")))
}

// PanelString renders inner inside the themed frame without printing it.
func PanelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(inner)
}

// ProgressBar renders a Unicode progress bar with a done/total tail.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %d/%d", bar, done, total)
}
