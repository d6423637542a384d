package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	hashStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5c800"))
	branchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4dca7d")).Bold(true)
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ccbf1")).Bold(true)
	addStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4dca7d"))
	delStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#f46251"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// colorEnabled gates styling on stdout being a terminal.
var colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

func render(style lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return style.Render(text)
}

// HashText styles a commit hash for display.
func HashText(text string) string { return render(hashStyle, text) }

// BranchText styles a branch name.
func BranchText(text string) string { return render(branchStyle, text) }

// CurrentBranchText styles the currently checked-out branch name.
func CurrentBranchText(text string) string { return render(currentStyle, text) }

// DimText styles secondary detail such as timestamps.
func DimText(text string) string { return render(dimStyle, text) }

// DiffLine styles one line of unified diff output by its leading marker.
func DiffLine(line string) string {
	if len(line) == 0 {
		return line
	}
	switch line[0] {
	case '+':
		return render(addStyle, line)
	case '-':
		return render(delStyle, line)
	case '@':
		return render(dimStyle, line)
	}
	return line
}
