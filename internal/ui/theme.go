package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shared theme for the CLI output and the TUI board.

const (
	IconGrid    = "🗓️"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconCredit  = "💎"
	IconClaim   = "🏆"
	IconLevel   = "⚡"
	IconReward  = "🎁"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconAdvice  = "💡"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

// pillarColors maps the catalog's presentation color keys to terminal
// colors. Unknown keys fall back to the primary color.
var pillarColors = map[string]lipgloss.Color{
	"indigo":  lipgloss.Color("63"),
	"purple":  lipgloss.Color("135"),
	"emerald": lipgloss.Color("42"),
	"amber":   lipgloss.Color("214"),
	"rose":    lipgloss.Color("205"),
	"sky":     lipgloss.Color("39"),
}

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
	BadgeClaimed = lipgloss.NewStyle().Bold(true).Foreground(cGood).Render("CLAIMED ✓")
)

// PillarStyle returns a bold style in the pillar's color.
func PillarStyle(colorKey string) lipgloss.Style {
	c, ok := pillarColors[strings.ToLower(colorKey)]
	if !ok {
		c = cPrimary
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c)
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Checkbox renders a task's completion state.
func Checkbox(done bool) string {
	if done {
		return Good.Render("[x]")
	}
	return Muted.Render("[ ]")
}
