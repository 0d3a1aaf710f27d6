// ABOUTME: lipgloss styles and layout helpers for the terminal panel
// ABOUTME: Colours follow the dashboard chart palette

package tui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"library-admin/core/domain"
)

const maxColumnWidth = 24

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4e73df"))
	tabStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#858796")).Padding(0, 1)
	activeTab     = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1)
	headerStyle   = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#858796"))
	busyStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f6c23e"))
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	toastStyles = map[domain.NotificationKind]lipgloss.Style{
		domain.KindSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("#1cc88a")),
		domain.KindError:   lipgloss.NewStyle().Foreground(lipgloss.Color("#e74a3b")),
		domain.KindWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("#f6c23e")),
		domain.KindInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("#36b9cc")),
	}
)

// fit pads or truncates s to exactly width cells
func fit(s string, width int) string {
	if w := lipgloss.Width(s); w <= width {
		return s + strings.Repeat(" ", width-w)
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	out := string(runes) + "…"
	return out + strings.Repeat(" ", max(0, width-lipgloss.Width(out)))
}

func toastStyle(kind domain.NotificationKind) lipgloss.Style {
	if style, ok := toastStyles[kind]; ok {
		return style
	}
	return toastStyles[domain.KindInfo]
}
