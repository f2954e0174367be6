package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/pulse/internal/client/ui"
)

var (
	noticeBase = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	noticeStyles = map[ui.Level]lipgloss.Style{
		ui.LevelInfo:    noticeBase.BorderForeground(lipgloss.Color("12")),
		ui.LevelSuccess: noticeBase.BorderForeground(lipgloss.Color("10")),
		ui.LevelError:   noticeBase.BorderForeground(lipgloss.Color("9")),
	}

	noticeTitle = lipgloss.NewStyle().Bold(true)
	routeStyle  = lipgloss.NewStyle().Faint(true)
)

func renderNotice(n ui.Notice) string {
	style, ok := noticeStyles[n.Level]
	if !ok {
		style = noticeStyles[ui.LevelInfo]
	}

	body := n.Message
	if n.Title != "" {
		body = noticeTitle.Render(n.Title) + "\n" + n.Message
	}
	return style.Render(body)
}
