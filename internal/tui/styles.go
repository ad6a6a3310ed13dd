package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/noah-isme/skpi-portal/internal/dto"
	"github.com/noah-isme/skpi-portal/internal/models"
)

var (
	colorBrand   = lipgloss.Color("#10b981")
	colorSidebar = lipgloss.Color("#064e3b")
	colorText    = lipgloss.Color("#ecfdf5")
	colorMuted   = lipgloss.Color("#94a3b8")
	colorSuccess = lipgloss.Color("#34d399")
	colorWarning = lipgloss.Color("#fbbf24")

	sidebarStyle = lipgloss.NewStyle().
			Background(colorSidebar).
			Foreground(colorText).
			Padding(1, 2).
			Width(30)

	brandStyle      = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	mutedStyle      = lipgloss.NewStyle().Foreground(colorMuted)
	menuStyle       = lipgloss.NewStyle().Padding(0, 1)
	activeMenuStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(colorSidebar).Background(colorBrand)
	cursorStyle     = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	contentStyle = lipgloss.NewStyle().Padding(1, 2)
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171")).Bold(true)
	footerStyle  = lipgloss.NewStyle().Padding(0, 2)
)

// tableStyles renders panel tables read-only: keys drive the sidebar, so no row is highlighted.
func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.BorderForeground(colorMuted).Bold(true)
	s.Selected = lipgloss.NewStyle()
	return s
}

var iconGlyphs = map[models.Icon]string{
	models.IconLayoutDashboard: "▦",
	models.IconUserCircle:      "◉",
	models.IconTrophy:          "★",
	models.IconFileCheck:       "✔",
	models.IconBookOpen:        "▤",
	models.IconUsers:           "☰",
	models.IconPrinter:         "⎙",
	models.IconSettings:        "⚙",
	models.IconBell:            "♪",
	models.IconLogOut:          "⇥",
	models.IconClock:           "◷",
	models.IconPlus:            "+",
	models.IconMoreVertical:    "⋮",
}

func glyph(icon models.Icon) string {
	if g, ok := iconGlyphs[icon]; ok {
		return g
	}
	return "•"
}

func badge(b dto.Badge) string {
	style := lipgloss.NewStyle().Foreground(colorWarning)
	if b.Tone == dto.ToneSuccess {
		style = style.Foreground(colorSuccess)
	}
	return style.Render("[" + b.Text + "]")
}
