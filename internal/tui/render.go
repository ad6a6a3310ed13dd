package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/noah-isme/skpi-portal/internal/dto"
	"github.com/noah-isme/skpi-portal/internal/models"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.view == nil {
		if m.err != nil {
			return errorStyle.Render("error: "+m.err.Error()) + "\n"
		}
		return "loading...\n"
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), m.renderContent())
	return lipgloss.JoinVertical(lipgloss.Left, body, footerStyle.Render(m.help.View(m.keys)))
}

func (m Model) renderSidebar() string {
	nav := m.view.Navigation
	var sb strings.Builder
	sb.WriteString(brandStyle.Render(glyph(nav.Brand.Icon)+" "+nav.Brand.Title) + "\n")
	sb.WriteString(mutedStyle.Render(nav.Brand.Subtitle) + "\n\n")
	for i, item := range nav.Sidebar {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
		}
		style := menuStyle
		if item.Active {
			style = activeMenuStyle
		}
		sb.WriteString(pointer + style.Render(glyph(item.Icon)+" "+item.Label) + "\n")
	}
	sb.WriteString("\n" + mutedStyle.Render(nav.RoleSwitcher.Title) + "\n")
	for i, opt := range nav.RoleSwitcher.Options {
		label := fmt.Sprintf("%d %s", i+1, opt.Label)
		if opt.Active {
			label = activeMenuStyle.Render(label)
		}
		sb.WriteString(" " + label + "\n")
	}
	sb.WriteString("\n" + nav.Session.Initials + " " + nav.Session.RoleLabel + " " + mutedStyle.Render(nav.Session.Status))
	return sidebarStyle.Render(sb.String())
}

func (m Model) renderContent() string {
	header := m.view.Navigation.Header
	var sb strings.Builder
	sb.WriteString(mutedStyle.Render(header.Greeting) + "\n")
	sb.WriteString(header.Faculty)
	if header.ShowNotifications {
		sb.WriteString(fmt.Sprintf("  %s %d", glyph(models.IconBell), header.NotificationCount))
	}
	sb.WriteString("\n\n")

	panel := m.view.Panel
	sb.WriteString(titleStyle.Render(panel.Title))
	for _, action := range panel.Actions {
		sb.WriteString("  " + mutedStyle.Render("["+glyph(action.Icon)+" "+action.Label+"]"))
	}
	sb.WriteString("\n\n")

	switch {
	case panel.Summary != nil:
		sb.WriteString(renderSummary(panel.Summary))
	case panel.Form != nil:
		sb.WriteString(renderForm(panel.Form))
	case panel.Table != nil:
		sb.WriteString(m.table.View())
	case len(panel.Queue) > 0:
		sb.WriteString(renderQueue(panel.Queue))
	default:
		sb.WriteString(mutedStyle.Render(panel.Description))
	}
	if m.err != nil {
		sb.WriteString("\n" + errorStyle.Render(m.err.Error()))
	}
	return contentStyle.Render(sb.String())
}

func renderSummary(s *dto.StudentSummary) string {
	filled := min(max(s.Progress.Percent, 0), 100) / 5
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
	status := fmt.Sprintf("%s\n%s: %s [%s]\n%s %s %d%%\n%s",
		s.StatusTitle, s.StageLabel, s.Progress.Stage, s.Progress.Badge,
		s.ProgressLabel, bar, s.Progress.Percent, mutedStyle.Render("["+s.Action.Label+"]"))

	lines := []string{s.StatsTitle}
	for _, stat := range s.Stats {
		lines = append(lines, fmt.Sprintf("%-16s %3d", stat.Label, stat.Value))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cardStyle.Render(status), " ", cardStyle.Render(strings.Join(lines, "\n")))
}

func renderForm(f *dto.Form) string {
	var sb strings.Builder
	for _, field := range f.Fields {
		value := field.Value
		if field.ReadOnly {
			value = mutedStyle.Render(value + " (read-only)")
		}
		if field.Type == "select" && len(field.Options) > 0 {
			value += mutedStyle.Render(" {" + strings.Join(field.Options, " | ") + "}")
		}
		sb.WriteString(fmt.Sprintf("%-22s %s\n", field.Label, value))
	}
	sb.WriteString("\n" + mutedStyle.Render("["+f.Submit.Label+"]"))
	return cardStyle.Render(sb.String())
}

func renderQueue(items []dto.QueueItem) string {
	cards := make([]string, 0, len(items))
	for _, item := range items {
		cards = append(cards, cardStyle.Render(fmt.Sprintf("%s  %s\n%s\n%s",
			item.Title, badge(item.Badge), mutedStyle.Render(item.Subtitle), mutedStyle.Render("["+item.Action.Label+"]"))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func buildTable(t *dto.Table) table.Model {
	columns := make([]table.Column, len(t.Columns))
	for i, col := range t.Columns {
		columns[i] = table.Column{Title: col.Label, Width: lipgloss.Width(col.Label) + 2}
	}
	rows := make([]table.Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		cells := make(table.Row, len(row.Cells))
		for i, cell := range row.Cells {
			text := cell.Text
			if cell.Action != nil {
				text = glyph(cell.Action.Icon)
			}
			cells[i] = text
			if i < len(columns) && lipgloss.Width(text)+2 > columns[i].Width {
				columns[i].Width = lipgloss.Width(text) + 2
			}
		}
		rows = append(rows, cells)
	}
	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithStyles(tableStyles()),
	)
}
