package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/noah-isme/skpi-portal/internal/dto"
	"github.com/noah-isme/skpi-portal/internal/models"
	"github.com/noah-isme/skpi-portal/internal/service"
)

type viewSource interface {
	View(ctx context.Context, selector *service.Selector) (*dto.ViewResponse, bool, error)
}

// Model is the terminal dashboard. It owns a single selector; bubbletea
// serialises Update calls so the selector needs no locking.
type Model struct {
	ctx      context.Context
	views    viewSource
	selector *service.Selector
	logger   *zap.Logger

	cursor int
	view   *dto.ViewResponse
	err    error
	table  table.Model

	keys   keyMap
	help   help.Model
	width  int
	height int
}

// New builds a model starting on role's landing panel.
func New(ctx context.Context, views viewSource, role models.Role, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := Model{
		ctx:      ctx,
		views:    views,
		selector: service.NewSelector(),
		logger:   logger,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	m.selector.SelectRole(role)
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selection exposes the current role and menu.
func (m Model) Selection() models.Selection {
	return m.selector.Selection()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// OpenMenu selects menu id for the current role. Unknown ids resolve to the role default panel.
func (m *Model) OpenMenu(id string) {
	m.selector.SelectMenu(id)
	m.refresh()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	menu := service.MenuFor(m.selector.Selection().Role)
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(menu)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Open):
		if m.cursor < len(menu) {
			m.OpenMenu(menu[m.cursor].ID)
		}
	case key.Matches(msg, m.keys.Role):
		idx, err := strconv.Atoi(msg.String())
		roles := models.Roles()
		if err == nil && idx >= 1 && idx <= len(roles) {
			m.switchRole(roles[idx-1])
		}
	case key.Matches(msg, m.keys.NextRole):
		roles := models.Roles()
		current := m.selector.Selection().Role
		for i, r := range roles {
			if r == current {
				m.switchRole(roles[(i+1)%len(roles)])
				break
			}
		}
	}
	return m, nil
}

func (m *Model) switchRole(role models.Role) {
	m.selector.SelectRole(role)
	m.logger.Debug("role switched", zap.String("role", string(role)))
	m.refresh()
}

func (m *Model) refresh() {
	view, _, err := m.views.View(m.ctx, m.selector)
	if err != nil {
		m.logger.Error("resolve view", zap.Error(err))
		m.err = err
		return
	}
	m.err = nil
	m.view = view
	m.cursor = 0
	for i, item := range view.Navigation.Sidebar {
		if item.Active {
			m.cursor = i
		}
	}
	if view.Panel.Table != nil {
		m.table = buildTable(view.Panel.Table)
	}
}
