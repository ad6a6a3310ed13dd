package dto

import (
	"time"

	"github.com/noah-isme/skpi-portal/internal/models"
)

// SelectionRequest carries the raw role and menu query parameters.
type SelectionRequest struct {
	Role string `form:"role" json:"role" validate:"omitempty,skpi_role"`
	Menu string `form:"menu" json:"menu"`
}

// ExportRequest extends a selection with the desired file format.
type ExportRequest struct {
	SelectionRequest
	Format string `form:"format" json:"format"`
}

// Tone is the colour intent of a badge.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
	ToneNeutral Tone = "neutral"
)

// Badge is a status pill. Text is shown verbatim.
type Badge struct {
	Text string `json:"text"`
	Tone Tone   `json:"tone"`
}

// Action is a control rendered on a panel. Inert actions have no effect when used.
type Action struct {
	ID    string      `json:"id"`
	Label string      `json:"label,omitempty"`
	Icon  models.Icon `json:"icon,omitempty"`
	Inert bool        `json:"inert"`
}

// CellKind tells renderers how to draw a table cell.
type CellKind string

const (
	CellText   CellKind = "text"
	CellMono   CellKind = "mono"
	CellBadge  CellKind = "badge"
	CellAction CellKind = "action"
)

// Column describes a table column. Control columns hold only actions.
type Column struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Align   string `json:"align,omitempty"`
	Control bool   `json:"control,omitempty"`
}

// Cell is a single table value.
type Cell struct {
	Kind   CellKind `json:"kind"`
	Text   string   `json:"text,omitempty"`
	Badge  *Badge   `json:"badge,omitempty"`
	Action *Action  `json:"action,omitempty"`
}

// Row holds cells in column order.
type Row struct {
	ID    string `json:"id"`
	Cells []Cell `json:"cells"`
}

// Table is the payload of table panels.
type Table struct {
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// QueueItem is one card of the department review queue.
type QueueItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Badge    Badge  `json:"badge"`
	Action   Action `json:"action"`
}

// StudentSummary is the payload of the student dashboard.
type StudentSummary struct {
	StatusTitle   string                    `json:"status_title"`
	StageLabel    string                    `json:"stage_label"`
	ProgressLabel string                    `json:"progress_label"`
	Progress      models.SubmissionProgress `json:"progress"`
	StatsTitle    string                    `json:"stats_title"`
	Stats         []models.SummaryStat      `json:"stats"`
	Action        Action                    `json:"action"`
}

// FormField is one input of the biodata form.
type FormField struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Value    string   `json:"value"`
	Options  []string `json:"options,omitempty"`
	ReadOnly bool     `json:"read_only"`
	Wide     bool     `json:"wide,omitempty"`
}

// Form is the payload of form panels.
type Form struct {
	Fields []FormField `json:"fields"`
	Submit Action      `json:"submit"`
}

// PanelView is a resolved panel. Exactly one payload field is set for non-placeholder kinds.
type PanelView struct {
	ID          models.PanelID   `json:"id"`
	Kind        models.PanelKind `json:"kind"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Actions     []Action         `json:"actions,omitempty"`
	Summary     *StudentSummary  `json:"summary,omitempty"`
	Form        *Form            `json:"form,omitempty"`
	Table       *Table           `json:"table,omitempty"`
	Queue       []QueueItem      `json:"queue,omitempty"`
}

// Brand is the sidebar logo block.
type Brand struct {
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`
	Icon     models.Icon `json:"icon"`
}

// SidebarItem is a menu entry with its active flag.
type SidebarItem struct {
	models.MenuEntry
	Active bool `json:"active"`
}

// Session is the sidebar session chip.
type Session struct {
	Initials  string `json:"initials"`
	RoleLabel string `json:"role_label"`
	Status    string `json:"status"`
}

// RoleOption is one button of the role switcher.
type RoleOption struct {
	Role        models.Role `json:"role"`
	Label       string      `json:"label"`
	Initials    string      `json:"initials"`
	DefaultMenu string      `json:"default_menu"`
	Active      bool        `json:"active"`
}

// RoleSwitcher lists every simulated role.
type RoleSwitcher struct {
	Title   string       `json:"title"`
	Options []RoleOption `json:"options"`
}

// Header is the top bar of the content area.
type Header struct {
	Greeting          string `json:"greeting"`
	Faculty           string `json:"faculty"`
	NotificationCount int    `json:"notification_count"`
	ShowNotifications bool   `json:"show_notifications"`
	PanelLabel        string `json:"panel_label"`
	AvatarURL         string `json:"avatar_url"`
}

// Navigation is everything around the content panel.
type Navigation struct {
	Brand        Brand         `json:"brand"`
	Sidebar      []SidebarItem `json:"sidebar"`
	Session      Session       `json:"session"`
	RoleSwitcher RoleSwitcher  `json:"role_switcher"`
	Header       Header        `json:"header"`
}

// ViewResponse is the full dashboard view for a selection.
type ViewResponse struct {
	Selection  models.Selection `json:"selection"`
	Fallback   bool             `json:"fallback"`
	Navigation Navigation       `json:"navigation"`
	Panel      PanelView        `json:"panel"`
}

// MetricsSnapshot aggregates process counters for the system endpoint.
type MetricsSnapshot struct {
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	CacheHits                uint64    `json:"cache_hits"`
	CacheMisses              uint64    `json:"cache_misses"`
	CacheHitRatio            float64   `json:"cache_hit_ratio"`
	PanelResolutions         uint64    `json:"panel_resolutions"`
	PanelFallbacks           uint64    `json:"panel_fallbacks"`
	Exports                  uint64    `json:"exports"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
