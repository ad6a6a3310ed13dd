package service

import (
	"github.com/noah-isme/skpi-portal/internal/models"
)

type roleNavigation struct {
	menu     []models.MenuEntry
	panels   map[string]models.PanelID
	fallback models.PanelID
}

// navigationTable is the complete (role, menu id) -> panel mapping. Each role's
// fallback is the panel of its first menu entry.
var navigationTable = map[models.Role]roleNavigation{
	models.RoleStudent: {
		menu: []models.MenuEntry{
			{ID: "dashboard", Label: "Dashboard", Icon: models.IconLayoutDashboard},
			{ID: "biodata", Label: "Biodata Diri", Icon: models.IconUserCircle},
			{ID: "aktivitas", Label: "Aktivitas & Prestasi", Icon: models.IconTrophy},
		},
		panels: map[string]models.PanelID{
			"dashboard": models.PanelStudentDashboard,
			"biodata":   models.PanelBiodata,
			"aktivitas": models.PanelAchievements,
		},
		fallback: models.PanelStudentDashboard,
	},
	models.RoleDepartment: {
		menu: []models.MenuEntry{
			{ID: "verifikasi", Label: "Verifikasi Pengajuan", Icon: models.IconFileCheck},
			{ID: "isian", Label: "Isian SKPI Prodi", Icon: models.IconBookOpen},
			{ID: "akun", Label: "Manajemen Akun", Icon: models.IconUsers},
		},
		panels: map[string]models.PanelID{
			"verifikasi": models.PanelReviewQueue,
			"isian":      models.PanelCurriculum,
			"akun":       models.PanelDepartmentAccounts,
		},
		fallback: models.PanelReviewQueue,
	},
	models.RoleOperator: {
		menu: []models.MenuEntry{
			{ID: "antrean", Label: "Antrean Cetak", Icon: models.IconPrinter},
			{ID: "akun", Label: "Manajemen Akun", Icon: models.IconSettings},
		},
		panels: map[string]models.PanelID{
			"antrean": models.PanelPrintQueue,
			"akun":    models.PanelOperatorAccounts,
		},
		fallback: models.PanelPrintQueue,
	},
}

func navigationFor(role models.Role) roleNavigation {
	if nav, ok := navigationTable[role]; ok {
		return nav
	}
	return navigationTable[models.DefaultRole]
}

// MenuFor returns a copy of the ordered menu configured for role.
func MenuFor(role models.Role) []models.MenuEntry {
	menu := navigationFor(role).menu
	out := make([]models.MenuEntry, len(menu))
	copy(out, menu)
	return out
}

// DefaultMenuID is the landing menu id of role.
func DefaultMenuID(role models.Role) string {
	return navigationFor(role).menu[0].ID
}

// Resolution is the outcome of looking up a panel for a selection.
type Resolution struct {
	Panel    models.PanelID `json:"panel"`
	Fallback bool           `json:"fallback"`
}

// ResolvePanel maps (role, menu id) to a panel. Unknown menu ids resolve to the
// role's default panel with Fallback set; it never returns an empty panel.
func ResolvePanel(role models.Role, menuID string) Resolution {
	nav := navigationFor(role)
	if panel, ok := nav.panels[menuID]; ok {
		return Resolution{Panel: panel}
	}
	return Resolution{Panel: nav.fallback, Fallback: true}
}

// Selector owns the selection state and its two mutation entry points.
type Selector struct {
	selection models.Selection
}

// NewSelector starts on the default role and its landing menu.
func NewSelector() *Selector {
	s := &Selector{}
	s.SelectRole(models.DefaultRole)
	return s
}

// SelectRole switches role and unconditionally resets the active menu to the
// role's first entry. Roles outside the closed set select the default role.
func (s *Selector) SelectRole(role models.Role) {
	if !role.Valid() {
		role = models.DefaultRole
	}
	s.selection = models.Selection{Role: role, ActiveMenu: DefaultMenuID(role)}
}

// SelectMenu sets the active menu id without checking it against the role's menu.
func (s *Selector) SelectMenu(id string) {
	s.selection.ActiveMenu = id
}

// Selection returns the current state.
func (s *Selector) Selection() models.Selection {
	return s.selection
}

// Panel resolves the current state to a panel.
func (s *Selector) Panel() Resolution {
	return ResolvePanel(s.selection.Role, s.selection.ActiveMenu)
}
