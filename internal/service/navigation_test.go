package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/skpi-portal/internal/models"
)

func TestNewSelectorDefaults(t *testing.T) {
	s := NewSelector()

	assert.Equal(t, models.Selection{Role: models.RoleStudent, ActiveMenu: "dashboard"}, s.Selection())
	assert.Equal(t, Resolution{Panel: models.PanelStudentDashboard}, s.Panel())
}

func TestSelectRoleResetsToFirstMenuEntry(t *testing.T) {
	for _, role := range models.Roles() {
		s := NewSelector()
		s.SelectMenu("biodata")
		s.SelectRole(role)

		menu := MenuFor(role)
		require.NotEmpty(t, menu, role)
		assert.Equal(t, role, s.Selection().Role)
		assert.Equal(t, menu[0].ID, s.Selection().ActiveMenu, role)
		assert.False(t, s.Panel().Fallback, role)
	}
}

func TestSelectMenuResolvesConfiguredPanels(t *testing.T) {
	expected := map[models.Role]map[string]models.PanelID{
		models.RoleStudent: {
			"dashboard": models.PanelStudentDashboard,
			"biodata":   models.PanelBiodata,
			"aktivitas": models.PanelAchievements,
		},
		models.RoleDepartment: {
			"verifikasi": models.PanelReviewQueue,
			"isian":      models.PanelCurriculum,
			"akun":       models.PanelDepartmentAccounts,
		},
		models.RoleOperator: {
			"antrean": models.PanelPrintQueue,
			"akun":    models.PanelOperatorAccounts,
		},
	}

	for role, panels := range expected {
		menu := MenuFor(role)
		assert.Len(t, menu, len(panels), role)
		for _, entry := range menu {
			s := NewSelector()
			s.SelectRole(role)
			s.SelectMenu(entry.ID)

			res := s.Panel()
			assert.Equal(t, panels[entry.ID], res.Panel, "%s/%s", role, entry.ID)
			assert.False(t, res.Fallback)
		}
	}
}

func TestUnknownMenuFallsBackToRoleDefault(t *testing.T) {
	defaults := map[models.Role]models.PanelID{
		models.RoleStudent:    models.PanelStudentDashboard,
		models.RoleDepartment: models.PanelReviewQueue,
		models.RoleOperator:   models.PanelPrintQueue,
	}
	for role, want := range defaults {
		for _, menuID := range []string{"", "missing", "verifikasi", "dashboard", "antrean"} {
			if _, configured := navigationTable[role].panels[menuID]; configured {
				continue
			}
			res := ResolvePanel(role, menuID)
			assert.Equal(t, want, res.Panel, "%s/%q", role, menuID)
			assert.True(t, res.Fallback)
		}
	}
}

func TestFallbackIsFirstMenuEntryPanel(t *testing.T) {
	for role, nav := range navigationTable {
		assert.Equal(t, nav.panels[nav.menu[0].ID], nav.fallback, role)
		for _, entry := range nav.menu {
			_, ok := nav.panels[entry.ID]
			assert.True(t, ok, "%s menu %s has no panel", role, entry.ID)
		}
	}
}

func TestSwitchingRolesNeverLeaksActiveMenu(t *testing.T) {
	s := NewSelector()
	s.SelectRole(models.RoleDepartment)
	s.SelectMenu("akun")
	require.Equal(t, models.PanelDepartmentAccounts, s.Panel().Panel)

	// "akun" also exists for operators; the switch must still reset.
	s.SelectRole(models.RoleOperator)
	assert.Equal(t, "antrean", s.Selection().ActiveMenu)
	assert.Equal(t, models.PanelPrintQueue, s.Panel().Panel)

	s.SelectRole(models.RoleOperator)
	assert.Equal(t, "antrean", s.Selection().ActiveMenu)
}

func TestSelectRoleOutsideClosedSet(t *testing.T) {
	s := NewSelector()
	s.SelectRole(models.Role("admin"))

	assert.Equal(t, models.RoleStudent, s.Selection().Role)
	assert.Equal(t, "dashboard", s.Selection().ActiveMenu)
	assert.Equal(t, models.PanelStudentDashboard, ResolvePanel(models.Role("admin"), "x").Panel)
}

func TestMenuForReturnsCopy(t *testing.T) {
	menu := MenuFor(models.RoleOperator)
	menu[0].ID = "changed"
	assert.Equal(t, "antrean", MenuFor(models.RoleOperator)[0].ID)
	assert.Equal(t, "antrean", DefaultMenuID(models.RoleOperator))
}
