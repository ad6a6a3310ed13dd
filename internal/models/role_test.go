package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	cases := map[string]struct {
		want Role
		ok   bool
	}{
		"student":      {RoleStudent, true},
		" Department ": {RoleDepartment, true},
		"operator":     {RoleOperator, true},
		"mahasiswa":    {RoleStudent, true},
		"prodi":        {RoleDepartment, true},
		"admin":        {"", false},
		"":             {"", false},
	}
	for raw, tc := range cases {
		got, ok := ParseRole(raw)
		assert.Equal(t, tc.ok, ok, raw)
		assert.Equal(t, tc.want, got, raw)
	}
}

func TestRolesOrderAndCopy(t *testing.T) {
	roles := Roles()
	assert.Equal(t, []Role{RoleStudent, RoleDepartment, RoleOperator}, roles)

	roles[0] = RoleOperator
	assert.Equal(t, RoleStudent, Roles()[0])
}

func TestRoleLabelsAndInitials(t *testing.T) {
	assert.Equal(t, "mahasiswa", RoleStudent.Label())
	assert.Equal(t, "prodi", RoleDepartment.Label())
	assert.Equal(t, "operator", RoleOperator.Label())
	assert.Equal(t, "AF", RoleStudent.Initials())
	assert.Equal(t, "PR", RoleDepartment.Initials())
	assert.Equal(t, "OP", RoleOperator.Initials())
}

func TestPanelKindAndExportable(t *testing.T) {
	assert.Equal(t, PanelKindTable, PanelPrintQueue.Kind())
	assert.Equal(t, PanelKindQueue, PanelReviewQueue.Kind())
	assert.Equal(t, PanelKindPlaceholder, PanelOperatorAccounts.Kind())
	assert.True(t, PanelAchievements.Exportable())
	assert.False(t, PanelBiodata.Exportable())
	assert.Equal(t, "#SKPI-102", Application{ID: "102"}.Reference())
}
