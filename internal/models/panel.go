package models

// PanelID identifies a renderable content panel.
type PanelID string

const (
	PanelStudentDashboard   PanelID = "student_dashboard"
	PanelBiodata            PanelID = "biodata"
	PanelAchievements       PanelID = "achievements"
	PanelReviewQueue        PanelID = "review_queue"
	PanelCurriculum         PanelID = "curriculum_placeholder"
	PanelDepartmentAccounts PanelID = "department_accounts_placeholder"
	PanelPrintQueue         PanelID = "print_queue"
	PanelOperatorAccounts   PanelID = "operator_accounts_placeholder"
)

var panelOrder = []PanelID{
	PanelStudentDashboard, PanelBiodata, PanelAchievements,
	PanelReviewQueue, PanelCurriculum, PanelDepartmentAccounts,
	PanelPrintQueue, PanelOperatorAccounts,
}

// PanelIDs lists every panel.
func PanelIDs() []PanelID {
	out := make([]PanelID, len(panelOrder))
	copy(out, panelOrder)
	return out
}

// PanelKind groups panels by the shape of their payload.
type PanelKind string

const (
	PanelKindSummary     PanelKind = "summary"
	PanelKindForm        PanelKind = "form"
	PanelKindTable       PanelKind = "table"
	PanelKindQueue       PanelKind = "queue"
	PanelKindPlaceholder PanelKind = "placeholder"
)

// Kind returns the payload shape of the panel.
func (p PanelID) Kind() PanelKind {
	switch p {
	case PanelStudentDashboard:
		return PanelKindSummary
	case PanelBiodata:
		return PanelKindForm
	case PanelAchievements, PanelPrintQueue:
		return PanelKindTable
	case PanelReviewQueue:
		return PanelKindQueue
	default:
		return PanelKindPlaceholder
	}
}

// Exportable reports whether the panel lists records that can be exported as a file.
func (p PanelID) Exportable() bool {
	switch p {
	case PanelAchievements, PanelReviewQueue, PanelPrintQueue:
		return true
	}
	return false
}
