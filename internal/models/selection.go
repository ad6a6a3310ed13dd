package models

// Selection is the UI selection state: the simulated role and its active menu id.
type Selection struct {
	Role       Role   `json:"role"`
	ActiveMenu string `json:"active_menu"`
}
