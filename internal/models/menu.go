package models

// Icon is a symbolic glyph reference. Presentation layers resolve it to something drawable.
type Icon string

const (
	IconLayoutDashboard Icon = "layout-dashboard"
	IconUserCircle      Icon = "user-circle"
	IconTrophy          Icon = "trophy"
	IconFileCheck       Icon = "file-check"
	IconBookOpen        Icon = "book-open"
	IconUsers           Icon = "users"
	IconPrinter         Icon = "printer"
	IconSettings        Icon = "settings"
	IconBell            Icon = "bell"
	IconLogOut          Icon = "log-out"
	IconClock           Icon = "clock"
	IconPlus            Icon = "plus"
	IconMoreVertical    Icon = "more-vertical"
)

// MenuEntry is one sidebar item of a role's navigation.
type MenuEntry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  Icon   `json:"icon"`
}
