package handler

import (
	"embed"
	"html/template"
	"net/url"

	"github.com/noah-isme/skpi-portal/internal/dto"
	"github.com/noah-isme/skpi-portal/internal/models"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var iconGlyphs = map[models.Icon]string{
	models.IconLayoutDashboard: "▦",
	models.IconUserCircle:      "◉",
	models.IconTrophy:          "🏆",
	models.IconFileCheck:       "✔",
	models.IconBookOpen:        "📖",
	models.IconUsers:           "👥",
	models.IconPrinter:         "🖨",
	models.IconSettings:        "⚙",
	models.IconBell:            "🔔",
	models.IconLogOut:          "⎋",
	models.IconClock:           "⏱",
	models.IconPlus:            "+",
	models.IconMoreVertical:    "⋮",
}

// Templates parses the embedded dashboard templates for gin's HTML renderer.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"glyph":   glyph,
		"roleURL": roleURL,
		"menuURL": menuURL,
		"toneClass": func(t dto.Tone) string {
			return "tone-" + string(t)
		},
	}).ParseFS(templateFS, "templates/*.tmpl")
}

func glyph(icon models.Icon) string {
	if g, ok := iconGlyphs[icon]; ok {
		return g
	}
	return "•"
}

// Role switch links carry only the role so the menu resets to the role default.
func roleURL(role models.Role) string {
	return "/?" + url.Values{"role": {string(role)}}.Encode()
}

func menuURL(role models.Role, menu string) string {
	return "/?" + url.Values{"role": {string(role)}, "menu": {menu}}.Encode()
}

func exportURL(prefix string, sel models.Selection, format string) string {
	q := url.Values{"role": {string(sel.Role)}, "menu": {sel.ActiveMenu}, "format": {format}}
	return prefix + "/view/export?" + q.Encode()
}
