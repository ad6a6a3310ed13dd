package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPageRouter(t *testing.T, cfg PageConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tmpl, err := Templates()
	require.NoError(t, err)
	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.GET("/", NewPageHandler(newPanelService(), cfg, nil).Dashboard)
	return r
}

func renderPage(t *testing.T, r http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestPageHandlerRendersStudentDashboard(t *testing.T) {
	rec := renderPage(t, newPageRouter(t, PageConfig{}), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<div id="root" class="app">`)
	assert.Contains(t, body, `data-panel="student_dashboard"`)
	assert.Contains(t, body, "SKPI FEBI")
	assert.Contains(t, body, "Verifikasi Berkas")
	assert.Contains(t, body, "Sesi Aktif")
	assert.Contains(t, body, `href="/?role=department"`)
	assert.NotContains(t, body, "Unduh:")
}

func TestPageHandlerCustomMountAndExports(t *testing.T) {
	r := newPageRouter(t, PageConfig{MountID: "skpi", APIPrefix: "/api/v1", ExportsEnabled: true})
	rec := renderPage(t, r, "/?role=student&menu=aktivitas")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<div id="skpi" class="app">`)
	assert.Contains(t, body, "Juara 1 Debat Ekonomi Nasional")
	assert.Contains(t, body, "Pending")
	assert.Contains(t, body, "/api/v1/view/export?")
	assert.Contains(t, body, "format=pdf")
}

func TestPageHandlerOperatorPrintQueue(t *testing.T) {
	rec := renderPage(t, newPageRouter(t, PageConfig{}), "/?role=operator")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "#SKPI-102")
	assert.NotContains(t, body, "#SKPI-101")
	assert.NotContains(t, body, "#SKPI-103")
}

func TestPageHandlerPlaceholder(t *testing.T) {
	rec := renderPage(t, newPageRouter(t, PageConfig{}), "/?role=department&menu=akun")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `class="placeholder"`)
	assert.Contains(t, rec.Body.String(), "Daftar Mahasiswa Prodi")
}

func TestPageHandlerUnknownRole(t *testing.T) {
	rec := renderPage(t, newPageRouter(t, PageConfig{}), "/?role=rektor")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNKNOWN_ROLE")
	assert.Contains(t, rec.Body.String(), `href="/?role=student"`)
}
