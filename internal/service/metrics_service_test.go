package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/skpi-portal/internal/models"
)

func TestMetricsServiceSnapshot(t *testing.T) {
	m := NewMetricsService()
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/view", http.StatusOK, 10*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/view", http.StatusBadRequest, 30*time.Millisecond)
	m.RecordPanelResolution(models.RoleStudent, Resolution{Panel: models.PanelStudentDashboard})
	m.RecordPanelResolution(models.RoleOperator, Resolution{Panel: models.PanelPrintQueue, Fallback: true})
	m.RecordExport(models.PanelAchievements, "csv")

	snap := m.Snapshot()
	assert.Equal(t, uint64(2), snap.RequestsTotal)
	assert.InDelta(t, 20, snap.AverageRequestDurationMs, 0.001)
	assert.Equal(t, uint64(2), snap.PanelResolutions)
	assert.Equal(t, uint64(1), snap.PanelFallbacks)
	assert.Equal(t, uint64(1), snap.Exports)
	assert.Positive(t, snap.Goroutines)


	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, `dashboard_panel_resolutions_total{fallback="true",panel="print_queue",role="operator"} 1`)
	assert.Contains(t, body, `dashboard_panel_exports_total{format="csv",panel="achievements"} 1`)
}

func TestMetricsServiceHandlerExposesCollectors(t *testing.T) {
	m := NewMetricsService()
	m.RecordPanelResolution(models.RoleDepartment, Resolution{Panel: models.PanelReviewQueue})
	m.ObserveHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dashboard_panel_resolutions_total")
	assert.Contains(t, rec.Body.String(), "http_request_duration_seconds")
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var m *MetricsService
	m.ObserveHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	m.RecordCacheOperation(true, time.Millisecond)
	m.RecordPanelResolution(models.RoleStudent, Resolution{})
	m.RecordExport(models.PanelAchievements, "csv")
	assert.Zero(t, m.Snapshot().RequestsTotal)
}
