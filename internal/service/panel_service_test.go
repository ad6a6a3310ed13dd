package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/skpi-portal/internal/dto"
	"github.com/noah-isme/skpi-portal/internal/models"
	"github.com/noah-isme/skpi-portal/internal/repository"
	appErrors "github.com/noah-isme/skpi-portal/pkg/errors"
)

type stubCacheRepo struct {
	mu      sync.Mutex
	store   map[string][]byte
	getErr  error
	setErr  error
	deleted []string
}

func (s *stubCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return s.getErr
	}
	payload, ok := s.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(payload, dest)
}

func (s *stubCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	if s.store == nil {
		s.store = make(map[string][]byte)
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.store[key] = payload
	return nil
}

func (s *stubCacheRepo) DeleteByPattern(_ context.Context, pattern string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, pattern)
	s.store = nil
	return nil
}

type countingSamples struct {
	*repository.SampleRepository
	achievementCalls int
	err              error
}

func (c *countingSamples) Achievements(ctx context.Context) ([]models.Achievement, error) {
	c.achievementCalls++
	if c.err != nil {
		return nil, c.err
	}
	return c.SampleRepository.Achievements(ctx)
}

func newTestPanelService(samples sampleSource, cache *CacheService) *PanelService {
	if samples == nil {
		samples = repository.NewSampleRepository()
	}
	return NewPanelService(PanelServiceParams{
		Samples: samples,
		Cache:   cache,
		Metrics: NewMetricsService(),
		Logger:  zap.NewNop(),
		Config:  PanelServiceConfig{NotificationCount: 3, AvatarURL: "https://avatar.test/a.png"},
	})
}

func viewFor(t *testing.T, svc *PanelService, role models.Role, menu string) *dto.ViewResponse {
	t.Helper()
	selector := NewSelector()
	selector.SelectRole(role)
	if menu != "" {
		selector.SelectMenu(menu)
	}
	view, _, err := svc.View(context.Background(), selector)
	require.NoError(t, err)
	return view
}

func TestPanelServiceStudentLanding(t *testing.T) {
	svc := newTestPanelService(nil, nil)
	view := viewFor(t, svc, models.RoleStudent, "")

	assert.Equal(t, models.PanelStudentDashboard, view.Panel.ID)
	assert.False(t, view.Fallback)
	require.NotNil(t, view.Panel.Summary)
	assert.Equal(t, 65, view.Panel.Summary.Progress.Percent)
	assert.Equal(t, "Verifikasi Berkas", view.Panel.Summary.Progress.Stage)
	require.Len(t, view.Panel.Summary.Stats, 3)
	assert.Equal(t, "Total Prestasi", view.Panel.Summary.Stats[0].Label)
	assert.Equal(t, 12, view.Panel.Summary.Stats[0].Value)
	assert.True(t, view.Panel.Summary.Action.Inert)
}

func TestPanelServiceAchievementsTable(t *testing.T) {
	svc := newTestPanelService(nil, nil)
	view := viewFor(t, svc, models.RoleStudent, "aktivitas")

	require.Equal(t, models.PanelAchievements, view.Panel.ID)
	require.NotNil(t, view.Panel.Table)
	rows := view.Panel.Table.Rows
	require.Len(t, rows, 2)
	assert.Equal(t, "Juara 1 Debat Ekonomi Nasional", rows[0].Cells[0].Text)
	assert.Equal(t, "Verified", rows[0].Cells[3].Text)
	assert.Equal(t, dto.ToneSuccess, rows[0].Cells[3].Badge.Tone)
	assert.Equal(t, "Sertifikasi Analis Keuangan Syariah", rows[1].Cells[0].Text)
	assert.Equal(t, "Pending", rows[1].Cells[3].Text)
	assert.Equal(t, dto.ToneWarning, rows[1].Cells[3].Badge.Tone)
	require.Len(t, view.Panel.Actions, 1)
	assert.True(t, view.Panel.Actions[0].Inert)
}

func TestPanelServiceBiodataForm(t *testing.T) {
	svc := newTestPanelService(nil, nil)
	view := viewFor(t, svc, models.RoleStudent, "biodata")

	require.NotNil(t, view.Panel.Form)
	fields := view.Panel.Form.Fields
	require.Len(t, fields, 5)
	assert.Equal(t, "Ahmad Fauzi", fields[0].Value)
	assert.True(t, fields[0].ReadOnly)
	assert.Equal(t, "1910203001", fields[1].Value)
	assert.True(t, fields[1].ReadOnly)
	assert.Equal(t, []string{"Perbankan Syariah", "Ekonomi Syariah", "Akuntansi Syariah"}, fields[2].Options)
	assert.Equal(t, "2019", fields[3].Value)
	assert.True(t, fields[4].Wide)
}

func TestPanelServiceReviewQueue(t *testing.T) {
	svc := newTestPanelService(nil, nil)
	view := viewFor(t, svc, models.RoleDepartment, "")

	require.Equal(t, models.PanelReviewQueue, view.Panel.ID)
	require.Len(t, view.Panel.Queue, 3)
	assert.Equal(t, "Ahmad Fauzi", view.Panel.Queue[0].Title)
	assert.Equal(t, "1910203001 • Perbankan Syariah", view.Panel.Queue[0].Subtitle)
	assert.Equal(t, "Menunggu", view.Panel.Queue[0].Badge.Text)
	assert.Equal(t, "Terverifikasi", view.Panel.Queue[1].Badge.Text)
	assert.Equal(t, dto.ToneSuccess, view.Panel.Queue[1].Badge.Tone)
}

func TestPanelServicePrintQueueOnlyVerified(t *testing.T) {
	svc := newTestPanelService(nil, nil)
	view := viewFor(t, svc, models.RoleOperator, "")

	require.Equal(t, models.PanelPrintQueue, view.Panel.ID)
	require.NotNil(t, view.Panel.Table)
	require.Len(t, view.Panel.Table.Rows, 1)
	row := view.Panel.Table.Rows[0]
	assert.Equal(t, "102", row.ID)
	assert.Equal(t, "#SKPI-102", row.Cells[0].Text)
	assert.Equal(t, "Siti Aminah", row.Cells[1].Text)
}

func TestPanelServicePlaceholders(t *testing.T) {
	svc := newTestPanelService(nil, nil)

	cases := []struct {
		role  models.Role
		menu  string
		panel models.PanelID
	}{
		{models.RoleDepartment, "isian", models.PanelCurriculum},
		{models.RoleDepartment, "akun", models.PanelDepartmentAccounts},
		{models.RoleOperator, "akun", models.PanelOperatorAccounts},
	}
	for _, tc := range cases {
		view := viewFor(t, svc, tc.role, tc.menu)
		assert.Equal(t, tc.panel, view.Panel.ID)
		assert.Equal(t, models.PanelKindPlaceholder, view.Panel.Kind)
		assert.NotEmpty(t, view.Panel.Title)
		assert.Nil(t, view.Panel.Table)
	}
}

func TestPanelServiceFallbackForUnknownMenu(t *testing.T) {
	svc := newTestPanelService(nil, nil)
	view := viewFor(t, svc, models.RoleOperator, "aktivitas")

	assert.True(t, view.Fallback)
	assert.Equal(t, models.PanelPrintQueue, view.Panel.ID)
	assert.Equal(t, "aktivitas", view.Selection.ActiveMenu)
	for _, item := range view.Navigation.Sidebar {
		assert.False(t, item.Active)
	}
}

func TestPanelServiceNavigation(t *testing.T) {
	svc := newTestPanelService(nil, nil)
	view := viewFor(t, svc, models.RoleDepartment, "isian")

	nav := view.Navigation
	require.Len(t, nav.Sidebar, 3)
	assert.Equal(t, "verifikasi", nav.Sidebar[0].ID)
	assert.True(t, nav.Sidebar[1].Active)
	assert.Equal(t, "PR", nav.Session.Initials)
	assert.Equal(t, "prodi", nav.Session.RoleLabel)
	assert.Equal(t, 3, nav.Header.NotificationCount)
	assert.True(t, nav.Header.ShowNotifications)
	require.Len(t, nav.RoleSwitcher.Options, 3)
	assert.True(t, nav.RoleSwitcher.Options[1].Active)
	assert.False(t, nav.RoleSwitcher.Options[0].Active)
}

func TestPanelServiceHidesZeroNotifications(t *testing.T) {
	svc := NewPanelService(PanelServiceParams{Samples: repository.NewSampleRepository()})
	nav := svc.Navigation(models.Selection{Role: models.RoleStudent, ActiveMenu: "dashboard"})
	assert.False(t, nav.Header.ShowNotifications)
	assert.Equal(t, 0, nav.Header.NotificationCount)
}

func TestPanelServiceRoles(t *testing.T) {
	svc := newTestPanelService(nil, nil)
	roles := svc.Roles()
	require.Len(t, roles, 3)
	assert.Equal(t, "dashboard", roles[0].DefaultMenu)
	assert.Equal(t, "verifikasi", roles[1].DefaultMenu)
	assert.Equal(t, "antrean", roles[2].DefaultMenu)
}

func TestPanelServiceSelect(t *testing.T) {
	svc := newTestPanelService(nil, nil)

	selector, err := svc.Select(dto.SelectionRequest{})
	require.NoError(t, err)
	assert.Equal(t, models.Selection{Role: models.RoleStudent, ActiveMenu: "dashboard"}, selector.Selection())

	selector, err = svc.Select(dto.SelectionRequest{Role: "prodi", Menu: "akun"})
	require.NoError(t, err)
	assert.Equal(t, models.Selection{Role: models.RoleDepartment, ActiveMenu: "akun"}, selector.Selection())

	_, err = svc.Select(dto.SelectionRequest{Role: "dekan"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrUnknownRole))
}

func TestPanelServiceCachesPanels(t *testing.T) {
	samples := &countingSamples{SampleRepository: repository.NewSampleRepository()}
	repo := &stubCacheRepo{}
	cache := NewCacheService(repo, nil, time.Minute, zap.NewNop(), true)
	svc := newTestPanelService(samples, cache)

	first, hit, err := svc.Panel(context.Background(), models.PanelAchievements)
	require.NoError(t, err)
	assert.False(t, hit)

	second, hit, err := svc.Panel(context.Background(), models.PanelAchievements)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 1, samples.achievementCalls)
	assert.Equal(t, first.Table.Rows, second.Table.Rows)
	assert.Contains(t, repo.store, "view:panel:achievements")
}

func TestPanelServiceCacheFailureFallsThrough(t *testing.T) {
	samples := &countingSamples{SampleRepository: repository.NewSampleRepository()}
	repo := &stubCacheRepo{getErr: errors.New("redis down"), setErr: errors.New("redis down")}
	cache := NewCacheService(repo, nil, time.Minute, zap.NewNop(), true)
	svc := newTestPanelService(samples, cache)

	for i := 0; i < 2; i++ {
		panel, hit, err := svc.Panel(context.Background(), models.PanelAchievements)
		require.NoError(t, err)
		assert.False(t, hit)
		assert.Len(t, panel.Table.Rows, 2)
	}
	assert.Equal(t, 2, samples.achievementCalls)
}

func TestPanelServicePropagatesSourceErrors(t *testing.T) {
	samples := &countingSamples{SampleRepository: repository.NewSampleRepository(), err: errors.New("boom")}
	svc := newTestPanelService(samples, nil)

	_, _, err := svc.Panel(context.Background(), models.PanelAchievements)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestPanelServiceUnknownPanel(t *testing.T) {
	svc := newTestPanelService(nil, nil)
	_, _, err := svc.Panel(context.Background(), models.PanelID("ghost"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}
