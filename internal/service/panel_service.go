package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/skpi-portal/internal/dto"
	"github.com/noah-isme/skpi-portal/internal/models"
	appErrors "github.com/noah-isme/skpi-portal/pkg/errors"
)

type sampleSource interface {
	Achievements(ctx context.Context) ([]models.Achievement, error)
	Applications(ctx context.Context, statuses ...models.ApplicationStatus) ([]models.Application, error)
	Profile(ctx context.Context) (*models.StudentProfile, error)
	Progress(ctx context.Context) (*models.SubmissionProgress, error)
	Stats(ctx context.Context) ([]models.SummaryStat, error)
}

// PanelServiceConfig tunes the dashboard shell and caching.
type PanelServiceConfig struct {
	CacheTTL          time.Duration
	NotificationCount int
	AvatarURL         string
}

// PanelServiceParams groups constructor dependencies.
type PanelServiceParams struct {
	Samples   sampleSource
	Cache     *CacheService
	Metrics   *MetricsService
	Validator *validator.Validate
	Logger    *zap.Logger
	Config    PanelServiceConfig
}

// PanelService turns selections into fully composed dashboard views.
type PanelService struct {
	samples   sampleSource
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	cfg       PanelServiceConfig
}

// NewPanelService constructs a PanelService with sane defaults.
func NewPanelService(params PanelServiceParams) *PanelService {
	cfg := params.Config
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.NotificationCount < 0 {
		cfg.NotificationCount = 0
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	validate := params.Validator
	if validate == nil {
		validate = validator.New()
	}
	RegisterValidations(validate)
	return &PanelService{
		samples:   params.Samples,
		cache:     params.Cache,
		metrics:   params.Metrics,
		validator: validate,
		logger:    logger,
		cfg:       cfg,
	}
}

// RegisterValidations installs the skpi_role tag on v.
func RegisterValidations(v *validator.Validate) {
	_ = v.RegisterValidation("skpi_role", func(fl validator.FieldLevel) bool {
		_, ok := models.ParseRole(fl.Field().String())
		return ok
	})
}

// Select replays a request onto a fresh selector: the role first (which resets
// the menu) and then the menu when one is given.
func (s *PanelService) Select(req dto.SelectionRequest) (*Selector, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, s.validationError(err)
	}
	selector := NewSelector()
	if req.Role != "" {
		role, _ := models.ParseRole(req.Role)
		selector.SelectRole(role)
	}
	if req.Menu != "" {
		selector.SelectMenu(req.Menu)
	}
	return selector, nil
}

func (s *PanelService) validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "skpi_role" {
				return appErrors.Clone(appErrors.ErrUnknownRole, fmt.Sprintf("unknown role %q", fe.Value()))
			}
		}
		return appErrors.Clone(appErrors.ErrValidation, verrs[0].Field()+" is invalid")
	}
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, appErrors.ErrValidation.Message)
}

// View composes navigation and the resolved panel for the selector's state.
// The boolean reports whether the panel came from cache.
func (s *PanelService) View(ctx context.Context, selector *Selector) (*dto.ViewResponse, bool, error) {
	selection := selector.Selection()
	res := selector.Panel()
	s.metrics.RecordPanelResolution(selection.Role, res)
	if res.Fallback {
		s.logger.Debug("menu not configured for role, using default panel",
			zap.String("role", string(selection.Role)),
			zap.String("menu", selection.ActiveMenu),
			zap.String("panel", string(res.Panel)))
	}

	panel, hit, err := s.Panel(ctx, res.Panel)
	if err != nil {
		return nil, false, err
	}
	return &dto.ViewResponse{
		Selection:  selection,
		Fallback:   res.Fallback,
		Navigation: s.Navigation(selection),
		Panel:      *panel,
	}, hit, nil
}

// Panel returns the composed payload of a panel, consulting the cache first.
func (s *PanelService) Panel(ctx context.Context, id models.PanelID) (*dto.PanelView, bool, error) {
	key := "view:panel:" + string(id)
	var cached dto.PanelView
	if s.cache.Get(ctx, key, &cached) {
		return &cached, true, nil
	}
	panel, err := s.composePanel(ctx, id)
	if err != nil {
		return nil, false, err
	}
	s.cache.Set(ctx, key, panel, s.cfg.CacheTTL)
	return panel, false, nil
}

// Navigation builds the sidebar, session chip, role switcher and header.
func (s *PanelService) Navigation(selection models.Selection) dto.Navigation {
	menu := MenuFor(selection.Role)
	sidebar := make([]dto.SidebarItem, 0, len(menu))
	for _, entry := range menu {
		sidebar = append(sidebar, dto.SidebarItem{MenuEntry: entry, Active: entry.ID == selection.ActiveMenu})
	}
	return dto.Navigation{
		Brand:   dto.Brand{Title: "SKPI FEBI", Subtitle: "UIN Datokarama Palu", Icon: models.IconBookOpen},
		Sidebar: sidebar,
		Session: dto.Session{
			Initials:  selection.Role.Initials(),
			RoleLabel: selection.Role.Label(),
			Status:    "Sesi Aktif",
		},
		RoleSwitcher: dto.RoleSwitcher{Title: "Simulasi Role", Options: s.roleOptions(selection.Role)},
		Header: dto.Header{
			Greeting:          "Selamat datang kembali,",
			Faculty:           "Fakultas Ekonomi dan Bisnis Islam",
			NotificationCount: s.cfg.NotificationCount,
			ShowNotifications: s.cfg.NotificationCount > 0,
			PanelLabel:        "Admin Panel",
			AvatarURL:         s.cfg.AvatarURL,
		},
	}
}

// Roles lists every role with its landing menu.
func (s *PanelService) Roles() []dto.RoleOption {
	return s.roleOptions("")
}

func (s *PanelService) roleOptions(active models.Role) []dto.RoleOption {
	roles := models.Roles()
	out := make([]dto.RoleOption, 0, len(roles))
	for _, r := range roles {
		out = append(out, dto.RoleOption{
			Role:        r,
			Label:       r.Label(),
			Initials:    r.Initials(),
			DefaultMenu: DefaultMenuID(r),
			Active:      r == active,
		})
	}
	return out
}

func (s *PanelService) composePanel(ctx context.Context, id models.PanelID) (*dto.PanelView, error) {
	view := &dto.PanelView{ID: id, Kind: id.Kind()}
	var err error
	switch id {
	case models.PanelStudentDashboard:
		view.Title = "Dashboard"
		view.Summary, err = s.studentSummary(ctx)
	case models.PanelBiodata:
		view.Title = "Informasi Akademik & Pribadi"
		view.Form, err = s.biodataForm(ctx)
	case models.PanelAchievements:
		view.Title = "Daftar Aktivitas & Prestasi"
		view.Actions = []dto.Action{{ID: "add-achievement", Label: "Tambah Data", Icon: models.IconPlus, Inert: true}}
		view.Table, err = s.achievementTable(ctx)
	case models.PanelReviewQueue:
		view.Title = "Antrean Verifikasi SKPI"
		view.Queue, err = s.reviewQueue(ctx)
	case models.PanelPrintQueue:
		view.Title = "Antrean Cetak Dokumen"
		view.Table, err = s.printQueue(ctx)
	case models.PanelCurriculum:
		view.Title = "Pengaturan Kurikulum Prodi"
		view.Description = "Formulir isian capaian pembelajaran lulusan program studi..."
	case models.PanelDepartmentAccounts:
		view.Title = "Daftar Mahasiswa Prodi"
		view.Description = "Manajemen akses dan reset password mahasiswa..."
	case models.PanelOperatorAccounts:
		view.Title = "Manajemen Pengguna Sistem"
		view.Description = "Konfigurasi hak akses operator dan staf..."
	default:
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("panel %q not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("compose panel %s: %w", id, err)
	}
	return view, nil
}

func (s *PanelService) studentSummary(ctx context.Context) (*dto.StudentSummary, error) {
	progress, err := s.samples.Progress(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := s.samples.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StudentSummary{
		StatusTitle:   "Status Pengajuan",
		StageLabel:    "Tahapan Saat Ini",
		ProgressLabel: "Kemajuan SKPI",
		Progress:      *progress,
		StatsTitle:    "Statistik Ringkas",
		Stats:         stats,
		Action:        dto.Action{ID: "request-update", Label: "Ajukan Pemutakhiran SKPI", Inert: true},
	}, nil
}

func (s *PanelService) biodataForm(ctx context.Context) (*dto.Form, error) {
	profile, err := s.samples.Profile(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.Form{
		Fields: []dto.FormField{
			{Name: "full_name", Label: "Nama Lengkap", Type: "text", Value: profile.FullName, ReadOnly: true},
			{Name: "nim", Label: "NIM", Type: "text", Value: profile.NIM, ReadOnly: true},
			{Name: "prodi", Label: "Program Studi", Type: "select", Value: profile.Prodi, Options: profile.ProdiOptions},
			{Name: "entry_year", Label: "Tahun Masuk", Type: "number", Value: strconv.Itoa(profile.EntryYear)},
			{Name: "mailing_address", Label: "Alamat Korespondensi", Type: "textarea", Value: profile.MailingAddress, Wide: true},
		},
		Submit: dto.Action{ID: "save-biodata", Label: "Simpan Perubahan", Inert: true},
	}, nil
}

func (s *PanelService) achievementTable(ctx context.Context) (*dto.Table, error) {
	items, err := s.samples.Achievements(ctx)
	if err != nil {
		return nil, err
	}
	table := &dto.Table{
		Columns: []dto.Column{
			{Key: "name", Label: "Nama Aktivitas"},
			{Key: "category", Label: "Kategori"},
			{Key: "year", Label: "Tahun"},
			{Key: "status", Label: "Status"},
			{Key: "actions", Label: "Aksi", Align: "right", Control: true},
		},
		Rows: make([]dto.Row, 0, len(items)),
	}
	for _, item := range items {
		table.Rows = append(table.Rows, dto.Row{
			ID: item.ID,
			Cells: []dto.Cell{
				{Kind: dto.CellText, Text: item.Name},
				{Kind: dto.CellText, Text: item.Category},
				{Kind: dto.CellText, Text: item.Year},
				{Kind: dto.CellBadge, Text: string(item.Status), Badge: &dto.Badge{Text: string(item.Status), Tone: achievementTone(item.Status)}},
				{Kind: dto.CellAction, Action: &dto.Action{ID: "achievement-menu-" + item.ID, Icon: models.IconMoreVertical, Inert: true}},
			},
		})
	}
	return table, nil
}

func (s *PanelService) reviewQueue(ctx context.Context) ([]dto.QueueItem, error) {
	apps, err := s.samples.Applications(ctx)
	if err != nil {
		return nil, err
	}
	queue := make([]dto.QueueItem, 0, len(apps))
	for _, app := range apps {
		queue = append(queue, dto.QueueItem{
			ID:       app.ID,
			Title:    app.StudentName,
			Subtitle: app.NIM + " • " + app.Prodi,
			Badge:    dto.Badge{Text: string(app.Status), Tone: applicationTone(app.Status)},
			Action:   dto.Action{ID: "review-" + app.ID, Label: "Review Berkas", Inert: true},
		})
	}
	return queue, nil
}

func (s *PanelService) printQueue(ctx context.Context) (*dto.Table, error) {
	apps, err := s.samples.Applications(ctx, models.ApplicationVerified)
	if err != nil {
		return nil, err
	}
	table := &dto.Table{
		Columns: []dto.Column{
			{Key: "reference", Label: "ID Pengajuan"},
			{Key: "student_name", Label: "Nama Mahasiswa"},
			{Key: "prodi", Label: "Prodi"},
			{Key: "print", Label: "Cetak", Align: "center", Control: true},
		},
		Rows: make([]dto.Row, 0, len(apps)),
	}
	for _, app := range apps {
		table.Rows = append(table.Rows, dto.Row{
			ID: app.ID,
			Cells: []dto.Cell{
				{Kind: dto.CellMono, Text: app.Reference()},
				{Kind: dto.CellText, Text: app.StudentName},
				{Kind: dto.CellText, Text: app.Prodi},
				{Kind: dto.CellAction, Action: &dto.Action{ID: "print-" + app.ID, Icon: models.IconPrinter, Inert: true}},
			},
		})
	}
	return table, nil
}

func achievementTone(status models.AchievementStatus) dto.Tone {
	if status == models.AchievementVerified {
		return dto.ToneSuccess
	}
	return dto.ToneWarning
}

func applicationTone(status models.ApplicationStatus) dto.Tone {
	if status == models.ApplicationVerified {
		return dto.ToneSuccess
	}
	return dto.ToneWarning
}
