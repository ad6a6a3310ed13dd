package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/skpi-portal/internal/dto"
	appErrors "github.com/noah-isme/skpi-portal/pkg/errors"
)

// PageConfig controls the server rendered dashboard.
type PageConfig struct {
	MountID        string
	APIPrefix      string
	ExportsEnabled bool
}

type exportLink struct {
	Label string
	URL   string
}

type pageData struct {
	MountID string
	View    *dto.ViewResponse
	Exports []exportLink
}

type errorPageData struct {
	MountID string
	Error   *appErrors.Error
	Roles   []dto.RoleOption
}

// PageHandler renders the dashboard as HTML.
type PageHandler struct {
	views  viewService
	cfg    PageConfig
	logger *zap.Logger
}

// NewPageHandler constructs a PageHandler.
func NewPageHandler(views viewService, cfg PageConfig, logger *zap.Logger) *PageHandler {
	if cfg.MountID == "" {
		cfg.MountID = "root"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageHandler{views: views, cfg: cfg, logger: logger}
}

// Dashboard renders the root view for the role and menu in the query string.
func (h *PageHandler) Dashboard(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	var req dto.SelectionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.renderError(c, appErrors.Clone(appErrors.ErrValidation, err.Error()))
		return
	}
	selector, err := h.views.Select(req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	view, _, err := h.views.View(c.Request.Context(), selector)
	if err != nil {
		h.renderError(c, err)
		return
	}

	data := pageData{MountID: h.cfg.MountID, View: view}
	if h.cfg.ExportsEnabled && view.Panel.ID.Exportable() {
		data.Exports = []exportLink{
			{Label: "CSV", URL: exportURL(h.cfg.APIPrefix, view.Selection, "csv")},
			{Label: "PDF", URL: exportURL(h.cfg.APIPrefix, view.Selection, "pdf")},
		}
	}
	c.HTML(http.StatusOK, "dashboard", data)
}

func (h *PageHandler) renderError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	_ = c.Error(err)
	if appErr.Status >= http.StatusInternalServerError {
		h.logger.Error("render dashboard", zap.Error(err))
	}
	c.HTML(appErr.Status, "error", errorPageData{
		MountID: h.cfg.MountID,
		Error:   appErr,
		Roles:   h.views.Roles(),
	})
}
