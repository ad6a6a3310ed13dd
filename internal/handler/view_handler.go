package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/skpi-portal/internal/dto"
	"github.com/noah-isme/skpi-portal/internal/middleware"
	"github.com/noah-isme/skpi-portal/internal/models"
	"github.com/noah-isme/skpi-portal/internal/service"
	appErrors "github.com/noah-isme/skpi-portal/pkg/errors"
	"github.com/noah-isme/skpi-portal/pkg/response"
)

type viewService interface {
	Select(req dto.SelectionRequest) (*service.Selector, error)
	View(ctx context.Context, selector *service.Selector) (*dto.ViewResponse, bool, error)
	Roles() []dto.RoleOption
}

type exportService interface {
	Export(ctx context.Context, selector *service.Selector, format string) (*service.ExportFile, error)
}

// ViewHandler exposes the dashboard selector over JSON.
type ViewHandler struct {
	views   viewService
	exports exportService
}

// NewViewHandler constructs the handler. A nil export service disables exports.
func NewViewHandler(views viewService, exports exportService) *ViewHandler {
	return &ViewHandler{views: views, exports: exports}
}

// Roles godoc
// @Summary List simulated roles
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /roles [get]
func (h *ViewHandler) Roles(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.views.Roles())
}

// Menu godoc
// @Summary Ordered sidebar menu of a role
// @Tags Dashboard
// @Produce json
// @Param role path string true "Role (student, department, operator)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /roles/{role}/menu [get]
func (h *ViewHandler) Menu(c *gin.Context) {
	raw := strings.TrimSpace(c.Param("role"))
	role, ok := models.ParseRole(raw)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrUnknownRole, fmt.Sprintf("unknown role %q", raw)))
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"role":         role,
		"default_menu": service.DefaultMenuID(role),
		"items":        service.MenuFor(role),
	})
}

// View godoc
// @Summary Resolve the dashboard view for a selection
// @Tags Dashboard
// @Produce json
// @Param role query string false "Role, defaults to student"
// @Param menu query string false "Menu id, defaults to the role's first entry"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /view [get]
func (h *ViewHandler) View(c *gin.Context) {
	var req dto.SelectionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, err.Error()))
		return
	}
	selector, err := h.views.Select(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	start := time.Now()
	view, cacheHit, err := h.views.View(c.Request.Context(), selector)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	middleware.SetFallback(c, view.Fallback)
	meta := middleware.ExtractMeta(c)
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	response.JSON(c, http.StatusOK, view, meta)
}

// Export godoc
// @Summary Download the resolved table panel
// @Tags Dashboard
// @Produce text/csv
// @Produce application/pdf
// @Param role query string false "Role, defaults to student"
// @Param menu query string false "Menu id"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /view/export [get]
func (h *ViewHandler) Export(c *gin.Context) {
	if h.exports == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrFeatureDisabled, "exports are disabled"))
		return
	}
	var req dto.ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, err.Error()))
		return
	}
	selector, err := h.views.Select(req.SelectionRequest)
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.exports.Export(c.Request.Context(), selector, req.Format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Payload)
}
