package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/dynamolab/dl-course-site/internal/models"
	"github.com/dynamolab/dl-course-site/internal/registry"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ModuleService is the interface that wraps methods for course module business logic.
type ModuleService interface {
	// Method RenderModulePage composes the page for a module id.
	//
	// It never fails: unknown or out-of-range ids yield the placeholder page.
	RenderModulePage(id int) *models.Page
	// Method GetModule retrieves the authored module record.
	//
	// If the module is absent or out of range, registry.ErrModuleNotFound is returned together with "nil" value.
	GetModule(id int) (*models.Module, error)
	// Method GetCourseIndex builds the module list, sorted by module number.
	GetCourseIndex() *models.CourseIndex
	// Method InRange reports whether id lies within the configured course length.
	InRange(id int) bool
}

// PageRenderer is the interface that wraps methods for HTML projection of pages.
type PageRenderer interface {
	RenderPage(w io.Writer, page *models.Page) error
	RenderIndex(w io.Writer, index *models.CourseIndex) error
	RenderNotFound(w io.Writer) error
}

// ModuleHandler handles HTTP requests for module pages and the module API
type ModuleHandler struct {
	BaseHandler
	service  ModuleService
	renderer PageRenderer
}

// NewModuleHandler creates a new module handler
func NewModuleHandler(svc ModuleService, renderer PageRenderer, logger *zap.Logger) *ModuleHandler {
	return &ModuleHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     svc,
		renderer:    renderer,
	}
}

// RegisterRoutes registers all module handler routes
func (h *ModuleHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Index)
	r.Get("/module/{id}", h.ModulePage)
	r.Get("/module/{id}/", h.ModulePage)

	r.Route("/api/v1/modules", func(r chi.Router) {
		r.Get("/", h.ListModules)
		r.Get("/{id}", h.GetModule)
		r.Get("/{id}/page", h.GetModulePage)
	})
}

// Index handles GET /
func (h *ModuleHandler) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.renderer.RenderIndex(&buf, h.service.GetCourseIndex()); err != nil {
		h.Logger.Error("failed to render course index", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to render page")
		return
	}
	h.RespondHTML(w, http.StatusOK, &buf)
}

// ModulePage handles GET /module/{id}.
//
// Unauthored ids inside the course get the placeholder with 200; ids outside it get the placeholder with 404.
// Non-numeric ids get the generic not-found page.
func (h *ModuleHandler) ModulePage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.NotFound(w, r)
		return
	}

	page := h.service.RenderModulePage(id)
	status := http.StatusOK
	if page.IsPlaceholder() && !h.service.InRange(id) {
		status = http.StatusNotFound
	}

	var buf bytes.Buffer
	if err := h.renderer.RenderPage(&buf, page); err != nil {
		h.Logger.Error("failed to render module page", zap.Int("module", id), zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to render page")
		return
	}
	h.RespondHTML(w, status, &buf)
}

// NotFound renders the HTML not-found page
func (h *ModuleHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.renderer.RenderNotFound(&buf); err != nil {
		h.Logger.Error("failed to render not found page", zap.Error(err))
		h.RespondError(w, http.StatusNotFound, "not found")
		return
	}
	h.RespondHTML(w, http.StatusNotFound, &buf)
}

// ListModules handles GET /api/v1/modules
// @Summary List course modules
// @Description Get the course framing and one entry per module, sorted by module number
// @Tags modules
// @Produce json
// @Success 200 {object} models.CourseIndex
// @Router /api/v1/modules [get]
func (h *ModuleHandler) ListModules(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.service.GetCourseIndex())
}

// GetModule handles GET /api/v1/modules/{id}
// @Summary Get module content
// @Description Get the authored content record of a module
// @Tags modules
// @Produce json
// @Param id path int true "Module number"
// @Success 200 {object} models.Module
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/modules/{id} [get]
func (h *ModuleHandler) GetModule(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	module, err := h.service.GetModule(id)
	if err != nil {
		if errors.Is(err, registry.ErrModuleNotFound) {
			h.RespondError(w, http.StatusNotFound, "module not found")
			return
		}
		h.Logger.Error("failed to get module", zap.Int("module", id), zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to get module")
		return
	}

	h.RespondJSON(w, http.StatusOK, module)
}

// GetModulePage handles GET /api/v1/modules/{id}/page
// @Summary Get rendered module page
// @Description Get the composed page of a module; unknown modules yield the placeholder page
// @Tags modules
// @Produce json
// @Param id path int true "Module number"
// @Success 200 {object} models.Page
// @Failure 400 {object} map[string]string
// @Router /api/v1/modules/{id}/page [get]
func (h *ModuleHandler) GetModulePage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	h.RespondJSON(w, http.StatusOK, h.service.RenderModulePage(id))
}

func (h *ModuleHandler) parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid module id")
		return 0, false
	}
	return id, true
}
