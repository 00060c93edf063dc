package settings

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/splitledger/backend/pkg/response"
)

// Handler handles HTTP requests for interest settings
type Handler struct {
	service *Service
}

// NewHandler creates a new settings handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for settings endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/project/{projectId}", h.GetByProject)
	r.Put("/project/{projectId}", h.Update)

	return r
}

// GetByProject handles GET /settings/project/{projectId}
// @Summary      Get interest settings
// @Description  Get the interest settings for a project
// @Tags         settings
// @Produce      json
// @Param        projectId path int true "Project ID"
// @Success      200 {object} response.APIResponse{data=SettingsResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /settings/project/{projectId} [get]
func (h *Handler) GetByProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.ParseInt(chi.URLParam(r, "projectId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid project ID")
		return
	}

	s, err := h.service.GetForProject(r.Context(), projectID)
	if err != nil {
		response.InternalError(w, "Failed to get interest settings")
		return
	}
	if s == nil {
		response.NotFound(w, "Interest is not configured for this project")
		return
	}

	response.JSON(w, http.StatusOK, s.ToResponse())
}

// Update handles PUT /settings/project/{projectId}
// @Summary      Update interest settings
// @Description  Create or replace the interest settings for a project
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        projectId path int true "Project ID"
// @Param        request body UpdateSettingsRequest true "Settings update request"
// @Success      200 {object} response.APIResponse{data=SettingsResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /settings/project/{projectId} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.ParseInt(chi.URLParam(r, "projectId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid project ID")
		return
	}

	var req UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	updated, err := h.service.Update(r.Context(), projectID, &req)
	if err != nil {
		if errors.Is(err, ErrInvalidRate) || errors.Is(err, ErrInvalidMonths) || errors.Is(err, ErrInvalidCurrency) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update interest settings")
		return
	}

	response.JSON(w, http.StatusOK, updated.ToResponse())
}
