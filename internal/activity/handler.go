package activity

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/splitledger/backend/pkg/response"
)

// Handler handles HTTP requests for the activity feed
type Handler struct {
	repo *Repository
}

// NewHandler creates a new activity handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Routes returns the router for activity endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/project/{projectId}", h.ListByProject)

	return r
}

// ListByProject handles GET /activity/project/{projectId}
// @Summary      List project activity
// @Description  Get the audit feed of ledger-affecting events for a project, newest first
// @Tags         activity
// @Produce      json
// @Param        projectId path int true "Project ID"
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]Event}
// @Router       /activity/project/{projectId} [get]
func (h *Handler) ListByProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.ParseInt(chi.URLParam(r, "projectId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid project ID")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	events, err := h.repo.ListByProjectID(r.Context(), projectID, perPage, (page-1)*perPage)
	if err != nil {
		response.InternalError(w, "Failed to list activity")
		return
	}

	response.JSON(w, http.StatusOK, events)
}
