package settlement

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/splitledger/backend/pkg/middleware"
	"github.com/splitledger/backend/pkg/response"
)

// Handler handles HTTP requests for settlement operations
type Handler struct {
	service *Service
}

// NewHandler creates a new settlement handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for settlement endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.SettleUp)
	r.Get("/{id}", h.GetByID)
	r.Get("/project/{projectId}", h.ListByProject)

	return r
}

// SettleUp handles POST /settlements
// @Summary      Record a settlement payment
// @Description  Record a payment between two users and net it against their balance
// @Tags         settlements
// @Accept       json
// @Produce      json
// @Param        request body SettleUpRequest true "Settlement request"
// @Success      201 {object} response.APIResponse{data=SettlementResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /settlements [post]
func (h *Handler) SettleUp(w http.ResponseWriter, r *http.Request) {
	creatorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req SettleUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	stl, err := h.service.SettleUp(r.Context(), creatorID, &req)
	if err != nil {
		if errors.Is(err, ErrCannotSettleSelf) || errors.Is(err, ErrNonPositiveAmount) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to record settlement")
		return
	}

	response.JSON(w, http.StatusCreated, stl.ToResponse())
}

// GetByID handles GET /settlements/{id}
// @Summary      Get settlement by ID
// @Description  Get a single settlement record
// @Tags         settlements
// @Produce      json
// @Param        id path int true "Settlement ID"
// @Success      200 {object} response.APIResponse{data=SettlementResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /settlements/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid settlement ID")
		return
	}

	stl, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrSettlementNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get settlement")
		return
	}

	response.JSON(w, http.StatusOK, stl.ToResponse())
}

// ListByProject handles GET /settlements/project/{projectId}
// @Summary      List settlements by project
// @Description  Get a paginated list of settlements for a project
// @Tags         settlements
// @Produce      json
// @Param        projectId path int true "Project ID"
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]SettlementResponse}
// @Router       /settlements/project/{projectId} [get]
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
	if perPage < 1 {
		perPage = 20
	}

	settlements, total, err := h.service.ListByProjectID(r.Context(), projectID, page, perPage)
	if err != nil {
		response.InternalError(w, "Failed to list settlements")
		return
	}

	responses := make([]*SettlementResponse, len(settlements))
	for i, s := range settlements {
		responses[i] = s.ToResponse()
	}

	totalPages := (total + perPage - 1) / perPage
	meta := &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}

	response.JSONWithMeta(w, http.StatusOK, responses, meta)
}
