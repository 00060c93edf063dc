package balance

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/splitledger/backend/pkg/response"
)

// Handler handles HTTP requests for balance reads
type Handler struct {
	service *Service
}

// NewHandler creates a new balance handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for balance endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/project/{projectId}", h.ListByProject)

	return r
}

// ListByProject handles GET /balances/project/{projectId}
// @Summary      List project balances
// @Description  Get all pairwise balances in a project, annotated with accrued interest and total owed
// @Tags         balances
// @Produce      json
// @Param        projectId path int true "Project ID"
// @Success      200 {object} response.APIResponse{data=[]BalanceResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /balances/project/{projectId} [get]
func (h *Handler) ListByProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.ParseInt(chi.URLParam(r, "projectId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid project ID")
		return
	}

	balances, err := h.service.GetBalances(r.Context(), projectID)
	if err != nil {
		response.InternalError(w, "Failed to get balances")
		return
	}

	responses := make([]*BalanceResponse, len(balances))
	for i, b := range balances {
		responses[i] = b.ToResponse()
	}

	response.JSON(w, http.StatusOK, responses)
}
