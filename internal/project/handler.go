package project

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/splitledger/backend/pkg/middleware"
	"github.com/splitledger/backend/pkg/response"
)

// Handler handles HTTP requests for project operations
type Handler struct {
	service *Service
}

// NewHandler creates a new project handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for project endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Post("/{id}/members", h.AddMember)
	r.Get("/{id}/members", h.GetMembers)

	return r
}

// Create handles POST /projects
// @Summary      Create a project
// @Description  Create a project and enroll the creator as an admin member
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        request body CreateProjectRequest true "Project details"
// @Success      201 {object} response.APIResponse{data=ProjectResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /projects [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	req.CreatedBy = userID

	p, err := h.service.CreateProject(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidName) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create project")
		return
	}

	response.JSON(w, http.StatusCreated, ToResponse(p))
}

// List handles GET /projects
// @Summary      List projects
// @Description  List the projects the authenticated user belongs to
// @Tags         projects
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]ProjectResponse}
// @Router       /projects [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
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

	projects, err := h.service.ListProjects(r.Context(), userID, perPage, (page-1)*perPage)
	if err != nil {
		response.InternalError(w, "Failed to list projects")
		return
	}

	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = ToResponse(&projects[i])
	}

	response.JSON(w, http.StatusOK, responses)
}

// GetByID handles GET /projects/{id}
// @Summary      Get project by ID
// @Tags         projects
// @Produce      json
// @Param        id path int true "Project ID"
// @Success      200 {object} response.APIResponse{data=ProjectResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /projects/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid project ID")
		return
	}

	p, err := h.service.GetProject(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get project")
		return
	}

	response.JSON(w, http.StatusOK, ToResponse(p))
}

// AddMember handles POST /projects/{id}/members
// @Summary      Add a member to a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id path int true "Project ID"
// @Param        request body AddMemberRequest true "Member details"
// @Success      201 {object} response.APIResponse{data=MemberResponse}
// @Failure      409 {object} response.APIResponse
// @Router       /projects/{id}/members [post]
func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid project ID")
		return
	}

	var req AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	m, err := h.service.AddMember(r.Context(), projectID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrProjectNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrMemberAlreadyExists):
			response.Conflict(w, err.Error())
		case errors.Is(err, ErrInvalidRole):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to add member")
		}
		return
	}

	response.JSON(w, http.StatusCreated, ToMemberResponse(m))
}

// GetMembers handles GET /projects/{id}/members
// @Summary      List project members
// @Tags         projects
// @Produce      json
// @Param        id path int true "Project ID"
// @Success      200 {object} response.APIResponse{data=[]MemberResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /projects/{id}/members [get]
func (h *Handler) GetMembers(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid project ID")
		return
	}

	members, err := h.service.GetMembers(r.Context(), projectID)
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to list members")
		return
	}

	responses := make([]MemberResponse, len(members))
	for i := range members {
		responses[i] = ToMemberResponse(&members[i])
	}

	response.JSON(w, http.StatusOK, responses)
}
