package group

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fairsplit/fairsplit/pkg/response"
)

// Handler handles HTTP requests for group operations
type Handler struct {
	service *Service
}

// NewHandler creates a new group handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for group endpoints. The expense and
// settlement routers are mounted under each group's path.
func (h *Handler) Routes(expenses, settlements chi.Router) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{groupID}", h.GetByID)
	r.Delete("/{groupID}", h.Delete)

	r.Mount("/{groupID}/expenses", expenses)
	r.Mount("/{groupID}/settlements", settlements)

	return r
}

// Create handles POST /groups
// @Summary      Create a new group
// @Description  Create a group with a fixed participant set
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        request body CreateGroupRequest true "Group creation request"
// @Success      201 {object} GroupResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Router       /groups [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "Invalid request body")
		return
	}

	group, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrGroupNameTaken):
			response.Conflict(w, r, err.Error())
		case errors.Is(err, ErrInvalidGroupName),
			errors.Is(err, ErrEmptyParticipantList),
			errors.Is(err, ErrTooManyParticipants),
			errors.Is(err, ErrDuplicateParticipant),
			errors.Is(err, ErrGroupLimitReached):
			response.BadRequest(w, r, err.Error())
		default:
			response.InternalError(w, r, "Failed to create group")
		}
		return
	}

	response.JSON(w, http.StatusCreated, group.ToResponse(0))
}

// List handles GET /groups
// @Summary      List all groups
// @Tags         groups
// @Produce      json
// @Success      200 {array} GroupResponse
// @Router       /groups [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w, r, "Failed to list groups")
		return
	}

	responses := make([]*GroupResponse, len(groups))
	for i, g := range groups {
		total, err := h.service.TotalExpense(r.Context(), g.GroupID)
		if err != nil {
			response.InternalError(w, r, "Failed to total expenses")
			return
		}
		responses[i] = g.ToResponse(total)
	}

	response.JSON(w, http.StatusOK, responses)
}

// GetByID handles GET /groups/{groupID}
// @Summary      Get group by ID
// @Tags         groups
// @Produce      json
// @Param        groupID path string true "Group ID"
// @Success      200 {object} GroupResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /groups/{groupID} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "groupID")

	group, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			response.NotFound(w, r, err.Error())
			return
		}
		response.InternalError(w, r, "Failed to get group")
		return
	}

	total, err := h.service.TotalExpense(r.Context(), id)
	if err != nil {
		response.InternalError(w, r, "Failed to total expenses")
		return
	}

	response.JSON(w, http.StatusOK, group.ToResponse(total))
}

// Delete handles DELETE /groups/{groupID}
// @Summary      Delete a group and its ledger
// @Tags         groups
// @Param        groupID path string true "Group ID"
// @Success      204
// @Failure      404 {object} response.ErrorResponse
// @Router       /groups/{groupID} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "groupID")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			response.NotFound(w, r, err.Error())
			return
		}
		response.InternalError(w, r, "Failed to delete group")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
