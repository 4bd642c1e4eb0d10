package settlement

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fairsplit/fairsplit/internal/group"
	"github.com/fairsplit/fairsplit/pkg/response"
)

// Handler handles HTTP requests for settlement computation
type Handler struct {
	service *Service
}

// NewHandler creates a new settlement handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for settlement endpoints, mounted under
// /groups/{groupID}/settlements.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.GetByGroup)

	return r
}

// GetByGroup handles GET /groups/{groupID}/settlements
// @Summary      Compute settlements for a group
// @Description  Derive member balances and a minimal transfer plan from the group's ledger
// @Tags         settlements
// @Produce      json
// @Param        groupID path string true "Group ID"
// @Success      200 {object} SettlementResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /groups/{groupID}/settlements [get]
func (h *Handler) GetByGroup(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")

	balances, transfers, err := h.service.ForGroup(r.Context(), groupID)
	if err != nil {
		switch {
		case errors.Is(err, group.ErrGroupNotFound):
			response.NotFound(w, r, err.Error())
		case errors.Is(err, ErrUnbalanced):
			slog.Error("ledger invariant breach", "group_id", groupID, "error", err)
			response.InternalError(w, r, "Settlement computation failed")
		default:
			response.InternalError(w, r, "Failed to compute settlements")
		}
		return
	}

	response.JSON(w, http.StatusOK, ToResponse(balances, transfers))
}
