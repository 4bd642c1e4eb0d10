package expense

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fairsplit/fairsplit/internal/expense/split"
	"github.com/fairsplit/fairsplit/internal/group"
	"github.com/fairsplit/fairsplit/internal/money"
	"github.com/fairsplit/fairsplit/pkg/response"
)

// Handler handles HTTP requests for ledger operations
type Handler struct {
	service *Service
}

// NewHandler creates a new expense handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for expense endpoints, mounted under
// /groups/{groupID}/expenses.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)

	return r
}

// Create handles POST /groups/{groupID}/expenses
// @Summary      Record an expense
// @Description  Append an expense to the group's ledger, split equally or by custom contributions
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        groupID path string true "Group ID"
// @Param        request body CreateExpenseRequest true "Expense to record"
// @Success      201 {object} ExpenseResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /groups/{groupID}/expenses [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")

	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "Invalid request body")
		return
	}

	expense, err := h.service.Create(r.Context(), groupID, &req)
	if err != nil {
		switch {
		case errors.Is(err, group.ErrGroupNotFound):
			response.NotFound(w, r, err.Error())
		case errors.Is(err, ErrEmptyDescription),
			errors.Is(err, ErrInvalidDate),
			errors.Is(err, ErrFutureDate),
			errors.Is(err, money.ErrInvalidAmount),
			errors.Is(err, split.ErrInvalidAmount),
			errors.Is(err, split.ErrUnknownParticipant),
			errors.Is(err, split.ErrNegativeContribution),
			errors.Is(err, split.ErrContributionsMismatch):
			response.BadRequest(w, r, err.Error())
		default:
			response.InternalError(w, r, "Failed to record expense")
		}
		return
	}

	response.JSON(w, http.StatusCreated, expense.ToResponse())
}

// List handles GET /groups/{groupID}/expenses
// @Summary      List a group's expenses
// @Tags         expenses
// @Produce      json
// @Param        groupID path string true "Group ID"
// @Success      200 {array} ExpenseResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /groups/{groupID}/expenses [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")

	expenses, err := h.service.ListByGroup(r.Context(), groupID)
	if err != nil {
		if errors.Is(err, group.ErrGroupNotFound) {
			response.NotFound(w, r, err.Error())
			return
		}
		response.InternalError(w, r, "Failed to list expenses")
		return
	}

	responses := make([]*ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = e.ToResponse()
	}

	response.JSON(w, http.StatusOK, responses)
}
