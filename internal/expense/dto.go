package expense

import (
	"github.com/fairsplit/fairsplit/internal/expense/split"
	"github.com/fairsplit/fairsplit/internal/money"
)

// DateLayout is the wire format for expense dates.
const DateLayout = "2006-01-02"

// CreateExpenseRequest represents the request to record an expense
type CreateExpenseRequest struct {
	Description string      `json:"description" validate:"required,min=1,max=200"`
	Amount      money.Money `json:"amount" validate:"required"`
	PaidBy      string      `json:"paidBy" validate:"required"`

	// Date is optional and defaults to today. Format: 2006-01-02.
	Date string `json:"date,omitempty"`

	// Contributions switches the expense to a custom split when present.
	Contributions map[string]money.Money `json:"contributions,omitempty"`
}

// ExpenseResponse represents the response for a ledger entry
type ExpenseResponse struct {
	ExpenseID     string                 `json:"expenseId"`
	GroupID       string                 `json:"groupId"`
	Description   string                 `json:"description"`
	Amount        money.Money            `json:"amount"`
	PaidBy        string                 `json:"paidBy"`
	Date          string                 `json:"date"`
	SplitType     split.Type             `json:"splitType"`
	Contributions map[string]money.Money `json:"contributions"`
	CreatedAt     string                 `json:"createdAt"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func (e *Expense) ToResponse() *ExpenseResponse {
	return &ExpenseResponse{
		ExpenseID:     e.ExpenseID,
		GroupID:       e.GroupID,
		Description:   e.Description,
		Amount:        e.Amount,
		PaidBy:        e.PaidBy,
		Date:          e.Date.Format(DateLayout),
		SplitType:     e.SplitType,
		Contributions: e.Shares,
		CreatedAt:     e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
