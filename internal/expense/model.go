package expense

import (
	"time"

	"github.com/fairsplit/fairsplit/internal/expense/split"
	"github.com/fairsplit/fairsplit/internal/money"
)

// Expense is one ledger entry: a payment made by one participant and
// split among the group's participants. Entries are immutable once
// appended; corrections are made with compensating entries.
type Expense struct {
	ExpenseID   string                 `json:"expenseId"`
	GroupID     string                 `json:"groupId"`
	Description string                 `json:"description"`
	Amount      money.Money            `json:"amount"`
	PaidBy      string                 `json:"paidBy"`
	Date        time.Time              `json:"date"`
	SplitType   split.Type             `json:"splitType"`
	Shares      map[string]money.Money `json:"contributions"`
	CreatedAt   time.Time              `json:"createdAt"`
}
