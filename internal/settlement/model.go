package settlement

import "github.com/fairsplit/fairsplit/internal/money"

// Balance is a participant's derived position over the whole ledger.
// Positive net means the group owes them, negative means they owe.
type Balance struct {
	Participant string      `json:"participant"`
	TotalPaid   money.Money `json:"totalPaid"`
	TotalOwed   money.Money `json:"totalOwed"`
	NetBalance  money.Money `json:"netBalance"`
}

// Transfer is one directed payment instruction: From pays To.
type Transfer struct {
	From   string      `json:"from"`
	To     string      `json:"to"`
	Amount money.Money `json:"amount"`
}
