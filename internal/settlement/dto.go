package settlement

import "github.com/fairsplit/fairsplit/internal/money"

// MemberBalance is the wire form of one participant's balance
type MemberBalance struct {
	TotalPaid  money.Money `json:"totalPaid"`
	TotalOwed  money.Money `json:"totalOwed"`
	NetBalance money.Money `json:"netBalance"`
}

// SettlementResponse represents the response for a group's settlement plan
type SettlementResponse struct {
	Settlements    []*Transfer              `json:"settlements"`
	MemberBalances map[string]MemberBalance `json:"memberBalances"`
}

// ToResponse assembles the wire document from balances and transfers
func ToResponse(balances []*Balance, transfers []*Transfer) *SettlementResponse {
	memberBalances := make(map[string]MemberBalance, len(balances))
	for _, b := range balances {
		memberBalances[b.Participant] = MemberBalance{
			TotalPaid:  b.TotalPaid,
			TotalOwed:  b.TotalOwed,
			NetBalance: b.NetBalance,
		}
	}
	return &SettlementResponse{
		Settlements:    transfers,
		MemberBalances: memberBalances,
	}
}
