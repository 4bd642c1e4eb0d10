package group

import "github.com/fairsplit/fairsplit/internal/money"

// CreateGroupRequest represents the request to create a new group
type CreateGroupRequest struct {
	GroupName    string   `json:"groupName" validate:"required,min=1,max=100"`
	Participants []string `json:"participants" validate:"required,min=1,max=10"`
}

// GroupResponse represents the response for a group
type GroupResponse struct {
	GroupID          string      `json:"groupId"`
	GroupName        string      `json:"groupName"`
	Participants     []string    `json:"participants"`
	ParticipantCount int         `json:"participantCount"`
	TotalExpense     money.Money `json:"totalExpense"`
	CreatedAt        string      `json:"createdAt"`
}

// ToResponse converts a Group model to a GroupResponse DTO
func (g *Group) ToResponse(totalExpense money.Money) *GroupResponse {
	return &GroupResponse{
		GroupID:          g.GroupID,
		GroupName:        g.GroupName,
		Participants:     g.Participants,
		ParticipantCount: len(g.Participants),
		TotalExpense:     totalExpense,
		CreatedAt:        g.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
