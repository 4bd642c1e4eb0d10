package group

import "time"

// MaxParticipants is the largest participant set a group may have.
const MaxParticipants = 10

// MaxGroups caps how many groups may exist at once.
const MaxGroups = 10

// Group represents a group of participants sharing expenses. The
// participant set is fixed at creation time; there is no add/remove.
type Group struct {
	GroupID      string    `json:"groupId"`
	GroupName    string    `json:"groupName"`
	Participants []string  `json:"participants"`
	CreatedAt    time.Time `json:"createdAt"`
}

// HasParticipant reports whether name belongs to the group. Names are
// case-sensitive.
func (g *Group) HasParticipant(name string) bool {
	for _, p := range g.Participants {
		if p == name {
			return true
		}
	}
	return false
}
