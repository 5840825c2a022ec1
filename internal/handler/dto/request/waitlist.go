package request

import (
	"strings"

	"waitline/internal/usecase/commands"
)

type JoinRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	PartySize   int    `json:"party_size" binding:"required,min=1"`
}

func (r JoinRequest) ToParty() commands.JoinParty {
	return commands.JoinParty{
		Name:        strings.TrimSpace(r.Name),
		PhoneNumber: strings.TrimSpace(r.PhoneNumber),
		PartySize:   r.PartySize,
	}
}
