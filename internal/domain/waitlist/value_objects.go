package waitlist

import "errors"

var (
	ErrInvalidPartySize = errors.New("party size must be at least 1")
	ErrInvalidStatus    = errors.New("invalid waitlist status")
)

type PartySize struct {
	value int
}

func NewPartySize(n int) (PartySize, error) {
	if n < 1 {
		return PartySize{}, ErrInvalidPartySize
	}
	return PartySize{value: n}, nil
}

func (p PartySize) Value() int {
	return p.value
}
