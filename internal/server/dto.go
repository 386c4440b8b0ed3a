package server

import (
	"errors"
	"fmt"

	"bridge/internal/engine"
)

type CardDTO struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

type CallDTO struct {
	Type   string `json:"type"` // pass, bid, double, redouble
	Level  int    `json:"level,omitempty"`
	Denom  string `json:"denom,omitempty"`
	Forced bool   `json:"forced,omitempty"`
	Note   string `json:"note,omitempty"`
	Seat   string `json:"seat,omitempty"`
}

type ActionDTO struct {
	Type  string   `json:"type"` // call, play_card, claim
	Call  *CallDTO `json:"call,omitempty"`
	Card  *CardDTO `json:"card,omitempty"`
	Count int      `json:"count,omitempty"`
}

func (c *CallDTO) ToEngine() (engine.Call, error) {
	if c == nil {
		return engine.Call{}, errors.New("call missing")
	}
	switch c.Type {
	case "pass":
		return engine.Call{Kind: engine.CallPass}, nil
	case "double":
		return engine.Call{Kind: engine.CallDouble}, nil
	case "redouble":
		return engine.Call{Kind: engine.CallRedouble}, nil
	case "bid":
		if c.Level < 1 || c.Level > 7 {
			return engine.Call{}, fmt.Errorf("invalid bid level %d", c.Level)
		}
		d, err := parseDenom(c.Denom)
		if err != nil {
			return engine.Call{}, err
		}
		return engine.Call{Kind: engine.CallBid, Bid: &engine.Bid{Level: c.Level, Denom: d}}, nil
	default:
		return engine.Call{}, errors.New("unknown call type")
	}
}

func CallFromEngine(c engine.Call) CallDTO {
	out := CallDTO{
		Type:   c.Kind.String(),
		Forced: c.Forced,
		Note:   c.Note,
		Seat:   c.Seat.String(),
	}
	if c.Kind == engine.CallBid && c.Bid != nil {
		out.Level = c.Bid.Level
		out.Denom = c.Bid.Denom.String()
	}
	return out
}

func (c CardDTO) ToEngine() (engine.Card, error) {
	s, err := parseSuit(c.Suit)
	if err != nil {
		return engine.Card{}, err
	}
	r, err := parseRank(c.Rank)
	if err != nil {
		return engine.Card{}, err
	}
	return engine.Card{Suit: s, Rank: r}, nil
}

func cardToDTO(c engine.Card) CardDTO {
	return CardDTO{Suit: c.Suit.String(), Rank: c.Rank.String()}
}

func parseSuit(s string) (engine.Suit, error) {
	switch s {
	case "C":
		return engine.SuitClubs, nil
	case "D":
		return engine.SuitDiamonds, nil
	case "H":
		return engine.SuitHearts, nil
	case "S":
		return engine.SuitSpades, nil
	default:
		return engine.SuitClubs, errors.New("invalid suit")
	}
}

func parseDenom(s string) (engine.Denom, error) {
	switch s {
	case "C":
		return engine.DenomClubs, nil
	case "D":
		return engine.DenomDiamonds, nil
	case "H":
		return engine.DenomHearts, nil
	case "S":
		return engine.DenomSpades, nil
	case "NT":
		return engine.DenomNoTrump, nil
	default:
		return engine.DenomClubs, errors.New("invalid denomination")
	}
}

func parseRank(r string) (engine.Rank, error) {
	switch r {
	case "2", "3", "4", "5", "6", "7", "8", "9", "10":
		var n int
		if _, err := fmt.Sscanf(r, "%d", &n); err != nil {
			return engine.Rank2, errors.New("invalid rank")
		}
		return engine.Rank(n), nil
	case "J":
		return engine.RankJ, nil
	case "Q":
		return engine.RankQ, nil
	case "K":
		return engine.RankK, nil
	case "A":
		return engine.RankA, nil
	default:
		return engine.Rank2, errors.New("invalid rank")
	}
}
