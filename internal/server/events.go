package server

import "bridge/internal/engine"

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

type EventPayload struct {
	Seat  string     `json:"seat,omitempty"`
	Call  *CallDTO   `json:"call,omitempty"`
	Card  *CardDTO   `json:"card,omitempty"`
	Trick int        `json:"trick,omitempty"`
	Count int        `json:"count,omitempty"`
	Score *ScoreView `json:"score,omitempty"`
}

func callEvent(call engine.Call) Event {
	dto := CallFromEngine(call)
	return Event{Type: "call_made", Data: EventPayload{Seat: call.Seat.String(), Call: &dto}}
}

func playEvent(seat engine.Seat, card engine.Card) Event {
	dto := cardToDTO(card)
	return Event{Type: "card_played", Data: EventPayload{Seat: seat.String(), Card: &dto}}
}

func trickWonEvent(winner engine.Seat, trick int) Event {
	return Event{Type: "trick_won", Data: EventPayload{Seat: winner.String(), Trick: trick}}
}

func claimedEvent(seat engine.Seat, count int) Event {
	return Event{Type: "tricks_claimed", Data: EventPayload{Seat: seat.String(), Count: count}}
}

func passedOutEvent() Event {
	return Event{Type: "deal_passed_out"}
}

func scoredEvent(score engine.Score) Event {
	return Event{Type: "deal_scored", Data: EventPayload{Score: &ScoreView{NorthSouth: score.NorthSouth, EastWest: score.EastWest}}}
}
