package engine

import (
	"errors"
	"fmt"
)

// CallSelector sources one call per auction turn. It must return a call
// matching one of legal; anything else aborts the auction with
// ErrIllegalCall.
type CallSelector func(p *Player, legal []Call, history []Call, state AuctionState) Call

// Deal is the composition root for one deal of bridge: deal cards, run the
// auction, play 13 tricks, score. One Deal instance drives a game session;
// nothing mutates it concurrently.
type Deal struct {
	Seed          int64
	Dealer        Seat
	Vulnerability Vulnerability
	Players       [4]*Player

	Auction  *Auction
	Contract *Contract
	Trump    *Suit // nil for no-trump contracts and passed-out deals

	CurrentTrick []TrickPlay
	LeadSuit     *Suit
	Tricks       []TrickRecord
	Claimed      bool
}

func NewDeal(seed int64, dealer Seat, vul Vulnerability) *Deal {
	d := &Deal{
		Seed:          seed,
		Dealer:        dealer,
		Vulnerability: vul,
	}
	names := map[Seat]string{
		SeatNorth: "North",
		SeatEast:  "East",
		SeatSouth: "South",
		SeatWest:  "West",
	}
	for _, s := range Seats() {
		d.Players[s] = &Player{Name: names[s], Seat: s, IsAI: s != SeatSouth}
	}
	return d
}

// DealCards shuffles and deals 13 cards to each seat, resetting all round
// state: hands, auction, contract, trump, tricks.
func (d *Deal) DealCards() {
	deck := Shuffle(BuildDeck(), d.Seed)
	if len(deck) != 52 {
		panic("invalid deal configuration: deck is not 52 cards")
	}
	for i, s := range Seats() {
		d.Players[s].Hand = append([]Card(nil), deck[i*13:(i+1)*13]...)
		d.Players[s].TricksWon = 0
	}
	d.Auction = NewAuction(d.Dealer)
	d.Contract = nil
	d.Trump = nil
	d.CurrentTrick = nil
	d.LeadSuit = nil
	d.Tricks = nil
	d.Claimed = false
}

// ConductBidding runs the auction to completion, invoking selector once per
// turn. It returns the resulting contract, or nil for a passed-out deal.
func (d *Deal) ConductBidding(selector CallSelector) (*Contract, error) {
	if d.Auction == nil {
		return nil, fmt.Errorf("%w: cards not dealt", ErrPremature)
	}
	if selector == nil {
		return nil, errors.New("call selector required")
	}
	for !d.Auction.Done {
		seat := d.Auction.Turn
		legal := d.Auction.LegalCalls(seat)
		call := selector(d.Players[seat], legal, append([]Call(nil), d.Auction.Calls...), d.Auction.State())
		if err := d.ApplyCall(seat, call); err != nil {
			return nil, err
		}
	}
	return d.Contract, nil
}

// ApplyCall applies one auction call and, when the call terminates the
// auction, fixes the deal's contract and trump suit.
func (d *Deal) ApplyCall(seat Seat, call Call) error {
	if d.Auction == nil {
		return fmt.Errorf("%w: cards not dealt", ErrPremature)
	}
	if err := d.Auction.Apply(seat, call); err != nil {
		return err
	}
	if d.Auction.Done {
		d.Contract = d.Auction.Contract
		if d.Contract != nil {
			if suit, ok := d.Contract.Bid.Denom.TrumpSuit(); ok {
				trump := suit
				d.Trump = &trump
			}
		}
	}
	return nil
}

// OpeningLeader is the seat leading to the first trick: left of declarer.
func (d *Deal) OpeningLeader() (Seat, bool) {
	if d.Contract == nil {
		return 0, false
	}
	return d.Contract.Declarer.Next(), true
}

// Finished reports whether all 13 tricks are resolved or claimed.
func (d *Deal) Finished() bool {
	return d.Contract != nil && d.TricksRemaining() == 0
}
