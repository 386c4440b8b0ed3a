package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalCall means a selector returned a call that is not in the
	// enumerated legal set. This is a broken caller, not a game event.
	ErrIllegalCall = errors.New("illegal call")
)

// Denom is a bid denomination: the four suits plus no-trump.
type Denom int

const (
	DenomClubs Denom = iota
	DenomDiamonds
	DenomHearts
	DenomSpades
	DenomNoTrump
)

func (d Denom) String() string {
	switch d {
	case DenomClubs:
		return "C"
	case DenomDiamonds:
		return "D"
	case DenomHearts:
		return "H"
	case DenomSpades:
		return "S"
	case DenomNoTrump:
		return "NT"
	default:
		return "?"
	}
}

// TrumpSuit returns the suit named by the denomination, or false for no-trump.
func (d Denom) TrumpSuit() (Suit, bool) {
	if d == DenomNoTrump {
		return 0, false
	}
	return Suit(d), true
}

func DenomOf(s Suit) Denom {
	return Denom(s)
}

type Bid struct {
	Level int // 1..7
	Denom Denom
}

// Score gives the total order over bids: level*10 + denomination rank,
// clubs=1 .. no-trump=5. Distinct bids always score differently.
func (b Bid) Score() int {
	return b.Level*10 + int(b.Denom) + 1
}

func (b Bid) String() string {
	return fmt.Sprintf("%d%s", b.Level, b.Denom.String())
}

type CallKind int

const (
	CallPass CallKind = iota
	CallBid
	CallDouble
	CallRedouble
)

func (k CallKind) String() string {
	switch k {
	case CallPass:
		return "pass"
	case CallBid:
		return "bid"
	case CallDouble:
		return "double"
	case CallRedouble:
		return "redouble"
	default:
		return "?"
	}
}

// Call is one turn of the auction. Bid is set only for CallBid. Forced marks
// a pass made while the caller's side was on the hook after a double or
// redouble; it is bookkeeping for display, not scoring. Note carries an
// optional explanation from the selector ("Stayman", "penalty", ...).
type Call struct {
	Seat   Seat
	Kind   CallKind
	Bid    *Bid
	Forced bool
	Note   string
}

func (c Call) String() string {
	if c.Kind == CallBid && c.Bid != nil {
		return fmt.Sprintf("%s:%s", c.Seat, c.Bid)
	}
	return fmt.Sprintf("%s:%s", c.Seat, c.Kind)
}

// SameTemplate reports whether two calls are the same (kind, bid) choice,
// ignoring forced flags and notes.
func (c Call) SameTemplate(o Call) bool {
	if c.Kind != o.Kind {
		return false
	}
	if c.Kind != CallBid {
		return true
	}
	return c.Bid != nil && o.Bid != nil && *c.Bid == *o.Bid
}

// AuctionState is the immutable snapshot offered to call selectors.
type AuctionState struct {
	HighBid     *Bid
	HighBidder  *Seat
	DoubledBy   *Side // side that doubled; nil when no double stands
	RedoubledBy *Side // side that redoubled; supersedes any double
	ForcingSide *Side // side whose passes are marked forced
	PassStreak  int
	LastAction  *Call // last non-pass call
}

// Contract exists only once the auction ends with a bid standing.
type Contract struct {
	Bid       Bid
	Declarer  Seat
	Doubled   bool
	Redoubled bool
}

func (c Contract) String() string {
	s := c.Bid.String()
	if c.Redoubled {
		s += "XX"
	} else if c.Doubled {
		s += "X"
	}
	return fmt.Sprintf("%s by %s", s, c.Declarer)
}

type sideDenom struct {
	Side  Side
	Denom Denom
}

// Auction owns the bidding state machine. Calls rotate clockwise from the
// dealer until four passes (no bid) or three passes after a bid.
type Auction struct {
	Dealer Seat
	Turn   Seat
	Calls  []Call

	HighBid     *Bid
	HighBidder  *Seat
	DoubledBy   *Side
	RedoubledBy *Side
	ForcingSide *Side
	PassStreak  int
	LastAction  *Call

	// firstNamed records, per (side, denomination), the first player of the
	// partnership to name that denomination. Declarer determination reads it.
	firstNamed map[sideDenom]Seat

	Done      bool
	PassedOut bool
	Contract  *Contract
}

func NewAuction(dealer Seat) *Auction {
	return &Auction{
		Dealer:     dealer,
		Turn:       dealer,
		firstNamed: map[sideDenom]Seat{},
	}
}

// State returns the snapshot handed to call selectors.
func (a *Auction) State() AuctionState {
	return AuctionState{
		HighBid:     copyBid(a.HighBid),
		HighBidder:  copySeat(a.HighBidder),
		DoubledBy:   copySide(a.DoubledBy),
		RedoubledBy: copySide(a.RedoubledBy),
		ForcingSide: copySide(a.ForcingSide),
		PassStreak:  a.PassStreak,
		LastAction:  copyCall(a.LastAction),
	}
}

// LegalCalls enumerates every call seat may make right now. The first entry
// is always a pass. Returns nil when it is not seat's turn or the auction
// is over.
func (a *Auction) LegalCalls(seat Seat) []Call {
	if a.Done || seat != a.Turn {
		return nil
	}
	side := seat.Side()

	out := []Call{{Seat: seat, Kind: CallPass, Forced: a.forcedPass(side)}}

	floor := 0
	if a.HighBid != nil {
		floor = a.HighBid.Score()
	}
	for level := 1; level <= 7; level++ {
		for d := DenomClubs; d <= DenomNoTrump; d++ {
			b := Bid{Level: level, Denom: d}
			if b.Score() > floor {
				bid := b
				out = append(out, Call{Seat: seat, Kind: CallBid, Bid: &bid})
			}
		}
	}

	if a.canDouble(side) {
		out = append(out, Call{Seat: seat, Kind: CallDouble})
	}
	if a.canRedouble(side) {
		out = append(out, Call{Seat: seat, Kind: CallRedouble})
	}
	return out
}

func (a *Auction) forcedPass(side Side) bool {
	return a.ForcingSide != nil && *a.ForcingSide == side
}

func (a *Auction) canDouble(side Side) bool {
	if a.HighBid == nil || a.DoubledBy != nil || a.RedoubledBy != nil {
		return false
	}
	return a.HighBidder.Side() != side
}

func (a *Auction) canRedouble(side Side) bool {
	if a.DoubledBy == nil || a.RedoubledBy != nil {
		return false
	}
	return a.HighBidder.Side() == side
}

// Apply validates call against the current legal set and advances the
// auction. A call whose (kind, bid) matches no legal template is rejected
// with ErrIllegalCall and the auction is left untouched.
func (a *Auction) Apply(seat Seat, call Call) error {
	if a.Done {
		return fmt.Errorf("%w: auction already terminated", ErrIllegalCall)
	}
	if seat != a.Turn {
		return fmt.Errorf("%w: not %s's turn", ErrIllegalCall, seat)
	}
	applied := Call{Seat: seat, Kind: call.Kind, Bid: copyBid(call.Bid), Note: call.Note}
	if call.Kind == CallPass || call.Kind == CallBid {
		legal := a.LegalCalls(seat)
		tmpl, ok := findCall(legal, call)
		if !ok {
			return fmt.Errorf("%w: %s", ErrIllegalCall, call)
		}
		applied.Forced = tmpl.Forced
	}

	side := seat.Side()
	switch applied.Kind {
	case CallBid:
		a.applyBid(applied)
	case CallDouble:
		// A stale double is downgraded to a forced pass rather than
		// corrupting the double state.
		if !a.canDouble(side) {
			applied = Call{Seat: seat, Kind: CallPass, Forced: true}
			a.PassStreak++
			break
		}
		a.DoubledBy = &side
		hook := a.HighBidder.Side()
		a.ForcingSide = &hook
		a.PassStreak = 0
	case CallRedouble:
		if !a.canRedouble(side) {
			applied = Call{Seat: seat, Kind: CallPass, Forced: true}
			a.PassStreak++
			break
		}
		hook := side.Opponent()
		a.DoubledBy = nil
		a.RedoubledBy = &side
		a.ForcingSide = &hook
		a.PassStreak = 0
	default:
		a.PassStreak++
	}

	a.Calls = append(a.Calls, applied)
	if applied.Kind != CallPass {
		last := applied
		a.LastAction = &last
	}
	a.Turn = seat.Next()
	a.checkTerminated()
	return nil
}

func (a *Auction) applyBid(c Call) {
	b := *c.Bid
	bidder := c.Seat
	a.HighBid = &b
	a.HighBidder = &bidder
	a.DoubledBy = nil
	a.RedoubledBy = nil
	a.ForcingSide = nil
	a.PassStreak = 0

	key := sideDenom{Side: bidder.Side(), Denom: b.Denom}
	if _, seen := a.firstNamed[key]; !seen {
		a.firstNamed[key] = bidder
	}
}

func (a *Auction) checkTerminated() {
	if a.HighBid == nil {
		if a.PassStreak >= 4 {
			a.Done = true
			a.PassedOut = true
		}
		return
	}
	if a.PassStreak < 3 {
		return
	}
	a.Done = true
	winSide := a.HighBidder.Side()
	declarer, ok := a.firstNamed[sideDenom{Side: winSide, Denom: a.HighBid.Denom}]
	if !ok {
		declarer = *a.HighBidder
	}
	a.Contract = &Contract{
		Bid:       *a.HighBid,
		Declarer:  declarer,
		Doubled:   a.DoubledBy != nil,
		Redoubled: a.RedoubledBy != nil,
	}
}

func findCall(legal []Call, c Call) (Call, bool) {
	for _, l := range legal {
		if l.SameTemplate(c) {
			return l, true
		}
	}
	return Call{}, false
}

func copyBid(b *Bid) *Bid {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

func copySeat(s *Seat) *Seat {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copySide(s *Side) *Side {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyCall(c *Call) *Call {
	if c == nil {
		return nil
	}
	v := *c
	v.Bid = copyBid(c.Bid)
	return &v
}
