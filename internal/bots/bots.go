package bots

import (
	"math/rand"

	"bridge/internal/engine"
)

// Bot chooses calls during the auction and cards during play. Both methods
// must return something legal; callers apply the result without fixups.
type Bot interface {
	ChooseCall(p *engine.Player, legal []engine.Call, history []engine.Call, state engine.AuctionState) engine.Call
	ChooseCard(d *engine.Deal, seat engine.Seat) engine.Card
}

// Heuristic is the convention-aware assistant: Stayman, Jacoby transfers,
// Blackwood, penalty and takeout doubles, standard openings, responses and
// overcalls. Rules are tried in order; the first candidate produced is
// matched back against the legal set and the fallback is always a pass.
type Heuristic struct{}

func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// AutoSelector drives every seat with the heuristic assistant. It is the
// default for auctions run without a custom call selector.
func AutoSelector() engine.CallSelector {
	return NewHeuristic().ChooseCall
}

// candidate is a proposed (kind, bid) with an explanation, before it is
// matched against the legal calls.
type candidate struct {
	kind engine.CallKind
	bid  *engine.Bid
	note string
}

type bidCtx struct {
	player  *engine.Player
	legal   []engine.Call
	history []engine.Call
	state   engine.AuctionState
	hcp     int
}

func (h *Heuristic) ChooseCall(p *engine.Player, legal []engine.Call, history []engine.Call, state engine.AuctionState) engine.Call {
	c := &bidCtx{
		player:  p,
		legal:   legal,
		history: history,
		state:   state,
		hcp:     engine.HighCardPoints(p.Hand),
	}
	rules := []func(*bidCtx) *candidate{
		penaltyRedouble,
		penaltyDouble,
		convention,
		opening,
		response,
		defense,
	}
	for _, rule := range rules {
		if cand := rule(c); cand != nil {
			if call, ok := matchCall(legal, *cand); ok {
				return call
			}
			break
		}
	}
	return firstPass(legal)
}

func penaltyRedouble(c *bidCtx) *candidate {
	if c.hcp >= 14 && kindLegal(c.legal, engine.CallRedouble) {
		return &candidate{kind: engine.CallRedouble, note: "penalty"}
	}
	return nil
}

func penaltyDouble(c *bidCtx) *candidate {
	if c.state.HighBid == nil || c.state.HighBid.Level < 3 {
		return nil
	}
	if c.hcp >= 15 && kindLegal(c.legal, engine.CallDouble) {
		return &candidate{kind: engine.CallDouble, note: "penalty"}
	}
	return nil
}

// convention handles the responder-side gadgets over partner's bidding:
// Stayman and Jacoby transfers over a 1NT opening, Blackwood over a strong
// suit fit.
func convention(c *bidCtx) *candidate {
	sideBid := lastSideBid(c.history, c.player.Seat.Side())
	if sideBid == nil || sideBid.Seat != c.player.Seat.Partner() {
		return nil
	}
	partnerBid := *sideBid.Bid

	if partnerOpenedOneNoTrump(c.history, c.player.Seat.Partner()) && c.hcp >= 8 {
		switch {
		case c.player.SuitCount(engine.SuitHearts) >= 5:
			return &candidate{kind: engine.CallBid, bid: &engine.Bid{Level: 2, Denom: engine.DenomDiamonds}, note: "Jacoby transfer to hearts"}
		case c.player.SuitCount(engine.SuitSpades) >= 5:
			return &candidate{kind: engine.CallBid, bid: &engine.Bid{Level: 2, Denom: engine.DenomHearts}, note: "Jacoby transfer to spades"}
		case c.player.SuitCount(engine.SuitHearts) == 4 || c.player.SuitCount(engine.SuitSpades) == 4:
			return &candidate{kind: engine.CallBid, bid: &engine.Bid{Level: 2, Denom: engine.DenomClubs}, note: "Stayman"}
		}
		return nil
	}

	if partnerBid.Denom != engine.DenomNoTrump {
		inferred := 13 + 3*(partnerBid.Level-1)
		if c.hcp+inferred >= 32 {
			return &candidate{kind: engine.CallBid, bid: &engine.Bid{Level: 4, Denom: engine.DenomNoTrump}, note: "Blackwood"}
		}
	}
	return nil
}

func opening(c *bidCtx) *candidate {
	if c.state.LastAction != nil {
		return nil
	}
	suit, length := longestSuit(c.player.Hand)
	bal := balanced(c.player.Hand)
	switch {
	case bal && c.hcp >= 15 && c.hcp <= 17:
		return &candidate{kind: engine.CallBid, bid: &engine.Bid{Level: 1, Denom: engine.DenomNoTrump}, note: "15-17 balanced"}
	case bal && c.hcp >= 20 && c.hcp <= 21:
		return &candidate{kind: engine.CallBid, bid: &engine.Bid{Level: 2, Denom: engine.DenomNoTrump}, note: "20-21 balanced"}
	case c.hcp >= 22:
		return &candidate{kind: engine.CallBid, bid: &engine.Bid{Level: 2, Denom: engine.DenomClubs}, note: "strong"}
	case c.hcp <= 11 && length >= 6:
		level := 2
		if length >= 7 {
			level = 3
		}
		return &candidate{kind: engine.CallBid, bid: &engine.Bid{Level: level, Denom: engine.DenomOf(suit)}, note: "preempt"}
	case c.hcp >= 12 || (c.hcp >= 11 && length >= 5):
		return &candidate{kind: engine.CallBid, bid: &engine.Bid{Level: 1, Denom: engine.DenomOf(suit)}, note: "opening"}
	default:
		return nil
	}
}

func response(c *bidCtx) *candidate {
	la := c.state.LastAction
	if la == nil || la.Kind != engine.CallBid || la.Seat.Side() != c.player.Seat.Side() {
		return nil
	}
	partner := *la.Bid

	if partner.Denom == engine.DenomNoTrump {
		switch {
		case c.hcp >= 10:
			return &candidate{kind: engine.CallBid, bid: &engine.Bid{Level: 3, Denom: engine.DenomNoTrump}, note: "raise to game"}
		case c.hcp >= 8:
			return &candidate{kind: engine.CallBid, bid: &engine.Bid{Level: 2, Denom: engine.DenomNoTrump}, note: "invitational"}
		default:
			return nil
		}
	}

	trumpSuit, _ := partner.Denom.TrumpSuit()
	support := c.player.SuitCount(trumpSuit)
	switch {
	case support >= 4 && c.hcp >= 13:
		level := 4
		if !trumpSuit.IsMajor() {
			level = 5
		}
		return &candidate{kind: engine.CallBid, bid: &engine.Bid{Level: level, Denom: partner.Denom}, note: "raise to game"}
	case support >= 3 && c.hcp >= 10:
		return &candidate{kind: engine.CallBid, bid: &engine.Bid{Level: partner.Level + 2, Denom: partner.Denom}, note: "invitational raise"}
	case support >= 3 && c.hcp >= 6:
		return &candidate{kind: engine.CallBid, bid: &engine.Bid{Level: partner.Level + 1, Denom: partner.Denom}, note: "simple raise"}
	case c.hcp >= 10:
		suit, length := longestSuit(c.player.Hand)
		if length >= 5 && suit != trumpSuit {
			if bid := cheapestBid(c.state.HighBid, engine.DenomOf(suit), 7); bid != nil {
				return &candidate{kind: engine.CallBid, bid: bid, note: "new suit"}
			}
		}
		return nil
	default:
		return nil
	}
}

func defense(c *bidCtx) *candidate {
	la := c.state.LastAction
	if la == nil || la.Seat.Side() == c.player.Seat.Side() || la.Kind != engine.CallBid {
		return nil
	}

	if c.hcp >= 15 && la.Bid.Level >= 3 && kindLegal(c.legal, engine.CallDouble) &&
		!partnerDoubledSince(c.history, c.player.Seat.Partner()) {
		return &candidate{kind: engine.CallDouble, note: "takeout"}
	}

	if balanced(c.player.Hand) && c.hcp >= 15 {
		if bid := cheapestBid(c.state.HighBid, engine.DenomNoTrump, 3); bid != nil {
			return &candidate{kind: engine.CallBid, bid: bid, note: "notrump overcall"}
		}
	}
	suit, length := longestSuit(c.player.Hand)
	if c.hcp >= 12 && length >= 5 {
		if bid := cheapestBid(c.state.HighBid, engine.DenomOf(suit), 7); bid != nil {
			return &candidate{kind: engine.CallBid, bid: bid, note: "overcall"}
		}
	}
	return nil
}

// cheapestBid finds the lowest bid in denom that outranks high, capped at
// maxLevel. Nil when nothing fits.
func cheapestBid(high *engine.Bid, denom engine.Denom, maxLevel int) *engine.Bid {
	floor := 0
	if high != nil {
		floor = high.Score()
	}
	for level := 1; level <= maxLevel; level++ {
		b := engine.Bid{Level: level, Denom: denom}
		if b.Score() > floor {
			return &b
		}
	}
	return nil
}

// lastSideBid finds the most recent bid made by the given partnership.
func lastSideBid(history []engine.Call, side engine.Side) *engine.Call {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Kind == engine.CallBid && history[i].Seat.Side() == side {
			c := history[i]
			return &c
		}
	}
	return nil
}

// partnerOpenedOneNoTrump reports whether the first bid of the auction was
// partner's 1NT.
func partnerOpenedOneNoTrump(history []engine.Call, partner engine.Seat) bool {
	for _, call := range history {
		if call.Kind != engine.CallBid {
			continue
		}
		return call.Seat == partner && *call.Bid == (engine.Bid{Level: 1, Denom: engine.DenomNoTrump})
	}
	return false
}

// partnerDoubledSince reports whether partner doubled after the opponents'
// most recent bid.
func partnerDoubledSince(history []engine.Call, partner engine.Seat) bool {
	for i := len(history) - 1; i >= 0; i-- {
		call := history[i]
		if call.Kind == engine.CallBid {
			return false
		}
		if call.Kind == engine.CallDouble && call.Seat == partner {
			return true
		}
	}
	return false
}

func kindLegal(legal []engine.Call, kind engine.CallKind) bool {
	for _, l := range legal {
		if l.Kind == kind {
			return true
		}
	}
	return false
}

func matchCall(legal []engine.Call, cand candidate) (engine.Call, bool) {
	probe := engine.Call{Kind: cand.kind, Bid: cand.bid}
	for _, l := range legal {
		if l.SameTemplate(probe) {
			l.Note = cand.note
			return l, true
		}
	}
	return engine.Call{}, false
}

func firstPass(legal []engine.Call) engine.Call {
	for _, l := range legal {
		if l.Kind == engine.CallPass {
			return l
		}
	}
	// LegalCalls always lists a pass first; reaching here means the caller
	// handed us an empty set.
	return engine.Call{Kind: engine.CallPass}
}

func balanced(hand []engine.Card) bool {
	doubletons := 0
	for _, s := range engine.Suits() {
		n := suitCount(hand, s)
		if n <= 1 {
			return false
		}
		if n == 2 {
			doubletons++
		}
	}
	return doubletons <= 1
}

func suitCount(hand []engine.Card, s engine.Suit) int {
	n := 0
	for _, c := range hand {
		if c.Suit == s {
			n++
		}
	}
	return n
}

// longestSuit returns the longest suit in hand, breaking length ties toward
// the higher-ranking suit.
func longestSuit(hand []engine.Card) (engine.Suit, int) {
	best := engine.SuitClubs
	bestLen := 0
	for _, s := range engine.Suits() {
		n := suitCount(hand, s)
		if n > bestLen || (n == bestLen && s > best) {
			best = s
			bestLen = n
		}
	}
	return best, bestLen
}

// ChooseCard implements the lead and follow strategies over the engine's
// valid-play enumeration.
func (h *Heuristic) ChooseCard(d *engine.Deal, seat engine.Seat) engine.Card {
	legal := d.ValidPlays(seat)
	if len(d.CurrentTrick) == 0 {
		return chooseLead(d, seat, legal)
	}
	return chooseFollow(d, seat, legal)
}

// chooseLead picks the highest card of the longest non-trump suit, falling
// back to the highest trump from an all-trump hand.
func chooseLead(d *engine.Deal, seat engine.Seat, legal []engine.Card) engine.Card {
	nonTrump := []engine.Card{}
	for _, c := range legal {
		if d.Trump == nil || c.Suit != *d.Trump {
			nonTrump = append(nonTrump, c)
		}
	}
	if len(nonTrump) == 0 {
		return highestCard(legal)
	}
	suit, _ := longestSuit(nonTrump)
	return highestCard(cardsOfSuit(nonTrump, suit))
}

func chooseFollow(d *engine.Deal, seat engine.Seat, legal []engine.Card) engine.Card {
	winner, _ := engine.WinningPlay(d.CurrentTrick, d.Trump)
	partnershipWinning := winner.Seat.Side() == seat.Side()

	if partnershipWinning {
		// Duck, discarding a non-trump ahead of a trump when void.
		if d.Trump != nil {
			if nonTrump := cardsNotOfSuit(legal, *d.Trump); len(nonTrump) > 0 {
				return lowestCard(nonTrump)
			}
		}
		return lowestCard(legal)
	}

	lead := *d.LeadSuit
	if legal[0].Suit == lead && d.Players[seat].HasSuit(lead) {
		if c, ok := lowestBeating(d, seat, legal); ok {
			return c
		}
		return lowestCard(legal)
	}

	if d.Trump != nil {
		trumps := cardsOfSuit(legal, *d.Trump)
		if len(trumps) > 0 {
			if winner.Card.Suit == *d.Trump {
				if c, ok := lowestBeating(d, seat, trumps); ok {
					return c
				}
				return lowestCard(trumps)
			}
			return lowestCard(trumps)
		}
	}
	return lowestCard(legal)
}

// lowestBeating finds the lowest candidate that would take over the trick.
func lowestBeating(d *engine.Deal, seat engine.Seat, cands []engine.Card) (engine.Card, bool) {
	var best engine.Card
	found := false
	for _, c := range cands {
		trial := append(append([]engine.TrickPlay(nil), d.CurrentTrick...), engine.TrickPlay{Seat: seat, Card: c})
		w, _ := engine.WinningPlay(trial, d.Trump)
		if w.Seat != seat {
			continue
		}
		if !found || c.Rank < best.Rank {
			best = c
			found = true
		}
	}
	return best, found
}

func cardsOfSuit(cards []engine.Card, s engine.Suit) []engine.Card {
	out := []engine.Card{}
	for _, c := range cards {
		if c.Suit == s {
			out = append(out, c)
		}
	}
	return out
}

func cardsNotOfSuit(cards []engine.Card, s engine.Suit) []engine.Card {
	out := []engine.Card{}
	for _, c := range cards {
		if c.Suit != s {
			out = append(out, c)
		}
	}
	return out
}

func lowestCard(cards []engine.Card) engine.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Rank < best.Rank {
			best = c
		}
	}
	return best
}

func highestCard(cards []engine.Card) engine.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Rank > best.Rank {
			best = c
		}
	}
	return best
}

// Random is a baseline bot: it passes most of the time, otherwise takes a
// random legal call, and plays a random valid card.
type Random struct {
	RNG *rand.Rand
}

func NewRandom(seed int64) *Random {
	return &Random{RNG: rand.New(rand.NewSource(seed))}
}

func (b *Random) ChooseCall(p *engine.Player, legal []engine.Call, history []engine.Call, state engine.AuctionState) engine.Call {
	if len(legal) == 0 {
		return engine.Call{Kind: engine.CallPass}
	}
	if b.RNG.Intn(3) != 0 {
		return firstPass(legal)
	}
	return legal[b.RNG.Intn(len(legal))]
}

func (b *Random) ChooseCard(d *engine.Deal, seat engine.Seat) engine.Card {
	legal := d.ValidPlays(seat)
	return legal[b.RNG.Intn(len(legal))]
}
