package sim

import (
	"fmt"

	"bridge/internal/engine"
)

// RunSelfPlayDeals plays complete seeded deals end to end with a simple
// deterministic selector and lowest-card play, checking engine invariants
// after every step. It is the harness behind the fuzz and many-seed tests.
func RunSelfPlayDeals(seed int64, deals int) error {
	for i := 0; i < deals; i++ {
		dealer := engine.Seat(i % 4)
		vul := engine.Vulnerability(i % 4)
		d := engine.NewDeal(seed+int64(i), dealer, vul)
		d.DealCards()

		contract, err := d.ConductBidding(chooseCall)
		if err != nil {
			return fmt.Errorf("seed=%d deal=%d bidding: %w", seed, i, err)
		}
		if err := checkAuctionShape(d); err != nil {
			return fmt.Errorf("seed=%d deal=%d %w", seed, i, err)
		}
		if contract == nil {
			continue
		}

		turn, _ := d.OpeningLeader()
		for !d.Finished() {
			for j := 0; j < 4; j++ {
				card := lowestValidPlay(d, turn)
				if err := d.PlayCard(turn, card); err != nil {
					return fmt.Errorf("seed=%d deal=%d trick=%d play: %w", seed, i, len(d.Tricks), err)
				}
				turn = turn.Next()
			}
			winner, err := d.CompleteTrick()
			if err != nil {
				return fmt.Errorf("seed=%d deal=%d trick=%d complete: %w", seed, i, len(d.Tricks), err)
			}
			turn = winner
			if err := checkInvariants(d); err != nil {
				return fmt.Errorf("seed=%d deal=%d trick=%d %w", seed, i, len(d.Tricks), err)
			}
		}

		total := 0
		for _, p := range d.Players {
			total += p.TricksWon
		}
		if total != 13 {
			return fmt.Errorf("seed=%d deal=%d tricks won sum to %d", seed, i, total)
		}
		score := d.CalculateScore()
		if score.NorthSouth != 0 && score.EastWest != 0 {
			return fmt.Errorf("seed=%d deal=%d both sides scored: %+v", seed, i, score)
		}
	}
	return nil
}

// chooseCall bids the cheapest legal bid once per side when nothing stands,
// otherwise passes. Every auction ends quickly with a 1-level contract or a
// pass-out, which is enough to exercise the play engine deterministically.
func chooseCall(p *engine.Player, legal []engine.Call, history []engine.Call, state engine.AuctionState) engine.Call {
	if state.HighBid == nil && engine.HighCardPoints(p.Hand) >= 12 {
		for _, l := range legal {
			if l.Kind == engine.CallBid {
				return l
			}
		}
	}
	return legal[0]
}

func lowestValidPlay(d *engine.Deal, seat engine.Seat) engine.Card {
	legal := d.ValidPlays(seat)
	best := legal[0]
	for _, c := range legal[1:] {
		if c.Rank < best.Rank {
			best = c
		}
	}
	return best
}

func checkAuctionShape(d *engine.Deal) error {
	a := d.Auction
	if !a.Done {
		return fmt.Errorf("auction not terminated")
	}
	passes := 0
	for i := len(a.Calls) - 1; i >= 0; i-- {
		if a.Calls[i].Kind != engine.CallPass {
			break
		}
		passes++
	}
	if a.PassedOut {
		if a.Contract != nil {
			return fmt.Errorf("passed-out auction produced a contract")
		}
		if passes != 4 || len(a.Calls) != 4 {
			return fmt.Errorf("pass-out shape wrong: %d calls, %d trailing passes", len(a.Calls), passes)
		}
		return nil
	}
	if a.Contract == nil {
		return fmt.Errorf("terminated auction has neither contract nor pass-out")
	}
	if passes != 3 {
		return fmt.Errorf("contract auction ends with %d trailing passes", passes)
	}
	if a.Contract.Declarer.Side() != a.HighBidder.Side() {
		return fmt.Errorf("declarer %s not on winning side", a.Contract.Declarer)
	}
	return nil
}

func checkInvariants(d *engine.Deal) error {
	total, dup := countCards(d)
	if played := playedCards(d); total+played != 52 {
		return fmt.Errorf("card count mismatch: %d live + %d played", total, played)
	}
	if dup {
		return fmt.Errorf("duplicate card detected")
	}
	if len(d.CurrentTrick) > 4 {
		return fmt.Errorf("trick holds %d cards", len(d.CurrentTrick))
	}
	for _, p := range d.Players {
		if len(p.Hand) > 13 {
			return fmt.Errorf("hand size too large: %d", len(p.Hand))
		}
	}
	return nil
}

func countCards(d *engine.Deal) (int, bool) {
	seen := map[engine.Card]bool{}
	total := 0
	dup := false
	add := func(c engine.Card) {
		total++
		if seen[c] {
			dup = true
		}
		seen[c] = true
	}
	for _, p := range d.Players {
		for _, c := range p.Hand {
			add(c)
		}
	}
	for _, tp := range d.CurrentTrick {
		add(tp.Card)
	}
	for _, t := range d.Tricks {
		for _, tp := range t.Plays {
			add(tp.Card)
		}
	}
	return total, dup
}

func playedCards(d *engine.Deal) int {
	// Claimed tricks record no plays but still account for four cards each.
	n := 0
	for _, t := range d.Tricks {
		if t.Claimed {
			n += 4
		}
	}
	return n
}
