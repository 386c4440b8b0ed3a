package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIllegalPlay means the card is not in hand or violates follow-suit.
	// The driver may re-prompt; no state changed.
	ErrIllegalPlay = errors.New("illegal play")
	// ErrPremature means an operation ran out of order, e.g. completing a
	// trick before four cards are in.
	ErrPremature = errors.New("premature operation")
)

// TrickPlay is one (seat, card) entry of a trick.
type TrickPlay struct {
	Seat Seat
	Card Card
}

// TrickRecord is an immutable completed trick. Claimed records carry no
// plays; they credit the winner with one claimed trick.
type TrickRecord struct {
	Plays   []TrickPlay
	Winner  Seat
	Claimed bool
}

// ValidPlays lists every card seat may legally play to the current trick:
// the whole hand when leading or void in the lead suit, otherwise only the
// lead suit.
func (d *Deal) ValidPlays(seat Seat) []Card {
	p := d.Players[seat]
	if len(d.CurrentTrick) == 0 || d.LeadSuit == nil {
		return append([]Card(nil), p.Hand...)
	}
	if p.HasSuit(*d.LeadSuit) {
		out := []Card{}
		for _, c := range p.Hand {
			if c.Suit == *d.LeadSuit {
				out = append(out, c)
			}
		}
		return out
	}
	return append([]Card(nil), p.Hand...)
}

// PlayCard adds seat's card to the current trick. A rejected play leaves the
// trick and the hand untouched.
func (d *Deal) PlayCard(seat Seat, card Card) error {
	if d.Contract == nil {
		return fmt.Errorf("%w: no contract to play", ErrPremature)
	}
	if len(d.CurrentTrick) >= 4 {
		return fmt.Errorf("%w: trick already has four cards", ErrPremature)
	}
	for _, tp := range d.CurrentTrick {
		if tp.Seat == seat {
			return fmt.Errorf("%w: %s already played to this trick", ErrPremature, seat)
		}
	}
	p := d.Players[seat]
	if !p.HasCard(card) {
		return fmt.Errorf("%w: %s not in %s's hand", ErrIllegalPlay, card, seat)
	}
	if len(d.CurrentTrick) > 0 && d.LeadSuit != nil {
		if card.Suit != *d.LeadSuit && p.HasSuit(*d.LeadSuit) {
			return fmt.Errorf("%w: must follow %s", ErrIllegalPlay, d.LeadSuit)
		}
	}

	removeCard(&p.Hand, card)
	if len(d.CurrentTrick) == 0 {
		lead := card.Suit
		d.LeadSuit = &lead
	}
	d.CurrentTrick = append(d.CurrentTrick, TrickPlay{Seat: seat, Card: card})
	return nil
}

// CompleteTrick resolves a four-card trick, records it, credits the winner
// and clears the table. It fails before the fourth card is in.
func (d *Deal) CompleteTrick() (Seat, error) {
	if len(d.CurrentTrick) != 4 {
		return 0, fmt.Errorf("%w: trick has %d of 4 cards", ErrPremature, len(d.CurrentTrick))
	}
	win, _ := WinningPlay(d.CurrentTrick, d.Trump)
	rec := TrickRecord{
		Plays:  append([]TrickPlay(nil), d.CurrentTrick...),
		Winner: win.Seat,
	}
	d.Tricks = append(d.Tricks, rec)
	d.Players[win.Seat].TricksWon++
	d.CurrentTrick = nil
	d.LeadSuit = nil
	return win.Seat, nil
}

// WinningPlay returns the play currently holding the trick: trump beats
// non-trump, lead suit beats a discard, higher rank decides within a
// category. ok is false for an empty trick.
func WinningPlay(plays []TrickPlay, trump *Suit) (TrickPlay, bool) {
	if len(plays) == 0 {
		return TrickPlay{}, false
	}
	lead := plays[0].Card.Suit
	best := plays[0]
	for _, tp := range plays[1:] {
		if beats(tp.Card, best.Card, lead, trump) {
			best = tp
		}
	}
	return best, true
}

func beats(c, best Card, lead Suit, trump *Suit) bool {
	cc := playCategory(c, lead, trump)
	bc := playCategory(best, lead, trump)
	if cc != bc {
		return cc > bc
	}
	return c.Rank > best.Rank
}

// playCategory orders trump above lead suit above everything else.
func playCategory(c Card, lead Suit, trump *Suit) int {
	if trump != nil && c.Suit == *trump {
		return 2
	}
	if c.Suit == lead {
		return 1
	}
	return 0
}

// ClaimTricks lets seat's side claim n remaining tricks. Claims are legal
// only between tricks and only for tricks mathematically remaining. A
// successful claim empties all hands and ends the deal; the reply is false
// (not an error) on a bad claim so drivers can re-prompt.
func (d *Deal) ClaimTricks(seat Seat, n int) bool {
	if d.Contract == nil || len(d.CurrentTrick) != 0 {
		return false
	}
	remaining := d.TricksRemaining()
	if n <= 0 || n > remaining {
		return false
	}
	for _, p := range d.Players {
		p.Hand = nil
	}
	for i := 0; i < n; i++ {
		d.Tricks = append(d.Tricks, TrickRecord{Winner: seat, Claimed: true})
	}
	d.Players[seat].TricksWon += n
	// Claiming fewer than the remaining tricks concedes the rest.
	if conceded := remaining - n; conceded > 0 {
		opp := seat.Next()
		for i := 0; i < conceded; i++ {
			d.Tricks = append(d.Tricks, TrickRecord{Winner: opp, Claimed: true})
		}
		d.Players[opp].TricksWon += conceded
	}
	d.Claimed = true
	return true
}

// TricksRemaining counts tricks not yet recorded, out of 13 per deal.
func (d *Deal) TricksRemaining() int {
	return 13 - len(d.Tricks)
}

// TrickHistory renders one line per recorded trick for display.
func (d *Deal) TrickHistory() []string {
	out := make([]string, 0, len(d.Tricks))
	for i, t := range d.Tricks {
		if t.Claimed {
			out = append(out, fmt.Sprintf("[%d] claimed by %s", i+1, t.Winner))
			continue
		}
		parts := make([]string, 0, 4)
		for _, tp := range t.Plays {
			parts = append(parts, fmt.Sprintf("%s:%s", tp.Seat, tp.Card))
		}
		out = append(out, fmt.Sprintf("[%d] %s -> %s", i+1, strings.Join(parts, " "), t.Winner))
	}
	return out
}
