package engine

import "fmt"

type Suit int

const (
	SuitClubs Suit = iota
	SuitDiamonds
	SuitHearts
	SuitSpades
)

func Suits() []Suit {
	return []Suit{SuitClubs, SuitDiamonds, SuitHearts, SuitSpades}
}

func (s Suit) String() string {
	switch s {
	case SuitClubs:
		return "C"
	case SuitDiamonds:
		return "D"
	case SuitHearts:
		return "H"
	case SuitSpades:
		return "S"
	default:
		return "?"
	}
}

// IsMajor reports whether the suit is hearts or spades.
func (s Suit) IsMajor() bool {
	return s == SuitHearts || s == SuitSpades
}

type Rank int

const (
	Rank2 Rank = iota + 2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ
	RankQ
	RankK
	RankA
)

func Ranks() []Rank {
	out := make([]Rank, 0, 13)
	for r := Rank2; r <= RankA; r++ {
		out = append(out, r)
	}
	return out
}

func (r Rank) String() string {
	switch r {
	case RankJ:
		return "J"
	case RankQ:
		return "Q"
	case RankK:
		return "K"
	case RankA:
		return "A"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// HighCardPoints returns the standard bridge point value: A=4, K=3, Q=2, J=1.
func (r Rank) HighCardPoints() int {
	switch r {
	case RankA:
		return 4
	case RankK:
		return 3
	case RankQ:
		return 2
	case RankJ:
		return 1
	default:
		return 0
	}
}

type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank.String(), c.Suit.String())
}

// HighCardPoints sums the high-card points over a hand.
func HighCardPoints(hand []Card) int {
	total := 0
	for _, c := range hand {
		total += c.Rank.HighCardPoints()
	}
	return total
}

// Seat is a table position. Bidding and play rotate N, E, S, W.
type Seat int

const (
	SeatNorth Seat = iota
	SeatEast
	SeatSouth
	SeatWest
)

func Seats() []Seat {
	return []Seat{SeatNorth, SeatEast, SeatSouth, SeatWest}
}

func (s Seat) String() string {
	switch s {
	case SeatNorth:
		return "N"
	case SeatEast:
		return "E"
	case SeatSouth:
		return "S"
	case SeatWest:
		return "W"
	default:
		return "?"
	}
}

func (s Seat) Next() Seat {
	return (s + 1) % 4
}

func (s Seat) Partner() Seat {
	return (s + 2) % 4
}

// Side identifies a partnership. It is derived from the seat, never stored
// separately.
type Side int

const (
	SideNorthSouth Side = iota
	SideEastWest
)

func (s Side) String() string {
	if s == SideNorthSouth {
		return "north_south"
	}
	return "east_west"
}

func (s Side) Opponent() Side {
	if s == SideNorthSouth {
		return SideEastWest
	}
	return SideNorthSouth
}

func (s Seat) Side() Side {
	if s == SeatNorth || s == SeatSouth {
		return SideNorthSouth
	}
	return SideEastWest
}

// Vulnerability is fixed for the whole deal at creation time.
type Vulnerability int

const (
	VulNone Vulnerability = iota
	VulNorthSouth
	VulEastWest
	VulBoth
)

func (v Vulnerability) String() string {
	switch v {
	case VulNone:
		return "none"
	case VulNorthSouth:
		return "north_south"
	case VulEastWest:
		return "east_west"
	case VulBoth:
		return "both"
	default:
		return "?"
	}
}

func (v Vulnerability) Includes(side Side) bool {
	switch v {
	case VulBoth:
		return true
	case VulNorthSouth:
		return side == SideNorthSouth
	case VulEastWest:
		return side == SideEastWest
	default:
		return false
	}
}

type Player struct {
	Name      string
	Seat      Seat
	Hand      []Card
	TricksWon int
	IsAI      bool
}

func (p *Player) HasCard(c Card) bool {
	for _, h := range p.Hand {
		if h == c {
			return true
		}
	}
	return false
}

func (p *Player) HasSuit(s Suit) bool {
	for _, c := range p.Hand {
		if c.Suit == s {
			return true
		}
	}
	return false
}

func (p *Player) SuitCount(s Suit) int {
	n := 0
	for _, c := range p.Hand {
		if c.Suit == s {
			n++
		}
	}
	return n
}

func removeCard(hand *[]Card, card Card) bool {
	for i, c := range *hand {
		if c == card {
			*hand = append((*hand)[:i], (*hand)[i+1:]...)
			return true
		}
	}
	return false
}
