package engine

// Score is the final attribution of a deal to the two partnerships.
type Score struct {
	NorthSouth int
	EastWest   int
}

// TrickScore is the base contract value: NT 40 for the first trick then 30,
// majors 30 per trick, minors 20 per trick, doubled x2, redoubled x4.
func TrickScore(b Bid, doubled, redoubled bool) int {
	var base int
	switch {
	case b.Denom == DenomNoTrump:
		base = 40 + 30*(b.Level-1)
	case b.Denom == DenomHearts || b.Denom == DenomSpades:
		base = 30 * b.Level
	default:
		base = 20 * b.Level
	}
	switch {
	case redoubled:
		return base * 4
	case doubled:
		return base * 2
	default:
		return base
	}
}

// ScoreContract computes rubber-style points for a finished contract given
// the declaring side's total tricks. It returns the declaring side's points
// and the defenders' points; exactly one of the two is non-zero.
func ScoreContract(c Contract, tricksWon int, vulnerable bool) (declarers, defenders int) {
	needed := 6 + c.Bid.Level
	if tricksWon < needed {
		return 0, undertrickPenalty(c, needed-tricksWon, vulnerable)
	}
	return madeScore(c, tricksWon-needed, vulnerable), 0
}

func madeScore(c Contract, overtricks int, vulnerable bool) int {
	trick := TrickScore(c.Bid, c.Doubled, c.Redoubled)
	total := trick

	// Insult bonus for making a doubled or redoubled contract.
	if c.Redoubled {
		total += 100
	} else if c.Doubled {
		total += 50
	}

	if trick >= 100 {
		if vulnerable {
			total += 500
		} else {
			total += 300
		}
	} else {
		total += 50
	}

	switch c.Bid.Level {
	case 6:
		if vulnerable {
			total += 750
		} else {
			total += 500
		}
	case 7:
		if vulnerable {
			total += 1500
		} else {
			total += 1000
		}
	}

	total += overtricks * overtrickValue(c, vulnerable)
	return total
}

func overtrickValue(c Contract, vulnerable bool) int {
	switch {
	case c.Redoubled:
		if vulnerable {
			return 400
		}
		return 200
	case c.Doubled:
		if vulnerable {
			return 200
		}
		return 100
	case c.Bid.Denom == DenomClubs || c.Bid.Denom == DenomDiamonds:
		return 20
	default:
		return 30
	}
}

func undertrickPenalty(c Contract, undertricks int, vulnerable bool) int {
	if !c.Doubled && !c.Redoubled {
		per := 50
		if vulnerable {
			per = 100
		}
		return undertricks * per
	}

	// Doubled ladder; a redouble doubles the summed total again.
	total := 0
	for i := 1; i <= undertricks; i++ {
		switch {
		case vulnerable:
			if i == 1 {
				total += 200
			} else {
				total += 300
			}
		case i == 1:
			total += 100
		case i <= 3:
			total += 200
		default:
			total += 300
		}
	}
	if c.Redoubled {
		total *= 2
	}
	return total
}

// CalculateScore attributes the deal's result to the two partnerships. A
// passed-out deal scores zero for both sides.
func (d *Deal) CalculateScore() Score {
	if d.Contract == nil {
		return Score{}
	}
	declarer := d.Contract.Declarer
	side := declarer.Side()
	tricks := d.Players[declarer].TricksWon + d.Players[declarer.Partner()].TricksWon
	vulnerable := d.Vulnerability.Includes(side)

	dec, def := ScoreContract(*d.Contract, tricks, vulnerable)
	var s Score
	if side == SideNorthSouth {
		s.NorthSouth = dec
		s.EastWest = def
	} else {
		s.EastWest = dec
		s.NorthSouth = def
	}
	return s
}
