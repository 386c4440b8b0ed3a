package server

import "bridge/internal/engine"

type PlayerView struct {
	Seat      string    `json:"seat"`
	Name      string    `json:"name"`
	Hand      []CardDTO `json:"hand,omitempty"`
	HandCount int       `json:"handCount"`
	TricksWon int       `json:"tricksWon"`
	IsAI      bool      `json:"isAi"`
}

type TrickPlayView struct {
	Seat string  `json:"seat"`
	Card CardDTO `json:"card"`
}

type ContractView struct {
	Bid       string `json:"bid"`
	Declarer  string `json:"declarer"`
	Doubled   bool   `json:"doubled"`
	Redoubled bool   `json:"redoubled"`
}

type AuctionView struct {
	Calls     []CallDTO `json:"calls"`
	Turn      string    `json:"turn"`
	Done      bool      `json:"done"`
	PassedOut bool      `json:"passedOut"`
	HighBid   string    `json:"highBid,omitempty"`
}

type ScoreView struct {
	NorthSouth int `json:"northSouth"`
	EastWest   int `json:"eastWest"`
}

type GameView struct {
	DealID        string          `json:"dealId"`
	Dealer        string          `json:"dealer"`
	Vulnerability string          `json:"vulnerability"`
	Players       []PlayerView    `json:"players"`
	Auction       *AuctionView    `json:"auction,omitempty"`
	Contract      *ContractView   `json:"contract,omitempty"`
	Trump         *string         `json:"trump,omitempty"`
	Turn          string          `json:"turn,omitempty"`
	CurrentTrick  []TrickPlayView `json:"currentTrick"`
	TrickHistory  []string        `json:"trickHistory"`
	LegalCalls    []CallDTO       `json:"legalCalls,omitempty"`
	ValidPlays    []CardDTO       `json:"validPlays,omitempty"`
	Score         *ScoreView      `json:"score,omitempty"`
}

// BuildGameView renders the deal for one viewer. Only the viewer's own hand
// is included.
func BuildGameView(d *engine.Deal, viewer engine.Seat, dealID string, playTurn engine.Seat) *GameView {
	if d == nil {
		return &GameView{DealID: dealID}
	}
	view := &GameView{
		DealID:        dealID,
		Dealer:        d.Dealer.String(),
		Vulnerability: d.Vulnerability.String(),
		CurrentTrick:  []TrickPlayView{},
		TrickHistory:  d.TrickHistory(),
	}
	for _, s := range engine.Seats() {
		p := d.Players[s]
		pv := PlayerView{
			Seat:      s.String(),
			Name:      p.Name,
			HandCount: len(p.Hand),
			TricksWon: p.TricksWon,
			IsAI:      p.IsAI,
		}
		if s == viewer {
			for _, c := range p.Hand {
				pv.Hand = append(pv.Hand, cardToDTO(c))
			}
		}
		view.Players = append(view.Players, pv)
	}
	if d.Auction != nil {
		av := &AuctionView{
			Turn:      d.Auction.Turn.String(),
			Done:      d.Auction.Done,
			PassedOut: d.Auction.PassedOut,
			Calls:     []CallDTO{},
		}
		for _, c := range d.Auction.Calls {
			av.Calls = append(av.Calls, CallFromEngine(c))
		}
		if d.Auction.HighBid != nil {
			av.HighBid = d.Auction.HighBid.String()
		}
		view.Auction = av
		if !d.Auction.Done {
			for _, c := range d.Auction.LegalCalls(viewer) {
				view.LegalCalls = append(view.LegalCalls, CallFromEngine(c))
			}
		}
	}
	if d.Contract != nil {
		view.Contract = &ContractView{
			Bid:       d.Contract.Bid.String(),
			Declarer:  d.Contract.Declarer.String(),
			Doubled:   d.Contract.Doubled,
			Redoubled: d.Contract.Redoubled,
		}
		view.Turn = playTurn.String()
		if d.Trump != nil {
			t := d.Trump.String()
			view.Trump = &t
		}
		for _, tp := range d.CurrentTrick {
			view.CurrentTrick = append(view.CurrentTrick, TrickPlayView{Seat: tp.Seat.String(), Card: cardToDTO(tp.Card)})
		}
		if !d.Finished() && playTurn == viewer {
			for _, c := range d.ValidPlays(viewer) {
				view.ValidPlays = append(view.ValidPlays, cardToDTO(c))
			}
		}
		if d.Finished() {
			score := d.CalculateScore()
			view.Score = &ScoreView{NorthSouth: score.NorthSouth, EastWest: score.EastWest}
		}
	}
	return view
}
