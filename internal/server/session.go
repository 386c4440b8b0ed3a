package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"bridge/internal/bots"
	"bridge/internal/engine"
)

// humanSeat is the single connected player's position; the other three
// seats are driven by bots.
const humanSeat = engine.SeatSouth

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Session struct {
	mu          sync.Mutex
	id          string
	deal        *engine.Deal
	started     bool
	dealsPlayed int
	actionIds   map[string]bool
	conn        *websocket.Conn
	botSeats    map[engine.Seat]bots.Bot
	turn        engine.Seat // whose card is due during play
}

var (
	sessionOnce sync.Once
	sessionInst *Session
)

func GetSession() *Session {
	sessionOnce.Do(func() {
		sessionInst = &Session{
			id:        uuid.NewString(),
			actionIds: map[string]bool{},
			botSeats:  map[engine.Seat]bots.Bot{},
		}
	})
	return sessionInst
}

type ClientMessage struct {
	Type     string     `json:"type"`
	ActionId string     `json:"actionId,omitempty"`
	Action   *ActionDTO `json:"action,omitempty"`
}

type ServerMessage struct {
	Type   string     `json:"type"`
	State  *GameView  `json:"state,omitempty"`
	Events []Event    `json:"events,omitempty"`
	Error  *ErrorView `json:"error,omitempty"`
}

type ErrorView struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Session) HandleConnection(conn *websocket.Conn) {
	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError("bad_request", "invalid json")
			continue
		}
		s.handleMessage(msg)
	}
}

func (s *Session) handleMessage(msg ClientMessage) {
	switch msg.Type {
	case "join_session", "request_state":
		s.sendState(nil)
	case "start_deal":
		s.startDeal()
	case "player_action":
		s.applyAction(msg.ActionId, msg.Action)
	default:
		s.sendError("unknown_type", "unknown message type")
	}
}

func (s *Session) startDeal() {
	s.mu.Lock()
	defer s.mu.Unlock()

	dealer := engine.Seat(s.dealsPlayed % 4)
	vul := engine.Vulnerability(s.dealsPlayed % 4)
	s.deal = engine.NewDeal(time.Now().UnixNano(), dealer, vul)
	s.deal.DealCards()
	s.dealsPlayed++
	s.started = true
	s.actionIds = map[string]bool{}
	assistant := bots.NewHeuristic()
	s.botSeats = map[engine.Seat]bots.Bot{
		engine.SeatNorth: assistant,
		engine.SeatEast:  assistant,
		engine.SeatWest:  assistant,
	}

	events := s.advanceBotsLocked()
	s.sendStateLocked(events)
}

func (s *Session) applyAction(actionId string, dto *ActionDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started || s.deal == nil {
		s.sendError("not_started", "deal not started")
		return
	}
	if actionId == "" {
		s.sendError("missing_action_id", "actionId required")
		return
	}
	if s.actionIds[actionId] {
		s.sendStateLocked(nil)
		return
	}
	s.actionIds[actionId] = true

	if dto == nil {
		s.sendError("bad_action", "action missing")
		return
	}

	events, errCode, errMsg := s.applyHumanLocked(dto)
	if errCode != "" {
		s.sendError(errCode, errMsg)
		return
	}
	events = append(events, s.advanceBotsLocked()...)
	s.sendStateLocked(events)
}

func (s *Session) applyHumanLocked(dto *ActionDTO) ([]Event, string, string) {
	switch dto.Type {
	case "call":
		call, err := dto.Call.ToEngine()
		if err != nil {
			return nil, "bad_action", err.Error()
		}
		if err := s.deal.ApplyCall(humanSeat, call); err != nil {
			return nil, "apply_failed", err.Error()
		}
		events := []Event{callEvent(s.deal.Auction.Calls[len(s.deal.Auction.Calls)-1])}
		events = append(events, s.afterAuctionLocked()...)
		return events, "", ""
	case "play_card":
		if dto.Card == nil {
			return nil, "bad_action", "card required"
		}
		card, err := dto.Card.ToEngine()
		if err != nil {
			return nil, "bad_action", err.Error()
		}
		if s.turn != humanSeat {
			return nil, "apply_failed", "not your turn"
		}
		if err := s.deal.PlayCard(humanSeat, card); err != nil {
			return nil, "apply_failed", err.Error()
		}
		events := []Event{playEvent(humanSeat, card)}
		s.turn = s.turn.Next()
		events = append(events, s.resolveTrickLocked()...)
		return events, "", ""
	case "claim":
		if !s.deal.ClaimTricks(humanSeat, dto.Count) {
			return nil, "invalid_claim", "claim rejected"
		}
		events := []Event{claimedEvent(humanSeat, dto.Count)}
		events = append(events, scoredEvent(s.deal.CalculateScore()))
		return events, "", ""
	default:
		return nil, "bad_action", "unknown action type"
	}
}

// advanceBotsLocked lets bots act until it is the human's turn or the deal
// is over, emitting one event per action.
func (s *Session) advanceBotsLocked() []Event {
	events := []Event{}
	for {
		if s.deal == nil || !s.started {
			return events
		}
		if s.deal.Auction != nil && !s.deal.Auction.Done {
			seat := s.deal.Auction.Turn
			bot, isBot := s.botSeats[seat]
			if !isBot {
				return events
			}
			legal := s.deal.Auction.LegalCalls(seat)
			call := bot.ChooseCall(s.deal.Players[seat], legal, s.deal.Auction.Calls, s.deal.Auction.State())
			if err := s.deal.ApplyCall(seat, call); err != nil {
				log.Printf("bot call error: %v", err)
				return events
			}
			events = append(events, callEvent(s.deal.Auction.Calls[len(s.deal.Auction.Calls)-1]))
			events = append(events, s.afterAuctionLocked()...)
			continue
		}
		if s.deal.Contract == nil || s.deal.Finished() {
			return events
		}
		seat := s.turn
		bot, isBot := s.botSeats[seat]
		if !isBot {
			return events
		}
		card := bot.ChooseCard(s.deal, seat)
		if err := s.deal.PlayCard(seat, card); err != nil {
			log.Printf("bot play error: %v", err)
			return events
		}
		events = append(events, playEvent(seat, card))
		s.turn = s.turn.Next()
		events = append(events, s.resolveTrickLocked()...)
	}
}

func (s *Session) afterAuctionLocked() []Event {
	if s.deal.Auction == nil || !s.deal.Auction.Done {
		return nil
	}
	if s.deal.Contract == nil {
		return []Event{passedOutEvent()}
	}
	if leader, ok := s.deal.OpeningLeader(); ok && len(s.deal.Tricks) == 0 && len(s.deal.CurrentTrick) == 0 {
		s.turn = leader
	}
	return nil
}

func (s *Session) resolveTrickLocked() []Event {
	if len(s.deal.CurrentTrick) != 4 {
		return nil
	}
	winner, err := s.deal.CompleteTrick()
	if err != nil {
		log.Printf("complete trick: %v", err)
		return nil
	}
	events := []Event{trickWonEvent(winner, len(s.deal.Tricks))}
	s.turn = winner
	if s.deal.Finished() {
		events = append(events, scoredEvent(s.deal.CalculateScore()))
	}
	return events
}

func (s *Session) sendState(events []Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendStateLocked(events)
}

func (s *Session) sendStateLocked(events []Event) {
	if s.conn == nil {
		return
	}
	msg := ServerMessage{
		Type:   "state",
		State:  BuildGameView(s.deal, humanSeat, s.id, s.turn),
		Events: events,
	}
	_ = s.conn.WriteJSON(msg)
}

func (s *Session) sendError(code, message string) {
	if s.conn == nil {
		return
	}
	msg := ServerMessage{
		Type:  "error",
		Error: &ErrorView{Code: code, Message: message},
	}
	_ = s.conn.WriteJSON(msg)
}
