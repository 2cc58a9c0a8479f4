package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	colnet "github.com/peterkuimelis/colossus/internal/net"

	"github.com/peterkuimelis/colossus/internal/game"
	"github.com/peterkuimelis/colossus/internal/log"

	stdnet "net"
)

// DecisionType identifies what kind of decision the game engine is waiting for.
type DecisionType string

const (
	DecisionChooseAction DecisionType = "choose_action"
	DecisionChooseCards  DecisionType = "choose_cards"
	DecisionChooseYesNo  DecisionType = "choose_yes_no"
	DecisionChooseOption DecisionType = "choose_option"
	DecisionChooseNumber DecisionType = "choose_number"
	DecisionGameOver     DecisionType = "game_over"
)

// PendingDecision represents a decision the game engine is waiting for.
type PendingDecision struct {
	Type       DecisionType        `json:"type"`
	Player     int                 `json:"player"`
	State      *colnet.StateView   `json:"state"`
	Actions    []colnet.ActionView `json:"actions,omitempty"`
	Prompt     string              `json:"prompt,omitempty"`
	Candidates []colnet.CardView   `json:"candidates,omitempty"`
	Options    []string            `json:"options,omitempty"`
	Min        int                 `json:"min,omitempty"`
	Max        int                 `json:"max,omitempty"`
}

// Response types sent back from MCP tools to controllers.

type ActionResponse struct {
	Index int
}

type CardsResponse struct {
	Indices []int
}

type YesNoResponse struct {
	Answer bool
}

type OptionResponse struct {
	Index int
}

type NumberResponse struct {
	Value int
}

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	MatchID  string             `json:"match_id,omitempty"`
	Events   []colnet.EventView `json:"events"`
	State    *colnet.StateView  `json:"state,omitempty"`
	Pending  *PendingView       `json:"pending,omitempty"`
	GameOver bool               `json:"game_over"`
	Winner   int                `json:"winner,omitempty"`
	Result   string             `json:"result,omitempty"`
	Port     string             `json:"port,omitempty"`
}

// PendingView is the pending decision as presented in the tool response JSON.
type PendingView struct {
	Type       DecisionType        `json:"type"`
	ForPlayer  string              `json:"for_player"`
	Actions    []colnet.ActionView `json:"actions,omitempty"`
	Prompt     string              `json:"prompt,omitempty"`
	Candidates []colnet.CardView   `json:"candidates,omitempty"`
	Options    []string            `json:"options,omitempty"`
	Min        int                 `json:"min,omitempty"`
	Max        int                 `json:"max,omitempty"`
}

// SessionConfig describes how to start a game session.
type SessionConfig struct {
	DecksFile   string
	AgentDeck   int // 1-indexed
	AgentPlayer int // 0 or 1
	Port        string
	Rules       game.Rules
	Seed        int64
	MaxTurns    int

	// OnFinish, when set, is called with the finished duel and deck names.
	OnFinish func(id string, d *game.Duel, deck0, deck1 string)
}

// humanSeat is the opponent's controller. It is told when the game ends.
type humanSeat interface {
	game.PlayerController
	SendGameOver(winner int, result string) error
}

// GameSession holds the state of a single MCP game session.
type GameSession struct {
	ID          string
	duel        *game.Duel
	agentCtrl   *MCPController
	humanCtrl   humanSeat
	agentPlayer int

	pendingCh      chan *PendingDecision
	currentPending *PendingDecision

	mu       sync.Mutex
	events   []colnet.EventView
	gameOver bool
	winner   int
	result   string
}

// NewGameSession creates a new game session. It starts a TCP listener,
// waits for the human player to connect via `colossus-cli join`, then
// starts the duel.
func NewGameSession(cfg SessionConfig) (*GameSession, error) {
	agentDeckName, agentCards, err := game.DeckByNumber(cfg.DecksFile, cfg.AgentDeck, cfg.Rules)
	if err != nil {
		return nil, fmt.Errorf("load agent deck: %w", err)
	}

	ln, err := stdnet.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return nil, fmt.Errorf("listen on port %s: %w", cfg.Port, err)
	}

	// Accept one connection (blocks until the human joins)
	conn, err := ln.Accept()
	if err != nil {
		ln.Close()
		return nil, fmt.Errorf("accept: %w", err)
	}

	dec := json.NewDecoder(conn)
	var joinMsg colnet.ClientMessage
	if err := dec.Decode(&joinMsg); err != nil {
		conn.Close()
		ln.Close()
		return nil, fmt.Errorf("read join message: %w", err)
	}
	humanDeck := joinMsg.DeckNumber
	if humanDeck == 0 {
		humanDeck = 2
	}

	humanDeckName, humanCards, err := game.DeckByNumber(cfg.DecksFile, humanDeck, cfg.Rules)
	if err != nil {
		conn.Close()
		ln.Close()
		return nil, fmt.Errorf("load human deck: %w", err)
	}

	humanCtrl := colnet.NewNetworkController(conn, 1-cfg.AgentPlayer)
	return startSession(cfg, agentDeckName, agentCards, humanDeckName, humanCards, humanCtrl, func() {
		conn.Close()
		ln.Close()
	}), nil
}

// startSession wires the controllers and runs the duel in the background.
// cleanup runs once the duel has finished.
func startSession(cfg SessionConfig, agentDeckName string, agentCards []*game.Card, humanDeckName string, humanCards []*game.Card, human humanSeat, cleanup func()) *GameSession {
	sess := &GameSession{
		ID:          uuid.NewString(),
		agentPlayer: cfg.AgentPlayer,
		pendingCh:   make(chan *PendingDecision, 1),
		winner:      -1,
		humanCtrl:   human,
	}
	sess.agentCtrl = NewMCPController(cfg.AgentPlayer, sess)

	deck0, deck1 := agentCards, humanCards
	name0, name1 := agentDeckName, humanDeckName
	var ctrl0, ctrl1 game.PlayerController = sess.agentCtrl, sess.humanCtrl
	if cfg.AgentPlayer == 1 {
		deck0, deck1 = deck1, deck0
		name0, name1 = name1, name0
		ctrl0, ctrl1 = ctrl1, ctrl0
	}

	sess.duel = game.NewDuel(game.DuelConfig{
		Deck0:    deck0,
		Deck1:    deck1,
		Rules:    cfg.Rules,
		Logger:   log.NewMemoryLogger(),
		Seed:     cfg.Seed,
		MaxTurns: cfg.MaxTurns,
	}, ctrl0, ctrl1)

	go func() {
		winner, err := sess.duel.Run(context.Background())
		result := sess.duel.State.Result
		if err != nil {
			result = fmt.Sprintf("error: %v", err)
		} else if result == "" {
			result = fmt.Sprintf("Game over. Winner: player %d", winner+1)
		}

		if cfg.OnFinish != nil && err == nil {
			cfg.OnFinish(sess.ID, sess.duel, name0, name1)
		}
		_ = sess.humanCtrl.SendGameOver(winner, result)
		if cleanup != nil {
			cleanup()
		}

		sess.mu.Lock()
		sess.gameOver = true
		sess.winner = winner
		sess.result = result
		sess.mu.Unlock()

		sess.pendingCh <- &PendingDecision{
			Type:   DecisionGameOver,
			Player: winner,
			State:  colnet.BuildStateView(sess.duel.Snapshot(), sess.agentPlayer),
		}
	}()

	return sess
}

// appendEvent adds an event to the session's event log. Thread-safe.
func (s *GameSession) appendEvent(ev colnet.EventView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

// drainEvents returns all accumulated events and clears the buffer.
func (s *GameSession) drainEvents() []colnet.EventView {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.events
	s.events = nil
	if events == nil {
		events = []colnet.EventView{}
	}
	return events
}

// waitForPending blocks until the next decision arrives from the game engine,
// then builds a ToolResponse with accumulated events + the pending decision.
func (s *GameSession) waitForPending(ctx context.Context) (*ToolResponse, error) {
	var pending *PendingDecision
	select {
	case pending = <-s.pendingCh:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	s.currentPending = pending

	resp := &ToolResponse{
		MatchID: s.ID,
		Events:  s.drainEvents(),
		State:   pending.State,
	}

	if pending.Type == DecisionGameOver {
		s.mu.Lock()
		resp.GameOver = true
		resp.Winner = s.winner
		resp.Result = s.result
		s.mu.Unlock()
		return resp, nil
	}

	resp.Pending = s.pendingView(pending)
	return resp, nil
}

func (s *GameSession) pendingView(p *PendingDecision) *PendingView {
	return &PendingView{
		Type:       p.Type,
		ForPlayer:  s.playerLabel(p.Player),
		Actions:    p.Actions,
		Prompt:     p.Prompt,
		Candidates: p.Candidates,
		Options:    p.Options,
		Min:        p.Min,
		Max:        p.Max,
	}
}

// playerLabel returns "agent" or "human" for the given player index.
func (s *GameSession) playerLabel(player int) string {
	if player == s.agentPlayer {
		return "agent"
	}
	return "human"
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
