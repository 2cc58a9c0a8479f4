package net

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/peterkuimelis/colossus/internal/game"
	"github.com/peterkuimelis/colossus/internal/log"
)

// recentLogLines is how much of the combat log a StateView carries.
const recentLogLines = 8

// NetworkController implements game.PlayerController over a TCP connection.
type NetworkController struct {
	conn   net.Conn
	enc    *json.Encoder
	dec    *json.Decoder
	player int // which player this controller is (0 or 1)
	mu     sync.Mutex
}

// NewNetworkController creates a new controller for the given connection.
func NewNetworkController(conn net.Conn, player int) *NetworkController {
	return &NetworkController{
		conn:   conn,
		enc:    json.NewEncoder(conn),
		dec:    json.NewDecoder(conn),
		player: player,
	}
}

// BuildStateView creates a StateView from the perspective of the given
// player. The opponent's hand is reduced to a count.
func BuildStateView(snap game.Snapshot, player int) *StateView {
	me := player
	opp := 1 - me

	sv := &StateView{
		Round:      snap.Round,
		Turn:       snap.Turn,
		Phase:      snap.Phase.String(),
		Bank:       snap.Bank,
		IsYourTurn: snap.ActivePlayer == me && !snap.Over,
		You:        playerView(snap.Players[me], true),
		Opponent:   playerView(snap.Players[opp], false),
	}
	for _, e := range snap.Effects {
		sv.Effects = append(sv.Effects, EffectView{Name: e.Name, Card: e.Card, Owner: e.Owner, Duration: e.Duration})
	}
	logs := snap.CombatLog
	if len(logs) > recentLogLines {
		logs = logs[len(logs)-recentLogLines:]
	}
	sv.Log = logs
	return sv
}

func playerView(p game.PlayerSnapshot, isOwner bool) PlayerView {
	pv := PlayerView{
		Health:     p.Health,
		Gold:       p.Gold,
		Moves:      p.MovesRemaining,
		HandCount:  len(p.Hand),
		CryptCount: len(p.Crypt),
		DeckCount:  p.DeckCount,
	}
	if isOwner {
		for i, c := range p.Hand {
			pv.Hand = append(pv.Hand, CardSnapshotView(i, c))
		}
	}
	for slot, c := range p.Field {
		if c != nil {
			cv := CardSnapshotView(slot, *c)
			pv.Field[slot] = &cv
		}
	}
	return pv
}

// CardSnapshotView converts a snapshot card for display.
func CardSnapshotView(index int, c game.CardSnapshot) CardView {
	return CardView{
		Index:     index,
		Name:      c.Name,
		Types:     c.Types,
		Cost:      c.Cost,
		Remaining: c.Remaining,
		Effect:    c.Effect,
	}
}

func (nc *NetworkController) buildStateView(state *game.GameState) *StateView {
	return BuildStateView(state.Snapshot(), nc.player)
}

// send writes msg to the client. Must be called with mu held.
func (nc *NetworkController) send(msg ServerMessage) error {
	return nc.enc.Encode(msg)
}

// ask sends a prompt and waits for the reply. A deadline on ctx becomes the
// connection deadline for the exchange.
func (nc *NetworkController) ask(ctx context.Context, msg ServerMessage) (ClientMessage, error) {
	nc.mu.Lock()
	defer nc.mu.Unlock()

	if dl, ok := ctx.Deadline(); ok {
		_ = nc.conn.SetDeadline(dl)
		defer nc.conn.SetDeadline(time.Time{})
	}
	if err := nc.send(msg); err != nil {
		return ClientMessage{}, fmt.Errorf("send %s: %w", msg.Type, err)
	}
	var reply ClientMessage
	if err := nc.dec.Decode(&reply); err != nil {
		return ClientMessage{}, fmt.Errorf("recv reply to %s: %w", msg.Type, err)
	}
	return reply, nil
}

// ChooseAction implements game.PlayerController. An out-of-range index
// picks the last action, which is always End turn.
func (nc *NetworkController) ChooseAction(ctx context.Context, state *game.GameState, actions []game.Action) (game.Action, error) {
	views := make([]ActionView, len(actions))
	for i, a := range actions {
		views[i] = ActionView{Index: i, Desc: a.String()}
	}
	resp, err := nc.ask(ctx, ServerMessage{Type: "choose_action", Actions: views, State: nc.buildStateView(state)})
	if err != nil {
		return game.Action{}, err
	}
	if resp.Index < 0 || resp.Index >= len(actions) {
		return actions[len(actions)-1], nil
	}
	return actions[resp.Index], nil
}

// ChooseCards implements game.PlayerController. Unknown indices are dropped.
func (nc *NetworkController) ChooseCards(ctx context.Context, state *game.GameState, prompt string, candidates []*game.CardInstance, min, max int) ([]*game.CardInstance, error) {
	views := make([]CardView, len(candidates))
	for i, c := range candidates {
		views[i] = CardView{Index: i, Name: c.Card.Name, Types: c.Card.TypeNames(), Cost: c.Card.Cost}
	}
	resp, err := nc.ask(ctx, ServerMessage{
		Type:       "choose_cards",
		Prompt:     prompt,
		Candidates: views,
		Min:        min,
		Max:        max,
		State:      nc.buildStateView(state),
	})
	if err != nil {
		return nil, err
	}

	var picked []*game.CardInstance
	for _, idx := range resp.Indices {
		if idx >= 0 && idx < len(candidates) {
			picked = append(picked, candidates[idx])
		}
	}
	return picked, nil
}

// ChooseYesNo implements game.PlayerController.
func (nc *NetworkController) ChooseYesNo(ctx context.Context, state *game.GameState, prompt string) (bool, error) {
	resp, err := nc.ask(ctx, ServerMessage{Type: "choose_yes_no", Prompt: prompt, State: nc.buildStateView(state)})
	return resp.Answer, err
}

// ChooseOption implements game.PlayerController. The reply index is
// returned as sent; the engine validates it.
func (nc *NetworkController) ChooseOption(ctx context.Context, state *game.GameState, prompt string, options []string) (int, error) {
	resp, err := nc.ask(ctx, ServerMessage{Type: "choose_option", Prompt: prompt, Options: options, State: nc.buildStateView(state)})
	return resp.Index, err
}

// ChooseNumber implements game.PlayerController.
func (nc *NetworkController) ChooseNumber(ctx context.Context, state *game.GameState, prompt string, min, max int) (int, error) {
	resp, err := nc.ask(ctx, ServerMessage{Type: "choose_number", Prompt: prompt, Min: min, Max: max, State: nc.buildStateView(state)})
	return resp.Index, err
}

// SendGameOver sends a game_over message to the client.
func (nc *NetworkController) SendGameOver(winner int, result string) error {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	return nc.send(ServerMessage{Type: "game_over", Winner: winner, Result: result})
}

// Notify implements game.PlayerController.
func (nc *NetworkController) Notify(ctx context.Context, event log.GameEvent) error {
	nc.mu.Lock()
	defer nc.mu.Unlock()

	msg := ServerMessage{
		Type: "notify",
		Event: &EventView{
			Round:   event.Round,
			Turn:    event.Turn,
			Phase:   event.Phase,
			Player:  event.Player,
			Type:    event.Type.String(),
			Card:    event.Card,
			Details: event.Details,
		},
	}
	return nc.send(msg)
}
