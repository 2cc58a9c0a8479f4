package mcp

import (
	"context"

	"github.com/peterkuimelis/colossus/internal/game"
	"github.com/peterkuimelis/colossus/internal/log"
	"github.com/peterkuimelis/colossus/internal/net"
)

// MCPController implements game.PlayerController by sending decisions
// to the MCP session's pending channel and blocking on a response channel.
type MCPController struct {
	player     int
	session    *GameSession
	responseCh chan any
}

// NewMCPController creates a controller for the given player.
func NewMCPController(player int, session *GameSession) *MCPController {
	return &MCPController{
		player:     player,
		session:    session,
		responseCh: make(chan any),
	}
}

// ask publishes a decision and waits for the tool handler's answer.
func (c *MCPController) ask(ctx context.Context, state *game.GameState, d *PendingDecision) (any, error) {
	d.Player = c.player
	d.State = net.BuildStateView(state.Snapshot(), c.player)
	select {
	case c.session.pendingCh <- d:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case resp := <-c.responseCh:
		return resp, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ChooseAction implements game.PlayerController.
func (c *MCPController) ChooseAction(ctx context.Context, state *game.GameState, actions []game.Action) (game.Action, error) {
	var views []net.ActionView
	for i, a := range actions {
		views = append(views, net.ActionView{Index: i, Desc: a.String()})
	}

	resp, err := c.ask(ctx, state, &PendingDecision{Type: DecisionChooseAction, Actions: views})
	if err != nil {
		return game.Action{}, err
	}
	ar, _ := resp.(ActionResponse)
	if ar.Index < 0 || ar.Index >= len(actions) {
		return actions[len(actions)-1], nil
	}
	return actions[ar.Index], nil
}

// ChooseCards implements game.PlayerController.
func (c *MCPController) ChooseCards(ctx context.Context, state *game.GameState, prompt string, candidates []*game.CardInstance, min, max int) ([]*game.CardInstance, error) {
	var views []net.CardView
	for i, card := range candidates {
		views = append(views, net.CardView{Index: i, Name: card.Card.Name, Types: card.Card.TypeNames(), Cost: card.Card.Cost})
	}

	resp, err := c.ask(ctx, state, &PendingDecision{
		Type:       DecisionChooseCards,
		Prompt:     prompt,
		Candidates: views,
		Min:        min,
		Max:        max,
	})
	if err != nil {
		return nil, err
	}
	cr, _ := resp.(CardsResponse)

	var result []*game.CardInstance
	for _, idx := range cr.Indices {
		if idx >= 0 && idx < len(candidates) {
			result = append(result, candidates[idx])
		}
	}
	return result, nil
}

// ChooseYesNo implements game.PlayerController.
func (c *MCPController) ChooseYesNo(ctx context.Context, state *game.GameState, prompt string) (bool, error) {
	resp, err := c.ask(ctx, state, &PendingDecision{Type: DecisionChooseYesNo, Prompt: prompt})
	if err != nil {
		return false, err
	}
	yr, _ := resp.(YesNoResponse)
	return yr.Answer, nil
}

// ChooseOption implements game.PlayerController.
func (c *MCPController) ChooseOption(ctx context.Context, state *game.GameState, prompt string, options []string) (int, error) {
	resp, err := c.ask(ctx, state, &PendingDecision{Type: DecisionChooseOption, Prompt: prompt, Options: options})
	if err != nil {
		return 0, err
	}
	or, _ := resp.(OptionResponse)
	return or.Index, nil
}

// ChooseNumber implements game.PlayerController.
func (c *MCPController) ChooseNumber(ctx context.Context, state *game.GameState, prompt string, min, max int) (int, error) {
	resp, err := c.ask(ctx, state, &PendingDecision{Type: DecisionChooseNumber, Prompt: prompt, Min: min, Max: max})
	if err != nil {
		return 0, err
	}
	nr, _ := resp.(NumberResponse)
	return nr.Value, nil
}

// Notify implements game.PlayerController. Events are collected for the
// agent's next tool response.
func (c *MCPController) Notify(ctx context.Context, event log.GameEvent) error {
	c.session.appendEvent(net.EventView{
		Round:   event.Round,
		Turn:    event.Turn,
		Phase:   event.Phase,
		Player:  event.Player,
		Type:    event.Type.String(),
		Card:    event.Card,
		Details: event.Details,
	})
	return nil
}
