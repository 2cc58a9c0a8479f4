package game

import (
	"context"

	"github.com/peterkuimelis/colossus/internal/log"
)

// AutoController answers every prompt deterministically: it calls heads,
// plays the first affordable card, then ends the turn. Duels fall back to
// it for seats without a controller, and the simulator pits two against
// each other.
type AutoController struct{}

func (AutoController) ChooseAction(ctx context.Context, state *GameState, actions []Action) (Action, error) {
	for _, a := range actions {
		if a.Type == ActionCallCoin || a.Type == ActionPlayCard {
			return a, nil
		}
	}
	return actions[len(actions)-1], nil
}

func (AutoController) ChooseCards(ctx context.Context, state *GameState, prompt string, candidates []*CardInstance, min, max int) ([]*CardInstance, error) {
	n := min
	if n == 0 && max > 0 {
		n = 1
	}
	if n > len(candidates) {
		n = len(candidates)
	}
	return candidates[:n], nil
}

func (AutoController) ChooseYesNo(ctx context.Context, state *GameState, prompt string) (bool, error) {
	return true, nil
}

func (AutoController) ChooseOption(ctx context.Context, state *GameState, prompt string, options []string) (int, error) {
	return 0, nil
}

func (AutoController) ChooseNumber(ctx context.Context, state *GameState, prompt string, min, max int) (int, error) {
	return max, nil
}

func (AutoController) Notify(ctx context.Context, event log.GameEvent) error {
	return nil
}
