package game

import (
	"fmt"
)

// controller returns the controller for player, falling back to the
// deterministic AutoController.
func (d *Duel) controller(player int) PlayerController {
	if c := d.Controllers[player]; c != nil {
		return c
	}
	return AutoController{}
}

// chooseCards asks player to pick between min and max of candidates. An
// invalid or failed answer falls back to the first min candidates.
func (d *Duel) chooseCards(player int, prompt string, candidates []*CardInstance, min, max int) []*CardInstance {
	if len(candidates) == 0 {
		return nil
	}
	if max > len(candidates) {
		max = len(candidates)
	}
	if min > max {
		min = max
	}
	picked, err := d.controller(player).ChooseCards(d.ctx, d.State, prompt, candidates, min, max)
	if err != nil || len(picked) < min || len(picked) > max || !subsetOf(picked, candidates) {
		return candidates[:min]
	}
	return picked
}

// chooseCard asks player for exactly one of candidates, or nil if there are none.
func (d *Duel) chooseCard(player int, prompt string, candidates []*CardInstance) *CardInstance {
	picked := d.chooseCards(player, prompt, candidates, 1, 1)
	if len(picked) == 0 {
		return nil
	}
	return picked[0]
}

func (d *Duel) askYesNo(player int, prompt string) bool {
	yes, err := d.controller(player).ChooseYesNo(d.ctx, d.State, prompt)
	if err != nil {
		return false
	}
	return yes
}

func (d *Duel) chooseOption(player int, prompt string, options []string) int {
	i, err := d.controller(player).ChooseOption(d.ctx, d.State, prompt, options)
	if err != nil || i < 0 || i >= len(options) {
		return 0
	}
	return i
}

func (d *Duel) chooseNumber(player int, prompt string, min, max int) int {
	if max < min {
		return min
	}
	n, err := d.controller(player).ChooseNumber(d.ctx, d.State, prompt, min, max)
	if err != nil || n < min || n > max {
		return max
	}
	return n
}

func subsetOf(picked, candidates []*CardInstance) bool {
	seen := make(map[*CardInstance]bool, len(picked))
	for _, p := range picked {
		if seen[p] {
			return false
		}
		seen[p] = true
		found := false
		for _, c := range candidates {
			if c == p {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// promptf is a short helper for choice prompts.
func promptf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
