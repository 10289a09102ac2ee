// Package sim plays whole games with a fixed policy. It exists to exercise
// the engine end to end and to demonstrate that identical seeds replay to
// identical final scores.
package sim

import (
	"fmt"
	"math/rand/v2"

	"colosseum/internal/catalog"
	"colosseum/internal/engine"
)

// stepLimit bounds a run; a well-formed game ends in far fewer actions.
const stepLimit = 2000

// Runner drives one game to completion.
type Runner struct {
	game *engine.Game
	rng  *rand.Rand
	log  []engine.Event
}

// New builds a seeded game for the given player names. The same seed yields
// the same market and the same die rolls.
func New(names []string, seed uint64) (*Runner, error) {
	cat, err := catalog.Default()
	if err != nil {
		return nil, err
	}
	cfg := engine.DefaultConfig()
	rng := rand.New(rand.NewPCG(seed, seed))
	market := engine.BuildMarket(len(names), cfg, rng)
	g, err := engine.NewGame(names, cat, cfg, market)
	if err != nil {
		return nil, err
	}
	return &Runner{game: g, rng: rng}, nil
}

// Game exposes the underlying game, mainly for inspection after a run.
func (r *Runner) Game() *engine.Game {
	return r.game
}

// Events returns everything the engine emitted during the run.
func (r *Runner) Events() []engine.Event {
	return r.log
}

// Run plays the policy until game over and returns the final scores.
func (r *Runner) Run() ([]engine.ScoreEntry, error) {
	for steps := 0; r.game.Phase.Kind != engine.PhaseGameOver; steps++ {
		if steps >= stepLimit {
			return nil, fmt.Errorf("game did not finish within %d actions (phase %s, round %d)",
				stepLimit, r.game.Phase.Kind, r.game.Round)
		}
		actor := r.game.Phase.Active
		events, err := r.game.Apply(actor, r.policy(actor))
		if err != nil {
			return nil, fmt.Errorf("policy produced illegal action in %s: %w", r.game.Phase.Kind, err)
		}
		r.log = append(r.log, events...)
	}
	return r.game.Scores, nil
}

// policy picks the active player's next action. It is intentionally plain:
// buy what is affordable, bid low, never trade, complete what it can.
func (r *Runner) policy(actor int) engine.Action {
	g := r.game
	p := g.Players[actor]

	switch g.Phase.Kind {
	case engine.PhaseInvesting:
		if !p.Purchased {
			if ev, ok := r.cheapestUnownedEvent(p); ok && p.Coins >= ev.Cost+10 {
				return engine.Action{Type: engine.ActionBuyEvent, EventID: ev.ID}
			}
			if p.ArenaLevel < g.Config.ArenaMaxLevel &&
				p.Coins >= g.Config.ExpandCost(p.ArenaLevel)+15 {
				return engine.Action{Type: engine.ActionExpandArena}
			}
		}
		return engine.Action{Type: engine.ActionPass}

	case engine.PhaseAcquiring:
		if g.Phase.Bidder < 0 {
			if p.Coins >= 15 {
				return engine.Action{
					Type:   engine.ActionStartBid,
					Batch:  g.Phase.Batch,
					Amount: g.Config.MinOpeningBid,
				}
			}
			return engine.Action{Type: engine.ActionPassAcquiring}
		}
		if g.Phase.Bid < 4 && p.Coins >= g.Phase.Bid+11 {
			return engine.Action{Type: engine.ActionBid, Amount: g.Phase.Bid + 1}
		}
		return engine.Action{Type: engine.ActionPassBid}

	case engine.PhaseTrading:
		return engine.Action{Type: engine.ActionPassTrading}

	case engine.PhaseProducing:
		for _, id := range p.Events {
			ev, ok := g.Catalog.Get(id)
			if !ok || !p.CoversRequirements(ev.Requirements) {
				continue
			}
			if r.alreadyProduced(id, actor) {
				continue
			}
			return engine.Action{Type: engine.ActionProduceEvent, EventID: id}
		}
		if !p.MovedNoble && len(g.Board.Nobles) > 0 {
			return engine.Action{
				Type:  engine.ActionMoveNoble,
				Noble: actor % len(g.Board.Nobles),
				Roll:  r.rng.IntN(6) + 1,
			}
		}
		return engine.Action{Type: engine.ActionPassProducing}
	}
	return engine.Action{Type: engine.ActionPass}
}

func (r *Runner) cheapestUnownedEvent(p *engine.Player) (catalog.Event, bool) {
	var best catalog.Event
	found := false
	for _, ev := range r.game.Catalog.Events() {
		if p.OwnsEvent(ev.ID) {
			continue
		}
		if !found || ev.Cost < best.Cost {
			best = ev
			found = true
		}
	}
	return best, found
}

func (r *Runner) alreadyProduced(eventID, playerID int) bool {
	for _, id := range r.game.Completions[eventID] {
		if id == playerID {
			return true
		}
	}
	return false
}
