package engine

import "fmt"

// Producing: the active player may move a noble (free once per round, again
// by spending medals), cash medals in for points, and stage any owned events
// whose requirements their assets cover. Passing hands the cursor on; after
// the last seat the round closes.

func (g *Game) checkProducing(playerID int, action Action) error {
	if err := g.requireTurn(playerID); err != nil {
		return err
	}
	p := g.Players[playerID]

	switch action.Type {
	case ActionMoveNoble:
		if p.MovedNoble {
			return fmt.Errorf("%w: free noble move already used this round", ErrInvalidAction)
		}
		return g.checkNobleMove(action)
	case ActionExchangeMedalForMove:
		if p.Medals < 1 {
			return fmt.Errorf("%w: no medals to spend", ErrInsufficientResource)
		}
		return g.checkNobleMove(action)
	case ActionExchangeMedalForPoints:
		if p.Medals < 1 {
			return fmt.Errorf("%w: no medals to spend", ErrInsufficientResource)
		}
	case ActionProduceEvent:
		ev, ok := g.Catalog.Get(action.EventID)
		if !ok {
			return fmt.Errorf("%w: unknown event %d", ErrInvalidTarget, action.EventID)
		}
		if !p.OwnsEvent(ev.ID) {
			return fmt.Errorf("%w: event %d is not owned", ErrInvalidTarget, ev.ID)
		}
		if g.completedBy(ev.ID, playerID) {
			return fmt.Errorf("%w: event %d", ErrAlreadyCompleted, ev.ID)
		}
		if !p.CoversRequirements(ev.Requirements) {
			return fmt.Errorf("%w: missing assets for %s", ErrInsufficientResource, ev.Name)
		}
	case ActionPassProducing:
		return nil
	default:
		return fmt.Errorf("%w: %s not legal while Producing", ErrWrongPhase, action.Type)
	}
	return nil
}

func (g *Game) checkNobleMove(action Action) error {
	if action.Noble < 0 || action.Noble >= len(g.Board.Nobles) {
		return fmt.Errorf("%w: unknown noble %d", ErrInvalidTarget, action.Noble)
	}
	if action.Roll < 1 || action.Roll > 6 {
		return fmt.Errorf("%w: roll %d out of range", ErrInvalidAction, action.Roll)
	}
	return nil
}

func (g *Game) applyProducing(playerID int, action Action) []Event {
	p := g.Players[playerID]

	switch action.Type {
	case ActionMoveNoble:
		p.MovedNoble = true
		return g.moveNoble(playerID, action)

	case ActionExchangeMedalForMove:
		p.Medals--
		events := []Event{{Type: EventMedalExchanged, Player: playerID, Data: map[string]interface{}{
			"for": "move",
		}}}
		return append(events, g.moveNoble(playerID, action)...)

	case ActionExchangeMedalForPoints:
		p.Medals--
		p.Score += g.Config.MedalPointValue
		return []Event{{Type: EventMedalExchanged, Player: playerID, Data: map[string]interface{}{
			"for": "points", "points": g.Config.MedalPointValue,
		}}}

	case ActionProduceEvent:
		ev, _ := g.Catalog.Get(action.EventID)
		rank := len(g.Completions[ev.ID])
		penalty := 0
		if rank > 0 && len(ev.Penalties) > 0 {
			penalty = ev.Penalties[min(rank-1, len(ev.Penalties)-1)]
		}
		award := ev.BaseScore - penalty
		if award < 0 {
			award = 0
		}
		p.ConsumeRequirements(ev.Requirements)
		p.Score += award
		g.Completions[ev.ID] = append(g.Completions[ev.ID], playerID)
		return []Event{{Type: EventEventProduced, Player: playerID, Data: map[string]interface{}{
			"event": ev.Name, "id": ev.ID, "rank": rank, "score": award, "penalty": penalty,
		}}}

	default: // ActionPassProducing
		events := []Event{{Type: EventTurnPassed, Player: playerID}}
		next := g.nextSeat(playerID)
		if next == g.Leader {
			return append(events, g.closeRound()...)
		}
		g.Phase.Active = next
		return events
	}
}

// moveNoble advances a noble and, when it settles on a resting place, awards
// a podium and the noble's tier points. The bonus goes to the player whose
// arena section is nearest clockwise from the resting place; ties break to
// the lower seat.
func (g *Game) moveNoble(playerID int, action Action) []Event {
	g.Board.Move(action.Noble, action.Roll)
	noble := g.Board.Nobles[action.Noble]

	events := []Event{{Type: EventNobleMoved, Player: playerID, Data: map[string]interface{}{
		"noble": noble.Type.String(), "roll": action.Roll, "position": noble.Position,
	}}}

	if !g.Board.IsRestingPlace(noble.Position) {
		return events
	}

	beneficiary := g.nearestSectionOwner(noble.Position)
	b := g.Players[beneficiary]
	b.Podiums++
	b.Score += noble.Type.Points()
	return append(events, Event{Type: EventNobleRested, Player: beneficiary, Data: map[string]interface{}{
		"noble": noble.Type.String(), "position": noble.Position, "points": noble.Type.Points(),
	}})
}

// nearestSectionOwner returns the player whose arena section is the
// smallest clockwise distance ahead of the given track position.
func (g *Game) nearestSectionOwner(position int) int {
	best, bestDist := 0, BoardSize+1
	for _, p := range g.Players {
		for _, s := range p.Sections {
			dist := (s - position + BoardSize) % BoardSize
			if dist < bestDist {
				best, bestDist = p.ID, dist
			}
		}
	}
	return best
}

// completedBy reports whether the player has already produced the event.
func (g *Game) completedBy(eventID, playerID int) bool {
	for _, id := range g.Completions[eventID] {
		if id == playerID {
			return true
		}
	}
	return false
}
