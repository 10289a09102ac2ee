package engine

import "fmt"

// Trading: the active player may propose one trade at a time; the named
// target answers out of turn with accept_trade or reject_trade. Acceptance
// swaps both bundles atomically or not at all. PassTrading withdraws any
// pending proposal and hands the turn on; after the last seat passes the
// phase moves to Producing.

func (g *Game) checkTrading(playerID int, action Action) error {
	pending := g.Phase.Pending

	switch action.Type {
	case ActionProposeTrade:
		if err := g.requireTurn(playerID); err != nil {
			return err
		}
		if pending != nil {
			return fmt.Errorf("%w: a trade is already pending", ErrInvalidAction)
		}
		if action.Target == playerID {
			return fmt.Errorf("%w: cannot trade with yourself", ErrInvalidTarget)
		}
		if action.Target < 0 || action.Target >= len(g.Players) {
			return fmt.Errorf("%w: unknown player %d", ErrInvalidTarget, action.Target)
		}
		if len(action.OfferAssets) == 0 && action.OfferCoins == 0 &&
			len(action.WantAssets) == 0 && action.WantCoins == 0 {
			return fmt.Errorf("%w: empty trade", ErrInvalidAction)
		}
		if action.OfferCoins < 0 || action.WantCoins < 0 {
			return fmt.Errorf("%w: negative coin amount", ErrInvalidAction)
		}

	case ActionAcceptTrade:
		if pending == nil {
			return fmt.Errorf("%w: no trade pending", ErrInvalidAction)
		}
		if playerID != pending.Target {
			return fmt.Errorf("%w: trade is addressed to player %d", ErrNotYourTurn, pending.Target)
		}
		proposer := g.Players[pending.Proposer]
		target := g.Players[pending.Target]
		if !proposer.HasAssets(pending.OfferAssets) || proposer.Coins < pending.OfferCoins {
			return fmt.Errorf("%w: proposer no longer covers the offer", ErrInsufficientResource)
		}
		if !target.HasAssets(pending.WantAssets) || target.Coins < pending.WantCoins {
			return fmt.Errorf("%w: you do not cover the requested bundle", ErrInsufficientResource)
		}

	case ActionRejectTrade:
		if pending == nil {
			return fmt.Errorf("%w: no trade pending", ErrInvalidAction)
		}
		if playerID != pending.Target {
			return fmt.Errorf("%w: trade is addressed to player %d", ErrNotYourTurn, pending.Target)
		}

	case ActionPassTrading:
		if err := g.requireTurn(playerID); err != nil {
			return err
		}

	default:
		return fmt.Errorf("%w: %s not legal while Trading", ErrWrongPhase, action.Type)
	}
	return nil
}

func (g *Game) applyTrading(playerID int, action Action) []Event {
	switch action.Type {
	case ActionProposeTrade:
		g.Phase.Pending = &PendingTrade{
			Proposer:    playerID,
			Target:      action.Target,
			OfferAssets: append(Batch(nil), action.OfferAssets...),
			OfferCoins:  action.OfferCoins,
			WantAssets:  append(Batch(nil), action.WantAssets...),
			WantCoins:   action.WantCoins,
		}
		return []Event{{Type: EventTradeProposed, Player: playerID, Data: map[string]interface{}{
			"target": action.Target,
		}}}

	case ActionAcceptTrade:
		pending := g.Phase.Pending
		proposer := g.Players[pending.Proposer]
		target := g.Players[pending.Target]

		proposer.RemoveAssets(pending.OfferAssets)
		proposer.Coins -= pending.OfferCoins
		target.AddAssets(pending.OfferAssets)
		target.Coins += pending.OfferCoins

		target.RemoveAssets(pending.WantAssets)
		target.Coins -= pending.WantCoins
		proposer.AddAssets(pending.WantAssets)
		proposer.Coins += pending.WantCoins

		g.Phase.Pending = nil
		return []Event{{Type: EventTradeAccepted, Player: playerID, Data: map[string]interface{}{
			"proposer": pending.Proposer, "target": pending.Target,
		}}}

	case ActionRejectTrade:
		g.Phase.Pending = nil
		return []Event{{Type: EventTradeRejected, Player: playerID}}

	default: // ActionPassTrading
		var events []Event
		if g.Phase.Pending != nil {
			g.Phase.Pending = nil
			events = append(events, Event{Type: EventTradeWithdrawn, Player: playerID})
		}
		events = append(events, Event{Type: EventTurnPassed, Player: playerID})

		next := g.nextSeat(playerID)
		if next == g.Leader {
			g.Phase = producingPhase(g.Leader)
			return append(events, phaseChangeEvent(PhaseProducing))
		}
		g.Phase.Active = next
		return events
	}
}
