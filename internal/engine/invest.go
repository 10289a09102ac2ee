package engine

import (
	"fmt"

	"colosseum/internal/catalog"
)

// Investing: each player in seat order takes at most one paid action, then
// the turn advances. The Purchased flag gates every paid action, so a
// player's single act per round is either one purchase or a pass.

func (g *Game) checkInvesting(playerID int, action Action) error {
	if err := g.requireTurn(playerID); err != nil {
		return err
	}
	p := g.Players[playerID]

	// Type legality is judged before the once-per-round flag, so an action
	// belonging to another phase reports ErrWrongPhase regardless of whether
	// this player already purchased.
	switch action.Type {
	case ActionPass:
		return nil
	case ActionBuyEvent, ActionExpandArena, ActionBuyTicket,
		ActionBuildLoge, ActionFundSpecialEvent, ActionBuyMedals:
		if p.Purchased {
			return ErrDuplicatePurchase
		}
	default:
		return fmt.Errorf("%w: %s not legal while Investing", ErrWrongPhase, action.Type)
	}

	switch action.Type {
	case ActionBuyEvent:
		ev, ok := g.Catalog.Get(action.EventID)
		if !ok {
			return fmt.Errorf("%w: unknown event %d", ErrInvalidTarget, action.EventID)
		}
		if p.OwnsEvent(ev.ID) {
			return fmt.Errorf("%w: already own event %d", ErrInvalidTarget, ev.ID)
		}
		if p.Coins < ev.Cost {
			return fmt.Errorf("%w: event costs %d, have %d coins", ErrInsufficientResource, ev.Cost, p.Coins)
		}
	case ActionExpandArena:
		if p.ArenaLevel >= g.Config.ArenaMaxLevel {
			return fmt.Errorf("%w: arena already at maximum level", ErrInvalidAction)
		}
		if cost := g.Config.ExpandCost(p.ArenaLevel); p.Coins < cost {
			return fmt.Errorf("%w: expansion costs %d, have %d coins", ErrInsufficientResource, cost, p.Coins)
		}
	case ActionBuyTicket:
		if g.AvailableTickets < 1 {
			return fmt.Errorf("%w: season ticket pool is empty", ErrInsufficientResource)
		}
		if p.Coins < g.Config.TicketCost {
			return fmt.Errorf("%w: ticket costs %d, have %d coins", ErrInsufficientResource, g.Config.TicketCost, p.Coins)
		}
	case ActionBuildLoge:
		if p.Loge {
			return fmt.Errorf("%w: loge already built", ErrInvalidAction)
		}
		if p.Coins < g.Config.LogeCost {
			return fmt.Errorf("%w: loge costs %d, have %d coins", ErrInsufficientResource, g.Config.LogeCost, p.Coins)
		}
	case ActionFundSpecialEvent:
		if p.CountAsset(catalog.AssetSpecialEvent) > 0 {
			return fmt.Errorf("%w: special event already funded", ErrInvalidAction)
		}
		if p.Coins < g.Config.SpecialEventCost {
			return fmt.Errorf("%w: special event costs %d, have %d coins", ErrInsufficientResource, g.Config.SpecialEventCost, p.Coins)
		}
	case ActionBuyMedals:
		if g.AvailableMedals < 2 {
			return fmt.Errorf("%w: medal pool has %d left, need 2", ErrInsufficientResource, g.AvailableMedals)
		}
		if p.Coins < g.Config.MedalPairCost {
			return fmt.Errorf("%w: medals cost %d, have %d coins", ErrInsufficientResource, g.Config.MedalPairCost, p.Coins)
		}
	}
	return nil
}

func (g *Game) applyInvesting(playerID int, action Action) []Event {
	p := g.Players[playerID]
	var events []Event

	switch action.Type {
	case ActionPass:
		events = append(events, Event{Type: EventTurnPassed, Player: playerID})
	case ActionBuyEvent:
		ev, _ := g.Catalog.Get(action.EventID)
		p.Coins -= ev.Cost
		p.Events = append(p.Events, ev.ID)
		p.Purchased = true
		events = append(events, Event{Type: EventEventPurchased, Player: playerID, Data: map[string]interface{}{
			"event": ev.Name, "id": ev.ID, "cost": ev.Cost,
		}})
	case ActionExpandArena:
		cost := g.Config.ExpandCost(p.ArenaLevel)
		p.Coins -= cost
		p.ArenaLevel++
		p.Purchased = true
		events = append(events, Event{Type: EventArenaExpanded, Player: playerID, Data: map[string]interface{}{
			"level": p.ArenaLevel, "cost": cost,
		}})
	case ActionBuyTicket:
		p.Coins -= g.Config.TicketCost
		p.SeasonTickets++
		g.AvailableTickets--
		p.Purchased = true
		events = append(events, Event{Type: EventTicketBought, Player: playerID, Data: map[string]interface{}{
			"cost": g.Config.TicketCost, "pool": g.AvailableTickets,
		}})
	case ActionBuildLoge:
		p.Coins -= g.Config.LogeCost
		p.Loge = true
		p.Purchased = true
		events = append(events, Event{Type: EventLogeBuilt, Player: playerID, Data: map[string]interface{}{
			"cost": g.Config.LogeCost,
		}})
	case ActionFundSpecialEvent:
		p.Coins -= g.Config.SpecialEventCost
		p.AddAssets([]catalog.Asset{catalog.AssetSpecialEvent})
		p.Purchased = true
		events = append(events, Event{Type: EventSpecialEventFunded, Player: playerID, Data: map[string]interface{}{
			"cost": g.Config.SpecialEventCost,
		}})
	case ActionBuyMedals:
		p.Coins -= g.Config.MedalPairCost
		p.Medals += 2
		g.AvailableMedals -= 2
		p.Purchased = true
		events = append(events, Event{Type: EventMedalsBought, Player: playerID, Data: map[string]interface{}{
			"cost": g.Config.MedalPairCost, "pool": g.AvailableMedals,
		}})
	}

	// One act per player: purchase or pass, either way the turn moves on.
	next := g.nextSeat(playerID)
	if next == g.Leader {
		events = append(events, g.startAcquiring()...)
	} else {
		g.Phase = investingPhase(next)
	}
	return events
}

// startAcquiring opens the auction phase on the first remaining batch, or
// skips straight to Trading when the market is out of batches.
func (g *Game) startAcquiring() []Event {
	batch, ok := g.firstOfferableBatch()
	if !ok {
		g.Phase = tradingPhase(g.Leader)
		return []Event{phaseChangeEvent(PhaseTrading)}
	}
	g.Phase = acquiringPhase(g.Leader, batch, len(g.Players))
	return []Event{phaseChangeEvent(PhaseAcquiring)}
}

// firstOfferableBatch returns the lowest market index not yet skipped this
// round.
func (g *Game) firstOfferableBatch() (int, bool) {
	for i := range g.Market {
		if !g.Skipped[i] {
			return i, true
		}
	}
	return 0, false
}
