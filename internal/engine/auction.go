package engine

import "fmt"

// Acquiring: batches are offered in market order. The seat holding the
// opening right may open an auction with StartBid or decline with
// PassAcquiring; once open, the turn rotates among players still in
// contention, who must raise or PassBid. The high bidder is committed and
// never acts: when nobody else is left in contention the batch is awarded.

func (g *Game) checkAcquiring(playerID int, action Action) error {
	if err := g.requireTurn(playerID); err != nil {
		return err
	}
	p := g.Players[playerID]
	open := g.Phase.Bidder >= 0

	switch action.Type {
	case ActionStartBid:
		if open {
			return fmt.Errorf("%w: auction already open at %d", ErrStaleBid, g.Phase.Bid)
		}
		if action.Batch != g.Phase.Batch {
			return fmt.Errorf("%w: batch %d is not on offer", ErrInvalidTarget, action.Batch)
		}
		if action.Amount < g.Config.MinOpeningBid {
			return fmt.Errorf("%w: opening bid must be at least %d", ErrInvalidAction, g.Config.MinOpeningBid)
		}
		if p.Coins < action.Amount {
			return fmt.Errorf("%w: bid %d exceeds %d coins", ErrInsufficientResource, action.Amount, p.Coins)
		}
	case ActionBid:
		if !open {
			return fmt.Errorf("%w: no auction open on this batch", ErrStaleBid)
		}
		if playerID == g.Phase.Bidder {
			return fmt.Errorf("%w: cannot raise your own bid", ErrInvalidAction)
		}
		if action.Amount <= g.Phase.Bid {
			return fmt.Errorf("%w: bid %d does not beat %d", ErrStaleBid, action.Amount, g.Phase.Bid)
		}
		if p.Coins < action.Amount {
			return fmt.Errorf("%w: bid %d exceeds %d coins", ErrInsufficientResource, action.Amount, p.Coins)
		}
	case ActionPassBid:
		if !open {
			return fmt.Errorf("%w: no auction open, use %s to decline the batch", ErrInvalidAction, ActionPassAcquiring)
		}
		if playerID == g.Phase.Bidder {
			return fmt.Errorf("%w: the high bidder is committed", ErrInvalidAction)
		}
	case ActionPassAcquiring:
		if open {
			return fmt.Errorf("%w: an auction is open, bid or pass_bid", ErrInvalidAction)
		}
	default:
		return fmt.Errorf("%w: %s not legal while Acquiring", ErrWrongPhase, action.Type)
	}
	return nil
}

func (g *Game) applyAcquiring(playerID int, action Action) []Event {
	switch action.Type {
	case ActionStartBid:
		g.Phase.Bidder = playerID
		g.Phase.Bid = action.Amount
		// Declining to open is not declining to bid: once the auction is
		// open everyone is back in contention.
		g.Phase.Passed = make([]bool, len(g.Players))
		events := []Event{{Type: EventAuctionOpened, Player: playerID, Data: map[string]interface{}{
			"batch": g.Phase.Batch, "bid": action.Amount,
		}}}
		return append(events, g.rotateBidTurn(playerID)...)

	case ActionBid:
		g.Phase.Bidder = playerID
		g.Phase.Bid = action.Amount
		events := []Event{{Type: EventBidRaised, Player: playerID, Data: map[string]interface{}{
			"bid": action.Amount,
		}}}
		return append(events, g.rotateBidTurn(playerID)...)

	case ActionPassBid:
		g.Phase.Passed[playerID] = true
		events := []Event{{Type: EventBidPassed, Player: playerID}}
		return append(events, g.rotateBidTurn(playerID)...)

	default: // ActionPassAcquiring
		g.Phase.Passed[playerID] = true
		events := []Event{{Type: EventTurnPassed, Player: playerID}}

		if next := g.nextContender(playerID); next >= 0 {
			g.Phase.Active = next
			return events
		}
		// Every player declined to open: the batch is skipped for the
		// round and expires at round close.
		g.Skipped[g.Phase.Batch] = true
		events = append(events, Event{Type: EventBatchSkipped, Player: -1, Data: map[string]interface{}{
			"batch": g.Phase.Batch,
		}})
		return append(events, g.offerNextBatch()...)
	}
}

// rotateBidTurn hands the turn to the next player still in contention, or
// awards the batch when only the high bidder remains.
func (g *Game) rotateBidTurn(from int) []Event {
	if next := g.nextContender(from); next >= 0 {
		g.Phase.Active = next
		return nil
	}
	return g.awardBatch()
}

// nextContender scans seat order after from for a player who has neither
// passed on this batch nor holds the high bid. Returns -1 when none remain.
func (g *Game) nextContender(from int) int {
	for i := 1; i <= len(g.Players); i++ {
		seat := (from + i) % len(g.Players)
		if g.Phase.Passed[seat] || seat == g.Phase.Bidder {
			continue
		}
		return seat
	}
	return -1
}

// awardBatch transfers the batch to the high bidder at the standing bid and
// moves the opening right to the next seat.
func (g *Game) awardBatch() []Event {
	winner := g.Players[g.Phase.Bidder]
	idx := g.Phase.Batch
	batch := g.Market[idx]

	winner.Coins -= g.Phase.Bid
	winner.AddAssets(batch)
	g.Market = append(g.Market[:idx], g.Market[idx+1:]...)
	g.Skipped = append(g.Skipped[:idx], g.Skipped[idx+1:]...)

	events := []Event{{Type: EventBatchAwarded, Player: winner.ID, Data: map[string]interface{}{
		"batch": idx, "cost": g.Phase.Bid, "assets": batch,
	}}}
	return append(events, g.offerNextBatch()...)
}

// offerNextBatch puts the next unskipped batch up for auction, or ends the
// phase when none remain.
func (g *Game) offerNextBatch() []Event {
	opener := g.nextSeat(g.Phase.Opener)
	batch, ok := g.firstOfferableBatch()
	if !ok {
		g.Phase = tradingPhase(g.Leader)
		return []Event{phaseChangeEvent(PhaseTrading)}
	}
	g.Phase = acquiringPhase(opener, batch, len(g.Players))
	return nil
}
