package engine

import "colosseum/internal/catalog"

// Clone returns a deep copy of the game state. The catalog and config are
// shared: both are immutable after setup.
func (g *Game) Clone() *Game {
	c := *g

	c.Players = make([]*Player, len(g.Players))
	for i, p := range g.Players {
		cp := *p
		cp.Assets = append([]catalog.Asset(nil), p.Assets...)
		cp.Events = append([]int(nil), p.Events...)
		cp.Sections = append([]int(nil), p.Sections...)
		c.Players[i] = &cp
	}

	c.Market = make(Market, len(g.Market))
	for i, b := range g.Market {
		c.Market[i] = append(Batch(nil), b...)
	}
	c.Skipped = append([]bool(nil), g.Skipped...)

	c.Board.RestingPlaces = append([]int(nil), g.Board.RestingPlaces...)
	c.Board.Nobles = append([]Noble(nil), g.Board.Nobles...)

	c.Completions = make(map[int][]int, len(g.Completions))
	for id, players := range g.Completions {
		c.Completions[id] = append([]int(nil), players...)
	}

	c.Phase.Passed = append([]bool(nil), g.Phase.Passed...)
	if g.Phase.Pending != nil {
		pending := *g.Phase.Pending
		pending.OfferAssets = append(Batch(nil), g.Phase.Pending.OfferAssets...)
		pending.WantAssets = append(Batch(nil), g.Phase.Pending.WantAssets...)
		c.Phase.Pending = &pending
	}

	c.Scores = append([]ScoreEntry(nil), g.Scores...)
	return &c
}
