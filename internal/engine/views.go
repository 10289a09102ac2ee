package engine

import "colosseum/internal/catalog"

// PublicView is the read-only render snapshot of the shared game state.
type PublicView struct {
	Round            int                `json:"round"`
	Phase            string             `json:"phase"`
	ActivePlayer     int                `json:"active_player"`
	Players          []PublicPlayerView `json:"players"`
	Market           []BatchView        `json:"market"`
	Nobles           []Noble            `json:"nobles"`
	RestingPlaces    []int              `json:"resting_places"`
	AvailableMedals  int                `json:"available_medals"`
	AvailableTickets int                `json:"available_tickets"`

	// Auction sub-state, present while Acquiring.
	CurrentBatch  int `json:"current_batch,omitempty"`
	CurrentBid    int `json:"current_bid,omitempty"`
	CurrentBidder int `json:"current_bidder"`

	// Trade sub-state, present while Trading.
	PendingTrade *PendingTrade `json:"pending_trade,omitempty"`

	Scores []ScoreEntry `json:"scores,omitempty"`
}

// PublicPlayerView is one player's summary as everyone may see it.
type PublicPlayerView struct {
	ID            int         `json:"id"`
	Name          string      `json:"name"`
	Coins         int         `json:"coins"`
	Assets        []string    `json:"assets"`
	ArenaLevel    int         `json:"arena_level"`
	Podiums       int         `json:"podiums"`
	Loge          bool        `json:"loge"`
	SeasonTickets int         `json:"season_tickets"`
	Medals        int         `json:"medals"`
	Score         int         `json:"score"`
	Events        []EventView `json:"events"`
}

// EventView pairs an owned event with its completion state.
type EventView struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// BatchView is a market batch rendered as asset names.
type BatchView struct {
	Index  int      `json:"index"`
	Assets []string `json:"assets"`
}

// PublicView builds the render snapshot. It has no mutation side effects.
func (g *Game) PublicView() PublicView {
	pv := PublicView{
		Round:            g.Round,
		Phase:            g.Phase.Kind.String(),
		ActivePlayer:     g.Phase.Active,
		Nobles:           append([]Noble(nil), g.Board.Nobles...),
		RestingPlaces:    append([]int(nil), g.Board.RestingPlaces...),
		AvailableMedals:  g.AvailableMedals,
		AvailableTickets: g.AvailableTickets,
		CurrentBidder:    -1,
		Scores:           g.Scores,
	}

	for _, p := range g.Players {
		pv.Players = append(pv.Players, g.playerView(p))
	}
	for i, batch := range g.Market {
		pv.Market = append(pv.Market, BatchView{Index: i, Assets: assetNames(batch)})
	}

	switch g.Phase.Kind {
	case PhaseAcquiring:
		pv.CurrentBatch = g.Phase.Batch
		pv.CurrentBid = g.Phase.Bid
		pv.CurrentBidder = g.Phase.Bidder
	case PhaseTrading:
		pv.PendingTrade = g.Phase.Pending
	}
	return pv
}

// ViewFor returns the summary for a single player, or a zero view for an
// unknown id.
func (g *Game) ViewFor(playerID int) PublicPlayerView {
	if playerID < 0 || playerID >= len(g.Players) {
		return PublicPlayerView{ID: -1}
	}
	return g.playerView(g.Players[playerID])
}

func (g *Game) playerView(p *Player) PublicPlayerView {
	v := PublicPlayerView{
		ID:            p.ID,
		Name:          p.Name,
		Coins:         p.Coins,
		Assets:        assetNames(p.Assets),
		ArenaLevel:    p.ArenaLevel,
		Podiums:       p.Podiums,
		Loge:          p.Loge,
		SeasonTickets: p.SeasonTickets,
		Medals:        p.Medals,
		Score:         p.Score,
	}
	for _, id := range p.Events {
		name := ""
		if ev, ok := g.Catalog.Get(id); ok {
			name = ev.Name
		}
		v.Events = append(v.Events, EventView{
			ID:        id,
			Name:      name,
			Completed: g.completedBy(id, p.ID),
		})
	}
	return v
}

func assetNames(assets []catalog.Asset) []string {
	names := make([]string, len(assets))
	for i, a := range assets {
		names[i] = a.String()
	}
	return names
}
