package engine

import "colosseum/internal/catalog"

// Player holds one player's state. The ID is the seat index, fixed at
// setup; Name is purely cosmetic.
type Player struct {
	ID   int    `json:"id"`
	Name string `json:"name"`

	Coins         int             `json:"coins"`
	Assets        []catalog.Asset `json:"assets"` // unordered multiset
	ArenaLevel    int             `json:"arena_level"`
	Podiums       int             `json:"podiums"`
	Loge          bool            `json:"loge"`
	SeasonTickets int             `json:"season_tickets"`
	Medals        int             `json:"medals"`
	Score         int             `json:"score"`
	Events        []int           `json:"events"` // owned event ids, in purchase order

	// Arena track spaces owned by this player, fixed by the seating layout.
	Sections []int `json:"sections"`

	// Per-round flags, reset when a new round opens.
	Purchased  bool `json:"-"` // took a paid Investing action this round
	MovedNoble bool `json:"-"` // used the free noble move this round
}

func NewPlayer(id int, name string, sections []int, cfg GameConfig) *Player {
	return &Player{
		ID:       id,
		Name:     name,
		Coins:    cfg.StartingCoins,
		Sections: sections,
	}
}

// CountAsset returns how many of the given kind the player holds.
func (p *Player) CountAsset(a catalog.Asset) int {
	n := 0
	for _, have := range p.Assets {
		if have == a {
			n++
		}
	}
	return n
}

// HasAssets reports whether the player's holdings cover the given multiset
// exactly, with no wildcard substitution. Used for trade offers.
func (p *Player) HasAssets(want []catalog.Asset) bool {
	for a, n := range countAssets(want) {
		if p.CountAsset(a) < n {
			return false
		}
	}
	return true
}

// CoversRequirements reports whether the player's holdings cover the given
// requirement multiset, with Jokers filling any missing slot.
func (p *Player) CoversRequirements(reqs []catalog.Asset) bool {
	jokers := p.CountAsset(catalog.AssetJoker)
	for a, n := range countAssets(reqs) {
		if a == catalog.AssetJoker {
			// A literal Joker requirement consumes a Joker.
			continue
		}
		if deficit := n - p.CountAsset(a); deficit > 0 {
			jokers -= deficit
		}
	}
	jokers -= countAssets(reqs)[catalog.AssetJoker]
	return jokers >= 0
}

// ConsumeRequirements removes the requirement multiset from the player's
// holdings, spending Jokers for any missing slot. Callers must have
// verified CoversRequirements first.
func (p *Player) ConsumeRequirements(reqs []catalog.Asset) {
	for a, n := range countAssets(reqs) {
		if a == catalog.AssetJoker {
			p.removeAssets(catalog.AssetJoker, n)
			continue
		}
		have := p.CountAsset(a)
		if have >= n {
			p.removeAssets(a, n)
			continue
		}
		p.removeAssets(a, have)
		p.removeAssets(catalog.AssetJoker, n-have)
	}
}

// RemoveAssets removes the given multiset from the player's holdings with
// no substitution. Callers must have verified HasAssets first.
func (p *Player) RemoveAssets(assets []catalog.Asset) {
	for a, n := range countAssets(assets) {
		p.removeAssets(a, n)
	}
}

// AddAssets appends assets to the player's holdings.
func (p *Player) AddAssets(assets []catalog.Asset) {
	p.Assets = append(p.Assets, assets...)
}

// OwnsEvent reports whether the player has purchased the given event.
func (p *Player) OwnsEvent(id int) bool {
	for _, owned := range p.Events {
		if owned == id {
			return true
		}
	}
	return false
}

func (p *Player) removeAssets(a catalog.Asset, n int) {
	for i := 0; i < len(p.Assets) && n > 0; {
		if p.Assets[i] == a {
			p.Assets = append(p.Assets[:i], p.Assets[i+1:]...)
			n--
			continue
		}
		i++
	}
}

func countAssets(assets []catalog.Asset) map[catalog.Asset]int {
	counts := make(map[catalog.Asset]int)
	for _, a := range assets {
		counts[a]++
	}
	return counts
}
