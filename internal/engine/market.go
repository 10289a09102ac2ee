package engine

import (
	"math/rand/v2"

	"colosseum/internal/catalog"
)

// Batch is a bundle of assets sold as one unit at auction.
type Batch []catalog.Asset

// Market is the ordered sequence of batches still up for auction. Batches
// are consumed as they are won and never replenished mid-game.
type Market []Batch

// assetPool returns the full supply of marketable assets in a game.
func assetPool() []catalog.Asset {
	counts := []struct {
		asset catalog.Asset
		n     int
	}{
		{catalog.AssetGladiator, 10},
		{catalog.AssetComedian, 8},
		{catalog.AssetMusician, 8},
		{catalog.AssetHorse, 8},
		{catalog.AssetTorch, 10},
		{catalog.AssetPriest, 8},
		{catalog.AssetShip, 6},
		{catalog.AssetLion, 6},
		{catalog.AssetScenery, 8},
		{catalog.AssetDecoration, 8},
		{catalog.AssetChariot, 6},
		{catalog.AssetCage, 6},
		{catalog.AssetJoker, 4},
		{catalog.AssetEmperor, 2},
	}
	var pool []catalog.Asset
	for _, c := range counts {
		for i := 0; i < c.n; i++ {
			pool = append(pool, c.asset)
		}
	}
	return pool
}

// BuildMarket shuffles the asset pool with the caller's entropy source and
// deals it into batches. The engine never seeds randomness itself: the same
// rng state always yields the same market.
func BuildMarket(numPlayers int, cfg GameConfig, rng *rand.Rand) Market {
	pool := assetPool()
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	numBatches := numPlayers * cfg.BatchesPerPlayer
	market := make(Market, 0, numBatches)
	for i := 0; i < numBatches && len(pool) >= cfg.BatchSize; i++ {
		batch := make(Batch, cfg.BatchSize)
		copy(batch, pool[:cfg.BatchSize])
		pool = pool[cfg.BatchSize:]
		market = append(market, batch)
	}
	return market
}
