package engine

// GameConfig holds every tunable constant of a game.
type GameConfig struct {
	StartingCoins    int // per player at setup
	RoundLimit       int // game ends after this many rounds
	MedalPool        int // shared medal supply, never replenished
	TicketPool       int // shared season ticket supply, never replenished
	BatchSize        int // assets per market batch
	BatchesPerPlayer int // market size = players * this
	MinOpeningBid    int

	ArenaMaxLevel    int
	ArenaBaseCost    int // expanding from level 0
	ArenaCostStep    int // added per current level
	TicketCost       int
	LogeCost         int
	SpecialEventCost int
	MedalPairCost    int // buys two medals from the pool

	// Medal exchange rates during play.
	MedalCoinValue  int
	MedalPointValue int

	// Final scoring conversions, applied once at game over.
	CoinsPerPoint        int
	MedalFinalValue      int
	PodiumFinalValue     int
	TicketFinalValue     int
	LogeFinalValue       int
	ArenaLevelFinalValue int
}

func DefaultConfig() GameConfig {
	return GameConfig{
		StartingCoins:    30,
		RoundLimit:       5,
		MedalPool:        18,
		TicketPool:       10,
		BatchSize:        3,
		BatchesPerPlayer: 3,
		MinOpeningBid:    1,

		ArenaMaxLevel:    5,
		ArenaBaseCost:    4,
		ArenaCostStep:    2,
		TicketCost:       4,
		LogeCost:         7,
		SpecialEventCost: 10,
		MedalPairCost:    6,

		MedalCoinValue:  3,
		MedalPointValue: 2,

		CoinsPerPoint:        5,
		MedalFinalValue:      2,
		PodiumFinalValue:     2,
		TicketFinalValue:     1,
		LogeFinalValue:       3,
		ArenaLevelFinalValue: 2,
	}
}

// ExpandCost returns the coin cost of expanding the arena from the given level.
func (c GameConfig) ExpandCost(level int) int {
	return c.ArenaBaseCost + c.ArenaCostStep*level
}
