package engine

import (
	"errors"
	"fmt"

	"colosseum/internal/catalog"
)

var (
	ErrWrongPhase           = errors.New("wrong phase for this action")
	ErrNotYourTurn          = errors.New("not your turn")
	ErrInsufficientResource = errors.New("insufficient resources")
	ErrInvalidTarget        = errors.New("invalid target")
	ErrStaleBid             = errors.New("stale auction bid")
	ErrDuplicatePurchase    = errors.New("already made a purchase this round")
	ErrAlreadyCompleted     = errors.New("event already completed")
	ErrInvalidAction        = errors.New("invalid action")
)

// Game is the sole mutable aggregate: player list, round, phase, market,
// shared pools, board and catalog reference.
type Game struct {
	Players []*Player `json:"players"`
	Round   int       `json:"round"`
	Phase   Phase     `json:"phase"`
	Market  Market    `json:"market"`
	Board   Board     `json:"board"`

	AvailableMedals  int `json:"available_medals"`
	AvailableTickets int `json:"available_tickets"`

	// Leader is the seat that opens every phase of the current round,
	// rotated at round close. "Who acts next" is always derived from seat
	// order plus the phase's cursor, never stored separately.
	Leader int `json:"leader"`

	// Skipped marks market batches every player declined to open this
	// round; they expire at round close. Aligned with Market.
	Skipped []bool `json:"-"`

	// Completions records, per event id, the players who have produced it
	// in completion order. The order decides penalty ranks.
	Completions map[int][]int `json:"completions"`

	// Scores is computed exactly once, at the transition to game over.
	Scores []ScoreEntry `json:"scores,omitempty"`

	Catalog *catalog.Catalog `json:"-"`
	Config  GameConfig       `json:"-"`
}

// NewGame sets up a game for the named players with the given market.
// The market comes pre-shuffled (BuildMarket) so the engine itself stays
// deterministic.
func NewGame(names []string, cat *catalog.Catalog, cfg GameConfig, market Market) (*Game, error) {
	sections, ok := SectionLayout(len(names))
	if !ok {
		return nil, fmt.Errorf("unsupported player count %d (want 3-5)", len(names))
	}

	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = NewPlayer(i, name, sections[i], cfg)
	}

	return &Game{
		Players:          players,
		Round:            1,
		Phase:            investingPhase(0),
		Market:           market,
		Board:            NewBoard(),
		AvailableMedals:  cfg.MedalPool,
		AvailableTickets: cfg.TicketPool,
		Skipped:          make([]bool, len(market)),
		Completions:      make(map[int][]int),
		Catalog:          cat,
		Config:           cfg,
	}, nil
}

// Apply is the single mutation surface: it validates one action against the
// current phase, applies its effects, and advances the phase machinery.
// On error the game state is untouched.
func (g *Game) Apply(playerID int, action Action) ([]Event, error) {
	if err := g.Check(playerID, action); err != nil {
		return nil, err
	}
	return g.apply(playerID, action), nil
}

// Check is the pure legality test: it never mutates and returns nil exactly
// when Apply would succeed.
func (g *Game) Check(playerID int, action Action) error {
	if playerID < 0 || playerID >= len(g.Players) {
		return fmt.Errorf("%w: unknown player %d", ErrInvalidTarget, playerID)
	}
	if g.Phase.Kind == PhaseGameOver {
		return fmt.Errorf("%w: game is over", ErrWrongPhase)
	}
	if action.Type == ActionExchangeMedalForCoins {
		return g.checkMedalForCoins(playerID)
	}

	switch g.Phase.Kind {
	case PhaseInvesting:
		return g.checkInvesting(playerID, action)
	case PhaseAcquiring:
		return g.checkAcquiring(playerID, action)
	case PhaseTrading:
		return g.checkTrading(playerID, action)
	case PhaseProducing:
		return g.checkProducing(playerID, action)
	default:
		return fmt.Errorf("%w: no player actions in %s", ErrWrongPhase, g.Phase.Kind)
	}
}

// apply assumes the action has passed Check.
func (g *Game) apply(playerID int, action Action) []Event {
	if action.Type == ActionExchangeMedalForCoins {
		return g.applyMedalForCoins(playerID)
	}

	switch g.Phase.Kind {
	case PhaseInvesting:
		return g.applyInvesting(playerID, action)
	case PhaseAcquiring:
		return g.applyAcquiring(playerID, action)
	case PhaseTrading:
		return g.applyTrading(playerID, action)
	default:
		return g.applyProducing(playerID, action)
	}
}

func (g *Game) checkMedalForCoins(playerID int) error {
	if g.Players[playerID].Medals < 1 {
		return fmt.Errorf("%w: no medals to exchange", ErrInsufficientResource)
	}
	return nil
}

func (g *Game) applyMedalForCoins(playerID int) []Event {
	p := g.Players[playerID]
	p.Medals--
	p.Coins += g.Config.MedalCoinValue
	return []Event{{Type: EventMedalExchanged, Player: playerID, Data: map[string]interface{}{
		"for": "coins", "coins": g.Config.MedalCoinValue,
	}}}
}

// requireTurn rejects actors other than the phase's active player.
func (g *Game) requireTurn(playerID int) error {
	if g.Phase.Active != playerID {
		return ErrNotYourTurn
	}
	return nil
}

func (g *Game) nextSeat(seat int) int {
	return (seat + 1) % len(g.Players)
}

// closeRound performs end-of-round bookkeeping: expired batches are removed,
// per-round flags reset, the leader rotates, and the game either reopens
// Investing or ends.
func (g *Game) closeRound() []Event {
	g.Phase = closingPhase()

	expired := 0
	kept := make(Market, 0, len(g.Market))
	for i, batch := range g.Market {
		if g.Skipped[i] {
			expired++
			continue
		}
		kept = append(kept, batch)
	}
	g.Market = kept
	g.Skipped = make([]bool, len(g.Market))

	events := []Event{{Type: EventRoundEnd, Player: -1, Data: map[string]interface{}{
		"round": g.Round, "expired_batches": expired,
	}}}

	if g.Round >= g.Config.RoundLimit || len(g.Market) == 0 {
		return append(events, g.finishGame()...)
	}

	g.Round++
	g.Leader = g.nextSeat(g.Leader)
	for _, p := range g.Players {
		p.Purchased = false
		p.MovedNoble = false
	}
	g.Phase = investingPhase(g.Leader)

	return append(events, Event{Type: EventPhaseChange, Player: -1, Data: map[string]interface{}{
		"phase": PhaseInvesting.String(), "round": g.Round,
	}})
}

func (g *Game) finishGame() []Event {
	g.Phase = gameOverPhase()
	g.Scores = g.FinalScores()
	return []Event{
		{Type: EventGameOver, Player: -1, Data: map[string]interface{}{"scores": g.Scores}},
		{Type: EventPhaseChange, Player: -1, Data: map[string]interface{}{"phase": PhaseGameOver.String()}},
	}
}

func phaseChangeEvent(kind PhaseKind) Event {
	return Event{Type: EventPhaseChange, Player: -1, Data: map[string]interface{}{
		"phase": kind.String(),
	}}
}
