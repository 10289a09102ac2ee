package engine_test

import (
	"errors"
	"reflect"
	"testing"

	"colosseum/internal/catalog"
	"colosseum/internal/engine"
)

func testMarket() engine.Market {
	return engine.Market{
		{catalog.AssetGladiator, catalog.AssetLion, catalog.AssetCage},
		{catalog.AssetTorch, catalog.AssetTorch, catalog.AssetMusician},
		{catalog.AssetComedian, catalog.AssetComedian, catalog.AssetScenery},
		{catalog.AssetHorse, catalog.AssetChariot, catalog.AssetChariot},
		{catalog.AssetPriest, catalog.AssetDecoration, catalog.AssetJoker},
		{catalog.AssetShip, catalog.AssetShip, catalog.AssetShip},
	}
}

func newTestGame(t *testing.T, numPlayers int) *engine.Game {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	names := []string{"Aulus", "Brutus", "Cato", "Decimus", "Ennius"}[:numPlayers]
	g, err := engine.NewGame(names, cat, engine.DefaultConfig(), testMarket())
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return g
}

func mustApply(t *testing.T, g *engine.Game, playerID int, action engine.Action) []engine.Event {
	t.Helper()
	events, err := g.Apply(playerID, action)
	if err != nil {
		t.Fatalf("apply %s for player %d: %v", action.Type, playerID, err)
	}
	return events
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t, 3)
	if len(g.Players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(g.Players))
	}
	if g.Round != 1 {
		t.Errorf("round: got %d, want 1", g.Round)
	}
	if g.Phase.Kind != engine.PhaseInvesting || g.Phase.Active != 0 {
		t.Errorf("expected Investing(0), got %s(%d)", g.Phase.Kind, g.Phase.Active)
	}
	for _, p := range g.Players {
		if p.Coins != 30 {
			t.Errorf("player %d coins: got %d, want 30", p.ID, p.Coins)
		}
		if len(p.Sections) != 2 {
			t.Errorf("player %d should own 2 arena sections, got %d", p.ID, len(p.Sections))
		}
	}
	if g.AvailableMedals != 18 || g.AvailableTickets != 10 {
		t.Errorf("pools: got %d medals, %d tickets", g.AvailableMedals, g.AvailableTickets)
	}
}

func TestNewGameRejectsBadPlayerCount(t *testing.T) {
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	for _, n := range []int{0, 1, 2, 6} {
		names := make([]string, n)
		if _, err := engine.NewGame(names, cat, engine.DefaultConfig(), nil); err == nil {
			t.Errorf("expected error for %d players", n)
		}
	}
}

// Buying event 2 (cost 5) from the starting 30 coins must leave 25, set the
// purchase flag, and pass the turn to the next seat.
func TestInvestingBuyEvent(t *testing.T) {
	g := newTestGame(t, 3)

	mustApply(t, g, 0, engine.Action{Type: engine.ActionBuyEvent, EventID: 2})

	p := g.Players[0]
	if p.Coins != 25 {
		t.Errorf("coins: got %d, want 25", p.Coins)
	}
	if !p.Purchased {
		t.Error("purchase flag not set")
	}
	if !p.OwnsEvent(2) {
		t.Error("event 2 not owned after purchase")
	}
	if g.Phase.Kind != engine.PhaseInvesting || g.Phase.Active != 1 {
		t.Errorf("expected Investing(1), got %s(%d)", g.Phase.Kind, g.Phase.Active)
	}
}

func TestInvestingSecondPurchaseRejected(t *testing.T) {
	g := newTestGame(t, 3)
	g.Players[0].Purchased = true

	_, err := g.Apply(0, engine.Action{Type: engine.ActionBuyTicket})
	if !errors.Is(err, engine.ErrDuplicatePurchase) {
		t.Errorf("got %v, want ErrDuplicatePurchase", err)
	}
	// Passing stays legal after the purchase.
	if _, err := g.Apply(0, engine.Action{Type: engine.ActionPass}); err != nil {
		t.Errorf("pass after purchase: %v", err)
	}
}

// A phase-foreign action reports ErrWrongPhase even when the player has
// already purchased; the once-per-round flag only speaks for paid Investing
// actions.
func TestInvestingWrongPhaseBeatsDuplicatePurchase(t *testing.T) {
	g := newTestGame(t, 3)
	g.Players[0].Purchased = true

	for _, action := range []engine.Action{
		{Type: engine.ActionBid, Amount: 3},
		{Type: engine.ActionProduceEvent, EventID: 2},
		{Type: engine.ActionPassTrading},
	} {
		_, err := g.Apply(0, action)
		if !errors.Is(err, engine.ErrWrongPhase) {
			t.Errorf("%s: got %v, want ErrWrongPhase", action.Type, err)
		}
	}
}

func TestInvestingActions(t *testing.T) {
	tests := []struct {
		name   string
		action engine.Action
		check  func(t *testing.T, g *engine.Game)
	}{
		{
			name:   "expand arena",
			action: engine.Action{Type: engine.ActionExpandArena},
			check: func(t *testing.T, g *engine.Game) {
				p := g.Players[0]
				if p.ArenaLevel != 1 {
					t.Errorf("arena level: got %d, want 1", p.ArenaLevel)
				}
				if p.Coins != 30-4 {
					t.Errorf("coins: got %d, want 26", p.Coins)
				}
			},
		},
		{
			name:   "buy ticket",
			action: engine.Action{Type: engine.ActionBuyTicket},
			check: func(t *testing.T, g *engine.Game) {
				if g.Players[0].SeasonTickets != 1 {
					t.Error("ticket not added")
				}
				if g.AvailableTickets != 9 {
					t.Errorf("ticket pool: got %d, want 9", g.AvailableTickets)
				}
			},
		},
		{
			name:   "build loge",
			action: engine.Action{Type: engine.ActionBuildLoge},
			check: func(t *testing.T, g *engine.Game) {
				if !g.Players[0].Loge {
					t.Error("loge not built")
				}
			},
		},
		{
			name:   "fund special event",
			action: engine.Action{Type: engine.ActionFundSpecialEvent},
			check: func(t *testing.T, g *engine.Game) {
				if g.Players[0].CountAsset(catalog.AssetSpecialEvent) != 1 {
					t.Error("special event asset not granted")
				}
			},
		},
		{
			name:   "buy medals",
			action: engine.Action{Type: engine.ActionBuyMedals},
			check: func(t *testing.T, g *engine.Game) {
				if g.Players[0].Medals != 2 {
					t.Errorf("medals: got %d, want 2", g.Players[0].Medals)
				}
				if g.AvailableMedals != 16 {
					t.Errorf("medal pool: got %d, want 16", g.AvailableMedals)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, 3)
			mustApply(t, g, 0, tt.action)
			tt.check(t, g)
			if !g.Players[0].Purchased {
				t.Error("paid action should set the purchase flag")
			}
			if g.Phase.Active != 1 {
				t.Errorf("turn should advance, active is %d", g.Phase.Active)
			}
		})
	}
}

func TestWrongTurnRejected(t *testing.T) {
	g := newTestGame(t, 3)
	_, err := g.Apply(1, engine.Action{Type: engine.ActionPass})
	if !errors.Is(err, engine.ErrNotYourTurn) {
		t.Errorf("got %v, want ErrNotYourTurn", err)
	}
}

func TestWrongPhaseRejected(t *testing.T) {
	g := newTestGame(t, 3)
	_, err := g.Apply(0, engine.Action{Type: engine.ActionBid, Amount: 3})
	if !errors.Is(err, engine.ErrWrongPhase) {
		t.Errorf("got %v, want ErrWrongPhase", err)
	}
}

// A rejected action must leave the aggregate untouched.
func TestRejectedActionLeavesStateUnchanged(t *testing.T) {
	g := newTestGame(t, 3)
	g.Players[0].Coins = 2 // cannot afford anything

	bad := []struct {
		player int
		action engine.Action
	}{
		{0, engine.Action{Type: engine.ActionBuyEvent, EventID: 2}},
		{0, engine.Action{Type: engine.ActionBuyEvent, EventID: 999}},
		{0, engine.Action{Type: engine.ActionExpandArena}},
		{1, engine.Action{Type: engine.ActionPass}},
		{0, engine.Action{Type: engine.ActionProduceEvent, EventID: 2}},
		{0, engine.Action{Type: engine.ActionExchangeMedalForCoins}},
		{7, engine.Action{Type: engine.ActionPass}},
	}

	before := g.Clone()
	for _, tt := range bad {
		if _, err := g.Apply(tt.player, tt.action); err == nil {
			t.Fatalf("action %s by %d should have been rejected", tt.action.Type, tt.player)
		}
		if !reflect.DeepEqual(before, g.Clone()) {
			t.Fatalf("state changed after rejected %s", tt.action.Type)
		}
	}
}

func TestExchangeMedalForCoinsAnyPhase(t *testing.T) {
	g := newTestGame(t, 3)
	g.Players[2].Medals = 1

	// Player 2 is not the active player, and it is the Investing phase.
	mustApply(t, g, 2, engine.Action{Type: engine.ActionExchangeMedalForCoins})

	p := g.Players[2]
	if p.Medals != 0 {
		t.Errorf("medals: got %d, want 0", p.Medals)
	}
	if p.Coins != 33 {
		t.Errorf("coins: got %d, want 33", p.Coins)
	}
	// The Investing turn is undisturbed.
	if g.Phase.Kind != engine.PhaseInvesting || g.Phase.Active != 0 {
		t.Errorf("phase disturbed: %s(%d)", g.Phase.Kind, g.Phase.Active)
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := newTestGame(t, 3)
	c := g.Clone()

	c.Players[0].Coins = 0
	c.Market[0][0] = catalog.AssetEmperor
	c.Board.Nobles[0].Position = 17
	c.Completions[1] = []int{2}

	if g.Players[0].Coins != 30 {
		t.Error("clone shares player state")
	}
	if g.Market[0][0] != catalog.AssetGladiator {
		t.Error("clone shares market")
	}
	if g.Board.Nobles[0].Position != 0 {
		t.Error("clone shares board")
	}
	if len(g.Completions) != 0 {
		t.Error("clone shares completions")
	}
}
