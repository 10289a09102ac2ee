package tui

import (
	"reflect"
	"testing"

	"colosseum/internal/catalog"
	"colosseum/internal/engine"
)

func fixedRoll(n int) func() int {
	return func() int { return n }
}

func TestParseCommand(t *testing.T) {
	investing := engine.Phase{Kind: engine.PhaseInvesting}

	cases := []struct {
		input string
		want  engine.Action
	}{
		{"buy 2", engine.Action{Type: engine.ActionBuyEvent, EventID: 2}},
		{"expand", engine.Action{Type: engine.ActionExpandArena}},
		{"medals", engine.Action{Type: engine.ActionBuyMedals}},
		{"open 1 3", engine.Action{Type: engine.ActionStartBid, Batch: 1, Amount: 3}},
		{"bid 5", engine.Action{Type: engine.ActionBid, Amount: 5}},
		{"accept", engine.Action{Type: engine.ActionAcceptTrade}},
		{"move 0", engine.Action{Type: engine.ActionMoveNoble, Noble: 0, Roll: 4}},
		{"produce 7", engine.Action{Type: engine.ActionProduceEvent, EventID: 7}},
		{"cash", engine.Action{Type: engine.ActionExchangeMedalForCoins}},
		{"  BUY 2  ", engine.Action{Type: engine.ActionBuyEvent, EventID: 2}},
	}
	for _, tc := range cases {
		got, err := ParseCommand(tc.input, investing, fixedRoll(4))
		if err != nil {
			t.Errorf("%q: unexpected error %v", tc.input, err)
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%q: got %+v, want %+v", tc.input, got, tc.want)
		}
	}
}

func TestParseCommandErrors(t *testing.T) {
	investing := engine.Phase{Kind: engine.PhaseInvesting}
	for _, input := range []string{
		"", "frobnicate", "buy", "buy x", "open 1", "bid",
		"offer 1 torch for lion", "offer 1 give torch,-3 for lion",
		"offer 1 give unicorn for lion",
	} {
		if _, err := ParseCommand(input, investing, fixedRoll(1)); err == nil {
			t.Errorf("%q: expected error", input)
		}
	}
}

func TestParseOfferBundles(t *testing.T) {
	got, err := ParseCommand("offer 2 give torch,lion,3 for joker", engine.Phase{Kind: engine.PhaseTrading}, fixedRoll(1))
	if err != nil {
		t.Fatal(err)
	}
	want := engine.Action{
		Type:        engine.ActionProposeTrade,
		Target:      2,
		OfferAssets: []catalog.Asset{catalog.AssetTorch, catalog.AssetLion},
		OfferCoins:  3,
		WantAssets:  []catalog.Asset{catalog.AssetJoker},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestPassTracksPhase(t *testing.T) {
	cases := []struct {
		phase engine.Phase
		want  engine.ActionType
	}{
		{engine.Phase{Kind: engine.PhaseInvesting}, engine.ActionPass},
		{engine.Phase{Kind: engine.PhaseAcquiring, Bidder: -1}, engine.ActionPassAcquiring},
		{engine.Phase{Kind: engine.PhaseAcquiring, Bidder: 1}, engine.ActionPassBid},
		{engine.Phase{Kind: engine.PhaseTrading}, engine.ActionPassTrading},
		{engine.Phase{Kind: engine.PhaseProducing}, engine.ActionPassProducing},
	}
	for _, tc := range cases {
		got, err := ParseCommand("pass", tc.phase, fixedRoll(1))
		if err != nil {
			t.Fatal(err)
		}
		if got.Type != tc.want {
			t.Errorf("pass in %s: got %s, want %s", tc.phase.Kind, got.Type, tc.want)
		}
	}
}
