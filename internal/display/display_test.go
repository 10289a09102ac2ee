package display_test

import (
	"strings"
	"testing"

	"colosseum/internal/catalog"
	"colosseum/internal/display"
	"colosseum/internal/engine"
)

func TestSizeGlyph(t *testing.T) {
	cases := map[int]string{0: "[]", 1: "[=]", 2: "[==]", 9: "[]"}
	for size, want := range cases {
		if got := display.SizeGlyph(size); got != want {
			t.Errorf("SizeGlyph(%d): got %q, want %q", size, got, want)
		}
	}
}

func TestListingShowsEveryEvent(t *testing.T) {
	c, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	out := display.Listing(c)
	for _, ev := range c.Events() {
		if !strings.Contains(out, ev.Name) {
			t.Errorf("listing is missing %q", ev.Name)
		}
	}
	// Duplicate requirements collapse into counts.
	if !strings.Contains(out, "2x Torch") {
		t.Error("listing does not aggregate duplicate requirements")
	}
}

func TestScoreboardRanksByTotal(t *testing.T) {
	entries := []engine.ScoreEntry{
		{PlayerID: 0, PlayerName: "Aulus", Total: 31},
		{PlayerID: 1, PlayerName: "Brutus", Total: 44},
		{PlayerID: 2, PlayerName: "Cato", Total: 44},
	}
	out := display.Scoreboard(entries)

	first := strings.Index(out, "Brutus")
	second := strings.Index(out, "Cato")
	third := strings.Index(out, "Aulus")
	if first == -1 || second == -1 || third == -1 {
		t.Fatalf("scoreboard is missing players:\n%s", out)
	}
	// Ties keep seat order.
	if !(first < second && second < third) {
		t.Errorf("wrong ranking order:\n%s", out)
	}
}

func TestBatch(t *testing.T) {
	got := display.Batch([]catalog.Asset{catalog.AssetTorch, catalog.AssetLion})
	if got != "Torch, Lion" {
		t.Errorf("got %q", got)
	}
}
