package tui

import (
	"fmt"
	"strconv"
	"strings"

	"colosseum/internal/catalog"
	"colosseum/internal/engine"
)

// ParseCommand turns a typed command into an engine action. Commands that
// need a die roll call roll once; the engine itself never rolls.
func ParseCommand(input string, phase engine.Phase, roll func() int) (engine.Action, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(input)))
	if len(fields) == 0 {
		return engine.Action{}, fmt.Errorf("empty command")
	}

	switch fields[0] {
	case "buy":
		id, err := intArg(fields, 1, "event id")
		if err != nil {
			return engine.Action{}, err
		}
		return engine.Action{Type: engine.ActionBuyEvent, EventID: id}, nil
	case "expand":
		return engine.Action{Type: engine.ActionExpandArena}, nil
	case "ticket":
		return engine.Action{Type: engine.ActionBuyTicket}, nil
	case "loge":
		return engine.Action{Type: engine.ActionBuildLoge}, nil
	case "special":
		return engine.Action{Type: engine.ActionFundSpecialEvent}, nil
	case "medals":
		return engine.Action{Type: engine.ActionBuyMedals}, nil

	case "open":
		batch, err := intArg(fields, 1, "batch index")
		if err != nil {
			return engine.Action{}, err
		}
		amount, err := intArg(fields, 2, "opening bid")
		if err != nil {
			return engine.Action{}, err
		}
		return engine.Action{Type: engine.ActionStartBid, Batch: batch, Amount: amount}, nil
	case "bid":
		amount, err := intArg(fields, 1, "bid amount")
		if err != nil {
			return engine.Action{}, err
		}
		return engine.Action{Type: engine.ActionBid, Amount: amount}, nil

	case "offer":
		return parseOffer(fields)
	case "accept":
		return engine.Action{Type: engine.ActionAcceptTrade}, nil
	case "reject":
		return engine.Action{Type: engine.ActionRejectTrade}, nil

	case "move":
		noble, err := intArg(fields, 1, "noble index")
		if err != nil {
			return engine.Action{}, err
		}
		return engine.Action{Type: engine.ActionMoveNoble, Noble: noble, Roll: roll()}, nil
	case "medalmove":
		noble, err := intArg(fields, 1, "noble index")
		if err != nil {
			return engine.Action{}, err
		}
		return engine.Action{Type: engine.ActionExchangeMedalForMove, Noble: noble, Roll: roll()}, nil
	case "points":
		return engine.Action{Type: engine.ActionExchangeMedalForPoints}, nil
	case "produce":
		id, err := intArg(fields, 1, "event id")
		if err != nil {
			return engine.Action{}, err
		}
		return engine.Action{Type: engine.ActionProduceEvent, EventID: id}, nil

	case "cash":
		return engine.Action{Type: engine.ActionExchangeMedalForCoins}, nil

	case "pass":
		return passAction(phase), nil
	}
	return engine.Action{}, fmt.Errorf("unknown command %q, try 'help'", fields[0])
}

// passAction maps "pass" to the pass flavour of the current phase. During an
// open auction it folds the standing bid round; before one opens it declines
// to open.
func passAction(phase engine.Phase) engine.Action {
	switch phase.Kind {
	case engine.PhaseAcquiring:
		if phase.Bidder >= 0 {
			return engine.Action{Type: engine.ActionPassBid}
		}
		return engine.Action{Type: engine.ActionPassAcquiring}
	case engine.PhaseTrading:
		return engine.Action{Type: engine.ActionPassTrading}
	case engine.PhaseProducing:
		return engine.Action{Type: engine.ActionPassProducing}
	default:
		return engine.Action{Type: engine.ActionPass}
	}
}

// parseOffer parses "offer <player> give <bundle> for <bundle>" where a
// bundle is a comma list of asset names and coin amounts, e.g.
// "offer 2 give torch,lion,3 for joker".
func parseOffer(fields []string) (engine.Action, error) {
	target, err := intArg(fields, 1, "target player")
	if err != nil {
		return engine.Action{}, err
	}
	if len(fields) < 5 || fields[2] != "give" {
		return engine.Action{}, fmt.Errorf("usage: offer <player> give <bundle> for <bundle>")
	}
	forAt := -1
	for i := 3; i < len(fields); i++ {
		if fields[i] == "for" {
			forAt = i
			break
		}
	}
	if forAt == -1 || forAt == len(fields)-1 {
		return engine.Action{}, fmt.Errorf("usage: offer <player> give <bundle> for <bundle>")
	}

	offerAssets, offerCoins, err := parseBundle(strings.Join(fields[3:forAt], ","))
	if err != nil {
		return engine.Action{}, err
	}
	wantAssets, wantCoins, err := parseBundle(strings.Join(fields[forAt+1:], ","))
	if err != nil {
		return engine.Action{}, err
	}
	return engine.Action{
		Type:        engine.ActionProposeTrade,
		Target:      target,
		OfferAssets: offerAssets,
		OfferCoins:  offerCoins,
		WantAssets:  wantAssets,
		WantCoins:   wantCoins,
	}, nil
}

// parseBundle splits a comma list into assets and coins. Bare numbers count
// as coins and accumulate.
func parseBundle(s string) ([]catalog.Asset, int, error) {
	var assets []catalog.Asset
	coins := 0
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if n, err := strconv.Atoi(part); err == nil {
			if n < 0 {
				return nil, 0, fmt.Errorf("negative coin amount %d", n)
			}
			coins += n
			continue
		}
		a, err := parseAssetName(part)
		if err != nil {
			return nil, 0, err
		}
		assets = append(assets, a)
	}
	return assets, coins, nil
}

// parseAssetName is a case-insensitive ParseAsset over every asset kind.
func parseAssetName(name string) (catalog.Asset, error) {
	for _, a := range append(catalog.AllAssets(), catalog.AssetSpecialEvent) {
		if strings.EqualFold(a.String(), name) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown asset %q", name)
}

func intArg(fields []string, i int, what string) (int, error) {
	if len(fields) <= i {
		return 0, fmt.Errorf("missing %s", what)
	}
	n, err := strconv.Atoi(fields[i])
	if err != nil {
		return 0, fmt.Errorf("bad %s %q", what, fields[i])
	}
	return n, nil
}
