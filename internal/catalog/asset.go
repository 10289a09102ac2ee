package catalog

import "fmt"

// Asset is one of the closed set of tradeable asset categories.
type Asset int

const (
	AssetGladiator Asset = iota + 1
	AssetComedian
	AssetMusician
	AssetHorse
	AssetTorch
	AssetPriest
	AssetShip
	AssetLion
	AssetScenery
	AssetDecoration
	AssetChariot
	AssetCage
	AssetJoker
	AssetEmperor
	AssetSpecialEvent
)

var assetNames = map[Asset]string{
	AssetGladiator:    "Gladiator",
	AssetComedian:     "Comedian",
	AssetMusician:     "Musician",
	AssetHorse:        "Horse",
	AssetTorch:        "Torch",
	AssetPriest:       "Priest",
	AssetShip:         "Ship",
	AssetLion:         "Lion",
	AssetScenery:      "Scenery",
	AssetDecoration:   "Decoration",
	AssetChariot:      "Chariot",
	AssetCage:         "Cage",
	AssetJoker:        "Joker",
	AssetEmperor:      "Emperor",
	AssetSpecialEvent: "SpecialEvent",
}

func (a Asset) String() string {
	if s, ok := assetNames[a]; ok {
		return s
	}
	return "Unknown"
}

// ParseAsset converts a catalog-file asset name into an Asset.
func ParseAsset(name string) (Asset, error) {
	for a, s := range assetNames {
		if s == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown asset %q", name)
}

// AllAssets returns the marketable asset kinds in declaration order.
// Joker is marketable; SpecialEvent is only granted by funding a special
// event during Investing and never appears in market batches.
func AllAssets() []Asset {
	return []Asset{
		AssetGladiator, AssetComedian, AssetMusician, AssetHorse,
		AssetTorch, AssetPriest, AssetShip, AssetLion,
		AssetScenery, AssetDecoration, AssetChariot, AssetCage,
		AssetJoker, AssetEmperor,
	}
}
