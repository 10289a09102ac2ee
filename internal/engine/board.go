package engine

// NobleType distinguishes the three scoring tiers of board nobles.
type NobleType int

const (
	NobleSenator NobleType = iota + 1
	NobleConsul
	NobleEmperor
)

var nobleNames = map[NobleType]string{
	NobleSenator: "Senator",
	NobleConsul:  "Consul",
	NobleEmperor: "Emperor",
}

func (t NobleType) String() string {
	if s, ok := nobleNames[t]; ok {
		return s
	}
	return "Unknown"
}

// Points returns the score bonus a noble of this type grants when it
// settles on a resting place.
func (t NobleType) Points() int {
	switch t {
	case NobleSenator:
		return 1
	case NobleConsul:
		return 2
	case NobleEmperor:
		return 3
	default:
		return 0
	}
}

// BoardSize is the number of spaces on the circular noble track.
const BoardSize = 36

// Noble is a token on the noble track.
type Noble struct {
	Type     NobleType `json:"type"`
	Position int       `json:"position"`
}

// Board is the physical track: fixed resting places plus the mutable
// noble tokens. Nobles are owned exclusively by the board.
type Board struct {
	RestingPlaces []int   `json:"resting_places"`
	Nobles        []Noble `json:"nobles"`
}

func NewBoard() Board {
	return Board{
		RestingPlaces: []int{0, 6, 12, 19, 26, 30},
		Nobles: []Noble{
			{Type: NobleEmperor, Position: 0},
			{Type: NobleConsul, Position: 12},
			{Type: NobleConsul, Position: 26},
			{Type: NobleSenator, Position: 6},
			{Type: NobleSenator, Position: 19},
			{Type: NobleSenator, Position: 30},
		},
	}
}

// Move advances a noble by the given roll, wrapping around the track.
func (b *Board) Move(idx, roll int) {
	if idx < 0 || idx >= len(b.Nobles) {
		return
	}
	b.Nobles[idx].Position = (b.Nobles[idx].Position + roll) % BoardSize
}

// IsRestingPlace reports whether the given position is a resting place.
func (b *Board) IsRestingPlace(position int) bool {
	for _, r := range b.RestingPlaces {
		if r == position {
			return true
		}
	}
	return false
}

// SectionLayout returns each player's arena track spaces for the given
// player count. Valid counts are 3 to 5.
func SectionLayout(numPlayers int) ([][]int, bool) {
	switch numPlayers {
	case 3:
		return [][]int{{8, 9}, {21, 22}, {32, 33}}, true
	case 4:
		return [][]int{{3, 4}, {14, 15}, {23, 24}, {32, 33}}, true
	case 5:
		return [][]int{{2, 3}, {8, 9}, {15, 16}, {23, 24}, {32, 33}}, true
	default:
		return nil, false
	}
}
