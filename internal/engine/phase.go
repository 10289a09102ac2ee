package engine

// PhaseKind identifies one stage of a round's turn cycle.
type PhaseKind int

const (
	PhaseInvesting PhaseKind = iota
	PhaseAcquiring
	PhaseTrading
	PhaseProducing
	PhaseClosing
	PhaseGameOver
)

var phaseNames = map[PhaseKind]string{
	PhaseInvesting: "Investing",
	PhaseAcquiring: "Acquiring",
	PhaseTrading:   "Trading",
	PhaseProducing: "Producing",
	PhaseClosing:   "Closing",
	PhaseGameOver:  "GameOver",
}

func (k PhaseKind) String() string {
	if s, ok := phaseNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Phase carries exactly the transient data needed to resume mid-phase.
// Fields beyond Kind and Active are only meaningful for the kind noted;
// constructors below keep impossible combinations out.
type Phase struct {
	Kind   PhaseKind `json:"kind"`
	Active int       `json:"active"` // acting player; -1 for Closing/GameOver

	// Acquiring only.
	Batch  int    `json:"batch,omitempty"`  // market index of the batch on offer
	Opener int    `json:"opener,omitempty"` // player entitled to open this batch
	Bidder int    `json:"bidder"`           // current high bidder, -1 when not open
	Bid    int    `json:"bid,omitempty"`
	// Passed tracks who is out of the current batch: before the auction
	// opens it records declined opening rights, after StartBid it records
	// dropped bidders.
	Passed []bool `json:"passed,omitempty"`

	// Trading only.
	Pending *PendingTrade `json:"pending,omitempty"`
}

// PendingTrade is a proposed two-party exchange awaiting the target's
// response. It exists only inside an active Trading phase and is destroyed
// on accept, reject or withdrawal.
type PendingTrade struct {
	Proposer    int   `json:"proposer"`
	Target      int   `json:"target"`
	OfferAssets Batch `json:"offer_assets"`
	OfferCoins  int   `json:"offer_coins"`
	WantAssets  Batch `json:"want_assets"`
	WantCoins   int   `json:"want_coins"`
}

func investingPhase(active int) Phase {
	return Phase{Kind: PhaseInvesting, Active: active, Bidder: -1}
}

func acquiringPhase(opener, batch, numPlayers int) Phase {
	return Phase{
		Kind:   PhaseAcquiring,
		Active: opener,
		Opener: opener,
		Batch:  batch,
		Bidder: -1,
		Passed: make([]bool, numPlayers),
	}
}

func tradingPhase(active int) Phase {
	return Phase{Kind: PhaseTrading, Active: active, Bidder: -1}
}

func producingPhase(active int) Phase {
	return Phase{Kind: PhaseProducing, Active: active, Bidder: -1}
}

func closingPhase() Phase {
	return Phase{Kind: PhaseClosing, Active: -1, Bidder: -1}
}

func gameOverPhase() Phase {
	return Phase{Kind: PhaseGameOver, Active: -1, Bidder: -1}
}
