package engine

import "colosseum/internal/catalog"

// ActionType identifies player actions sent to Game.Apply.
type ActionType string

const (
	// Investing.
	ActionBuyEvent         ActionType = "buy_event"
	ActionExpandArena      ActionType = "expand_arena"
	ActionBuyTicket        ActionType = "buy_ticket"
	ActionBuildLoge        ActionType = "build_loge"
	ActionFundSpecialEvent ActionType = "fund_special_event"
	ActionBuyMedals        ActionType = "buy_medals"
	ActionPass             ActionType = "pass"

	// Acquiring.
	ActionStartBid      ActionType = "start_bid"
	ActionBid           ActionType = "bid"
	ActionPassBid       ActionType = "pass_bid"
	ActionPassAcquiring ActionType = "pass_acquiring"

	// Trading.
	ActionProposeTrade ActionType = "propose_trade"
	ActionAcceptTrade  ActionType = "accept_trade"
	ActionRejectTrade  ActionType = "reject_trade"
	ActionPassTrading  ActionType = "pass_trading"

	// Producing.
	ActionMoveNoble              ActionType = "move_noble"
	ActionExchangeMedalForMove   ActionType = "exchange_medal_for_move"
	ActionExchangeMedalForPoints ActionType = "exchange_medal_for_points"
	ActionProduceEvent           ActionType = "produce_event"
	ActionPassProducing          ActionType = "pass_producing"

	// Legal in any non-terminal phase.
	ActionExchangeMedalForCoins ActionType = "exchange_medal_for_coins"
)

// Action is a player's action input. Dice rolls are supplied by the caller
// as parameters; the engine never generates randomness.
type Action struct {
	Type ActionType `json:"type"`

	EventID int `json:"event_id,omitempty"` // buy_event, produce_event
	Batch   int `json:"batch,omitempty"`    // start_bid
	Amount  int `json:"amount,omitempty"`   // start_bid, bid
	Noble   int `json:"noble,omitempty"`    // move_noble, exchange_medal_for_move
	Roll    int `json:"roll,omitempty"`     // externally rolled die value

	// propose_trade.
	Target      int             `json:"target,omitempty"`
	OfferAssets []catalog.Asset `json:"offer_assets,omitempty"`
	OfferCoins  int             `json:"offer_coins,omitempty"`
	WantAssets  []catalog.Asset `json:"want_assets,omitempty"`
	WantCoins   int             `json:"want_coins,omitempty"`
}

// EventType identifies events emitted by the engine.
type EventType string

const (
	EventEventPurchased     EventType = "event_purchased"
	EventArenaExpanded      EventType = "arena_expanded"
	EventTicketBought       EventType = "ticket_bought"
	EventLogeBuilt          EventType = "loge_built"
	EventSpecialEventFunded EventType = "special_event_funded"
	EventMedalsBought       EventType = "medals_bought"
	EventTurnPassed         EventType = "turn_passed"
	EventPhaseChange        EventType = "phase_change"

	EventAuctionOpened EventType = "auction_opened"
	EventBidRaised     EventType = "bid_raised"
	EventBidPassed     EventType = "bid_passed"
	EventBatchAwarded  EventType = "batch_awarded"
	EventBatchSkipped  EventType = "batch_skipped"

	EventTradeProposed  EventType = "trade_proposed"
	EventTradeAccepted  EventType = "trade_accepted"
	EventTradeRejected  EventType = "trade_rejected"
	EventTradeWithdrawn EventType = "trade_withdrawn"

	EventNobleMoved     EventType = "noble_moved"
	EventNobleRested    EventType = "noble_rested"
	EventMedalExchanged EventType = "medal_exchanged"
	EventEventProduced  EventType = "event_produced"

	EventRoundEnd EventType = "round_end"
	EventGameOver EventType = "game_over"
)

// Event is emitted by the engine after state changes.
type Event struct {
	Type   EventType   `json:"type"`
	Player int         `json:"player"`
	Data   interface{} `json:"data,omitempty"`
}
