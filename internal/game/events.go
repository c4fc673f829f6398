package game

// EventType identifies a meaningful state transition produced by the engine.
// The transport layer broadcasts events verbatim; the engine never holds
// them back across operations.
type EventType string

const (
	EventPlayerJoined        EventType = "PLAYER_JOINED"
	EventPlayerLeft          EventType = "PLAYER_LEFT"
	EventGameState           EventType = "GAME_STATE"
	EventGameStarted         EventType = "GAME_STARTED"
	EventDiceRolled          EventType = "DICE_ROLLED"
	EventPlayerMoved         EventType = "PLAYER_MOVED"
	EventPropertyBought      EventType = "PROPERTY_BOUGHT"
	EventAuctionStarted      EventType = "AUCTION_STARTED"
	EventBidPlaced           EventType = "BID_PLACED"
	EventAuctionEnded        EventType = "AUCTION_ENDED"
	EventHouseBuilt          EventType = "HOUSE_BUILT"
	EventHotelBuilt          EventType = "HOTEL_BUILT"
	EventHouseSold           EventType = "HOUSE_SOLD"
	EventHotelSold           EventType = "HOTEL_SOLD"
	EventPropertyMortgaged   EventType = "PROPERTY_MORTGAGED"
	EventPropertyUnmortgaged EventType = "PROPERTY_UNMORTGAGED"
	EventRentPaid            EventType = "RENT_PAID"
	EventTaxPaid             EventType = "TAX_PAID"
	EventPlayerJailed        EventType = "PLAYER_JAILED"
	EventPlayerReleasedJail  EventType = "PLAYER_RELEASED_JAIL"
	EventTradeProposed       EventType = "TRADE_PROPOSED"
	EventTradeCompleted      EventType = "TRADE_COMPLETED"
	EventTradeDeclined       EventType = "TRADE_DECLINED"
	EventCardDrawn           EventType = "CARD_DRAWN"
	EventLiquidationRequired EventType = "LIQUIDATION_REQUIRED"
	EventDebtPaid            EventType = "DEBT_PAID"
	EventPlayerBankrupt      EventType = "PLAYER_BANKRUPT"
	EventTurnChanged         EventType = "TURN_CHANGED"
	EventGameOver            EventType = "GAME_OVER"
	EventChatMessage         EventType = "CHAT_MESSAGE"
	EventError               EventType = "ERROR"
)

// Event is a single outbound notification scoped to one room.
type Event struct {
	Type EventType      `json:"type"`
	Data map[string]any `json:"data,omitempty"`
}
