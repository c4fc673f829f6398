package game

import (
	"github.com/google/uuid"
)

// TradeOffer is the proposal payload for a two-party swap.
type TradeOffer struct {
	FromPlayerID   uuid.UUID `json:"fromPlayerId"`
	ToPlayerID     uuid.UUID `json:"toPlayerId"`
	FromProperties []int     `json:"fromPlayerProperties"`
	FromMoney      int       `json:"fromPlayerMoney"`
	ToProperties   []int     `json:"toPlayerProperties"`
	ToMoney        int       `json:"toPlayerMoney"`
}

// ProposeTrade records a pending trade. Only one trade may be pending per
// room at a time.
func (e *Engine) ProposeTrade(roomID uuid.UUID, offer TradeOffer) ([]Event, error) {
	return e.withRoom(roomID, func(room *Room) error {
		if room.CurrentTrade != nil && room.CurrentTrade.Status == TradePending {
			return ErrTradePending
		}
		if _, err := e.playerInRoom(room, offer.FromPlayerID); err != nil {
			return err
		}
		if _, err := e.playerInRoom(room, offer.ToPlayerID); err != nil {
			return err
		}
		trade := &Trade{
			ID:             uuid.New(),
			FromPlayerID:   offer.FromPlayerID,
			ToPlayerID:     offer.ToPlayerID,
			FromProperties: offer.FromProperties,
			FromMoney:      offer.FromMoney,
			ToProperties:   offer.ToProperties,
			ToMoney:        offer.ToMoney,
			Status:         TradePending,
		}
		room.CurrentTrade = trade
		room.emit(EventTradeProposed, map[string]any{
			"tradeId":      trade.ID.String(),
			"fromPlayerId": trade.FromPlayerID.String(),
			"toPlayerId":   trade.ToPlayerID.String(),
		})
		return nil
	})
}

// RespondToTrade lets the addressed counterparty accept or decline. Accept
// runs the full exchange; decline changes nothing. Either way the pending
// slot is cleared.
func (e *Engine) RespondToTrade(roomID, playerID, tradeID uuid.UUID, accept bool) ([]Event, error) {
	return e.withRoom(roomID, func(room *Room) error {
		trade := room.CurrentTrade
		if trade == nil || trade.ID != tradeID {
			return ErrNoActiveTrade
		}
		if trade.ToPlayerID != playerID {
			return ErrNotYourTrade
		}

		if accept {
			executeTrade(room, trade)
			trade.Status = TradeAccepted
			room.emit(EventTradeCompleted, map[string]any{
				"tradeId": trade.ID.String(),
			})
		} else {
			trade.Status = TradeDeclined
			room.emit(EventTradeDeclined, map[string]any{
				"tradeId": trade.ID.String(),
			})
		}
		room.CurrentTrade = nil
		return nil
	})
}

// executeTrade swaps every listed property and then applies both cash
// deltas. Callers hold the room lock.
func executeTrade(room *Room, trade *Trade) {
	from := room.PlayerByID(trade.FromPlayerID)
	to := room.PlayerByID(trade.ToPlayerID)

	for _, position := range trade.FromProperties {
		transferProperty(room, from, to, position)
	}
	for _, position := range trade.ToProperties {
		transferProperty(room, to, from, position)
	}

	from.SubtractMoney(trade.FromMoney)
	to.AddMoney(trade.FromMoney)

	to.SubtractMoney(trade.ToMoney)
	from.AddMoney(trade.ToMoney)
}

// transferProperty reassigns ownership of one space, keeping both sides'
// color-group counts consistent.
func transferProperty(room *Room, from, to *Player, position int) {
	space := &room.Board[position]
	if !space.Ownable() {
		return
	}
	space.Owner = to.ID
	from.RemoveHolding(position, space.Group)
	to.AddHolding(position, space.Group)
}
