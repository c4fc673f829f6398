package game

import (
	"github.com/google/uuid"
)

// StartAuction opens an auction for a declined or forfeited property.
func (e *Engine) StartAuction(roomID uuid.UUID, position int) ([]Event, error) {
	return e.withRoom(roomID, func(room *Room) error {
		space := &room.Board[position]
		if !space.Ownable() {
			return ErrInvalidSpace
		}
		if room.CurrentAuction != nil && room.CurrentAuction.Active {
			return ErrAuctionPending
		}
		room.CurrentAuction = &Auction{Position: position, Active: true}
		room.emit(EventAuctionStarted, map[string]any{
			"position": position,
		})
		return nil
	})
}

// PlaceBid records a strictly higher, affordable bid.
func (e *Engine) PlaceBid(roomID, playerID uuid.UUID, amount int) ([]Event, error) {
	return e.withRoom(roomID, func(room *Room) error {
		auction := room.CurrentAuction
		if auction == nil || !auction.Active {
			return ErrNoActiveAuction
		}
		player, err := e.playerInRoom(room, playerID)
		if err != nil {
			return err
		}
		if player.Money < amount {
			return ErrInsufficientFunds
		}
		if amount <= auction.HighestBid {
			return ErrBidTooLow
		}
		auction.HighestBid = amount
		auction.HighestBidderID = playerID
		room.emit(EventBidPlaced, map[string]any{
			"playerId": playerID.String(),
			"position": auction.Position,
			"amount":   amount,
		})
		return nil
	})
}

// EndAuction settles the auction. The highest bidder buys at their bid;
// proceeds go to the bank. With no bidder the property stays unowned.
func (e *Engine) EndAuction(roomID uuid.UUID) ([]Event, error) {
	return e.withRoom(roomID, func(room *Room) error {
		auction := room.CurrentAuction
		if auction == nil {
			return ErrNoActiveAuction
		}

		// Settle before touching the auction record so a failed purchase
		// leaves it intact for another EndAuction attempt.
		if auction.HighestBidderID != uuid.Nil {
			winner, err := e.playerInRoom(room, auction.HighestBidderID)
			if err != nil {
				return err
			}
			if err := e.buyAt(room, winner, auction.Position, auction.HighestBid); err != nil {
				return err
			}
		}

		room.emit(EventAuctionEnded, map[string]any{
			"position":   auction.Position,
			"winnerId":   idOrEmpty(auction.HighestBidderID),
			"highestBid": auction.HighestBid,
		})
		room.CurrentAuction = nil
		return nil
	})
}

func idOrEmpty(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}
