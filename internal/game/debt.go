package game

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// handleInsufficientFunds is the single entry point for a failed debit.
// A player whose full net worth cannot cover the debt goes bankrupt at
// once; otherwise a pending-debt record demands liquidation. Callers hold
// the room lock.
func (e *Engine) handleInsufficientFunds(room *Room, player *Player, amountOwed int, creditor *Player, reason string) {
	if player.NetWorth(room.Board) < amountOwed {
		e.declareBankruptcy(room, player, creditor)
		return
	}

	creditorID := uuid.Nil
	if creditor != nil {
		creditorID = creditor.ID
	}
	room.Debt = &PendingDebt{
		DebtorID:   player.ID,
		Amount:     amountOwed,
		CreditorID: creditorID,
		Reason:     reason,
	}
	room.emit(EventLiquidationRequired, map[string]any{
		"playerId":   player.ID.String(),
		"amountOwed": amountOwed,
		"creditorId": idOrEmpty(creditorID),
		"reason":     reason,
	})
}

// PayOffDebt processes the debtor's chosen liquidation in fixed order:
// hotels, then houses, then mortgages. Requests to mortgage a property
// still carrying buildings are rejected outright. If the raised cash still
// falls short, the already-applied liquidations stand and bankruptcy
// follows; there is no rollback.
func (e *Engine) PayOffDebt(roomID, playerID uuid.UUID, housesToSell, hotelsToSell, propertiesToMortgage []int, creditorID uuid.UUID, amountOwed int) ([]Event, error) {
	return e.withRoom(roomID, func(room *Room) error {
		player, err := e.playerInRoom(room, playerID)
		if err != nil {
			return err
		}

		for _, position := range hotelsToSell {
			space := &room.Board[position]
			if space.Kind == SpaceProperty && space.Owner == playerID && space.Hotel {
				if err := e.sellHotel(room, player, position); err != nil {
					return err
				}
			}
		}

		for _, position := range housesToSell {
			space := &room.Board[position]
			if space.Kind == SpaceProperty && space.Owner == playerID && space.Houses > 0 {
				if err := e.sellHouse(room, player, position); err != nil {
					return err
				}
			}
		}

		for _, position := range propertiesToMortgage {
			space := &room.Board[position]
			if space.Kind == SpaceProperty && (space.Houses > 0 || space.Hotel) {
				return ErrBuildingsPresent
			}
			if space.Owner == playerID && space.CanMortgage() {
				if err := e.mortgage(room, player, position); err != nil {
					return err
				}
			}
		}

		var creditor *Player
		if creditorID != uuid.Nil {
			creditor = room.PlayerByID(creditorID)
		}

		if !player.SubtractMoney(amountOwed) {
			// Liquidation fell short; the sales above stand.
			e.declareBankruptcy(room, player, creditor)
			return nil
		}

		if creditor != nil {
			creditor.AddMoney(amountOwed)
		}
		if room.Debt != nil && room.Debt.DebtorID == playerID {
			room.Debt = nil
		}
		room.emit(EventDebtPaid, map[string]any{
			"playerId":   playerID.String(),
			"amount":     amountOwed,
			"creditorId": idOrEmpty(creditorID),
		})
		return nil
	})
}

// declareBankruptcy removes the player from contention and hands every
// holding to the creditor, or back to the bank when the bank is owed.
// Cash is zeroed before any creditor transfer runs, so the creditor
// receives properties only, never residual cash.
func (e *Engine) declareBankruptcy(room *Room, player *Player, creditor *Player) {
	player.DeclareBankruptcy()

	owned := make([]int, len(player.Owned))
	copy(owned, player.Owned)
	for _, position := range owned {
		if creditor != nil {
			transferProperty(room, player, creditor, position)
		} else {
			room.Board[position].Owner = uuid.Nil
		}
	}

	if creditor != nil {
		creditor.AddMoney(player.Money)
	}

	if room.Debt != nil && room.Debt.DebtorID == player.ID {
		room.Debt = nil
	}

	room.emit(EventPlayerBankrupt, map[string]any{
		"playerId":   player.ID.String(),
		"creditorId": creditorIDString(creditor),
	})

	e.logger.Info("player bankrupt",
		zap.String("room_id", room.ID.String()),
		zap.String("player_id", player.ID.String()),
	)

	checkGameOver(room)
}

func creditorIDString(creditor *Player) string {
	if creditor == nil {
		return ""
	}
	return creditor.ID.String()
}
