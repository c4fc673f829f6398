package game

import (
	"github.com/google/uuid"
)

// DrawResult carries the drawn card plus the events its effect produced.
type DrawResult struct {
	Card   Card
	Events []Event
}

// DrawCard draws the next card from the chosen deck's cyclic cursor and
// applies its effect immediately.
func (e *Engine) DrawCard(roomID, playerID uuid.UUID, deckKind DeckKind) (DrawResult, error) {
	var result DrawResult
	events, err := e.withRoom(roomID, func(room *Room) error {
		player, err := e.playerInRoom(room, playerID)
		if err != nil {
			return err
		}
		card := room.drawFrom(deckKind)
		result.Card = card
		room.emit(EventCardDrawn, map[string]any{
			"playerId":    playerID.String(),
			"deck":        deckKind.String(),
			"description": card.Description,
			"action":      card.Action.String(),
		})
		e.applyCard(room, player, card)
		return nil
	})
	if err != nil {
		return DrawResult{}, err
	}
	result.Events = events
	return result, nil
}

// applyCard executes a card effect against the room state.
func (e *Engine) applyCard(room *Room, player *Player, card Card) {
	switch card.Action {
	case CardAdvanceToGo:
		player.MoveTo(GoPosition)
		player.AddMoney(GoSalary)
		room.emit(EventPlayerMoved, map[string]any{
			"playerId":    player.ID.String(),
			"newPosition": player.Position,
			"money":       player.Money,
		})

	case CardAdvanceToSpace:
		target := resolveTarget(room.Board, card.Target, player.Position)
		// A target before the current position means the token crossed
		// GO on the way.
		if target < player.Position {
			player.AddMoney(GoSalary)
		}
		player.MoveTo(target)
		room.emit(EventPlayerMoved, map[string]any{
			"playerId":    player.ID.String(),
			"newPosition": player.Position,
			"money":       player.Money,
		})
		e.handleLanding(room, player)

	case CardGoBackSpaces:
		player.MoveTo(player.Position - card.Amount)
		room.emit(EventPlayerMoved, map[string]any{
			"playerId":    player.ID.String(),
			"newPosition": player.Position,
			"money":       player.Money,
		})

	case CardGoToJail:
		player.SendToJail()
		room.emit(EventPlayerJailed, map[string]any{
			"playerId": player.ID.String(),
			"reason":   "card",
		})

	case CardGetOutOfJailFree:
		player.GetOutOfJailCards++

	case CardCollectMoney:
		player.AddMoney(card.Amount)

	case CardPayMoney:
		if !player.SubtractMoney(card.Amount) {
			e.handleInsufficientFunds(room, player, card.Amount, nil, "card payment")
		}

	case CardPayPerHouseHotel:
		cost := player.TotalHouses*card.Amount + player.TotalHotels*(card.Amount*4)
		if !player.SubtractMoney(cost) {
			e.handleInsufficientFunds(room, player, cost, nil, "property repairs")
		}

	case CardCollectFromPlayers:
		// A payer who cannot cover the amount is skipped, not retried.
		for _, other := range room.Players {
			if other.ID == player.ID || other.Bankrupt {
				continue
			}
			if other.SubtractMoney(card.Amount) {
				player.AddMoney(card.Amount)
			}
		}

	case CardPayToPlayers:
		for _, other := range room.Players {
			if other.ID == player.ID || other.Bankrupt {
				continue
			}
			if player.SubtractMoney(card.Amount) {
				other.AddMoney(card.Amount)
			}
		}
	}
}

// resolveTarget turns a card target into a concrete board position.
// Dynamic targets use an ascending-position scan with wraparound.
func resolveTarget(board []BoardSpace, target CardTarget, from int) int {
	switch target.Kind {
	case TargetNearestUtility:
		return nearestOfKind(board, SpaceUtility, from)
	case TargetNearestRailroad:
		return nearestOfKind(board, SpaceRailroad, from)
	default:
		return target.Position
	}
}

func nearestOfKind(board []BoardSpace, kind SpaceKind, from int) int {
	for offset := 1; offset <= BoardSize; offset++ {
		pos := (from + offset) % BoardSize
		if board[pos].Kind == kind {
			return pos
		}
	}
	return from
}
