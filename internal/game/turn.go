package game

import (
	"github.com/google/uuid"
)

// RollResult reports the outcome of a normal dice roll.
type RollResult struct {
	Dice       [2]int
	Doubles    bool
	Position   int
	PassedGo   bool
	SentToJail bool
	Events     []Event
}

// RollDice rolls for the current player and applies movement and landing
// resolution. A player sitting in jail gets their dice recorded but no
// movement; jail escapes go through RollForJail.
func (e *Engine) RollDice(roomID, playerID uuid.UUID) (RollResult, error) {
	var result RollResult
	events, err := e.withRoom(roomID, func(room *Room) error {
		if room.Phase != PhaseInProgress {
			return ErrWrongPhase
		}
		player, err := e.playerInRoom(room, playerID)
		if err != nil {
			return err
		}
		if room.CurrentPlayer() == nil || room.CurrentPlayer().ID != playerID {
			return ErrNotPlayerTurn
		}

		die1, die2 := e.roll()
		doubles := die1 == die2
		room.LastDiceRoll = [2]int{die1, die2}
		result.Dice = room.LastDiceRoll
		result.Doubles = doubles

		room.emit(EventDiceRolled, map[string]any{
			"playerId":  playerID.String(),
			"dice":      []int{die1, die2},
			"isDoubles": doubles,
		})

		if player.InJail {
			result.Position = player.Position
			return nil
		}

		if doubles {
			room.DoublesCount++
			if room.DoublesCount >= MaxDoublesBeforeJail {
				player.SendToJail()
				room.DoublesCount = 0
				result.Position = player.Position
				result.SentToJail = true
				room.emit(EventPlayerJailed, map[string]any{
					"playerId": playerID.String(),
					"reason":   "three consecutive doubles",
				})
				return nil
			}
		}

		oldPosition := player.Position
		player.MoveTo(oldPosition + die1 + die2)
		if PassedGo(oldPosition, player.Position) {
			player.AddMoney(GoSalary)
			result.PassedGo = true
		}
		result.Position = player.Position

		room.emit(EventPlayerMoved, map[string]any{
			"playerId":    playerID.String(),
			"newPosition": player.Position,
			"money":       player.Money,
		})

		e.handleLanding(room, player)
		return nil
	})
	if err != nil {
		return RollResult{}, err
	}
	result.Events = events
	return result, nil
}

// handleLanding dispatches resolution for the space the player stopped on.
// Chance and community chest draws are separate explicit operations.
func (e *Engine) handleLanding(room *Room, player *Player) {
	space := &room.Board[player.Position]
	switch space.Kind {
	case SpaceProperty, SpaceRailroad, SpaceUtility:
		e.collectRent(room, player, space)
	case SpaceTax:
		if player.SubtractMoney(space.TaxAmount) {
			room.emit(EventTaxPaid, map[string]any{
				"playerId": player.ID.String(),
				"amount":   space.TaxAmount,
			})
		} else {
			e.handleInsufficientFunds(room, player, space.TaxAmount, nil, "tax payment")
		}
	case SpaceCorner:
		if space.Position == GoToJailPosition {
			player.SendToJail()
			room.emit(EventPlayerJailed, map[string]any{
				"playerId": player.ID.String(),
				"reason":   "go to jail space",
			})
		}
	case SpaceChance, SpaceCommunityChest:
		// Drawing is a separate player action.
	}
}

// collectRent charges the lander if the space is owned by someone else.
func (e *Engine) collectRent(room *Room, player *Player, space *BoardSpace) {
	if space.Owner == uuid.Nil || space.Owner == player.ID {
		return
	}
	owner := room.PlayerByID(space.Owner)
	if owner == nil {
		return
	}
	rent := space.Rent(RentContext{
		DiceTotal:      room.LastDiceRoll[0] + room.LastDiceRoll[1],
		OwnerMonopoly:  owner.OwnsMonopoly(space.Group),
		OwnerRailroads: owner.GroupCount(ColorRailroad),
		OwnerUtilities: owner.GroupCount(ColorUtility),
	})
	if rent == 0 {
		return
	}
	if player.SubtractMoney(rent) {
		owner.AddMoney(rent)
		room.emit(EventRentPaid, map[string]any{
			"playerId": player.ID.String(),
			"ownerId":  owner.ID.String(),
			"position": space.Position,
			"amount":   rent,
		})
	} else {
		e.handleInsufficientFunds(room, player, rent, owner, "rent payment")
	}
}

// EndTurn rotates the turn unless the roller is owed a doubles re-roll.
func (e *Engine) EndTurn(roomID, playerID uuid.UUID) ([]Event, error) {
	return e.withRoom(roomID, func(room *Room) error {
		if room.CurrentPlayer() == nil || room.CurrentPlayer().ID != playerID {
			return ErrNotPlayerTurn
		}

		// A live doubles streak keeps the turn with the same player.
		if room.DoublesCount > 0 && room.LastDiceRoll[0] == room.LastDiceRoll[1] {
			return nil
		}

		room.advanceToNextPlayer()
		room.emit(EventTurnChanged, map[string]any{
			"currentPlayerId": room.CurrentPlayer().ID.String(),
		})
		checkGameOver(room)
		return nil
	})
}

// JailRollResult reports a jail escape attempt.
type JailRollResult struct {
	Dice     [2]int
	Released bool
	Events   []Event
}

// RollForJail attempts to leave jail by rolling doubles. The third failed
// attempt forces the fine, falling back to debt resolution when the player
// cannot cover it.
func (e *Engine) RollForJail(roomID, playerID uuid.UUID) (JailRollResult, error) {
	var result JailRollResult
	events, err := e.withRoom(roomID, func(room *Room) error {
		player, err := e.playerInRoom(room, playerID)
		if err != nil {
			return err
		}
		if !player.InJail {
			return ErrNotInJail
		}

		die1, die2 := e.roll()
		room.LastDiceRoll = [2]int{die1, die2}
		result.Dice = room.LastDiceRoll

		room.emit(EventDiceRolled, map[string]any{
			"playerId":  playerID.String(),
			"dice":      []int{die1, die2},
			"isDoubles": die1 == die2,
		})

		if die1 == die2 {
			player.ReleaseFromJail()
			player.MoveTo(player.Position + die1 + die2)
			result.Released = true
			room.emit(EventPlayerReleasedJail, map[string]any{
				"playerId": playerID.String(),
				"by":       "doubles",
			})
			room.emit(EventPlayerMoved, map[string]any{
				"playerId":    playerID.String(),
				"newPosition": player.Position,
				"money":       player.Money,
			})
			return nil
		}

		player.JailTurns++
		if player.JailTurns >= MaxJailTurns {
			if player.SubtractMoney(JailFine) {
				player.ReleaseFromJail()
				result.Released = true
				room.emit(EventPlayerReleasedJail, map[string]any{
					"playerId": playerID.String(),
					"by":       "forced fine",
				})
			} else {
				e.handleInsufficientFunds(room, player, JailFine, nil, "jail fine")
			}
		}
		return nil
	})
	if err != nil {
		return JailRollResult{}, err
	}
	result.Events = events
	return result, nil
}

// PayJailFine buys immediate release.
func (e *Engine) PayJailFine(roomID, playerID uuid.UUID) ([]Event, error) {
	return e.withRoom(roomID, func(room *Room) error {
		player, err := e.playerInRoom(room, playerID)
		if err != nil {
			return err
		}
		if !player.InJail {
			return ErrNotInJail
		}
		if !player.SubtractMoney(JailFine) {
			return ErrInsufficientFunds
		}
		player.ReleaseFromJail()
		room.emit(EventPlayerReleasedJail, map[string]any{
			"playerId": playerID.String(),
			"by":       "fine",
		})
		return nil
	})
}

// UseGetOutOfJailCard spends a held card for immediate release.
func (e *Engine) UseGetOutOfJailCard(roomID, playerID uuid.UUID) ([]Event, error) {
	return e.withRoom(roomID, func(room *Room) error {
		player, err := e.playerInRoom(room, playerID)
		if err != nil {
			return err
		}
		if !player.InJail {
			return ErrNotInJail
		}
		if player.GetOutOfJailCards == 0 {
			return ErrNoJailCard
		}
		player.GetOutOfJailCards--
		player.ReleaseFromJail()
		room.emit(EventPlayerReleasedJail, map[string]any{
			"playerId": playerID.String(),
			"by":       "card",
		})
		return nil
	})
}
