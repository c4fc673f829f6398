package game

import (
	"github.com/google/uuid"
)

// Validator bundles the stateless legality predicates. Every predicate
// reads a room snapshot and mutates nothing; callers are responsible for
// holding the room serialized while they act on the answer.
type Validator struct{}

// IsPlayerTurn reports whether playerID holds the turn.
func (Validator) IsPlayerTurn(room *Room, playerID uuid.UUID) bool {
	current := room.CurrentPlayer()
	return current != nil && current.ID == playerID
}

// CanRollDice requires an in-progress game and the acting player's turn.
func (v Validator) CanRollDice(room *Room, playerID uuid.UUID) bool {
	if room.Phase != PhaseInProgress {
		return false
	}
	return v.IsPlayerTurn(room, playerID)
}

// CanBuyProperty requires the player to stand on an unowned ownable space
// they can afford.
func (Validator) CanBuyProperty(room *Room, playerID uuid.UUID, position int) bool {
	player := room.PlayerByID(playerID)
	if player == nil || player.Position != position {
		return false
	}
	space := &room.Board[position]
	if !space.Ownable() {
		return false
	}
	return space.Owner == uuid.Nil && player.Money >= space.PurchasePrice
}

// CanBuildHouse checks ownership, monopoly, building room, affordability
// and bank inventory.
func (Validator) CanBuildHouse(room *Room, playerID uuid.UUID, position int) bool {
	space := &room.Board[position]
	if space.Kind != SpaceProperty {
		return false
	}
	player := room.PlayerByID(playerID)
	if player == nil {
		return false
	}
	return space.Owner == playerID &&
		player.OwnsMonopoly(space.Group) &&
		space.CanBuildHouse() &&
		player.Money >= space.HouseCost &&
		room.HousesRemaining() > 0
}

// CanBuildHotel checks ownership, the four-house prerequisite,
// affordability and bank inventory.
func (Validator) CanBuildHotel(room *Room, playerID uuid.UUID, position int) bool {
	space := &room.Board[position]
	if space.Kind != SpaceProperty {
		return false
	}
	player := room.PlayerByID(playerID)
	if player == nil {
		return false
	}
	return space.Owner == playerID &&
		space.CanBuildHotel() &&
		player.Money >= space.HotelCost &&
		room.HotelsRemaining() > 0
}

// CanMortgage reports whether the space may be mortgaged by the player now.
func (Validator) CanMortgage(room *Room, playerID uuid.UUID, position int) bool {
	space := &room.Board[position]
	return space.Ownable() && space.Owner == playerID && space.CanMortgage()
}

// CanTrade requires a known, solvent player.
func (Validator) CanTrade(room *Room, playerID uuid.UUID) bool {
	player := room.PlayerByID(playerID)
	return player != nil && !player.Bankrupt
}

// CanPlaceBid requires an active auction, a solvent player who can cover
// the amount, and a strictly higher bid.
func (Validator) CanPlaceBid(room *Room, playerID uuid.UUID, amount int) bool {
	auction := room.CurrentAuction
	if auction == nil || !auction.Active {
		return false
	}
	player := room.PlayerByID(playerID)
	return player != nil &&
		!player.Bankrupt &&
		player.Money >= amount &&
		amount > auction.HighestBid
}
