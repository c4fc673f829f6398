package game

import (
	"github.com/google/uuid"
)

// BuyProperty sells an unowned ownable space to the player at list price.
// The auction settlement path bypasses this and debits the bid instead.
func (e *Engine) BuyProperty(roomID, playerID uuid.UUID, position int) ([]Event, error) {
	return e.withRoom(roomID, func(room *Room) error {
		player, err := e.playerInRoom(room, playerID)
		if err != nil {
			return err
		}
		return e.buyAt(room, player, position, 0)
	})
}

// buyAt assigns ownership of position to player, debiting price. A price
// of 0 means list price. Callers hold the room lock.
func (e *Engine) buyAt(room *Room, player *Player, position, price int) error {
	space := &room.Board[position]
	if !space.Ownable() {
		return ErrInvalidSpace
	}
	if space.Owner != uuid.Nil {
		return ErrAlreadyOwned
	}
	if price == 0 {
		price = space.PurchasePrice
	}
	if !player.SubtractMoney(price) {
		return ErrInsufficientFunds
	}
	space.Owner = player.ID
	player.AddHolding(position, space.Group)
	room.emit(EventPropertyBought, map[string]any{
		"playerId": player.ID.String(),
		"position": position,
		"price":    price,
		"money":    player.Money,
	})
	return nil
}

// DeclineProperty forfeits the purchase option and opens an auction.
func (e *Engine) DeclineProperty(roomID, playerID uuid.UUID, position int) ([]Event, error) {
	return e.StartAuction(roomID, position)
}

// BuildHouse adds one house to a monopoly property, consuming one bank
// house. The reservation is rolled back if the cash debit fails.
func (e *Engine) BuildHouse(roomID, playerID uuid.UUID, position int) ([]Event, error) {
	return e.withRoom(roomID, func(room *Room) error {
		player, err := e.playerInRoom(room, playerID)
		if err != nil {
			return err
		}
		space := &room.Board[position]
		if space.Kind != SpaceProperty {
			return ErrInvalidSpace
		}
		if space.Owner != playerID {
			return ErrNotOwner
		}
		if !player.OwnsMonopoly(space.Group) {
			return ErrNoMonopoly
		}
		if !space.CanBuildHouse() {
			return ErrBuildLimit
		}
		if !room.useHouse() {
			return ErrNoInventory
		}
		if !player.SubtractMoney(space.HouseCost) {
			room.returnHouse()
			return ErrInsufficientFunds
		}
		space.Houses++
		player.TotalHouses++
		room.emit(EventHouseBuilt, map[string]any{
			"playerId":    playerID.String(),
			"position":    position,
			"housesBuilt": space.Houses,
		})
		return nil
	})
}

// BuildHotel upgrades four houses into a hotel: one hotel leaves the bank,
// the four houses return to it, atomically with the cash debit.
func (e *Engine) BuildHotel(roomID, playerID uuid.UUID, position int) ([]Event, error) {
	return e.withRoom(roomID, func(room *Room) error {
		player, err := e.playerInRoom(room, playerID)
		if err != nil {
			return err
		}
		space := &room.Board[position]
		if space.Kind != SpaceProperty {
			return ErrInvalidSpace
		}
		if space.Owner != playerID {
			return ErrNotOwner
		}
		if !space.CanBuildHotel() {
			return ErrBuildLimit
		}
		if !room.useHotel() {
			return ErrNoInventory
		}
		if !player.SubtractMoney(space.HotelCost) {
			room.returnHotel()
			return ErrInsufficientFunds
		}
		space.Hotel = true
		space.Houses = 0
		for i := 0; i < HousesBeforeHotel; i++ {
			room.returnHouse()
		}
		player.TotalHouses -= HousesBeforeHotel
		player.TotalHotels++
		room.emit(EventHotelBuilt, map[string]any{
			"playerId": playerID.String(),
			"position": position,
		})
		return nil
	})
}

// SellHouse refunds half the build cost and returns the house to the bank.
func (e *Engine) SellHouse(roomID, playerID uuid.UUID, position int) ([]Event, error) {
	return e.withRoom(roomID, func(room *Room) error {
		player, err := e.playerInRoom(room, playerID)
		if err != nil {
			return err
		}
		return e.sellHouse(room, player, position)
	})
}

func (e *Engine) sellHouse(room *Room, player *Player, position int) error {
	space := &room.Board[position]
	if space.Kind != SpaceProperty {
		return ErrInvalidSpace
	}
	if space.Owner != player.ID {
		return ErrNotOwner
	}
	if space.Houses == 0 {
		return ErrNoBuildings
	}
	space.Houses--
	player.AddMoney(space.HouseCost / 2)
	room.returnHouse()
	player.TotalHouses--
	room.emit(EventHouseSold, map[string]any{
		"playerId":    player.ID.String(),
		"position":    position,
		"housesBuilt": space.Houses,
	})
	return nil
}

// SellHotel removes the hotel outright for half its cost. The hotel goes
// back to the bank whole; it never converts into four houses.
func (e *Engine) SellHotel(roomID, playerID uuid.UUID, position int) ([]Event, error) {
	return e.withRoom(roomID, func(room *Room) error {
		player, err := e.playerInRoom(room, playerID)
		if err != nil {
			return err
		}
		return e.sellHotel(room, player, position)
	})
}

func (e *Engine) sellHotel(room *Room, player *Player, position int) error {
	space := &room.Board[position]
	if space.Kind != SpaceProperty {
		return ErrInvalidSpace
	}
	if space.Owner != player.ID {
		return ErrNotOwner
	}
	if !space.Hotel {
		return ErrNoBuildings
	}
	space.Hotel = false
	space.Houses = 0
	player.AddMoney(space.HotelCost / 2)
	room.returnHotel()
	player.TotalHotels--
	room.emit(EventHotelSold, map[string]any{
		"playerId": player.ID.String(),
		"position": position,
	})
	return nil
}

// MortgageProperty encumbers a building-free holding for immediate cash.
func (e *Engine) MortgageProperty(roomID, playerID uuid.UUID, position int) ([]Event, error) {
	return e.withRoom(roomID, func(room *Room) error {
		player, err := e.playerInRoom(room, playerID)
		if err != nil {
			return err
		}
		return e.mortgage(room, player, position)
	})
}

func (e *Engine) mortgage(room *Room, player *Player, position int) error {
	space := &room.Board[position]
	if !space.Ownable() {
		return ErrInvalidSpace
	}
	if space.Owner != player.ID {
		return ErrNotOwner
	}
	if space.Mortgaged {
		return ErrMortgaged
	}
	if !space.CanMortgage() {
		return ErrBuildingsPresent
	}
	space.Mortgaged = true
	player.AddMoney(space.MortgageValue)
	room.emit(EventPropertyMortgaged, map[string]any{
		"playerId": player.ID.String(),
		"position": position,
		"money":    player.Money,
	})
	return nil
}

// UnmortgageProperty lifts a mortgage at a 10% premium, truncated.
func (e *Engine) UnmortgageProperty(roomID, playerID uuid.UUID, position int) ([]Event, error) {
	return e.withRoom(roomID, func(room *Room) error {
		player, err := e.playerInRoom(room, playerID)
		if err != nil {
			return err
		}
		space := &room.Board[position]
		if !space.Ownable() {
			return ErrInvalidSpace
		}
		if space.Owner != playerID {
			return ErrNotOwner
		}
		if !space.Mortgaged {
			return ErrNotMortgaged
		}
		cost := int(float64(space.MortgageValue) * UnmortgageRate)
		if !player.SubtractMoney(cost) {
			return ErrInsufficientFunds
		}
		space.Mortgaged = false
		room.emit(EventPropertyUnmortgaged, map[string]any{
			"playerId": playerID.String(),
			"position": position,
			"money":    player.Money,
		})
		return nil
	})
}
