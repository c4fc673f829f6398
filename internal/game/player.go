package game

import "github.com/google/uuid"

// Player is one participant in a room. Money only moves through AddMoney
// and SubtractMoney so the balance can never go implicitly negative.
type Player struct {
	ID       uuid.UUID
	Name     string
	Position int // 0-39, wraps modulo BoardSize
	Money    int

	Owned []int // board positions, in acquisition order

	InJail            bool
	JailTurns         int
	GetOutOfJailCards int

	Bankrupt bool

	// Running totals used by PAY_PER_HOUSE_HOTEL cards.
	TotalHouses int
	TotalHotels int

	groupCounts map[ColorGroup]int
}

// NewPlayer creates a player waiting in the lobby. Starting cash and
// position are assigned by InitializeGame.
func NewPlayer(name string) *Player {
	return &Player{
		ID:          uuid.New(),
		Name:        name,
		groupCounts: make(map[ColorGroup]int),
	}
}

// AddMoney credits the player.
func (p *Player) AddMoney(amount int) {
	p.Money += amount
}

// SubtractMoney debits the player only if the full amount is covered.
// It reports whether the debit happened.
func (p *Player) SubtractMoney(amount int) bool {
	if p.Money < amount {
		return false
	}
	p.Money -= amount
	return true
}

// MoveTo places the player at position, wrapping around the board.
func (p *Player) MoveTo(position int) {
	p.Position = ((position % BoardSize) + BoardSize) % BoardSize
}

// PassedGo is the pass-GO heuristic: a wrap around the board, or a forward
// jump of more than 12 spaces. The second branch can only fire on
// card-driven jumps; ordinary dice top out at 12.
func PassedGo(oldPosition, newPosition int) bool {
	return newPosition < oldPosition || newPosition-oldPosition > 12
}

// SendToJail moves the player to the jail space and starts the jail clock.
func (p *Player) SendToJail() {
	p.Position = JailPosition
	p.InJail = true
	p.JailTurns = 0
}

// ReleaseFromJail clears the jail state without moving the player.
func (p *Player) ReleaseFromJail() {
	p.InJail = false
	p.JailTurns = 0
}

// AddHolding records ownership of a board position.
func (p *Player) AddHolding(position int, group ColorGroup) {
	p.Owned = append(p.Owned, position)
	p.groupCounts[group]++
}

// RemoveHolding drops ownership of a board position.
func (p *Player) RemoveHolding(position int, group ColorGroup) {
	for i, pos := range p.Owned {
		if pos == position {
			p.Owned = append(p.Owned[:i], p.Owned[i+1:]...)
			break
		}
	}
	if p.groupCounts[group] > 1 {
		p.groupCounts[group]--
	} else {
		delete(p.groupCounts, group)
	}
}

// GroupCount returns how many spaces of the group the player owns.
func (p *Player) GroupCount(group ColorGroup) int {
	return p.groupCounts[group]
}

// OwnsMonopoly reports whether the player holds every space in the group.
func (p *Player) OwnsMonopoly(group ColorGroup) bool {
	size := group.Size()
	return size > 0 && p.groupCounts[group] == size
}

// NetWorth is cash plus the unmortgaged purchase prices of owned spaces
// plus buildings at full replacement cost. Used to decide whether a debt
// is survivable through liquidation.
func (p *Player) NetWorth(board []BoardSpace) int {
	worth := p.Money
	for _, pos := range p.Owned {
		space := &board[pos]
		if !space.Mortgaged {
			worth += space.PurchasePrice
		}
		if space.Kind == SpaceProperty {
			worth += space.Houses * space.HouseCost
			if space.Hotel {
				worth += space.HotelCost
			}
		}
	}
	return worth
}

// DeclareBankruptcy marks the player out of the game and zeroes their cash.
func (p *Player) DeclareBankruptcy() {
	p.Bankrupt = true
	p.Money = 0
}
