package game

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuyProperty(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)

	events, err := engine.BuyProperty(room.ID, players[0].ID, 1)
	require.NoError(t, err)

	assert.Equal(t, StartingMoney-60, players[0].Money)
	assert.Equal(t, players[0].ID, room.Board[1].Owner)
	assert.Equal(t, []int{1}, players[0].Owned)
	assert.True(t, hasEvent(events, EventPropertyBought))
}

func TestBuyPropertyRejections(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)

	_, err := engine.BuyProperty(room.ID, players[0].ID, GoPosition)
	assert.ErrorIs(t, err, ErrInvalidSpace)

	giveProperty(room, players[1], 1)
	_, err = engine.BuyProperty(room.ID, players[0].ID, 1)
	assert.ErrorIs(t, err, ErrAlreadyOwned)

	players[0].Money = 50
	_, err = engine.BuyProperty(room.ID, players[0].ID, 3)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 50, players[0].Money)
	assert.Equal(t, uuid.Nil, room.Board[3].Owner)
}

func TestDeclinePropertyOpensAuction(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)

	events, err := engine.DeclineProperty(room.ID, players[0].ID, 1)
	require.NoError(t, err)

	require.NotNil(t, room.CurrentAuction)
	assert.True(t, room.CurrentAuction.Active)
	assert.Equal(t, 1, room.CurrentAuction.Position)
	assert.True(t, hasEvent(events, EventAuctionStarted))
}

func TestBuildHouse(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	giveProperty(room, players[0], 1)
	giveProperty(room, players[0], 3)

	events, err := engine.BuildHouse(room.ID, players[0].ID, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, room.Board[1].Houses)
	assert.Equal(t, StartingMoney-50, players[0].Money)
	assert.Equal(t, 1, players[0].TotalHouses)
	assert.Equal(t, MaxHouses-1, room.HousesRemaining())
	assert.True(t, hasEvent(events, EventHouseBuilt))
}

func TestBuildHouseRequiresMonopoly(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	giveProperty(room, players[0], 1)

	_, err := engine.BuildHouse(room.ID, players[0].ID, 1)
	assert.ErrorIs(t, err, ErrNoMonopoly)
}

func TestBuildHouseRollsBackInventoryOnFailedDebit(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	giveProperty(room, players[0], 1)
	giveProperty(room, players[0], 3)
	players[0].Money = 10

	_, err := engine.BuildHouse(room.ID, players[0].ID, 1)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, MaxHouses, room.HousesRemaining())
	assert.Zero(t, room.Board[1].Houses)
}

func TestBuildHouseExhaustedInventory(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	giveProperty(room, players[0], 1)
	giveProperty(room, players[0], 3)
	room.housesRemaining = 0

	_, err := engine.BuildHouse(room.ID, players[0].ID, 1)
	assert.ErrorIs(t, err, ErrNoInventory)
}

func TestBuildHotelSwapsInventoryAtomically(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	giveProperty(room, players[0], 1)
	giveProperty(room, players[0], 3)

	for i := 0; i < 4; i++ {
		_, err := engine.BuildHouse(room.ID, players[0].ID, 1)
		require.NoError(t, err)
	}
	require.Equal(t, MaxHouses-4, room.HousesRemaining())

	events, err := engine.BuildHotel(room.ID, players[0].ID, 1)
	require.NoError(t, err)

	assert.True(t, room.Board[1].Hotel)
	assert.Zero(t, room.Board[1].Houses)
	assert.Equal(t, MaxHouses, room.HousesRemaining(), "the four houses return to the bank")
	assert.Equal(t, MaxHotels-1, room.HotelsRemaining())
	assert.Zero(t, players[0].TotalHouses)
	assert.Equal(t, 1, players[0].TotalHotels)
	assert.True(t, hasEvent(events, EventHotelBuilt))
}

func TestBuildHotelRollsBackOnFailedDebit(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	giveProperty(room, players[0], 1)
	giveProperty(room, players[0], 3)
	room.Board[1].Houses = 4
	players[0].TotalHouses = 4
	players[0].Money = 10

	_, err := engine.BuildHotel(room.ID, players[0].ID, 1)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, MaxHotels, room.HotelsRemaining())
	assert.False(t, room.Board[1].Hotel)
	assert.Equal(t, 4, room.Board[1].Houses)
}

func TestBuildHotelRequiresFourHouses(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	giveProperty(room, players[0], 1)
	giveProperty(room, players[0], 3)
	room.Board[1].Houses = 3

	_, err := engine.BuildHotel(room.ID, players[0].ID, 1)
	assert.ErrorIs(t, err, ErrBuildLimit)
}

func TestSellHouseRefundsHalf(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	giveProperty(room, players[0], 1)
	giveProperty(room, players[0], 3)
	_, err := engine.BuildHouse(room.ID, players[0].ID, 1)
	require.NoError(t, err)
	moneyAfterBuild := players[0].Money

	events, err := engine.SellHouse(room.ID, players[0].ID, 1)
	require.NoError(t, err)

	assert.Zero(t, room.Board[1].Houses)
	assert.Equal(t, moneyAfterBuild+25, players[0].Money)
	assert.Equal(t, MaxHouses, room.HousesRemaining())
	assert.Zero(t, players[0].TotalHouses)
	assert.True(t, hasEvent(events, EventHouseSold))
}

func TestSellHotelReturnsWhole(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	giveProperty(room, players[0], 1)
	giveProperty(room, players[0], 3)
	room.Board[1].Hotel = true
	room.hotelsRemaining = MaxHotels - 1
	players[0].TotalHotels = 1
	before := players[0].Money

	events, err := engine.SellHotel(room.ID, players[0].ID, 1)
	require.NoError(t, err)

	assert.False(t, room.Board[1].Hotel)
	assert.Zero(t, room.Board[1].Houses)
	assert.Equal(t, before+25, players[0].Money)
	assert.Equal(t, MaxHotels, room.HotelsRemaining())
	assert.Zero(t, players[0].TotalHotels)
	assert.True(t, hasEvent(events, EventHotelSold))
}

func TestSellWithNothingBuilt(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	giveProperty(room, players[0], 1)

	_, err := engine.SellHouse(room.ID, players[0].ID, 1)
	assert.ErrorIs(t, err, ErrNoBuildings)
	_, err = engine.SellHotel(room.ID, players[0].ID, 1)
	assert.ErrorIs(t, err, ErrNoBuildings)
}

func TestMortgageProperty(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	giveProperty(room, players[0], 1)

	events, err := engine.MortgageProperty(room.ID, players[0].ID, 1)
	require.NoError(t, err)

	assert.True(t, room.Board[1].Mortgaged)
	assert.Equal(t, StartingMoney+30, players[0].Money)
	assert.True(t, hasEvent(events, EventPropertyMortgaged))

	_, err = engine.MortgageProperty(room.ID, players[0].ID, 1)
	assert.ErrorIs(t, err, ErrMortgaged)
}

func TestMortgageRejectsBuildings(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	giveProperty(room, players[0], 1)
	room.Board[1].Houses = 1

	_, err := engine.MortgageProperty(room.ID, players[0].ID, 1)
	assert.ErrorIs(t, err, ErrBuildingsPresent)
}

func TestUnmortgageChargesPremium(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	giveProperty(room, players[0], 1)
	room.Board[1].Mortgaged = true

	events, err := engine.UnmortgageProperty(room.ID, players[0].ID, 1)
	require.NoError(t, err)

	// Mediterranean mortgage value 30, premium 110% truncated: 33.
	assert.False(t, room.Board[1].Mortgaged)
	assert.Equal(t, StartingMoney-33, players[0].Money)
	assert.True(t, hasEvent(events, EventPropertyUnmortgaged))

	_, err = engine.UnmortgageProperty(room.ID, players[0].ID, 1)
	assert.ErrorIs(t, err, ErrNotMortgaged)
}

func TestMortgagedPropertySkipsRentOnLanding(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	giveProperty(room, players[1], 6)
	room.Board[6].Mortgaged = true
	fixDice(engine, 2, 4)

	_, err := engine.RollDice(room.ID, players[0].ID)
	require.NoError(t, err)
	assert.Equal(t, StartingMoney, players[0].Money)
}
