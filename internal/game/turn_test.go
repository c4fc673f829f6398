package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollDiceMovesPlayer(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	fixDice(engine, 3, 4)

	result, err := engine.RollDice(room.ID, players[0].ID)
	require.NoError(t, err)

	assert.Equal(t, [2]int{3, 4}, result.Dice)
	assert.False(t, result.Doubles)
	assert.Equal(t, 7, result.Position)
	assert.Equal(t, 7, players[0].Position)
	assert.True(t, hasEvent(result.Events, EventDiceRolled))
	assert.True(t, hasEvent(result.Events, EventPlayerMoved))
}

func TestRollDiceRejectsOutOfTurn(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	fixDice(engine, 3, 4)

	_, err := engine.RollDice(room.ID, players[1].ID)
	assert.ErrorIs(t, err, ErrNotPlayerTurn)
}

func TestRollDiceRejectsLobby(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")

	_, err := engine.RollDice(room.ID, players[0].ID)
	assert.ErrorIs(t, err, ErrWrongPhase)
}

func TestRollDicePaysSalaryOnWrap(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	players[0].Position = 38
	fixDice(engine, 1, 3)

	result, err := engine.RollDice(room.ID, players[0].ID)
	require.NoError(t, err)

	assert.True(t, result.PassedGo)
	assert.Equal(t, 2, result.Position)
	assert.Equal(t, StartingMoney+GoSalary, players[0].Money)
}

func TestThreeDoublesSendsToJail(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	fixDice(engine, 2, 2)

	for i := 0; i < 2; i++ {
		result, err := engine.RollDice(room.ID, players[0].ID)
		require.NoError(t, err)
		assert.False(t, result.SentToJail)
	}

	startPos := players[0].Position
	result, err := engine.RollDice(room.ID, players[0].ID)
	require.NoError(t, err)

	assert.True(t, result.SentToJail)
	assert.True(t, players[0].InJail)
	assert.Equal(t, JailPosition, players[0].Position)
	assert.NotEqual(t, startPos+4, players[0].Position, "third doubles must not move the token")
	assert.Zero(t, room.DoublesCount)
	assert.True(t, hasEvent(result.Events, EventPlayerJailed))
}

func TestRollDiceInJailDoesNotMove(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	players[0].SendToJail()
	fixDice(engine, 3, 4)

	result, err := engine.RollDice(room.ID, players[0].ID)
	require.NoError(t, err)
	assert.Equal(t, JailPosition, result.Position)
	assert.Equal(t, JailPosition, players[0].Position)
}

func TestLandingOnTax(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	fixDice(engine, 1, 3) // Income Tax at 4

	result, err := engine.RollDice(room.ID, players[0].ID)
	require.NoError(t, err)

	assert.Equal(t, StartingMoney-200, players[0].Money)
	assert.True(t, hasEvent(result.Events, EventTaxPaid))
}

func TestLandingOnGoToJail(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	players[0].Position = 27
	fixDice(engine, 1, 2)

	result, err := engine.RollDice(room.ID, players[0].ID)
	require.NoError(t, err)

	assert.True(t, players[0].InJail)
	assert.Equal(t, JailPosition, players[0].Position)
	assert.True(t, hasEvent(result.Events, EventPlayerJailed))
}

func TestLandingOnOwnedPropertyPaysRent(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	giveProperty(room, players[1], 6) // Oriental Avenue, rent 6
	fixDice(engine, 2, 4)

	result, err := engine.RollDice(room.ID, players[0].ID)
	require.NoError(t, err)

	assert.Equal(t, StartingMoney-6, players[0].Money)
	assert.Equal(t, StartingMoney+6, players[1].Money)
	assert.True(t, hasEvent(result.Events, EventRentPaid))
}

func TestMonopolyDoublesUnimprovedRent(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	giveProperty(room, players[1], 16)
	giveProperty(room, players[1], 18)
	giveProperty(room, players[1], 19) // full orange set
	players[0].Position = 10
	fixDice(engine, 2, 4) // lands on St. James Place, base rent 14

	_, err := engine.RollDice(room.ID, players[0].ID)
	require.NoError(t, err)

	assert.Equal(t, StartingMoney-28, players[0].Money)
	assert.Equal(t, StartingMoney+28, players[1].Money)
}

func TestLandingOnOwnSpaceChargesNothing(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	giveProperty(room, players[0], 6)
	fixDice(engine, 2, 4)

	_, err := engine.RollDice(room.ID, players[0].ID)
	require.NoError(t, err)
	assert.Equal(t, StartingMoney, players[0].Money)
}

func TestEndTurnRotates(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob", "carol")
	startGame(t, engine, room)
	fixDice(engine, 3, 4)
	_, err := engine.RollDice(room.ID, players[0].ID)
	require.NoError(t, err)

	events, err := engine.EndTurn(room.ID, players[0].ID)
	require.NoError(t, err)
	assert.True(t, hasEvent(events, EventTurnChanged))
	assert.Equal(t, players[1].ID, room.CurrentPlayer().ID)
}

func TestEndTurnKeepsTurnAfterDoubles(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	fixDice(engine, 3, 3)
	_, err := engine.RollDice(room.ID, players[0].ID)
	require.NoError(t, err)

	events, err := engine.EndTurn(room.ID, players[0].ID)
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, players[0].ID, room.CurrentPlayer().ID)
}

func TestTurnRotationSkipsBankrupt(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob", "carol")
	startGame(t, engine, room)
	players[1].Bankrupt = true
	fixDice(engine, 3, 4)
	_, err := engine.RollDice(room.ID, players[0].ID)
	require.NoError(t, err)

	_, err = engine.EndTurn(room.ID, players[0].ID)
	require.NoError(t, err)
	assert.Equal(t, players[2].ID, room.CurrentPlayer().ID)
}

func TestRollForJailDoublesReleasesAndMoves(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	players[0].SendToJail()
	fixDice(engine, 4, 4)

	result, err := engine.RollForJail(room.ID, players[0].ID)
	require.NoError(t, err)

	assert.True(t, result.Released)
	assert.False(t, players[0].InJail)
	assert.Equal(t, 18, players[0].Position)
	assert.Equal(t, StartingMoney, players[0].Money, "jail release movement pays no salary")
	assert.True(t, hasEvent(result.Events, EventPlayerReleasedJail))
}

func TestRollForJailThirdFailureForcesFine(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	players[0].SendToJail()
	fixDice(engine, 2, 5)

	for i := 0; i < 2; i++ {
		result, err := engine.RollForJail(room.ID, players[0].ID)
		require.NoError(t, err)
		assert.False(t, result.Released)
	}

	result, err := engine.RollForJail(room.ID, players[0].ID)
	require.NoError(t, err)
	assert.True(t, result.Released)
	assert.Equal(t, StartingMoney-JailFine, players[0].Money)
	assert.Equal(t, JailPosition, players[0].Position)
}

func TestRollForJailRequiresJail(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)

	_, err := engine.RollForJail(room.ID, players[0].ID)
	assert.ErrorIs(t, err, ErrNotInJail)
}

func TestPayJailFine(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	players[0].SendToJail()

	events, err := engine.PayJailFine(room.ID, players[0].ID)
	require.NoError(t, err)
	assert.False(t, players[0].InJail)
	assert.Equal(t, StartingMoney-JailFine, players[0].Money)
	assert.True(t, hasEvent(events, EventPlayerReleasedJail))
}

func TestPayJailFineInsufficientFunds(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	players[0].SendToJail()
	players[0].Money = JailFine - 1

	_, err := engine.PayJailFine(room.ID, players[0].ID)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.True(t, players[0].InJail)
}

func TestUseGetOutOfJailCard(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	players[0].SendToJail()
	players[0].GetOutOfJailCards = 1

	_, err := engine.UseGetOutOfJailCard(room.ID, players[0].ID)
	require.NoError(t, err)
	assert.False(t, players[0].InJail)
	assert.Zero(t, players[0].GetOutOfJailCards)
	assert.Equal(t, StartingMoney, players[0].Money)

	players[0].SendToJail()
	_, err = engine.UseGetOutOfJailCard(room.ID, players[0].ID)
	assert.ErrorIs(t, err, ErrNoJailCard)
}
