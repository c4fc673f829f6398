package game

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposeAndAcceptTrade(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	giveProperty(room, players[0], 1)
	giveProperty(room, players[1], 39)

	events, err := engine.ProposeTrade(room.ID, TradeOffer{
		FromPlayerID:   players[0].ID,
		ToPlayerID:     players[1].ID,
		FromProperties: []int{1},
		FromMoney:      100,
		ToProperties:   []int{39},
	})
	require.NoError(t, err)
	require.NotNil(t, room.CurrentTrade)
	assert.True(t, hasEvent(events, EventTradeProposed))

	events, err = engine.RespondToTrade(room.ID, players[1].ID, room.CurrentTrade.ID, true)
	require.NoError(t, err)

	assert.Equal(t, players[1].ID, room.Board[1].Owner)
	assert.Equal(t, players[0].ID, room.Board[39].Owner)
	assert.Equal(t, StartingMoney-100, players[0].Money)
	assert.Equal(t, StartingMoney+100, players[1].Money)
	assert.Equal(t, []int{39}, players[0].Owned)
	assert.Equal(t, []int{1}, players[1].Owned)
	assert.Nil(t, room.CurrentTrade)
	assert.True(t, hasEvent(events, EventTradeCompleted))
}

func TestDeclineTradeChangesNothing(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)
	giveProperty(room, players[0], 1)

	_, err := engine.ProposeTrade(room.ID, TradeOffer{
		FromPlayerID:   players[0].ID,
		ToPlayerID:     players[1].ID,
		FromProperties: []int{1},
		ToMoney:        200,
	})
	require.NoError(t, err)

	events, err := engine.RespondToTrade(room.ID, players[1].ID, room.CurrentTrade.ID, false)
	require.NoError(t, err)

	assert.Equal(t, players[0].ID, room.Board[1].Owner)
	assert.Equal(t, StartingMoney, players[0].Money)
	assert.Equal(t, StartingMoney, players[1].Money)
	assert.Nil(t, room.CurrentTrade)
	assert.True(t, hasEvent(events, EventTradeDeclined))
}

func TestOnlyOnePendingTrade(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)

	offer := TradeOffer{FromPlayerID: players[0].ID, ToPlayerID: players[1].ID, FromMoney: 10}
	_, err := engine.ProposeTrade(room.ID, offer)
	require.NoError(t, err)

	_, err = engine.ProposeTrade(room.ID, offer)
	assert.ErrorIs(t, err, ErrTradePending)
}

func TestRespondToTradeGuards(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob", "carol")
	startGame(t, engine, room)

	_, err := engine.RespondToTrade(room.ID, players[1].ID, uuid.New(), true)
	assert.ErrorIs(t, err, ErrNoActiveTrade)

	_, err = engine.ProposeTrade(room.ID, TradeOffer{FromPlayerID: players[0].ID, ToPlayerID: players[1].ID, FromMoney: 10})
	require.NoError(t, err)

	_, err = engine.RespondToTrade(room.ID, players[2].ID, room.CurrentTrade.ID, true)
	assert.ErrorIs(t, err, ErrNotYourTrade)
	assert.NotNil(t, room.CurrentTrade, "a third party cannot clear the trade")
}

func TestProposeTradeRequiresKnownPlayers(t *testing.T) {
	engine, room, players := newTestEngine(t, "alice", "bob")
	startGame(t, engine, room)

	_, err := engine.ProposeTrade(room.ID, TradeOffer{FromPlayerID: players[0].ID, ToPlayerID: uuid.New()})
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}
