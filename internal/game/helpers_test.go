package game

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// stubStore serves a single room to the engine under test.
type stubStore struct {
	room *Room
}

func (s stubStore) Room(id uuid.UUID) (*Room, error) {
	if s.room != nil && s.room.ID == id {
		return s.room, nil
	}
	return nil, ErrRoomNotFound
}

func newTestEngine(t *testing.T, names ...string) (*Engine, *Room, []*Player) {
	t.Helper()
	room := NewRoom("test room")
	players := make([]*Player, 0, len(names))
	for _, name := range names {
		p, err := room.AddPlayer(name)
		require.NoError(t, err)
		players = append(players, p)
	}
	engine := NewEngine(stubStore{room: room}, zaptest.NewLogger(t))
	return engine, room, players
}

func startGame(t *testing.T, engine *Engine, room *Room) {
	t.Helper()
	_, err := engine.InitializeGame(room.ID)
	require.NoError(t, err)
	_, err = engine.StartGame(room.ID)
	require.NoError(t, err)
}

// fixDice pins the next rolls to a constant pair.
func fixDice(engine *Engine, die1, die2 int) {
	engine.roll = func() (int, int) { return die1, die2 }
}

// giveProperty assigns a space to a player directly, bypassing purchase.
func giveProperty(room *Room, player *Player, position int) {
	space := &room.Board[position]
	space.Owner = player.ID
	player.AddHolding(position, space.Group)
}

func hasEvent(events []Event, eventType EventType) bool {
	for _, ev := range events {
		if ev.Type == eventType {
			return true
		}
	}
	return false
}
