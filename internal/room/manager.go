// Package room provides the concurrency-safe room registry. The registry
// protects only lookup and creation; in-room invariants are protected by
// the rooms themselves under the engine's single-writer discipline.
package room

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/boardwalk-games/monopoly-server-go/internal/game"
)

// Summary is the lobby-listing view of a room.
type Summary struct {
	RoomID      string `json:"roomId"`
	Name        string `json:"name"`
	Phase       string `json:"phase"`
	PlayerCount int    `json:"playerCount"`
}

// Manager owns every live room in this process.
type Manager struct {
	logger *zap.Logger

	mu    sync.RWMutex
	rooms map[uuid.UUID]*game.Room
}

// NewManager creates an empty registry.
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		logger: logger,
		rooms:  make(map[uuid.UUID]*game.Room),
	}
}

// CreateRoom registers a fresh lobby.
func (m *Manager) CreateRoom(name string) *game.Room {
	room := game.NewRoom(name)

	m.mu.Lock()
	m.rooms[room.ID] = room
	m.mu.Unlock()

	m.logger.Info("room created",
		zap.String("room_id", room.ID.String()),
		zap.String("name", name),
	)
	return room
}

// Room returns the room or game.ErrRoomNotFound. Implements game.RoomStore.
func (m *Manager) Room(roomID uuid.UUID) (*game.Room, error) {
	m.mu.RLock()
	room, ok := m.rooms[roomID]
	m.mu.RUnlock()
	if !ok {
		return nil, game.ErrRoomNotFound
	}
	return room, nil
}

// JoinRoom adds a lobby player to the room.
func (m *Manager) JoinRoom(roomID uuid.UUID, playerName string) (*game.Player, error) {
	room, err := m.Room(roomID)
	if err != nil {
		return nil, err
	}
	player, err := room.AddPlayer(playerName)
	if err != nil {
		return nil, err
	}
	m.logger.Info("player joined",
		zap.String("room_id", roomID.String()),
		zap.String("player_id", player.ID.String()),
		zap.String("name", playerName),
	)
	return player, nil
}

// LeaveRoom removes a lobby player.
func (m *Manager) LeaveRoom(roomID, playerID uuid.UUID) error {
	room, err := m.Room(roomID)
	if err != nil {
		return err
	}
	room.RemovePlayer(playerID)
	return nil
}

// DeleteRoom drops the room from the registry.
func (m *Manager) DeleteRoom(roomID uuid.UUID) {
	m.mu.Lock()
	delete(m.rooms, roomID)
	m.mu.Unlock()
}

// List returns a snapshot summary of every registered room.
func (m *Manager) List() []Summary {
	m.mu.RLock()
	rooms := make([]*game.Room, 0, len(m.rooms))
	for _, room := range m.rooms {
		rooms = append(rooms, room)
	}
	m.mu.RUnlock()

	summaries := make([]Summary, 0, len(rooms))
	for _, room := range rooms {
		info := room.LobbyInfo()
		summaries = append(summaries, Summary{
			RoomID:      room.ID.String(),
			Name:        info.Name,
			Phase:       info.Phase.String(),
			PlayerCount: info.PlayerCount,
		})
	}
	return summaries
}

// SendChat appends a chat message to the room's history.
func (m *Manager) SendChat(roomID, playerID uuid.UUID, playerName, message string) (game.ChatMessage, error) {
	room, err := m.Room(roomID)
	if err != nil {
		return game.ChatMessage{}, err
	}
	return room.AppendChat(playerID, playerName, message), nil
}

// ChatHistory returns the room's chat log.
func (m *Manager) ChatHistory(roomID uuid.UUID) ([]game.ChatMessage, error) {
	room, err := m.Room(roomID)
	if err != nil {
		return nil, err
	}
	return room.ChatHistory(), nil
}
