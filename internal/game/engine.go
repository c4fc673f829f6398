package game

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RoomStore is the room registry the engine reads from. Lookup must be
// concurrency-safe; in-room invariants are protected by the room itself.
type RoomStore interface {
	Room(roomID uuid.UUID) (*Room, error)
}

// Engine validates and applies player actions against room state. It is a
// pure state-transition layer: no timers, no background work, no I/O. Each
// operation serializes on the target room's lock.
type Engine struct {
	logger *zap.Logger
	store  RoomStore

	// roll produces one pair of dice. Overridable for deterministic tests.
	roll func() (int, int)
}

// NewEngine creates an engine backed by the given room registry.
func NewEngine(store RoomStore, logger *zap.Logger) *Engine {
	return &Engine{
		logger: logger,
		store:  store,
		roll:   rollPair,
	}
}

func rollPair() (int, int) {
	return rand.IntN(6) + 1, rand.IntN(6) + 1
}

// withRoom runs fn with the room locked. A failed fn leaves no events
// behind: operations either complete with their full event trail or fail
// without partial output.
func (e *Engine) withRoom(roomID uuid.UUID, fn func(*Room) error) ([]Event, error) {
	room, err := e.store.Room(roomID)
	if err != nil {
		return nil, err
	}
	room.mu.Lock()
	defer room.mu.Unlock()
	if err := fn(room); err != nil {
		room.events = nil
		return nil, err
	}
	return room.drainEvents(), nil
}

func (e *Engine) playerInRoom(room *Room, playerID uuid.UUID) (*Player, error) {
	player := room.PlayerByID(playerID)
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	return player, nil
}

// InitializeGame seeds every player with starting cash and position.
func (e *Engine) InitializeGame(roomID uuid.UUID) ([]Event, error) {
	return e.withRoom(roomID, func(room *Room) error {
		for _, player := range room.Players {
			player.Position = StartingPosition
			player.Money = StartingMoney
		}
		return nil
	})
}

// StartGame flips a lobby into play with the host as current player.
func (e *Engine) StartGame(roomID uuid.UUID) ([]Event, error) {
	events, err := e.withRoom(roomID, func(room *Room) error {
		if room.Phase != PhaseLobby {
			return ErrWrongPhase
		}
		if len(room.Players) == 0 {
			return ErrRoomEmpty
		}
		room.Phase = PhaseInProgress
		room.CurrentPlayerIndex = 0
		room.emit(EventGameStarted, map[string]any{
			"currentPlayerIndex": room.CurrentPlayerIndex,
			"currentPlayerId":    room.CurrentPlayer().ID.String(),
		})
		return nil
	})
	if err == nil {
		e.logger.Info("game started", zap.String("room_id", roomID.String()))
	}
	return events, err
}

// HandlePlayerDisconnect forcibly ends the room. Current policy: any
// disconnect during play ends the game for everyone.
func (e *Engine) HandlePlayerDisconnect(roomID, playerID uuid.UUID) ([]Event, error) {
	events, err := e.withRoom(roomID, func(room *Room) error {
		room.Phase = PhaseFinished
		room.emit(EventGameOver, map[string]any{
			"reason":               "player disconnected",
			"disconnectedPlayerId": playerID.String(),
		})
		return nil
	})
	if err == nil {
		e.logger.Warn("room ended by disconnect",
			zap.String("room_id", roomID.String()),
			zap.String("player_id", playerID.String()),
		)
	}
	return events, err
}

// checkGameOver freezes the room once only one solvent player remains.
// Callers hold the room lock.
func checkGameOver(room *Room) {
	if room.countActivePlayers() != 1 {
		return
	}
	for _, player := range room.Players {
		if !player.Bankrupt {
			room.WinnerID = player.ID
			room.Phase = PhaseFinished
			room.emit(EventGameOver, map[string]any{"winnerId": player.ID.String()})
			return
		}
	}
}
