package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/boardwalk-games/monopoly-server-go/internal/game"
	"github.com/boardwalk-games/monopoly-server-go/internal/repository"
	"github.com/boardwalk-games/monopoly-server-go/internal/room"
)

// Server exposes the room registry over HTTP and the game engine over
// websockets. All game mutations flow through the engine; the server only
// fans events back out to subscribed connections.
type Server struct {
	logger  *zap.Logger
	rooms   *room.Manager
	engine  *game.Engine
	archive *repository.MatchArchive

	upgrader websocket.Upgrader

	mu          sync.Mutex
	subscribers map[uuid.UUID]map[*client]struct{}
}

// New wires the transport. archive may be nil when no database is configured.
func New(logger *zap.Logger, rooms *room.Manager, engine *game.Engine, archive *repository.MatchArchive) *Server {
	return &Server{
		logger:  logger,
		rooms:   rooms,
		engine:  engine,
		archive: archive,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		subscribers: make(map[uuid.UUID]map[*client]struct{}),
	}
}

// Handler returns the HTTP routes: the lobby REST surface plus the
// websocket endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /rooms", s.handleListRooms)
	mux.HandleFunc("POST /rooms", s.handleCreateRoom)
	mux.HandleFunc("GET /ws", s.handleWebsocket)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func (s *Server) handleListRooms(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.rooms.List())
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "room name required", http.StatusBadRequest)
		return
	}
	rm := s.rooms.CreateRoom(req.Name)
	writeJSON(w, http.StatusCreated, map[string]string{
		"roomId": rm.ID.String(),
		"name":   rm.Name,
	})
}

// handleWebsocket upgrades the connection and joins the player into the
// requested room. Query parameters: roomId, playerName, and optionally
// playerId to reattach an existing seat.
func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(r.URL.Query().Get("roomId"))
	if err != nil {
		http.Error(w, "invalid roomId", http.StatusBadRequest)
		return
	}
	name := r.URL.Query().Get("playerName")
	if name == "" {
		http.Error(w, "playerName required", http.StatusBadRequest)
		return
	}

	var player *game.Player
	if raw := r.URL.Query().Get("playerId"); raw != "" {
		playerID, perr := uuid.Parse(raw)
		if perr != nil {
			http.Error(w, "invalid playerId", http.StatusBadRequest)
			return
		}
		rm, rerr := s.rooms.Room(roomID)
		if rerr != nil {
			http.Error(w, rerr.Error(), http.StatusNotFound)
			return
		}
		player, perr = rm.FindPlayer(playerID)
		if perr != nil {
			http.Error(w, perr.Error(), http.StatusNotFound)
			return
		}
	} else {
		player, err = s.rooms.JoinRoom(roomID, name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{
		server:   s,
		conn:     conn,
		send:     make(chan []byte, 64),
		roomID:   roomID,
		playerID: player.ID,
	}
	s.register(c)

	go c.writePump()
	go c.readPump()

	s.sendTo(c, game.Event{Type: game.EventPlayerJoined, Data: map[string]any{
		"playerId":   player.ID.String(),
		"playerName": player.Name,
	}})
	s.broadcastView(roomID)
}

func (s *Server) register(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.subscribers[c.roomID]
	if !ok {
		set = make(map[*client]struct{})
		s.subscribers[c.roomID] = set
	}
	set[c] = struct{}{}
}

func (s *Server) unregister(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.subscribers[c.roomID]
	if !ok {
		return
	}
	if _, present := set[c]; !present {
		return
	}
	delete(set, c)
	close(c.send)
	if len(set) == 0 {
		delete(s.subscribers, c.roomID)
	}
}

// broadcast fans events out to every connection in the room and archives
// finished matches.
func (s *Server) broadcast(roomID uuid.UUID, events []game.Event) {
	for _, ev := range events {
		frame, err := json.Marshal(ev)
		if err != nil {
			s.logger.Error("marshal event", zap.Error(err))
			continue
		}
		s.mu.Lock()
		for c := range s.subscribers[roomID] {
			select {
			case c.send <- frame:
			default:
				// Slow consumer, drop the connection rather than the room.
				delete(s.subscribers[roomID], c)
				close(c.send)
			}
		}
		s.mu.Unlock()

		if ev.Type == game.EventGameOver {
			s.archiveMatch(roomID, ev)
		}
	}
}

// broadcastView pushes a fresh room snapshot to every subscriber.
func (s *Server) broadcastView(roomID uuid.UUID) {
	view, err := s.engine.RoomView(roomID)
	if err != nil {
		return
	}
	s.broadcast(roomID, []game.Event{{
		Type: game.EventGameState,
		Data: map[string]any{"room": view},
	}})
}

func (s *Server) sendTo(c *client, ev game.Event) {
	frame, err := json.Marshal(ev)
	if err != nil {
		s.logger.Error("marshal event", zap.Error(err))
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subscribers[c.roomID][c]; !ok {
		return
	}
	select {
	case c.send <- frame:
	default:
	}
}

func (s *Server) sendError(c *client, action string, err error) {
	s.sendTo(c, game.Event{Type: game.EventError, Data: map[string]any{
		"action":  action,
		"message": err.Error(),
	}})
}

func (s *Server) handleDisconnect(c *client) {
	rm, err := s.rooms.Room(c.roomID)
	if err != nil {
		return
	}
	info := rm.LobbyInfo()
	switch info.Phase {
	case game.PhaseLobby:
		if err := s.rooms.LeaveRoom(c.roomID, c.playerID); err != nil {
			return
		}
		s.broadcast(c.roomID, []game.Event{{
			Type: game.EventPlayerLeft,
			Data: map[string]any{"playerId": c.playerID.String()},
		}})
	case game.PhaseInProgress:
		events, err := s.engine.HandlePlayerDisconnect(c.roomID, c.playerID)
		if err != nil {
			s.logger.Warn("disconnect handling failed",
				zap.String("room_id", c.roomID.String()), zap.Error(err))
			return
		}
		s.broadcast(c.roomID, events)
	}
}

func (s *Server) archiveMatch(roomID uuid.UUID, ev game.Event) {
	if s.archive == nil {
		return
	}
	rm, err := s.rooms.Room(roomID)
	if err != nil {
		return
	}
	info := rm.LobbyInfo()
	winner, _ := ev.Data["winnerId"].(string)
	result := repository.MatchResult{
		RoomID:      roomID.String(),
		RoomName:    info.Name,
		WinnerID:    winner,
		PlayerCount: info.PlayerCount,
		StartedAt:   info.CreatedAt,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.archive.Record(ctx, result); err != nil {
		s.logger.Error("archive match result",
			zap.String("room_id", roomID.String()), zap.Error(err))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
