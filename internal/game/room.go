package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// GamePhase tracks the room lifecycle.
type GamePhase int

const (
	PhaseLobby GamePhase = iota
	PhaseInProgress
	PhaseFinished
)

var gamePhaseNames = map[GamePhase]string{
	PhaseLobby:      "LOBBY",
	PhaseInProgress: "IN_PROGRESS",
	PhaseFinished:   "FINISHED",
}

func (p GamePhase) String() string {
	if name, ok := gamePhaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PHASE_%d", int(p))
}

// TradeStatus is the outcome state of a trade record.
type TradeStatus int

const (
	TradePending TradeStatus = iota
	TradeAccepted
	TradeDeclined
)

// Trade is a proposed two-party asset and cash swap. At most one trade is
// pending per room.
type Trade struct {
	ID             uuid.UUID
	FromPlayerID   uuid.UUID
	ToPlayerID     uuid.UUID
	FromProperties []int
	FromMoney      int
	ToProperties   []int
	ToMoney        int
	Status         TradeStatus
}

// Auction is the single in-flight auction for a declined property.
type Auction struct {
	Position        int
	HighestBid      int
	HighestBidderID uuid.UUID // uuid.Nil until the first bid
	Active          bool
}

// PendingDebt is the single outstanding liquidation demand for a room.
// CreditorID of uuid.Nil means the bank is owed.
type PendingDebt struct {
	DebtorID   uuid.UUID
	Amount     int
	CreditorID uuid.UUID
	Reason     string
}

// ChatMessage is one entry of the room's chat history.
type ChatMessage struct {
	PlayerID   uuid.UUID `json:"playerId"`
	PlayerName string    `json:"playerName"`
	Message    string    `json:"message"`
	SentAt     time.Time `json:"sentAt"`
}

// Room is the authoritative aggregate for one match. All mutation goes
// through engine operations holding mu; two concurrent actions for the
// same room are serialized, never interleaved.
type Room struct {
	mu sync.Mutex

	ID        uuid.UUID
	Name      string
	CreatedAt time.Time

	Phase   GamePhase
	Board   []BoardSpace
	Players []*Player

	chance         deck
	communityChest deck

	CurrentPlayerIndex int
	LastDiceRoll       [2]int
	DoublesCount       int

	CurrentAuction *Auction
	CurrentTrade   *Trade
	Debt           *PendingDebt

	WinnerID uuid.UUID

	housesRemaining int
	hotelsRemaining int

	chat   []ChatMessage
	events []Event
}

// NewRoom creates an empty lobby with a fresh board and both decks
// shuffled once.
func NewRoom(name string) *Room {
	r := &Room{
		ID:              uuid.New(),
		Name:            name,
		CreatedAt:       time.Now(),
		Phase:           PhaseLobby,
		Board:           StandardBoard(),
		chance:          deck{cards: ChanceCards()},
		communityChest:  deck{cards: CommunityChestCards()},
		housesRemaining: MaxHouses,
		hotelsRemaining: MaxHotels,
	}
	r.chance.shuffle()
	r.communityChest.shuffle()
	return r
}

// AddPlayer registers a lobby player. Fails once the game has started.
func (r *Room) AddPlayer(name string) (*Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Phase != PhaseLobby {
		return nil, ErrWrongPhase
	}
	player := NewPlayer(name)
	r.Players = append(r.Players, player)
	return player, nil
}

// RemovePlayer drops a lobby player. In-progress departures go through
// HandlePlayerDisconnect instead.
func (r *Room) RemovePlayer(playerID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.Players {
		if p.ID == playerID {
			r.Players = append(r.Players[:i], r.Players[i+1:]...)
			return
		}
	}
}

// PlayerByID returns the player or nil.
func (r *Room) PlayerByID(playerID uuid.UUID) *Player {
	for _, p := range r.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// CurrentPlayer returns the player whose turn it is, or nil in an empty room.
func (r *Room) CurrentPlayer() *Player {
	if len(r.Players) == 0 {
		return nil
	}
	return r.Players[r.CurrentPlayerIndex]
}

// advanceToNextPlayer rotates the turn to the next non-bankrupt player and
// resets the doubles streak.
func (r *Room) advanceToNextPlayer() {
	for {
		r.CurrentPlayerIndex = (r.CurrentPlayerIndex + 1) % len(r.Players)
		if !r.Players[r.CurrentPlayerIndex].Bankrupt {
			break
		}
	}
	r.DoublesCount = 0
}

// countActivePlayers counts players still in win-condition contention.
func (r *Room) countActivePlayers() int {
	count := 0
	for _, p := range r.Players {
		if !p.Bankrupt {
			count++
		}
	}
	return count
}

func (r *Room) drawFrom(kind DeckKind) Card {
	if kind == DeckChance {
		return r.chance.draw()
	}
	return r.communityChest.draw()
}

// Bank inventory. The counters are unexported so they can only move
// through these guarded operations and stay within [0, cap].

func (r *Room) useHouse() bool {
	if r.housesRemaining == 0 {
		return false
	}
	r.housesRemaining--
	return true
}

func (r *Room) returnHouse() {
	if r.housesRemaining < MaxHouses {
		r.housesRemaining++
	}
}

func (r *Room) useHotel() bool {
	if r.hotelsRemaining == 0 {
		return false
	}
	r.hotelsRemaining--
	return true
}

func (r *Room) returnHotel() {
	if r.hotelsRemaining < MaxHotels {
		r.hotelsRemaining++
	}
}

// HousesRemaining reports the bank's house inventory.
func (r *Room) HousesRemaining() int { return r.housesRemaining }

// HotelsRemaining reports the bank's hotel inventory.
func (r *Room) HotelsRemaining() int { return r.hotelsRemaining }

// RoomInfo is a point-in-time snapshot of room metadata for directory
// listings and match archiving.
type RoomInfo struct {
	Name        string
	Phase       GamePhase
	PlayerCount int
	CreatedAt   time.Time
}

// FindPlayer looks up a seat under the room lock. Player names and IDs are
// immutable after creation, so the returned pointer is safe to read for
// identity fields without holding the lock.
func (r *Room) FindPlayer(playerID uuid.UUID) (*Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.PlayerByID(playerID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}
	return p, nil
}

// LobbyInfo captures room metadata under the room lock.
func (r *Room) LobbyInfo() RoomInfo {
	r.mu.Lock()
	defer r.mu.Unlock()
	return RoomInfo{
		Name:        r.Name,
		Phase:       r.Phase,
		PlayerCount: len(r.Players),
		CreatedAt:   r.CreatedAt,
	}
}

// AppendChat adds a message to the room's chat history.
func (r *Room) AppendChat(playerID uuid.UUID, playerName, message string) ChatMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg := ChatMessage{
		PlayerID:   playerID,
		PlayerName: playerName,
		Message:    message,
		SentAt:     time.Now(),
	}
	r.chat = append(r.chat, msg)
	return msg
}

// ChatHistory returns a copy of the chat log in send order.
func (r *Room) ChatHistory() []ChatMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	history := make([]ChatMessage, len(r.chat))
	copy(history, r.chat)
	return history
}

// emit buffers an event for the operation in flight.
func (r *Room) emit(eventType EventType, data map[string]any) {
	r.events = append(r.events, Event{Type: eventType, Data: data})
}

// drainEvents hands the buffered events to the caller and clears the buffer.
func (r *Room) drainEvents() []Event {
	events := r.events
	r.events = nil
	return events
}
