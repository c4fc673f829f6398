package game

import (
	"github.com/google/uuid"
)

// RoomView is the complete serializable snapshot of a room handed to the
// transport layer. Views copy everything under the room lock; the caller
// may hold them indefinitely.
type RoomView struct {
	RoomID             string        `json:"roomId"`
	Name               string        `json:"name"`
	Phase              string        `json:"phase"`
	CurrentPlayerIndex int           `json:"currentPlayerIndex"`
	CurrentPlayerID    string        `json:"currentPlayerId,omitempty"`
	LastDiceRoll       [2]int        `json:"lastDiceRoll"`
	DoublesCount       int           `json:"doublesCount"`
	WinnerID           string        `json:"winnerId,omitempty"`
	HousesRemaining    int           `json:"housesRemaining"`
	HotelsRemaining    int           `json:"hotelsRemaining"`
	Players            []PlayerView  `json:"players"`
	Spaces             []SpaceView   `json:"spaces"`
	Auction            *AuctionView  `json:"auction,omitempty"`
	Trade              *TradeView    `json:"trade,omitempty"`
	PendingDebt        *DebtView     `json:"pendingDebt,omitempty"`
}

// PlayerView is one player's public state.
type PlayerView struct {
	PlayerID          string `json:"playerId"`
	Name              string `json:"name"`
	Position          int    `json:"position"`
	Money             int    `json:"money"`
	Owned             []int  `json:"ownedPositions"`
	InJail            bool   `json:"inJail"`
	JailTurns         int    `json:"jailTurns"`
	GetOutOfJailCards int    `json:"getOutOfJailCards"`
	Bankrupt          bool   `json:"bankrupt"`
	TotalHouses       int    `json:"totalHouses"`
	TotalHotels       int    `json:"totalHotels"`
}

// SpaceView is one board space with its mutable state.
type SpaceView struct {
	Position      int    `json:"position"`
	Name          string `json:"name"`
	Kind          string `json:"kind"`
	Group         string `json:"group,omitempty"`
	PurchasePrice int    `json:"purchasePrice,omitempty"`
	MortgageValue int    `json:"mortgageValue,omitempty"`
	HouseCost     int    `json:"houseCost,omitempty"`
	TaxAmount     int    `json:"taxAmount,omitempty"`
	OwnerID       string `json:"ownerId,omitempty"`
	Mortgaged     bool   `json:"mortgaged"`
	Houses        int    `json:"houses"`
	Hotel         bool   `json:"hotel"`
}

// AuctionView mirrors the in-flight auction.
type AuctionView struct {
	Position        int    `json:"position"`
	HighestBid      int    `json:"highestBid"`
	HighestBidderID string `json:"highestBidderId,omitempty"`
	Active          bool   `json:"active"`
}

// TradeView mirrors the pending trade.
type TradeView struct {
	TradeID        string `json:"tradeId"`
	FromPlayerID   string `json:"fromPlayerId"`
	ToPlayerID     string `json:"toPlayerId"`
	FromProperties []int  `json:"fromPlayerProperties"`
	FromMoney      int    `json:"fromPlayerMoney"`
	ToProperties   []int  `json:"toPlayerProperties"`
	ToMoney        int    `json:"toPlayerMoney"`
}

// DebtView mirrors the pending liquidation demand.
type DebtView struct {
	DebtorID   string `json:"debtorId"`
	Amount     int    `json:"amount"`
	CreditorID string `json:"creditorId,omitempty"`
	Reason     string `json:"reason"`
}

// RoomView builds a consistent snapshot of the room.
func (e *Engine) RoomView(roomID uuid.UUID) (*RoomView, error) {
	room, err := e.store.Room(roomID)
	if err != nil {
		return nil, err
	}
	room.mu.Lock()
	defer room.mu.Unlock()

	view := &RoomView{
		RoomID:             room.ID.String(),
		Name:               room.Name,
		Phase:              room.Phase.String(),
		CurrentPlayerIndex: room.CurrentPlayerIndex,
		LastDiceRoll:       room.LastDiceRoll,
		DoublesCount:       room.DoublesCount,
		WinnerID:           idOrEmpty(room.WinnerID),
		HousesRemaining:    room.housesRemaining,
		HotelsRemaining:    room.hotelsRemaining,
	}
	if current := room.CurrentPlayer(); current != nil {
		view.CurrentPlayerID = current.ID.String()
	}

	for _, player := range room.Players {
		owned := make([]int, len(player.Owned))
		copy(owned, player.Owned)
		view.Players = append(view.Players, PlayerView{
			PlayerID:          player.ID.String(),
			Name:              player.Name,
			Position:          player.Position,
			Money:             player.Money,
			Owned:             owned,
			InJail:            player.InJail,
			JailTurns:         player.JailTurns,
			GetOutOfJailCards: player.GetOutOfJailCards,
			Bankrupt:          player.Bankrupt,
			TotalHouses:       player.TotalHouses,
			TotalHotels:       player.TotalHotels,
		})
	}

	view.Spaces = make([]SpaceView, 0, len(room.Board))
	for i := range room.Board {
		space := &room.Board[i]
		sv := SpaceView{
			Position:  space.Position,
			Name:      space.Name,
			Kind:      space.Kind.String(),
			TaxAmount: space.TaxAmount,
			OwnerID:   idOrEmpty(space.Owner),
			Mortgaged: space.Mortgaged,
			Houses:    space.Houses,
			Hotel:     space.Hotel,
		}
		if space.Ownable() {
			sv.Group = space.Group.String()
			sv.PurchasePrice = space.PurchasePrice
			sv.MortgageValue = space.MortgageValue
			sv.HouseCost = space.HouseCost
		}
		view.Spaces = append(view.Spaces, sv)
	}

	if auction := room.CurrentAuction; auction != nil {
		view.Auction = &AuctionView{
			Position:        auction.Position,
			HighestBid:      auction.HighestBid,
			HighestBidderID: idOrEmpty(auction.HighestBidderID),
			Active:          auction.Active,
		}
	}
	if trade := room.CurrentTrade; trade != nil {
		view.Trade = &TradeView{
			TradeID:        trade.ID.String(),
			FromPlayerID:   trade.FromPlayerID.String(),
			ToPlayerID:     trade.ToPlayerID.String(),
			FromProperties: trade.FromProperties,
			FromMoney:      trade.FromMoney,
			ToProperties:   trade.ToProperties,
			ToMoney:        trade.ToMoney,
		}
	}
	if debt := room.Debt; debt != nil {
		view.PendingDebt = &DebtView{
			DebtorID:   debt.DebtorID.String(),
			Amount:     debt.Amount,
			CreditorID: idOrEmpty(debt.CreditorID),
			Reason:     debt.Reason,
		}
	}
	return view, nil
}
