package server

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/boardwalk-games/monopoly-server-go/internal/game"
)

// actionEnvelope is the inbound websocket message. Fields beyond action are
// interpreted per action type; unknown fields are ignored.
type actionEnvelope struct {
	Action   string `json:"action"`
	Position int    `json:"position"`
	Amount   int    `json:"amount"`
	Deck     string `json:"deck"`
	Accept   bool   `json:"accept"`
	TradeID  string `json:"tradeId"`
	Message  string `json:"message"`

	Trade *game.TradeOffer `json:"trade,omitempty"`

	HousesToSell         []int  `json:"housesToSell"`
	HotelsToSell         []int  `json:"hotelsToSell"`
	PropertiesToMortgage []int  `json:"propertiesToMortgage"`
	CreditorID           string `json:"creditorId"`
	AmountOwed           int    `json:"amountOwed"`
}

// dispatch decodes one envelope and runs the matching engine operation.
// Errors go back to the sender only; state changes broadcast to the room.
func (s *Server) dispatch(c *client, raw []byte) {
	var env actionEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		s.sendError(c, "", fmt.Errorf("malformed message: %w", err))
		return
	}

	var (
		events []game.Event
		err    error
	)

	switch env.Action {
	case "startGame":
		if _, err = s.engine.InitializeGame(c.roomID); err == nil {
			events, err = s.engine.StartGame(c.roomID)
		}

	case "rollDice":
		var result game.RollResult
		result, err = s.engine.RollDice(c.roomID, c.playerID)
		events = result.Events

	case "endTurn":
		events, err = s.engine.EndTurn(c.roomID, c.playerID)

	case "buyProperty":
		events, err = s.engine.BuyProperty(c.roomID, c.playerID, env.Position)

	case "declineProperty":
		events, err = s.engine.DeclineProperty(c.roomID, c.playerID, env.Position)

	case "buildHouse":
		events, err = s.engine.BuildHouse(c.roomID, c.playerID, env.Position)

	case "buildHotel":
		events, err = s.engine.BuildHotel(c.roomID, c.playerID, env.Position)

	case "sellHouse":
		events, err = s.engine.SellHouse(c.roomID, c.playerID, env.Position)

	case "sellHotel":
		events, err = s.engine.SellHotel(c.roomID, c.playerID, env.Position)

	case "mortgageProperty":
		events, err = s.engine.MortgageProperty(c.roomID, c.playerID, env.Position)

	case "unmortgageProperty":
		events, err = s.engine.UnmortgageProperty(c.roomID, c.playerID, env.Position)

	case "placeBid":
		events, err = s.engine.PlaceBid(c.roomID, c.playerID, env.Amount)

	case "endAuction":
		events, err = s.engine.EndAuction(c.roomID)

	case "drawCard":
		var deck game.DeckKind
		deck, err = parseDeck(env.Deck)
		if err == nil {
			var result game.DrawResult
			result, err = s.engine.DrawCard(c.roomID, c.playerID, deck)
			events = result.Events
		}

	case "rollForJail":
		var result game.JailRollResult
		result, err = s.engine.RollForJail(c.roomID, c.playerID)
		events = result.Events

	case "payJailFine":
		events, err = s.engine.PayJailFine(c.roomID, c.playerID)

	case "useGetOutOfJailCard":
		events, err = s.engine.UseGetOutOfJailCard(c.roomID, c.playerID)

	case "proposeTrade":
		if env.Trade == nil {
			err = fmt.Errorf("proposeTrade requires a trade offer")
			break
		}
		offer := *env.Trade
		offer.FromPlayerID = c.playerID
		events, err = s.engine.ProposeTrade(c.roomID, offer)

	case "respondToTrade":
		var tradeID uuid.UUID
		tradeID, err = uuid.Parse(env.TradeID)
		if err == nil {
			events, err = s.engine.RespondToTrade(c.roomID, c.playerID, tradeID, env.Accept)
		}

	case "payOffDebt":
		creditorID := uuid.Nil
		if env.CreditorID != "" {
			creditorID, err = uuid.Parse(env.CreditorID)
			if err != nil {
				break
			}
		}
		events, err = s.engine.PayOffDebt(c.roomID, c.playerID,
			env.HousesToSell, env.HotelsToSell, env.PropertiesToMortgage,
			creditorID, env.AmountOwed)

	case "chat":
		rm, rerr := s.rooms.Room(c.roomID)
		if rerr != nil {
			err = rerr
			break
		}
		player, perr := rm.FindPlayer(c.playerID)
		if perr != nil {
			err = perr
			break
		}
		msg := rm.AppendChat(c.playerID, player.Name, env.Message)
		events = []game.Event{{Type: game.EventChatMessage, Data: map[string]any{
			"playerId":   msg.PlayerID.String(),
			"playerName": msg.PlayerName,
			"message":    msg.Message,
			"sentAt":     msg.SentAt,
		}}}

	case "getState":
		s.broadcastView(c.roomID)
		return

	default:
		err = fmt.Errorf("unknown action %q", env.Action)
	}

	if err != nil {
		s.sendError(c, env.Action, err)
		// Some operations apply partial liquidations before failing, so
		// push a fresh snapshot rather than leaving clients stale.
		s.broadcastView(c.roomID)
		return
	}

	s.logger.Debug("action handled",
		zap.String("action", env.Action),
		zap.String("room_id", c.roomID.String()),
		zap.String("player_id", c.playerID.String()),
		zap.Int("events", len(events)))

	s.broadcast(c.roomID, events)
	s.broadcastView(c.roomID)
}

func parseDeck(name string) (game.DeckKind, error) {
	switch name {
	case "CHANCE":
		return game.DeckChance, nil
	case "COMMUNITY_CHEST":
		return game.DeckCommunityChest, nil
	default:
		return 0, fmt.Errorf("unknown deck %q", name)
	}
}
