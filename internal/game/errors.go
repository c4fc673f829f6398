package game

import "errors"

// Not-found errors.
var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrPlayerNotFound = errors.New("player not found")
)

// Precondition violations. All are detected synchronously and leave the
// room state untouched.
var (
	ErrWrongPhase        = errors.New("action not legal in current game phase")
	ErrRoomEmpty         = errors.New("room has no players")
	ErrNotPlayerTurn     = errors.New("not your turn")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidSpace      = errors.New("space cannot be used for this action")
	ErrNotOwner          = errors.New("you do not own this property")
	ErrAlreadyOwned      = errors.New("property already has an owner")
	ErrNoMonopoly        = errors.New("must own the full color group to build")
	ErrBuildLimit        = errors.New("building limit reached for this property")
	ErrNoInventory       = errors.New("bank has no buildings left")
	ErrNoBuildings       = errors.New("no buildings to sell on this property")
	ErrBuildingsPresent  = errors.New("cannot mortgage property with buildings")
	ErrMortgaged         = errors.New("property is mortgaged")
	ErrNotMortgaged      = errors.New("property is not mortgaged")
	ErrNotInJail         = errors.New("player is not in jail")
	ErrNoJailCard        = errors.New("no get out of jail free cards")
	ErrBidTooLow         = errors.New("bid must exceed the current highest bid")
)

// State conflicts on the room's single pending auction/trade/debt slots.
var (
	ErrNoActiveAuction = errors.New("no active auction")
	ErrAuctionPending  = errors.New("an auction is already in progress")
	ErrNoActiveTrade   = errors.New("no pending trade")
	ErrTradePending    = errors.New("a trade is already pending")
	ErrNotYourTrade    = errors.New("trade is not addressed to you")
	ErrNoPendingDebt   = errors.New("no pending debt to pay off")
)
