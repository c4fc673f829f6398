package game

import (
	"fmt"
	"math/rand/v2"
)

// DeckKind selects one of the two card decks.
type DeckKind int

const (
	DeckChance DeckKind = iota
	DeckCommunityChest
)

func (d DeckKind) String() string {
	switch d {
	case DeckChance:
		return "CHANCE"
	case DeckCommunityChest:
		return "COMMUNITY_CHEST"
	default:
		return fmt.Sprintf("DECK_%d", int(d))
	}
}

// CardAction classifies a card's effect on the game state.
type CardAction int

const (
	CardAdvanceToGo CardAction = iota
	CardAdvanceToSpace
	CardGoBackSpaces
	CardGoToJail
	CardGetOutOfJailFree
	CardCollectMoney
	CardPayMoney
	CardPayPerHouseHotel
	CardCollectFromPlayers
	CardPayToPlayers
)

var cardActionNames = map[CardAction]string{
	CardAdvanceToGo:        "ADVANCE_TO_GO",
	CardAdvanceToSpace:     "ADVANCE_TO_SPACE",
	CardGoBackSpaces:       "GO_BACK_SPACES",
	CardGoToJail:           "GO_TO_JAIL",
	CardGetOutOfJailFree:   "GET_OUT_OF_JAIL_FREE",
	CardCollectMoney:       "COLLECT_MONEY",
	CardPayMoney:           "PAY_MONEY",
	CardPayPerHouseHotel:   "PAY_PER_HOUSE_HOTEL",
	CardCollectFromPlayers: "COLLECT_FROM_PLAYERS",
	CardPayToPlayers:       "PAY_TO_PLAYERS",
}

func (a CardAction) String() string {
	if name, ok := cardActionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("CARD_ACTION_%d", int(a))
}

// TargetKind discriminates how an ADVANCE_TO_SPACE card resolves its
// destination. Dynamic targets replace the out-of-range position sentinels
// the board rules are sometimes written with.
type TargetKind int

const (
	TargetFixed TargetKind = iota
	TargetNearestUtility
	TargetNearestRailroad
)

// CardTarget is the destination of a movement card. Position is only
// meaningful for TargetFixed.
type CardTarget struct {
	Kind     TargetKind
	Position int
}

// Card is one immutable deck entry. Amount holds the dollar value for
// money cards and the space count for GO_BACK_SPACES.
type Card struct {
	Deck        DeckKind
	Description string
	Action      CardAction
	Amount      int
	Target      CardTarget
}

// deck is an ordered card sequence with a cyclic draw cursor. Decks are
// shuffled once at room creation and never reshuffled.
type deck struct {
	cards []Card
	next  int
}

func (d *deck) draw() Card {
	card := d.cards[d.next]
	d.next = (d.next + 1) % len(d.cards)
	return card
}

func (d *deck) shuffle() {
	rand.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	d.next = 0
}

func chanceCard(desc string, action CardAction, amount int) Card {
	return Card{Deck: DeckChance, Description: desc, Action: action, Amount: amount}
}

func chanceMove(desc string, target CardTarget) Card {
	return Card{Deck: DeckChance, Description: desc, Action: CardAdvanceToSpace, Target: target}
}

func chestCard(desc string, action CardAction, amount int) Card {
	return Card{Deck: DeckCommunityChest, Description: desc, Action: action, Amount: amount}
}

// ChanceCards returns the 16 Chance cards in canonical order.
func ChanceCards() []Card {
	return []Card{
		chanceCard("Advance to Go (Collect $200)", CardAdvanceToGo, 0),
		chanceMove("Advance to Illinois Avenue", CardTarget{Kind: TargetFixed, Position: 24}),
		chanceMove("Advance to St. Charles Place", CardTarget{Kind: TargetFixed, Position: 11}),
		chanceMove("Advance token to nearest Utility", CardTarget{Kind: TargetNearestUtility}),
		chanceMove("Advance token to nearest Railroad", CardTarget{Kind: TargetNearestRailroad}),
		chanceCard("Bank pays you dividend of $50", CardCollectMoney, 50),
		chanceCard("Get Out of Jail Free", CardGetOutOfJailFree, 0),
		chanceCard("Go Back 3 Spaces", CardGoBackSpaces, 3),
		chanceCard("Go to Jail", CardGoToJail, 0),
		chanceCard("Make general repairs on all your property ($25 per house, $100 per hotel)", CardPayPerHouseHotel, 25),
		chanceCard("Pay poor tax of $15", CardPayMoney, 15),
		chanceMove("Take a trip to Reading Railroad", CardTarget{Kind: TargetFixed, Position: 5}),
		chanceMove("Take a walk on the Boardwalk", CardTarget{Kind: TargetFixed, Position: 39}),
		chanceCard("You have been elected Chairman of the Board (Pay each player $50)", CardPayToPlayers, 50),
		chanceCard("Your building loan matures (Collect $150)", CardCollectMoney, 150),
		chanceCard("You have won a crossword competition (Collect $100)", CardCollectMoney, 100),
	}
}

// CommunityChestCards returns the 17 Community Chest cards in canonical order.
func CommunityChestCards() []Card {
	return []Card{
		chestCard("Advance to Go (Collect $200)", CardAdvanceToGo, 0),
		chestCard("Bank error in your favor (Collect $200)", CardCollectMoney, 200),
		chestCard("Doctor's fees (Pay $50)", CardPayMoney, 50),
		chestCard("From sale of stock you get $50", CardCollectMoney, 50),
		chestCard("Get Out of Jail Free", CardGetOutOfJailFree, 0),
		chestCard("Go to Jail", CardGoToJail, 0),
		chestCard("Grand Opera Night (Collect $50 from every player)", CardCollectFromPlayers, 50),
		chestCard("Holiday Fund matures (Collect $100)", CardCollectMoney, 100),
		chestCard("Income tax refund (Collect $20)", CardCollectMoney, 20),
		chestCard("It is your birthday (Collect $10 from every player)", CardCollectFromPlayers, 10),
		chestCard("Life insurance matures (Collect $100)", CardCollectMoney, 100),
		chestCard("Hospital fees (Pay $100)", CardPayMoney, 100),
		chestCard("School fees (Pay $150)", CardPayMoney, 150),
		chestCard("Receive $25 consultancy fee", CardCollectMoney, 25),
		chestCard("You are assessed for street repairs ($40 per house, $160 per hotel)", CardPayPerHouseHotel, 40),
		chestCard("You have won second prize in a beauty contest (Collect $10)", CardCollectMoney, 10),
		chestCard("You inherit $100", CardCollectMoney, 100),
	}
}
