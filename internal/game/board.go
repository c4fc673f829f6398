package game

import (
	"fmt"

	"github.com/google/uuid"
)

// SpaceKind discriminates the closed set of board space variants.
type SpaceKind int

const (
	SpaceProperty SpaceKind = iota
	SpaceRailroad
	SpaceUtility
	SpaceChance
	SpaceCommunityChest
	SpaceTax
	SpaceCorner
)

var spaceKindNames = map[SpaceKind]string{
	SpaceProperty:       "PROPERTY",
	SpaceRailroad:       "RAILROAD",
	SpaceUtility:        "UTILITY",
	SpaceChance:         "CHANCE",
	SpaceCommunityChest: "COMMUNITY_CHEST",
	SpaceTax:            "TAX",
	SpaceCorner:         "CORNER",
}

func (k SpaceKind) String() string {
	if name, ok := spaceKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("SPACE_%d", int(k))
}

// ColorGroup identifies the monopoly grouping a space belongs to.
// Railroads and utilities carry their own pseudo-groups so ownership
// counts can be tracked uniformly.
type ColorGroup int

const (
	ColorNone ColorGroup = iota
	ColorBrown
	ColorLightBlue
	ColorPink
	ColorOrange
	ColorRed
	ColorYellow
	ColorGreen
	ColorDarkBlue
	ColorRailroad
	ColorUtility
)

var colorGroupNames = map[ColorGroup]string{
	ColorNone:      "NONE",
	ColorBrown:     "BROWN",
	ColorLightBlue: "LIGHT_BLUE",
	ColorPink:      "PINK",
	ColorOrange:    "ORANGE",
	ColorRed:       "RED",
	ColorYellow:    "YELLOW",
	ColorGreen:     "GREEN",
	ColorDarkBlue:  "DARK_BLUE",
	ColorRailroad:  "RAILROAD",
	ColorUtility:   "UTILITY",
}

func (c ColorGroup) String() string {
	if name, ok := colorGroupNames[c]; ok {
		return name
	}
	return fmt.Sprintf("GROUP_%d", int(c))
}

// Size returns how many spaces make up the group. Railroads and utilities
// do not form true monopolies but still have a full-set size.
func (c ColorGroup) Size() int {
	switch c {
	case ColorNone:
		return 0
	case ColorBrown, ColorDarkBlue:
		return 2
	case ColorRailroad, ColorUtility:
		return 4
	default:
		return 3
	}
}

// RentContext carries the owner-side facts a rent computation depends on.
type RentContext struct {
	DiceTotal      int
	OwnerMonopoly  bool
	OwnerRailroads int
	OwnerUtilities int
}

// railroadRent is keyed by the number of railroads held by the same owner.
var railroadRent = map[int]int{1: 25, 2: 50, 3: 100, 4: 200}

// BoardSpace is one of the 40 board positions. A single struct with a Kind
// discriminator replaces a type hierarchy: rent, mortgage and building
// rules dispatch on Kind so a new space kind cannot silently miss a branch.
type BoardSpace struct {
	Position int
	Name     string
	Kind     SpaceKind

	// Economic constants for ownable spaces (zero otherwise).
	Group         ColorGroup
	PurchasePrice int
	MortgageValue int
	RentBase      int
	HouseRents    [4]int // rent with 1..4 houses
	RentHotel     int
	HouseCost     int
	HotelCost     int

	// TaxAmount applies to SpaceTax only.
	TaxAmount int

	// Mutable per-room state.
	Owner     uuid.UUID // uuid.Nil = bank
	Mortgaged bool
	Houses    int // 0-4, mutually exclusive with Hotel
	Hotel     bool
}

// Ownable reports whether the space can be bought, traded or mortgaged.
func (s *BoardSpace) Ownable() bool {
	switch s.Kind {
	case SpaceProperty, SpaceRailroad, SpaceUtility:
		return true
	default:
		return false
	}
}

// Rent computes the rent due for landing on this space given the owner's
// holdings. Mortgaged spaces never collect rent.
func (s *BoardSpace) Rent(ctx RentContext) int {
	if s.Mortgaged {
		return 0
	}
	switch s.Kind {
	case SpaceProperty:
		if s.Hotel {
			return s.RentHotel
		}
		if s.Houses > 0 {
			return s.HouseRents[s.Houses-1]
		}
		if ctx.OwnerMonopoly {
			return s.RentBase * 2
		}
		return s.RentBase
	case SpaceRailroad:
		return railroadRent[ctx.OwnerRailroads]
	case SpaceUtility:
		multiplier := 4
		if ctx.OwnerUtilities == 2 {
			multiplier = 10
		}
		return ctx.DiceTotal * multiplier
	default:
		return 0
	}
}

// CanBuildHouse reports whether another house fits on this space. Monopoly
// ownership is checked separately by the validator.
func (s *BoardSpace) CanBuildHouse() bool {
	return s.Kind == SpaceProperty && !s.Mortgaged && s.Houses < 4 && !s.Hotel
}

// CanBuildHotel requires exactly four houses and no existing hotel.
func (s *BoardSpace) CanBuildHotel() bool {
	return s.Kind == SpaceProperty && !s.Mortgaged && s.Houses == 4 && !s.Hotel
}

// CanMortgage reports whether the space may be mortgaged right now.
// Properties must be clear of buildings first.
func (s *BoardSpace) CanMortgage() bool {
	if !s.Ownable() || s.Mortgaged {
		return false
	}
	if s.Kind == SpaceProperty {
		return s.Houses == 0 && !s.Hotel
	}
	return true
}

func property(pos int, name string, group ColorGroup, price, rentBase int, houseRents [4]int, rentHotel, buildCost int) BoardSpace {
	return BoardSpace{
		Position:      pos,
		Name:          name,
		Kind:          SpaceProperty,
		Group:         group,
		PurchasePrice: price,
		MortgageValue: price / 2,
		RentBase:      rentBase,
		HouseRents:    houseRents,
		RentHotel:     rentHotel,
		HouseCost:     buildCost,
		HotelCost:     buildCost,
	}
}

func railroad(pos int, name string) BoardSpace {
	return BoardSpace{
		Position:      pos,
		Name:          name,
		Kind:          SpaceRailroad,
		Group:         ColorRailroad,
		PurchasePrice: 200,
		MortgageValue: 100,
	}
}

func utility(pos int, name string) BoardSpace {
	return BoardSpace{
		Position:      pos,
		Name:          name,
		Kind:          SpaceUtility,
		Group:         ColorUtility,
		PurchasePrice: 150,
		MortgageValue: 75,
	}
}

func special(pos int, name string, kind SpaceKind) BoardSpace {
	return BoardSpace{Position: pos, Name: name, Kind: kind}
}

func tax(pos int, name string, amount int) BoardSpace {
	return BoardSpace{Position: pos, Name: name, Kind: SpaceTax, TaxAmount: amount}
}

// StandardBoard returns a fresh copy of the 40-space US board. Each room
// owns its own copy because spaces carry mutable ownership state.
func StandardBoard() []BoardSpace {
	return []BoardSpace{
		special(0, "GO", SpaceCorner),
		property(1, "Mediterranean Avenue", ColorBrown, 60, 2, [4]int{10, 30, 90, 160}, 250, 50),
		special(2, "Community Chest", SpaceCommunityChest),
		property(3, "Baltic Avenue", ColorBrown, 60, 4, [4]int{20, 60, 180, 320}, 450, 50),
		tax(4, "Income Tax", 200),
		railroad(5, "Reading Railroad"),
		property(6, "Oriental Avenue", ColorLightBlue, 100, 6, [4]int{30, 90, 270, 400}, 550, 50),
		special(7, "Chance", SpaceChance),
		property(8, "Vermont Avenue", ColorLightBlue, 100, 6, [4]int{30, 90, 270, 400}, 550, 50),
		property(9, "Connecticut Avenue", ColorLightBlue, 120, 8, [4]int{40, 100, 300, 450}, 600, 50),
		special(10, "Jail / Just Visiting", SpaceCorner),
		property(11, "St. Charles Place", ColorPink, 140, 10, [4]int{50, 150, 450, 625}, 750, 100),
		utility(12, "Electric Company"),
		property(13, "States Avenue", ColorPink, 140, 10, [4]int{50, 150, 450, 625}, 750, 100),
		property(14, "Virginia Avenue", ColorPink, 160, 12, [4]int{60, 180, 500, 700}, 900, 100),
		railroad(15, "Pennsylvania Railroad"),
		property(16, "St. James Place", ColorOrange, 180, 14, [4]int{70, 200, 550, 750}, 950, 100),
		special(17, "Community Chest", SpaceCommunityChest),
		property(18, "Tennessee Avenue", ColorOrange, 180, 14, [4]int{70, 200, 550, 750}, 950, 100),
		property(19, "New York Avenue", ColorOrange, 200, 16, [4]int{80, 220, 600, 800}, 1000, 100),
		special(20, "Free Parking", SpaceCorner),
		property(21, "Kentucky Avenue", ColorRed, 220, 18, [4]int{90, 250, 700, 875}, 1050, 150),
		special(22, "Chance", SpaceChance),
		property(23, "Indiana Avenue", ColorRed, 220, 18, [4]int{90, 250, 700, 875}, 1050, 150),
		property(24, "Illinois Avenue", ColorRed, 240, 20, [4]int{100, 300, 750, 925}, 1100, 150),
		railroad(25, "B&O Railroad"),
		property(26, "Atlantic Avenue", ColorYellow, 260, 22, [4]int{110, 330, 800, 975}, 1150, 150),
		property(27, "Ventnor Avenue", ColorYellow, 260, 22, [4]int{110, 330, 800, 975}, 1150, 150),
		utility(28, "Water Works"),
		property(29, "Marvin Gardens", ColorYellow, 280, 24, [4]int{120, 360, 850, 1025}, 1200, 150),
		special(30, "Go To Jail", SpaceCorner),
		property(31, "Pacific Avenue", ColorGreen, 300, 26, [4]int{130, 390, 900, 1100}, 1275, 200),
		property(32, "North Carolina Avenue", ColorGreen, 300, 26, [4]int{130, 390, 900, 1100}, 1275, 200),
		special(33, "Community Chest", SpaceCommunityChest),
		property(34, "Pennsylvania Avenue", ColorGreen, 320, 28, [4]int{150, 450, 1000, 1200}, 1400, 200),
		railroad(35, "Short Line"),
		special(36, "Chance", SpaceChance),
		property(37, "Park Place", ColorDarkBlue, 350, 35, [4]int{175, 500, 1100, 1300}, 1500, 200),
		tax(38, "Luxury Tax", 100),
		property(39, "Boardwalk", ColorDarkBlue, 400, 50, [4]int{200, 600, 1400, 1700}, 2000, 200),
	}
}
