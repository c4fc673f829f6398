package game

// Starting values
const (
	StartingMoney    = 1500
	StartingPosition = 0 // GO
)

// Special board positions
const (
	GoPosition          = 0
	JailPosition        = 10
	FreeParkingPosition = 20
	GoToJailPosition    = 30
	BoardSize           = 40
)

// Money amounts
const (
	GoSalary = 200
	JailFine = 50
)

// Jail rules
const (
	MaxJailTurns         = 3
	MaxDoublesBeforeJail = 3
)

// Building inventory held by the bank
const (
	MaxHouses         = 32
	MaxHotels         = 12
	HousesBeforeHotel = 4
)

// UnmortgageRate is the premium paid to lift a mortgage: 110% of the
// mortgage value, truncated to whole dollars.
const UnmortgageRate = 1.1
