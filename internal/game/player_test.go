package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubtractMoneyGuardsBalance(t *testing.T) {
	p := NewPlayer("alice")
	p.Money = 100

	assert.False(t, p.SubtractMoney(101))
	assert.Equal(t, 100, p.Money)

	assert.True(t, p.SubtractMoney(100))
	assert.Equal(t, 0, p.Money)
}

func TestMoveToWrapsBoard(t *testing.T) {
	p := NewPlayer("alice")

	p.MoveTo(39)
	assert.Equal(t, 39, p.Position)

	p.MoveTo(42)
	assert.Equal(t, 2, p.Position)

	p.MoveTo(-3)
	assert.Equal(t, 37, p.Position)
}

func TestPassedGo(t *testing.T) {
	// Wrapping past GO.
	assert.True(t, PassedGo(38, 2))
	assert.True(t, PassedGo(39, 0))
	// Ordinary forward motion.
	assert.False(t, PassedGo(5, 15))
	assert.False(t, PassedGo(0, 12))
	// Card-driven forward jump longer than any dice roll.
	assert.True(t, PassedGo(5, 24))
}

func TestJailStateTransitions(t *testing.T) {
	p := NewPlayer("alice")
	p.Position = 24

	p.SendToJail()
	assert.Equal(t, JailPosition, p.Position)
	assert.True(t, p.InJail)
	assert.Zero(t, p.JailTurns)

	p.JailTurns = 2
	p.ReleaseFromJail()
	assert.False(t, p.InJail)
	assert.Zero(t, p.JailTurns)
	assert.Equal(t, JailPosition, p.Position)
}

func TestHoldingsAndMonopoly(t *testing.T) {
	p := NewPlayer("alice")

	p.AddHolding(1, ColorBrown)
	assert.Equal(t, 1, p.GroupCount(ColorBrown))
	assert.False(t, p.OwnsMonopoly(ColorBrown))

	p.AddHolding(3, ColorBrown)
	assert.True(t, p.OwnsMonopoly(ColorBrown))

	p.RemoveHolding(1, ColorBrown)
	assert.Equal(t, 1, p.GroupCount(ColorBrown))
	assert.False(t, p.OwnsMonopoly(ColorBrown))
	assert.Equal(t, []int{3}, p.Owned)
}

func TestNetWorth(t *testing.T) {
	board := StandardBoard()
	p := NewPlayer("alice")
	p.Money = 300

	p.AddHolding(1, ColorBrown)
	board[1].Owner = p.ID
	p.AddHolding(3, ColorBrown)
	board[3].Owner = p.ID
	board[3].Houses = 2

	// 300 cash + 60 + 60 list prices + 2 houses at 50.
	assert.Equal(t, 520, p.NetWorth(board))

	board[1].Mortgaged = true
	assert.Equal(t, 460, p.NetWorth(board))
}

func TestDeclareBankruptcyZeroesCash(t *testing.T) {
	p := NewPlayer("alice")
	p.Money = 700

	p.DeclareBankruptcy()
	assert.True(t, p.Bankrupt)
	assert.Zero(t, p.Money)
}
