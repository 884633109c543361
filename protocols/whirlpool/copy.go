package whirlpool

import (
	"math/big"

	"github.com/holiman/uint256"
)

// --- Deep Copy Helper Functions ---

func cloneBig(x *big.Int) *big.Int {
	if x == nil {
		return nil
	}
	return new(big.Int).Set(x)
}

func cloneU256(x *uint256.Int) *uint256.Int {
	if x == nil {
		return nil
	}
	return x.Clone()
}

// Clone returns a deep copy of the tick; every pointer field gets its own memory.
// Nil fields stay nil.
func (t Tick) Clone() Tick {
	c := t
	c.LiquidityNet = cloneBig(t.LiquidityNet)
	c.LiquidityGross = cloneU256(t.LiquidityGross)
	c.FeeGrowthOutsideA = cloneU256(t.FeeGrowthOutsideA)
	c.FeeGrowthOutsideB = cloneU256(t.FeeGrowthOutsideB)
	for i, r := range t.RewardGrowthsOutside {
		c.RewardGrowthsOutside[i] = cloneU256(r)
	}
	return c
}

// Clone returns a deep copy of the tick array, so the copy can outlive
// and be shared independently of the original.
func (ta TickArray) Clone() TickArray {
	c := TickArray{StartTickIndex: ta.StartTickIndex}
	for i := range ta.Ticks {
		c.Ticks[i] = ta.Ticks[i].Clone()
	}
	return c
}
