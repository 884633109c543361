package whirlpool

import (
	"math/big"

	"github.com/holiman/uint256"
)

// TickArraySize is the number of ticks stored in a single tick array.
const TickArraySize = 88

const (
	// MinTickIndex is the lowest tick index supported by the protocol.
	MinTickIndex = int32(-443636)
	// MaxTickIndex is the highest tick index supported by the protocol.
	MaxTickIndex = int32(443636)

	// FullRangeOnlyTickSpacingThreshold marks pools that only accept full range positions.
	FullRangeOnlyTickSpacingThreshold = uint16(32768)
)

var (
	// MinSqrtPrice is the minimum sqrt price (Q64.64) supported by the protocol.
	MinSqrtPrice, _ = new(big.Int).SetString("4295048016", 10)
	// MaxSqrtPrice is the maximum sqrt price (Q64.64) supported by the protocol.
	MaxSqrtPrice, _ = new(big.Int).SetString("79226673515401279992447579055", 10)

	// SupportedTickSpacings are the tick spacings enabled by the default pool config.
	SupportedTickSpacings = []uint16{1, 2, 4, 8, 16, 64, 96, 128, 256, 32896}
)

// Tick is the state of a single grid point.
// Only Initialized and LiquidityNet matter to the tick window; the remaining
// fields are carried through untouched for the swap math built on top of it.
type Tick struct {
	Initialized bool `json:"initialized"`
	// LiquidityNet is an i128 on chain. An uninitialized tick has a zero delta.
	LiquidityNet *big.Int `json:"liquidityNet"`

	LiquidityGross       *uint256.Int    `json:"liquidityGross,omitempty"`
	FeeGrowthOutsideA    *uint256.Int    `json:"feeGrowthOutsideA,omitempty"`
	FeeGrowthOutsideB    *uint256.Int    `json:"feeGrowthOutsideB,omitempty"`
	RewardGrowthsOutside [3]*uint256.Int `json:"rewardGrowthsOutside"`
}

// TickArray is a fixed-size chunk of ticks. Slot i holds the tick at
// StartTickIndex + i*tickSpacing, where tickSpacing belongs to the pool.
type TickArray struct {
	StartTickIndex int32               `json:"startTickIndex"`
	Ticks          [TickArraySize]Tick `json:"ticks"`
}

// NewEmptyTickArray returns a tick array with no initialized ticks.
// It stands in for a tick array account that was never created on chain.
func NewEmptyTickArray(startTickIndex int32) TickArray {
	return TickArray{StartTickIndex: startTickIndex}
}
