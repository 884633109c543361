package whirlpool

import "slices"

// TickArrayStartIndex returns the start index of the tick array containing tickIndex.
// Division floors towards negative infinity, so negative ticks land in the
// chunk below zero rather than the chunk starting at zero.
func TickArrayStartIndex(tickIndex int32, tickSpacing uint16) int32 {
	ticksInArray := int64(TickArraySize) * int64(tickSpacing)
	if ticksInArray == 0 {
		return 0
	}
	return int32(floorDiv(int64(tickIndex), ticksInArray) * ticksInArray)
}

// IsValidTickIndex reports whether tickIndex lies within the protocol's tick range.
func IsValidTickIndex(tickIndex int32) bool {
	return tickIndex >= MinTickIndex && tickIndex <= MaxTickIndex
}

// IsSupportedTickSpacing reports whether the default pool config enables tickSpacing.
func IsSupportedTickSpacing(tickSpacing uint16) bool {
	return slices.Contains(SupportedTickSpacings, tickSpacing)
}

// IsFullRangeOnly reports whether pools with this spacing only accept full range positions.
func IsFullRangeOnly(tickSpacing uint16) bool {
	return tickSpacing >= FullRangeOnlyTickSpacingThreshold
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
