package tickarray

import "github.com/defistate/whirlpool-tickwindow-go/protocols/whirlpool"

// WindowStartIndices returns the start indices of the three tick arrays a swap
// starting at currentTick will traverse, in traversal order.
//
// A swap from token A to B moves the price down, so the window extends below
// the current array. A swap from B to A moves it up; the current tick is shifted
// by one spacing first, so a price sitting exactly on an array boundary starts
// in the array above.
func WindowStartIndices(currentTick int32, tickSpacing uint16, aToB bool) [WindowSize]int32 {
	var (
		shift     int64
		direction int64 = 1
	)
	if aToB {
		direction = -1
	} else {
		shift = int64(tickSpacing)
	}

	gap := int64(whirlpool.TickArraySize) * int64(tickSpacing)
	base := int64(whirlpool.TickArrayStartIndex(int32(int64(currentTick)+shift), tickSpacing))

	var starts [WindowSize]int32
	for i := range starts {
		starts[i] = int32(base + direction*int64(i)*gap)
	}
	return starts
}
