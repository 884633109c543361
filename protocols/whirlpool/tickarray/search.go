package tickarray

import (
	"fmt"

	"github.com/defistate/whirlpool-tickwindow-go/protocols/whirlpool"
)

// maxSearchSteps bounds a search: every slot in the window once, plus the
// lookup that steps outside it.
const maxSearchSteps = WindowSize*whirlpool.TickArraySize + 1

// floorMod returns a mod m in [0, m) for m > 0.
func floorMod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// NextInitializedTick finds the closest initialized tick strictly above index.
// index does not need to be aligned or inside the window. When the search runs
// off the end of the window the error wraps ErrIndexOutOfWindow, which tells
// the caller to load the next window.
func (w *Window) NextInitializedTick(index int32) (*whirlpool.Tick, int32, error) {
	spacing := int64(w.tickSpacing)
	next := int64(index) - floorMod(int64(index), spacing) + spacing
	return w.search(next, spacing)
}

// PrevInitializedTick finds the closest initialized tick strictly below index.
// See NextInitializedTick for the out-of-window behaviour.
func (w *Window) PrevInitializedTick(index int32) (*whirlpool.Tick, int32, error) {
	spacing := int64(w.tickSpacing)
	prev := int64(index) - floorMod(int64(index), spacing)
	if prev == int64(index) {
		prev -= spacing
	}
	return w.search(prev, -spacing)
}

// search walks the grid from an aligned index by step until it hits an
// initialized tick or leaves the window.
func (w *Window) search(index, step int64) (*whirlpool.Tick, int32, error) {
	for n := 0; n < maxSearchSteps; n++ {
		slot, err := w.slot(index)
		if err != nil {
			return nil, 0, err
		}
		if w.initialized.IsSet(uint64(slot)) {
			return w.tickAt(slot), int32(index), nil
		}
		index += step
	}
	return nil, 0, fmt.Errorf("%w: search exceeded %d steps", ErrIndexOutOfWindow, maxSearchSteps)
}
