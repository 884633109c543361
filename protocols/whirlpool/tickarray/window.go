package tickarray

import (
	"errors"
	"fmt"
	"math"

	"github.com/defistate/whirlpool-tickwindow-go/bitset"
	"github.com/defistate/whirlpool-tickwindow-go/protocols/whirlpool"
)

// WindowSize is the number of tick arrays that make up a window.
const WindowSize = 3

var (
	ErrNonContiguousWindow = errors.New("tick arrays are not evenly spaced")
	ErrIndexOutOfWindow    = errors.New("tick index out of window")
	ErrMisalignedIndex     = errors.New("tick index not aligned to tick spacing")
	ErrInvalidTickSpacing  = errors.New("tick spacing must be greater than zero")
	ErrWindowOverflow      = errors.New("window end exceeds the int32 tick range")
)

// Window is a validated, contiguous view over three adjacent tick arrays.
// It owns deep copies of its arrays and is immutable once built, so a single
// Window can serve concurrent readers without locking.
type Window struct {
	tickArrays  [WindowSize]whirlpool.TickArray
	tickSpacing uint16

	// initialized holds one bit per slot across all three arrays.
	initialized bitset.BitSet
}

// NewWindow orders the given tick arrays by start index and checks that they
// tile one gapless range at tickSpacing. The arrays may be passed in any order.
func NewWindow(one, two, three whirlpool.TickArray, tickSpacing uint16) (*Window, error) {
	if tickSpacing == 0 {
		return nil, ErrInvalidTickSpacing
	}

	first, second, third := orderTickArrays(one, two, three)

	gap := uint64(whirlpool.TickArraySize) * uint64(tickSpacing)
	firstSecondDiff := absDiff(first.StartTickIndex, second.StartTickIndex)
	secondThirdDiff := absDiff(second.StartTickIndex, third.StartTickIndex)
	if firstSecondDiff != gap || secondThirdDiff != gap {
		return nil, fmt.Errorf(
			"%w: start indices %d, %d, %d require a gap of %d",
			ErrNonContiguousWindow, first.StartTickIndex, second.StartTickIndex, third.StartTickIndex, gap,
		)
	}

	if end := int64(first.StartTickIndex) + WindowSize*int64(gap); end > math.MaxInt32 {
		return nil, fmt.Errorf("%w: window [%d, %d)", ErrWindowOverflow, first.StartTickIndex, end)
	}

	w := &Window{
		tickArrays: [WindowSize]whirlpool.TickArray{
			first.Clone(),
			second.Clone(),
			third.Clone(),
		},
		tickSpacing: tickSpacing,
		initialized: bitset.NewBitSet(WindowSize * whirlpool.TickArraySize),
	}
	for a := range w.tickArrays {
		for s := range w.tickArrays[a].Ticks {
			if w.tickArrays[a].Ticks[s].Initialized {
				w.initialized.Set(uint64(a*whirlpool.TickArraySize + s))
			}
		}
	}
	return w, nil
}

// orderTickArrays sorts exactly three tick arrays ascending by start index.
func orderTickArrays(one, two, three whirlpool.TickArray) (whirlpool.TickArray, whirlpool.TickArray, whirlpool.TickArray) {
	a, b, c := one.StartTickIndex, two.StartTickIndex, three.StartTickIndex

	if a < b {
		if b < c {
			return one, two, three
		}
		if a < c {
			return one, three, two
		}
		return three, one, two
	}
	if a < c {
		return two, one, three
	}
	if b < c {
		return two, three, one
	}
	return three, two, one
}

func absDiff(x, y int32) uint64 {
	d := int64(x) - int64(y)
	if d < 0 {
		d = -d
	}
	return uint64(d)
}

func (w *Window) gap() int64 {
	return int64(whirlpool.TickArraySize) * int64(w.tickSpacing)
}

func (w *Window) start() int64 {
	return int64(w.tickArrays[0].StartTickIndex)
}

func (w *Window) end() int64 {
	return w.start() + WindowSize*w.gap()
}

// StartIndex is the first tick index covered by the window.
func (w *Window) StartIndex() int32 {
	return w.tickArrays[0].StartTickIndex
}

// EndIndex is the exclusive upper bound of the window.
func (w *Window) EndIndex() int32 {
	return int32(w.end())
}

// TickSpacing returns the spacing the window was validated against.
func (w *Window) TickSpacing() uint16 {
	return w.tickSpacing
}

// TickArrays returns deep copies of the window's arrays in ascending order.
func (w *Window) TickArrays() [WindowSize]whirlpool.TickArray {
	var out [WindowSize]whirlpool.TickArray
	for i := range w.tickArrays {
		out[i] = w.tickArrays[i].Clone()
	}
	return out
}

// Contains reports whether index lies within [StartIndex, EndIndex).
// Alignment is not checked.
func (w *Window) Contains(index int32) bool {
	i := int64(index)
	return i >= w.start() && i < w.end()
}

// InitializedCount returns how many ticks in the window are initialized.
func (w *Window) InitializedCount() int {
	return w.initialized.Count()
}

// slot resolves a tick index to its position across the three arrays,
// numbered 0 through WindowSize*TickArraySize-1.
func (w *Window) slot(index int64) (int, error) {
	start, end := w.start(), w.end()
	if index < start || index >= end {
		return 0, fmt.Errorf("%w: tick %d outside [%d, %d)", ErrIndexOutOfWindow, index, start, end)
	}

	spacing := int64(w.tickSpacing)
	if index%spacing != 0 {
		return 0, fmt.Errorf("%w: tick %d, spacing %d", ErrMisalignedIndex, index, spacing)
	}

	arrayIndex := (index - start) / w.gap()
	offset := (index - int64(w.tickArrays[arrayIndex].StartTickIndex)) / spacing
	return int(arrayIndex)*whirlpool.TickArraySize + int(offset), nil
}

func (w *Window) tickAt(slot int) *whirlpool.Tick {
	return &w.tickArrays[slot/whirlpool.TickArraySize].Ticks[slot%whirlpool.TickArraySize]
}

// Tick returns the tick stored at index. The returned tick belongs to the
// window and must not be modified.
func (w *Window) Tick(index int32) (*whirlpool.Tick, error) {
	slot, err := w.slot(int64(index))
	if err != nil {
		return nil, err
	}
	return w.tickAt(slot), nil
}
