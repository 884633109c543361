package indexer

import (
	"github.com/defistate/whirlpool-tickwindow-go/protocols/whirlpool"
	"github.com/defistate/whirlpool-tickwindow-go/protocols/whirlpool/tickarray"
)

// Logger defines a standard interface for structured, leveled logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// IndexedTickArrays provides a read-only view of one pool's materialised tick
// arrays, keyed by start tick index, and assembles tick windows from them.
type IndexedTickArrays interface {
	GetByStartIndex(startTickIndex int32) (whirlpool.TickArray, bool)
	All() []whirlpool.TickArray
	Window(currentTick int32, tickSpacing uint16, aToB bool) (*tickarray.Window, error)
}
