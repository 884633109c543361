package indexer

import (
	"errors"

	"github.com/defistate/whirlpool-tickwindow-go/protocols/whirlpool"
	"github.com/defistate/whirlpool-tickwindow-go/protocols/whirlpool/tickarray"
	"github.com/prometheus/client_golang/prometheus"
)

// Config holds the dependencies of an Indexer.
type Config struct {
	Logger   Logger
	Registry prometheus.Registerer
}

// validate checks if the configuration is valid.
func (c *Config) validate() error {
	if c.Logger == nil {
		return errors.New("config: Logger cannot be nil")
	}
	if c.Registry == nil {
		return errors.New("config: Registry cannot be nil")
	}
	return nil
}

// Indexer turns raw tick arrays into an IndexedTickArrays view.
type Indexer struct {
	logger  Logger
	metrics *Metrics
}

// New creates a new Indexer.
func New(cfg *Config) (*Indexer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Indexer{
		logger:  cfg.Logger,
		metrics: NewMetrics(cfg.Registry),
	}, nil
}

// Index creates an indexed view from a raw slice of one pool's tick arrays.
func (i *Indexer) Index(arrays []whirlpool.TickArray) IndexedTickArrays {
	return NewIndexableTickArrays(arrays, i.logger, i.metrics)
}

// IndexableTickArrays provides fast, indexed access to tick arrays.
// It is immutable after construction.
type IndexableTickArrays struct {
	byStart map[int32]whirlpool.TickArray
	all     []whirlpool.TickArray

	logger  Logger
	metrics *Metrics
}

// NewIndexableTickArrays indexes arrays by start tick index. When two arrays
// share a start index the later one wins.
func NewIndexableTickArrays(arrays []whirlpool.TickArray, logger Logger, metrics *Metrics) *IndexableTickArrays {
	byStart := make(map[int32]whirlpool.TickArray, len(arrays))
	for _, ta := range arrays {
		byStart[ta.StartTickIndex] = ta
	}

	return &IndexableTickArrays{
		byStart: byStart,
		all:     arrays,
		logger:  logger,
		metrics: metrics,
	}
}

// GetByStartIndex retrieves the tick array starting at startTickIndex.
func (ita *IndexableTickArrays) GetByStartIndex(startTickIndex int32) (whirlpool.TickArray, bool) {
	ta, ok := ita.byStart[startTickIndex]
	return ta, ok
}

// All returns a defensive copy of the slice of all tick arrays.
func (ita *IndexableTickArrays) All() []whirlpool.TickArray {
	allCopy := make([]whirlpool.TickArray, len(ita.all))
	copy(allCopy, ita.all)
	return allCopy
}

// Window assembles the tick window a swap from currentTick in the given
// direction will walk. Tick arrays missing from the index are replaced with
// empty ones, the same as an account that was never initialized on chain.
func (ita *IndexableTickArrays) Window(currentTick int32, tickSpacing uint16, aToB bool) (*tickarray.Window, error) {
	timer := prometheus.NewTimer(ita.metrics.windowBuildSeconds)
	defer timer.ObserveDuration()

	starts := tickarray.WindowStartIndices(currentTick, tickSpacing, aToB)

	var arrays [tickarray.WindowSize]whirlpool.TickArray
	for i, start := range starts {
		ta, ok := ita.byStart[start]
		if !ok {
			ita.logger.Debug("tick array not indexed, using empty array", "start_tick_index", start)
			ita.metrics.missingTickArrays.Inc()
			ta = whirlpool.NewEmptyTickArray(start)
		}
		arrays[i] = ta
	}

	w, err := tickarray.NewWindow(arrays[0], arrays[1], arrays[2], tickSpacing)
	if err != nil {
		ita.logger.Warn("failed to build tick window",
			"current_tick", currentTick,
			"tick_spacing", tickSpacing,
			"a_to_b", aToB,
			"error", err,
		)
		ita.metrics.windowBuilds.WithLabelValues("error").Inc()
		return nil, err
	}

	ita.metrics.windowBuilds.WithLabelValues("ok").Inc()
	return w, nil
}
