package tilecode

import (
	"context"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/tilecode/hashing"
	"github.com/hupe1980/tilecode/iht"
	"github.com/hupe1980/tilecode/tiling"
)

type engineKind int

const (
	engineHash engineKind = iota
	engineIHT
)

func (k engineKind) String() string {
	if k == engineIHT {
		return "iht"
	}
	return "hash"
}

// TileCoder maps points to sets of feature indices, one index per tiling.
// The engine (bounded IHT or unbounded hash) is fixed at construction.
//
// TileCoder is safe for concurrent use. Note that with the IHT engine,
// concurrent first-time lookups race for slots, so the dense numbering then
// depends on scheduling; single-goroutine use keeps first-seen order
// reproducible.
type TileCoder struct {
	numTilings int
	engine     engineKind
	size       uint32
	table      *iht.IHT
	strategy   hashing.Strategy
	metrics    MetricsCollector
	logger     *Logger
	fullOnce   sync.Once
}

// New creates a TileCoder producing numTilings indices per point.
// numTilings must be >= 1.
//
// Without an engine option, the unbounded engine with DefaultHashSize is
// used. numTilings should by convention be a power of two at least 4x the
// number of continuous dimensions.
func New(numTilings int, opts ...Option) (*TileCoder, error) {
	if numTilings < 1 {
		return nil, ErrInvalidNumTilings
	}

	o := applyOptions(opts)
	if o.engineConflict {
		return nil, ErrEngineConflict
	}

	tc := &TileCoder{
		numTilings: numTilings,
		engine:     o.engine,
		strategy:   o.strategy,
		metrics:    o.metricsCollector,
		logger:     o.logger.WithNumTilings(numTilings),
	}

	switch o.engine {
	case engineIHT:
		if o.capacity == 0 {
			return nil, ErrInvalidSize
		}
		tc.size = o.capacity
		tc.table = iht.NewWithStrategy(o.capacity, o.strategy)
	default:
		if o.size == 0 {
			return nil, ErrInvalidSize
		}
		tc.size = o.size
	}

	tc.logger.Debug("tile coder created",
		"engine", tc.engine.String(),
		"size", tc.size,
	)

	return tc, nil
}

// NumTilings returns the number of indices produced per point.
func (tc *TileCoder) NumTilings() int { return tc.numTilings }

// Size returns the index-space size: every returned index is in [0, Size).
func (tc *TileCoder) Size() uint32 { return tc.size }

// Stats returns the occupancy snapshot of the bounded engine's table,
// or ok=false for the unbounded engine.
func (tc *TileCoder) Stats() (iht.Stats, bool) {
	if tc.table == nil {
		return iht.Stats{}, false
	}
	return tc.table.Stats(), true
}

// Tiles returns exactly NumTilings indices for the point, each in
// [0, Size). Optional ints are discrete context tags appended verbatim to
// every tile key, so distinct tags never share tiles.
func (tc *TileCoder) Tiles(floats []float64, ints ...int64) []uint32 {
	start := time.Now()
	indices := tc.tile(floats, nil, ints)
	tc.metrics.RecordTiles(time.Since(start))
	return indices
}

// TilesWrap is the wrap-around sibling of Tiles. wrapWidths holds one entry
// per continuous dimension: a positive period makes that dimension cyclic
// (v and v+period activate the same tiles), 0 leaves it unwrapped.
func (tc *TileCoder) TilesWrap(floats []float64, wrapWidths []int, ints ...int64) ([]uint32, error) {
	if len(wrapWidths) != len(floats) {
		return nil, &ErrWrapWidthMismatch{Expected: len(floats), Actual: len(wrapWidths)}
	}

	start := time.Now()
	indices := tc.tile(floats, wrapWidths, ints)
	tc.metrics.RecordTiles(time.Since(start))
	return indices, nil
}

// PeekTiles is the read-only sibling of Tiles: it never mutates the IHT and
// never takes its overflow path. ok[t] reports whether tiling t's tile has
// an assigned index. With the unbounded engine every index is known, so ok
// is always all-true.
func (tc *TileCoder) PeekTiles(floats []float64, ints ...int64) (indices []uint32, ok []bool) {
	return tc.peek(floats, nil, ints)
}

// PeekTilesWrap is the read-only sibling of TilesWrap.
func (tc *TileCoder) PeekTilesWrap(floats []float64, wrapWidths []int, ints ...int64) (indices []uint32, ok []bool, err error) {
	if len(wrapWidths) != len(floats) {
		return nil, nil, &ErrWrapWidthMismatch{Expected: len(floats), Actual: len(wrapWidths)}
	}
	indices, ok = tc.peek(floats, wrapWidths, ints)
	return indices, ok, nil
}

// BatchTiles tiles many points in one call, returning one index set per
// point in input order. The unbounded engine fans points out across
// GOMAXPROCS goroutines; the bounded engine runs sequentially so that
// first-seen slot assignment stays reproducible.
func (tc *TileCoder) BatchTiles(ctx context.Context, points [][]float64, ints ...int64) ([][]uint32, error) {
	start := time.Now()
	results := make([][]uint32, len(points))

	if tc.engine == engineIHT {
		for i, p := range points {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = tc.tile(p, nil, ints)
		}
		tc.metrics.RecordBatchTiles(len(points), time.Since(start))
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range points {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = tc.tile(p, nil, ints)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tc.metrics.RecordBatchTiles(len(points), time.Since(start))
	return results, nil
}

func (tc *TileCoder) tile(floats []float64, wrapWidths []int, tags []int64) []uint32 {
	quantized := tiling.Quantize(floats, tc.numTilings)
	indices := make([]uint32, tc.numTilings)

	for t := range tc.numTilings {
		coords := tc.coordinates(t, quantized, wrapWidths, tags)
		if tc.engine == engineIHT {
			indices[t] = tc.table.GetIndex(coords)
		} else {
			indices[t] = tc.strategy.Index(coords, tc.size)
		}
	}

	if tc.engine == engineIHT && tc.table.Full() {
		tc.fullOnce.Do(func() {
			tc.logger.Warn("index table full, further distinct tiles will collide",
				"capacity", tc.table.Capacity(),
			)
		})
	}

	return indices
}

func (tc *TileCoder) peek(floats []float64, wrapWidths []int, tags []int64) ([]uint32, []bool) {
	quantized := tiling.Quantize(floats, tc.numTilings)
	indices := make([]uint32, tc.numTilings)
	ok := make([]bool, tc.numTilings)

	for t := range tc.numTilings {
		coords := tc.coordinates(t, quantized, wrapWidths, tags)
		if tc.engine == engineIHT {
			indices[t], ok[t] = tc.table.Peek(coords)
		} else {
			indices[t], ok[t] = tc.strategy.Index(coords, tc.size), true
		}
	}

	return indices, ok
}

func (tc *TileCoder) coordinates(t int, quantized []int64, wrapWidths []int, tags []int64) []int64 {
	if wrapWidths == nil {
		return tiling.Coordinates(t, tc.numTilings, quantized, tags)
	}
	return tiling.WrapCoordinates(t, tc.numTilings, quantized, wrapWidths, tags)
}
