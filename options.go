package tilecode

import (
	"log/slog"

	"github.com/hupe1980/tilecode/hashing"
)

// DefaultHashSize is the index-space size used when neither WithIHT nor
// WithHashSize is given.
const DefaultHashSize = 1 << 20

type options struct {
	engine           engineKind
	engineSet        bool
	engineConflict   bool
	capacity         uint32
	size             uint32
	strategy         hashing.Strategy
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures TileCoder construction.
type Option func(*options)

// WithIHT selects the bounded engine: an index hash table of the given
// capacity. Indices are dense and collision-free until capacity distinct
// tiles have been seen; after that, further distinct tiles fall back to a
// colliding content hash (observable via Stats, never an error).
//
// Mutually exclusive with WithHashSize.
func WithIHT(capacity uint32) Option {
	return func(o *options) {
		if o.engineSet {
			o.engineConflict = true
		}
		o.engine = engineIHT
		o.engineSet = true
		o.capacity = capacity
	}
}

// WithHashSize selects the unbounded engine: stateless content hashing
// into [0, size). No table is materialized, so size may be astronomically
// large; collisions are expected by design whenever size is smaller than
// the number of distinct tiles ever generated.
//
// Mutually exclusive with WithIHT.
func WithHashSize(size uint32) Option {
	return func(o *options) {
		if o.engineSet {
			o.engineConflict = true
		}
		o.engine = engineHash
		o.engineSet = true
		o.size = size
	}
}

// WithHashStrategy configures the hash strategy used by the unbounded
// engine and by the IHT overflow fallback. The default is the stable
// content hash (hashing.Default); pass a hashing.UNH to reproduce the
// legacy random-table scheme.
//
// If nil is passed, hashing.Default is used.
func WithHashStrategy(s hashing.Strategy) Option {
	return func(o *options) {
		if s == nil {
			s = hashing.Default
		}
		o.strategy = s
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		engine:           engineHash,
		size:             DefaultHashSize,
		strategy:         hashing.Default,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
