package engine

import (
	"sync"

	"salestat/domain/stats"
	"salestat/domain/table"
)

// minTestSample is the floor below which the normality tests are not
// meaningful. The tests themselves degrade badly under ~8 observations,
// so anything smaller is reported as insufficient rather than tested.
const minTestSample = 8

// Engine computes the statistical analyses for one immutable sales table.
// Every operation is a pure, synchronous function of its inputs and the
// table; repeated calls with identical inputs (including the sampling
// seed) produce bit-identical results. The contract-column correlation
// matrix is memoized since the table never changes within an engine's
// lifetime, and may be shared read-only across concurrent callers.
type Engine struct {
	table      *table.Table
	sampleSize int
	seed       int64

	corrOnce sync.Once
	corr     *stats.CorrelationMatrix
	corrErr  error
}

// Option configures an Engine
type Option func(*Engine)

// WithSampleSize caps the normality-test sample draw
func WithSampleSize(n int) Option {
	return func(e *Engine) { e.sampleSize = n }
}

// WithSeed fixes the deterministic sampling seed
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.seed = seed }
}

// New creates an engine over a table. Defaults: sample cap 1000, seed 42.
func New(t *table.Table, opts ...Option) *Engine {
	e := &Engine{
		table:      t,
		sampleSize: 1000,
		seed:       42,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Table returns the underlying table
func (e *Engine) Table() *table.Table {
	return e.table
}
