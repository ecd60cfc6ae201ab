package pathfinder

import (
	"io"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/gridpath/metrics"
)

// Option configures a Session via functional arguments.
type Option func(*config)

type config struct {
	logger        *slog.Logger
	metrics       *metrics.Collector
	rng           *rand.Rand
	randomMarkers bool
	strictVisits  bool
}

func defaultConfig() config {
	return config{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger sets the structured logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics records every search on the given collector.
func WithMetrics(m *metrics.Collector) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithRand supplies the random source used for marker placement and implies
// WithRandomMarkers. The session takes ownership of rng.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
			c.randomMarkers = true
		}
	}
}

// WithRandomMarkers places both markers at random on ConfigureGrid and Reset,
// using the WithRand source or the grid default seed.
func WithRandomMarkers() Option {
	return func(c *config) {
		c.randomMarkers = true
	}
}

// WithStrictVisits drops repeated dequeues from search results.
func WithStrictVisits(strict bool) Option {
	return func(c *config) {
		c.strictVisits = strict
	}
}
