// SPDX-License-Identifier: MIT

package pipeline

import (
	"github.com/katalvlaran/packfit/bounds"
	"github.com/katalvlaran/packfit/params"
	"github.com/katalvlaran/packfit/record"
	"go.uber.org/zap"
)

// DefaultWorkers keeps the batch synchronous.
const DefaultWorkers = 1

const panicWorkersInvalid = "pipeline: WithWorkers: n must be >= 1"

// Option mutates the run configuration.
type Option func(*config)

type config struct {
	table      params.Table
	policy     bounds.Policy
	classifier record.Classifier
	logger     *zap.Logger
	workers    int
	suggest    bool
}

func defaultConfig() config {
	return config{
		table:      params.Default(),
		policy:     bounds.Ratio,
		classifier: record.DefaultClassifier(),
		logger:     zap.NewNop(),
		workers:    DefaultWorkers,
	}
}

// WithTable replaces params.Default.
func WithTable(t params.Table) Option {
	return func(c *config) { c.table = t }
}

// WithPolicy selects the bound policy (default bounds.Ratio).
func WithPolicy(p bounds.Policy) Option {
	return func(c *config) { c.policy = p }
}

// WithClassifier replaces record.DefaultClassifier.
func WithClassifier(cl record.Classifier) Option {
	return func(c *config) { c.classifier = cl }
}

// WithLogger sets the run logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithWorkers derives records on n goroutines. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}
	return func(c *config) { c.workers = n }
}

// WithSuggestions fills Product.IdealWidth and Product.IdealHeight with
// simulate.Suggest for every record whose volume is defined.
func WithSuggestions() Option {
	return func(c *config) { c.suggest = true }
}
