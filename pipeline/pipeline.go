// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/packfit/bounds"
	"github.com/katalvlaran/packfit/geometry"
	"github.com/katalvlaran/packfit/params"
	"github.com/katalvlaran/packfit/record"
	"github.com/katalvlaran/packfit/simulate"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result is the output of one batch run.
type Result struct {
	RunID    string
	Policy   bounds.Policy
	Products []record.Product
	Report   record.Report
	Stats    Stats
}

// Stats counts how far records got through the derivation chain.
type Stats struct {
	WithArea   int
	WithVolume int
	WithHeight int
	WithBounds int
	WithIdeal  int
}

// Run executes one batch.
//
// Implementation:
//   - Stage 1: validate the constants table and the bound policy.
//   - Stage 2: normalize rows (schema check, exclusion, coercion).
//   - Stage 3: per record, parse dimensions and compute area/volume/height.
//   - Stage 4: estimate guide heights over the complete height column.
//   - Stage 5: with WithSuggestions, attach a suggested footprint.
//
// Errors:
//   - params.ErrInvalidTable for a bad constants table.
//   - bounds.ErrUnknownPolicy for an undeclared policy.
//   - record.ErrSourceFormat (as *record.SourceFormatError) for missing columns.
func Run(tbl record.RawTable, opts ...Option) (Result, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	res := Result{RunID: uuid.NewString(), Policy: cfg.policy}
	log := cfg.logger.With(zap.String("run_id", res.RunID))
	start := time.Now()
	log.Info("batch_run_start",
		zap.Int("rows", len(tbl.Rows)),
		zap.Stringer("bound_policy", cfg.policy),
		zap.Int("workers", cfg.workers),
		zap.Bool("suggestions", cfg.suggest),
	)

	// Stage 1
	if err := errors.Join(cfg.table.Validate(), cfg.policy.Validate()); err != nil {
		log.Error("batch_run_rejected", zap.Error(err))
		return res, fmt.Errorf("pipeline: %w", err)
	}

	// Stage 2
	products, rep, err := record.Normalize(tbl, record.WithClassifier(cfg.classifier))
	res.Report = rep
	if err != nil {
		log.Error("batch_run_rejected", zap.Error(err))
		return res, fmt.Errorf("pipeline: %w", err)
	}

	// Stage 3
	derived := deriveAll(products, cfg)

	// Stage 4
	heights := make([]*float64, len(derived))
	for i := range derived {
		heights[i] = derived[i].Height
	}
	bands := bounds.Estimate(heights, cfg.policy, cfg.table)
	for i := range derived {
		derived[i] = derived[i].WithBounds(bands[i].Upper, bands[i].Lower)
	}

	// Stage 5
	if cfg.suggest {
		for i := range derived {
			derived[i] = Suggest(derived[i], cfg.table)
		}
	}

	res.Products = derived
	res.Stats = countStats(derived)

	log.Info("batch_run_done",
		zap.Int("kept", rep.Kept),
		zap.Int("excluded", rep.Excluded),
		zap.Int("parse_failures", rep.ParseFailures),
		zap.Int("unknown_machines", rep.UnknownMachines),
		zap.Int("unknown_seals", rep.UnknownSeals),
		zap.Int("with_height", res.Stats.WithHeight),
		zap.Int("with_ideal", res.Stats.WithIdeal),
		zap.Duration("elapsed", time.Since(start)),
	)
	if rep.UnknownSeals > 0 {
		log.Warn("unrecognized_seal_types", zap.Int("count", rep.UnknownSeals))
	}

	return res, nil
}

// Derive computes dimensions, area, volume and height for one product.
func Derive(p record.Product, tbl params.Table) record.Product {
	p = p.WithDimensions()
	return p.WithDerived(geometry.Compute(p.GeometryInputs(), tbl))
}

// Suggest attaches simulate.Suggest's footprint for p's weight and specific
// gravity; p is returned unchanged when no suggestion exists.
func Suggest(p record.Product, tbl params.Table) record.Product {
	s, ok := simulate.Suggest(p.Weight, p.SpecificGravity, tbl)
	if !ok {
		return p
	}
	return p.WithSuggestion(&s.Width, &s.Height)
}

// deriveAll writes each result into its input position, so output order is
// input order whatever the worker count.
func deriveAll(products []record.Product, cfg config) []record.Product {
	out := make([]record.Product, len(products))
	if cfg.workers <= 1 || len(products) < 2 {
		for i, p := range products {
			out[i] = Derive(p, cfg.table)
		}
		return out
	}

	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for i := range products {
		i := i // per-iteration copy; go.mod targets go 1.21 loop semantics
		g.Go(func() error {
			out[i] = Derive(products[i], cfg.table)
			return nil
		})
	}
	_ = g.Wait() // Derive never fails

	return out
}

func countStats(products []record.Product) Stats {
	var s Stats
	for _, p := range products {
		if p.Area != nil {
			s.WithArea++
		}
		if p.Volume != nil {
			s.WithVolume++
		}
		if p.Height != nil {
			s.WithHeight++
		}
		if p.UpperHeight != nil && p.LowerHeight != nil {
			s.WithBounds++
		}
		if p.IdealWidth != nil {
			s.WithIdeal++
		}
	}
	return s
}
