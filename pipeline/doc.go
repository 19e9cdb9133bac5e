// SPDX-License-Identifier: MIT

// Package pipeline runs one batch of raw production records through every
// derivation stage and returns a new collection of derived Products.
//
// Stages:
//
//	raw rows → record.Normalize → Product.WithDimensions → geometry.Compute
//	         → bounds.Estimate → derived Products
//
// Each stage emits new Product values; nothing in the input table or in an
// earlier stage's output is written to. Per-record stages are independent and
// may be spread across workers (WithWorkers); bound estimation runs only after
// every height is known, since the population-spread policy needs the whole
// batch.
//
// Field problems are absorbed as nils and counted in Result.Report. The only
// errors are a source-format failure (missing columns, matched by
// record.ErrSourceFormat) and an invalid constants table.
//
//	res, err := pipeline.Run(tbl,
//		pipeline.WithPolicy(bounds.Ratio),
//		pipeline.WithLogger(logger),
//	)
package pipeline
