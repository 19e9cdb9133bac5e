// SPDX-License-Identifier: MIT

// Package record defines the production record model and turns loosely typed
// rows into typed Products.
//
// Stages owned here:
//
//   - Normalize  — schema check, exclusion of rows without a size descriptor,
//     numeric coercion of weight and specific gravity, machine/seal
//     classification.
//   - ParseSize  — "W*L" → width, length (first delimiter only).
//
// Field-level problems never surface as errors: a value that cannot be used
// becomes nil and is counted in Report. The only error is a
// *SourceFormatError when required columns are missing from the table.
//
// Products are values. Every derivation step (WithDimensions, WithDerived,
// WithBounds) returns a new Product and leaves its receiver untouched.
package record
