// SPDX-License-Identifier: MIT

// Package simulate answers single "what-if" queries.
//
// Run evaluates one hypothetical package through geometry.Compute, the same
// function the batch pipeline uses, so a simulation fed the inputs of a
// derived record reproduces that record's volume and height exactly.
//
// ParseInput accepts loosely typed form values (text or numbers) and
// classifies machine and seal text with the same record.Classifier as batch
// normalization.
//
// Suggest sizes a three-side-seal pouch from weight and specific gravity
// alone, for products that have no footprint yet.
package simulate
