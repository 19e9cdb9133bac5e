// SPDX-License-Identifier: MIT

// Package packfit estimates package fill heights for manufactured goods from
// production records and from interactive what-if inputs.
//
// 🚀 What does packfit compute?
//
//	For every record with a "W*L" footprint, a fill weight and a specific
//	gravity it derives:
//		• width / length        — parsed from the size descriptor (mm)
//		• area                  — usable fill area after seal allowances (mm²)
//		• volume                — weight / specific gravity (cm³)
//		• height                — estimated fill height (mm)
//		• upper / lower height  — guide rails around the height
//	and fits y = a·x^b trend curves of each height series against volume.
//
// ✨ Guarantees
//
//   - Deterministic and side-effect free: a run builds new records, never
//     edits its input.
//   - Null propagation instead of errors for bad field values.
//   - One constants table (params) for every business number.
//   - Batch and single-point simulation share one geometry function, so they
//     agree bit for bit.
//
// Packages:
//
//	params/   — constants table and validation
//	record/   — record model, normalizer, size parser
//	geometry/ — area, volume, height
//	bounds/   — ratio and population-spread guide heights
//	trend/    — power-law fitting
//	simulate/ — single what-if queries and pouch size suggestions
//	pipeline/ — batch orchestration
//	tabular/  — CSV ingest/export adapter
//	config/   — YAML + environment settings
//	cmd/packfit — command-line front end
package packfit
