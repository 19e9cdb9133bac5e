// SPDX-License-Identifier: MIT

package record

import "github.com/katalvlaran/packfit/geometry"

// Option configures Normalize.
type Option func(*normalizeConfig)

type normalizeConfig struct {
	classifier Classifier
}

// WithClassifier replaces DefaultClassifier.
func WithClassifier(c Classifier) Option {
	return func(cfg *normalizeConfig) { cfg.classifier = c }
}

// CheckSchema returns a *SourceFormatError naming every required column
// missing from header, or nil.
func CheckSchema(header []string) error {
	have := make(map[string]struct{}, len(header))
	for _, h := range header {
		have[h] = struct{}{}
	}
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := have[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &SourceFormatError{Missing: missing}
	}
	return nil
}

// Normalize converts a raw table into typed Products.
//
// Stages:
//  1. Schema check: a missing required column aborts with *SourceFormatError.
//  2. Per row: the size descriptor is trimmed and width-folded; a row whose
//     descriptor is an absent sentinel is excluded.
//  3. Weight and specific gravity are coerced to numeric-or-nil.
//  4. Machine and seal text are classified.
//
// The input table is not modified. Output order follows input order.
func Normalize(tbl RawTable, opts ...Option) ([]Product, Report, error) {
	cfg := normalizeConfig{classifier: DefaultClassifier()}
	for _, o := range opts {
		o(&cfg)
	}

	var rep Report
	if err := CheckSchema(tbl.Header); err != nil {
		return nil, rep, err
	}

	out := make([]Product, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		rep.Total++
		p, ok := normalizeRow(row, cfg.classifier, &rep)
		if !ok {
			rep.Excluded++
			continue
		}
		out = append(out, p)
	}
	rep.Kept = len(out)

	return out, rep, nil
}

func normalizeRow(row RawRecord, c Classifier, rep *Report) (Product, bool) {
	size := foldText(Text(row[ColSizeDescriptor]))
	if IsAbsent(size) {
		return Product{}, false
	}

	p := Product{
		ProductCode:       Text(row[ColProductCode]),
		Name:              Text(row[ColName]),
		Machine:           Text(row[ColMachineType]),
		Seal:              Text(row[ColSealType]),
		Size:              size,
		ShotCount:         Text(row[ColShotCount]),
		PackagingMaterial: Text(row[ColPackagingMaterial]),
		CustomerName:      Text(row[ColCustomerName]),
		Viscosity:         Text(row[ColViscosity]),
	}

	p.Weight = coerceCounted(row[ColWeight], rep)
	p.SpecificGravity = coerceCounted(row[ColSpecificGravity], rep)

	p.MachineClass = c.Machine(p.Machine)
	if p.MachineClass == geometry.MachineUnknown {
		rep.UnknownMachines++
	}
	var recognized bool
	p.SealType, recognized = c.Seal(p.Seal)
	if !recognized {
		rep.UnknownSeals++
	}

	return p, true
}

func coerceCounted(v any, rep *Report) *float64 {
	f := CoerceFloat(v)
	if f == nil && isPresent(v) {
		rep.ParseFailures++
	}
	return f
}
