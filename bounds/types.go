// SPDX-License-Identifier: MIT

package bounds

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPolicy is returned by ParsePolicy for unrecognized names.
var ErrUnknownPolicy = errors.New("bounds: unknown bound policy")

// Policy selects how guide heights are derived.
type Policy int

const (
	// Ratio derives each band from its own height only.
	Ratio Policy = iota

	// PopulationSpread shifts every band by the batch-wide spread of heights.
	PopulationSpread
)

// String returns the configuration name of the policy.
func (p Policy) String() string {
	switch p {
	case Ratio:
		return "ratio"
	case PopulationSpread:
		return "population-spread"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Validate returns ErrUnknownPolicy for values outside the declared policies.
func (p Policy) Validate() error {
	switch p {
	case Ratio, PopulationSpread:
		return nil
	default:
		return fmt.Errorf("%v: %w", p, ErrUnknownPolicy)
	}
}

// ParsePolicy accepts "ratio" and "population-spread" (also "population",
// "stdev"); the empty string selects Ratio.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ratio":
		return Ratio, nil
	case "population-spread", "population_spread", "population", "stdev":
		return PopulationSpread, nil
	default:
		return Ratio, fmt.Errorf("%q: %w", s, ErrUnknownPolicy)
	}
}

// Band is the guide rail pair for one height; either side may be nil.
type Band struct {
	Upper *float64
	Lower *float64
}
