// SPDX-License-Identifier: MIT

package record

import (
	"strings"

	"github.com/katalvlaran/packfit/geometry"
)

// Classifier maps free machine and seal text onto the geometry enumerations.
// Matching is case-insensitive on trimmed, width-folded text.
type Classifier struct {
	// FRPrefixes mark FR-class machines ("FR-300", "fr200").
	FRPrefixes []string `yaml:"fr_prefixes"`
	// FlatAliases name a flat seal.
	FlatAliases []string `yaml:"flat_aliases"`
	// BottleneckAliases name a bottleneck seal.
	BottleneckAliases []string `yaml:"bottleneck_aliases"`
}

// DefaultClassifier returns the classifier used in production.
func DefaultClassifier() Classifier {
	return Classifier{
		FRPrefixes:        []string{"FR"},
		FlatAliases:       []string{"flat", "flat-seal", "flat_seal", "flat seal", "平シール", "平"},
		BottleneckAliases: []string{"bottleneck", "bottleneck-seal", "bottleneck_seal", "bottleneck seal", "ボトルネック"},
	}
}

// Machine classifies machine text. Empty text is MachineUnknown.
func (c Classifier) Machine(text string) geometry.MachineClass {
	t := strings.ToUpper(foldText(text))
	if IsAbsent(t) {
		return geometry.MachineUnknown
	}
	for _, p := range c.FRPrefixes {
		p = strings.ToUpper(foldText(p))
		if p != "" && strings.HasPrefix(t, p) {
			return geometry.MachineFR
		}
	}
	return geometry.MachineStandard
}

// Seal classifies seal text. recognized is false for non-empty text that
// matches no alias; absent text is SealUnknown with recognized=true.
func (c Classifier) Seal(text string) (seal geometry.SealType, recognized bool) {
	t := strings.ToLower(foldText(text))
	if IsAbsent(t) {
		return geometry.SealUnknown, true
	}
	if matchAlias(t, c.FlatAliases) {
		return geometry.SealFlat, true
	}
	if matchAlias(t, c.BottleneckAliases) {
		return geometry.SealBottleneck, true
	}
	return geometry.SealUnknown, false
}

func matchAlias(t string, aliases []string) bool {
	for _, a := range aliases {
		if t == strings.ToLower(foldText(a)) {
			return true
		}
	}
	return false
}
